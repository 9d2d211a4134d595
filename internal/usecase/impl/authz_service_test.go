package impl

import (
	"context"
	"testing"

	"organic/internal/domain/entity"
	domainerrors "organic/internal/domain/errors"
	"organic/internal/domain/service"
	mockRepo "organic/internal/mocks/repository"
	"organic/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newAuthzService(t *testing.T) (usecase.AuthzUsecase, *mockRepo.MockUserRepository) {
	t.Helper()

	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewAuthzService(AuthzServiceParams{
		UserRepo: userRepo,
		Logger:   testLogger(),
	})

	return svc, userRepo
}

func sessionClaims(subject, role string) *service.SessionClaims {
	return &service.SessionClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: subject,
		},
	}
}

func TestAuthzService_ResolveRole_NilClaims(t *testing.T) {
	svc, _ := newAuthzService(t)

	role := svc.ResolveRole(context.Background(), nil)
	assert.Equal(t, entity.RoleUser, role)
}

func TestAuthzService_ResolveRole_FromTokenClaim(t *testing.T) {
	svc, _ := newAuthzService(t)

	role := svc.ResolveRole(context.Background(), sessionClaims("user_abc", "admin"))
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestAuthzService_ResolveRole_FallsBackToUserRecord(t *testing.T) {
	svc, userRepo := newAuthzService(t)
	ctx := context.Background()

	userRepo.EXPECT().
		FindUserByClerkID(ctx, "user_abc").
		Return(&entity.User{ID: uuid.New(), ClerkID: "user_abc", Role: entity.RoleModerator}, nil)

	role := svc.ResolveRole(ctx, sessionClaims("user_abc", ""))
	assert.Equal(t, entity.RoleModerator, role)
}

func TestAuthzService_ResolveRole_UnknownClaimFallsBack(t *testing.T) {
	svc, userRepo := newAuthzService(t)
	ctx := context.Background()

	userRepo.EXPECT().
		FindUserByClerkID(ctx, "user_abc").
		Return(&entity.User{ID: uuid.New(), ClerkID: "user_abc", Role: entity.RoleUser}, nil)

	role := svc.ResolveRole(ctx, sessionClaims("user_abc", "root"))
	assert.Equal(t, entity.RoleUser, role)
}

func TestAuthzService_ResolveRole_LookupFailureFailsClosed(t *testing.T) {
	svc, userRepo := newAuthzService(t)
	ctx := context.Background()

	userRepo.EXPECT().
		FindUserByClerkID(ctx, "user_abc").
		Return(nil, domainerrors.NewDatabaseExecuteError(assert.AnError, "query failed"))

	role := svc.ResolveRole(ctx, sessionClaims("user_abc", ""))
	assert.Equal(t, entity.RoleUser, role)
}

func TestAuthzService_ResolveRole_EmptySubject(t *testing.T) {
	svc, _ := newAuthzService(t)

	role := svc.ResolveRole(context.Background(), sessionClaims("", "admin"))
	assert.Equal(t, entity.RoleUser, role)
}

func TestAuthzService_HasRole(t *testing.T) {
	tests := []struct {
		name     string
		claim    string
		required entity.Role
		want     bool
	}{
		{"admin satisfies admin", "admin", entity.RoleAdmin, true},
		{"admin satisfies moderator", "admin", entity.RoleModerator, true},
		{"admin satisfies user", "admin", entity.RoleUser, true},
		{"moderator satisfies moderator", "moderator", entity.RoleModerator, true},
		{"moderator does not satisfy admin", "moderator", entity.RoleAdmin, false},
		{"user does not satisfy moderator", "user", entity.RoleModerator, false},
		{"user satisfies user", "user", entity.RoleUser, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newAuthzService(t)

			got := svc.HasRole(context.Background(), sessionClaims("user_abc", tt.claim), tt.required)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuthzService_HasRole_UnknownRequiredRole(t *testing.T) {
	svc, _ := newAuthzService(t)

	assert.False(t, svc.HasRole(context.Background(), sessionClaims("user_abc", "admin"), "superuser"))
}
