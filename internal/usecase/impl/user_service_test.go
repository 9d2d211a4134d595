package impl

import (
	"context"
	"testing"

	"organic/internal/domain/entity"
	domainerrors "organic/internal/domain/errors"
	"organic/internal/domain/querykey"
	"organic/internal/domain/repository"
	mockRepo "organic/internal/mocks/repository"
	"organic/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) (usecase.UserUsecase, *mockRepo.MockUserRepository) {
	t.Helper()

	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewUserService(UserServiceParams{
		UserRepo: userRepo,
		Cache:    passthroughCache(t),
		Registry: querykey.NewRegistry(),
		Config:   testConfig(),
		Logger:   testLogger(),
	})

	return svc, userRepo
}

func TestUserService_UpsertUser_CreatesNewUser(t *testing.T) {
	svc, userRepo := newUserService(t)
	ctx := context.Background()

	userRepo.EXPECT().
		FindUserByClerkID(ctx, "user_new").
		Return(nil, domainerrors.ErrUserNotFound)

	var created *entity.User
	userRepo.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			created = user
		}).
		Return(nil)

	user, err := svc.UpsertUser(ctx, usecase.WebhookUserInput{
		ClerkID:   "user_new",
		Email:     "ada@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
	})
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, "user_new", user.ClerkID)
	assert.Equal(t, "Ada Lovelace", user.Name)
	assert.Equal(t, entity.RoleUser, user.Role)
	assert.True(t, user.IsActive)
}

func TestUserService_UpsertUser_UpdatesExistingUser(t *testing.T) {
	svc, userRepo := newUserService(t)
	ctx := context.Background()

	existing := &entity.User{
		ID:      uuid.New(),
		ClerkID: "user_abc",
		Email:   "old@example.com",
		Role:    entity.RoleAdmin,
	}
	userRepo.EXPECT().
		FindUserByClerkID(ctx, "user_abc").
		Return(existing, nil)
	userRepo.EXPECT().
		UpdateUser(ctx, existing).
		Return(nil)

	user, err := svc.UpsertUser(ctx, usecase.WebhookUserInput{
		ClerkID:   "user_abc",
		Email:     "new@example.com",
		FirstName: "Ada",
	})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", user.Email)
	assert.Equal(t, "Ada", user.Name)
	// The webhook payload never changes the role.
	assert.Equal(t, entity.RoleAdmin, user.Role)
	assert.NotNil(t, user.LastLoginAt)
}

func TestUserService_UpsertUser_NameFallsBackToEmail(t *testing.T) {
	svc, userRepo := newUserService(t)
	ctx := context.Background()

	userRepo.EXPECT().
		FindUserByClerkID(ctx, "user_new").
		Return(nil, domainerrors.ErrUserNotFound)
	userRepo.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	user, err := svc.UpsertUser(ctx, usecase.WebhookUserInput{
		ClerkID: "user_new",
		Email:   "ada@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Name)
}

func TestUserService_UpsertUser_MissingClerkID(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.UpsertUser(context.Background(), usecase.WebhookUserInput{Email: "ada@example.com"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_DeleteUser_Success(t *testing.T) {
	svc, userRepo := newUserService(t)
	ctx := context.Background()

	userRepo.EXPECT().
		DeleteUserByClerkID(ctx, "user_abc").
		Return(nil)

	err := svc.DeleteUser(ctx, "user_abc")
	require.NoError(t, err)
}

func TestUserService_DeleteUser_UnknownSubjectIsNotAnError(t *testing.T) {
	svc, userRepo := newUserService(t)
	ctx := context.Background()

	userRepo.EXPECT().
		DeleteUserByClerkID(ctx, "user_gone").
		Return(domainerrors.ErrUserNotFound)

	err := svc.DeleteUser(ctx, "user_gone")
	require.NoError(t, err)
}

func TestUserService_SetUserRole_Success(t *testing.T) {
	svc, userRepo := newUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	userRepo.EXPECT().
		UpdateUserRole(ctx, userID, entity.RoleModerator).
		Return(nil)

	err := svc.SetUserRole(ctx, userID, entity.RoleModerator)
	require.NoError(t, err)
}

func TestUserService_SetUserRole_UnknownRole(t *testing.T) {
	svc, _ := newUserService(t)

	err := svc.SetUserRole(context.Background(), uuid.New(), "superuser")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRole)
}

func TestUserService_GetUserByClerkID(t *testing.T) {
	svc, userRepo := newUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), ClerkID: "user_abc"}
	userRepo.EXPECT().
		FindUserByClerkID(ctx, "user_abc").
		Return(user, nil)

	got, err := svc.GetUserByClerkID(ctx, "user_abc")
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestUserService_ListUsers_CachesPages(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewUserService(UserServiceParams{
		UserRepo: userRepo,
		Cache:    newMemoryCache(),
		Registry: querykey.NewRegistry(),
		Config:   testConfig(),
		Logger:   testLogger(),
	})
	ctx := context.Background()

	userRepo.EXPECT().
		ListUsers(ctx, mock.AnythingOfType("repository.ListQuery")).
		RunAndReturn(func(_ context.Context, query repository.ListQuery) (repository.PageResult[*entity.User], error) {
			return repository.NewPageResult([]*entity.User{{ClerkID: "user_1"}}, 1, query), nil
		}).
		Once()

	first, err := svc.ListUsers(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, first.Items, 1)

	second, err := svc.ListUsers(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, "user_1", second.Items[0].ClerkID)
}
