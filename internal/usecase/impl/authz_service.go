package impl

import (
	"context"
	"log/slog"

	"organic/internal/domain/entity"
	"organic/internal/domain/repository"
	"organic/internal/domain/service"
	"organic/internal/usecase"

	"go.uber.org/fx"
)

// roleRank orders roles by privilege so a higher role satisfies checks
// against a lower one.
var roleRank = map[entity.Role]int{
	entity.RoleUser:      1,
	entity.RoleModerator: 2,
	entity.RoleAdmin:     3,
}

type authzService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// AuthzServiceParams holds dependencies for AuthzService, injected by Fx.
type AuthzServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewAuthzService creates a new authorization service instance
func NewAuthzService(params AuthzServiceParams) usecase.AuthzUsecase {
	return &authzService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

// ResolveRole determines the caller's effective role. It never returns an
// error: anything it cannot verify resolves to the regular user role.
func (s *authzService) ResolveRole(ctx context.Context, claims *service.SessionClaims) entity.Role {
	if claims == nil || claims.ClerkID() == "" {
		return entity.RoleUser
	}

	if role := entity.Role(claims.Role); role.IsValid() {
		return role
	}

	user, err := s.userRepo.FindUserByClerkID(ctx, claims.ClerkID())
	if err != nil {
		s.logger.Warn("role lookup failed, treating session as regular user",
			slog.String("clerk_id", claims.ClerkID()),
			slog.String("error", err.Error()),
		)

		return entity.RoleUser
	}

	if user.Role.IsValid() {
		return user.Role
	}

	return entity.RoleUser
}

// HasRole reports whether the session satisfies the required role. A role
// satisfies itself and every role below it in the privilege order.
func (s *authzService) HasRole(ctx context.Context, claims *service.SessionClaims, required entity.Role) bool {
	requiredRank, ok := roleRank[required]
	if !ok {
		return false
	}

	return roleRank[s.ResolveRole(ctx, claims)] >= requiredRank
}
