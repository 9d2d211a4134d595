package usecase

import (
	"context"

	"organic/internal/domain/entity"
	"organic/internal/domain/service"
)

// AuthzUsecase resolves the effective role for a session. It is the single
// authorization capability shared by middleware and handlers.
type AuthzUsecase interface {
	// ResolveRole determines the caller's role: the session role claim when
	// present and valid, otherwise the user row looked up by clerk id.
	// It fails closed: nil claims, a failed lookup or an unknown role all
	// resolve to the regular user role, never an error.
	ResolveRole(ctx context.Context, claims *service.SessionClaims) entity.Role

	// HasRole reports whether the session satisfies the required role.
	HasRole(ctx context.Context, claims *service.SessionClaims, required entity.Role) bool
}
