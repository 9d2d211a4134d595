package repository

import (
	"context"

	"organic/internal/domain/entity"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user-related database operations.
// Users are keyed by the external identity provider's ID (clerk_id) for all
// identity-driven lookups; the internal UUID keys relational references.
type UserRepository interface {
	// CreateUser persists a new user.
	CreateUser(ctx context.Context, user *entity.User) error

	// FindUserByID retrieves a user by its internal ID.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindUserByClerkID retrieves a user by the identity provider's ID.
	FindUserByClerkID(ctx context.Context, clerkID string) (*entity.User, error)

	// ListUsers returns one page of users matching the query conditions.
	ListUsers(ctx context.Context, query ListQuery) (PageResult[*entity.User], error)

	// UpdateUser persists changes to an existing user.
	UpdateUser(ctx context.Context, user *entity.User) error

	// UpdateUserCart replaces the user's cart contents.
	UpdateUserCart(ctx context.Context, userID uuid.UUID, cart []entity.CartItem) error

	// UpdateUserWishlist replaces the user's wishlist contents.
	UpdateUserWishlist(ctx context.Context, userID uuid.UUID, wishlist []uuid.UUID) error

	// UpdateUserRole sets the user's role.
	UpdateUserRole(ctx context.Context, userID uuid.UUID, role entity.Role) error

	// DeleteUserByClerkID removes a user by the identity provider's ID.
	DeleteUserByClerkID(ctx context.Context, clerkID string) error
}
