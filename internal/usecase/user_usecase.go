package usecase

import (
	"context"

	"organic/internal/domain/entity"
	"organic/internal/domain/repository"

	"github.com/google/uuid"
)

// WebhookUserInput carries the user fields delivered by identity provider
// webhooks (user.created / user.updated).
type WebhookUserInput struct {
	ClerkID   string
	Email     string
	FirstName string
	LastName  string
	ImageURL  string
	Phone     string
}

// UserUsecase defines the user management use cases.
type UserUsecase interface {
	// UpsertUser creates or updates the user row for a provider subject.
	// Driven by the user.created and user.updated webhook events.
	UpsertUser(ctx context.Context, input WebhookUserInput) (*entity.User, error)

	// DeleteUser removes the user row for a provider subject.
	// Driven by the user.deleted webhook event.
	DeleteUser(ctx context.Context, clerkID string) error

	// GetUserByClerkID retrieves the user for the authenticated subject.
	GetUserByClerkID(ctx context.Context, clerkID string) (*entity.User, error)

	// ListUsers returns one page of users. Admin only.
	ListUsers(ctx context.Context, page, perPage int) (repository.PageResult[*entity.User], error)

	// SetUserRole assigns a role to a user. Admin only.
	SetUserRole(ctx context.Context, targetUserID uuid.UUID, role entity.Role) error
}
