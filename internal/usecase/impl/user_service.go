package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"organic/config"
	"organic/internal/domain/entity"
	domainerrors "organic/internal/domain/errors"
	"organic/internal/domain/querykey"
	"organic/internal/domain/repository"
	"organic/internal/domain/service"
	"organic/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type userService struct {
	userRepo repository.UserRepository
	cache    service.QueryCache
	registry *querykey.Registry
	config   *config.Config
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Cache    service.QueryCache
	Registry *querykey.Registry
	Config   *config.Config
	Logger   *slog.Logger
}

// NewUserService creates a new user service instance
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		cache:    params.Cache,
		registry: params.Registry,
		config:   params.Config,
		logger:   params.Logger,
	}
}

// UpsertUser creates or updates the user row for a provider subject.
func (s *userService) UpsertUser(ctx context.Context, input usecase.WebhookUserInput) (*entity.User, error) {
	if input.ClerkID == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("clerk id is required")
	}

	existing, err := s.userRepo.FindUserByClerkID(ctx, input.ClerkID)
	if err != nil && !errors.Is(err, domainerrors.ErrUserNotFound) {
		return nil, err
	}

	if existing == nil {
		return s.createUser(ctx, input)
	}

	existing.Email = input.Email
	existing.FirstName = input.FirstName
	existing.LastName = input.LastName
	existing.Name = displayName(input)
	existing.ImageURL = input.ImageURL
	existing.Phone = input.Phone
	now := time.Now().UTC()
	existing.LastLoginAt = &now

	if err := s.userRepo.UpdateUser(ctx, existing); err != nil {
		return nil, err
	}

	invalidateResource(ctx, s.cache, s.logger, s.registry, querykey.ResourceUsers)

	return existing, nil
}

func (s *userService) createUser(ctx context.Context, input usecase.WebhookUserInput) (*entity.User, error) {
	user := &entity.User{
		ClerkID:   input.ClerkID,
		Email:     input.Email,
		Name:      displayName(input),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		ImageURL:  input.ImageURL,
		Phone:     input.Phone,
		Role:      entity.RoleUser,
		IsActive:  true,
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	invalidateResource(ctx, s.cache, s.logger, s.registry, querykey.ResourceUsers)

	return user, nil
}

// DeleteUser removes the user row for a provider subject.
func (s *userService) DeleteUser(ctx context.Context, clerkID string) error {
	if clerkID == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("clerk id is required")
	}

	if err := s.userRepo.DeleteUserByClerkID(ctx, clerkID); err != nil {
		// A delete for an unknown subject is already satisfied.
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return nil
		}

		return err
	}

	invalidateResource(ctx, s.cache, s.logger, s.registry, querykey.ResourceUsers)

	return nil
}

// GetUserByClerkID retrieves the user for the authenticated subject.
func (s *userService) GetUserByClerkID(ctx context.Context, clerkID string) (*entity.User, error) {
	return fetchCached(ctx, s.cache, s.logger, querykey.UserDetails(clerkID), func(ctx context.Context) (*entity.User, error) {
		return s.userRepo.FindUserByClerkID(ctx, clerkID)
	})
}

// ListUsers returns one page of users. Admin only.
func (s *userService) ListUsers(ctx context.Context, page, perPage int) (repository.PageResult[*entity.User], error) {
	query := repository.ListQuery{
		Page:    clampPage(page),
		PerPage: clampPerPage(perPage, s.config),
		Sorts:   []repository.Sort{{Field: "created_at", Desc: true}},
	}

	key := querykey.UsersList(query.Page, query.PerPage, query.Fingerprint())

	return fetchCached(ctx, s.cache, s.logger, key, func(ctx context.Context) (repository.PageResult[*entity.User], error) {
		return s.userRepo.ListUsers(ctx, query)
	})
}

// SetUserRole assigns a role to a user. Admin only.
func (s *userService) SetUserRole(ctx context.Context, targetUserID uuid.UUID, role entity.Role) error {
	if !role.IsValid() {
		return domainerrors.ErrInvalidRole
	}

	if err := s.userRepo.UpdateUserRole(ctx, targetUserID, role); err != nil {
		return err
	}

	invalidateResource(ctx, s.cache, s.logger, s.registry, querykey.ResourceUsers)

	return nil
}

func displayName(input usecase.WebhookUserInput) string {
	name := strings.TrimSpace(input.FirstName + " " + input.LastName)
	if name == "" {
		return input.Email
	}

	return name
}
