package postgres

import (
	"context"
	"encoding/json"

	"organic/internal/domain/entity"
	domainerrors "organic/internal/domain/errors"
	"organic/internal/domain/repository"
	"organic/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// CreateUser persists a new user.
func (repo *userRepository) CreateUser(ctx context.Context, user *entity.User) error {
	userM, err := fromUserDomain(user)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.Role = entity.Role(userM.Role)
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// FindUserByID retrieves a user by its internal ID.
func (repo *userRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM)
}

// FindUserByClerkID retrieves a user by the identity provider's ID.
func (repo *userRepository) FindUserByClerkID(ctx context.Context, clerkID string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("clerk_id = ?", clerkID).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by clerk ID")
	}

	return toUserDomain(&userM)
}

// ListUsers returns one page of users matching the query conditions.
func (repo *userRepository) ListUsers(ctx context.Context, query repository.ListQuery) (repository.PageResult[*entity.User], error) {
	var empty repository.PageResult[*entity.User]

	base := applyConditions(repo.db.WithContext(ctx).Model(&model.UserModel{}), query)

	var totalCount int64
	if err := base.Session(&gorm.Session{}).Count(&totalCount).Error; err != nil {
		return empty, errors.Wrap(err, "failed to count users")
	}

	var userModels []*model.UserModel
	if err := applyWindow(applySorts(base.Session(&gorm.Session{}), query), query).
		Find(&userModels).Error; err != nil {
		return empty, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		user, err := toUserDomain(userM)
		if err != nil {
			return empty, err
		}
		users = append(users, user)
	}

	return repository.NewPageResult(users, totalCount, query), nil
}

// UpdateUser persists changes to an existing user.
func (repo *userRepository) UpdateUser(ctx context.Context, user *entity.User) error {
	userM, err := fromUserDomain(user)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("clerk_id = ?", user.ClerkID).
		Select("email", "name", "first_name", "last_name", "image_url", "phone",
			"shipping_addresses", "billing_addresses", "is_active", "last_login_at").
		Updates(userM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WrapMessage("email already in use")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrUserNotFound
	}

	return nil
}

// UpdateUserCart replaces the user's cart contents.
func (repo *userRepository) UpdateUserCart(ctx context.Context, userID uuid.UUID, cart []entity.CartItem) error {
	if cart == nil {
		cart = []entity.CartItem{}
	}

	return repo.updateJSONColumn(ctx, userID, "cart", cart)
}

// UpdateUserWishlist replaces the user's wishlist contents.
func (repo *userRepository) UpdateUserWishlist(ctx context.Context, userID uuid.UUID, wishlist []uuid.UUID) error {
	if wishlist == nil {
		wishlist = []uuid.UUID{}
	}

	return repo.updateJSONColumn(ctx, userID, "wishlist", wishlist)
}

// UpdateUserRole sets the user's role.
func (repo *userRepository) UpdateUserRole(ctx context.Context, userID uuid.UUID, role entity.Role) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("role", role.String())
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user role")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrUserNotFound
	}

	return nil
}

// DeleteUserByClerkID removes a user by the identity provider's ID.
func (repo *userRepository) DeleteUserByClerkID(ctx context.Context, clerkID string) error {
	result := repo.db.WithContext(ctx).
		Where("clerk_id = ?", clerkID).
		Delete(&model.UserModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrUserNotFound
	}

	return nil
}

func (repo *userRepository) updateJSONColumn(ctx context.Context, userID uuid.UUID, column string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal %s", column)
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update(column, datatypes.JSON(raw))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update "+column)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrUserNotFound
	}

	return nil
}
