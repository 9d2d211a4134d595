package postgres

import (
	"context"

	"organic/internal/domain/entity"
	domainerrors "organic/internal/domain/errors"
	"organic/internal/domain/repository"
	"organic/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// storeRepository implements the repository.StoreRepository interface.
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{
		db: db,
	}
}

// FindStore retrieves the store settings. There is at most one row.
func (repo *storeRepository) FindStore(ctx context.Context) (*entity.Store, error) {
	var storeM model.StoreModel

	if err := repo.db.WithContext(ctx).
		First(&storeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrStoreNotConfigured
		}

		return nil, errors.Wrap(err, "failed to find store settings")
	}

	return toStoreDomain(&storeM)
}

// SaveStore creates the store settings row, or updates it if one exists.
func (repo *storeRepository) SaveStore(ctx context.Context, store *entity.Store) error {
	storeM, err := fromStoreDomain(store)
	if err != nil {
		return err
	}

	var existing model.StoreModel
	findErr := repo.db.WithContext(ctx).First(&existing).Error
	switch {
	case findErr == nil:
		storeM.ID = existing.ID
		storeM.CreatedAt = existing.CreatedAt
		if err := repo.db.WithContext(ctx).
			Model(&model.StoreModel{}).
			Where("id = ?", existing.ID).
			Select("*").
			Omit("id", "created_at").
			Updates(storeM).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to update store settings")
		}
	case errors.Is(findErr, gorm.ErrRecordNotFound):
		if err := repo.db.WithContext(ctx).Create(storeM).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to create store settings")
		}
	default:
		return errors.Wrap(findErr, "failed to load store settings")
	}

	store.ID = storeM.ID
	store.CreatedAt = storeM.CreatedAt
	store.UpdatedAt = storeM.UpdatedAt

	return nil
}

// shippingRateRepository implements the repository.ShippingRateRepository interface.
type shippingRateRepository struct {
	db *gorm.DB
}

// NewShippingRateRepository is the constructor for shippingRateRepository.
func NewShippingRateRepository(db *gorm.DB) repository.ShippingRateRepository {
	return &shippingRateRepository{
		db: db,
	}
}

// CreateShippingRate persists a new shipping rate band.
func (repo *shippingRateRepository) CreateShippingRate(ctx context.Context, rate *entity.ShippingRate) error {
	rateM := fromShippingRateDomain(rate)

	if err := repo.db.WithContext(ctx).Create(rateM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create shipping rate")
	}

	rate.ID = rateM.ID
	rate.CreatedAt = rateM.CreatedAt
	rate.UpdatedAt = rateM.UpdatedAt

	return nil
}

// FindAllShippingRates retrieves all rate bands ordered by minimum weight.
func (repo *shippingRateRepository) FindAllShippingRates(ctx context.Context) ([]*entity.ShippingRate, error) {
	var rateModels []*model.ShippingRateModel

	if err := repo.db.WithContext(ctx).
		Order("weight_range_min ASC").
		Find(&rateModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find shipping rates")
	}

	rates := make([]*entity.ShippingRate, 0, len(rateModels))
	for _, rateM := range rateModels {
		rates = append(rates, toShippingRateDomain(rateM))
	}

	return rates, nil
}

// UpdateShippingRate persists changes to an existing rate band.
func (repo *shippingRateRepository) UpdateShippingRate(ctx context.Context, rate *entity.ShippingRate) error {
	rateM := fromShippingRateDomain(rate)

	result := repo.db.WithContext(ctx).
		Model(&model.ShippingRateModel{}).
		Where("id = ?", rate.ID).
		Select("location", "weight_range_min", "weight_range_max", "price").
		Updates(rateM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update shipping rate")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound.WrapMessage("shipping rate not found")
	}

	return nil
}

// DeleteShippingRate removes a rate band by its ID.
func (repo *shippingRateRepository) DeleteShippingRate(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ShippingRateModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete shipping rate")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound.WrapMessage("shipping rate not found")
	}

	return nil
}
