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

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// CreateProduct persists a new product.
func (repo *productRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	productM, err := fromProductDomain(product)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProductSlugTaken
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("product references unknown category")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	// Update the entity with generated values
	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindProductByID retrieves a product by its unique ID.
func (repo *productRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM)
}

// FindProductBySlug retrieves a product by its URL slug.
func (repo *productRepository) FindProductBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by slug")
	}

	return toProductDomain(&productM)
}

// FindProductsByIDs retrieves all products matching the given IDs.
func (repo *productRepository) FindProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by IDs")
	}

	return repo.toDomainSlice(productModels)
}

// ListProducts returns one page of products matching the query conditions.
func (repo *productRepository) ListProducts(ctx context.Context, query repository.ListQuery) (repository.PageResult[*entity.Product], error) {
	var empty repository.PageResult[*entity.Product]

	base := applyConditions(repo.db.WithContext(ctx).Model(&model.ProductModel{}), query)

	var totalCount int64
	if err := base.Session(&gorm.Session{}).Count(&totalCount).Error; err != nil {
		return empty, errors.Wrap(err, "failed to count products")
	}

	var productModels []*model.ProductModel
	if err := applyWindow(applySorts(base.Session(&gorm.Session{}), query), query).
		Find(&productModels).Error; err != nil {
		return empty, errors.Wrap(err, "failed to list products")
	}

	products, err := repo.toDomainSlice(productModels)
	if err != nil {
		return empty, err
	}

	return repository.NewPageResult(products, totalCount, query), nil
}

// SearchProducts returns one page of published products whose name or details
// contain the term, case-insensitively. Trending products sort first, then newest.
func (repo *productRepository) SearchProducts(ctx context.Context, term string, query repository.ListQuery) (repository.PageResult[*entity.Product], error) {
	var empty repository.PageResult[*entity.Product]

	pattern := "%" + term + "%"
	base := repo.db.WithContext(ctx).Model(&model.ProductModel{}).
		Where("is_published = ?", true).
		Where("name ILIKE ? OR details ILIKE ?", pattern, pattern)

	var totalCount int64
	if err := base.Session(&gorm.Session{}).Count(&totalCount).Error; err != nil {
		return empty, errors.Wrap(err, "failed to count search results")
	}

	var productModels []*model.ProductModel
	if err := applyWindow(base.Session(&gorm.Session{}), query).
		Order("trending DESC").
		Order("created_at DESC").
		Find(&productModels).Error; err != nil {
		return empty, errors.Wrap(err, "failed to search products")
	}

	products, err := repo.toDomainSlice(productModels)
	if err != nil {
		return empty, err
	}

	return repository.NewPageResult(products, totalCount, query), nil
}

// FindTrendingProducts retrieves up to limit published trending products, newest first.
func (repo *productRepository) FindTrendingProducts(ctx context.Context, limit int) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("trending = ? AND is_published = ?", true, true).
		Order("created_at DESC").
		Limit(limit).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find trending products")
	}

	return repo.toDomainSlice(productModels)
}

// UpdateProduct persists changes to an existing product.
func (repo *productRepository) UpdateProduct(ctx context.Context, product *entity.Product) error {
	productM, err := fromProductDomain(product)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Select("name", "slug", "details", "price", "discount", "trending",
			"people_bought", "category_id", "inventory", "sku", "images",
			"is_published", "rating", "number_of_reviews", "meta_title", "meta_description").
		Updates(productM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrProductSlugTaken
		}
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("product references unknown category")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrProductNotFound
	}

	return nil
}

// DeleteProduct removes a product by its ID.
func (repo *productRepository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrProductNotFound
	}

	return nil
}

// CountProductsByCategory returns the number of products attached to a category.
func (repo *productRepository) CountProductsByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count products by category")
	}

	return count, nil
}

func (repo *productRepository) toDomainSlice(productModels []*model.ProductModel) ([]*entity.Product, error) {
	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		product, err := toProductDomain(productM)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, nil
}
