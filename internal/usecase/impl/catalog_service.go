package impl

import (
	"context"
	"log/slog"

	"organic/config"
	"organic/internal/domain/entity"
	domainerrors "organic/internal/domain/errors"
	"organic/internal/domain/querykey"
	"organic/internal/domain/repository"
	"organic/internal/domain/service"
	"organic/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const defaultTrendingLimit = 8

type catalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	cache        service.QueryCache
	registry     *querykey.Registry
	storage      service.ObjectStorage
	config       *config.Config
	logger       *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	Cache        service.QueryCache
	Registry     *querykey.Registry
	Storage      service.ObjectStorage
	Config       *config.Config
	Logger       *slog.Logger
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo:  params.ProductRepo,
		categoryRepo: params.CategoryRepo,
		cache:        params.Cache,
		registry:     params.Registry,
		storage:      params.Storage,
		config:       params.Config,
		logger:       params.Logger,
	}
}

// ListProducts returns one page of products for the storefront or admin console.
func (s *catalogService) ListProducts(ctx context.Context, opts usecase.ProductListOptions) (repository.PageResult[*entity.Product], error) {
	var empty repository.PageResult[*entity.Product]

	query := repository.ListQuery{
		Page:    clampPage(opts.Page),
		PerPage: clampPerPage(opts.PerPage, s.config),
		Sorts:   []repository.Sort{{Field: "created_at", Desc: true}},
	}

	if !opts.IncludeUnpublished {
		query.Conditions = append(query.Conditions, repository.Eq("is_published", true))
	}

	// The key is derived after every condition is in place so that listings
	// with different filters can never share a cache entry.
	var key querykey.Key
	if opts.CategorySlug != "" {
		category, err := s.GetCategoryForListing(ctx, opts.CategorySlug)
		if err != nil {
			return empty, err
		}
		query.Conditions = append(query.Conditions, repository.Eq("category_id", category.ID))
		key = querykey.ProductsByCategory(category.ID.String(), query.Page, query.PerPage, query.Fingerprint())
	} else {
		key = querykey.ProductsList(query.Page, query.PerPage, query.Fingerprint())
	}

	return fetchCached(ctx, s.cache, s.logger, key, func(ctx context.Context) (repository.PageResult[*entity.Product], error) {
		return s.productRepo.ListProducts(ctx, query)
	})
}

// GetCategoryForListing resolves a category slug for listing filters.
func (s *catalogService) GetCategoryForListing(ctx context.Context, slug string) (*entity.Category, error) {
	return fetchCached(ctx, s.cache, s.logger, querykey.CategoryDetails(slug), func(ctx context.Context) (*entity.Category, error) {
		return s.categoryRepo.FindCategoryBySlug(ctx, slug)
	})
}

// GetProductBySlug retrieves a single product for a detail page.
func (s *catalogService) GetProductBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	return fetchCached(ctx, s.cache, s.logger, querykey.ProductDetails(slug), func(ctx context.Context) (*entity.Product, error) {
		return s.productRepo.FindProductBySlug(ctx, slug)
	})
}

// GetTrendingProducts retrieves the published trending products for the home page.
func (s *catalogService) GetTrendingProducts(ctx context.Context) ([]*entity.Product, error) {
	limit := s.config.Catalog.TrendingLimit
	if limit <= 0 {
		limit = defaultTrendingLimit
	}

	return fetchCached(ctx, s.cache, s.logger, querykey.ProductsTrending(limit), func(ctx context.Context) ([]*entity.Product, error) {
		return s.productRepo.FindTrendingProducts(ctx, limit)
	})
}

// SearchProducts finds published products matching the term.
func (s *catalogService) SearchProducts(ctx context.Context, term string, page, perPage int) (repository.PageResult[*entity.Product], error) {
	query := repository.ListQuery{
		Page:    clampPage(page),
		PerPage: clampPerPage(perPage, s.config),
	}

	key := querykey.ProductsSearch(term, query.Page, query.PerPage)

	return fetchCached(ctx, s.cache, s.logger, key, func(ctx context.Context) (repository.PageResult[*entity.Product], error) {
		return s.productRepo.SearchProducts(ctx, term, query)
	})
}

// CreateProduct creates a product. Admin only.
func (s *catalogService) CreateProduct(ctx context.Context, input usecase.ProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product := productFromInput(input)
	if err := s.productRepo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}

	invalidateResource(ctx, s.cache, s.logger, s.registry, querykey.ResourceProducts)

	return product, nil
}

// UpdateProduct updates a product. Admin only.
func (s *catalogService) UpdateProduct(ctx context.Context, id uuid.UUID, input usecase.ProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product := productFromInput(input)
	product.ID = id
	if err := s.productRepo.UpdateProduct(ctx, product); err != nil {
		return nil, err
	}

	invalidateResource(ctx, s.cache, s.logger, s.registry, querykey.ResourceProducts)

	return s.productRepo.FindProductByID(ctx, id)
}

// DeleteProduct removes a product and its stored images. Admin only.
func (s *catalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.FindProductByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.productRepo.DeleteProduct(ctx, id); err != nil {
		return err
	}

	// Stored images go best-effort after the row; an orphaned object is
	// preferable to a product row pointing at a deleted image.
	for _, imageURL := range product.Images {
		if err := s.storage.Delete(ctx, imageURL); err != nil {
			s.logger.Warn("failed to delete product image",
				slog.String("url", imageURL),
				slog.String("error", err.Error()),
			)
		}
	}

	invalidateResource(ctx, s.cache, s.logger, s.registry, querykey.ResourceProducts)

	return nil
}

// UploadProductImage stores one image and returns its public URL. Admin only.
func (s *catalogService) UploadProductImage(ctx context.Context, input service.UploadInput) (string, error) {
	return s.storage.Upload(ctx, input)
}

// DeleteProductImage removes a stored image by public URL. Admin only.
func (s *catalogService) DeleteProductImage(ctx context.Context, publicURL string) error {
	return s.storage.Delete(ctx, publicURL)
}

func validateProductInput(input usecase.ProductInput) error {
	if input.Price.IsNegative() {
		return domainerrors.ErrValidationFailed.WrapMessage("price must not be negative")
	}
	if input.Discount.IsNegative() || input.Discount.GreaterThan(decimal.NewFromInt(100)) {
		return domainerrors.ErrValidationFailed.WrapMessage("discount must be between 0 and 100")
	}
	if input.Inventory < 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("inventory must not be negative")
	}

	return nil
}

func productFromInput(input usecase.ProductInput) *entity.Product {
	return &entity.Product{
		Name:            input.Name,
		Slug:            input.Slug,
		Details:         input.Details,
		Price:           input.Price,
		Discount:        input.Discount,
		Trending:        input.Trending,
		CategoryID:      input.CategoryID,
		Inventory:       input.Inventory,
		SKU:             input.SKU,
		Images:          input.Images,
		IsPublished:     input.IsPublished,
		MetaTitle:       input.MetaTitle,
		MetaDescription: input.MetaDescription,
	}
}
