package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"organic/config"
	"organic/internal/domain/entity"
	domainerrors "organic/internal/domain/errors"
	"organic/internal/domain/querykey"
	"organic/internal/domain/repository"
	"organic/internal/domain/service"
	mockRepo "organic/internal/mocks/repository"
	mockSvc "organic/internal/mocks/service"
	"organic/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// passthroughCache always misses and accepts writes, so tests exercise the
// repository path without cached state getting in the way.
func passthroughCache(t *testing.T) *mockSvc.MockQueryCache {
	t.Helper()

	cache := mockSvc.NewMockQueryCache(t)
	cache.EXPECT().Get(mock.Anything, mock.Anything, mock.Anything).Return(service.ErrCacheMiss).Maybe()
	cache.EXPECT().Set(mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	cache.EXPECT().Invalidate(mock.Anything, mock.Anything).Return(nil).Maybe()
	cache.EXPECT().Invalidate(mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	cache.EXPECT().Invalidate(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	return cache
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Catalog.DefaultPerPage = 10
	cfg.Catalog.MaxPerPage = 100

	return cfg
}

func newCatalogService(t *testing.T) (usecase.CatalogUsecase, *mockRepo.MockProductRepository, *mockRepo.MockCategoryRepository, *mockSvc.MockObjectStorage) {
	t.Helper()

	productRepo := mockRepo.NewMockProductRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	storage := mockSvc.NewMockObjectStorage(t)
	svc := NewCatalogService(CatalogServiceParams{
		ProductRepo:  productRepo,
		CategoryRepo: categoryRepo,
		Cache:        passthroughCache(t),
		Registry:     querykey.NewRegistry(),
		Storage:      storage,
		Config:       testConfig(),
		Logger:       testLogger(),
	})

	return svc, productRepo, categoryRepo, storage
}

func TestCatalogService_ListProducts_PublishedOnly(t *testing.T) {
	svc, productRepo, _, _ := newCatalogService(t)
	ctx := context.Background()

	var captured repository.ListQuery
	productRepo.EXPECT().
		ListProducts(ctx, mock.AnythingOfType("repository.ListQuery")).
		Run(func(_ context.Context, query repository.ListQuery) {
			captured = query
		}).
		Return(repository.NewPageResult([]*entity.Product{{Name: "Tomato Seeds"}}, 1, repository.ListQuery{Page: 1, PerPage: 10}), nil)

	result, err := svc.ListProducts(ctx, usecase.ProductListOptions{})
	require.NoError(t, err)
	assert.Len(t, result.Items, 1)
	assert.Equal(t, 1, captured.Page)
	assert.Equal(t, 10, captured.PerPage)
	require.Len(t, captured.Conditions, 1)
	assert.Equal(t, "is_published", captured.Conditions[0].Field)
	assert.Equal(t, true, captured.Conditions[0].Value)
}

func TestCatalogService_ListProducts_IncludeUnpublished(t *testing.T) {
	svc, productRepo, _, _ := newCatalogService(t)
	ctx := context.Background()

	var captured repository.ListQuery
	productRepo.EXPECT().
		ListProducts(ctx, mock.AnythingOfType("repository.ListQuery")).
		Run(func(_ context.Context, query repository.ListQuery) {
			captured = query
		}).
		Return(repository.NewPageResult([]*entity.Product{}, 0, repository.ListQuery{Page: 1, PerPage: 10}), nil)

	_, err := svc.ListProducts(ctx, usecase.ProductListOptions{IncludeUnpublished: true})
	require.NoError(t, err)
	assert.Empty(t, captured.Conditions)
}

func TestCatalogService_ListProducts_ByCategorySlug(t *testing.T) {
	svc, productRepo, categoryRepo, _ := newCatalogService(t)
	ctx := context.Background()
	categoryID := uuid.New()

	categoryRepo.EXPECT().
		FindCategoryBySlug(ctx, "seeds").
		Return(&entity.Category{ID: categoryID, Slug: "seeds"}, nil)

	var captured repository.ListQuery
	productRepo.EXPECT().
		ListProducts(ctx, mock.AnythingOfType("repository.ListQuery")).
		Run(func(_ context.Context, query repository.ListQuery) {
			captured = query
		}).
		Return(repository.NewPageResult([]*entity.Product{}, 0, repository.ListQuery{Page: 1, PerPage: 10}), nil)

	_, err := svc.ListProducts(ctx, usecase.ProductListOptions{CategorySlug: "seeds"})
	require.NoError(t, err)

	found := false
	for _, cond := range captured.Conditions {
		if cond.Field == "category_id" {
			assert.Equal(t, categoryID, cond.Value)
			found = true
		}
	}
	assert.True(t, found, "listing should filter on the resolved category id")
}

func TestCatalogService_ListProducts_UnknownCategory(t *testing.T) {
	svc, _, categoryRepo, _ := newCatalogService(t)
	ctx := context.Background()

	categoryRepo.EXPECT().
		FindCategoryBySlug(ctx, "nope").
		Return(nil, domainerrors.ErrCategoryNotFound)

	_, err := svc.ListProducts(ctx, usecase.ProductListOptions{CategorySlug: "nope"})
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestCatalogService_GetProductBySlug(t *testing.T) {
	svc, productRepo, _, _ := newCatalogService(t)
	ctx := context.Background()

	product := &entity.Product{ID: uuid.New(), Slug: "basil-plant", Name: "Basil Plant"}
	productRepo.EXPECT().
		FindProductBySlug(ctx, "basil-plant").
		Return(product, nil)

	got, err := svc.GetProductBySlug(ctx, "basil-plant")
	require.NoError(t, err)
	assert.Equal(t, product, got)
}

func TestCatalogService_GetTrendingProducts_DefaultLimit(t *testing.T) {
	svc, productRepo, _, _ := newCatalogService(t)
	ctx := context.Background()

	productRepo.EXPECT().
		FindTrendingProducts(ctx, defaultTrendingLimit).
		Return([]*entity.Product{{Name: "Compost Bin"}}, nil)

	products, err := svc.GetTrendingProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestCatalogService_SearchProducts(t *testing.T) {
	svc, productRepo, _, _ := newCatalogService(t)
	ctx := context.Background()

	productRepo.EXPECT().
		SearchProducts(ctx, "tomato", mock.AnythingOfType("repository.ListQuery")).
		Return(repository.NewPageResult([]*entity.Product{{Name: "Tomato Seeds"}}, 1, repository.ListQuery{Page: 1, PerPage: 10}), nil)

	result, err := svc.SearchProducts(ctx, "tomato", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.TotalCount)
}

func TestCatalogService_CreateProduct_Success(t *testing.T) {
	svc, productRepo, _, _ := newCatalogService(t)
	ctx := context.Background()

	productRepo.EXPECT().
		CreateProduct(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	product, err := svc.CreateProduct(ctx, usecase.ProductInput{
		Name:  "Tomato Seeds",
		Slug:  "tomato-seeds",
		Price: decimal.NewFromInt(5),
	})
	require.NoError(t, err)
	assert.Equal(t, "tomato-seeds", product.Slug)
}

func TestCatalogService_CreateProduct_InvalidDiscount(t *testing.T) {
	svc, _, _, _ := newCatalogService(t)
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, usecase.ProductInput{
		Name:     "Tomato Seeds",
		Price:    decimal.NewFromInt(5),
		Discount: decimal.NewFromInt(150),
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_CreateProduct_NegativePrice(t *testing.T) {
	svc, _, _, _ := newCatalogService(t)
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, usecase.ProductInput{
		Name:  "Tomato Seeds",
		Price: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_DeleteProduct_RemovesStoredImages(t *testing.T) {
	svc, productRepo, _, storage := newCatalogService(t)
	ctx := context.Background()
	id := uuid.New()

	productRepo.EXPECT().
		FindProductByID(ctx, id).
		Return(&entity.Product{
			ID:     id,
			Images: []string{"https://cdn.example.com/images/a.webp", "https://cdn.example.com/images/b.webp"},
		}, nil)
	productRepo.EXPECT().
		DeleteProduct(ctx, id).
		Return(nil)
	storage.EXPECT().
		Delete(ctx, "https://cdn.example.com/images/a.webp").
		Return(nil)
	storage.EXPECT().
		Delete(ctx, "https://cdn.example.com/images/b.webp").
		Return(nil)

	err := svc.DeleteProduct(ctx, id)
	require.NoError(t, err)
}

func TestCatalogService_DeleteProduct_NotFound(t *testing.T) {
	svc, productRepo, _, _ := newCatalogService(t)
	ctx := context.Background()
	id := uuid.New()

	productRepo.EXPECT().
		FindProductByID(ctx, id).
		Return(nil, domainerrors.ErrProductNotFound)

	err := svc.DeleteProduct(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

// newCachedCatalogService swaps the passthrough cache for a real in-memory
// one, for tests that observe which listings share cache entries.
func newCachedCatalogService(t *testing.T) (usecase.CatalogUsecase, *mockRepo.MockProductRepository, *mockRepo.MockCategoryRepository) {
	t.Helper()

	productRepo := mockRepo.NewMockProductRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	svc := NewCatalogService(CatalogServiceParams{
		ProductRepo:  productRepo,
		CategoryRepo: categoryRepo,
		Cache:        newMemoryCache(),
		Registry:     querykey.NewRegistry(),
		Storage:      mockSvc.NewMockObjectStorage(t),
		Config:       testConfig(),
		Logger:       testLogger(),
	})

	return svc, productRepo, categoryRepo
}

func TestCatalogService_ListProducts_CategoryCacheScopedByAudience(t *testing.T) {
	svc, productRepo, categoryRepo := newCachedCatalogService(t)
	ctx := context.Background()
	categoryID := uuid.New()

	categoryRepo.EXPECT().
		FindCategoryBySlug(ctx, "seeds").
		Return(&entity.Category{ID: categoryID, Slug: "seeds"}, nil).
		Once()

	published := []*entity.Product{{Name: "Tomato Seeds", IsPublished: true}}
	withDrafts := []*entity.Product{
		{Name: "Tomato Seeds", IsPublished: true},
		{Name: "Draft Seeds"},
	}
	productRepo.EXPECT().
		ListProducts(ctx, mock.AnythingOfType("repository.ListQuery")).
		RunAndReturn(func(_ context.Context, query repository.ListQuery) (repository.PageResult[*entity.Product], error) {
			for _, cond := range query.Conditions {
				if cond.Field == "is_published" {
					return repository.NewPageResult(published, 1, query), nil
				}
			}

			return repository.NewPageResult(withDrafts, 2, query), nil
		}).
		Twice()

	publicPage, err := svc.ListProducts(ctx, usecase.ProductListOptions{CategorySlug: "seeds"})
	require.NoError(t, err)
	require.Len(t, publicPage.Items, 1)

	// The admin view of the same category page must not reuse the public entry.
	adminPage, err := svc.ListProducts(ctx, usecase.ProductListOptions{CategorySlug: "seeds", IncludeUnpublished: true})
	require.NoError(t, err)
	assert.Len(t, adminPage.Items, 2)

	// And the public view warmed after the admin one stays published-only.
	publicAgain, err := svc.ListProducts(ctx, usecase.ProductListOptions{CategorySlug: "seeds"})
	require.NoError(t, err)
	require.Len(t, publicAgain.Items, 1)
	assert.Equal(t, "Tomato Seeds", publicAgain.Items[0].Name)
}
