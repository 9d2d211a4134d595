package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"organic/config"
	"organic/internal/delivery/http/middleware"
	"organic/internal/delivery/http/validator"
	"organic/internal/domain/entity"
	domainerrors "organic/internal/domain/errors"
	"organic/internal/domain/querykey"
	"organic/internal/domain/repository"
	"organic/internal/domain/service"
	mockRepo "organic/internal/mocks/repository"
	mockSvc "organic/internal/mocks/service"
	"organic/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// newCatalogTestServer registers the storefront product routes against a real
// catalog service backed by mocked repositories.
func newCatalogTestServer(t *testing.T) (*echo.Echo, *mockRepo.MockProductRepository, *mockRepo.MockCategoryRepository) {
	t.Helper()

	logger := discardLogger()

	cache := mockSvc.NewMockQueryCache(t)
	cache.EXPECT().Get(mock.Anything, mock.Anything, mock.Anything).Return(service.ErrCacheMiss).Maybe()
	cache.EXPECT().Set(mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	productRepo := mockRepo.NewMockProductRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)

	cfg := &config.Config{}
	cfg.Catalog.DefaultPerPage = 10
	cfg.Catalog.MaxPerPage = 100

	uc := impl.NewCatalogService(impl.CatalogServiceParams{
		ProductRepo:  productRepo,
		CategoryRepo: categoryRepo,
		Cache:        cache,
		Registry:     querykey.NewRegistry(),
		Storage:      mockSvc.NewMockObjectStorage(t),
		Config:       cfg,
		Logger:       logger,
	})

	h := NewProductHandler(uc, logger)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	e.GET("/products", h.ListProducts)
	e.GET("/products/:slug", h.GetProduct)

	return e, productRepo, categoryRepo
}

func TestListProducts_ReturnsPage(t *testing.T) {
	e, productRepo, _ := newCatalogTestServer(t)

	products := []*entity.Product{
		{Name: "Organic Honey", Slug: "organic-honey", Price: decimal.NewFromInt(12), IsPublished: true},
	}
	productRepo.EXPECT().
		ListProducts(mock.Anything, mock.AnythingOfType("repository.ListQuery")).
		Return(repository.PageResult[*entity.Product]{
			Items:       products,
			TotalCount:  1,
			TotalPages:  1,
			CurrentPage: 1,
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "organic-honey")
}

func TestGetProduct_NotFoundRendersEnvelope(t *testing.T) {
	e, productRepo, _ := newCatalogTestServer(t)

	productRepo.EXPECT().
		FindProductBySlug(mock.Anything, "missing").
		Return(nil, domainerrors.ErrProductNotFound)

	req := httptest.NewRequest(http.MethodGet, "/products/missing", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "PRODUCT_NOT_FOUND")
}
