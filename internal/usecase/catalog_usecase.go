// Package usecase defines the application's use case interfaces and their
// data transfer objects. Implementations live in the impl subpackage.
package usecase

import (
	"context"

	"organic/internal/domain/entity"
	"organic/internal/domain/repository"
	"organic/internal/domain/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductListOptions narrows a product listing.
type ProductListOptions struct {
	Page    int
	PerPage int

	// CategorySlug restricts the listing to a category when set.
	CategorySlug string

	// IncludeUnpublished lifts the published-only filter. Only admin
	// callers may set it.
	IncludeUnpublished bool
}

// ProductInput carries the writable product fields. The effective selling
// price is derived from Price and Discount and can never be supplied.
type ProductInput struct {
	Name            string          `json:"name" validate:"required,max=255"`
	Slug            string          `json:"slug" validate:"required,max=255"`
	Details         string          `json:"details"`
	Price           decimal.Decimal `json:"price" validate:"required"`
	Discount        decimal.Decimal `json:"discount"`
	Trending        bool            `json:"trending"`
	CategoryID      *uuid.UUID      `json:"categoryId"`
	Inventory       int             `json:"inventory" validate:"gte=0"`
	SKU             string          `json:"sku" validate:"max=100"`
	Images          []string        `json:"images"`
	IsPublished     bool            `json:"isPublished"`
	MetaTitle       string          `json:"metaTitle" validate:"max=255"`
	MetaDescription string          `json:"metaDescription"`
}

// CatalogUsecase defines the product catalog use cases: storefront reads and
// admin mutations.
type CatalogUsecase interface {
	// ListProducts returns one page of products for the storefront or admin console.
	ListProducts(ctx context.Context, opts ProductListOptions) (repository.PageResult[*entity.Product], error)

	// GetProductBySlug retrieves a single product for a detail page.
	GetProductBySlug(ctx context.Context, slug string) (*entity.Product, error)

	// GetTrendingProducts retrieves the published trending products for the home page.
	GetTrendingProducts(ctx context.Context) ([]*entity.Product, error)

	// SearchProducts finds published products matching the term.
	SearchProducts(ctx context.Context, term string, page, perPage int) (repository.PageResult[*entity.Product], error)

	// CreateProduct creates a product. Admin only.
	CreateProduct(ctx context.Context, input ProductInput) (*entity.Product, error)

	// UpdateProduct updates a product. Admin only.
	UpdateProduct(ctx context.Context, id uuid.UUID, input ProductInput) (*entity.Product, error)

	// DeleteProduct removes a product and its stored images. Admin only.
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	// UploadProductImage stores one image and returns its public URL. Admin only.
	UploadProductImage(ctx context.Context, input service.UploadInput) (string, error)

	// DeleteProductImage removes a stored image by public URL. Admin only.
	DeleteProductImage(ctx context.Context, publicURL string) error
}
