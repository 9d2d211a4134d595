package repository

import (
	"context"

	"organic/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductRepository defines the interface for product-related database operations.
type ProductRepository interface {
	// CreateProduct persists a new product.
	CreateProduct(ctx context.Context, product *entity.Product) error

	// FindProductByID retrieves a product by its unique ID.
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindProductBySlug retrieves a product by its URL slug.
	FindProductBySlug(ctx context.Context, slug string) (*entity.Product, error)

	// FindProductsByIDs retrieves all products matching the given IDs.
	// Missing IDs are silently omitted from the result.
	FindProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	// ListProducts returns one page of products matching the query conditions.
	ListProducts(ctx context.Context, query ListQuery) (PageResult[*entity.Product], error)

	// SearchProducts returns one page of published products whose name or
	// details contain the term, case-insensitively. Trending products sort
	// first, then newest.
	SearchProducts(ctx context.Context, term string, query ListQuery) (PageResult[*entity.Product], error)

	// FindTrendingProducts retrieves up to limit published trending products, newest first.
	FindTrendingProducts(ctx context.Context, limit int) ([]*entity.Product, error)

	// UpdateProduct persists changes to an existing product.
	UpdateProduct(ctx context.Context, product *entity.Product) error

	// DeleteProduct removes a product by its ID.
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	// CountProductsByCategory returns the number of products attached to a category.
	CountProductsByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
}
