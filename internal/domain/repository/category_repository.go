package repository

import (
	"context"

	"organic/internal/domain/entity"

	"github.com/google/uuid"
)

// CategoryRepository defines the interface for category-related database operations.
type CategoryRepository interface {
	// CreateCategory persists a new category.
	CreateCategory(ctx context.Context, category *entity.Category) error

	// FindCategoryByID retrieves a category by its unique ID.
	FindCategoryByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindCategoryBySlug retrieves a category by its URL slug.
	FindCategoryBySlug(ctx context.Context, slug string) (*entity.Category, error)

	// ListCategories returns one page of categories matching the query conditions.
	ListCategories(ctx context.Context, query ListQuery) (PageResult[*entity.Category], error)

	// FindAllCategories retrieves every category, for tree assembly.
	FindAllCategories(ctx context.Context) ([]*entity.Category, error)

	// FindSubcategories retrieves the direct children of a category.
	FindSubcategories(ctx context.Context, parentID uuid.UUID) ([]*entity.Category, error)

	// UpdateCategory persists changes to an existing category.
	UpdateCategory(ctx context.Context, category *entity.Category) error

	// DeleteCategory removes a category by its ID.
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}
