package usecase

import (
	"context"

	"organic/internal/domain/entity"
	"organic/internal/domain/repository"

	"github.com/google/uuid"
)

// CategoryInput carries the writable category fields.
type CategoryInput struct {
	Name             string     `json:"name" validate:"required,max=100"`
	Slug             string     `json:"slug" validate:"required,max=100"`
	Description      string     `json:"description"`
	ParentCategoryID *uuid.UUID `json:"parentCategoryId"`
	ImageURL         string     `json:"imageUrl"`
	MetaTitle        string     `json:"metaTitle" validate:"max=255"`
	MetaDescription  string     `json:"metaDescription"`
}

// CategoryUsecase defines the category use cases.
type CategoryUsecase interface {
	// GetCategoryTree returns the top-level categories with their subcategories.
	GetCategoryTree(ctx context.Context) ([]*entity.CategoryTree, error)

	// ListCategories returns one page of categories for the admin console.
	ListCategories(ctx context.Context, page, perPage int) (repository.PageResult[*entity.Category], error)

	// GetCategoryBySlug retrieves a single category.
	GetCategoryBySlug(ctx context.Context, slug string) (*entity.Category, error)

	// CreateCategory creates a category. Nesting beyond one level is rejected. Admin only.
	CreateCategory(ctx context.Context, input CategoryInput) (*entity.Category, error)

	// UpdateCategory updates a category. Admin only.
	UpdateCategory(ctx context.Context, id uuid.UUID, input CategoryInput) (*entity.Category, error)

	// DeleteCategory removes an empty category. Admin only.
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}
