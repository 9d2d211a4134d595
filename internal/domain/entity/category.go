package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category groups products. Categories form a two-level tree: a category
// either has no parent (top level) or references a top-level parent.
// Deeper nesting is not supported.
type Category struct {
	ID               uuid.UUID
	Name             string
	Slug             string
	Description      string
	ParentCategoryID *uuid.UUID // Nil for top-level categories.
	ImageURL         string
	MetaTitle        string
	MetaDescription  string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CategoryTree is a top-level category together with its subcategories.
type CategoryTree struct {
	Category
	Subcategories []*Category
}
