// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a single catalog item. Storefront read paths only ever
// see published products; admin paths see everything.
type Product struct {
	ID              uuid.UUID
	Name            string
	Slug            string // Unique, URL-safe identifier used by detail pages.
	Details         string
	Price           decimal.Decimal
	Discount        decimal.Decimal // Percentage in [0, 100].
	Trending        bool
	PeopleBought    int
	CategoryID      *uuid.UUID
	Inventory       int // Never negative.
	SKU             string
	Images          []string // First entry is the primary image.
	IsPublished     bool
	Rating          decimal.Decimal
	NumberOfReviews int
	MetaTitle       string
	MetaDescription string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// FinalPrice is the effective selling price: price reduced by the discount
// percentage. It is always derived; the stored column is generated by the
// database and can never be written directly.
func (p *Product) FinalPrice() decimal.Decimal {
	if p.Discount.IsZero() {
		return p.Price
	}
	factor := decimal.NewFromInt(1).Sub(p.Discount.Div(decimal.NewFromInt(100)))

	return p.Price.Mul(factor)
}

// PrimaryImage returns the first image URL, or "" when the product has none.
func (p *Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}

	return p.Images[0]
}
