package usecase

import (
	"context"

	"organic/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StoreInput carries the writable store settings.
type StoreInput struct {
	Name            string             `json:"name" validate:"required,max=255"`
	Logo            string             `json:"logo"`
	Tagline         string             `json:"tagline" validate:"max=255"`
	Link            string             `json:"link"`
	Description     string             `json:"description"`
	Pages           []entity.StorePage `json:"pages"`
	SocialLinks     entity.SocialLinks `json:"socialLinks"`
	FeaturedImages  []string           `json:"featuredImages"`
	ContactEmail    string             `json:"contactEmail" validate:"omitempty,email"`
	ContactPhone    string             `json:"contactPhone" validate:"max=50"`
	DefaultCurrency string             `json:"defaultCurrency" validate:"max=10"`
	TaxRate         decimal.Decimal    `json:"taxRate"`
	ShippingPolicy  string             `json:"shippingPolicy"`
	ReturnPolicy    string             `json:"returnPolicy"`
	MetaTitle       string             `json:"metaTitle" validate:"max=255"`
	MetaDescription string             `json:"metaDescription"`
}

// ShippingRateInput carries a writable shipping rate band.
type ShippingRateInput struct {
	Location       string          `json:"location" validate:"required,max=255"`
	WeightRangeMin decimal.Decimal `json:"weightRangeMin"`
	WeightRangeMax decimal.Decimal `json:"weightRangeMax"`
	Price          decimal.Decimal `json:"price"`
}

// StoreUsecase defines the store configuration use cases.
type StoreUsecase interface {
	// GetStore returns the singleton store settings.
	GetStore(ctx context.Context) (*entity.Store, error)

	// SaveStore creates or replaces the store settings. Admin only.
	SaveStore(ctx context.Context, input StoreInput) (*entity.Store, error)

	// ListShippingRates returns all shipping rate bands ordered by weight.
	ListShippingRates(ctx context.Context) ([]*entity.ShippingRate, error)

	// CreateShippingRate adds a rate band. Admin only.
	CreateShippingRate(ctx context.Context, input ShippingRateInput) (*entity.ShippingRate, error)

	// UpdateShippingRate updates a rate band. Admin only.
	UpdateShippingRate(ctx context.Context, id uuid.UUID, input ShippingRateInput) (*entity.ShippingRate, error)

	// DeleteShippingRate removes a rate band. Admin only.
	DeleteShippingRate(ctx context.Context, id uuid.UUID) error
}
