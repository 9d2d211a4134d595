package repository

import (
	"context"

	"organic/internal/domain/entity"

	"github.com/google/uuid"
)

// StoreRepository defines the interface for the singleton store settings row.
type StoreRepository interface {
	// FindStore retrieves the store settings. There is at most one row.
	FindStore(ctx context.Context) (*entity.Store, error)

	// SaveStore creates the store settings row, or updates it if one exists.
	SaveStore(ctx context.Context, store *entity.Store) error
}

// ShippingRateRepository defines the interface for weight-based shipping rates.
type ShippingRateRepository interface {
	// CreateShippingRate persists a new shipping rate band.
	CreateShippingRate(ctx context.Context, rate *entity.ShippingRate) error

	// FindAllShippingRates retrieves all rate bands ordered by minimum weight.
	FindAllShippingRates(ctx context.Context) ([]*entity.ShippingRate, error)

	// UpdateShippingRate persists changes to an existing rate band.
	UpdateShippingRate(ctx context.Context, rate *entity.ShippingRate) error

	// DeleteShippingRate removes a rate band by its ID.
	DeleteShippingRate(ctx context.Context, id uuid.UUID) error
}
