package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShippingRate prices delivery to a location for a parcel weight range.
type ShippingRate struct {
	ID             uuid.UUID
	Location       string
	WeightRangeMin decimal.Decimal
	WeightRangeMax decimal.Decimal
	Price          decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
