package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus tracks how far payment for an order has progressed.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// IsValid checks if the PaymentStatus is a valid value.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	default:
		return false
	}
}

// ShippingStatus tracks fulfilment of an order.
type ShippingStatus string

const (
	ShippingStatusPending   ShippingStatus = "pending"
	ShippingStatusShipped   ShippingStatus = "shipped"
	ShippingStatusDelivered ShippingStatus = "delivered"
	ShippingStatusReturned  ShippingStatus = "returned"
)

// IsValid checks if the ShippingStatus is a valid value.
func (s ShippingStatus) IsValid() bool {
	switch s {
	case ShippingStatusPending, ShippingStatusShipped, ShippingStatusDelivered, ShippingStatusReturned:
		return true
	default:
		return false
	}
}

// Order is a placed order. Its items are created atomically with the order
// row and are immutable afterwards.
type Order struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	OrderNumber     string // Time-based, unique.
	OrderDate       time.Time
	ShippingAddress *Address
	BillingAddress  *Address
	TotalAmount     decimal.Decimal
	ShippingCost    decimal.Decimal
	TaxAmount       decimal.Decimal
	DiscountApplied decimal.Decimal
	PaymentStatus   PaymentStatus
	ShippingStatus  ShippingStatus
	TrackingNumber  string
	Items           []*OrderItem
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderItem is one immutable line of an order. Product name and prices are
// snapshots: later catalog edits never rewrite order history.
type OrderItem struct {
	ID              uuid.UUID
	OrderID         uuid.UUID
	ProductID       uuid.UUID
	ProductName     string
	Quantity        int
	UnitPrice       decimal.Decimal
	DiscountApplied decimal.Decimal
	TotalPrice      decimal.Decimal
	CreatedAt       time.Time
}
