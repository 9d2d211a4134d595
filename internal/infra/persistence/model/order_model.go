package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	OrderNumber     string          `gorm:"type:varchar(50);unique;not null"`
	OrderDate       time.Time       `gorm:"not null"`
	ShippingAddress datatypes.JSON  `gorm:"type:jsonb"`
	BillingAddress  datatypes.JSON  `gorm:"type:jsonb"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ShippingCost    decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	TaxAmount       decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	DiscountApplied decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	PaymentStatus   string          `gorm:"type:varchar(20);not null;default:'pending'"`
	ShippingStatus  string          `gorm:"type:varchar(20);not null;default:'pending'"`
	TrackingNumber  string          `gorm:"type:varchar(100)"`
	CreatedAt       time.Time       `gorm:"index"`
	UpdatedAt       time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the GORM-specific struct for the 'order_items' table.
// Rows are written once, together with their order, and never updated.
type OrderItemModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID       uuid.UUID       `gorm:"type:uuid;not null"`
	ProductName     string          `gorm:"type:varchar(255);not null"`
	Quantity        int             `gorm:"not null"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	DiscountApplied decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	TotalPrice      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
