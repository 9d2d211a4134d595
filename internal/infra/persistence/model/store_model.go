package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// StoreModel is the GORM-specific struct for the 'stores' table.
// The application treats this table as a singleton.
type StoreModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name            string          `gorm:"type:varchar(255);not null"`
	Logo            string          `gorm:"type:text"`
	Tagline         string          `gorm:"type:varchar(255)"`
	Link            string          `gorm:"type:text"`
	Description     string          `gorm:"type:text"`
	Pages           datatypes.JSON  `gorm:"type:jsonb;not null;default:'[]'"`
	SocialLinks     datatypes.JSON  `gorm:"type:jsonb;not null;default:'{}'"`
	FeaturedImages  datatypes.JSON  `gorm:"type:jsonb;not null;default:'[]'"`
	ContactEmail    string          `gorm:"type:varchar(255)"`
	ContactPhone    string          `gorm:"type:varchar(50)"`
	DefaultCurrency string          `gorm:"type:varchar(10);not null;default:'USD'"`
	TaxRate         decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	ShippingPolicy  string          `gorm:"type:text"`
	ReturnPolicy    string          `gorm:"type:text"`
	MetaTitle       string          `gorm:"type:varchar(255)"`
	MetaDescription string          `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}

// ShippingRateModel is the GORM-specific struct for the 'shipping_rates' table.
type ShippingRateModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Location       string          `gorm:"type:varchar(255);not null"`
	WeightRangeMin decimal.Decimal `gorm:"type:decimal(10,3);not null"`
	WeightRangeMax decimal.Decimal `gorm:"type:decimal(10,3);not null"`
	Price          decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShippingRateModel) TableName() string {
	return "shipping_rates"
}
