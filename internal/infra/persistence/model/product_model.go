// Package model contains the GORM-specific structs mirroring the PostgreSQL schema.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ProductModel is the GORM-specific struct for the 'products' table.
// FinalPrice is a generated column maintained by the database from price and
// discount; it is read-only from the application side.
type ProductModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name            string          `gorm:"type:varchar(255);not null"`
	Slug            string          `gorm:"type:varchar(255);unique;not null"`
	Details         string          `gorm:"type:text"`
	Price           decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Discount        decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	FinalPrice      decimal.Decimal `gorm:"type:decimal(10,2);->"`
	Trending        bool            `gorm:"not null;default:false;index"`
	PeopleBought    int             `gorm:"not null;default:0"`
	CategoryID      *uuid.UUID      `gorm:"type:uuid;index"`
	Inventory       int             `gorm:"not null;default:0"`
	SKU             string          `gorm:"column:sku;type:varchar(100)"`
	Images          datatypes.JSON  `gorm:"type:jsonb;not null;default:'[]'"`
	IsPublished     bool            `gorm:"not null;default:false;index"`
	Rating          decimal.Decimal `gorm:"type:decimal(3,2);not null;default:0"`
	NumberOfReviews int             `gorm:"not null;default:0"`
	MetaTitle       string          `gorm:"type:varchar(255)"`
	MetaDescription string          `gorm:"type:text"`
	CreatedAt       time.Time       `gorm:"index"`
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// CategoryModel is the GORM-specific struct for the 'categories' table.
// ParentCategoryID is nil for top-level categories; the two-level depth
// limit is enforced at the use case layer.
type CategoryModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name             string     `gorm:"type:varchar(100);not null"`
	Slug             string     `gorm:"type:varchar(100);unique;not null"`
	Description      string     `gorm:"type:text"`
	ParentCategoryID *uuid.UUID `gorm:"type:uuid;index"`
	ImageURL         string     `gorm:"type:text"`
	MetaTitle        string     `gorm:"type:varchar(255)"`
	MetaDescription  string     `gorm:"type:text"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}
