package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserModel mirrors the 'users' table. The cart, wishlist and address books
// are embedded jsonb documents, matching the upstream document-style schema.
type UserModel struct {
	ID                uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ClerkID           string         `gorm:"type:varchar(255);unique;not null"`
	Email             string         `gorm:"type:varchar(255);unique;not null"`
	Name              string         `gorm:"type:varchar(255)"`
	FirstName         string         `gorm:"type:varchar(100)"`
	LastName          string         `gorm:"type:varchar(100)"`
	ImageURL          string         `gorm:"type:text"`
	Phone             string         `gorm:"type:varchar(50)"`
	Role              string         `gorm:"type:varchar(20);not null;default:'user'"`
	Cart              datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
	Wishlist          datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
	ShippingAddresses datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
	BillingAddresses  datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
	IsActive          bool           `gorm:"not null;default:true"`
	LastLoginAt       *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
