package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Store is the singleton configuration record for the shop: branding,
// contact details, social links and static pages. Exactly one row is
// expected to exist.
type Store struct {
	ID              uuid.UUID
	Name            string
	Logo            string
	Tagline         string
	Link            string
	Description     string
	Pages           []StorePage
	SocialLinks     SocialLinks
	FeaturedImages  []string
	ContactEmail    string
	ContactPhone    string
	DefaultCurrency string
	TaxRate         decimal.Decimal
	ShippingPolicy  string
	ReturnPolicy    string
	MetaTitle       string
	MetaDescription string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// StorePage is a static content page rendered in the storefront footer.
type StorePage struct {
	Title           string `json:"title"`
	Slug            string `json:"slug"`
	Content         string `json:"content"`
	IsPublished     bool   `json:"is_published"`
	MetaTitle       string `json:"meta_title,omitempty"`
	MetaDescription string `json:"meta_description,omitempty"`
}

// SocialLinks holds the store's social media profile URLs.
type SocialLinks struct {
	Facebook  string `json:"facebook,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Youtube   string `json:"youtube,omitempty"`
	Pinterest string `json:"pinterest,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
}
