package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User is a shopper account. Identity lives in the external provider; the
// row is keyed 1:1 to the provider subject via ClerkID. The cart and
// wishlist are embedded documents on the row, mirroring the upstream schema.
type User struct {
	ID                uuid.UUID
	ClerkID           string // External auth subject id, unique.
	Email             string
	Name              string
	FirstName         string
	LastName          string
	ImageURL          string
	Phone             string
	Role              Role // Transitions are admin-only.
	Cart              []CartItem
	Wishlist          []uuid.UUID // Product ids.
	ShippingAddresses []Address
	BillingAddresses  []Address
	IsActive          bool
	LastLoginAt       *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// CartItem is one line of a user's embedded cart. PriceSnapshot captures the
// final price at the moment the product was added.
type CartItem struct {
	ProductID     uuid.UUID       `json:"product_id"`
	Name          string          `json:"name"`
	Quantity      int             `json:"quantity"`
	PriceSnapshot decimal.Decimal `json:"price_snapshot"`
	Image         string          `json:"image,omitempty"`
	AddedAt       time.Time       `json:"added_at"`
}

// Address is a shipping or billing address snapshot.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
	IsDefault  bool   `json:"is_default,omitempty"`
	Label      string `json:"label,omitempty"`
}

// AddToCart merges a cart item into the cart: adding a product that is
// already present increments its quantity instead of appending a duplicate
// entry. Returns the updated cart.
func AddToCart(cart []CartItem, item CartItem) []CartItem {
	for i := range cart {
		if cart[i].ProductID == item.ProductID {
			cart[i].Quantity += item.Quantity

			return cart
		}
	}

	return append(cart, item)
}

// CartSubtotal sums quantity-weighted price snapshots across the cart.
func CartSubtotal(cart []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range cart {
		total = total.Add(item.PriceSnapshot.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return total
}
