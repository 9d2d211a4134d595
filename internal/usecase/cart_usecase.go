package usecase

import (
	"context"

	"organic/internal/domain/entity"

	"github.com/google/uuid"
)

// CartSummary is a user's cart with its derived subtotal.
type CartSummary struct {
	Items    []entity.CartItem `json:"items"`
	Subtotal string            `json:"subtotal"`
}

// CartUsecase defines the cart and wishlist use cases. All operations are
// scoped to the authenticated user's clerk id.
type CartUsecase interface {
	// GetCart returns the user's cart with the subtotal.
	GetCart(ctx context.Context, clerkID string) (*CartSummary, error)

	// AddToCart adds a product to the cart. Adding a product already in the
	// cart merges quantities into the existing line.
	AddToCart(ctx context.Context, clerkID string, productID uuid.UUID, quantity int) (*CartSummary, error)

	// UpdateCartItem sets the quantity of a cart line. Zero removes the line.
	UpdateCartItem(ctx context.Context, clerkID string, productID uuid.UUID, quantity int) (*CartSummary, error)

	// RemoveFromCart removes a cart line.
	RemoveFromCart(ctx context.Context, clerkID string, productID uuid.UUID) (*CartSummary, error)

	// ClearCart empties the cart.
	ClearCart(ctx context.Context, clerkID string) error

	// GetWishlist returns the products on the user's wishlist.
	GetWishlist(ctx context.Context, clerkID string) ([]*entity.Product, error)

	// AddToWishlist adds a product id to the wishlist, ignoring duplicates.
	AddToWishlist(ctx context.Context, clerkID string, productID uuid.UUID) error

	// RemoveFromWishlist removes a product id from the wishlist.
	RemoveFromWishlist(ctx context.Context, clerkID string, productID uuid.UUID) error
}
