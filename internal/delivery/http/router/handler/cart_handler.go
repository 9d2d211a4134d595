package handler

import (
	"log/slog"
	"net/http"

	"organic/internal/delivery/http/response"
	"organic/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for cart and wishlist handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: logger,
	}
}

// CartItemRequest represents the request body for adding or updating a cart line.
type CartItemRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"gte=0"`
}

// GetCart handles the cart retrieval request.
func (h *CartHandler) GetCart(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return errors.WithStack(err)
	}

	cart, err := h.uc.GetCart(c.Request().Context(), claims.ClerkID())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "")
}

// AddToCart handles adding a product to the authenticated user's cart.
func (h *CartHandler) AddToCart(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req CartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	cart, err := h.uc.AddToCart(c.Request().Context(), claims.ClerkID(), req.ProductID, req.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Product added to cart")
}

// UpdateCartItem handles setting the quantity of a cart line. A zero
// quantity removes the line.
func (h *CartHandler) UpdateCartItem(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req CartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	cart, err := h.uc.UpdateCartItem(c.Request().Context(), claims.ClerkID(), req.ProductID, req.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Cart updated")
}

// RemoveFromCart handles removing one cart line.
func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return errors.WithStack(err)
	}

	productID, err := pathUUID(c, "productId")
	if err != nil {
		return errors.WithStack(err)
	}

	cart, err := h.uc.RemoveFromCart(c.Request().Context(), claims.ClerkID(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Product removed from cart")
}

// ClearCart handles emptying the authenticated user's cart.
func (h *CartHandler) ClearCart(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ClearCart(c.Request().Context(), claims.ClerkID()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart cleared")
}

// GetWishlist handles the wishlist retrieval request.
func (h *CartHandler) GetWishlist(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return errors.WithStack(err)
	}

	products, err := h.uc.GetWishlist(c.Request().Context(), claims.ClerkID())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// WishlistRequest represents the request body for a wishlist mutation.
type WishlistRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
}

// AddToWishlist handles adding a product to the wishlist.
func (h *CartHandler) AddToWishlist(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req WishlistRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid wishlist input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.AddToWishlist(c.Request().Context(), claims.ClerkID(), req.ProductID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product added to wishlist")
}

// RemoveFromWishlist handles removing a product from the wishlist.
func (h *CartHandler) RemoveFromWishlist(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return errors.WithStack(err)
	}

	productID, err := pathUUID(c, "productId")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.RemoveFromWishlist(c.Request().Context(), claims.ClerkID(), productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product removed from wishlist")
}
