package handler

import (
	"log/slog"
	"net/http"

	"organic/internal/delivery/http/response"
	"organic/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// PlaceOrder handles the checkout request. The order lines always come from
// the server-side cart.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.PlaceOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.PlaceOrder(c.Request().Context(), claims.ClerkID(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order placed successfully")
}

// GetMyOrders handles the authenticated user's order history request.
func (h *OrderHandler) GetMyOrders(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return errors.WithStack(err)
	}

	orders, err := h.uc.GetUserOrders(c.Request().Context(), claims.ClerkID())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// GetOrder handles a single order lookup. Non-admin callers only see their own.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return errors.WithStack(err)
	}

	orderID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.GetOrder(c.Request().Context(), claims.ClerkID(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// ListOrders handles the admin order listing.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	page, perPage := pageParams(c)

	result, err := h.uc.ListOrders(c.Request().Context(), page, perPage)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "")
}

// UpdateOrderStatus handles the admin order status transition.
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.OrderStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.UpdateOrderStatus(c.Request().Context(), orderID, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order status updated")
}
