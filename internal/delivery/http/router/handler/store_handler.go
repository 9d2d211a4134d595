package handler

import (
	"log/slog"
	"net/http"

	"organic/internal/delivery/http/response"
	"organic/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StoreHandler holds dependencies for store settings and shipping rate handlers.
type StoreHandler struct {
	uc     usecase.StoreUsecase
	logger *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler, injected by Fx.
func NewStoreHandler(uc usecase.StoreUsecase, logger *slog.Logger) *StoreHandler {
	return &StoreHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetStore handles the storefront settings request.
func (h *StoreHandler) GetStore(c echo.Context) error {
	store, err := h.uc.GetStore(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, store, "")
}

// SaveStore handles the admin store settings update.
func (h *StoreHandler) SaveStore(c echo.Context) error {
	var input usecase.StoreInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store input")
	}

	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	store, err := h.uc.SaveStore(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, store, "Store settings saved")
}

// ListShippingRates handles the shipping rate listing request.
func (h *StoreHandler) ListShippingRates(c echo.Context) error {
	rates, err := h.uc.ListShippingRates(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rates, "")
}

// CreateShippingRate handles the admin shipping rate creation request.
func (h *StoreHandler) CreateShippingRate(c echo.Context) error {
	var input usecase.ShippingRateInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shipping rate input")
	}

	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	rate, err := h.uc.CreateShippingRate(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, rate, "Shipping rate created successfully")
}

// UpdateShippingRate handles the admin shipping rate update request.
func (h *StoreHandler) UpdateShippingRate(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.ShippingRateInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shipping rate input")
	}

	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	rate, err := h.uc.UpdateShippingRate(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rate, "Shipping rate updated successfully")
}

// DeleteShippingRate handles the admin shipping rate deletion request.
func (h *StoreHandler) DeleteShippingRate(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteShippingRate(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Shipping rate deleted successfully")
}
