package handler

import (
	"log/slog"
	"net/http"

	"organic/internal/delivery/http/response"
	"organic/internal/domain/entity"
	"organic/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	authz  usecase.AuthzUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, authz usecase.AuthzUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		authz:  authz,
		logger: logger,
	}
}

// MeResponse represents the authenticated user with the role the session
// effectively carries.
type MeResponse struct {
	User *entity.User `json:"user"`
	Role entity.Role  `json:"role"`
}

// GetMe handles the authenticated profile request.
func (h *UserHandler) GetMe(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return errors.WithStack(err)
	}

	ctx := c.Request().Context()

	user, err := h.uc.GetUserByClerkID(ctx, claims.ClerkID())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, MeResponse{
		User: user,
		Role: h.authz.ResolveRole(ctx, claims),
	}, "")
}

// ListUsers handles the admin user listing.
func (h *UserHandler) ListUsers(c echo.Context) error {
	page, perPage := pageParams(c)

	result, err := h.uc.ListUsers(c.Request().Context(), page, perPage)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "")
}

// SetRoleRequest represents the request body for a role assignment.
type SetRoleRequest struct {
	TargetUserID uuid.UUID `json:"targetUserId" validate:"required"`
	Role         string    `json:"role" validate:"required"`
}

// SetRole handles the admin role assignment request.
func (h *UserHandler) SetRole(c echo.Context) error {
	var req SetRoleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid role input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.SetUserRole(c.Request().Context(), req.TargetUserID, entity.Role(req.Role)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Role updated successfully")
}
