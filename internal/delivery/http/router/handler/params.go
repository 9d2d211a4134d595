package handler

import (
	"strconv"

	"organic/internal/delivery/http/middleware"
	domainerrors "organic/internal/domain/errors"
	"organic/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// pageParams reads the page and perPage query parameters. Missing or
// malformed values come back as zero; the use case layer clamps them.
func pageParams(c echo.Context) (int, int) {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	perPage, _ := strconv.Atoi(c.QueryParam("perPage"))

	return page, perPage
}

// pathUUID parses a uuid path parameter.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails(name + " must be a valid UUID")
	}

	return id, nil
}

// sessionClaims returns the verified claims for an authenticated route.
func sessionClaims(c echo.Context) (*service.SessionClaims, error) {
	claims := middleware.ClaimsFrom(c)
	if claims == nil || claims.ClerkID() == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	return claims, nil
}
