package middleware

import (
	"strings"

	"organic/internal/delivery/http/response"
	"organic/internal/domain/entity"
	"organic/internal/domain/service"
	"organic/internal/usecase"

	"github.com/labstack/echo/v4"
)

// claimsContextKey is where Authenticate stores the verified session claims.
const claimsContextKey = "sessionClaims"

// AuthMiddleware provides middleware for session authentication and
// role-based authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	authz    usecase.AuthzUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, authz usecase.AuthzUsecase) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, authz: authz}
}

// Authenticate validates the Bearer session token and stores the verified
// claims on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		c.Set(claimsContextKey, claims)

		return next(c)
	}
}

// RequireRole gates a route on the resolved role. It must be used after
// Authenticate. Role resolution fails closed, so a missing or unknown role
// renders 403.
func (m *AuthMiddleware) RequireRole(required entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := ClaimsFrom(c)
			if claims == nil {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: session information missing")
			}

			if !m.authz.HasRole(c.Request().Context(), claims, required) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+required.String()+"' role")
			}

			return next(c)
		}
	}
}

// ClaimsFrom returns the verified session claims set by Authenticate, or nil
// on unauthenticated routes.
func ClaimsFrom(c echo.Context) *service.SessionClaims {
	claims, _ := c.Get(claimsContextKey).(*service.SessionClaims)

	return claims
}
