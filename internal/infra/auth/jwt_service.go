// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"organic/config"
	domainerrors "organic/internal/domain/errors"
	"organic/internal/domain/service"
	"organic/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// jwtService validates session tokens minted by the identity provider.
// Sessions are HMAC-signed; the subject claim carries the provider user id.
type jwtService struct {
	sessionSecret string
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Clerk.SessionSecret == "" {
		return nil, errors.New("session secret must be provided")
	}

	return &jwtService{
		sessionSecret: cfg.Clerk.SessionSecret,
	}, nil
}

// ValidateToken checks the validity of a session token string.
func (s *jwtService) ValidateToken(tokenString string) (*service.SessionClaims, error) {
	claims := &service.SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.sessionSecret), nil
	})
	if err != nil {
		return nil, domainerrors.ErrUnauthorized.WrapMessage(err.Error())
	}
	if !token.Valid || claims.Subject == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	return claims, nil
}
