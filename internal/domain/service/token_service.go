package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims defines the claims carried by the identity provider's session token.
type SessionClaims struct {
	// Role is the role claim embedded in the session token metadata, if any.
	// An empty value means the role must be resolved from the user record.
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// ClerkID returns the external identity for the session subject.
func (c *SessionClaims) ClerkID() string {
	return c.Subject
}

// TokenService defines the interface for validating session tokens issued by
// the identity provider. This abstracts token verification from the use cases.
type TokenService interface {
	// ValidateToken checks the validity of a session token string.
	ValidateToken(tokenString string) (*SessionClaims, error)
}
