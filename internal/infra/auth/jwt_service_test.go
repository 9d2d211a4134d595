package auth

import (
	"testing"
	"time"

	"organic/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionSecret = "test-session-secret"

func newTestTokenService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.Clerk.SessionSecret = testSessionSecret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func mintToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func TestJWTService_ValidateToken(t *testing.T) {
	svc := newTestTokenService(t)

	token := mintToken(t, testSessionSecret, jwt.MapClaims{
		"sub":  "user_2abc",
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user_2abc", claims.ClerkID())
	assert.Equal(t, "admin", claims.Role)
}

func TestJWTService_ValidateToken_NoRoleClaim(t *testing.T) {
	svc := newTestTokenService(t)

	token := mintToken(t, testSessionSecret, jwt.MapClaims{
		"sub": "user_2abc",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Empty(t, claims.Role)
}

func TestJWTService_ValidateToken_RejectsExpired(t *testing.T) {
	svc := newTestTokenService(t)

	token := mintToken(t, testSessionSecret, jwt.MapClaims{
		"sub": "user_2abc",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, err := svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_RejectsWrongSecret(t *testing.T) {
	svc := newTestTokenService(t)

	token := mintToken(t, "another-secret", jwt.MapClaims{
		"sub": "user_2abc",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_RejectsMissingSubject(t *testing.T) {
	svc := newTestTokenService(t)

	token := mintToken(t, testSessionSecret, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}
