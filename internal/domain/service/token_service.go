package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by access tokens. Tokens are
// issued by the external auth service; this engine only validates them.
type Claims struct {
	UserID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for validating JWTs.
// This abstracts the details of token handling from the delivery layer.
type TokenService interface {
	// ValidateToken checks the validity of a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)

	// GenerateAccessToken creates a signed access token for a user. Used by
	// the test routes only; production tokens come from the auth service.
	GenerateAccessToken(userID uuid.UUID, ttl time.Duration) (string, error)
}
