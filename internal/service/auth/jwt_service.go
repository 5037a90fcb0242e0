package auth

import (
	"context"
	"time"
)

// TokenService defines operations for issuing and validating the signed
// access tokens returned on successful authentication. Tokens are
// stateless: there is no revocation mechanism, expiry is the only
// invalidation path.
type TokenService interface {
	// GenerateToken creates a signed token binding the user's identity
	// with an expiry. Returns the token string or an error if signing
	// fails.
	GenerateToken(ctx context.Context, userID int64) (string, error)

	// ValidateToken validates a token string and extracts its claims.
	// Returns ErrExpiredToken, ErrTokenNotYetValid or ErrInvalidToken
	// when validation fails.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the verified contents of an issued token.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID int64 `json:"uid"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
