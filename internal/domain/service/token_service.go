package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the claim set carried by an access token.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed access token asserting the given account identity.
	// Expiry is fixed at issuance; the token is not refreshable.
	Issue(userID uuid.UUID, email string) (string, error)

	// Validate checks signature and expiry and returns the decoded claims.
	// It fails closed on any malformed, tampered, or expired token.
	Validate(tokenString string) (*Claims, error)

	// AccessTokenDuration returns the configured token lifetime.
	AccessTokenDuration() time.Duration
}
