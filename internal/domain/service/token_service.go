package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Identity is the claim set signed into access tokens.
type Identity struct {
	Name  string
	Email string
}

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Identity returns the identifying part of the claims.
func (c *Claims) Identity() Identity {
	return Identity{Name: c.Name, Email: c.Email}
}

// TokenService defines the interface for signing and verifying access tokens.
type TokenService interface {
	// Sign produces a compact signed token for the identity.
	Sign(identity Identity) (string, error)

	// Verify checks the signature and required claims. Any failure wraps domainerrors.ErrInvalidToken.
	Verify(token string) (*Claims, error)
}
