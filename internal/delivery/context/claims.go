package context

import (
	"context"

	"identity/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// KeyClaims is the key for storing verified token claims.
const KeyClaims ContextKey = "claims"

// WithClaims returns a new context carrying the caller's verified claims.
func WithClaims(ctx context.Context, claims *service.Claims) context.Context {
	return context.WithValue(ctx, KeyClaims, claims)
}

// GetClaims returns the verified claims admitted by the access guard, or nil.
func GetClaims(ctx context.Context) *service.Claims {
	if claims, ok := ctx.Value(KeyClaims).(*service.Claims); ok {
		return claims
	}

	return nil
}

// SetClaims stores the claims on both the echo context and the request context.
func SetClaims(c echo.Context, claims *service.Claims) {
	c.Set(string(KeyClaims), claims)
	c.SetRequest(c.Request().WithContext(WithClaims(c.Request().Context(), claims)))
}
