package middleware

import (
	deliverycontext "identity/internal/delivery/context"
	"identity/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware gates routes behind the access guard.
type AuthMiddleware struct {
	guard usecase.AccessGuard
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(guard usecase.AccessGuard) *AuthMiddleware {
	return &AuthMiddleware{guard: guard}
}

// Authenticate admits the request only when its Authorization header carries a
// valid token. Admitted claims are placed on the echo and request contexts; a
// rejected request never reaches next.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := m.guard.Admit(c.Request().Context(), c.Request().Header.Get(echo.HeaderAuthorization))
		if err != nil {
			return err
		}

		deliverycontext.SetClaims(c, claims)

		return next(c)
	}
}

