package usecase

import (
	"context"

	"identity/internal/domain/service"
)

// AccessGuard decides whether a request carrying the given authorization value may
// reach a protected operation. Rejections are domainerrors.ErrMissingAuthorization
// or domainerrors.ErrInvalidToken.
type AccessGuard interface {
	Admit(ctx context.Context, authorization string) (*service.Claims, error)
}
