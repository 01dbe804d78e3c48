package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "identity/internal/delivery/context"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/domain/repository"
	"identity/internal/domain/service"
	"identity/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// accessGuard admits requests whose authorization value is a valid, unrevoked token.
// It never looks the account up; revocation entries written on removal are the
// only link between a token and the account's current existence.
type accessGuard struct {
	tokenService service.TokenService
	revocations  repository.RevocationRepository
	logger       *slog.Logger
}

// AccessGuardParams holds dependencies for the access guard, injected by Fx.
type AccessGuardParams struct {
	fx.In

	TokenService service.TokenService
	Revocations  repository.RevocationRepository
	Logger       *slog.Logger
}

// NewAccessGuard is the constructor for accessGuard.
func NewAccessGuard(params AccessGuardParams) usecase.AccessGuard {
	return &accessGuard{
		tokenService: params.TokenService,
		revocations:  params.Revocations,
		logger:       params.Logger,
	}
}

// Admit verifies the raw authorization value. The value is the token itself; a
// leading "Bearer " is tolerated.
func (g *accessGuard) Admit(ctx context.Context, authorization string) (*service.Claims, error) {
	token := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(authorization), bearerPrefix))
	if token == "" {
		return nil, errors.WithStack(domainerrors.ErrMissingAuthorization)
	}

	claims, err := g.tokenService.Verify(token)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, g.logger).Debug("Rejected token", slog.Any("error", err))
		if errors.Is(err, domainerrors.ErrInvalidToken) {
			return nil, err
		}

		return nil, domainerrors.ErrInvalidToken.WrapMessage(err.Error())
	}

	revokedAt, revoked, err := g.revocations.RevokedAt(ctx, claims.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check token revocation")
	}
	if revoked && (claims.IssuedAt == nil || !claims.IssuedAt.After(revokedAt)) {
		deliverycontext.GetLoggerOrDefault(ctx, g.logger).Info("Rejected token of removed account", slog.String("email", claims.Email))

		return nil, domainerrors.ErrInvalidToken.WrapMessage("token was revoked")
	}

	return claims, nil
}
