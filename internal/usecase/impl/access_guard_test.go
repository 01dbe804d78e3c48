package impl

import (
	"context"
	"testing"
	"time"

	domainerrors "identity/internal/domain/errors"
	"identity/internal/domain/service"
	mockRepo "identity/internal/mocks/repository"
	mockSvc "identity/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type accessGuardFixtures struct {
	guard        *accessGuard
	tokenService *mockSvc.MockTokenService
	revocations  *mockRepo.MockRevocationRepository
}

func createTestAccessGuard(t *testing.T) accessGuardFixtures {
	tokenService := mockSvc.NewMockTokenService(t)
	revocations := mockRepo.NewMockRevocationRepository(t)

	guard := NewAccessGuard(AccessGuardParams{
		TokenService: tokenService,
		Revocations:  revocations,
		Logger:       newDiscardLogger(),
	})

	return accessGuardFixtures{
		guard:        guard.(*accessGuard),
		tokenService: tokenService,
		revocations:  revocations,
	}
}

func claimsIssuedAt(at time.Time) *service.Claims {
	return &service.Claims{
		Name:  "Ann",
		Email: "ann@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(at),
		},
	}
}

func TestAccessGuard_MissingAuthorization(t *testing.T) {
	fx := createTestAccessGuard(t)

	for _, header := range []string{"", "   ", "Bearer ", "Bearer    "} {
		claims, err := fx.guard.Admit(context.Background(), header)

		assert.Nil(t, claims, "header %q", header)
		assert.True(t, errors.Is(err, domainerrors.ErrMissingAuthorization), "header %q", header)
	}
	fx.tokenService.AssertNotCalled(t, "Verify", mock.Anything)
}

func TestAccessGuard_InvalidToken(t *testing.T) {
	fx := createTestAccessGuard(t)

	fx.tokenService.EXPECT().
		Verify("garbage").
		Return(nil, domainerrors.ErrInvalidToken.WrapMessage("token is malformed"))

	claims, err := fx.guard.Admit(context.Background(), "garbage")

	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
	fx.revocations.AssertNotCalled(t, "RevokedAt", mock.Anything, mock.Anything)
}

func TestAccessGuard_VerifierErrorIsMappedToInvalidToken(t *testing.T) {
	fx := createTestAccessGuard(t)

	fx.tokenService.EXPECT().Verify("tok").Return(nil, errors.New("signature is invalid"))

	_, err := fx.guard.Admit(context.Background(), "tok")

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestAccessGuard_Admits(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "raw token", header: "tok"},
		{name: "bearer prefix", header: "Bearer tok"},
		{name: "surrounding whitespace", header: "  tok  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAccessGuard(t)
			ctx := context.Background()
			expected := claimsIssuedAt(time.Now())

			fx.tokenService.EXPECT().Verify("tok").Return(expected, nil)
			fx.revocations.EXPECT().RevokedAt(ctx, "ann@x.com").Return(time.Time{}, false, nil)

			claims, err := fx.guard.Admit(ctx, tt.header)

			require.NoError(t, err)
			assert.Equal(t, expected, claims)
		})
	}
}

func TestAccessGuard_RevokedToken(t *testing.T) {
	revokedAt := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		issuedAt time.Time
		admitted bool
	}{
		{name: "issued before removal", issuedAt: revokedAt.Add(-time.Hour), admitted: false},
		{name: "issued in the removal second", issuedAt: revokedAt, admitted: false},
		{name: "issued after re-registration", issuedAt: revokedAt.Add(2 * time.Second), admitted: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAccessGuard(t)
			ctx := context.Background()

			fx.tokenService.EXPECT().Verify("tok").Return(claimsIssuedAt(tt.issuedAt), nil)
			fx.revocations.EXPECT().RevokedAt(ctx, "ann@x.com").Return(revokedAt, true, nil)

			claims, err := fx.guard.Admit(ctx, "tok")

			if tt.admitted {
				require.NoError(t, err)
				assert.Equal(t, "ann@x.com", claims.Email)

				return
			}
			assert.Nil(t, claims)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
		})
	}
}

func TestAccessGuard_RevokedTokenWithoutIssuedAt(t *testing.T) {
	fx := createTestAccessGuard(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().Verify("tok").Return(&service.Claims{Name: "Ann", Email: "ann@x.com"}, nil)
	fx.revocations.EXPECT().RevokedAt(ctx, "ann@x.com").Return(time.Now(), true, nil)

	_, err := fx.guard.Admit(ctx, "tok")

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestAccessGuard_RevocationLookupFailure(t *testing.T) {
	fx := createTestAccessGuard(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().Verify("tok").Return(claimsIssuedAt(time.Now()), nil)
	fx.revocations.EXPECT().RevokedAt(ctx, "ann@x.com").Return(time.Time{}, false, errors.New("redis down"))

	claims, err := fx.guard.Admit(ctx, "tok")

	assert.Nil(t, claims)
	require.Error(t, err)
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidToken))
}
