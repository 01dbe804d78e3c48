package auth

import (
	"strings"
	"testing"
	"time"

	"identity/config"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_token_secret_key_very_long_for_testing"

func newTestJWTService(t *testing.T, auth *config.AuthConfig) *jwtService {
	t.Helper()

	cfg := &config.Config{
		SecretKey: config.SecretKeyConfig{Token: testSecret},
		Auth:      auth,
	}
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_SignAndVerify(t *testing.T) {
	svc := newTestJWTService(t, &config.AuthConfig{})
	identity := service.Identity{Name: "Ann", Email: "ann@x.com"}

	token, err := svc.Sign(identity)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	// Compact JWS: header.payload.signature
	assert.Len(t, strings.Split(token, "."), 3)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, identity, claims.Identity())
	assert.NotNil(t, claims.IssuedAt)
	assert.Nil(t, claims.ExpiresAt)
}

func TestJWTService_RoundTripPreservesClaims(t *testing.T) {
	svc := newTestJWTService(t, nil)

	identities := []service.Identity{
		{Name: "Ann", Email: "ann@x.com"},
		{Name: "SYS_ADMIN", Email: "root@x.com"},
		{Name: "Zoë Ünicode", Email: "zoe+tag@example.org"},
	}
	for _, identity := range identities {
		token, err := svc.Sign(identity)
		require.NoError(t, err)

		claims, err := svc.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, identity, claims.Identity())
	}
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc := newTestJWTService(t, nil)

	claims, err := svc.Verify("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_WrongSecret(t *testing.T) {
	svc := newTestJWTService(t, nil)

	other, err := NewJWTService(&config.Config{SecretKey: config.SecretKeyConfig{Token: "another-secret"}})
	require.NoError(t, err)

	token, err := other.Sign(service.Identity{Name: "Ann", Email: "ann@x.com"})
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_TamperedPayload(t *testing.T) {
	svc := newTestJWTService(t, nil)

	token, err := svc.Sign(service.Identity{Name: "Ann", Email: "ann@x.com"})
	require.NoError(t, err)

	forged, err := svc.Sign(service.Identity{Name: "Eve", Email: "eve@x.com"})
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	forgedParts := strings.Split(forged, ".")
	tampered := parts[0] + "." + forgedParts[1] + "." + parts[2]

	_, err = svc.Verify(tampered)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_RejectsUnexpectedAlgorithm(t *testing.T) {
	svc := newTestJWTService(t, nil)

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, &service.Claims{Name: "Ann", Email: "ann@x.com"})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_MissingRequiredClaims(t *testing.T) {
	svc := newTestJWTService(t, nil)

	for _, identity := range []service.Identity{
		{Name: "Ann"},
		{Email: "ann@x.com"},
		{},
	} {
		token, err := svc.Sign(identity)
		require.NoError(t, err)

		claims, err := svc.Verify(token)
		assert.Nil(t, claims)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
	}
}

func TestJWTService_Expiry(t *testing.T) {
	svc := newTestJWTService(t, &config.AuthConfig{TokenTTL: time.Minute, ClockSkew: 10 * time.Second})

	issued := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }

	token, err := svc.Sign(service.Identity{Name: "Ann", Email: "ann@x.com"})
	require.NoError(t, err)

	// Inside TTL plus leeway.
	svc.now = func() time.Time { return issued.Add(time.Minute + 5*time.Second) }
	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, issued.Add(time.Minute).Unix(), claims.ExpiresAt.Unix())

	// Past TTL plus leeway.
	svc.now = func() time.Time { return issued.Add(2 * time.Minute) }
	_, err = svc.Verify(token)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_Issuer(t *testing.T) {
	svc := newTestJWTService(t, &config.AuthConfig{Issuer: "identity"})
	other := newTestJWTService(t, &config.AuthConfig{Issuer: "someone-else"})

	token, err := svc.Sign(service.Identity{Name: "Ann", Email: "ann@x.com"})
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "identity", claims.Issuer)

	_, err = other.Verify(token)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_EmptySecret(t *testing.T) {
	jwtService, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}
