package auth

import (
	"strings"
	"testing"

	"identity/config"
	domainerrors "identity/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher(t *testing.T) *bcryptHasher {
	t.Helper()

	hasher, err := NewBcryptHasherWithCost(bcrypt.MinCost)
	require.NoError(t, err)

	return hasher.(*bcryptHasher)
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := newTestHasher(t)

	hash, err := hasher.Hash("p1")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "p1", hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check("p1", hash))
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := newTestHasher(t)

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("same-password", first))
	assert.True(t, hasher.Check("same-password", second))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := newTestHasher(t)
	password := "StrongPass123!"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("WrongPassword123!", hash))
	assert.False(t, hasher.Check("", hash))

	// Malformed hashes report a mismatch instead of failing.
	assert.False(t, hasher.Check(password, "invalid_hash"))
	assert.False(t, hasher.Check(password, ""))
}

func TestBcryptHasher_TooLongPassword(t *testing.T) {
	hasher := newTestHasher(t)

	_, err := hasher.Hash(strings.Repeat("a", 73))
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordTooLong))
}

func TestBcryptHasher_FromConfig(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 6}}

	hasher, err := NewBcryptHasher(cfg)
	require.NoError(t, err)

	hash, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)

	// Verify the hash uses the configured cost
	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, 6, cost)
}

func TestBcryptHasher_InvalidCost(t *testing.T) {
	for _, cost := range []int{0, bcrypt.MinCost - 1, bcrypt.MaxCost + 1} {
		hasher, err := NewBcryptHasherWithCost(cost)
		assert.Error(t, err, "cost %d", cost)
		assert.Nil(t, hasher)
	}

	_, err := NewBcryptHasher(&config.Config{})
	assert.ErrorContains(t, err, "auth config must be provided")
}
