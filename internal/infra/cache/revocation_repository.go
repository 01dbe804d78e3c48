package cache

import (
	"context"
	"strconv"
	"time"

	"identity/config"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const revocationKeyPrefix = "identity:revoked:"

// revocationRepository stores one unix timestamp per revoked email.
type revocationRepository struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRevocationRepository returns the redis-backed store, or a no-op store when
// client is nil. With a token TTL the entries expire once every affected token has.
func NewRevocationRepository(client *redis.Client, cfg *config.Config) repository.RevocationRepository {
	if client == nil {
		return noopRevocationRepository{}
	}

	return newRevocationRepository(client, cfg)
}

func newRevocationRepository(client redis.Cmdable, cfg *config.Config) *revocationRepository {
	var ttl time.Duration
	if cfg != nil && cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL + cfg.Auth.ClockSkew
	}

	return &revocationRepository{client: client, ttl: ttl}
}

func (repo *revocationRepository) Revoke(ctx context.Context, email string, at time.Time) error {
	if err := repo.client.Set(ctx, revocationKey(email), at.Unix(), repo.ttl).Err(); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record token revocation")
	}

	return nil
}

func (repo *revocationRepository) RevokedAt(ctx context.Context, email string) (time.Time, bool, error) {
	raw, err := repo.client.Get(ctx, revocationKey(email)).Result()
	if errors.Is(err, redis.Nil) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, domainerrors.NewDatabaseExecuteError(err, "failed to read token revocation")
	}

	unix, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, false, errors.Wrapf(err, "malformed revocation entry for %s", email)
	}

	return time.Unix(unix, 0), true, nil
}

func revocationKey(email string) string {
	return revocationKeyPrefix + email
}

// noopRevocationRepository keeps tokens purely cryptographic.
type noopRevocationRepository struct{}

func (noopRevocationRepository) Revoke(context.Context, string, time.Time) error { return nil }

func (noopRevocationRepository) RevokedAt(context.Context, string) (time.Time, bool, error) {
	return time.Time{}, false, nil
}
