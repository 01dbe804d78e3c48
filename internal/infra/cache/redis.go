// Package cache provides redis-backed state shared across service instances.
package cache

import (
	"context"
	"log/slog"

	"identity/config"
	"identity/internal/domain/lifecycle"
	"identity/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewRedisClient returns a go-redis client from redis.url (e.g. redis://localhost:6379/0),
// or nil when revocation is not configured.
func NewRedisClient(params Params) (*redis.Client, error) {
	if params.Config.Redis == nil || params.Config.Redis.URL == "" {
		params.Logger.Info("Redis not configured, token revocation disabled")

		return nil, nil
	}

	opts, err := redis.ParseURL(params.Config.Redis.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse redis url")
	}
	client := redis.NewClient(opts)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.Wrap(client.Ping(ctx).Err(), "failed to ping redis")
		},
		OnStop: func(context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}
