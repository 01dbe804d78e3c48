// Package mongo contains the document-store implementation of the persistence layer.
package mongo

import (
	"context"
	"log/slog"
	"time"

	"identity/config"
	"identity/internal/domain/lifecycle"
	"identity/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

const (
	defaultCollection     = "users"
	defaultConnectTimeout = 10 * time.Second
	emailIndexName        = "uniq_email"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New connects to MongoDB and returns the accounts collection. The unique email
// index is ensured on start.
func New(params Params) (*mongo.Collection, error) {
	cfg := params.Config.Mongo
	if cfg == nil || cfg.URI == "" {
		return nil, errors.New("mongo.uri must be configured")
	}

	connectTimeout := cfg.ConnectTimeout
	if connectTimeout <= 0 {
		connectTimeout = defaultConnectTimeout
	}

	client, err := mongo.Connect(context.Background(), options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(connectTimeout))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	collectionName := cfg.Collection
	if collectionName == "" {
		collectionName = defaultCollection
	}
	collection := client.Database(cfg.Database).Collection(collectionName)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if err := EnsureIndexes(ctx, collection); err != nil {
				return err
			}

			params.Logger.Info("MongoDB account store ready",
				slog.String("database", cfg.Database),
				slog.String("collection", collectionName),
			)

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			return errors.WithStack(client.Disconnect(stopCtx))
		},
	})

	return collection, nil
}

// EnsureIndexes creates the unique email index that backs the duplicate-email guarantee.
func EnsureIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: fieldEmail, Value: 1}},
		Options: options.Index().SetUnique(true).SetName(emailIndexName),
	})
	if err != nil {
		return errors.Wrap(err, "failed to create unique email index")
	}

	return nil
}
