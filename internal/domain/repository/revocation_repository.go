package repository

import (
	"context"
	"time"
)

// RevocationRepository records when an account's outstanding tokens stopped being acceptable.
type RevocationRepository interface {
	// Revoke marks tokens for email issued at or before at as revoked.
	Revoke(ctx context.Context, email string, at time.Time) error

	// RevokedAt returns the latest revocation time for email and whether one exists.
	RevokedAt(ctx context.Context, email string) (time.Time, bool, error)
}
