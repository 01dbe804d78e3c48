// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"identity/internal/domain/entity"
)

// ErrAccountNotFound is a domain-specific error returned when no account has the given email.
var ErrAccountNotFound = errors.New("account not found")

// UpdateResult separates "an account had this email" from "a stored value changed".
type UpdateResult struct {
	Matched  bool
	Modified bool
}

// AccountRepository defines the persistence operations for accounts.
// Implementations must enforce email uniqueness with a store-level constraint and
// report a conflicting insert as domainerrors.ErrDuplicateEmail.
type AccountRepository interface {
	// FindByEmail returns ErrAccountNotFound when no account matches.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create inserts a new account and fills in store-managed timestamps.
	Create(ctx context.Context, account *entity.Account) error

	// Update applies the present patch fields to the account with the given email.
	Update(ctx context.Context, email string, patch entity.AccountPatch) (UpdateResult, error)

	// Delete removes the account with the given email and returns how many were removed.
	Delete(ctx context.Context, email string) (int64, error)

	// ListExcluding returns every account whose name differs from excludedName.
	ListExcluding(ctx context.Context, excludedName string) ([]*entity.Account, error)
}
