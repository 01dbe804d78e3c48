// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"identity/internal/domain/entity"
)

// --- Input DTOs ---

// CreateAccountInput defines the data required to create a new account.
type CreateAccountInput struct {
	Name     string
	Email    string
	Location string
	Contact  string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// CreateAccountOutput returns the stored account. PasswordHash is cleared.
type CreateAccountOutput struct {
	Account *entity.Account
}

// LoginOutput returns the signed access token after a successful login.
type LoginOutput struct {
	Token string
}

// ListAccountsOutput holds every listable account with password hashes cleared.
type ListAccountsOutput struct {
	Accounts []*entity.Account
}

// UpdateAccountOutput reports whether an account matched and whether it changed.
type UpdateAccountOutput struct {
	Matched  bool
	Modified bool
}

// RemoveAccountOutput reports how many accounts were deleted (0 or 1).
type RemoveAccountOutput struct {
	Deleted int64
}

// AccountUsecase defines the interface for account-related business operations.
// Failures are returned as domain AppErrors, never inside the output values.
type AccountUsecase interface {
	Create(ctx context.Context, input *CreateAccountInput) (*CreateAccountOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	List(ctx context.Context) (*ListAccountsOutput, error)
	Update(ctx context.Context, email string, patch entity.AccountPatch) (*UpdateAccountOutput, error)
	Remove(ctx context.Context, email string) (*RemoveAccountOutput, error)
}
