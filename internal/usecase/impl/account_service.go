// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"identity/config"
	deliverycontext "identity/internal/delivery/context"
	"identity/internal/domain/entity"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/domain/repository"
	"identity/internal/domain/service"
	"identity/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo  repository.AccountRepository
	revocations  repository.RevocationRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	reservedName string
	logger       *slog.Logger
	now          func() time.Time
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	Revocations  repository.RevocationRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	reservedName := ""
	if params.Config != nil && params.Config.Auth != nil {
		reservedName = params.Config.Auth.ReservedAccountName
	}

	return &accountService{
		accountRepo:  params.AccountRepo,
		revocations:  params.Revocations,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		reservedName: reservedName,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create registers a new account. The lookup rejects the common duplicate case early;
// the store's unique index settles concurrent creates for the same email.
func (srv *accountService) Create(ctx context.Context, input *usecase.CreateAccountInput) (*usecase.CreateAccountOutput, error) {
	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Creating account", slog.String("email", input.Email))

	_, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		srv.log(ctx).Warn("Account already exists", slog.String("email", input.Email))

		return nil, errors.WithStack(domainerrors.ErrDuplicateEmail)
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(err, "failed to look up account by email")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		if errors.Is(err, domainerrors.ErrPasswordTooLong) {
			return nil, err
		}
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	account := &entity.Account{
		Name:         input.Name,
		Email:        input.Email,
		Location:     input.Location,
		Contact:      input.Contact,
		PasswordHash: hashedPassword,
	}
	if err := srv.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, domainerrors.ErrDuplicateEmail) {
			srv.log(ctx).Warn("Concurrent create lost on unique email", slog.String("email", input.Email))
		}

		return nil, errors.Wrap(err, "failed to create account")
	}

	srv.log(ctx).Debug("Account created", slog.String("email", account.Email))

	return &usecase.CreateAccountOutput{Account: withoutHash(account)}, nil
}

// Login verifies credentials and signs a token over the account's name and email.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil || strings.TrimSpace(input.Email) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email is required")
	}

	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrAccountNotFound) {
		srv.log(ctx).Info("Login for unknown account", slog.String("email", input.Email))

		return nil, errors.WithStack(domainerrors.ErrUserNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up account for login")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login password mismatch", slog.String("email", input.Email))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	token, err := srv.tokenService.Sign(service.Identity{Name: account.Name, Email: account.Email})
	if err != nil {
		srv.log(ctx).Error("Failed to sign token", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenSigningFailed, err.Error())
	}

	return &usecase.LoginOutput{Token: token}, nil
}

// List returns every account except the reserved system account, without hashes.
func (srv *accountService) List(ctx context.Context) (*usecase.ListAccountsOutput, error) {
	accounts, err := srv.accountRepo.ListExcluding(ctx, srv.reservedName)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	visible := make([]*entity.Account, 0, len(accounts))
	for _, account := range accounts {
		if account.Name == srv.reservedName {
			continue
		}
		visible = append(visible, withoutHash(account))
	}

	return &usecase.ListAccountsOutput{Accounts: visible}, nil
}

// Update merges the present patch fields into the account. An unknown email is
// reported as matched=false, not as an error.
func (srv *accountService) Update(ctx context.Context, email string, patch entity.AccountPatch) (*usecase.UpdateAccountOutput, error) {
	if strings.TrimSpace(email) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email is required")
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name must not be empty")
	}

	result, err := srv.accountRepo.Update(ctx, email, patch)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update account")
	}

	srv.log(ctx).Info("Account update applied",
		slog.String("email", email),
		slog.Bool("matched", result.Matched),
		slog.Bool("modified", result.Modified),
	)

	return &usecase.UpdateAccountOutput{Matched: result.Matched, Modified: result.Modified}, nil
}

// Remove deletes the account and revokes tokens issued to it up to now.
// Deleting an unknown email reports zero deleted.
func (srv *accountService) Remove(ctx context.Context, email string) (*usecase.RemoveAccountOutput, error) {
	if strings.TrimSpace(email) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email is required")
	}

	deleted, err := srv.accountRepo.Delete(ctx, email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to remove account")
	}

	if deleted > 0 {
		// The account is already gone; a failed revocation only widens the window
		// in which its old tokens pass the guard.
		if err := srv.revocations.Revoke(ctx, email, srv.now()); err != nil {
			srv.log(ctx).Error("Failed to revoke tokens of removed account", slog.String("email", email), slog.Any("error", err))
		}
	}

	srv.log(ctx).Info("Account removal applied", slog.String("email", email), slog.Int64("deleted", deleted))

	return &usecase.RemoveAccountOutput{Deleted: deleted}, nil
}

func validateCreateInput(input *usecase.CreateAccountInput) error {
	if input == nil {
		return domainerrors.ErrValidationFailed.WithDetails("input is required")
	}

	var missing []string
	if strings.TrimSpace(input.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(input.Email) == "" {
		missing = append(missing, "email")
	}
	if input.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return domainerrors.ErrValidationFailed.WithDetails("missing required fields: " + strings.Join(missing, ", "))
	}

	return nil
}

func withoutHash(account *entity.Account) *entity.Account {
	clean := *account
	clean.PasswordHash = ""

	return &clean
}
