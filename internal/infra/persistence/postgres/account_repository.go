// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"identity/internal/domain/entity"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/domain/repository"
	"identity/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// listColumns leaves password_hash out of bulk reads.
var listColumns = []string{"id", "name", "email", "location", "contact", "created_at", "updated_at"}

// accountRepository implements the repository.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a repository.AccountRepository interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindByEmail retrieves a single account by its email address.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&accountM).Error
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find account by email")
	}

	return toAccountDomain(&accountM), nil
}

// Create persists a new account. The unique email index decides concurrent creates.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateEmail.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// Update locks the row, merges the patch and writes only when a value changes,
// so matched and modified are reported separately.
func (repo *accountRepository) Update(ctx context.Context, email string, patch entity.AccountPatch) (repository.UpdateResult, error) {
	var result repository.UpdateResult

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var accountM model.AccountModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("email = ?", email).
			First(&accountM).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to lock account")
		}
		result.Matched = true

		if !patch.Apply(toAccountDomain(&accountM)) {
			return nil
		}

		if err := tx.Model(&accountM).Updates(patch.Fields()).Error; err != nil {
			return errors.Wrap(err, "failed to apply account patch")
		}
		result.Modified = true

		return nil
	})
	if err != nil {
		return repository.UpdateResult{}, domainerrors.NewDatabaseExecuteError(err, "failed to update account")
	}

	return result, nil
}

// Delete removes the account with the given email.
func (repo *accountRepository) Delete(ctx context.Context, email string) (int64, error) {
	res := repo.db.WithContext(ctx).
		Where("email = ?", email).
		Delete(&model.AccountModel{})
	if res.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(res.Error, "failed to delete account")
	}

	return res.RowsAffected, nil
}

// ListExcluding returns all accounts except those named excludedName, without password hashes.
func (repo *accountRepository) ListExcluding(ctx context.Context, excludedName string) ([]*entity.Account, error) {
	var models []model.AccountModel
	err := repo.db.WithContext(ctx).
		Select(listColumns).
		Where("name <> ?", excludedName).
		Order("created_at").
		Find(&models).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list accounts")
	}

	accounts := make([]*entity.Account, 0, len(models))
	for i := range models {
		accounts = append(accounts, toAccountDomain(&models[i]))
	}

	return accounts, nil
}

// --- Mapper Functions ---

// toAccountDomain converts a GORM AccountModel to a domain Account entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		Name:         data.Name,
		Email:        data.Email,
		Location:     data.Location,
		Contact:      data.Contact,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromAccountDomain converts a domain Account entity to a GORM AccountModel for persistence.
func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		Name:         data.Name,
		Email:        data.Email,
		Location:     data.Location,
		Contact:      data.Contact,
		PasswordHash: data.PasswordHash,
	}
}
