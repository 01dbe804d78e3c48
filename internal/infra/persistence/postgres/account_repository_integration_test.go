//go:build integration

package postgres

import (
	"context"
	"os"
	"testing"

	"identity/internal/domain/entity"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/domain/repository"
	"identity/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgDriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Run with: IDENTITY_TEST_POSTGRES_DSN=postgres://... go test -tags integration ./internal/infra/persistence/postgres/
const testDSNEnv = "IDENTITY_TEST_POSTGRES_DSN"

func newTestRepository(t *testing.T) repository.AccountRepository {
	t.Helper()

	dsn := os.Getenv(testDSNEnv)
	if dsn == "" {
		t.Skipf("%s is not set", testDSNEnv)
	}

	db, err := gorm.Open(pgDriver.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, Migrate(ctx, db))
	require.NoError(t, db.WithContext(ctx).Where("1 = 1").Delete(&model.AccountModel{}).Error)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Where("1 = 1").Delete(&model.AccountModel{}).Error
		_ = sqlDB.Close()
	})

	return NewAccountRepository(db)
}

func ptr(s string) *string { return &s }

func TestAccountRepository_CreateAndFind(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	account := &entity.Account{Name: "Ann", Email: "ann@x.com", PasswordHash: "h"}
	require.NoError(t, repo.Create(ctx, account))
	assert.False(t, account.CreatedAt.IsZero())

	found, err := repo.FindByEmail(ctx, "ann@x.com")
	require.NoError(t, err)
	assert.Equal(t, "h", found.PasswordHash)

	err = repo.Create(ctx, &entity.Account{Name: "Other", Email: "ann@x.com", PasswordHash: "h2"})
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateEmail))

	_, err = repo.FindByEmail(ctx, "nobody@x.com")
	assert.True(t, errors.Is(err, repository.ErrAccountNotFound))
}

func TestAccountRepository_Update(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &entity.Account{Name: "Ann", Email: "ann@x.com", PasswordHash: "h"}))

	tests := []struct {
		name     string
		email    string
		patch    entity.AccountPatch
		expected repository.UpdateResult
	}{
		{name: "empty patch", email: "ann@x.com", patch: entity.AccountPatch{}, expected: repository.UpdateResult{Matched: true}},
		{name: "empty location on account without one", email: "ann@x.com", patch: entity.AccountPatch{Location: ptr("")}, expected: repository.UpdateResult{Matched: true}},
		{name: "changed location", email: "ann@x.com", patch: entity.AccountPatch{Location: ptr("Bergen")}, expected: repository.UpdateResult{Matched: true, Modified: true}},
		{name: "same location again", email: "ann@x.com", patch: entity.AccountPatch{Location: ptr("Bergen")}, expected: repository.UpdateResult{Matched: true}},
		{name: "unknown email", email: "nobody@x.com", patch: entity.AccountPatch{Name: ptr("Bob")}, expected: repository.UpdateResult{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := repo.Update(ctx, tt.email, tt.patch)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}

	found, err := repo.FindByEmail(ctx, "ann@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Bergen", found.Location)
	assert.Equal(t, "h", found.PasswordHash)
}

func TestAccountRepository_ListAndDelete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	for _, account := range []*entity.Account{
		{Name: "SYS_ADMIN", Email: "root@x.com", PasswordHash: "r"},
		{Name: "Ann", Email: "ann@x.com", PasswordHash: "h1"},
		{Name: "Bob", Email: "bob@x.com", PasswordHash: "h2"},
	} {
		require.NoError(t, repo.Create(ctx, account))
	}

	accounts, err := repo.ListExcluding(ctx, "SYS_ADMIN")
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	for _, account := range accounts {
		assert.NotEqual(t, "SYS_ADMIN", account.Name)
		assert.Empty(t, account.PasswordHash)
	}

	deleted, err := repo.Delete(ctx, "ann@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	deleted, err = repo.Delete(ctx, "ann@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
}
