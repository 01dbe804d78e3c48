package impl

import (
	"context"
	"sync"
	"testing"

	"identity/internal/domain/entity"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/domain/repository"
	"identity/internal/infra/auth"
	"identity/internal/infra/cache"
	"identity/internal/usecase"

	"github.com/alicebob/miniredis/v2"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryAccountRepository keeps accounts keyed by email, mirroring the unique index of the real stores.
type memoryAccountRepository struct {
	mu       sync.Mutex
	accounts map[string]entity.Account
}

func newMemoryAccountRepository() *memoryAccountRepository {
	return &memoryAccountRepository{accounts: make(map[string]entity.Account)}
}

func (r *memoryAccountRepository) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[email]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	return &account, nil
}

func (r *memoryAccountRepository) Create(_ context.Context, account *entity.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[account.Email]; ok {
		return errors.WithStack(domainerrors.ErrDuplicateEmail)
	}
	r.accounts[account.Email] = *account

	return nil
}

func (r *memoryAccountRepository) Update(_ context.Context, email string, patch entity.AccountPatch) (repository.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[email]
	if !ok {
		return repository.UpdateResult{}, nil
	}
	modified := patch.Apply(&account)
	r.accounts[email] = account

	return repository.UpdateResult{Matched: true, Modified: modified}, nil
}

func (r *memoryAccountRepository) Delete(_ context.Context, email string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[email]; !ok {
		return 0, nil
	}
	delete(r.accounts, email)

	return 1, nil
}

func (r *memoryAccountRepository) ListExcluding(_ context.Context, excludedName string) ([]*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	accounts := make([]*entity.Account, 0, len(r.accounts))
	for _, account := range r.accounts {
		if account.Name == excludedName {
			continue
		}
		accounts = append(accounts, &account)
	}

	return accounts, nil
}

type accountFlow struct {
	accounts usecase.AccountUsecase
	guard    usecase.AccessGuard
	repo     *memoryAccountRepository
}

func newAccountFlow(t *testing.T) accountFlow {
	t.Helper()

	cfg := newTestConfig()
	hasher, err := auth.NewBcryptHasher(cfg)
	require.NoError(t, err)
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	revocations := cache.NewRevocationRepository(client, cfg)

	repo := newMemoryAccountRepository()
	logger := newDiscardLogger()

	return accountFlow{
		accounts: NewAccountService(AccountServiceParams{
			AccountRepo:  repo,
			Revocations:  revocations,
			Hasher:       hasher,
			TokenService: tokens,
			Config:       cfg,
			Logger:       logger,
		}),
		guard: NewAccessGuard(AccessGuardParams{
			TokenService: tokens,
			Revocations:  revocations,
			Logger:       logger,
		}),
		repo: repo,
	}
}

func TestAccountFlow_CreateLoginAndAdmit(t *testing.T) {
	flow := newAccountFlow(t)
	ctx := context.Background()

	created, err := flow.accounts.Create(ctx, &usecase.CreateAccountInput{Name: "Ann", Email: "ann@x.com", Password: "p1"})
	require.NoError(t, err)
	assert.Empty(t, created.Account.PasswordHash)

	stored, err := flow.repo.FindByEmail(ctx, "ann@x.com")
	require.NoError(t, err)
	assert.NotEqual(t, "p1", stored.PasswordHash)

	login, err := flow.accounts.Login(ctx, &usecase.LoginInput{Email: "ann@x.com", Password: "p1"})
	require.NoError(t, err)

	claims, err := flow.guard.Admit(ctx, login.Token)
	require.NoError(t, err)
	assert.Equal(t, "Ann", claims.Name)
	assert.Equal(t, "ann@x.com", claims.Email)

	_, err = flow.accounts.Login(ctx, &usecase.LoginInput{Email: "ann@x.com", Password: "p2"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	_, err = flow.accounts.Create(ctx, &usecase.CreateAccountInput{Name: "Other", Email: "ann@x.com", Password: "p3"})
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateEmail))
}

func TestAccountFlow_ListHidesReservedAccount(t *testing.T) {
	flow := newAccountFlow(t)
	ctx := context.Background()

	for _, input := range []*usecase.CreateAccountInput{
		{Name: testReservedName, Email: "root@x.com", Password: "r"},
		{Name: "Ann", Email: "ann@x.com", Password: "p1"},
		{Name: "Bob", Email: "bob@x.com", Password: "p2"},
	} {
		_, err := flow.accounts.Create(ctx, input)
		require.NoError(t, err)
	}

	output, err := flow.accounts.List(ctx)
	require.NoError(t, err)

	names := make([]string, 0, len(output.Accounts))
	for _, account := range output.Accounts {
		names = append(names, account.Name)
		assert.Empty(t, account.PasswordHash)
	}
	assert.ElementsMatch(t, []string{"Ann", "Bob"}, names)
}

func TestAccountFlow_UpdateKeepsPassword(t *testing.T) {
	flow := newAccountFlow(t)
	ctx := context.Background()

	_, err := flow.accounts.Create(ctx, &usecase.CreateAccountInput{Name: "Ann", Email: "ann@x.com", Location: "Oslo", Password: "p1"})
	require.NoError(t, err)

	updated, err := flow.accounts.Update(ctx, "ann@x.com", entity.AccountPatch{Location: strPtr("Bergen")})
	require.NoError(t, err)
	assert.True(t, updated.Matched)
	assert.True(t, updated.Modified)

	unchanged, err := flow.accounts.Update(ctx, "ann@x.com", entity.AccountPatch{})
	require.NoError(t, err)
	assert.True(t, unchanged.Matched)
	assert.False(t, unchanged.Modified)

	missing, err := flow.accounts.Update(ctx, "nobody@x.com", entity.AccountPatch{Location: strPtr("Bergen")})
	require.NoError(t, err)
	assert.False(t, missing.Matched)

	stored, err := flow.repo.FindByEmail(ctx, "ann@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Bergen", stored.Location)

	_, err = flow.accounts.Login(ctx, &usecase.LoginInput{Email: "ann@x.com", Password: "p1"})
	assert.NoError(t, err)
}

func TestAccountFlow_RemoveRevokesIssuedTokens(t *testing.T) {
	flow := newAccountFlow(t)
	ctx := context.Background()

	_, err := flow.accounts.Create(ctx, &usecase.CreateAccountInput{Name: "Ann", Email: "ann@x.com", Password: "p1"})
	require.NoError(t, err)
	login, err := flow.accounts.Login(ctx, &usecase.LoginInput{Email: "ann@x.com", Password: "p1"})
	require.NoError(t, err)

	removed, err := flow.accounts.Remove(ctx, "ann@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed.Deleted)

	_, err = flow.guard.Admit(ctx, login.Token)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))

	_, err = flow.accounts.Login(ctx, &usecase.LoginInput{Email: "ann@x.com", Password: "p1"})
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))

	again, err := flow.accounts.Remove(ctx, "ann@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(0), again.Deleted)
}
