package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/pkg/utils"
)

type fakeAccountRepo struct {
	byEmail map[string]*db_models.Account
	byID    map[string]*db_models.Account
	err     error
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{
		byEmail: make(map[string]*db_models.Account),
		byID:    make(map[string]*db_models.Account),
	}
}

func (f *fakeAccountRepo) Insert(ctx context.Context, account *db_models.Account) error {
	if f.err != nil {
		return f.err
	}
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	f.byEmail[account.Email] = account
	f.byID[account.ID.String()] = account
	return nil
}

func (f *fakeAccountRepo) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byID[id], nil
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byEmail[email], nil
}

func TestAccountService_RegisterAndLogin(t *testing.T) {
	repo := newFakeAccountRepo()
	service := NewAccountService(repo)

	err := service.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Ana",
		Email:       "ana@example.com",
		Password:    "s3cret-pass",
	})
	require.NoError(t, err)

	created := repo.byEmail["ana@example.com"]
	require.NotNil(t, created)
	assert.Equal(t, "user", created.Role)
	assert.NotEqual(t, "s3cret-pass", created.PasswordHash, "passwords are stored hashed")

	token, err := service.Login(context.Background(), request_models.LoginRequest{
		Email:    "ana@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := utils.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, created.ID.String(), claims.UserID)
}

func TestAccountService_DuplicateEmail(t *testing.T) {
	repo := newFakeAccountRepo()
	service := NewAccountService(repo)

	signup := request_models.SignUpRequest{DisplayName: "Ana", Email: "ana@example.com", Password: "pass-one"}
	require.NoError(t, service.CreateAccount(context.Background(), signup))

	err := service.CreateAccount(context.Background(), signup)
	assert.True(t, errors.Is(err, utils.ErrEmailAlreadyExists))
}

func TestAccountService_LoginFailures(t *testing.T) {
	repo := newFakeAccountRepo()
	service := NewAccountService(repo)
	require.NoError(t, service.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Ana", Email: "ana@example.com", Password: "right-pass",
	}))

	_, err := service.Login(context.Background(), request_models.LoginRequest{Email: "nobody@example.com", Password: "x"})
	assert.True(t, errors.Is(err, utils.ErrAccountNotFound))

	_, err = service.Login(context.Background(), request_models.LoginRequest{Email: "ana@example.com", Password: "wrong-pass"})
	assert.True(t, errors.Is(err, utils.ErrInvalidCredentials))
}

func TestAccountService_StorageUnavailable(t *testing.T) {
	service := NewAccountService(nil)

	_, err := service.Login(context.Background(), request_models.LoginRequest{Email: "a@b.c", Password: "x"})
	assert.True(t, errors.Is(err, utils.ErrStorageUnavailable))

	err = service.CreateAccount(context.Background(), request_models.SignUpRequest{DisplayName: "A", Email: "a@b.c", Password: "x"})
	assert.True(t, errors.Is(err, utils.ErrStorageUnavailable))
}

func TestAccountService_CurrentUser(t *testing.T) {
	repo := newFakeAccountRepo()
	service := NewAccountService(repo)
	require.NoError(t, service.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Ana", Email: "ana@example.com", Password: "pass",
	}))
	created := repo.byEmail["ana@example.com"]

	account, err := service.CurrentUser(context.Background(), created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", account.Email)

	_, err = service.CurrentUser(context.Background(), "missing-id")
	assert.True(t, errors.Is(err, utils.ErrAccountNotFound))
}
