package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authapi/internal/domain/repository"
	"authapi/pkg/helpers"
)

func newAuthService(repo repository.UserRepository) *AuthService {
	return NewAuthService(repo, helpers.NewJWTManager("test-secret"), newTestLogger())
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "alice", "secret1"))

	token, err := svc.Login(ctx, "alice", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.JWT.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, repo.stored("alice").ID, claims.UserID)
	assert.Equal(t, time.Hour, claims.ExpiresAt.Time.Sub(claims.IssuedAt.Time))
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "alice", "secret1"))

	err := svc.Register(ctx, "alice", "other")
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrDuplicateUsername)
	assert.Equal(t, 1, repo.count(), "second attempt must not create a second record")
}

func TestAuthService_Register_NeverStoresPlaintext(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	require.NoError(t, svc.Register(context.Background(), "alice", "secret1"))

	u := repo.stored("alice")
	require.NotNil(t, u)
	assert.NotEqual(t, "secret1", u.PasswordHash)
	assert.True(t, helpers.CompareHashAndPassword(u.PasswordHash, "secret1"))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "alice", "secret1"))

	token, err := svc.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, token)
}

func TestAuthService_Login_UnknownUsername(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())

	token, err := svc.Login(context.Background(), "nobody", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, token)
}

func TestAuthService_Login_StoreFailureIsNotAuthFailure(t *testing.T) {
	repo := newFakeUserRepo()
	repo.forcedErr = errors.New("connection refused")
	svc := newAuthService(repo)

	_, err := svc.Login(context.Background(), "alice", "secret1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Register_StoreFailure(t *testing.T) {
	repo := newFakeUserRepo()
	repo.forcedErr = errors.New("connection refused")
	svc := newAuthService(repo)

	err := svc.Register(context.Background(), "alice", "secret1")
	require.Error(t, err)
	assert.Equal(t, 0, repo.count())
}
