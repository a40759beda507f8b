package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"authapi/internal/domain/entity"
	"authapi/internal/domain/repository"
	"authapi/pkg/helpers"
)

var (
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password. Callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserNotFound signals a lookup miss.
	ErrUserNotFound = errors.New("user not found")
)

// AuthService owns registration and login. Username uniqueness is delegated
// to the store's unique index; verification order, failure classification,
// and claim construction live here.
type AuthService struct {
	Repo   repository.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(repo repository.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Repo: repo, JWT: jwt, Logger: logger}
}

// Register hashes the password and creates the user. The plaintext is held
// only for the duration of the call and is never persisted or logged. Any
// persistence failure, duplicate username included, surfaces as a plain
// error for the handler to collapse into a generic response; the duplicate
// case is still distinguishable here for logging.
func (s *AuthService) Register(ctx context.Context, username, password string) error {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	u := &entity.User{Username: username, PasswordHash: hash}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) && s.Logger != nil {
			s.Logger.WithField("username", username).Info("registration rejected: username taken")
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// Login verifies the credentials and issues a signed token asserting the
// user's identifier, valid for one hour. An unknown username fails before
// any hash comparison runs; the resulting timing difference against the
// wrong-password path is a known, accepted leak.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.Repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("get user: %w", err)
	}

	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}

	token, _, err := s.JWT.GenerateToken(u.ID)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}
