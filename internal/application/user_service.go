package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"authapi/internal/domain/repository"
	"authapi/pkg/helpers"
)

// PublicUser is the caller-safe projection of a user record. The password
// hash is never part of it.
type PublicUser struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

// UserService answers the read-only lookups. Records are immutable once
// created, so the optional Redis cache can never serve a stale projection.
// Redis may be nil; lookups then always hit the store.
type UserService struct {
	Repo     repository.UserRepository
	Redis    *redis.Client
	CacheTTL time.Duration
	Logger   *logrus.Logger
}

func NewUserService(repo repository.UserRepository, rdb *redis.Client, cacheTTL time.Duration, logger *logrus.Logger) *UserService {
	return &UserService{Repo: repo, Redis: rdb, CacheTTL: cacheTTL, Logger: logger}
}

func cacheKeyByName(username string) string { return "user:byname:" + username }
func cacheKeyByID(id string) string         { return "user:byid:" + id }

func (s *UserService) GetByUsername(ctx context.Context, username string) (*PublicUser, error) {
	if pu, ok := s.fromCache(ctx, cacheKeyByName(username)); ok {
		return pu, nil
	}

	u, err := s.Repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	pu := &PublicUser{ID: u.ID, Username: u.Username}
	s.toCache(ctx, pu)
	return pu, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*PublicUser, error) {
	// Identifiers are store-assigned UUIDs; anything else cannot match a
	// record, so it is a miss rather than a store error.
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrUserNotFound
	}

	if pu, ok := s.fromCache(ctx, cacheKeyByID(id)); ok {
		return pu, nil
	}

	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	pu := &PublicUser{ID: u.ID, Username: u.Username}
	s.toCache(ctx, pu)
	return pu, nil
}

// Cache failures are logged and ignored; the store remains the source of
// truth.
func (s *UserService) fromCache(ctx context.Context, key string) (*PublicUser, bool) {
	if s.Redis == nil || s.CacheTTL <= 0 {
		return nil, false
	}
	var pu PublicUser
	ok, err := helpers.RedisGetJSON(ctx, s.Redis, key, &pu)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("key", key).Warn("user cache read failed")
		}
		return nil, false
	}
	if !ok {
		return nil, false
	}
	return &pu, true
}

func (s *UserService) toCache(ctx context.Context, pu *PublicUser) {
	if s.Redis == nil || s.CacheTTL <= 0 {
		return
	}
	for _, key := range []string{cacheKeyByID(pu.ID), cacheKeyByName(pu.Username)} {
		if err := helpers.RedisSetJSON(ctx, s.Redis, key, pu, s.CacheTTL); err != nil {
			if s.Logger != nil {
				s.Logger.WithError(err).WithField("key", key).Warn("user cache write failed")
			}
			return
		}
	}
}
