package repository

import (
	"context"
	"errors"

	"authapi/internal/domain/entity"
)

var (
	// ErrNotFound signals a lookup miss.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateUsername signals a unique-key conflict on create. The
	// classification exists for server-side logging only; callers still
	// surface a generic failure.
	ErrDuplicateUsername = errors.New("username already exists")
)

// UserRepository defines the persistence operations for user records.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
}
