package application

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"authapi/internal/domain/entity"
	"authapi/internal/domain/repository"
)

// fakeUserRepo is an in-memory UserRepository. Setting forcedErr makes every
// operation fail with it, simulating an unreachable store.
type fakeUserRepo struct {
	mu        sync.Mutex
	byName    map[string]*entity.User
	forcedErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byName: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.forcedErr != nil {
		return f.forcedErr
	}
	if _, ok := f.byName[u.Username]; ok {
		return repository.ErrDuplicateUsername
	}
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	cp := *u
	f.byName[u.Username] = &cp
	return nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	u, ok := f.byName[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	for _, u := range f.byName {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byName)
}

func (f *fakeUserRepo) stored(username string) *entity.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byName[username]
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
