// Package memory keeps users in process memory. It backs tests and local
// runs that have no database available.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/hongminglow/casino-api/internal/models"
	"github.com/hongminglow/casino-api/internal/storage"
)

var _ storage.UserStore = (*Store)(nil)

// Store is a mutex guarded user table.
type Store struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]*models.User
	phones map[string]int64
	names  map[string]int64
	emails map[string]int64
}

// New returns an empty store. IDs start at 1.
func New() *Store {
	return &Store{
		byID:   make(map[int64]*models.User),
		phones: make(map[string]int64),
		names:  make(map[string]int64),
		emails: make(map[string]int64),
	}
}

func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.names[user.Username]; ok {
		return models.User{}, storage.ErrAlreadyExists
	}
	if _, ok := s.emails[user.Email]; ok {
		return models.User{}, storage.ErrAlreadyExists
	}
	if _, ok := s.phones[user.Phone]; ok {
		return models.User{}, storage.ErrAlreadyExists
	}

	s.nextID++
	user.ID = s.nextID
	user.Balance = 0
	user.CreatedAt = time.Now().UTC()

	stored := user
	s.byID[user.ID] = &stored
	s.names[user.Username] = user.ID
	s.emails[user.Email] = user.ID
	s.phones[user.Phone] = user.ID
	return user, nil
}

func (s *Store) FindByPhone(ctx context.Context, phone string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.phones[phone]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	return *s.byID[id], nil
}

func (s *Store) GetBalance(ctx context.Context, id int64) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.byID[id]
	if !ok {
		return 0, storage.ErrNotFound
	}
	return user.Balance, nil
}

// AdjustBalance adds amount under the write lock, so concurrent callers never
// lose an update.
func (s *Store) AdjustBalance(ctx context.Context, id int64, amount int64) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byID[id]
	if !ok {
		return 0, storage.ErrNotFound
	}
	user.Balance += amount
	return user.Balance, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *Store) Close() {}
