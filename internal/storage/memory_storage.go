package storage

import (
	"context"
	"sync"

	"ShaadiBiodata/internal/models"
)

type MemoryStorage struct {
	mu    sync.RWMutex
	users []models.User
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{users: make([]models.User, 0)}
}

// CreateUser appends the user and assigns the next id (1, 2, ...).
func (s *MemoryStorage) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return nil, ErrEmailExists
		}
	}

	created := *user
	created.ID = len(s.users) + 1
	s.users = append(s.users, created)
	return &created, nil
}

func (s *MemoryStorage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *MemoryStorage) Close() error {
	return nil
}
