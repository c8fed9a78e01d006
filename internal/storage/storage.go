// Package storage keeps registered users. MemoryStorage is the default
// backend; SQLiteStorage persists users across restarts.
package storage

import (
	"context"
	"errors"

	"ShaadiBiodata/internal/models"
)

var (
	ErrEmailExists  = errors.New("email already exists")
	ErrUserNotFound = errors.New("user not found")
)

// UserRepository stores users keyed by a unique, case-sensitive email.
// CreateUser must check uniqueness and insert atomically.
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	Close() error
}
