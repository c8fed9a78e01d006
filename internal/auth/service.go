package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ShaadiBiodata/internal/apperr"
	"ShaadiBiodata/internal/models"
	"ShaadiBiodata/internal/storage"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrRegistrationFields = apperr.New(apperr.KindValidation, "Please provide name, email, and password")
	ErrLoginFields        = apperr.New(apperr.KindValidation, "Email and password are required")
	ErrDuplicateEmail     = apperr.New(apperr.KindConflict, "Email already registered")
	// Returned for unknown emails and wrong passwords alike.
	ErrInvalidCredentials = apperr.New(apperr.KindInvalidCredentials, "Invalid email or password")
)

// Session is the result of a successful login.
type Session struct {
	Token string
	User  models.User
}

// Service registers users and exchanges credentials for session tokens.
type Service struct {
	users      storage.UserRepository
	tokens     *TokenIssuer
	bcryptCost int
}

func NewService(users storage.UserRepository, tokens *TokenIssuer, bcryptCost int) *Service {
	return &Service{
		users:      users,
		tokens:     tokens,
		bcryptCost: bcryptCost,
	}
}

func (s *Service) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || password == "" {
		return nil, ErrRegistrationFields
	}

	// cheap lookup first so duplicates never pay for bcrypt
	if _, err := s.users.GetUserByEmail(ctx, email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, storage.ErrUserNotFound) {
		return nil, fmt.Errorf("Register(): lookup failed: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("Register(): failed to hash password: %w", err)
	}

	user, err := s.users.CreateUser(ctx, &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, storage.ErrEmailExists) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("Register(): failed to create user: %w", err)
	}
	return user, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	if email == "" || password == "" {
		return nil, ErrLoginFields
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("Login(): lookup failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID, user.Name, user.Email)
	if err != nil {
		return nil, fmt.Errorf("Login(): %w", err)
	}
	return &Session{Token: token, User: *user}, nil
}
