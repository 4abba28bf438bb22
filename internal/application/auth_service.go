// Package application contains the credential lifecycle orchestration:
// registration, login verification and profile lookup over the user store.
package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"authservice/internal/domain/entity"
	"authservice/internal/domain/repository"
	"authservice/pkg/helpers"
)

var (
	// ErrUsernameTaken is returned when the username is already registered.
	ErrUsernameTaken = errors.New("username taken")
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password. One error value for both paths keeps the outward response
	// identical and prevents username enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthService struct {
	repo   repository.UserRepository
	logger *logrus.Logger
}

func NewAuthService(repo repository.UserRepository, logger *logrus.Logger) *AuthService {
	return &AuthService{repo: repo, logger: logger}
}

// Register hashes the password, assigns a fresh external id and persists
// the user. The existence pre-check is advisory; the storage uniqueness
// constraint remains the final authority, so a concurrent insert between
// check and create still comes back as ErrUsernameTaken.
func (s *AuthService) Register(ctx context.Context, username, password string) (*entity.User, error) {
	if _, err := s.repo.GetByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &entity.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.WithFields(logrus.Fields{"user_id": u.ID, "username": u.Username}).Info("user registered")
	return u, nil
}

// Login verifies the credentials and returns the user. Unknown usernames
// and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (*entity.User, error) {
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if !helpers.CheckPassword(password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// Profile returns the user for an external id.
func (s *AuthService) Profile(ctx context.Context, id string) (*entity.User, error) {
	return s.repo.GetByID(ctx, id)
}
