package repository

import (
	"context"
	"errors"

	"authservice/internal/domain/entity"
)

var (
	// ErrNotFound is returned when no user matches the lookup.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateUsername is returned when the storage uniqueness
	// constraint rejects an insert. The constraint, not application code,
	// is the source of truth for username uniqueness.
	ErrDuplicateUsername = errors.New("username already exists")
)

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	Clear(ctx context.Context) (int64, error)
}
