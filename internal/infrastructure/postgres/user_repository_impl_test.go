package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authservice/internal/domain/entity"
	"authservice/internal/domain/repository"
)

func newRepoWithMock(t *testing.T) (*UserRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewUserRepository(mock), mock
}

func sampleUser() *entity.User {
	return &entity.User{
		ID:           "5f0c5d1e-9c7a-4d8a-b9e3-0a1b2c3d4e5f",
		Username:     "alice1",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		CreatedAt:    time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestCreate(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	u := sampleUser()

	mock.ExpectExec(`INSERT INTO users`).
		WithArgs(u.ID, u.Username, u.PasswordHash, u.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), u))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDuplicateUsername(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	u := sampleUser()

	mock.ExpectExec(`INSERT INTO users`).
		WithArgs(u.ID, u.Username, u.PasswordHash, u.CreatedAt).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_username_key"})

	err := repo.Create(context.Background(), u)
	assert.ErrorIs(t, err, repository.ErrDuplicateUsername)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateStorageError(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	u := sampleUser()

	mock.ExpectExec(`INSERT INTO users`).
		WithArgs(u.ID, u.Username, u.PasswordHash, u.CreatedAt).
		WillReturnError(errors.New("connection refused"))

	err := repo.Create(context.Background(), u)
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrDuplicateUsername)
}

func TestGetByUsername(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	u := sampleUser()

	rows := pgxmock.NewRows([]string{"id", "username", "password_hash", "created_at"}).
		AddRow(u.ID, u.Username, u.PasswordHash, u.CreatedAt)
	mock.ExpectQuery(`SELECT id, username, password_hash, created_at\s+FROM users\s+WHERE username =`).
		WithArgs("alice1").
		WillReturnRows(rows)

	got, err := repo.GetByUsername(context.Background(), "alice1")
	require.NoError(t, err)
	assert.Equal(t, u, got)
}

func TestGetByUsernameNotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`SELECT id, username, password_hash, created_at\s+FROM users\s+WHERE username =`).
		WithArgs("nobody").
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "password_hash", "created_at"}))

	_, err := repo.GetByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGetByID(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	u := sampleUser()

	rows := pgxmock.NewRows([]string{"id", "username", "password_hash", "created_at"}).
		AddRow(u.ID, u.Username, u.PasswordHash, u.CreatedAt)
	mock.ExpectQuery(`SELECT id, username, password_hash, created_at\s+FROM users\s+WHERE id =`).
		WithArgs(u.ID).
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, u, got)
}

func TestList(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	u := sampleUser()

	rows := pgxmock.NewRows([]string{"id", "username", "password_hash", "created_at"}).
		AddRow(u.ID, u.Username, u.PasswordHash, u.CreatedAt).
		AddRow("11111111-2222-3333-4444-555555555555", "bob_2", "$2a$10$zyxw", u.CreatedAt.Add(time.Minute))
	mock.ExpectQuery(`SELECT id, username, password_hash, created_at\s+FROM users\s+ORDER BY created_at`).
		WillReturnRows(rows)

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice1", users[0].Username)
	assert.Equal(t, "bob_2", users[1].Username)
}

func TestClear(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`DELETE FROM users`).
		WillReturnResult(pgxmock.NewResult("DELETE", 3))

	n, err := repo.Clear(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
