package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/tasktracker/internal/models"
	"github.com/iudanet/tasktracker/internal/storage"
)

func TestUserStorage_CreateUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	tests := []struct {
		wantError error
		user      *models.User
		name      string
	}{
		{
			name: "create new user successfully",
			user: &models.User{
				Username:     "testuser1",
				PasswordHash: "hash123",
				CreatedAt:    time.Now(),
			},
		},
		{
			name: "zero created_at is filled in",
			user: &models.User{
				Username:     "testuser2",
				PasswordHash: "hash456",
			},
		},
		{
			name: "duplicate username",
			user: &models.User{
				Username:     "testuser1",
				PasswordHash: "other",
			},
			wantError: storage.ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := s.CreateUser(ctx, tt.user)
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				return
			}

			require.NoError(t, err)
			assert.Positive(t, id)

			// Verify user was created
			got, err := s.GetUserByID(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, tt.user.Username, got.Username)
			assert.Equal(t, tt.user.PasswordHash, got.PasswordHash)
			assert.False(t, got.CreatedAt.IsZero())
		})
	}
}

func TestUserStorage_GetUserByUsername(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	id := createTestUser(t, ctx, s, "alice")

	tests := []struct {
		wantError error
		name      string
		username  string
		wantID    int64
	}{
		{name: "existing user", username: "alice", wantID: id},
		{name: "unknown user", username: "bob", wantError: storage.ErrUserNotFound},
		{name: "usernames are case sensitive", username: "Alice", wantError: storage.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := s.GetUserByUsername(ctx, tt.username)
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				assert.Nil(t, user)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, user.ID)
		})
	}
}

func TestUserStorage_GetUserByID_NotFound(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	_, err := s.GetUserByID(context.Background(), 42)
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestUserStorage_CountUsers(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	count, err := s.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	createTestUser(t, ctx, s, "alice")
	createTestUser(t, ctx, s, "bob")

	count, err = s.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestUserStorage_DriverErrors(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := &Storage{db: db}
	driverErr := errors.New("disk I/O error")

	mock.ExpectExec("INSERT INTO users").WillReturnError(driverErr)
	_, err = s.CreateUser(ctx, &models.User{Username: "alice", PasswordHash: "h"})
	require.ErrorIs(t, err, driverErr)
	assert.NotErrorIs(t, err, storage.ErrUserAlreadyExists)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(errors.New("constraint failed: UNIQUE constraint failed: users.username (2067)"))
	_, err = s.CreateUser(ctx, &models.User{Username: "alice", PasswordHash: "h"})
	assert.ErrorIs(t, err, storage.ErrUserAlreadyExists)

	mock.ExpectQuery("SELECT id, username").WithArgs("alice").WillReturnError(driverErr)
	_, err = s.GetUserByUsername(ctx, "alice")
	require.ErrorIs(t, err, driverErr)
	assert.NotErrorIs(t, err, storage.ErrUserNotFound)

	mock.ExpectQuery("SELECT COUNT").WillReturnError(driverErr)
	_, err = s.CountUsers(ctx)
	assert.ErrorIs(t, err, driverErr)

	assert.NoError(t, mock.ExpectationsWereMet())
}
