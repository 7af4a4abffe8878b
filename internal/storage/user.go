package storage

import (
	"context"

	"github.com/iudanet/tasktracker/internal/models"
)

//go:generate moq -out user_mock.go . UserStorage

// UserStorage defines interface for local account persistence
type UserStorage interface {
	// CreateUser inserts a new user and returns the assigned ID.
	// Returns ErrUserAlreadyExists if the username is taken
	CreateUser(ctx context.Context, user *models.User) (int64, error)

	// GetUserByUsername retrieves user by username
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// GetUserByID retrieves user by ID
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)

	// CountUsers returns the number of local accounts
	CountUsers(ctx context.Context) (int, error)
}
