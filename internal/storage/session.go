package storage

import (
	"context"

	"github.com/iudanet/tasktracker/internal/models"
)

//go:generate moq -out session_mock.go . SessionStorage

// SessionStorage keeps the identity of the logged-in user on this device.
// The user ID and username are always written and removed together.
type SessionStorage interface {
	// SaveSession replaces the current session
	SaveSession(ctx context.Context, session *models.Session) error

	// GetSession returns the current session
	// Returns ErrSessionNotFound if nobody is logged in
	GetSession(ctx context.Context) (*models.Session, error)

	// DeleteSession removes the session (logout)
	// Returns ErrSessionNotFound if nobody is logged in
	DeleteSession(ctx context.Context) error
}
