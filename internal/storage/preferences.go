package storage

import (
	"context"

	"github.com/iudanet/tasktracker/internal/models"
)

//go:generate moq -out preferences_mock.go . PreferencesStorage

// PreferencesStorage stores device level settings
type PreferencesStorage interface {
	// GetPreferences returns saved preferences, defaults for missing keys
	GetPreferences(ctx context.Context) (*models.Preferences, error)

	// SavePreferences stores all preference values
	SavePreferences(ctx context.Context, prefs *models.Preferences) error

	// GetOrCreateSecret returns the device secret, generating it on first use
	GetOrCreateSecret(ctx context.Context) ([]byte, error)
}
