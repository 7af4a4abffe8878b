package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/tasktracker/internal/crypto"
	"github.com/iudanet/tasktracker/internal/models"
)

const (
	keyTheme         = "theme"
	keyLanguage      = "language"
	keySigningSecret = "signing_secret"
)

// GetPreferences returns stored preferences. Missing keys keep their defaults
func (s *Storage) GetPreferences(ctx context.Context) (*models.Preferences, error) {
	prefs := models.DefaultPreferences()

	err := s.view(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketPreferences)
		if err != nil {
			return err
		}

		if v := b.Get([]byte(keyTheme)); v != nil {
			prefs.Theme = string(v)
		}
		if v := b.Get([]byte(keyLanguage)); v != nil {
			prefs.Language = string(v)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &prefs, nil
}

// SavePreferences stores theme and language in one transaction
func (s *Storage) SavePreferences(ctx context.Context, prefs *models.Preferences) error {
	return s.update(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketPreferences)
		if err != nil {
			return err
		}

		if err := b.Put([]byte(keyTheme), []byte(prefs.Theme)); err != nil {
			return fmt.Errorf("failed to save theme: %w", err)
		}
		if err := b.Put([]byte(keyLanguage), []byte(prefs.Language)); err != nil {
			return fmt.Errorf("failed to save language: %w", err)
		}

		return nil
	})
}

// GetOrCreateSecret returns the device secret, generating and storing it on first call
func (s *Storage) GetOrCreateSecret(ctx context.Context) ([]byte, error) {
	var secret []byte

	err := s.update(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketPreferences)
		if err != nil {
			return err
		}

		// Значение из bolt валидно только внутри транзакции, копируем
		if v := b.Get([]byte(keySigningSecret)); v != nil {
			secret = append([]byte(nil), v...)
			return nil
		}

		secret, err = crypto.GenerateSecret()
		if err != nil {
			return err
		}

		if err := b.Put([]byte(keySigningSecret), secret); err != nil {
			return fmt.Errorf("failed to save signing secret: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return secret, nil
}
