// Package settings reads and changes device display preferences.
package settings

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/iudanet/tasktracker/internal/models"
	"github.com/iudanet/tasktracker/internal/storage"
	"github.com/iudanet/tasktracker/internal/validation"
)

// Service manages theme and language preferences
type Service struct {
	store  storage.PreferencesStorage
	logger *slog.Logger
}

// NewService создает сервис настроек
func NewService(store storage.PreferencesStorage, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Get returns the current preferences
func (s *Service) Get(ctx context.Context) (*models.Preferences, error) {
	prefs, err := s.store.GetPreferences(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}
	return prefs, nil
}

// SetTheme changes the theme mode
func (s *Service) SetTheme(ctx context.Context, theme string) (*models.Preferences, error) {
	if err := validation.ValidateTheme(theme); err != nil {
		return nil, err
	}
	return s.update(ctx, func(p *models.Preferences) { p.Theme = theme })
}

// SetLanguage changes the interface language
func (s *Service) SetLanguage(ctx context.Context, lang string) (*models.Preferences, error) {
	if err := validation.ValidateLanguage(lang); err != nil {
		return nil, err
	}
	return s.update(ctx, func(p *models.Preferences) { p.Language = lang })
}

func (s *Service) update(ctx context.Context, apply func(p *models.Preferences)) (*models.Preferences, error) {
	prefs, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	apply(prefs)

	if err := s.store.SavePreferences(ctx, prefs); err != nil {
		return nil, fmt.Errorf("failed to save preferences: %w", err)
	}

	s.logger.Info("Preferences updated", "theme", prefs.Theme, "language", prefs.Language)

	return prefs, nil
}
