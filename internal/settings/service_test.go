package settings

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/tasktracker/internal/models"
	"github.com/iudanet/tasktracker/internal/storage"
)

func newTestService() (*Service, *storage.PreferencesStorageMock) {
	saved := models.DefaultPreferences()
	store := &storage.PreferencesStorageMock{
		GetPreferencesFunc: func(ctx context.Context) (*models.Preferences, error) {
			p := saved
			return &p, nil
		},
		SavePreferencesFunc: func(ctx context.Context, prefs *models.Preferences) error {
			saved = *prefs
			return nil
		},
	}
	return NewService(store, slog.New(slog.NewTextHandler(io.Discard, nil))), store
}

func TestService_SetTheme(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		theme   string
		wantErr bool
	}{
		{name: "dark", theme: models.ThemeDark},
		{name: "light", theme: models.ThemeLight},
		{name: "system", theme: models.ThemeSystem},
		{name: "unknown", theme: "solarized", wantErr: true},
		{name: "empty", theme: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newTestService()

			prefs, err := svc.SetTheme(ctx, tt.theme)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, store.SavePreferencesCalls())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.theme, prefs.Theme)
			assert.Equal(t, models.LanguageSystem, prefs.Language)

			got, err := svc.Get(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.theme, got.Theme)
		})
	}
}

func TestService_SetLanguage(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService()

	_, err := svc.SetTheme(ctx, models.ThemeDark)
	require.NoError(t, err)

	prefs, err := svc.SetLanguage(ctx, models.LanguageRussian)
	require.NoError(t, err)
	// Тема сохраняется при смене языка
	assert.Equal(t, models.Preferences{Theme: models.ThemeDark, Language: models.LanguageRussian}, *prefs)

	_, err = svc.SetLanguage(ctx, "de")
	assert.Error(t, err)
	assert.Len(t, store.SavePreferencesCalls(), 2)
}

func TestService_StoreError(t *testing.T) {
	dbErr := errors.New("bolt closed")
	store := &storage.PreferencesStorageMock{
		GetPreferencesFunc: func(ctx context.Context) (*models.Preferences, error) {
			return nil, dbErr
		},
	}
	svc := NewService(store, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := svc.Get(context.Background())
	assert.ErrorIs(t, err, dbErr)

	_, err = svc.SetTheme(context.Background(), models.ThemeDark)
	assert.ErrorIs(t, err, dbErr)
}
