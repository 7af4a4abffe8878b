package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/tasktracker/internal/auth"
	"github.com/iudanet/tasktracker/internal/models"
)

func TestCli_runLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("flags", func(t *testing.T) {
		io, out := newTestIO()
		mockAuth := &AuthServiceMock{
			LoginFunc: func(ctx context.Context, username, password string) (auth.Result, error) {
				return auth.Success{Username: username, UserID: 3}, nil
			},
		}
		c := newTestCli(io, mockAuth, nil, nil)

		require.NoError(t, c.runLogin(ctx, "alice", "secret"))
		assert.Contains(t, out.String(), "✓ Login successful! Logged in as alice (id 3)")
		assert.Empty(t, io.ReadInputCalls())
		assert.Empty(t, io.ReadPasswordCalls())

		calls := mockAuth.LoginCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, "alice", calls[0].Username)
		assert.Equal(t, "secret", calls[0].Password)
	})

	t.Run("prompts for missing values", func(t *testing.T) {
		io, _ := newTestIO("bob", "hunter2")
		mockAuth := &AuthServiceMock{
			LoginFunc: func(ctx context.Context, username, password string) (auth.Result, error) {
				return auth.Success{Username: username, UserID: 1}, nil
			},
		}
		c := newTestCli(io, mockAuth, nil, nil)

		require.NoError(t, c.runLogin(ctx, "", ""))
		require.Len(t, io.ReadInputCalls(), 1)
		require.Len(t, io.ReadPasswordCalls(), 1)
		assert.Equal(t, "bob", mockAuth.LoginCalls()[0].Username)
		assert.Equal(t, "hunter2", mockAuth.LoginCalls()[0].Password)
	})

	t.Run("failure is returned as is", func(t *testing.T) {
		io, out := newTestIO()
		mockAuth := &AuthServiceMock{
			LoginFunc: func(ctx context.Context, username, password string) (auth.Result, error) {
				return auth.Failure{Err: &auth.Error{Kind: auth.KindInvalidCredentials, Message: auth.MessageInvalidPassword}}, nil
			},
		}
		c := newTestCli(io, mockAuth, nil, nil)

		err := c.runLogin(ctx, "alice", "wrong")
		require.Error(t, err)
		assert.Equal(t, auth.MessageInvalidPassword, err.Error())

		var authErr *auth.Error
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, auth.KindInvalidCredentials, authErr.Kind)
		assert.NotContains(t, out.String(), "successful")
	})

	t.Run("storage error", func(t *testing.T) {
		io, _ := newTestIO()
		mockAuth := &AuthServiceMock{
			LoginFunc: func(ctx context.Context, username, password string) (auth.Result, error) {
				return nil, errors.New("disk full")
			},
		}
		c := newTestCli(io, mockAuth, nil, nil)

		err := c.runLogin(ctx, "alice", "secret")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Login failed")
		assert.Contains(t, err.Error(), "disk full")
	})
}

func TestCli_runRegister(t *testing.T) {
	ctx := context.Background()

	io, out := newTestIO()
	mockAuth := &AuthServiceMock{
		RegisterFunc: func(ctx context.Context, username, password string) (auth.Result, error) {
			if username == "taken" {
				return auth.Failure{Err: &auth.Error{Kind: auth.KindConflict, Message: auth.MessageUserExists}}, nil
			}
			return auth.Success{Username: username, UserID: 9}, nil
		},
	}
	c := newTestCli(io, mockAuth, nil, nil)

	require.NoError(t, c.runRegister(ctx, "carol", "secret"))
	assert.Contains(t, out.String(), "✓ Registration successful! Logged in as carol (id 9)")

	err := c.runRegister(ctx, "taken", "secret")
	require.Error(t, err)
	assert.Equal(t, auth.MessageUserExists, err.Error())
}

func TestCli_runLogout(t *testing.T) {
	ctx := context.Background()

	io, out := newTestIO()
	mockAuth := &AuthServiceMock{
		LogoutFunc: func(ctx context.Context) error { return nil },
	}
	c := newTestCli(io, mockAuth, nil, nil)

	require.NoError(t, c.runLogout(ctx))
	assert.Contains(t, out.String(), "✓ Logged out")

	mockAuth.LogoutFunc = func(ctx context.Context) error { return errors.New("locked") }
	assert.Error(t, c.runLogout(ctx))
}

func TestCli_runStatus(t *testing.T) {
	ctx := context.Background()

	prefs := &SettingsServiceMock{
		GetFunc: func(ctx context.Context) (*models.Preferences, error) {
			return &models.Preferences{Theme: models.ThemeDark, Language: models.LanguageRussian}, nil
		},
	}

	t.Run("logged in", func(t *testing.T) {
		io, out := newTestIO()
		c := newTestCli(io, loggedIn(5), nil, prefs)

		require.NoError(t, c.runStatus(ctx))
		assert.Contains(t, out.String(), "Logged in as: alice (id 5)")
		assert.Contains(t, out.String(), "dark")
		assert.Contains(t, out.String(), "ru")
	})

	t.Run("logged out", func(t *testing.T) {
		io, out := newTestIO()
		c := newTestCli(io, loggedOut(), nil, prefs)

		require.NoError(t, c.runStatus(ctx))
		assert.Contains(t, out.String(), "Not logged in.")
	})
}

func TestCli_runSettings(t *testing.T) {
	ctx := context.Background()

	current := models.DefaultPreferences()
	mockSettings := &SettingsServiceMock{
		GetFunc: func(ctx context.Context) (*models.Preferences, error) {
			p := current
			return &p, nil
		},
		SetThemeFunc: func(ctx context.Context, theme string) (*models.Preferences, error) {
			if theme == "neon" {
				return nil, errors.New("unknown theme")
			}
			current.Theme = theme
			p := current
			return &p, nil
		},
		SetLanguageFunc: func(ctx context.Context, lang string) (*models.Preferences, error) {
			current.Language = lang
			p := current
			return &p, nil
		},
	}

	io, out := newTestIO()
	c := newTestCli(io, nil, nil, mockSettings)

	require.NoError(t, c.runSettings(ctx, "", ""))
	assert.Contains(t, out.String(), "Theme:    system")
	assert.Empty(t, mockSettings.SetThemeCalls())

	require.NoError(t, c.runSettings(ctx, "light", "en"))
	assert.Contains(t, out.String(), "Theme:    light")
	assert.Contains(t, out.String(), "Language: en")

	assert.Error(t, c.runSettings(ctx, "neon", ""))
}
