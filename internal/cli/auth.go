package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/tasktracker/internal/auth"
	"github.com/iudanet/tasktracker/internal/models"
)

type authFunc func(ctx context.Context, username, password string) (auth.Result, error)

func (c *Cli) runLogin(ctx context.Context, username, password string) error {
	return c.authenticate(ctx, "Login", c.auth.Login, username, password)
}

func (c *Cli) runRegister(ctx context.Context, username, password string) error {
	return c.authenticate(ctx, "Registration", c.auth.Register, username, password)
}

func (c *Cli) authenticate(ctx context.Context, action string, fn authFunc, username, password string) error {
	var err error

	if username == "" {
		username, err = c.io.ReadInput("Username: ")
		if err != nil {
			return fmt.Errorf("failed to read username: %w", err)
		}
	}

	if password == "" {
		password, err = c.io.ReadPassword("Password: ")
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
	}

	result, err := fn(ctx, username, password)
	if err != nil {
		return fmt.Errorf("%s failed: %w", action, err)
	}

	switch r := result.(type) {
	case auth.Success:
		c.io.Printf("✓ %s successful! Logged in as %s (id %d)\n", action, r.Username, r.UserID)
		return nil
	case auth.Failure:
		return r.Err
	default:
		return fmt.Errorf("unexpected auth result %T", result)
	}
}

func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.auth.Logout(ctx); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	c.io.Println("✓ Logged out")
	return nil
}

func (c *Cli) runStatus(ctx context.Context) error {
	view := statusView{}

	session, err := c.auth.CurrentSession(ctx)
	switch {
	case err == nil:
		view.Session = session
	case !isNotLoggedIn(err):
		return fmt.Errorf("failed to get session: %w", err)
	}

	prefs, err := c.settings.Get(ctx)
	if err != nil {
		return err
	}
	view.Preferences = prefs

	return c.render("status", view)
}

func (c *Cli) runSettings(ctx context.Context, theme, language string) error {
	var prefs *models.Preferences
	var err error

	if theme != "" {
		if prefs, err = c.settings.SetTheme(ctx, theme); err != nil {
			return err
		}
	}
	if language != "" {
		if prefs, err = c.settings.SetLanguage(ctx, language); err != nil {
			return err
		}
	}
	if prefs == nil {
		if prefs, err = c.settings.Get(ctx); err != nil {
			return err
		}
	}

	c.io.Printf("Theme:    %s\n", prefs.Theme)
	c.io.Printf("Language: %s\n", prefs.Language)
	return nil
}
