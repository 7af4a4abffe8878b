package cli

import (
	"context"

	"github.com/iudanet/tasktracker/internal/auth"
	"github.com/iudanet/tasktracker/internal/live"
	"github.com/iudanet/tasktracker/internal/models"
	"github.com/iudanet/tasktracker/internal/settings"
	"github.com/iudanet/tasktracker/internal/tasks"
)

//go:generate moq -out services_mock.go . AuthService TaskService SettingsService

// AuthService is the part of auth.Service the client uses
type AuthService interface {
	Login(ctx context.Context, username, password string) (auth.Result, error)
	Register(ctx context.Context, username, password string) (auth.Result, error)
	Logout(ctx context.Context) error
	CurrentSession(ctx context.Context) (*models.Session, error)
}

// TaskService is the part of tasks.Service the client uses
type TaskService interface {
	List(ctx context.Context, ownerID int64, q tasks.Query) ([]*models.Task, error)
	Watch(ctx context.Context, ownerID int64, q tasks.Query) (*live.Subscription, error)
	Refresh(ctx context.Context, ownerID int64) error
	GetByID(ctx context.Context, ownerID, taskID int64) (*models.Task, error)
	Insert(ctx context.Context, ownerID int64, task *models.Task) (int64, error)
	Update(ctx context.Context, ownerID int64, task *models.Task) error
	DeleteByID(ctx context.Context, ownerID, taskID int64) error
	DeleteAll(ctx context.Context, ownerID int64) (int64, error)
}

// SettingsService is the part of settings.Service the client uses
type SettingsService interface {
	Get(ctx context.Context) (*models.Preferences, error)
	SetTheme(ctx context.Context, theme string) (*models.Preferences, error)
	SetLanguage(ctx context.Context, lang string) (*models.Preferences, error)
}

var (
	_ AuthService     = (*auth.Service)(nil)
	_ TaskService     = (*tasks.Service)(nil)
	_ SettingsService = (*settings.Service)(nil)
)
