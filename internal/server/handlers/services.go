package handlers

import (
	"context"
	"time"

	"github.com/iudanet/tasktracker/internal/auth"
	"github.com/iudanet/tasktracker/internal/live"
	"github.com/iudanet/tasktracker/internal/models"
	"github.com/iudanet/tasktracker/internal/tasks"
)

//go:generate moq -out services_mock.go . AuthService TaskService Pinger

// AuthService authenticates API users
type AuthService interface {
	Login(ctx context.Context, username, password string) (auth.Result, error)
	Register(ctx context.Context, username, password string) (auth.Result, error)
	Logout(ctx context.Context) error
}

// TaskService serves task queries and changes for one owner at a time
type TaskService interface {
	List(ctx context.Context, ownerID int64, q tasks.Query) ([]*models.Task, error)
	Watch(ctx context.Context, ownerID int64, q tasks.Query) (*live.Subscription, error)
	GetByID(ctx context.Context, ownerID, taskID int64) (*models.Task, error)
	Insert(ctx context.Context, ownerID int64, task *models.Task) (int64, error)
	Update(ctx context.Context, ownerID int64, task *models.Task) error
	DeleteByID(ctx context.Context, ownerID, taskID int64) error
	DeleteAll(ctx context.Context, ownerID int64) (int64, error)
	Location() *time.Location
}

// Pinger reports whether the database is reachable
type Pinger interface {
	PingContext(ctx context.Context) error
}

var (
	_ AuthService = (*auth.Service)(nil)
	_ TaskService = (*tasks.Service)(nil)
)
