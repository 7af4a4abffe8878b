package storage

import (
	"context"
	"time"

	"github.com/iudanet/tasktracker/internal/models"
)

//go:generate moq -out task_mock.go . TaskStorage

// TimeRange is a half-open interval [Start, End).
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the range.
func (r TimeRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// TaskFilter narrows a task listing. Zero-valued fields do not filter.
//
// Without a Range the result is ordered by date descending then priority
// descending. With a Range it is ordered by priority descending then date
// ascending, which is the order of the daily view.
type TaskFilter struct {
	Range  *TimeRange
	Search string // подстрока в title или description, без учета регистра
	Tag    string // подстрока в сериализованном списке тегов, без учета регистра
}

// TaskStorage defines interface for task persistence. Every method is scoped
// to a single owner.
type TaskStorage interface {
	// CreateTask inserts a task and returns the assigned ID. task.ID is ignored
	CreateTask(ctx context.Context, task *models.Task) (int64, error)

	// GetTask retrieves a task by ID
	// Returns ErrTaskNotFound if the task doesn't exist or belongs to another owner
	GetTask(ctx context.Context, ownerID, taskID int64) (*models.Task, error)

	// UpdateTask replaces every field of the task with the given ID
	// Returns ErrTaskNotFound if nothing was updated
	UpdateTask(ctx context.Context, task *models.Task) error

	// DeleteTask removes a task. A missing task is not an error
	DeleteTask(ctx context.Context, ownerID, taskID int64) error

	// DeleteAllTasks removes every task of the owner and returns how many were removed
	DeleteAllTasks(ctx context.Context, ownerID int64) (int64, error)

	// ListTasks returns the owner's tasks matching the filter
	// Returns empty slice if no tasks found
	ListTasks(ctx context.Context, ownerID int64, filter TaskFilter) ([]*models.Task, error)
}
