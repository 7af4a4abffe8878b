// Package tasks implements the task queries and mutations of a single owner.
package tasks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/tasktracker/internal/calendar"
	"github.com/iudanet/tasktracker/internal/live"
	"github.com/iudanet/tasktracker/internal/models"
	"github.com/iudanet/tasktracker/internal/storage"
	"github.com/iudanet/tasktracker/internal/validation"
)

var (
	// ErrNoOwner is returned when an operation is called without a logged-in owner.
	ErrNoOwner = errors.New("operation requires a logged-in user")

	// ErrTaskNotFound is returned by Update for an unknown task.
	ErrTaskNotFound = storage.ErrTaskNotFound

	// ErrInvalidTask wraps validation failures of Insert and Update
	ErrInvalidTask = errors.New("invalid task")
)

// Service provides ordered views and CRUD over one owner's tasks. Every
// mutation refreshes the owner's live queries.
type Service struct {
	store  storage.TaskStorage
	hub    *live.Hub
	loc    *time.Location
	logger *slog.Logger
}

// NewService создает сервис задач. loc задает часовой пояс для дневных выборок
func NewService(store storage.TaskStorage, hub *live.Hub, loc *time.Location, logger *slog.Logger) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{
		store:  store,
		hub:    hub,
		loc:    loc,
		logger: logger,
	}
}

// Location returns the time zone used for day bucketing
func (s *Service) Location() *time.Location {
	return s.loc
}

// ListAll returns all tasks, latest date first
func (s *Service) ListAll(ctx context.Context, ownerID int64) ([]*models.Task, error) {
	return s.List(ctx, ownerID, Query{})
}

// ListByDayRange returns tasks with start <= OccursAt < end, highest priority number first
func (s *Service) ListByDayRange(ctx context.Context, ownerID int64, start, end time.Time) ([]*models.Task, error) {
	return s.List(ctx, ownerID, DayQuery(start, end))
}

// ListByDay returns the tasks of the calendar day containing day
func (s *Service) ListByDay(ctx context.Context, ownerID int64, day time.Time) ([]*models.Task, error) {
	start, end := calendar.DayRange(day, s.loc)
	return s.ListByDayRange(ctx, ownerID, start, end)
}

// Search matches the query against title and description, ignoring case
func (s *Service) Search(ctx context.Context, ownerID int64, query string) ([]*models.Task, error) {
	return s.List(ctx, ownerID, Query{Search: query})
}

// ListByTag matches tag as a substring of the task's tag list, ignoring case
func (s *Service) ListByTag(ctx context.Context, ownerID int64, tag string) ([]*models.Task, error) {
	return s.List(ctx, ownerID, Query{Tag: tag})
}

// ListByDayAndSearch combines the day range and the search filter
func (s *Service) ListByDayAndSearch(ctx context.Context, ownerID int64, start, end time.Time, query string) ([]*models.Task, error) {
	q := DayQuery(start, end)
	q.Search = query
	return s.List(ctx, ownerID, q)
}

// List runs an arbitrary combination of filters
func (s *Service) List(ctx context.Context, ownerID int64, q Query) ([]*models.Task, error) {
	if ownerID <= 0 {
		return nil, ErrNoOwner
	}

	tasks, err := s.store.ListTasks(ctx, ownerID, q.filter())
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

// Watch subscribes to the query. The first snapshot is ready when Watch
// returns and a new one follows every change of the owner's tasks.
func (s *Service) Watch(ctx context.Context, ownerID int64, q Query) (*live.Subscription, error) {
	if ownerID <= 0 {
		return nil, ErrNoOwner
	}

	fetch := func(ctx context.Context) ([]models.Task, error) {
		tasks, err := s.List(ctx, ownerID, q)
		if err != nil {
			return nil, err
		}
		snapshot := make([]models.Task, 0, len(tasks))
		for _, task := range tasks {
			snapshot = append(snapshot, *task)
		}
		return snapshot, nil
	}

	sub, err := s.hub.Subscribe(ctx, ownerID, q.key(), fetch)
	if err != nil {
		return nil, fmt.Errorf("failed to watch tasks: %w", err)
	}

	return sub, nil
}

// Refresh re-runs the owner's live queries. It picks up changes written by
// another process sharing the database
func (s *Service) Refresh(ctx context.Context, ownerID int64) error {
	if ownerID <= 0 {
		return ErrNoOwner
	}
	s.hub.Invalidate(ctx, ownerID)
	return nil
}

// GetByID returns the task or nil when it does not exist
func (s *Service) GetByID(ctx context.Context, ownerID, taskID int64) (*models.Task, error) {
	if ownerID <= 0 {
		return nil, ErrNoOwner
	}

	task, err := s.store.GetTask(ctx, ownerID, taskID)
	if err != nil {
		if errors.Is(err, storage.ErrTaskNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return task, nil
}

// storedTime - время в том виде, в котором его вернет хранилище: миллисекунды, UTC
func storedTime(t time.Time) time.Time {
	return t.Truncate(time.Millisecond).UTC()
}

// Insert stores a new task for the owner and returns its ID.
// The ID and owner of the input are ignored
func (s *Service) Insert(ctx context.Context, ownerID int64, task *models.Task) (int64, error) {
	if ownerID <= 0 {
		return 0, ErrNoOwner
	}

	if err := validation.ValidateTask(task); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidTask, err)
	}

	record := *task
	record.ID = 0
	record.OwnerID = ownerID
	record.OccursAt = storedTime(task.OccursAt)

	id, err := s.store.CreateTask(ctx, &record)
	if err != nil {
		return 0, fmt.Errorf("failed to insert task: %w", err)
	}

	s.logger.Debug("Task inserted", "owner", ownerID, "task_id", id)
	s.hub.Invalidate(ctx, ownerID)

	return id, nil
}

// Update replaces the task with the same ID. Returns ErrTaskNotFound if the
// owner has no such task
func (s *Service) Update(ctx context.Context, ownerID int64, task *models.Task) error {
	if ownerID <= 0 {
		return ErrNoOwner
	}

	if err := validation.ValidateTask(task); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTask, err)
	}

	record := *task
	record.OwnerID = ownerID
	record.OccursAt = storedTime(task.OccursAt)

	if err := s.store.UpdateTask(ctx, &record); err != nil {
		return fmt.Errorf("failed to update task %d: %w", task.ID, err)
	}

	s.logger.Debug("Task updated", "owner", ownerID, "task_id", task.ID)
	s.hub.Invalidate(ctx, ownerID)

	return nil
}

// DeleteByID removes the task. A missing task is not an error
func (s *Service) DeleteByID(ctx context.Context, ownerID, taskID int64) error {
	if ownerID <= 0 {
		return ErrNoOwner
	}

	if err := s.store.DeleteTask(ctx, ownerID, taskID); err != nil {
		return fmt.Errorf("failed to delete task %d: %w", taskID, err)
	}

	s.logger.Debug("Task deleted", "owner", ownerID, "task_id", taskID)
	s.hub.Invalidate(ctx, ownerID)

	return nil
}

// Delete removes the task matching task.ID
func (s *Service) Delete(ctx context.Context, ownerID int64, task *models.Task) error {
	if task == nil {
		return fmt.Errorf("task is nil")
	}
	return s.DeleteByID(ctx, ownerID, task.ID)
}

// DeleteAll removes every task of the owner and returns how many were removed
func (s *Service) DeleteAll(ctx context.Context, ownerID int64) (int64, error) {
	if ownerID <= 0 {
		return 0, ErrNoOwner
	}

	n, err := s.store.DeleteAllTasks(ctx, ownerID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete tasks: %w", err)
	}

	s.logger.Info("All tasks deleted", "owner", ownerID, "count", n)
	s.hub.Invalidate(ctx, ownerID)

	return n, nil
}
