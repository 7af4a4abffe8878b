package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/tasktracker/internal/models"
	"github.com/iudanet/tasktracker/internal/storage"
)

// tagSeparator joins tags into the single column the tag filter searches.
const tagSeparator = ","

const taskColumns = `id, user_id, title, description, tags, occurs_at, icon, color_hex, priority`

// CreateTask inserts a task and returns the assigned ID
func (s *Storage) CreateTask(ctx context.Context, task *models.Task) (int64, error) {
	query := `
		INSERT INTO tasks (user_id, title, description, tags, occurs_at, icon, color_hex, priority)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		task.OwnerID,
		task.Title,
		task.Description,
		encodeTags(task.Tags),
		task.OccursAt.UnixMilli(),
		task.Icon,
		task.ColorHex,
		task.Priority,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted task id: %w", err)
	}

	return id, nil
}

// GetTask retrieves a single task of the owner
func (s *Storage) GetTask(ctx context.Context, ownerID, taskID int64) (*models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ? AND user_id = ?`

	task, err := scanTask(s.db.QueryRowContext(ctx, query, taskID, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return task, nil
}

// UpdateTask replaces the stored task with the same ID and owner
func (s *Storage) UpdateTask(ctx context.Context, task *models.Task) error {
	query := `
		UPDATE tasks
		SET title = ?, description = ?, tags = ?, occurs_at = ?,
		    icon = ?, color_hex = ?, priority = ?
		WHERE id = ? AND user_id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		task.Title,
		task.Description,
		encodeTags(task.Tags),
		task.OccursAt.UnixMilli(),
		task.Icon,
		task.ColorHex,
		task.Priority,
		task.ID,
		task.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrTaskNotFound
	}

	return nil
}

// DeleteTask deletes a task by ID. Deleting a missing task is a no-op
func (s *Storage) DeleteTask(ctx context.Context, ownerID, taskID int64) error {
	query := `DELETE FROM tasks WHERE id = ? AND user_id = ?`

	if _, err := s.db.ExecContext(ctx, query, taskID, ownerID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}

// DeleteAllTasks deletes every task of the owner
func (s *Storage) DeleteAllTasks(ctx context.Context, ownerID int64) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE user_id = ?`, ownerID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete tasks: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows, nil
}

// ListTasks returns the owner's tasks matching the filter
func (s *Storage) ListTasks(ctx context.Context, ownerID int64, filter storage.TaskFilter) (tasks []*models.Task, err error) {
	query, args := buildListQuery(ownerID, filter)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	tasks = make([]*models.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}

	return tasks, nil
}

// buildListQuery собирает SELECT по фильтру. Порядок сортировки зависит от
// того, задан ли диапазон дат.
func buildListQuery(ownerID int64, filter storage.TaskFilter) (string, []any) {
	var sb strings.Builder
	args := []any{ownerID}

	sb.WriteString(`SELECT ` + taskColumns + ` FROM tasks WHERE user_id = ?`)

	if filter.Range != nil {
		sb.WriteString(` AND occurs_at >= ? AND occurs_at < ?`)
		args = append(args, filter.Range.Start.UnixMilli(), filter.Range.End.UnixMilli())
	}

	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		sb.WriteString(` AND (title LIKE ? ESCAPE '\' OR description LIKE ? ESCAPE '\')`)
		args = append(args, pattern, pattern)
	}

	if filter.Tag != "" {
		sb.WriteString(` AND tags LIKE ? ESCAPE '\'`)
		args = append(args, likePattern(filter.Tag))
	}

	if filter.Range != nil {
		sb.WriteString(` ORDER BY priority DESC, occurs_at ASC, id ASC`)
	} else {
		sb.WriteString(` ORDER BY occurs_at DESC, priority DESC, id ASC`)
	}

	return sb.String(), args
}

// likePattern экранирует спецсимволы LIKE, чтобы поиск был буквальной подстрокой.
// LIKE в SQLite не учитывает регистр для ASCII.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*models.Task, error) {
	task := &models.Task{}
	var tags string
	var occursAt int64

	err := row.Scan(
		&task.ID,
		&task.OwnerID,
		&task.Title,
		&task.Description,
		&tags,
		&occursAt,
		&task.Icon,
		&task.ColorHex,
		&task.Priority,
	)
	if err != nil {
		return nil, err
	}

	task.Tags = decodeTags(tags)
	task.OccursAt = time.UnixMilli(occursAt).UTC()

	return task, nil
}

func encodeTags(tags []string) string {
	return strings.Join(tags, tagSeparator)
}

func decodeTags(s string) []string {
	tags := make([]string, 0)
	for _, tag := range strings.Split(s, tagSeparator) {
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
