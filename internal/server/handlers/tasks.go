package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/iudanet/tasktracker/internal/calendar"
	"github.com/iudanet/tasktracker/internal/models"
	"github.com/iudanet/tasktracker/internal/storage"
	"github.com/iudanet/tasktracker/internal/tasks"
	"github.com/iudanet/tasktracker/internal/validation"
	"github.com/iudanet/tasktracker/pkg/api"
)

const dateLayout = "2006-01-02"

// TaskHandler обрабатывает CRUD запросы задач
type TaskHandler struct {
	responder
	tasks TaskService
}

// NewTaskHandler создает handler задач
func NewTaskHandler(logger *slog.Logger, taskService TaskService) *TaskHandler {
	return &TaskHandler{
		responder: responder{logger: logger},
		tasks:     taskService,
	}
}

// List обрабатывает GET /api/v1/tasks?day=&from=&to=&q=&tag=
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	q, err := parseTaskQuery(r.URL.Query(), h.tasks.Location())
	if err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	list, err := h.tasks.List(ctx, userID, q)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to list tasks", slog.Int64("user_id", userID), slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.sendJSON(w, api.TaskListResponse{Tasks: toTaskList(list), Count: len(list)}, http.StatusOK)
}

// Create обрабатывает POST /api/v1/tasks
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	task, ok := h.decodeTask(w, r)
	if !ok {
		return
	}

	id, err := h.tasks.Insert(ctx, userID, task)
	if err != nil {
		h.writeTaskError(w, r, "create", err)
		return
	}

	h.logger.InfoContext(ctx, "Task created", slog.Int64("user_id", userID), slog.Int64("task_id", id))
	h.sendJSON(w, api.CreateTaskResponse{ID: id}, http.StatusCreated)
}

// Get обрабатывает GET /api/v1/tasks/{id}
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, ok := h.taskID(w, r)
	if !ok {
		return
	}

	task, err := h.tasks.GetByID(ctx, userID, id)
	if err != nil {
		h.writeTaskError(w, r, "get", err)
		return
	}
	if task == nil {
		h.sendError(w, "task not found", http.StatusNotFound)
		return
	}

	h.sendJSON(w, toTaskResponse(task), http.StatusOK)
}

// Update обрабатывает PUT /api/v1/tasks/{id}. Задача заменяется целиком
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, ok := h.taskID(w, r)
	if !ok {
		return
	}

	task, ok := h.decodeTask(w, r)
	if !ok {
		return
	}
	task.ID = id

	if err := h.tasks.Update(ctx, userID, task); err != nil {
		h.writeTaskError(w, r, "update", err)
		return
	}

	h.sendJSON(w, toTaskResponse(task), http.StatusOK)
}

// Delete обрабатывает DELETE /api/v1/tasks/{id}. Отсутствующая задача не ошибка
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, ok := h.taskID(w, r)
	if !ok {
		return
	}

	if err := h.tasks.DeleteByID(ctx, userID, id); err != nil {
		h.writeTaskError(w, r, "delete", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteAll обрабатывает DELETE /api/v1/tasks
func (h *TaskHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	n, err := h.tasks.DeleteAll(ctx, userID)
	if err != nil {
		h.writeTaskError(w, r, "delete all", err)
		return
	}

	h.logger.InfoContext(ctx, "Tasks cleared", slog.Int64("user_id", userID), slog.Int64("deleted", n))
	h.sendJSON(w, api.DeleteAllResponse{Deleted: n}, http.StatusOK)
}

func (h *TaskHandler) taskID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		h.sendError(w, "invalid task id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func (h *TaskHandler) decodeTask(w http.ResponseWriter, r *http.Request) (*models.Task, bool) {
	var req api.TaskRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode task", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return nil, false
	}

	// Иконка и цвет принимаются как есть, неизвестные отображаются по умолчанию
	task := fromTaskRequest(&req)
	if err := validation.ValidatePriority(task.Priority); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}
	return task, true
}

// writeTaskError переводит ошибки сервиса в HTTP статусы
func (h *TaskHandler) writeTaskError(w http.ResponseWriter, r *http.Request, action string, err error) {
	switch {
	case errors.Is(err, tasks.ErrInvalidTask):
		h.sendError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, tasks.ErrTaskNotFound):
		h.sendError(w, "task not found", http.StatusNotFound)
	default:
		h.logger.ErrorContext(r.Context(), "Task operation failed", slog.String("action", action), slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
	}
}

// parseTaskQuery разбирает фильтры списка. day - календарный день, from и to -
// полуоткрытый диапазон [from, to) в RFC 3339 или YYYY-MM-DD
func parseTaskQuery(values url.Values, loc *time.Location) (tasks.Query, error) {
	q := tasks.Query{
		Search: values.Get("q"),
		Tag:    values.Get("tag"),
	}

	day, from, to := values.Get("day"), values.Get("from"), values.Get("to")
	switch {
	case day != "" && (from != "" || to != ""):
		return q, errors.New("use either day or from/to")
	case day != "":
		d, err := time.ParseInLocation(dateLayout, day, loc)
		if err != nil {
			return q, fmt.Errorf("invalid day %q, expected YYYY-MM-DD", day)
		}
		start, end := calendar.DayRange(d, loc)
		q.Range = &storage.TimeRange{Start: start, End: end}
	case from != "" || to != "":
		if from == "" || to == "" {
			return q, errors.New("from and to must be given together")
		}
		start, err := parseInstant(from, loc)
		if err != nil {
			return q, err
		}
		end, err := parseInstant(to, loc)
		if err != nil {
			return q, err
		}
		if !end.After(start) {
			return q, errors.New("to must be after from")
		}
		q.Range = &storage.TimeRange{Start: start, End: end}
	}

	return q, nil
}

func parseInstant(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(dateLayout, s, loc); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid time %q, expected RFC 3339 or YYYY-MM-DD", s)
}
