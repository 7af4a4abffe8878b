package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/iudanet/tasktracker/internal/calendar"
	"github.com/iudanet/tasktracker/internal/storage"
	"github.com/iudanet/tasktracker/internal/tasks"
	"github.com/iudanet/tasktracker/pkg/api"
)

// CalendarHandler отдает счетчики задач по дням недели и месяца
type CalendarHandler struct {
	responder
	tasks TaskService
	now   func() time.Time
}

// NewCalendarHandler создает handler календаря
func NewCalendarHandler(logger *slog.Logger, taskService TaskService) *CalendarHandler {
	return &CalendarHandler{
		responder: responder{logger: logger},
		tasks:     taskService,
		now:       time.Now,
	}
}

// Week обрабатывает GET /api/v1/calendar/week?offset=N
func (h *CalendarHandler) Week(w http.ResponseWriter, r *http.Request) {
	offset := 0
	if raw := r.URL.Query().Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			h.sendError(w, "invalid offset", http.StatusBadRequest)
			return
		}
		offset = n
	}

	loc := h.tasks.Location()
	days := calendar.WeekDates(h.now(), offset, loc)

	counts, ok := h.countDays(w, r, days)
	if !ok {
		return
	}

	h.sendJSON(w, api.WeekResponse{Offset: offset, Days: counts}, http.StatusOK)
}

// Month обрабатывает GET /api/v1/calendar/month?year=Y&month=M.
// Без параметров отдается текущий месяц
func (h *CalendarHandler) Month(w http.ResponseWriter, r *http.Request) {
	loc := h.tasks.Location()
	now := h.now().In(loc)
	year, month := now.Year(), int(now.Month())

	values := r.URL.Query()
	if raw := values.Get("year"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 9999 {
			h.sendError(w, "invalid year", http.StatusBadRequest)
			return
		}
		year = n
	}
	if raw := values.Get("month"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 12 {
			h.sendError(w, "invalid month", http.StatusBadRequest)
			return
		}
		month = n
	}

	grid := calendar.MonthGrid(year, time.Month(month), loc)

	counts, ok := h.countDays(w, r, grid.Days)
	if !ok {
		return
	}

	h.sendJSON(w, api.MonthResponse{
		Year:        grid.Year,
		Month:       int(grid.Month),
		StartOffset: grid.StartOffset,
		Days:        counts,
	}, http.StatusOK)
}

// countDays считает задачи пользователя в каждом из подряд идущих дней
func (h *CalendarHandler) countDays(w http.ResponseWriter, r *http.Request, days []time.Time) ([]api.DayCount, bool) {
	ctx := r.Context()
	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return nil, false
	}

	loc := h.tasks.Location()
	start := days[0]
	end := calendar.EndOfDay(days[len(days)-1], loc)

	list, err := h.tasks.List(ctx, userID, tasks.Query{Range: &storage.TimeRange{Start: start, End: end}})
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to list tasks", slog.Int64("user_id", userID), slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return nil, false
	}

	perDay := make(map[string]int, len(days))
	for _, task := range list {
		perDay[task.OccursAt.In(loc).Format(dateLayout)]++
	}

	counts := make([]api.DayCount, 0, len(days))
	for _, day := range days {
		date := day.Format(dateLayout)
		counts = append(counts, api.DayCount{Date: date, Count: perDay[date]})
	}
	return counts, true
}
