package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/tasktracker/internal/models"
	"github.com/iudanet/tasktracker/internal/tasks"
	"github.com/iudanet/tasktracker/pkg/api"
)

// среда, 8 мая 2024
var calendarNow = time.Date(2024, 5, 8, 10, 30, 0, 0, time.UTC)

func newCalendarHandler(mock *TaskServiceMock) *CalendarHandler {
	h := NewCalendarHandler(setupTestLogger(), mock)
	h.now = func() time.Time { return calendarNow }
	return h
}

func calendarTasks() []*models.Task {
	return []*models.Task{
		models.NewTask("a", time.Date(2024, 5, 8, 9, 0, 0, 0, time.UTC)),
		models.NewTask("b", time.Date(2024, 5, 8, 23, 59, 0, 0, time.UTC)),
		models.NewTask("c", time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC)),
	}
}

func TestCalendarHandler_Week(t *testing.T) {
	mock := newTaskServiceMock()
	mock.ListFunc = func(ctx context.Context, ownerID int64, q tasks.Query) ([]*models.Task, error) {
		return calendarTasks(), nil
	}

	w := httptest.NewRecorder()
	newCalendarHandler(mock).Week(w, newRequest(t, http.MethodGet, "/api/v1/calendar/week", nil, 42))

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[api.WeekResponse](t, w)
	assert.Equal(t, 0, resp.Offset)
	assert.Equal(t, []api.DayCount{
		{Date: "2024-05-06", Count: 0},
		{Date: "2024-05-07", Count: 0},
		{Date: "2024-05-08", Count: 2},
		{Date: "2024-05-09", Count: 0},
		{Date: "2024-05-10", Count: 0},
		{Date: "2024-05-11", Count: 0},
		{Date: "2024-05-12", Count: 1},
	}, resp.Days)

	require.Len(t, mock.ListCalls(), 1)
	rng := mock.ListCalls()[0].Q.Range
	require.NotNil(t, rng)
	assert.Equal(t, time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC), rng.Start)
	assert.Equal(t, time.Date(2024, 5, 13, 0, 0, 0, 0, time.UTC), rng.End)
}

func TestCalendarHandler_WeekOffset(t *testing.T) {
	mock := newTaskServiceMock()
	mock.ListFunc = func(ctx context.Context, ownerID int64, q tasks.Query) ([]*models.Task, error) {
		return nil, nil
	}
	handler := newCalendarHandler(mock)

	w := httptest.NewRecorder()
	handler.Week(w, newRequest(t, http.MethodGet, "/api/v1/calendar/week?offset=-1", nil, 42))
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[api.WeekResponse](t, w)
	assert.Equal(t, -1, resp.Offset)
	require.Len(t, resp.Days, 7)
	assert.Equal(t, "2024-04-29", resp.Days[0].Date)
	assert.Equal(t, "2024-05-05", resp.Days[6].Date)

	w = httptest.NewRecorder()
	handler.Week(w, newRequest(t, http.MethodGet, "/api/v1/calendar/week?offset=next", nil, 42))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalendarHandler_Month(t *testing.T) {
	mock := newTaskServiceMock()
	mock.ListFunc = func(ctx context.Context, ownerID int64, q tasks.Query) ([]*models.Task, error) {
		return calendarTasks(), nil
	}

	w := httptest.NewRecorder()
	newCalendarHandler(mock).Month(w, newRequest(t, http.MethodGet, "/api/v1/calendar/month", nil, 42))

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[api.MonthResponse](t, w)
	assert.Equal(t, 2024, resp.Year)
	assert.Equal(t, 5, resp.Month)
	assert.Equal(t, 2, resp.StartOffset, "May 2024 starts on Wednesday")
	require.Len(t, resp.Days, 31)
	assert.Equal(t, api.DayCount{Date: "2024-05-08", Count: 2}, resp.Days[7])
	assert.Equal(t, api.DayCount{Date: "2024-05-12", Count: 1}, resp.Days[11])

	rng := mock.ListCalls()[0].Q.Range
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), rng.Start)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), rng.End)
}

func TestCalendarHandler_MonthParams(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantDays   int
	}{
		{name: "leap february", query: "?year=2024&month=2", wantStatus: http.StatusOK, wantDays: 29},
		{name: "plain february", query: "?year=2023&month=2", wantStatus: http.StatusOK, wantDays: 28},
		{name: "month zero", query: "?month=0", wantStatus: http.StatusBadRequest},
		{name: "month 13", query: "?month=13", wantStatus: http.StatusBadRequest},
		{name: "bad year", query: "?year=twenty", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newTaskServiceMock()
			mock.ListFunc = func(ctx context.Context, ownerID int64, q tasks.Query) ([]*models.Task, error) {
				return nil, nil
			}

			w := httptest.NewRecorder()
			newCalendarHandler(mock).Month(w, newRequest(t, http.MethodGet, "/api/v1/calendar/month"+tt.query, nil, 42))

			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Len(t, decodeBody[api.MonthResponse](t, w).Days, tt.wantDays)
			} else {
				assert.Empty(t, mock.ListCalls())
			}
		})
	}
}

func TestCalendarHandler_Errors(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		w := httptest.NewRecorder()
		newCalendarHandler(newTaskServiceMock()).Week(w, newRequest(t, http.MethodGet, "/api/v1/calendar/week", nil, 0))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("storage error", func(t *testing.T) {
		mock := newTaskServiceMock()
		mock.ListFunc = func(ctx context.Context, ownerID int64, q tasks.Query) ([]*models.Task, error) {
			return nil, errors.New("database is locked")
		}
		w := httptest.NewRecorder()
		newCalendarHandler(mock).Month(w, newRequest(t, http.MethodGet, "/api/v1/calendar/month", nil, 42))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
