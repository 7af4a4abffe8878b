package api

import "time"

// TaskRequest - тело POST /api/v1/tasks и PUT /api/v1/tasks/{id}.
// Пустые icon и color заменяются значениями по умолчанию, priority 0 - приоритетом по умолчанию
type TaskRequest struct {
	OccursAt    time.Time `json:"occurs_at"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon,omitempty"`
	ColorHex    string    `json:"color_hex,omitempty"`
	Tags        []string  `json:"tags"`
	Priority    int       `json:"priority,omitempty"`
}

// TaskResponse представляет задачу в ответах API
type TaskResponse struct {
	OccursAt    time.Time `json:"occurs_at"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	ColorHex    string    `json:"color_hex"`
	Tags        []string  `json:"tags"`
	ID          int64     `json:"id"`
	Priority    int       `json:"priority"`
}

// TaskListResponse - ответ GET /api/v1/tasks
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Count int            `json:"count"`
}

// CreateTaskResponse - ответ POST /api/v1/tasks
type CreateTaskResponse struct {
	ID int64 `json:"id"`
}

// DeleteAllResponse - ответ DELETE /api/v1/tasks
type DeleteAllResponse struct {
	Deleted int64 `json:"deleted"`
}

// DayCount - число задач в одном дне календаря
type DayCount struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

// WeekResponse - ответ GET /api/v1/calendar/week
type WeekResponse struct {
	Days   []DayCount `json:"days"`
	Offset int        `json:"offset"`
}

// MonthResponse - ответ GET /api/v1/calendar/month
type MonthResponse struct {
	Days        []DayCount `json:"days"`
	Year        int        `json:"year"`
	Month       int        `json:"month"`
	StartOffset int        `json:"start_offset"` // пустые клетки перед первым днем, неделя с понедельника
}

// WatchMessage - одно сообщение потока /api/v1/tasks/watch, полный снимок задач
type WatchMessage struct {
	Tasks []TaskResponse `json:"tasks"`
}
