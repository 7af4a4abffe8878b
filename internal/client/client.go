// Package client is a Go client for the task tracker HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/iudanet/tasktracker/pkg/api"
)

const defaultTimeout = 30 * time.Second

// ErrNotFound is returned when the requested task does not exist
var ErrNotFound = errors.New("not found")

// APIError - ответ сервера со статусом вне 2xx
type APIError struct {
	Message    string
	Kind       string // validation, conflict, invalid_credentials для ошибок авторизации
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// Is позволяет проверять 404 через errors.Is(err, ErrNotFound)
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	mu         sync.RWMutex
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// SetToken задает access token для последующих запросов
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Token возвращает текущий access token
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Login аутентифицирует пользователя. Неизвестный username регистрируется.
// Полученный токен сохраняется в клиенте
func (c *Client) Login(ctx context.Context, username, password string) (*api.AuthResponse, error) {
	return c.authenticate(ctx, "/api/v1/auth/login", username, password)
}

// Register регистрирует нового пользователя и сохраняет токен
func (c *Client) Register(ctx context.Context, username, password string) (*api.AuthResponse, error) {
	return c.authenticate(ctx, "/api/v1/auth/register", username, password)
}

func (c *Client) authenticate(ctx context.Context, path, username, password string) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	req := api.CredentialsRequest{Username: username, Password: password}
	if err := c.doRequest(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, err
	}
	c.SetToken(resp.AccessToken)
	return &resp, nil
}

// Logout завершает сессию на сервере и забывает токен
func (c *Client) Logout(ctx context.Context) error {
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/logout", nil, nil); err != nil {
		return err
	}
	c.SetToken("")
	return nil
}

// TaskFilter - фильтры списка задач. Day и From/To взаимоисключающие
type TaskFilter struct {
	Day    time.Time
	From   time.Time
	To     time.Time
	Search string
	Tag    string
}

func (f TaskFilter) values() url.Values {
	v := url.Values{}
	if !f.Day.IsZero() {
		v.Set("day", f.Day.Format(time.DateOnly))
	}
	if !f.From.IsZero() {
		v.Set("from", f.From.Format(time.RFC3339))
	}
	if !f.To.IsZero() {
		v.Set("to", f.To.Format(time.RFC3339))
	}
	if f.Search != "" {
		v.Set("q", f.Search)
	}
	if f.Tag != "" {
		v.Set("tag", f.Tag)
	}
	return v
}

// ListTasks возвращает задачи пользователя по фильтру
func (c *Client) ListTasks(ctx context.Context, filter TaskFilter) ([]api.TaskResponse, error) {
	var resp api.TaskListResponse
	if err := c.doRequest(ctx, http.MethodGet, withQuery("/api/v1/tasks", filter.values()), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Tasks, nil
}

// CreateTask создает задачу и возвращает ее id
func (c *Client) CreateTask(ctx context.Context, task api.TaskRequest) (int64, error) {
	var resp api.CreateTaskResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/tasks", task, &resp); err != nil {
		return 0, err
	}
	return resp.ID, nil
}

// GetTask возвращает задачу по id или ErrNotFound
func (c *Client) GetTask(ctx context.Context, id int64) (*api.TaskResponse, error) {
	var resp api.TaskResponse
	if err := c.doRequest(ctx, http.MethodGet, taskPath(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateTask заменяет задачу целиком
func (c *Client) UpdateTask(ctx context.Context, id int64, task api.TaskRequest) (*api.TaskResponse, error) {
	var resp api.TaskResponse
	if err := c.doRequest(ctx, http.MethodPut, taskPath(id), task, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteTask удаляет задачу. Отсутствующая задача не ошибка
func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	return c.doRequest(ctx, http.MethodDelete, taskPath(id), nil, nil)
}

// DeleteAllTasks удаляет все задачи пользователя и возвращает их число
func (c *Client) DeleteAllTasks(ctx context.Context) (int64, error) {
	var resp api.DeleteAllResponse
	if err := c.doRequest(ctx, http.MethodDelete, "/api/v1/tasks", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Deleted, nil
}

// Week возвращает число задач по дням недели. offset 0 - текущая неделя
func (c *Client) Week(ctx context.Context, offset int) (*api.WeekResponse, error) {
	v := url.Values{}
	v.Set("offset", strconv.Itoa(offset))

	var resp api.WeekResponse
	if err := c.doRequest(ctx, http.MethodGet, withQuery("/api/v1/calendar/week", v), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Month возвращает число задач по дням месяца
func (c *Client) Month(ctx context.Context, year int, month time.Month) (*api.MonthResponse, error) {
	v := url.Values{}
	v.Set("year", strconv.Itoa(year))
	v.Set("month", strconv.Itoa(int(month)))

	var resp api.MonthResponse
	if err := c.doRequest(ctx, http.MethodGet, withQuery("/api/v1/calendar/month", v), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Health проверяет доступность сервера
func (c *Client) Health(ctx context.Context) error {
	return c.doRequest(ctx, http.MethodGet, "/api/v1/health", nil, nil)
}

func taskPath(id int64) string {
	return "/api/v1/tasks/" + strconv.FormatInt(id, 10)
}

func withQuery(path string, v url.Values) string {
	if len(v) == 0 {
		return path
	}
	return path + "?" + v.Encode()
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			apiErr.Message = errResp.Message
			apiErr.Kind = errResp.Kind
		} else {
			// middleware отвечает text/plain
			apiErr.Message = strings.TrimSpace(string(respBody))
		}
		return apiErr
	}

	if result != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
