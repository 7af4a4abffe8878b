package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/iudanet/tasktracker/internal/models"
	"github.com/iudanet/tasktracker/pkg/api"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1024
)

// WatchHandler стримит живые снимки списка задач через WebSocket
type WatchHandler struct {
	responder
	tasks    TaskService
	upgrader websocket.Upgrader
}

// NewWatchHandler создает handler. Сервер слушает только loopback, поэтому
// Origin не проверяется
func NewWatchHandler(logger *slog.Logger, taskService TaskService) *WatchHandler {
	return &WatchHandler{
		responder: responder{logger: logger},
		tasks:     taskService,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Watch обрабатывает GET /api/v1/tasks/watch?day=&from=&to=&q=&tag=.
// Первое сообщение - текущий снимок, дальше по снимку на каждое изменение.
// Закрытие сокета отменяет подписку
func (h *WatchHandler) Watch(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	q, err := parseTaskQuery(r.URL.Query(), h.tasks.Location())
	if err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// После Hijack контекст запроса не отменяется при разрыве соединения,
	// поэтому им управляет readPump
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	sub, err := h.tasks.Watch(ctx, userID, q)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to watch tasks", slog.Int64("user_id", userID), slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	defer sub.Cancel()

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade уже ответил клиенту
		h.logger.WarnContext(ctx, "WebSocket upgrade failed", slog.Any("error", err))
		return
	}
	defer func() { _ = conn.Close() }()

	h.logger.InfoContext(ctx, "Watch started", slog.Int64("user_id", userID), slog.String("subscription", sub.ID()))

	go h.readPump(conn, cancel)
	h.writePump(ctx, conn, sub.Updates(), sub.Done())

	h.logger.InfoContext(ctx, "Watch finished", slog.Int64("user_id", userID), slog.String("subscription", sub.ID()))
}

// readPump читает управляющие кадры и отменяет ctx, когда клиент ушел
func (h *WatchHandler) readPump(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("WebSocket read error", slog.Any("error", err))
			}
			return
		}
	}
}

func (h *WatchHandler) writePump(ctx context.Context, conn *websocket.Conn, updates <-chan []models.Task, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.writeClose(conn, websocket.CloseNormalClosure, "")
			return
		case <-done:
			h.writeClose(conn, websocket.CloseGoingAway, "server shutting down")
			return
		case snapshot, ok := <-updates:
			if !ok {
				h.writeClose(conn, websocket.CloseGoingAway, "server shutting down")
				return
			}
			msg := api.WatchMessage{Tasks: make([]api.TaskResponse, 0, len(snapshot))}
			for i := range snapshot {
				msg.Tasks = append(msg.Tasks, toTaskResponse(&snapshot[i]))
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(msg); err != nil {
				h.logger.Debug("WebSocket write failed", slog.Any("error", err))
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *WatchHandler) writeClose(conn *websocket.Conn, code int, text string) {
	msg := websocket.FormatCloseMessage(code, text)
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
}
