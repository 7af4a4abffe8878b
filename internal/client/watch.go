package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/iudanet/tasktracker/pkg/api"
)

// Watch открывает поток снимков задач по фильтру. Первый снимок приходит сразу,
// дальше по одному на каждое изменение. Канал закрывается, когда ctx отменен
// или сервер закрыл соединение
func (c *Client) Watch(ctx context.Context, filter TaskFilter) (<-chan []api.TaskResponse, error) {
	v := filter.values()
	if token := c.Token(); token != "" {
		v.Set("token", token)
	}

	wsURL := withQuery(websocketBase(c.baseURL)+"/api/v1/tasks/watch", v)

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		if resp != nil {
			_ = resp.Body.Close()
			return nil, &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return nil, fmt.Errorf("failed to open watch stream: %w", err)
	}

	out := make(chan []api.TaskResponse, 1)

	// Отмена ctx закрывает соединение и этим прерывает ReadJSON
	stop := context.AfterFunc(ctx, func() {
		_ = conn.Close()
	})

	go func() {
		defer close(out)
		defer stop()
		defer func() { _ = conn.Close() }()

		for {
			var msg api.WatchMessage
			if err := conn.ReadJSON(&msg); err != nil {
				return
			}

			select {
			case out <- msg.Tasks:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

func websocketBase(baseURL string) string {
	switch {
	case strings.HasPrefix(baseURL, "https://"):
		return "wss://" + strings.TrimPrefix(baseURL, "https://")
	case strings.HasPrefix(baseURL, "http://"):
		return "ws://" + strings.TrimPrefix(baseURL, "http://")
	default:
		return baseURL
	}
}
