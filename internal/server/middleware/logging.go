package middleware

import (
	"bufio"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// RequestIDHeader - заголовок с идентификатором запроса. Входящий
// идентификатор сохраняется, иначе генерируется новый
const RequestIDHeader = "X-Request-ID"

var errHijackUnsupported = errors.New("response writer does not support hijacking")

// responseWriter запоминает статус и размер ответа для журнала
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    int64
	hijacked   bool
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.written += int64(n)
	return n, err
}

// Hijack отдает соединение WebSocket обработчику
func (rw *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := rw.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errHijackUnsupported
	}
	rw.statusCode = http.StatusSwitchingProtocols
	rw.hijacked = true
	return hj.Hijack()
}

// level: 5xx - Error, 4xx - Warn, остальное Info
func (rw *responseWriter) level() slog.Level {
	switch {
	case rw.statusCode >= http.StatusInternalServerError:
		return slog.LevelError
	case rw.statusCode >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// LoggingMiddleware пишет по строке журнала на каждый запрос.
// Query не логируется: в нем может быть токен
func LoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return LoggingWithSkip(logger, nil)
}

// LoggingWithSkip как LoggingMiddleware, но пропускает перечисленные пути (health check)
func LoggingWithSkip(logger *slog.Logger, skipPaths []string) func(http.Handler) http.Handler {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := skip[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, requestID)

			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			started := time.Now()
			next.ServeHTTP(rw, r)

			attrs := []any{
				slog.String("request_id", requestID),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr),
				slog.String("user_agent", r.UserAgent()),
				slog.Int("status", rw.statusCode),
				slog.Int64("duration_ms", time.Since(started).Milliseconds()),
				slog.Int64("bytes_written", rw.written),
			}
			if rw.hijacked {
				attrs = append(attrs, slog.Bool("websocket", true))
			}

			logger.Log(r.Context(), rw.level(), "HTTP request", attrs...)
		})
	}
}
