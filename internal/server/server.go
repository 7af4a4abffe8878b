// Package server exposes the task tracker over HTTP: a JSON API for tasks and
// the calendar, local auth issuing JWT access tokens, and a WebSocket stream of
// live task snapshots.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/iudanet/tasktracker/internal/server/handlers"
	"github.com/iudanet/tasktracker/internal/server/middleware"
)

const (
	healthPath = "/api/v1/health"

	readHeaderTimeout = 10 * time.Second
	idleTimeout       = 60 * time.Second
	shutdownTimeout   = 15 * time.Second

	// Лимит попыток входа с одного адреса
	authRateLimit  = 10
	authRateWindow = time.Minute
)

// Deps - зависимости HTTP сервера
type Deps struct {
	Logger  *slog.Logger
	Auth    handlers.AuthService
	Tasks   handlers.TaskService
	DB      handlers.Pinger
	JWT     handlers.JWTConfig
	Version string
}

// Server is the HTTP API server
type Server struct {
	logger     *slog.Logger
	limiter    *middleware.RateLimiter
	httpServer *http.Server
}

// New builds the router. Call Run to start serving
func New(addr string, deps Deps) *Server {
	limiter := middleware.NewRateLimiter(authRateLimit, authRateWindow, deps.Logger)

	s := &Server{
		logger:  deps.Logger,
		limiter: limiter,
	}
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           newRouter(deps, limiter),
		ReadHeaderTimeout: readHeaderTimeout,
		IdleTimeout:       idleTimeout,
		// WriteTimeout не задан: он оборвал бы WebSocket потоки
	}
	return s
}

// Handler returns the root handler
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func newRouter(deps Deps, limiter *middleware.RateLimiter) http.Handler {
	authHandler := handlers.NewAuthHandler(deps.Logger, deps.Auth, deps.JWT)
	taskHandler := handlers.NewTaskHandler(deps.Logger, deps.Tasks)
	calendarHandler := handlers.NewCalendarHandler(deps.Logger, deps.Tasks)
	watchHandler := handlers.NewWatchHandler(deps.Logger, deps.Tasks)
	healthHandler := handlers.NewHealthHandler(deps.Logger, deps.DB, deps.Version)

	r := chi.NewRouter()
	r.Use(middleware.RecoveryMiddleware(deps.Logger))
	r.Use(middleware.LoggingWithSkip(deps.Logger, []string{healthPath}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.Health)

		r.Route("/auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(limiter.Middleware)
				r.Post("/login", authHandler.Login)
				r.Post("/register", authHandler.Register)
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.AuthMiddleware(deps.Logger, deps.JWT))
				r.Post("/logout", authHandler.Logout)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(deps.Logger, deps.JWT))

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", taskHandler.List)
				r.Post("/", taskHandler.Create)
				r.Delete("/", taskHandler.DeleteAll)
				r.Get("/watch", watchHandler.Watch)
				r.Get("/{id}", taskHandler.Get)
				r.Put("/{id}", taskHandler.Update)
				r.Delete("/{id}", taskHandler.Delete)
			})

			r.Route("/calendar", func(r chi.Router) {
				r.Get("/week", calendarHandler.Week)
				r.Get("/month", calendarHandler.Month)
			})
		})
	})

	return r
}

// Run listens on the configured address until ctx is cancelled, then shuts
// down gracefully
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	defer s.limiter.Stop()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", slog.String("addr", ln.Addr().String()))
		errCh <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	// Shutdown не ждет hijacked соединений, их закрывает отмена live подписок
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown http server: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server failed: %w", err)
	}

	s.logger.Info("HTTP server stopped")
	return nil
}
