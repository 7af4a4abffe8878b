package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/iudanet/tasktracker/internal/auth"
	"github.com/iudanet/tasktracker/pkg/api"
)

// AuthHandler обрабатывает запросы авторизации
type AuthHandler struct {
	responder
	auth      AuthService
	jwtConfig JWTConfig
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, authService AuthService, jwtConfig JWTConfig) *AuthHandler {
	return &AuthHandler{
		responder: responder{logger: logger},
		auth:      authService,
		jwtConfig: jwtConfig,
	}
}

type authFunc func(ctx context.Context, username, password string) (auth.Result, error)

// Login обрабатывает POST /api/v1/auth/login.
// Неизвестный username регистрируется автоматически
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	h.authenticate(w, r, "login", h.auth.Login, http.StatusOK)
}

// Register обрабатывает POST /api/v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	h.authenticate(w, r, "register", h.auth.Register, http.StatusCreated)
}

func (h *AuthHandler) authenticate(w http.ResponseWriter, r *http.Request, action string, fn authFunc, successStatus int) {
	ctx := r.Context()

	var req api.CredentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(ctx, "Failed to decode credentials", slog.String("action", action), slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := fn(ctx, req.Username, req.Password)
	if err != nil {
		h.logger.ErrorContext(ctx, "Authentication failed", slog.String("action", action), slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	switch res := result.(type) {
	case auth.Failure:
		status := statusForKind(res.Err.Kind)
		h.logger.WarnContext(ctx, "Authentication rejected",
			slog.String("action", action),
			slog.String("username", req.Username),
			slog.String("kind", res.Err.Kind.String()))
		h.sendJSON(w, api.ErrorResponse{
			Error:   http.StatusText(status),
			Message: res.Err.Message,
			Kind:    res.Err.Kind.String(),
		}, status)

	case auth.Success:
		token, expiresIn, err := GenerateAccessToken(h.jwtConfig, res.UserID, res.Username)
		if err != nil {
			h.logger.ErrorContext(ctx, "Failed to generate access token", slog.Any("error", err))
			h.sendError(w, "internal server error", http.StatusInternalServerError)
			return
		}

		h.logger.InfoContext(ctx, "User authenticated",
			slog.String("action", action),
			slog.String("username", res.Username),
			slog.Int64("user_id", res.UserID))

		h.sendJSON(w, api.AuthResponse{
			UserID:      res.UserID,
			Username:    res.Username,
			AccessToken: token,
			ExpiresIn:   expiresIn,
		}, successStatus)

	default:
		h.logger.ErrorContext(ctx, "Unexpected auth result", slog.String("type", fmt.Sprintf("%T", result)))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
	}
}

// Logout обрабатывает POST /api/v1/auth/logout.
// Очищает сессию устройства, выданные токены действуют до истечения срока
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.auth.Logout(ctx); err != nil {
		h.logger.ErrorContext(ctx, "Failed to clear session", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "User logged out", slog.Int64("user_id", userID))
	w.WriteHeader(http.StatusNoContent)
}

func statusForKind(kind auth.Kind) int {
	switch kind {
	case auth.KindValidation:
		return http.StatusBadRequest
	case auth.KindConflict:
		return http.StatusConflict
	case auth.KindInvalidCredentials:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
