package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/tasktracker/internal/server/handlers"
)

// setupTestLogger creates a logger for testing
func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testJWTConfig() handlers.JWTConfig {
	return handlers.JWTConfig{
		Secret:         []byte("test-secret-key-of-32-bytes-long"),
		AccessTokenTTL: 15 * time.Minute,
	}
}

// testHandler is a simple handler that checks context values
func testHandler(t *testing.T, expectedUserID int64, expectedUsername string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := handlers.GetUserID(r.Context())
		require.True(t, ok, "user_id should be in context")
		assert.Equal(t, expectedUserID, userID)

		username, ok := handlers.GetUsername(r.Context())
		require.True(t, ok, "username should be in context")
		assert.Equal(t, expectedUsername, username)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}
}

func rejectHandler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("Handler should not be called")
	}
}

func TestAuthMiddleware_Success(t *testing.T) {
	cfg := testJWTConfig()

	token, _, err := handlers.GenerateAccessToken(cfg, 42, "alice")
	require.NoError(t, err)

	handler := AuthMiddleware(setupTestLogger(), cfg)(testHandler(t, 42, "alice"))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	cfg := testJWTConfig()

	valid, _, err := handlers.GenerateAccessToken(cfg, 42, "alice")
	require.NoError(t, err)

	expired, _, err := handlers.GenerateAccessToken(handlers.JWTConfig{Secret: cfg.Secret, AccessTokenTTL: -time.Minute}, 42, "alice")
	require.NoError(t, err)

	foreign, _, err := handlers.GenerateAccessToken(handlers.JWTConfig{Secret: []byte("another-secret-key-of-32-bytes!!"), AccessTokenTTL: time.Minute}, 42, "alice")
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantInBody string
	}{
		{name: "missing header", header: "", wantInBody: "missing token"},
		{name: "no bearer prefix", header: valid, wantInBody: "missing token"},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantInBody: "missing token"},
		{name: "empty bearer", header: "Bearer ", wantInBody: "missing token"},
		{name: "garbage token", header: "Bearer not.a.token", wantInBody: "invalid token"},
		{name: "expired token", header: "Bearer " + expired, wantInBody: "invalid token"},
		{name: "wrong secret", header: "Bearer " + foreign, wantInBody: "invalid token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := AuthMiddleware(setupTestLogger(), cfg)(rejectHandler(t))

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantInBody)
		})
	}
}

func TestAuthMiddleware_RejectsOtherAlgorithms(t *testing.T) {
	cfg := testJWTConfig()

	claims := handlers.CustomClaims{
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "42",
			Issuer:    "tasktracker",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(cfg.Secret)
	require.NoError(t, err)

	handler := AuthMiddleware(setupTestLogger(), cfg)(rejectHandler(t))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_QueryTokenOnlyForWebSocket(t *testing.T) {
	cfg := testJWTConfig()

	token, _, err := handlers.GenerateAccessToken(cfg, 7, "bob")
	require.NoError(t, err)

	t.Run("websocket upgrade", func(t *testing.T) {
		handler := AuthMiddleware(setupTestLogger(), cfg)(testHandler(t, 7, "bob"))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/watch?token="+token, nil)
		req.Header.Set("Connection", "Upgrade")
		req.Header.Set("Upgrade", "websocket")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("plain request", func(t *testing.T) {
		handler := AuthMiddleware(setupTestLogger(), cfg)(rejectHandler(t))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks?token="+token, nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
