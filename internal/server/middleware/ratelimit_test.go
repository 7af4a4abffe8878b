package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Allow(t *testing.T) {
	logger := setupTestLogger()

	t.Run("requests over limit are denied", func(t *testing.T) {
		limiter := NewRateLimiter(3, time.Minute, logger)
		defer limiter.Stop()

		for i := 0; i < 3; i++ {
			assert.True(t, limiter.Allow("10.0.0.1"), fmt.Sprintf("request %d should be allowed", i+1))
		}
		assert.False(t, limiter.Allow("10.0.0.1"), "request over limit should be denied")
	})

	t.Run("keys are tracked separately", func(t *testing.T) {
		limiter := NewRateLimiter(1, time.Minute, logger)
		defer limiter.Stop()

		assert.True(t, limiter.Allow("10.0.0.1"))
		assert.False(t, limiter.Allow("10.0.0.1"))
		assert.True(t, limiter.Allow("10.0.0.2"))
	})

	t.Run("tokens refill after window", func(t *testing.T) {
		limiter := NewRateLimiter(1, 50*time.Millisecond, logger)
		defer limiter.Stop()

		assert.True(t, limiter.Allow("10.0.0.3"))
		assert.False(t, limiter.Allow("10.0.0.3"))

		time.Sleep(60 * time.Millisecond)
		assert.True(t, limiter.Allow("10.0.0.3"), "tokens should be refilled")
	})

	t.Run("partial refill", func(t *testing.T) {
		limiter := NewRateLimiter(2, time.Second, logger)
		defer limiter.Stop()

		start := time.Now()
		ok, _ := limiter.take("10.0.0.4", start)
		assert.True(t, ok)
		ok, _ = limiter.take("10.0.0.4", start)
		assert.True(t, ok)

		ok, wait := limiter.take("10.0.0.4", start.Add(250*time.Millisecond))
		assert.False(t, ok)
		assert.Equal(t, 250*time.Millisecond, wait)

		ok, _ = limiter.take("10.0.0.4", start.Add(500*time.Millisecond))
		assert.True(t, ok, "half a window refills one of two tokens")
	})

	t.Run("stop twice", func(t *testing.T) {
		limiter := NewRateLimiter(1, time.Minute, logger)
		limiter.Stop()
		assert.NotPanics(t, limiter.Stop)
	})
}

func TestRateLimiter_Middleware(t *testing.T) {
	var logBuf strings.Builder
	logger := slog.New(slog.NewTextHandler(&logBuf, nil))

	limiter := NewRateLimiter(2, time.Minute, logger)
	defer limiter.Stop()

	handler := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(remoteAddr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
		req.RemoteAddr = remoteAddr
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w
	}

	// Разные порты одного адреса делят лимит
	assert.Equal(t, http.StatusOK, send("127.0.0.1:50001").Code)
	assert.Equal(t, http.StatusOK, send("127.0.0.1:50002").Code)

	w := send("127.0.0.1:50003")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "30", w.Header().Get("Retry-After"), "one token per 30 seconds")
	assert.Contains(t, w.Body.String(), "rate limit exceeded")

	assert.Equal(t, http.StatusOK, send("127.0.0.2:50001").Code)

	assert.Contains(t, logBuf.String(), "Rate limit exceeded")
	assert.Contains(t, logBuf.String(), "/api/v1/auth/login")
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		xff        string
		xRealIP    string
		expectedIP string
	}{
		{name: "X-Forwarded-For single", remoteAddr: "10.0.0.1:12345", xff: "192.168.1.1", expectedIP: "192.168.1.1"},
		{name: "X-Forwarded-For first of many", remoteAddr: "10.0.0.1:12345", xff: "192.168.1.1, 10.0.0.2", expectedIP: "192.168.1.1"},
		{name: "X-Real-IP", remoteAddr: "10.0.0.1:12345", xRealIP: "192.168.2.1", expectedIP: "192.168.2.1"},
		{name: "RemoteAddr without port", remoteAddr: "192.168.3.1:54321", expectedIP: "192.168.3.1"},
		{name: "IPv6 RemoteAddr", remoteAddr: "[::1]:54321", expectedIP: "::1"},
		{name: "RemoteAddr without port as is", remoteAddr: "pipe", expectedIP: "pipe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xRealIP != "" {
				req.Header.Set("X-Real-IP", tt.xRealIP)
			}

			assert.Equal(t, tt.expectedIP, getClientIP(req))
		})
	}
}

func TestRateLimiter_CleanupOldBuckets(t *testing.T) {
	limiter := NewRateLimiter(10, 20*time.Millisecond, setupTestLogger())
	defer limiter.Stop()

	limiter.Allow("10.0.0.1")
	limiter.Allow("10.0.0.2")

	limiter.mu.Lock()
	assert.Len(t, limiter.buckets, 2)
	limiter.mu.Unlock()

	assert.Eventually(t, func() bool {
		limiter.mu.Lock()
		defer limiter.mu.Unlock()
		return len(limiter.buckets) == 0
	}, time.Second, 10*time.Millisecond, "old buckets should be cleaned up")
}
