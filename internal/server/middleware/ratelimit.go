package middleware

import (
	"encoding/json"
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/iudanet/tasktracker/pkg/api"
)

// RateLimiter ограничивает число запросов с одного ключа (IP адреса).
// Токены пополняются непрерывно: rate штук за window
type RateLimiter struct {
	logger  *slog.Logger
	buckets map[string]*bucket
	stopC   chan struct{}
	window  time.Duration
	rate    float64
	mu      sync.Mutex
	once    sync.Once
}

type bucket struct {
	seen   time.Time
	tokens float64
}

// NewRateLimiter создает limiter и запускает очистку неактивных ключей.
// Stop освобождает фоновую горутину
func NewRateLimiter(rate int, window time.Duration, logger *slog.Logger) *RateLimiter {
	rl := &RateLimiter{
		logger:  logger,
		buckets: make(map[string]*bucket),
		stopC:   make(chan struct{}),
		window:  window,
		rate:    float64(rate),
	}
	go rl.sweep()
	return rl
}

// Stop останавливает очистку. Повторный вызов ничего не делает
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stopC) })
}

func (rl *RateLimiter) sweep() {
	ticker := time.NewTicker(rl.window * 2)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			rl.forgetIdle(now)
		case <-rl.stopC:
			return
		}
	}
}

// forgetIdle удаляет ключи, к которым не обращались дольше двух окон:
// их бакеты все равно уже полные
func (rl *RateLimiter) forgetIdle(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, b := range rl.buckets {
		if now.Sub(b.seen) > rl.window*2 {
			delete(rl.buckets, key)
		}
	}
}

// Allow забирает токен для key и сообщает, был ли он
func (rl *RateLimiter) Allow(key string) bool {
	ok, _ := rl.take(key, time.Now())
	return ok
}

// take возвращает, через сколько появится следующий токен, если их нет
func (rl *RateLimiter) take(key string, now time.Time) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.buckets[key]
	if !ok {
		b = &bucket{tokens: rl.rate, seen: now}
		rl.buckets[key] = b
	}

	perToken := rl.window.Seconds() / rl.rate
	b.tokens = math.Min(rl.rate, b.tokens+now.Sub(b.seen).Seconds()/perToken)
	b.seen = now

	if b.tokens >= 1 {
		b.tokens--
		return true, 0
	}

	wait := time.Duration((1 - b.tokens) * perToken * float64(time.Second))
	return false, wait
}

// Middleware отвечает 429 с заголовком Retry-After, когда у клиента кончились токены
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := getClientIP(r)

		ok, wait := rl.take(ip, time.Now())
		if !ok {
			rl.logger.Warn("Rate limit exceeded",
				"ip", ip,
				"method", r.Method,
				"path", r.URL.Path,
			)

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(api.ErrorResponse{
				Error:   http.StatusText(http.StatusTooManyRequests),
				Message: "rate limit exceeded, please try again later",
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}

// getClientIP берет адрес клиента из X-Forwarded-For или X-Real-IP, если сервер
// стоит за прокси, иначе из RemoteAddr без порта
func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
