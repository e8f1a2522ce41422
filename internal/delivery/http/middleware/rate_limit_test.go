package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newLimitedRouter(store CounterStore, limit int, window time.Duration) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := ContactRateLimitConfig(limit, window)
	cfg.Store = store

	r := gin.New()
	r.Use(RateLimitMiddleware(cfg))
	r.POST("/api/messages", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	r.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doRequest(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	req.RemoteAddr = "203.0.113.10:52011"
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimitExceeded(t *testing.T) {
	now := time.Now()
	store := NewMemoryCounterStore()
	store.now = func() time.Time { return now }

	window := 4 * time.Hour
	r := newLimitedRouter(store, 3, window)

	for i := 0; i < 3; i++ {
		w := doRequest(r, http.MethodPost, "/api/messages")
		assert.Equal(t, http.StatusOK, w.Code, "request %d should pass", i+1)
	}

	w := doRequest(r, http.MethodPost, "/api/messages")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	retryAfter, err := strconv.Atoi(w.Header().Get("Retry-After"))
	assert.NoError(t, err)
	assert.LessOrEqual(t, retryAfter, int(window.Seconds()))
	assert.Greater(t, retryAfter, 0)
	assert.Contains(t, w.Body.String(), "RATE_LIMITED")
	assert.Contains(t, w.Body.String(), "retryAfter")
}

func TestRateLimitWindowReset(t *testing.T) {
	now := time.Now()
	store := NewMemoryCounterStore()
	store.now = func() time.Time { return now }

	window := 4 * time.Hour
	r := newLimitedRouter(store, 1, window)

	assert.Equal(t, http.StatusOK, doRequest(r, http.MethodPost, "/api/messages").Code)
	assert.Equal(t, http.StatusTooManyRequests, doRequest(r, http.MethodPost, "/api/messages").Code)

	// After the window elapses a request succeeds again.
	now = now.Add(window + time.Second)
	assert.Equal(t, http.StatusOK, doRequest(r, http.MethodPost, "/api/messages").Code)
}

func TestRateLimitExemptPaths(t *testing.T) {
	store := NewMemoryCounterStore()
	r := newLimitedRouter(store, 1, time.Minute)

	// Health probes are never counted.
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, doRequest(r, http.MethodGet, "/health").Code)
	}
}

type failingCounterStore struct{}

func (failingCounterStore) Incr(ctx context.Context, key string, window time.Duration) (int, time.Time, error) {
	return 0, time.Time{}, errors.New("store down")
}

func TestRateLimitFailsOpen(t *testing.T) {
	r := newLimitedRouter(failingCounterStore{}, 1, time.Minute)

	// A broken counter store must never block requests.
	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, doRequest(r, http.MethodPost, "/api/messages").Code)
	}
}
