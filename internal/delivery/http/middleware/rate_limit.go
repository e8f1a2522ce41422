package middleware

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"go-lawfirm-backend/internal/delivery/http/response"
	"go-lawfirm-backend/pkg/apperror"
	"go-lawfirm-backend/pkg/logger"
	"go-lawfirm-backend/pkg/redis"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// CounterStore counts requests per key within a fixed window. Injected so a
// single-process deployment uses the in-memory store and a multi-instance
// deployment shares counters through Redis.
type CounterStore interface {
	// Incr bumps the counter for key, starting a fresh window when none is
	// active, and returns the updated count and when the window resets.
	Incr(ctx context.Context, key string, window time.Duration) (int, time.Time, error)
}

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Key prefix to keep logical endpoints on independent counters
	KeyPrefix string
	// Custom key extractor (default: IP-based)
	KeyFunc func(*gin.Context) string
	// Store overrides the backend; nil picks Redis when available, else
	// the shared in-memory store
	Store CounterStore
	// Paths never counted (health/readiness probes)
	ExemptPaths map[string]bool
}

// DefaultRateLimitConfig returns sensible defaults for general API traffic.
func DefaultRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:     limit,
		Window:    window,
		KeyPrefix: "rl:ip:",
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
		ExemptPaths: map[string]bool{
			"/health":     true,
			"/api/health": true,
		},
	}
}

// ContactRateLimitConfig returns the strict per-address policy for the
// public contact form (e.g. 3 submissions per 4 hours).
func ContactRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	cfg := DefaultRateLimitConfig(limit, window)
	cfg.KeyPrefix = "rl:contact:"
	return cfg
}

// RateLimitMiddleware enforces a fixed-window request limit per client key.
// Store errors fail open: the request proceeds and the error is logged, so
// a broken cache never blocks legitimate traffic.
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.ExemptPaths[c.Request.URL.Path] {
			c.Next()
			return
		}

		store := config.Store
		if store == nil {
			store = defaultStore()
		}

		key := config.KeyPrefix + config.KeyFunc(c)
		count, resetAt, err := store.Incr(c.Request.Context(), key, config.Window)
		if err != nil {
			logger.L().Warn("rate limit store failed, admitting request",
				"error", err, "path", c.Request.URL.Path)
			c.Next()
			return
		}

		if count > config.Limit {
			retryAfter := int(time.Until(resetAt).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}

			c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))

			logger.L().Info("rate limit exceeded",
				"ip", c.ClientIP(), "path", c.Request.URL.Path, "retry_after", retryAfter)

			response.AppError(c, apperror.RateLimited(retryAfter))
			c.Abort()
			return
		}

		remaining := config.Limit - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))

		c.Next()
	}
}

var (
	sharedMemoryStore     *MemoryCounterStore
	sharedMemoryStoreOnce sync.Once
)

// defaultStore prefers Redis when connected, falling back to one shared
// in-memory store across all middleware instances.
func defaultStore() CounterStore {
	if client := redis.Client(); client != nil {
		return NewRedisCounterStore(client)
	}
	sharedMemoryStoreOnce.Do(func() {
		sharedMemoryStore = NewMemoryCounterStore()
	})
	return sharedMemoryStore
}

// counterEntry tracks request count for a key (in-memory store)
type counterEntry struct {
	count   int
	resetAt time.Time
}

// MemoryCounterStore is the process-local CounterStore. A janitor goroutine
// drops expired windows so the map does not grow unbounded.
type MemoryCounterStore struct {
	mu      sync.Mutex
	entries map[string]*counterEntry

	// now is swappable for tests
	now func() time.Time
}

func NewMemoryCounterStore() *MemoryCounterStore {
	s := &MemoryCounterStore{
		entries: make(map[string]*counterEntry),
		now:     time.Now,
	}
	go s.janitor()
	return s
}

func (s *MemoryCounterStore) Incr(ctx context.Context, key string, window time.Duration) (int, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	entry, ok := s.entries[key]
	if !ok || now.After(entry.resetAt) {
		entry = &counterEntry{resetAt: now.Add(window)}
		s.entries[key] = entry
	}
	entry.count++
	return entry.count, entry.resetAt, nil
}

func (s *MemoryCounterStore) janitor() {
	ticker := time.NewTicker(5 * time.Minute)
	for range ticker.C {
		s.mu.Lock()
		now := s.now()
		for key, entry := range s.entries {
			if now.After(entry.resetAt) {
				delete(s.entries, key)
			}
		}
		s.mu.Unlock()
	}
}

// Lua script for atomic increment with TTL on first set
// KEYS[1] = counter key
// ARGV[1] = TTL in seconds
// Returns: [current_count, ttl_remaining]
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

// RedisCounterStore shares fixed-window counters across instances using an
// atomic INCR+EXPIRE Lua script.
type RedisCounterStore struct {
	client *goredis.Client
}

func NewRedisCounterStore(client *goredis.Client) *RedisCounterStore {
	return &RedisCounterStore{client: client}
}

func (s *RedisCounterStore) Incr(ctx context.Context, key string, window time.Duration) (int, time.Time, error) {
	ttlSeconds := int(window.Seconds())

	result, err := s.client.Eval(ctx, rateLimitLuaScript, []string{key}, ttlSeconds).Result()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("redis rate limit eval failed: %w", err)
	}

	arr, ok := result.([]interface{})
	if !ok || len(arr) < 2 {
		return 0, time.Time{}, fmt.Errorf("unexpected redis result format")
	}

	count, _ := arr[0].(int64)
	ttl, _ := arr[1].(int64)

	return int(count), time.Now().Add(time.Duration(ttl) * time.Second), nil
}
