package dedupe

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// RedisStore backs the guard with a shared cache so horizontally scaled
// instances agree on what counts as a duplicate. SETNX with TTL gives the
// add-if-absent semantics atomically; Redis handles expiry itself.
type RedisStore struct {
	client    *goredis.Client
	keyPrefix string
}

func NewRedisStore(client *goredis.Client) *RedisStore {
	return &RedisStore{
		client:    client,
		keyPrefix: "dedupe:msg:",
	}
}

func (s *RedisStore) Add(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return s.client.SetNX(ctx, s.keyPrefix+key, 1, ttl).Result()
}
