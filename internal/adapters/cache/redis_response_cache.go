package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"fuel-route-service/internal/ports"

	"github.com/redis/go-redis/v9"
)

// Redis-backed implementation of the ResponseCache port. Provider adapters
// use it for short-TTL advisory caching of external responses; the cache is
// optional everywhere and a redis outage only costs extra provider calls.
type RedisResponseCache struct {
	client *redis.Client
}

func NewRedisResponseCache(client *redis.Client) *RedisResponseCache {
	return &RedisResponseCache{client: client}
}

func (c *RedisResponseCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if c.client == nil {
		return nil, false, errors.New("response cache: client is nil")
	}

	payload, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return payload, true, nil
}

func (c *RedisResponseCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	if c.client == nil {
		return errors.New("response cache: client is nil")
	}
	return c.client.Set(ctx, key, payload, ttl).Err()
}

// Lookup fetches and decodes a cached value. A nil cache, a miss, or any
// cache/decode failure all read as a miss; failures are logged only.
func Lookup[T any](ctx context.Context, c ports.ResponseCache, key string) (T, bool) {
	var zero T
	if c == nil {
		return zero, false
	}

	payload, ok, err := c.Get(ctx, key)
	if err != nil {
		log.Printf("cache read failed key=%s err=%v", key, err)
		return zero, false
	}
	if !ok {
		return zero, false
	}

	var v T
	if err := json.Unmarshal(payload, &v); err != nil {
		log.Printf("cache decode failed key=%s err=%v", key, err)
		return zero, false
	}
	return v, true
}

// Store encodes and caches a value for ttl. Failures are logged, never
// returned: a dead cache must not fail the request.
func Store[T any](ctx context.Context, c ports.ResponseCache, key string, v T, ttl time.Duration) {
	if c == nil {
		return
	}

	payload, err := json.Marshal(v)
	if err != nil {
		log.Printf("cache encode failed key=%s err=%v", key, err)
		return
	}
	if err := c.Set(ctx, key, payload, ttl); err != nil {
		log.Printf("cache write failed key=%s err=%v", key, err)
	}
}
