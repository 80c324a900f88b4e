package ports

import (
	"context"
	"time"
)

// Short-TTL advisory cache for raw provider responses. The core logic is
// cache-oblivious: adapters consult the cache before outbound calls and a
// cache failure is never fatal.
type ResponseCache interface {
	// Get returns the cached payload and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores the payload under key for the given TTL.
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
}
