package cache

import (
	"context"
	"time"
)

// Cache is the minimal key/value contract the repositories depend on.
// The Redis implementation lives in internal/infrastructure/cache.
type Cache interface {
	// Get returns the raw value for key. A miss is reported as (nil, nil).
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key with a TTL. ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes one or more keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
}
