package ports

import (
	"context"
	"time"
)

// SharedCache is a cross-process cache of JSON-encoded values.
// Implementations must degrade to misses when the backend is unreachable.
type SharedCache interface {
	// Decode the value stored under key into dst. False on miss or corrupt entry.
	GetJSON(ctx context.Context, key string, dst any) bool
	// Store value under key. A non-positive ttl selects the default TTL.
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}
