package ports

import "time"

// TTLCache is an in-process key/value cache with per-entry expiry.
type TTLCache[V any] interface {
	Get(key string) (V, bool)
	Set(key string, value V, ttl time.Duration)
}
