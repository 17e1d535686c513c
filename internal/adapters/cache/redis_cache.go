package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"route-weather-service/internal/platform/obs"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const layerRedis = "redis"

// RedisCache is the shared cross-process cache.
//
// Values are stored as JSON under {prefix}{key}. Every backend failure is
// reported as a miss so callers recompute instead of failing. The go-redis
// pool dials lazily on the first command; Close releases it.
type RedisCache struct {
	client     *redis.Client
	prefix     string
	defaultTTL time.Duration
	metrics    obs.Metrics
}

// NewRedisCache parses a redis:// URL and builds a cache on top of it.
// No connection is attempted here.
func NewRedisCache(redisURL, prefix string, defaultTTL time.Duration, metrics obs.Metrics) (*RedisCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("new redis cache: parse url: %w", err)
	}

	opts.MaxRetries = 2
	opts.DialTimeout = 2 * time.Second
	opts.ReadTimeout = time.Second
	opts.WriteTimeout = time.Second

	return NewRedisCacheFromClient(redis.NewClient(opts), prefix, defaultTTL, metrics), nil
}

func NewRedisCacheFromClient(client *redis.Client, prefix string, defaultTTL time.Duration, metrics obs.Metrics) *RedisCache {
	if metrics == nil {
		metrics = obs.NoopMetrics{}
	}
	if defaultTTL <= 0 {
		defaultTTL = 600 * time.Second
	}
	return &RedisCache{
		client:     client,
		prefix:     prefix,
		defaultTTL: defaultTTL,
		metrics:    metrics,
	}
}

func (r *RedisCache) k(key string) string {
	return r.prefix + key
}

// category maps a logical key to the coarse label used by hit/miss counters.
func category(key string) string {
	switch {
	case strings.HasPrefix(key, "weather:"):
		return "weather"
	case strings.HasPrefix(key, "geocode:"):
		return "geocode"
	default:
		return "route"
	}
}

// GetJSON decodes the value stored under key into dst.
// It reports false on miss, on a corrupt entry and when Redis is unreachable.
func (r *RedisCache) GetJSON(ctx context.Context, key string, dst any) bool {
	cat := category(key)

	raw, err := r.get(ctx, key)
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("shared cache read failed key=%q: %v", key, err)
		}
		r.metrics.CacheMiss(layerRedis, cat)
		return false
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		log.Printf("shared cache entry corrupt key=%q: %v", key, err)
		r.metrics.CacheMiss(layerRedis, cat)
		return false
	}

	r.metrics.CacheHit(layerRedis, cat)
	return true
}

func (r *RedisCache) get(ctx context.Context, key string) (_ []byte, err error) {
	defer obs.Time(ctx, "shared.cache.Get")(&err)

	return r.client.Get(ctx, r.k(key)).Bytes()
}

// SetJSON stores value under key for ttl, or the default TTL when ttl <= 0.
func (r *RedisCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) (err error) {
	defer obs.Time(ctx, "shared.cache.Set")(&err)

	if ttl <= 0 {
		ttl = r.defaultTTL
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("set shared cache key=%q: marshal: %w", key, err)
	}

	if err := r.client.Set(ctx, r.k(key), payload, ttl).Err(); err != nil {
		return fmt.Errorf("set shared cache key=%q: %w", key, err)
	}

	return nil
}

// Ping checks connectivity.
func (r *RedisCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close releases the connection pool.
func (r *RedisCache) Close() error {
	return r.client.Close()
}
