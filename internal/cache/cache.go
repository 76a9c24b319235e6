package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Cache is a redis-backed query cache with a bounded staleness window.
// Statistics-gateway results are cached by query key and discarded on TTL
// expiry. A Cache built without a redis URL is disabled: every lookup
// misses and stores are dropped, so callers never need a nil check.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	logger *logrus.Logger
}

// New connects to redis at redisURL. An empty URL yields a disabled cache.
func New(redisURL string, ttl time.Duration, logger *logrus.Logger) (*Cache, error) {
	c := &Cache{ttl: ttl, logger: logger}
	if redisURL == "" {
		return c, nil
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	c.client = redis.NewClient(opt)
	return c, nil
}

// Enabled reports whether a redis backend is configured.
func (c *Cache) Enabled() bool {
	return c.client != nil
}

// Get unmarshals the cached value for key into dest, reporting whether a
// fresh entry was found. Transport errors count as misses.
func (c *Cache) Get(ctx context.Context, key string, dest any) bool {
	if c.client == nil {
		return false
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.WithError(err).WithField("key", key).Warn("Cache read failed")
		}
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("Cache entry corrupt, ignoring")
		return false
	}
	return true
}

// Set stores value under key for the configured staleness window. Failures
// are logged and dropped; the cache is advisory.
func (c *Cache) Set(ctx context.Context, key string, value any) {
	if c.client == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("Cache encode failed")
		return
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("Cache write failed")
	}
}

// Close releases the redis connection if one exists.
func (c *Cache) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}
