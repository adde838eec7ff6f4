package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hdcode14/otpbs-exploreease/internal/logger"
)

const CatalogKey = "catalog:active"

var ErrMiss = errors.New("cache miss")

// Cache is a read-through JSON cache in front of the package catalog.
// Lookups and invalidations happen inline with the request; nothing is
// deferred.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(addr string, ttl time.Duration) *Cache {
	return &Cache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
	}
}

// NewWithClient is used by tests to inject a mock client.
func NewWithClient(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func (c *Cache) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrMiss
		}
		return err
	}
	return json.Unmarshal(data, dest)
}

func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

// Invalidate drops a key. Failures are logged, not propagated: a stale
// cache entry expires on its own and must not fail the admin mutation
// that triggered the invalidation.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		logger.Errorf("cache invalidation failed: %v", err)
	}
}

func (c *Cache) Close() error {
	return c.client.Close()
}
