package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/avkrasnov/delivery-store/internal/platform/logger"
)

const listingTTL = 5 * time.Minute

// Cache is a read-through JSON cache for catalog listings. A nil *Cache is
// valid and behaves as a permanent miss, so callers never branch on whether
// Redis is configured.
type Cache struct {
	rdb *redis.Client
}

// New connects to Redis at addr. Returns nil when addr is empty.
func New(addr string) *Cache {
	if addr == "" {
		return nil
	}
	return &Cache{rdb: redis.NewClient(&redis.Options{Addr: addr})}
}

// GetJSON unmarshals the cached value for key into dest. Returns false on
// miss or on any Redis error (errors are logged, never propagated: the cache
// must not take the catalog down with it).
func (c *Cache) GetJSON(ctx context.Context, key string, dest interface{}) bool {
	if c == nil {
		return false
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Error("cache: get failed for key "+key, err)
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		logger.Error("cache: corrupt entry for key "+key, err)
		return false
	}
	return true
}

// SetJSON stores value under key with the listing TTL. Best effort.
func (c *Cache) SetJSON(ctx context.Context, key string, value interface{}) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		logger.Error("cache: marshal failed for key "+key, err)
		return
	}
	if err := c.rdb.Set(ctx, key, raw, listingTTL).Err(); err != nil {
		logger.Error("cache: set failed for key "+key, err)
	}
}

func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}
