package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const catalogKey = "catalog:items"

// CatalogCache holds the marshaled storefront catalog. It stores raw JSON so
// callers own the shape. Redis being down degrades to direct reads, it never
// takes the storefront with it.
type CatalogCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCatalogCache(rdb *redis.Client, ttl time.Duration) *CatalogCache {
	return &CatalogCache{rdb: rdb, ttl: ttl}
}

func (c *CatalogCache) Get(ctx context.Context) ([]byte, bool) {
	if c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, catalogKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("catalog cache read failed", "error", err.Error())
		}
		return nil, false
	}
	return raw, true
}

func (c *CatalogCache) Set(ctx context.Context, raw []byte) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Set(ctx, catalogKey, raw, c.ttl).Err(); err != nil {
		slog.Warn("catalog cache write failed", "error", err.Error())
	}
}

func (c *CatalogCache) Invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, catalogKey).Err(); err != nil {
		slog.Warn("catalog cache invalidation failed", "error", err.Error())
	}
}
