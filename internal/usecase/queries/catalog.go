package queries

import (
	"context"
	"encoding/json"
	"log/slog"

	"organic-storefront/internal/infra/cache"
)

type CatalogQueries interface {
	// ListPublic serves the storefront catalog, read-through cached.
	ListPublic(ctx context.Context) ([]*CatalogItem, error)
	// ListAll includes hidden products, for the admin screen. Never cached.
	ListAll(ctx context.Context) ([]*CatalogItem, error)
}

type CatalogViewRepo interface {
	FindAll(ctx context.Context, visibleOnly bool) ([]*CatalogItem, error)
}

type catalogQueriesImpl struct {
	repo  CatalogViewRepo
	cache *cache.CatalogCache
}

func NewCatalogQueries(repo CatalogViewRepo, catalogCache *cache.CatalogCache) CatalogQueries {
	return &catalogQueriesImpl{repo: repo, cache: catalogCache}
}

func (q *catalogQueriesImpl) ListPublic(ctx context.Context) ([]*CatalogItem, error) {
	if raw, ok := q.cache.Get(ctx); ok {
		var items []*CatalogItem
		if err := json.Unmarshal(raw, &items); err == nil {
			return items, nil
		}
		slog.Warn("catalog cache entry is malformed, dropping it")
		q.cache.Invalidate(ctx)
	}

	items, err := q.repo.FindAll(ctx, true)
	if err != nil {
		return nil, err
	}
	if raw, err := json.Marshal(items); err == nil {
		q.cache.Set(ctx, raw)
	}
	return items, nil
}

func (q *catalogQueriesImpl) ListAll(ctx context.Context) ([]*CatalogItem, error) {
	return q.repo.FindAll(ctx, false)
}
