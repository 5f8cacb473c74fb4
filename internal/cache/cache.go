// Package cache holds the Redis-backed response cache for public
// storefront routes. Mutations to content invalidate the affected routes;
// cache failures degrade to serving from the store.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/coffeehouse-cms/internal/config"
)

// PageCache stores rendered JSON payloads keyed by public route.
type PageCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	logger *zap.Logger
}

// NewPageCache builds the cache. A nil client (cache disabled or Redis not
// configured) yields a no-op cache.
func NewPageCache(cfg config.CacheConfig, client *redis.Client, logger *zap.Logger) *PageCache {
	if !cfg.Enabled {
		client = nil
	}
	return &PageCache{
		client: client,
		prefix: cfg.Prefix,
		ttl:    cfg.TTL(),
		logger: logger,
	}
}

func (p *PageCache) key(route string) string {
	return p.prefix + ":" + route
}

// Get returns the cached payload for a route, if present.
func (p *PageCache) Get(ctx context.Context, route string) ([]byte, bool) {
	if p == nil || p.client == nil {
		return nil, false
	}
	payload, err := p.client.Get(ctx, p.key(route)).Bytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

// Set stores a payload for a route with the configured TTL.
func (p *PageCache) Set(ctx context.Context, route string, payload []byte) {
	if p == nil || p.client == nil {
		return
	}
	if err := p.client.Set(ctx, p.key(route), payload, p.ttl).Err(); err != nil {
		p.logger.Warn("cache set failed", zap.String("route", route), zap.Error(err))
	}
}

// Invalidate drops the cached payloads for the given routes.
func (p *PageCache) Invalidate(ctx context.Context, routes ...string) {
	if p == nil || p.client == nil || len(routes) == 0 {
		return
	}
	keys := make([]string, 0, len(routes))
	for _, route := range routes {
		keys = append(keys, p.key(route))
	}
	if err := p.client.Del(ctx, keys...).Err(); err != nil {
		p.logger.Warn("cache invalidation failed", zap.Strings("routes", routes), zap.Error(err))
	}
}
