package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Fromshel/ontaste-api/models"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	menuCacheKey = "menu:items"
	menuCacheTTL = 10 * time.Minute
)

// MenuCache is a small cache-aside layer over the menu listing. The menu is
// immutable outside of seeding, so staleness only matters across a seed, which
// invalidates the key. A nil Redis client disables caching entirely.
type MenuCache struct {
	redis *redis.Client
}

func NewMenuCache(redisClient *redis.Client) *MenuCache {
	return &MenuCache{redis: redisClient}
}

// Get returns the cached menu and whether it was present.
func (mc *MenuCache) Get(ctx context.Context) ([]models.MenuItem, bool) {
	if mc.redis == nil {
		return nil, false
	}

	cached, err := mc.redis.Get(ctx, menuCacheKey).Result()
	if err != nil {
		return nil, false
	}

	var items []models.MenuItem
	if err := json.Unmarshal([]byte(cached), &items); err != nil {
		zap.L().Warn("Failed to unmarshal cached menu", zap.Error(err))
		return nil, false
	}
	return items, true
}

// SetAsync caches the menu in the background so the request path never waits
// on Redis. Empty lists are never cached: the menu is only empty before
// seeding, and a late background write of that state could outlive the
// seed-time invalidation.
func (mc *MenuCache) SetAsync(items []models.MenuItem) {
	if mc.redis == nil || len(items) == 0 {
		return
	}

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		jsonBytes, err := json.Marshal(items)
		if err != nil {
			zap.L().Warn("Failed to marshal menu for cache", zap.Error(err))
			return
		}

		if err := mc.redis.Set(bgCtx, menuCacheKey, jsonBytes, menuCacheTTL).Err(); err != nil {
			zap.L().Warn("Failed to cache menu", zap.Error(err))
		}
	}()
}

// Invalidate drops the cached menu after the catalog is seeded.
func (mc *MenuCache) Invalidate(ctx context.Context) {
	if mc.redis == nil {
		return
	}

	if err := mc.redis.Del(ctx, menuCacheKey).Err(); err != nil {
		zap.L().Warn("Failed to invalidate menu cache", zap.Error(err))
	}
}
