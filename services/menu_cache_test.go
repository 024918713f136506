package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/Fromshel/ontaste-api/models"
	"github.com/Fromshel/ontaste-api/services"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
)

func newTestCache(t *testing.T) *services.MenuCache {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return services.NewMenuCache(client)
}

func TestMenuCache_DisabledWithoutRedis(t *testing.T) {
	cache := services.NewMenuCache(nil)

	cache.SetAsync(models.SeedCatalog())
	_, ok := cache.Get(context.Background())
	assert.False(t, ok)
}

func TestMenuCache_RoundTrip(t *testing.T) {
	cache := newTestCache(t)

	cache.SetAsync(models.SeedCatalog())

	var items []models.MenuItem
	assert.Eventually(t, func() bool {
		var ok bool
		items, ok = cache.Get(context.Background())
		return ok
	}, time.Second, 10*time.Millisecond)
	assert.Len(t, items, 6)
}

func TestMenuCache_NeverCachesEmptyMenu(t *testing.T) {
	// An empty menu only exists before seeding; caching it would let a late
	// background write survive the seed-time invalidation.
	cache := newTestCache(t)

	cache.SetAsync([]models.MenuItem{})
	time.Sleep(100 * time.Millisecond)

	_, ok := cache.Get(context.Background())
	assert.False(t, ok)
}

func TestMenuCache_InvalidateDropsEntry(t *testing.T) {
	cache := newTestCache(t)

	cache.SetAsync(models.SeedCatalog())
	assert.Eventually(t, func() bool {
		_, ok := cache.Get(context.Background())
		return ok
	}, time.Second, 10*time.Millisecond)

	cache.Invalidate(context.Background())

	_, ok := cache.Get(context.Background())
	assert.False(t, ok)
}
