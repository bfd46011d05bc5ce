package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"tablebook/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const restaurantListKey = "restaurants:public"

// RestaurantListCache keeps the public restaurant listing in Redis. All
// faults degrade to a miss; the read store stays authoritative.
type RestaurantListCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRestaurantListCache(client *redis.Client, ttl time.Duration) *RestaurantListCache {
	return &RestaurantListCache{client: client, ttl: ttl}
}

func (c *RestaurantListCache) Get(ctx context.Context) ([]*queries.RestaurantView, bool) {
	payload, err := c.client.Get(ctx, restaurantListKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("restaurant cache read failed", "error", err)
		}
		return nil, false
	}
	var items []*queries.RestaurantView
	if err := json.Unmarshal(payload, &items); err != nil {
		slog.Warn("restaurant cache payload corrupt, dropping", "error", err)
		c.Invalidate(ctx)
		return nil, false
	}
	return items, true
}

func (c *RestaurantListCache) Set(ctx context.Context, items []*queries.RestaurantView) {
	payload, err := json.Marshal(items)
	if err != nil {
		slog.Warn("restaurant cache marshal failed", "error", err)
		return
	}
	if err := c.client.Set(ctx, restaurantListKey, payload, c.ttl).Err(); err != nil {
		slog.Warn("restaurant cache write failed", "error", err)
	}
}

func (c *RestaurantListCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, restaurantListKey).Err(); err != nil {
		slog.Warn("restaurant cache invalidation failed", "error", err)
	}
}
