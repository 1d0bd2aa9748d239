package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Daemon403/housing-platform/internal/domain"
)

// NearbyCache keeps geo search results hot for a short TTL. Stale-by-TTL is
// acceptable for search; booking writes never read through it.
type NearbyCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewNearbyCache(client *redis.Client, ttl time.Duration) *NearbyCache {
	return &NearbyCache{client: client, ttl: ttl}
}

// Key builds a deterministic cache key from the search parameters.
func Key(center domain.GeoPoint, radiusKm float64, page, pageSize int, minPrice, maxPrice *float64) string {
	minP, maxP := -1.0, -1.0
	if minPrice != nil {
		minP = *minPrice
	}
	if maxPrice != nil {
		maxP = *maxPrice
	}
	return fmt.Sprintf("nearby:%.6f:%.6f:%.2f:%d:%d:%.2f:%.2f",
		center.Lat, center.Lng, radiusKm, page, pageSize, minP, maxP)
}

func (c *NearbyCache) Get(ctx context.Context, key string) ([]domain.ListingDistance, bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache get: %w", err)
	}

	var res []domain.ListingDistance
	if err = json.Unmarshal(raw, &res); err != nil {
		return nil, false, fmt.Errorf("cache unmarshal: %w", err)
	}

	return res, true, nil
}

func (c *NearbyCache) Set(ctx context.Context, key string, val []domain.ListingDistance) error {
	raw, err := json.Marshal(val)
	if err != nil {
		return fmt.Errorf("cache marshal: %w", err)
	}

	if err = c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}

	return nil
}
