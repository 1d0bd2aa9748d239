package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Daemon403/housing-platform/internal/domain"
)

func ptr(f float64) *float64 { return &f }

func TestKey(t *testing.T) {
	center := domain.GeoPoint{Lat: 34.0522, Lng: -118.2437}

	key := Key(center, 5, 1, 20, nil, nil)
	assert.Equal(t, "nearby:34.052200:-118.243700:5.00:1:20:-1.00:-1.00", key)

	withPrices := Key(center, 5, 1, 20, ptr(300), ptr(800))
	assert.Equal(t, "nearby:34.052200:-118.243700:5.00:1:20:300.00:800.00", withPrices)

	// Different parameters must never collide.
	assert.NotEqual(t, key, withPrices)
	assert.NotEqual(t, key, Key(center, 5, 2, 20, nil, nil))
}

func TestNearbyCache_GetMiss(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	c := NewNearbyCache(db, time.Minute)

	mockRedis.ExpectGet("nearby:k").RedisNil()

	_, ok, err := c.Get(context.Background(), "nearby:k")

	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestNearbyCache_SetThenGet(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	c := NewNearbyCache(db, time.Minute)

	val := []domain.ListingDistance{
		{Listing: &domain.Listing{ID: "a", Title: "Studio"}, DistanceKm: 1.3},
	}
	raw, err := json.Marshal(val)
	require.NoError(t, err)

	mockRedis.ExpectSet("nearby:k", raw, time.Minute).SetVal("OK")
	mockRedis.ExpectGet("nearby:k").SetVal(string(raw))

	require.NoError(t, c.Set(context.Background(), "nearby:k", val))

	got, ok, err := c.Get(context.Background(), "nearby:k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Listing.ID)
	assert.InDelta(t, 1.3, got[0].DistanceKm, 1e-9)

	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestNearbyCache_GetError(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	c := NewNearbyCache(db, time.Minute)

	mockRedis.ExpectGet("nearby:k").SetErr(assert.AnError)

	_, ok, err := c.Get(context.Background(), "nearby:k")

	assert.Error(t, err)
	assert.False(t, ok)
}

func TestNearbyCache_GetCorruptPayload(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	c := NewNearbyCache(db, time.Minute)

	mockRedis.ExpectGet("nearby:k").SetVal("{not json")

	_, ok, err := c.Get(context.Background(), "nearby:k")

	assert.Error(t, err)
	assert.False(t, ok)
}
