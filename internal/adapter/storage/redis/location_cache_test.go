package redis

import (
	"context"
	"testing"
	"time"

	"ride-escrow-network/internal/core/domain"
	"ride-escrow-network/internal/core/ports"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationCache_SetGetDelete(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	cache := NewLocationCache(client, 10*time.Minute)
	ctx := context.Background()

	got, err := cache.Get(ctx, "driver-1")
	require.NoError(t, err)
	assert.Nil(t, got)

	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	loc := ports.CachedLocation{
		Location:  domain.Coordinates{Lat: 13.75, Long: 100.5},
		Next:      &domain.Coordinates{Lat: 13.8, Long: 100.55},
		UpdatedAt: at,
	}
	require.NoError(t, cache.Set(ctx, "driver-1", loc))

	got, err = cache.Get(ctx, "driver-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, loc.Location, got.Location)
	assert.Equal(t, *loc.Next, *got.Next)
	assert.True(t, at.Equal(got.UpdatedAt))

	require.NoError(t, cache.Delete(ctx, "driver-1"))
	got, err = cache.Get(ctx, "driver-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLocationCache_Expires(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	cache := NewLocationCache(client, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "driver-2", ports.CachedLocation{Location: domain.Coordinates{Lat: 1, Long: 2}}))
	mr.FastForward(2 * time.Minute)

	got, err := cache.Get(ctx, "driver-2")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLocationCache_CorruptEntry(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	cache := NewLocationCache(client, time.Minute)

	require.NoError(t, mr.Set("ride:location:driver-3", "not-json"))
	_, err := cache.Get(context.Background(), "driver-3")
	assert.Error(t, err)
}
