package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRateLimitStore(t *testing.T) (*RateLimitStore, *miniredis.Miniredis, *time.Time) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	now := time.Unix(1_700_000_040, 0)
	store := NewRateLimitStore(client)
	store.now = func() time.Time { return now }
	return store, mr, &now
}

func TestRateLimitStore_CountsWithinWindow(t *testing.T) {
	store, _, _ := newRateLimitStore(t)
	ctx := context.Background()

	for i := int64(1); i <= 3; i++ {
		result, err := store.Allow(ctx, "signer1:jobs", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, result.Allowed, "request %d", i)
		assert.Equal(t, int64(3), result.Limit)
		assert.Equal(t, 3-i, result.Remaining)
	}

	result, err := store.Allow(ctx, "signer1:jobs", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, result.Allowed)
	assert.Zero(t, result.Remaining)

	other, err := store.Allow(ctx, "signer2:jobs", 5, time.Minute)
	require.NoError(t, err)
	assert.True(t, other.Allowed)
	assert.Equal(t, int64(4), other.Remaining)
}

func TestRateLimitStore_NextWindowStartsFresh(t *testing.T) {
	store, _, now := newRateLimitStore(t)
	ctx := context.Background()

	_, err := store.Allow(ctx, "signer3:infras", 1, time.Minute)
	require.NoError(t, err)
	result, err := store.Allow(ctx, "signer3:infras", 1, time.Minute)
	require.NoError(t, err)
	assert.False(t, result.Allowed)
	assert.Equal(t, (now.Unix()/60+1)*60, result.ResetAt)

	*now = now.Add(61 * time.Second)
	result, err = store.Allow(ctx, "signer3:infras", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, result.Allowed)
}

func TestRateLimitStore_CounterExpires(t *testing.T) {
	store, mr, _ := newRateLimitStore(t)

	_, err := store.Allow(context.Background(), "signer5:jobs", 10, time.Minute)
	require.NoError(t, err)
	keys := mr.Keys()
	require.Len(t, keys, 1)
	assert.Equal(t, 61*time.Second, mr.TTL(keys[0]))

	mr.FastForward(2 * time.Minute)
	assert.Empty(t, mr.Keys())
}

func TestRateLimitStore_SubSecondWindow(t *testing.T) {
	store, _, _ := newRateLimitStore(t)

	result, err := store.Allow(context.Background(), "signer6:reads", 1, 10*time.Millisecond)
	require.NoError(t, err)
	assert.True(t, result.Allowed)
	assert.Equal(t, int64(1_700_000_041), result.ResetAt)
}

func TestRateLimitStore_RedisDown(t *testing.T) {
	store, mr, _ := newRateLimitStore(t)
	mr.Close()

	_, err := store.Allow(context.Background(), "signer7:jobs", 1, time.Minute)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "signer7:jobs")
}
