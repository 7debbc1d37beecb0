package query

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newRedisCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisCache(client, time.Minute), mr
}

func TestRedisCacheSetGetInvalidate(t *testing.T) {
	ctx := context.Background()
	cache, mr := newRedisCache(t)
	key := RecordKey("inventory", "inv1")

	_, ok, err := cache.Get(ctx, key)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, cache.Set(ctx, key, []byte(`{"id":"inv1"}`), 0))
	entry, ok, err := cache.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	require.False(t, entry.Stale)
	require.JSONEq(t, `{"id":"inv1"}`, string(entry.Data))
	require.True(t, mr.Exists("supplyhub:query:inventory:inv1"))

	require.NoError(t, cache.Invalidate(ctx, key, ModuleKey("inventory")))
	entry, ok, err = cache.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, entry.Stale)

	version, err := cache.Version(ctx, key)
	require.NoError(t, err)
	require.EqualValues(t, 1, version)
	require.NoError(t, cache.Set(ctx, key, []byte(`{"id":"inv1","quantity":3}`), version))
	entry, _, err = cache.Get(ctx, key)
	require.NoError(t, err)
	require.False(t, entry.Stale)
}

func TestRedisCacheExpires(t *testing.T) {
	ctx := context.Background()
	cache, mr := newRedisCache(t)
	key := ModuleKey("orders")

	require.NoError(t, cache.Set(ctx, key, []byte(`[]`), 0))
	mr.FastForward(2 * time.Minute)

	_, ok, err := cache.Get(ctx, key)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestClientOverRedis(t *testing.T) {
	ctx := context.Background()
	cache, _ := newRedisCache(t)
	c := NewClient(cache, nil, nil)
	key := ModuleKey("suppliers")
	var calls int32

	res := Fetch(ctx, c, key, counting([]row{{ID: "sup1"}}, &calls))
	require.Equal(t, StateSuccess, res.State)

	other := NewClient(cache, nil, nil)
	res = Fetch(ctx, other, key, counting(nil, &calls))
	require.Equal(t, "sup1", res.Data[0].ID)
	require.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestRedisCacheDropsOutdatedWrites(t *testing.T) {
	ctx := context.Background()
	cache, _ := newRedisCache(t)
	key := ModuleKey("inventory")

	// nothing cached yet: the outdated payload is kept, but stale
	require.NoError(t, cache.Invalidate(ctx, key))
	require.NoError(t, cache.Set(ctx, key, []byte(`[1]`), 0))
	entry, ok, err := cache.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, entry.Stale)

	require.NoError(t, cache.Set(ctx, key, []byte(`[2]`), 1))
	require.NoError(t, cache.Set(ctx, key, []byte(`[1]`), 0))
	entry, _, err = cache.Get(ctx, key)
	require.NoError(t, err)
	require.False(t, entry.Stale)
	require.JSONEq(t, `[2]`, string(entry.Data))
}
