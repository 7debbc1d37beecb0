package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/supplyhub/internal/query"
)

func TestNewQueryCacheMemory(t *testing.T) {
	c, closeFn, err := NewQueryCache(context.Background(), DriverMemory, "", time.Minute)
	require.NoError(t, err)
	require.IsType(t, &query.MemoryCache{}, c)
	require.NoError(t, closeFn())
}

func TestNewQueryCacheRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	c, closeFn, err := NewQueryCache(context.Background(), DriverRedis, mr.Addr(), time.Minute)
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeFn() })

	key := query.ModuleKey("inventory")
	require.NoError(t, c.Set(context.Background(), key, []byte(`[]`), 0))
	entry, ok, err := c.Get(context.Background(), key)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte(`[]`), entry.Data)
}

func TestNewRejectsUnreachableRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := New(context.Background(), addr)
	require.ErrorContains(t, err, "platform/cache: ping")
}

func TestNewQueryCacheUnknownDriver(t *testing.T) {
	_, _, err := NewQueryCache(context.Background(), "memcached", "", time.Minute)
	require.Error(t, err)
}
