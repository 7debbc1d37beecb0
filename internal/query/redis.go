package query

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisPrefix = "supplyhub:query:"

// RedisCache shares query results between processes. The payload and the
// stale marker live under separate keys with the same TTL; the version
// counter has no TTL.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache builds a RedisCache. A zero ttl keeps entries forever.
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func dataKey(key Key) string    { return redisPrefix + key.String() }
func staleKey(key Key) string   { return redisPrefix + key.String() + ":stale" }
func versionKey(key Key) string { return redisPrefix + key.String() + ":version" }

// setScript writes the payload when the version is current (clearing the
// stale marker), or as a stale entry when it moved on and nothing is cached.
// KEYS: data, stale, version. ARGV: payload, version, ttl in ms.
var setScript = redis.NewScript(`
local current = redis.call('GET', KEYS[3])
if not current then current = '0' end
local ttl = tonumber(ARGV[3])
local function put(k, v)
	if ttl > 0 then
		redis.call('SET', k, v, 'PX', ttl)
	else
		redis.call('SET', k, v)
	end
end
if current == ARGV[2] then
	put(KEYS[1], ARGV[1])
	redis.call('DEL', KEYS[2])
	return 1
end
if redis.call('EXISTS', KEYS[1]) == 1 then
	return 0
end
put(KEYS[1], ARGV[1])
put(KEYS[2], '1')
return 0
`)

// Get returns the entry for key.
func (c *RedisCache) Get(ctx context.Context, key Key) (Entry, bool, error) {
	values, err := c.client.MGet(ctx, dataKey(key), staleKey(key)).Result()
	if err != nil {
		return Entry{}, false, err
	}
	raw, ok := values[0].(string)
	if !ok {
		return Entry{}, false, nil
	}
	return Entry{Data: []byte(raw), Stale: values[1] != nil}, true, nil
}

// Version returns the current version of key.
func (c *RedisCache) Version(ctx context.Context, key Key) (int64, error) {
	v, err := c.client.Get(ctx, versionKey(key)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

// Set stores data for key, fresh only when version is still current.
func (c *RedisCache) Set(ctx context.Context, key Key, data []byte, version int64) error {
	keys := []string{dataKey(key), staleKey(key), versionKey(key)}
	err := setScript.Run(ctx, c.client, keys, data, strconv.FormatInt(version, 10), c.ttl.Milliseconds()).Err()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	return err
}

// Invalidate bumps the versions and marks entries stale without dropping
// their payload.
func (c *RedisCache) Invalidate(ctx context.Context, keys ...Key) error {
	if len(keys) == 0 {
		return nil
	}
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, key := range keys {
			pipe.Incr(ctx, versionKey(key))
			pipe.Set(ctx, staleKey(key), "1", c.ttl)
		}
		return nil
	})
	return err
}
