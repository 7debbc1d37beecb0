package query

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"golang.org/x/sync/singleflight"

	"github.com/odyssey-erp/supplyhub/internal/notify"
)

// State is the observable state of a query.
type State string

const (
	StateLoading State = "loading"
	StateSuccess State = "success"
	StateError   State = "error"
)

// Result is what a view renders. On error Data holds the last-known-good
// value when HasData is true.
type Result[T any] struct {
	State   State
	Data    T
	HasData bool
	Stale   bool
	Err     error
}

// Fetcher retrieves the current value of a key.
type Fetcher[T any] func(ctx context.Context) (T, error)

// Client coordinates cache reads, deduplicated fetches and invalidation.
type Client struct {
	cache    Cache
	notifier notify.Notifier
	logger   *slog.Logger
	metrics  *Metrics
	group    singleflight.Group
	failure  func(Key) notify.Notification
}

// Option customises a Client.
type Option func(*Client)

// WithMetrics attaches Prometheus counters.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithFailureMessage overrides the notification sent when a fetch fails.
func WithFailureMessage(fn func(Key) notify.Notification) Option {
	return func(c *Client) { c.failure = fn }
}

// NewClient builds a Client.
func NewClient(cache Cache, notifier notify.Notifier, logger *slog.Logger, opts ...Option) *Client {
	if notifier == nil {
		notifier = notify.Discard
	}
	if logger == nil {
		logger = slog.Default()
	}
	c := &Client{cache: cache, notifier: notifier, logger: logger, failure: defaultFailure}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func defaultFailure(key Key) notify.Notification {
	if key.ID != "" {
		return notify.Failure(fmt.Sprintf("Failed to load %s record. Please try again.", key.Module))
	}
	return notify.Failure(fmt.Sprintf("Failed to load %s data. Please try again.", key.Module))
}

// Invalidate marks keys stale so the next Fetch goes to the source.
func (c *Client) Invalidate(ctx context.Context, keys ...Key) error {
	if err := c.cache.Invalidate(ctx, keys...); err != nil {
		return fmt.Errorf("query: invalidate: %w", err)
	}
	for _, key := range keys {
		c.metrics.invalidated(key.Module)
	}
	return nil
}

func (c *Client) lookup(ctx context.Context, key Key) (Entry, bool) {
	entry, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		c.logger.Warn("query cache read", slog.String("key", key.String()), slog.Any("error", err))
		return Entry{}, false
	}
	return entry, ok
}

// Peek reports the cached state of key without fetching. A key that was
// never fetched is loading.
func Peek[T any](ctx context.Context, c *Client, key Key) Result[T] {
	entry, ok := c.lookup(ctx, key)
	if !ok {
		return Result[T]{State: StateLoading}
	}
	var data T
	if err := json.Unmarshal(entry.Data, &data); err != nil {
		return Result[T]{State: StateLoading}
	}
	return Result[T]{State: StateSuccess, Data: data, HasData: true, Stale: entry.Stale}
}

// Fetch answers from a fresh cache entry or calls fetch. Concurrent fetches
// of one key and version share a single call, which runs detached from the
// caller's cancellation so other callers still get its result. A failed
// fetch notifies once and keeps any last-known-good data.
func Fetch[T any](ctx context.Context, c *Client, key Key, fetch Fetcher[T]) Result[T] {
	cached := Peek[T](ctx, c, key)
	if cached.HasData && !cached.Stale {
		c.metrics.hit(key.Module)
		return cached
	}
	c.metrics.miss(key.Module)

	version, err := c.cache.Version(ctx, key)
	if err != nil {
		c.logger.Warn("query cache version", slog.String("key", key.String()), slog.Any("error", err))
		version = -1
	}
	loadCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key.String()+"#"+strconv.FormatInt(version, 10), func() (interface{}, error) {
		value, err := fetch(loadCtx)
		if err != nil {
			c.metrics.fetchError(key.Module)
			if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
				c.notifier.Notify(loadCtx, c.failure(key))
			}
			return nil, err
		}
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("query: encode %s: %w", key, err)
		}
		if err := c.cache.Set(loadCtx, key, raw, version); err != nil {
			c.logger.Warn("query cache write", slog.String("key", key.String()), slog.Any("error", err))
		}
		return raw, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return failed(cached, ctx.Err())
	case res = <-ch:
	}
	if res.Err != nil {
		return failed(cached, res.Err)
	}
	var data T
	if err := json.Unmarshal(res.Val.([]byte), &data); err != nil {
		return failed(cached, fmt.Errorf("query: decode %s: %w", key, err))
	}
	return Result[T]{State: StateSuccess, Data: data, HasData: true}
}

func failed[T any](cached Result[T], err error) Result[T] {
	return Result[T]{State: StateError, Data: cached.Data, HasData: cached.HasData, Stale: cached.HasData, Err: err}
}
