package query

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/supplyhub/internal/notify"
)

type row struct {
	ID  string `json:"id"`
	Qty int    `json:"qty"`
}

func counting(rows []row, calls *int32) Fetcher[[]row] {
	return func(ctx context.Context) ([]row, error) {
		atomic.AddInt32(calls, 1)
		return rows, nil
	}
}

func TestKeyString(t *testing.T) {
	require.Equal(t, "inventory", ModuleKey("inventory").String())
	require.Equal(t, "orders:ord1", RecordKey("orders", "ord1").String())
}

func TestPeekBeforeFetchIsLoading(t *testing.T) {
	c := NewClient(NewMemoryCache(), nil, nil)
	res := Peek[[]row](context.Background(), c, ModuleKey("inventory"))
	require.Equal(t, StateLoading, res.State)
	require.False(t, res.HasData)
}

func TestFetchCachesUntilInvalidated(t *testing.T) {
	ctx := context.Background()
	c := NewClient(NewMemoryCache(), nil, nil)
	key := ModuleKey("inventory")
	var calls int32
	fetch := counting([]row{{ID: "inv1", Qty: 150}}, &calls)

	res := Fetch(ctx, c, key, fetch)
	require.Equal(t, StateSuccess, res.State)
	require.Equal(t, 150, res.Data[0].Qty)

	res = Fetch(ctx, c, key, fetch)
	require.Equal(t, StateSuccess, res.State)
	require.EqualValues(t, 1, atomic.LoadInt32(&calls))

	require.NoError(t, c.Invalidate(ctx, key))
	peek := Peek[[]row](ctx, c, key)
	require.True(t, peek.Stale)
	require.Equal(t, 150, peek.Data[0].Qty)

	Fetch(ctx, c, key, fetch)
	require.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestFetchErrorKeepsLastKnownGoodAndNotifiesOnce(t *testing.T) {
	ctx := context.Background()
	rec := &notify.Recorder{}
	c := NewClient(NewMemoryCache(), rec, nil)
	key := ModuleKey("orders")
	var calls int32

	Fetch(ctx, c, key, counting([]row{{ID: "ord1"}}, &calls))
	require.NoError(t, c.Invalidate(ctx, key))

	res := Fetch(ctx, c, key, func(ctx context.Context) ([]row, error) {
		return nil, errors.New("connection refused")
	})
	require.Equal(t, StateError, res.State)
	require.Error(t, res.Err)
	require.True(t, res.HasData)
	require.Equal(t, "ord1", res.Data[0].ID)

	notes := rec.Notifications()
	require.Len(t, notes, 1)
	require.Equal(t, notify.Failure("Failed to load orders data. Please try again."), notes[0])
}

func TestFetchErrorWithoutData(t *testing.T) {
	c := NewClient(NewMemoryCache(), nil, nil)
	res := Fetch(context.Background(), c, RecordKey("suppliers", "sup9"), func(ctx context.Context) (row, error) {
		return row{}, errors.New("boom")
	})
	require.Equal(t, StateError, res.State)
	require.False(t, res.HasData)
}

func TestConcurrentFetchesShareOneCall(t *testing.T) {
	ctx := context.Background()
	c := NewClient(NewMemoryCache(), nil, nil)
	key := ModuleKey("suppliers")
	release := make(chan struct{})
	var calls int32
	fetch := func(ctx context.Context) ([]row, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return []row{{ID: "sup1"}}, nil
	}

	var wg sync.WaitGroup
	results := make([]Result[[]row], 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Fetch(ctx, c, key, fetch)
		}(i)
	}
	// let every goroutine join the in-flight call before it completes
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	require.EqualValues(t, 1, atomic.LoadInt32(&calls))
	for _, res := range results {
		require.Equal(t, StateSuccess, res.State)
		require.Equal(t, "sup1", res.Data[0].ID)
	}
}

func TestMetricsExposed(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	c := NewClient(NewMemoryCache(), nil, nil, WithMetrics(NewMetrics(reg)))
	key := ModuleKey("inventory")
	var calls int32

	Fetch(ctx, c, key, counting(nil, &calls))
	Fetch(ctx, c, key, counting(nil, &calls))
	require.NoError(t, c.Invalidate(ctx, key))

	rr := httptest.NewRecorder()
	promhttp.HandlerFor(reg, promhttp.HandlerOpts{}).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rr.Body.String()
	for _, want := range []string{
		`supplyhub_query_cache_hits_total{module="inventory"} 1`,
		`supplyhub_query_cache_miss_total{module="inventory"} 1`,
		`supplyhub_query_invalidations_total{module="inventory"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in metrics, got: %s", want, body)
		}
	}
}

func TestInvalidateDuringFetchForcesRefetch(t *testing.T) {
	ctx := context.Background()
	c := NewClient(NewMemoryCache(), nil, nil)
	key := ModuleKey("inventory")

	var source, calls int32
	atomic.StoreInt32(&source, 1)
	started := make(chan struct{})
	release := make(chan struct{})
	fetch := func(ctx context.Context) ([]row, error) {
		qty := int(atomic.LoadInt32(&source))
		if atomic.AddInt32(&calls, 1) == 1 {
			close(started)
			<-release
		}
		return []row{{ID: "inv1", Qty: qty}}, nil
	}

	first := make(chan Result[[]row], 1)
	go func() { first <- Fetch(ctx, c, key, fetch) }()
	<-started

	// a mutation lands while the first fetch is still in flight
	atomic.StoreInt32(&source, 2)
	require.NoError(t, c.Invalidate(ctx, key))

	res := Fetch(ctx, c, key, fetch)
	require.Equal(t, StateSuccess, res.State)
	require.Equal(t, 2, res.Data[0].Qty)

	close(release)
	require.Equal(t, 1, (<-first).Data[0].Qty)

	peek := Peek[[]row](ctx, c, key)
	require.False(t, peek.Stale)
	require.Equal(t, 2, peek.Data[0].Qty)
	require.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestOutdatedFetchIsStoredStale(t *testing.T) {
	ctx := context.Background()
	c := NewClient(NewMemoryCache(), nil, nil)
	key := ModuleKey("orders")
	started := make(chan struct{})
	release := make(chan struct{})

	done := make(chan Result[[]row], 1)
	go func() {
		done <- Fetch(ctx, c, key, func(ctx context.Context) ([]row, error) {
			close(started)
			<-release
			return []row{{ID: "ord1"}}, nil
		})
	}()
	<-started
	require.NoError(t, c.Invalidate(ctx, key))
	close(release)
	<-done

	peek := Peek[[]row](ctx, c, key)
	require.True(t, peek.HasData)
	require.True(t, peek.Stale)

	var calls int32
	Fetch(ctx, c, key, counting([]row{{ID: "ord2"}}, &calls))
	require.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestCancelledCallerDoesNotFailSharedFetch(t *testing.T) {
	rec := &notify.Recorder{}
	c := NewClient(NewMemoryCache(), rec, nil)
	key := ModuleKey("suppliers")
	started := make(chan struct{})
	release := make(chan struct{})
	fetch := func(ctx context.Context) ([]row, error) {
		close(started)
		<-release
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return []row{{ID: "sup1"}}, nil
	}

	leaderCtx, cancel := context.WithCancel(context.Background())
	leader := make(chan Result[[]row], 1)
	go func() { leader <- Fetch(leaderCtx, c, key, fetch) }()
	<-started

	follower := make(chan Result[[]row], 1)
	go func() { follower <- Fetch(context.Background(), c, key, fetch) }()
	// let the follower join the in-flight call
	time.Sleep(50 * time.Millisecond)

	cancel()
	res := <-leader
	require.Equal(t, StateError, res.State)
	require.ErrorIs(t, res.Err, context.Canceled)

	close(release)
	res = <-follower
	require.Equal(t, StateSuccess, res.State)
	require.Equal(t, "sup1", res.Data[0].ID)
	require.Empty(t, rec.Notifications())
}

func TestCancelledFetchDoesNotNotify(t *testing.T) {
	rec := &notify.Recorder{}
	c := NewClient(NewMemoryCache(), rec, nil)
	res := Fetch(context.Background(), c, ModuleKey("orders"), func(ctx context.Context) ([]row, error) {
		return nil, context.Canceled
	})
	require.Equal(t, StateError, res.State)
	require.Empty(t, rec.Notifications())
}
