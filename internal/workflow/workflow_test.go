package workflow

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/supplyhub/internal/notify"
	"github.com/odyssey-erp/supplyhub/internal/query"
	"github.com/odyssey-erp/supplyhub/internal/shared"
)

type stock struct {
	ID       string   `json:"id"`
	Quantity int      `json:"quantity"`
	Tags     []string `json:"tags"`
}

func validateStock(s stock) shared.FieldErrors {
	if s.Quantity < 0 {
		return shared.FieldErrors{"quantity": "Quantity must be positive"}
	}
	return nil
}

type fixture struct {
	queries  *query.Client
	notes    *notify.Recorder
	history  *History
	runner   *Runner
	fetches  int32
	stored   stock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	fx := &fixture{notes: &notify.Recorder{}, history: &History{}, stored: stock{ID: "inv1", Quantity: 150}}
	fx.queries = query.NewClient(query.NewMemoryCache(), fx.notes, nil)
	fx.runner = NewRunner(fx.queries, fx.notes, fx.history, nil)
	return fx
}

func (fx *fixture) load(ctx context.Context) query.Result[stock] {
	return query.Fetch(ctx, fx.queries, query.RecordKey("inventory", "inv1"), func(ctx context.Context) (stock, error) {
		atomic.AddInt32(&fx.fetches, 1)
		return fx.stored, nil
	})
}

func (fx *fixture) update(fail error) Mutation[stock, stock] {
	return Mutation[stock, stock]{
		Module: "inventory",
		Run: func(ctx context.Context, draft stock) (stock, error) {
			if fail != nil {
				return stock{}, fail
			}
			fx.stored = draft
			return draft, nil
		},
		Invalidate: func(s stock) []query.Key {
			return []query.Key{query.ModuleKey("inventory"), query.RecordKey("inventory", s.ID)}
		},
		Success: notify.Success("Inventory item updated successfully"),
		Failure: notify.Failure("Failed to update inventory item. Please try again."),
	}
}

func TestEditFormTransitions(t *testing.T) {
	f := NewEditForm(stock{ID: "inv1", Quantity: 150}, validateStock)
	require.Equal(t, StateViewing, f.State())
	require.ErrorIs(t, f.Update(func(s *stock) { s.Quantity = 1 }), ErrNotEditing)

	require.NoError(t, f.Edit())
	require.Equal(t, StateEditing, f.State())
	require.NoError(t, f.Update(func(s *stock) { s.Quantity = 90 }))
	require.Equal(t, 90, f.Draft().Quantity)
	require.Equal(t, 150, f.Record().Quantity)

	require.NoError(t, f.Cancel())
	require.Equal(t, StateViewing, f.State())
	require.Equal(t, 150, f.Draft().Quantity)
}

func TestDraftDoesNotShareSlicesWithRecord(t *testing.T) {
	f := NewEditForm(stock{ID: "inv1", Tags: []string{"a"}}, nil)
	require.NoError(t, f.Edit())
	require.NoError(t, f.Update(func(s *stock) { s.Tags[0] = "b" }))
	require.Equal(t, "a", f.Record().Tags[0])
}

func TestInvalidDraftNeverSubmits(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	f := NewCreateForm(stock{ID: "inv9", Quantity: -5}, validateStock)

	var ran bool
	m := fx.update(nil)
	m.Run = func(ctx context.Context, draft stock) (stock, error) {
		ran = true
		return draft, nil
	}
	_, err := Submit(ctx, fx.runner, f, m)
	require.ErrorIs(t, err, shared.ErrValidation)
	require.False(t, ran)
	require.Equal(t, StateEditing, f.State())
	require.Equal(t, "Quantity must be positive", f.Errors()["quantity"])
	require.Empty(t, fx.notes.Notifications())
}

func TestSuccessfulUpdateInvalidatesAndReturnsToViewing(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	require.Equal(t, 150, fx.load(ctx).Data.Quantity)

	f := NewEditForm(fx.stored, validateStock)
	require.NoError(t, f.Edit())
	require.NoError(t, f.Update(func(s *stock) { s.Quantity = 120 }))

	_, err := Submit(ctx, fx.runner, f, fx.update(nil))
	require.NoError(t, err)
	require.Equal(t, StateViewing, f.State())
	require.Equal(t, 120, f.Record().Quantity)
	require.Equal(t, []notify.Notification{notify.Success("Inventory item updated successfully")}, fx.notes.Notifications())
	require.Empty(t, fx.history.Paths())

	res := fx.load(ctx)
	require.Equal(t, 120, res.Data.Quantity)
	require.EqualValues(t, 2, atomic.LoadInt32(&fx.fetches))
}

func TestFailedMutationKeepsEditingAndCache(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	fx.load(ctx)

	f := NewEditForm(fx.stored, validateStock)
	require.NoError(t, f.Edit())
	require.NoError(t, f.Update(func(s *stock) { s.Quantity = 10 }))

	_, err := Submit(ctx, fx.runner, f, fx.update(errors.New("502 bad gateway")))
	require.Error(t, err)
	require.Equal(t, StateEditing, f.State())
	require.Equal(t, 10, f.Draft().Quantity)
	require.Equal(t, 1, fx.notes.Count(notify.SeverityDestructive))
	require.Len(t, fx.notes.Notifications(), 1)

	res := fx.load(ctx)
	require.Equal(t, 150, res.Data.Quantity)
	require.EqualValues(t, 1, atomic.LoadInt32(&fx.fetches))
}

func TestServerFieldErrorsReturnToForm(t *testing.T) {
	fx := newFixture(t)
	f := NewCreateForm(stock{ID: "inv9", Quantity: 4}, validateStock)
	rejected := shared.FieldErrors{"productId": "Unknown product"}.Err()

	_, err := Submit(context.Background(), fx.runner, f, fx.update(rejected))
	require.ErrorIs(t, err, shared.ErrValidation)
	require.Equal(t, "Unknown product", f.Errors()["productId"])
	require.Equal(t, StateEditing, f.State())
}

func TestSecondSubmitWhileInFlight(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	f := NewCreateForm(stock{ID: "inv9", Quantity: 4}, validateStock)

	started := make(chan struct{})
	release := make(chan struct{})
	m := fx.update(nil)
	m.Run = func(ctx context.Context, draft stock) (stock, error) {
		close(started)
		<-release
		return draft, nil
	}
	done := make(chan error, 1)
	go func() {
		_, err := Submit(ctx, fx.runner, f, m)
		done <- err
	}()
	<-started

	require.Equal(t, StateSubmitting, f.State())
	_, err := Submit(ctx, fx.runner, f, m)
	require.ErrorIs(t, err, ErrSubmitInFlight)
	require.ErrorIs(t, f.Edit(), ErrSubmitInFlight)
	require.ErrorIs(t, f.Update(func(*stock) {}), ErrSubmitInFlight)

	close(release)
	require.NoError(t, <-done)
	require.Equal(t, StateViewing, f.State())
}

func TestCreateRedirectsToList(t *testing.T) {
	fx := newFixture(t)
	f := NewCreateForm(stock{ID: "inv9", Quantity: 4}, validateStock)
	m := fx.update(nil)
	m.Success = notify.Success("Inventory item created successfully")
	m.RedirectTo = func(stock) string { return ListPath("inventory") }

	_, err := Submit(context.Background(), fx.runner, f, m)
	require.NoError(t, err)
	require.Equal(t, "/dashboard/inventory", fx.history.Current())
}

func TestDetachedFormStillInvalidates(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	fx.load(ctx)

	f := NewEditForm(fx.stored, validateStock)
	require.NoError(t, f.Edit())
	require.NoError(t, f.Update(func(s *stock) { s.Quantity = 60 }))

	m := fx.update(nil)
	m.RedirectTo = func(stock) string { return ListPath("inventory") }
	m.Run = func(ctx context.Context, draft stock) (stock, error) {
		f.Detach()
		fx.stored = draft
		return draft, nil
	}
	_, err := Submit(ctx, fx.runner, f, m)
	require.NoError(t, err)
	require.Equal(t, StateSubmitting, f.State())
	require.Empty(t, fx.notes.Notifications())
	require.Empty(t, fx.history.Paths())
	require.Equal(t, 60, fx.load(ctx).Data.Quantity)
}

func TestMutationMetrics(t *testing.T) {
	fx := newFixture(t)
	reg := prometheus.NewRegistry()
	fx.runner.WithMetrics(reg)

	f := NewCreateForm(stock{ID: "inv9", Quantity: 4}, validateStock)
	_, _ = Submit(context.Background(), fx.runner, f, fx.update(errors.New("down")))

	rr := httptest.NewRecorder()
	promhttp.HandlerFor(reg, promhttp.HandlerOpts{}).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if !strings.Contains(rr.Body.String(), `supplyhub_mutations_total{module="inventory",outcome="failure"} 1`) {
		t.Fatalf("expected failure counter, got: %s", rr.Body.String())
	}
}

func TestPaths(t *testing.T) {
	require.Equal(t, "/dashboard/orders", ListPath("orders"))
	require.Equal(t, "/dashboard/orders/ord1", DetailPath("orders", "ord1"))
}
