package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/supplyhub/internal/dashboard"
	"github.com/odyssey-erp/supplyhub/internal/inventory"
	"github.com/odyssey-erp/supplyhub/internal/notify"
	"github.com/odyssey-erp/supplyhub/internal/query"
	"github.com/odyssey-erp/supplyhub/internal/workflow"
)

// pathAPI answers GETs from a fixed path to value table.
type pathAPI struct {
	values map[string]any
	gets   int
}

func (a *pathAPI) Get(_ context.Context, path string, out any) error {
	a.gets++
	v, ok := a.values[path]
	if !ok {
		return errors.New("no route " + path)
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func (a *pathAPI) Post(context.Context, string, any, any) error { return errors.New("read only") }
func (a *pathAPI) Put(context.Context, string, any, any) error  { return errors.New("read only") }

func TestDashboardScannerCountsFreshAlerts(t *testing.T) {
	now := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	api := &pathAPI{values: map[string]any{
		"/api/inventory/alerts": inventory.BuildAlerts(inventory.SeedItems(), now),
	}}
	queries := query.NewClient(query.NewMemoryCache(), notify.Discard, discardLogger())
	scanner := DashboardScanner{Deps: dashboard.Deps{
		API:     api,
		Queries: queries,
		Runner:  workflow.NewRunner(queries, nil, nil, discardLogger()),
	}}

	counts, err := scanner.ScanAlerts(context.Background(), inventory.Module)
	require.NoError(t, err)
	require.Equal(t, AlertCounts{"lowStock": 3, "expiring": 1}, counts)

	_, err = scanner.ScanAlerts(context.Background(), inventory.Module)
	require.NoError(t, err)
	require.Equal(t, 2, api.gets)

	_, err = scanner.ScanAlerts(context.Background(), "orders")
	require.ErrorContains(t, err, "no route")

	_, err = scanner.ScanAlerts(context.Background(), "ledger")
	require.ErrorContains(t, err, "unknown module")
}
