// Package cli implements the supplyctl commands on top of the dashboard
// views: every command loads through the query cache and writes through
// forms and mutations, exactly like the dashboard does.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/odyssey-erp/supplyhub/internal/dashboard"
	"github.com/odyssey-erp/supplyhub/internal/notify"
	"github.com/odyssey-erp/supplyhub/internal/query"
	"github.com/odyssey-erp/supplyhub/internal/workflow"
)

// Session bundles the views of one CLI invocation.
type Session struct {
	Deps      dashboard.Deps
	History   *workflow.History
	Inventory *dashboard.InventoryView
	Orders    *dashboard.OrderView
	Suppliers *dashboard.SupplierView
}

// NewSession builds the views over api. Notifications are printed to out.
func NewSession(api dashboard.API, cache query.Cache, out io.Writer, logger *slog.Logger) *Session {
	if cache == nil {
		cache = query.NewMemoryCache()
	}
	notifier := &writerNotifier{out: out}
	history := &workflow.History{}
	queries := query.NewClient(cache, notifier, logger, query.WithFailureMessage(dashboard.FailureMessage))
	deps := dashboard.Deps{
		API:     api,
		Queries: queries,
		Runner:  workflow.NewRunner(queries, notifier, history, logger),
	}
	return &Session{
		Deps:      deps,
		History:   history,
		Inventory: dashboard.NewInventoryView(deps),
		Orders:    dashboard.NewOrderView(deps),
		Suppliers: dashboard.NewSupplierView(deps),
	}
}

// writerNotifier prints notifications as "Title: description".
type writerNotifier struct {
	mu  sync.Mutex
	out io.Writer
}

func (w *writerNotifier) Notify(_ context.Context, n notify.Notification) {
	if w.out == nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	_, _ = fmt.Fprintf(w.out, "%s: %s\n", n.Title, n.Description)
}
