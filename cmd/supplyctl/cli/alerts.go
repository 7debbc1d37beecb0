package cli

import (
	"context"
	"fmt"

	"github.com/odyssey-erp/supplyhub/internal/dashboard"
	"github.com/odyssey-erp/supplyhub/internal/inventory"
	"github.com/odyssey-erp/supplyhub/internal/orders"
	"github.com/odyssey-erp/supplyhub/internal/overview"
	"github.com/odyssey-erp/supplyhub/internal/suppliers"
)

// AlertsCommand prints the alert groups of module.
func (s *Session) AlertsCommand(ctx context.Context, module string, out Output) int {
	out = out.withDefaults()
	var (
		data any
		err  error
	)
	switch module {
	case inventory.Module:
		res := dashboard.InventoryAlerts(ctx, s.Deps)
		data, err = res.Data, res.Err
	case orders.Module:
		res := dashboard.OrderAlerts(ctx, s.Deps)
		data, err = res.Data, res.Err
	case suppliers.Module:
		res := dashboard.SupplierAlerts(ctx, s.Deps)
		data, err = res.Data, res.Err
	default:
		_, _ = fmt.Fprintf(out.Stderr, "alerts: unknown module %q\n", module)
		return ExitFailure
	}
	if err != nil {
		_, _ = fmt.Fprintf(out.Stderr, "%s alerts: %v\n", module, err)
		return ExitFailure
	}
	return writeJSON(out, data)
}

// SummaryCommand prints the dashboard home counters.
func (s *Session) SummaryCommand(ctx context.Context, out Output) int {
	out = out.withDefaults()
	var sum overview.Summary
	if err := s.Deps.API.Get(ctx, "/api/dashboard", &sum); err != nil {
		_, _ = fmt.Fprintf(out.Stderr, "summary: %v\n", err)
		return ExitFailure
	}
	if out.JSON {
		return writeJSON(out, sum)
	}
	w := out.Stdout
	_, _ = fmt.Fprintf(w, "Inventory items:   %d (%s)\n", sum.TotalItems, sum.InventoryValueLabel)
	_, _ = fmt.Fprintf(w, "Low stock:         %d\n", sum.LowStockCount)
	_, _ = fmt.Fprintf(w, "Expiring soon:     %d\n", sum.ExpiringCount)
	_, _ = fmt.Fprintf(w, "Open orders:       %d (%d pending, %d delayed)\n", sum.OpenOrders, sum.PendingOrders, sum.DelayedOrders)
	_, _ = fmt.Fprintf(w, "Active suppliers:  %d\n", sum.ActiveSuppliers)
	return ExitOK
}
