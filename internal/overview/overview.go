// Package overview builds the dashboard home summary and the series fed to
// the chart renderers.
package overview

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/odyssey-erp/supplyhub/internal/inventory"
	"github.com/odyssey-erp/supplyhub/internal/orders"
	"github.com/odyssey-erp/supplyhub/internal/shared"
	"github.com/odyssey-erp/supplyhub/internal/suppliers"
)

// InventorySource lists inventory.
type InventorySource interface {
	List(ctx context.Context, filters inventory.Filters) ([]inventory.Item, error)
}

// OrderSource lists orders.
type OrderSource interface {
	List(ctx context.Context, filters orders.Filters) ([]orders.Order, error)
}

// SupplierSource lists suppliers.
type SupplierSource interface {
	List(ctx context.Context, filters suppliers.Filters) ([]suppliers.Supplier, error)
}

// Slice is one segment of a distribution chart.
type Slice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// MonthPoint is one month of order activity.
type MonthPoint struct {
	Month  string          `json:"month"`
	Orders int             `json:"orders"`
	Amount decimal.Decimal `json:"amount"`
}

// Summary is the dashboard home payload.
type Summary struct {
	TotalItems           int             `json:"totalItems"`
	InventoryValue       decimal.Decimal `json:"inventoryValue"`
	InventoryValueLabel  string          `json:"inventoryValueLabel"`
	LowStockCount        int             `json:"lowStockCount"`
	ExpiringCount        int             `json:"expiringCount"`
	OpenOrders           int             `json:"openOrders"`
	PendingOrders        int             `json:"pendingOrders"`
	DelayedOrders        int             `json:"delayedOrders"`
	ActiveSuppliers      int             `json:"activeSuppliers"`
	CategoryDistribution []Slice         `json:"categoryDistribution"`
	StatusDistribution   []Slice         `json:"statusDistribution"`
	MonthlyOrders        []MonthPoint    `json:"monthlyOrders"`
	GeneratedAt          time.Time       `json:"generatedAt"`
}

// Service assembles summaries.
type Service struct {
	inventory InventorySource
	orders    OrderSource
	suppliers SupplierSource
	now       func() time.Time
}

// NewService builds Service.
func NewService(inv InventorySource, ord OrderSource, sup SupplierSource) *Service {
	return &Service{inventory: inv, orders: ord, suppliers: sup, now: time.Now}
}

// Summary loads the three collections concurrently and aggregates them.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	var (
		items []inventory.Item
		ords  []orders.Order
		sups  []suppliers.Supplier
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.inventory.List(gctx, inventory.DefaultFilters())
		return err
	})
	g.Go(func() error {
		var err error
		ords, err = s.orders.List(gctx, orders.DefaultFilters())
		return err
	})
	g.Go(func() error {
		var err error
		sups, err = s.suppliers.List(gctx, suppliers.DefaultFilters())
		return err
	})
	if err := g.Wait(); err != nil {
		return Summary{}, fmt.Errorf("overview: summary: %w", err)
	}
	return Build(items, ords, sups, s.now()), nil
}

// Build aggregates already loaded collections.
func Build(items []inventory.Item, ords []orders.Order, sups []suppliers.Supplier, now time.Time) Summary {
	invAlerts := inventory.BuildAlerts(items, now)
	ordAlerts := orders.BuildAlerts(ords, now)
	value := inventory.TotalValue(items)

	sum := Summary{
		TotalItems:           len(items),
		InventoryValue:       value,
		InventoryValueLabel:  shared.FormatCurrency(value),
		LowStockCount:        len(invAlerts.LowStock),
		ExpiringCount:        len(invAlerts.Expiring),
		PendingOrders:        len(ordAlerts.Pending),
		DelayedOrders:        len(ordAlerts.Delayed),
		CategoryDistribution: categoryDistribution(items),
		StatusDistribution:   statusDistribution(items),
		MonthlyOrders:        monthlyOrders(ords),
		GeneratedAt:          now.UTC(),
	}
	for _, o := range ords {
		if o.Status != orders.StatusDelivered && o.Status != orders.StatusCancelled {
			sum.OpenOrders++
		}
	}
	for _, sup := range sups {
		if sup.IsActive {
			sum.ActiveSuppliers++
		}
	}
	return sum
}

// categoryDistribution counts units per product category, largest first.
func categoryDistribution(items []inventory.Item) []Slice {
	counts := map[string]int{}
	for _, item := range items {
		counts[item.Product.Category] += item.Quantity
	}
	out := make([]Slice, 0, len(counts))
	for name, v := range counts {
		out = append(out, Slice{Name: name, Value: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func statusDistribution(items []inventory.Item) []Slice {
	counts := map[inventory.Status]int{}
	for _, item := range items {
		counts[item.Status]++
	}
	out := make([]Slice, 0, len(inventory.Statuses))
	for _, status := range inventory.Statuses {
		out = append(out, Slice{Name: inventory.StatusBadges[status].Label, Value: counts[status]})
	}
	return out
}

// monthlyOrders groups orders by the YYYY-MM of their order date, oldest first.
func monthlyOrders(ords []orders.Order) []MonthPoint {
	byMonth := map[string]*MonthPoint{}
	for _, o := range ords {
		if len(o.OrderDate) < 7 {
			continue
		}
		month := o.OrderDate[:7]
		p, ok := byMonth[month]
		if !ok {
			p = &MonthPoint{Month: month, Amount: decimal.Zero}
			byMonth[month] = p
		}
		p.Orders++
		p.Amount = p.Amount.Add(o.TotalAmount)
	}
	out := make([]MonthPoint, 0, len(byMonth))
	for _, p := range byMonth {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}
