package overview

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/supplyhub/internal/inventory"
	"github.com/odyssey-erp/supplyhub/internal/orders"
	"github.com/odyssey-erp/supplyhub/internal/suppliers"
)

type staticInventory []inventory.Item

func (s staticInventory) List(context.Context, inventory.Filters) ([]inventory.Item, error) {
	return s, nil
}

type staticOrders []orders.Order

func (s staticOrders) List(context.Context, orders.Filters) ([]orders.Order, error) {
	return s, nil
}

type failingSuppliers struct{}

func (failingSuppliers) List(context.Context, suppliers.Filters) ([]suppliers.Supplier, error) {
	return nil, errors.New("store offline")
}

func TestBuildFromSeed(t *testing.T) {
	now := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	sum := Build(inventory.SeedItems(), orders.SeedOrders(), suppliers.SeedSuppliers(), now)

	require.Equal(t, 5, sum.TotalItems)
	require.Equal(t, "154460.75", sum.InventoryValue.StringFixed(2))
	require.Equal(t, 3, sum.LowStockCount)
	require.Equal(t, 1, sum.OpenOrders)
	require.Equal(t, 1, sum.PendingOrders)
	require.Equal(t, 2, sum.ActiveSuppliers)

	require.Equal(t, []Slice{{Name: "Electronics", Value: 375}, {Name: "Hardware", Value: 25}}, sum.CategoryDistribution)
	require.Len(t, sum.StatusDistribution, 5)
	require.Equal(t, Slice{Name: "Available", Value: 1}, sum.StatusDistribution[0])

	require.Len(t, sum.MonthlyOrders, 1)
	require.Equal(t, "2024-03", sum.MonthlyOrders[0].Month)
	require.Equal(t, "22500", sum.MonthlyOrders[0].Amount.String())
}

func TestSummaryPropagatesSourceErrors(t *testing.T) {
	svc := NewService(staticInventory(inventory.SeedItems()), staticOrders(orders.SeedOrders()), failingSuppliers{})
	_, err := svc.Summary(context.Background())
	require.ErrorContains(t, err, "store offline")
}
