package orders

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestValidateRequiresAtLeastOneItem(t *testing.T) {
	in := SeedOrders()[0].Input()
	in.Items = nil

	errs := Validate(in)
	require.Equal(t, "At least one item is required", errs["items"])
}

func TestValidateLineRules(t *testing.T) {
	in := SeedOrders()[0].Input()
	in.Items = append(in.Items, LineInput{ProductID: "", Quantity: 0, UnitPrice: decimal.NewFromInt(-3)})

	errs := Validate(in)
	require.Equal(t, "Product is required", errs["items[1].productId"])
	require.Equal(t, "Quantity must be at least 1", errs["items[1].quantity"])
	require.Equal(t, "Unit price must be positive", errs["items[1].unitPrice"])
	require.NotContains(t, errs, "items[0].quantity")
}

func TestValidateHeaderMessages(t *testing.T) {
	errs := Validate(Input{Items: []LineInput{{ProductID: "prod1", Quantity: 1}}, Status: "LOST"})
	require.Equal(t, "Order number is required", errs["orderNumber"])
	require.Equal(t, "Supplier is required", errs["supplierId"])
	require.Equal(t, "Order date is required", errs["orderDate"])
	require.Equal(t, "Expected delivery date is required", errs["expectedDeliveryDate"])
	require.Equal(t, "Invalid status", errs["status"])
}

func TestRecalculate(t *testing.T) {
	o := SeedOrders()[0]
	require.Equal(t, "22500", o.TotalAmount.String())

	o.Items = append(o.Items, LineItem{Quantity: 3, UnitPrice: decimal.RequireFromString("19.99")})
	o.Recalculate()
	require.Equal(t, "22559.97", o.TotalAmount.String())
}

func TestNextOrderNumber(t *testing.T) {
	existing := []Order{
		{OrderNumber: "ORD-2024-001"},
		{OrderNumber: "ORD-2024-017"},
		{OrderNumber: "ORD-2023-120"},
		{OrderNumber: "ORD-2024-XYZ"},
	}
	require.Equal(t, "ORD-2024-018", NextOrderNumber(existing, 2024))
	require.Equal(t, "ORD-2025-001", NextOrderNumber(existing, 2025))
}

func TestNewInputDefaults(t *testing.T) {
	today := time.Date(2024, time.May, 20, 12, 0, 0, 0, time.UTC)
	in := NewInput("ORD-2024-002", today)

	require.Equal(t, StatusPending, in.Status)
	require.Equal(t, "2024-05-20", in.OrderDate)
	require.Equal(t, "2024-06-03", in.ExpectedDeliveryDate)
	require.Len(t, in.Items, 1)
	require.Equal(t, 1, in.Items[0].Quantity)
	require.Equal(t, "Product is required", Validate(in)["items[0].productId"])
}

func TestBuildAlerts(t *testing.T) {
	now := time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC)
	all := []Order{
		{ID: "a", Status: StatusPending, ExpectedDeliveryDate: "2024-03-30"},
		{ID: "b", Status: StatusInTransit, ExpectedDeliveryDate: "2024-04-01"},
		{ID: "c", Status: StatusInTransit, ExpectedDeliveryDate: "2024-05-01"},
		{ID: "d", Status: StatusDelivered, ExpectedDeliveryDate: "2024-01-01"},
	}
	alerts := BuildAlerts(all, now)
	require.Len(t, alerts.Pending, 1)
	require.Equal(t, "a", alerts.Pending[0].ID)
	require.Len(t, alerts.Delayed, 1)
	require.Equal(t, "b", alerts.Delayed[0].ID)
}
