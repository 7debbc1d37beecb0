package dashboard

import (
	"context"

	"github.com/odyssey-erp/supplyhub/internal/inventory"
	"github.com/odyssey-erp/supplyhub/internal/orders"
	"github.com/odyssey-erp/supplyhub/internal/query"
	"github.com/odyssey-erp/supplyhub/internal/suppliers"
)

// InventoryView is the inventory module view.
type InventoryView = View[inventory.Item, inventory.Input, inventory.Filters, inventory.FiltersPatch]

// OrderView is the purchase order module view.
type OrderView = View[orders.Order, orders.Input, orders.Filters, orders.FiltersPatch]

// SupplierView is the supplier module view.
type SupplierView = View[suppliers.Supplier, suppliers.Input, suppliers.Filters, suppliers.FiltersPatch]

// NewInventoryView builds the inventory view.
func NewInventoryView(deps Deps) *InventoryView {
	return newView(deps, moduleDef[inventory.Item, inventory.Input, inventory.Filters, inventory.FiltersPatch]{
		module:   inventory.Module,
		noun:     "Inventory item",
		defaults: inventory.DefaultFilters,
		apply:    inventory.Apply,
		parse:    inventory.ParsePatch,
		id:       func(i inventory.Item) string { return i.ID },
		input:    inventory.Item.Input,
		validate: inventory.Validate,
		draft: func(context.Context, API) (inventory.Input, error) {
			return inventory.NewInput(), nil
		},
	})
}

// NewOrderView builds the purchase order view. Create defaults come from
// the API so the order number is the next free one.
func NewOrderView(deps Deps) *OrderView {
	return newView(deps, moduleDef[orders.Order, orders.Input, orders.Filters, orders.FiltersPatch]{
		module:   orders.Module,
		noun:     "Order",
		defaults: orders.DefaultFilters,
		apply:    orders.Apply,
		parse:    orders.ParsePatch,
		id:       func(o orders.Order) string { return o.ID },
		input:    orders.Order.Input,
		validate: orders.Validate,
		draft: func(ctx context.Context, api API) (orders.Input, error) {
			var in orders.Input
			err := api.Get(ctx, "/api/orders/draft", &in)
			return in, err
		},
	})
}

// NewSupplierView builds the supplier view.
func NewSupplierView(deps Deps) *SupplierView {
	return newView(deps, moduleDef[suppliers.Supplier, suppliers.Input, suppliers.Filters, suppliers.FiltersPatch]{
		module:   suppliers.Module,
		noun:     "Supplier",
		defaults: suppliers.DefaultFilters,
		apply:    suppliers.Apply,
		parse:    suppliers.ParsePatch,
		id:       func(s suppliers.Supplier) string { return s.ID },
		input:    suppliers.Supplier.Input,
		validate: suppliers.Validate,
		draft: func(context.Context, API) (suppliers.Input, error) {
			return suppliers.NewInput(), nil
		},
	})
}

// InventoryAlerts loads low stock and expiring items.
func InventoryAlerts(ctx context.Context, deps Deps) query.Result[inventory.Alerts] {
	return fetchAlerts[inventory.Alerts](ctx, deps, inventory.Module)
}

// OrderAlerts loads pending and delayed orders.
func OrderAlerts(ctx context.Context, deps Deps) query.Result[orders.Alerts] {
	return fetchAlerts[orders.Alerts](ctx, deps, orders.Module)
}

// SupplierAlerts loads low-rated and inactive suppliers.
func SupplierAlerts(ctx context.Context, deps Deps) query.Result[suppliers.Alerts] {
	return fetchAlerts[suppliers.Alerts](ctx, deps, suppliers.Module)
}
