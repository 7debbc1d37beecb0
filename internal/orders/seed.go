package orders

import (
	"github.com/shopspring/decimal"

	"github.com/odyssey-erp/supplyhub/internal/masterdata"
	"github.com/odyssey-erp/supplyhub/internal/shared"
)

// SeedOrders returns the demo purchase orders.
func SeedOrders() []Order {
	products := masterdata.SeedProducts()
	o := Order{
		ID:          "ord1",
		OrderNumber: "ORD-2024-001",
		Supplier: SupplierRef{
			ID:    "sup1",
			Name:  "Tech Components Inc.",
			Email: "john.smith@techcomponents.com",
			Phone: "+1 (555) 123-4567",
		},
		Items: []LineItem{
			{Product: products[0], Quantity: 50, UnitPrice: decimal.NewFromInt(450)},
		},
		Status:               StatusPending,
		OrderDate:            "2024-03-15",
		ExpectedDeliveryDate: "2024-03-30",
		Notes:                shared.StringPtr("Priority order for production line"),
	}
	o.Recalculate()
	return []Order{o}
}
