package inventory

import (
	"time"

	"github.com/odyssey-erp/supplyhub/internal/masterdata"
	"github.com/odyssey-erp/supplyhub/internal/shared"
)

// SeedItems returns the demo stock records.
func SeedItems() []Item {
	p := masterdata.SeedProducts()
	w := masterdata.SeedWarehouses()
	updated := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)
	return []Item{
		{ID: "inv1", Quantity: 150, Location: "Aisle 5, Shelf B", Status: StatusAvailable, ExpiryDate: shared.StringPtr("2024-06-15"), LotNumber: shared.StringPtr("LOT-2024-001"), Product: p[0], Warehouse: w[0], LastUpdated: updated},
		{ID: "inv2", Quantity: 75, Location: "Aisle 3, Shelf A", Status: StatusReserved, LotNumber: shared.StringPtr("LOT-2024-002"), Product: p[1], Warehouse: w[1], LastUpdated: updated},
		{ID: "inv3", Quantity: 25, Location: "Aisle 1, Shelf C", Status: StatusDamaged, LotNumber: shared.StringPtr("LOT-2024-003"), Product: p[2], Warehouse: w[0], LastUpdated: updated},
		{ID: "inv4", Quantity: 100, Location: "Aisle 2, Shelf D", Status: StatusExpired, ExpiryDate: shared.StringPtr("2024-01-15"), LotNumber: shared.StringPtr("LOT-2023-001"), Product: p[3], Warehouse: w[1], LastUpdated: updated},
		{ID: "inv5", Quantity: 50, Location: "In Transit", Status: StatusInTransit, LotNumber: shared.StringPtr("LOT-2024-004"), Product: p[4], Warehouse: w[0], LastUpdated: updated},
	}
}
