package app

import (
	"context"
	"log/slog"

	"github.com/odyssey-erp/supplyhub/internal/inventory"
	"github.com/odyssey-erp/supplyhub/internal/masterdata"
	"github.com/odyssey-erp/supplyhub/internal/orders"
	"github.com/odyssey-erp/supplyhub/internal/overview"
	"github.com/odyssey-erp/supplyhub/internal/shared"
	"github.com/odyssey-erp/supplyhub/internal/suppliers"
)

// Services holds the domain services behind the API.
type Services struct {
	MasterData *masterdata.Service
	Inventory  *inventory.Service
	Orders     *orders.Service
	Suppliers  *suppliers.Service
	Overview   *overview.Service
}

// NewServices wires the in-memory data source. With seed false every
// collection starts empty; products and warehouses are always seeded since
// they are read only. events may be nil.
func NewServices(logger *slog.Logger, events shared.ChangePublisher, seed bool) *Services {
	md := masterdata.NewService(masterdata.NewMemoryRepository(masterdata.SeedProducts(), masterdata.SeedWarehouses()))

	var (
		items []inventory.Item
		ords  []orders.Order
		sups  []suppliers.Supplier
	)
	if seed {
		items = inventory.SeedItems()
		ords = orders.SeedOrders()
		sups = suppliers.SeedSuppliers()
	}

	sup := suppliers.NewService(suppliers.NewMemoryRepository(sups), events, logger)
	inv := inventory.NewService(inventory.NewMemoryRepository(items), md, events, logger)
	ord := orders.NewService(orders.NewMemoryRepository(ords), md, SupplierDirectory(sup), events, logger)

	return &Services{
		MasterData: md,
		Inventory:  inv,
		Orders:     ord,
		Suppliers:  sup,
		Overview:   overview.NewService(inv, ord, sup),
	}
}

// SupplierDirectory resolves order supplier references against the
// supplier service.
func SupplierDirectory(svc *suppliers.Service) orders.SupplierDirectory {
	return orders.SupplierDirectoryFunc(func(ctx context.Context, id string) (orders.SupplierRef, error) {
		s, err := svc.Get(ctx, id)
		if err != nil {
			return orders.SupplierRef{}, err
		}
		return orders.SupplierRef{ID: s.ID, Name: s.CompanyName, Email: s.Email, Phone: s.Phone}, nil
	})
}
