package masterdata

import (
	"context"
	"fmt"
	"sync"

	"github.com/odyssey-erp/supplyhub/internal/shared"
)

// Repository reads master data.
type Repository interface {
	ListProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, id string) (Product, error)
	ListWarehouses(ctx context.Context) ([]Warehouse, error)
	GetWarehouse(ctx context.Context, id string) (Warehouse, error)
}

// MemoryRepository keeps master data in insertion order.
type MemoryRepository struct {
	mu         sync.RWMutex
	products   []Product
	warehouses []Warehouse
}

// NewMemoryRepository builds a repository holding the given records.
func NewMemoryRepository(products []Product, warehouses []Warehouse) *MemoryRepository {
	return &MemoryRepository{
		products:   append([]Product(nil), products...),
		warehouses: append([]Warehouse(nil), warehouses...),
	}
}

// ListProducts returns every product.
func (r *MemoryRepository) ListProducts(ctx context.Context) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Product(nil), r.products...), nil
}

// GetProduct returns a product by id.
func (r *MemoryRepository) GetProduct(ctx context.Context, id string) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, fmt.Errorf("product %q: %w", id, shared.ErrNotFound)
}

// ListWarehouses returns every warehouse.
func (r *MemoryRepository) ListWarehouses(ctx context.Context) ([]Warehouse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Warehouse(nil), r.warehouses...), nil
}

// GetWarehouse returns a warehouse by id.
func (r *MemoryRepository) GetWarehouse(ctx context.Context, id string) (Warehouse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, w := range r.warehouses {
		if w.ID == id {
			return w, nil
		}
	}
	return Warehouse{}, fmt.Errorf("warehouse %q: %w", id, shared.ErrNotFound)
}
