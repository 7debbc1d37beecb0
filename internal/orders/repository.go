package orders

import (
	"context"
	"fmt"
	"sync"

	"github.com/odyssey-erp/supplyhub/internal/shared"
)

// Repository stores orders.
type Repository interface {
	List(ctx context.Context) ([]Order, error)
	Get(ctx context.Context, id string) (Order, error)
	Insert(ctx context.Context, o Order) error
	Replace(ctx context.Context, o Order) error
}

// MemoryRepository keeps orders in insertion order and enforces unique
// order numbers.
type MemoryRepository struct {
	mu     sync.RWMutex
	orders []Order
	index  map[string]int
}

// NewMemoryRepository builds a repository seeded with orders.
func NewMemoryRepository(seed []Order) *MemoryRepository {
	repo := &MemoryRepository{index: make(map[string]int, len(seed))}
	for _, o := range seed {
		repo.index[o.ID] = len(repo.orders)
		repo.orders = append(repo.orders, o)
	}
	return repo
}

// List returns a snapshot of every order.
func (r *MemoryRepository) List(ctx context.Context) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Order(nil), r.orders...), nil
}

// Get returns one order.
func (r *MemoryRepository) Get(ctx context.Context, id string) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pos, ok := r.index[id]
	if !ok {
		return Order{}, fmt.Errorf("order %q: %w", id, shared.ErrNotFound)
	}
	return r.orders[pos], nil
}

// Insert appends a new order.
func (r *MemoryRepository) Insert(ctx context.Context, o Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.index[o.ID]; ok {
		return fmt.Errorf("order %q: %w", o.ID, shared.ErrDuplicate)
	}
	if r.numberTaken(o.OrderNumber, "") {
		return fmt.Errorf("order number %q: %w", o.OrderNumber, shared.ErrDuplicate)
	}
	r.index[o.ID] = len(r.orders)
	r.orders = append(r.orders, o)
	return nil
}

// Replace overwrites an existing order in place.
func (r *MemoryRepository) Replace(ctx context.Context, o Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	pos, ok := r.index[o.ID]
	if !ok {
		return fmt.Errorf("order %q: %w", o.ID, shared.ErrNotFound)
	}
	if r.numberTaken(o.OrderNumber, o.ID) {
		return fmt.Errorf("order number %q: %w", o.OrderNumber, shared.ErrDuplicate)
	}
	r.orders[pos] = o
	return nil
}

func (r *MemoryRepository) numberTaken(number, exceptID string) bool {
	for _, existing := range r.orders {
		if existing.OrderNumber == number && existing.ID != exceptID {
			return true
		}
	}
	return false
}
