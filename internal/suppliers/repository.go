package suppliers

import (
	"context"
	"fmt"
	"sync"

	"github.com/odyssey-erp/supplyhub/internal/shared"
)

// Repository stores suppliers.
type Repository interface {
	List(ctx context.Context) ([]Supplier, error)
	Get(ctx context.Context, id string) (Supplier, error)
	Insert(ctx context.Context, s Supplier) error
	Replace(ctx context.Context, s Supplier) error
}

// MemoryRepository keeps suppliers in insertion order.
type MemoryRepository struct {
	mu        sync.RWMutex
	suppliers []Supplier
	index     map[string]int
}

// NewMemoryRepository builds a repository seeded with suppliers.
func NewMemoryRepository(seed []Supplier) *MemoryRepository {
	repo := &MemoryRepository{index: make(map[string]int, len(seed))}
	for _, s := range seed {
		repo.index[s.ID] = len(repo.suppliers)
		repo.suppliers = append(repo.suppliers, s)
	}
	return repo
}

// List returns a snapshot of every supplier.
func (r *MemoryRepository) List(ctx context.Context) ([]Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Supplier(nil), r.suppliers...), nil
}

// Get returns one supplier.
func (r *MemoryRepository) Get(ctx context.Context, id string) (Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pos, ok := r.index[id]
	if !ok {
		return Supplier{}, fmt.Errorf("supplier %q: %w", id, shared.ErrNotFound)
	}
	return r.suppliers[pos], nil
}

// Insert appends a new supplier.
func (r *MemoryRepository) Insert(ctx context.Context, s Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.index[s.ID]; ok {
		return fmt.Errorf("supplier %q: %w", s.ID, shared.ErrDuplicate)
	}
	r.index[s.ID] = len(r.suppliers)
	r.suppliers = append(r.suppliers, s)
	return nil
}

// Replace overwrites an existing supplier in place.
func (r *MemoryRepository) Replace(ctx context.Context, s Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	pos, ok := r.index[s.ID]
	if !ok {
		return fmt.Errorf("supplier %q: %w", s.ID, shared.ErrNotFound)
	}
	r.suppliers[pos] = s
	return nil
}
