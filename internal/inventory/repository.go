package inventory

import (
	"context"
	"fmt"
	"sync"

	"github.com/odyssey-erp/supplyhub/internal/shared"
)

// Repository stores inventory items.
type Repository interface {
	List(ctx context.Context) ([]Item, error)
	Get(ctx context.Context, id string) (Item, error)
	Insert(ctx context.Context, item Item) error
	Replace(ctx context.Context, item Item) error
}

// MemoryRepository keeps items in insertion order.
type MemoryRepository struct {
	mu    sync.RWMutex
	items []Item
	index map[string]int
}

// NewMemoryRepository builds a repository seeded with items.
func NewMemoryRepository(items []Item) *MemoryRepository {
	repo := &MemoryRepository{index: make(map[string]int, len(items))}
	for _, item := range items {
		repo.index[item.ID] = len(repo.items)
		repo.items = append(repo.items, item)
	}
	return repo
}

// List returns a snapshot of every item.
func (r *MemoryRepository) List(ctx context.Context) ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Item(nil), r.items...), nil
}

// Get returns one item.
func (r *MemoryRepository) Get(ctx context.Context, id string) (Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pos, ok := r.index[id]
	if !ok {
		return Item{}, fmt.Errorf("inventory item %q: %w", id, shared.ErrNotFound)
	}
	return r.items[pos], nil
}

// Insert appends a new item.
func (r *MemoryRepository) Insert(ctx context.Context, item Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.index[item.ID]; ok {
		return fmt.Errorf("inventory item %q: %w", item.ID, shared.ErrDuplicate)
	}
	r.index[item.ID] = len(r.items)
	r.items = append(r.items, item)
	return nil
}

// Replace overwrites an existing item in place.
func (r *MemoryRepository) Replace(ctx context.Context, item Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	pos, ok := r.index[item.ID]
	if !ok {
		return fmt.Errorf("inventory item %q: %w", item.ID, shared.ErrNotFound)
	}
	r.items[pos] = item
	return nil
}
