// Package filterstore holds the filter criteria of one list view.
package filterstore

import (
	"net/url"
	"sync"
)

// Mergeable is a criteria value that accepts partial updates of type P.
type Mergeable[F any, P any] interface {
	Merge(P) F
}

// Store holds the current criteria. Any value is accepted; criteria that
// match nothing yield an empty view, not an error.
type Store[F Mergeable[F, P], P any] struct {
	mu       sync.RWMutex
	defaults func() F
	current  F
}

// New builds a Store starting from defaults().
func New[F Mergeable[F, P], P any](defaults func() F) *Store[F, P] {
	return &Store[F, P]{defaults: defaults, current: defaults()}
}

// Get returns the current criteria.
func (s *Store[F, P]) Get() F {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Set merges patch over the current criteria and returns the result.
// Fields the patch leaves unset keep their value.
func (s *Store[F, P]) Set(patch P) F {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = s.current.Merge(patch)
	return s.current
}

// SetFromQuery merges the patch parse builds from query parameters.
func (s *Store[F, P]) SetFromQuery(values url.Values, parse func(url.Values) P) F {
	return s.Set(parse(values))
}

// Reset restores the defaults. Views call it when they mount.
func (s *Store[F, P]) Reset() F {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = s.defaults()
	return s.current
}
