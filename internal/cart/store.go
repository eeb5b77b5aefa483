// Package cart holds the client's view of the basket and keeps it in step
// with the remote persisted cart.
package cart

import (
	"sync"

	"github.com/chandnsingh/groceryfrontend/internal/domain"
)

// Store owns the in-memory line-item collection. No two lines share a
// (productID, unit) pair; adds on an existing pair increment quantity.
// Nothing outside this package mutates the collection.
type Store struct {
	mu    sync.RWMutex
	items []domain.LineItem
}

func NewStore() *Store {
	return &Store{}
}

// Items returns a copy of the collection in insertion order.
func (s *Store) Items() []domain.LineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.LineItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *Store) Get(productID, unit string) (domain.LineItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.index(productID, unit); i >= 0 {
		return s.items[i], true
	}
	return domain.LineItem{}, false
}

// Add increments the existing (productID, unit) line keeping its cached unit
// price, or inserts a new line with quantity 1 at the given price. Returns
// the line after mutation.
func (s *Store) Add(product domain.Product, unit string, price float64) domain.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.index(product.ID, unit); i >= 0 {
		s.items[i].Quantity++
		return s.items[i]
	}
	li := domain.LineItem{
		Product:      domain.ProductRef{Product: product},
		SelectedUnit: unit,
		Price:        price,
		Quantity:     1,
	}
	s.items = append(s.items, li)
	return li
}

// Decrease decrements the line's quantity, removing the line when it would
// drop below 1. ok is false when no such line exists.
func (s *Store) Decrease(productID, unit string) (line domain.LineItem, removed, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(productID, unit)
	if i < 0 {
		return domain.LineItem{}, false, false
	}
	if s.items[i].Quantity > 1 {
		s.items[i].Quantity--
		return s.items[i], false, true
	}
	line = s.items[i]
	s.items = append(s.items[:i], s.items[i+1:]...)
	return line, true, true
}

// Remove deletes the line; absent lines are a no-op.
func (s *Store) Remove(productID, unit string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(productID, unit)
	if i < 0 {
		return false
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return true
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// ReplaceAll swaps in a server snapshot wholesale.
func (s *Store) ReplaceAll(items []domain.LineItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make([]domain.LineItem, len(items))
	copy(s.items, items)
}

// caller holds the lock
func (s *Store) index(productID, unit string) int {
	for i, li := range s.items {
		if li.ProductID() == productID && li.SelectedUnit == unit {
			return i
		}
	}
	return -1
}
