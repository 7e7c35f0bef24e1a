// Package store holds the in-memory product catalog.
package store

import (
	"slices"
	"sync"

	"github.com/tuanvumaihuynh/hvac-catalog/internal/model"
)

// ProductStore is the authoritative in-memory collection of products keyed by
// id. It is safe for concurrent use; writes take an exclusive lock and readers
// receive snapshot copies, so a reader never observes a partial update.
type ProductStore struct {
	mu    sync.RWMutex
	byID  map[string]int
	items []model.Product
}

func NewProductStore() *ProductStore {
	return &ProductStore{
		byID: make(map[string]int),
	}
}

// Insert upserts product by id. A second insert with the same id replaces the
// first in place, keeping its original position.
func (s *ProductStore) Insert(product model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.insertLocked(product)
}

// Seed inserts products in order under a single lock.
func (s *ProductStore) Seed(products []model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range products {
		s.insertLocked(p)
	}
}

func (s *ProductStore) insertLocked(product model.Product) {
	if idx, ok := s.byID[product.ID]; ok {
		s.items[idx] = product
		return
	}

	s.byID[product.ID] = len(s.items)
	s.items = append(s.items, product)
}

// GetByID returns the product with the given id. The boolean is false when no
// such product exists; that is an expected outcome, not an error.
func (s *ProductStore) GetByID(id string) (model.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byID[id]
	if !ok {
		return model.Product{}, false
	}
	return s.items[idx], true
}

// GetAll returns a copy of the full collection in insertion order.
func (s *ProductStore) GetAll() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.items)
}

// Len returns the number of stored products.
func (s *ProductStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}
