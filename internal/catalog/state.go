// Package catalog implements the client-side catalog core: local state
// synchronized with the record store, free-text filtering, and the edit
// session. The core never reaches the store itself; the command layer
// in internal/console calls it with store-confirmed records.
//
// Types in this package are single-session objects. They are not safe
// for concurrent use; the owning front end serializes access.
package catalog

import (
	"context"

	"github.com/fairyhunter13/catalog-console/internal/model"
)

// Lister loads the full product collection from the store.
type Lister interface {
	ListAll(ctx context.Context) ([]model.Product, error)
}

// DemoProducts returns the fixed dataset substituted when the initial
// load fails.
func DemoProducts() []model.Product {
	return []model.Product{
		{ID: "demo1", Name: "Sample Tee", Price: 19.99, Stock: 42},
		{ID: "demo2", Name: "Coffee Mug", Price: 9.5, Stock: 120},
		{ID: "demo3", Name: "Wireless Mouse", Price: 24.0, Stock: 17},
	}
}

// State is the local product collection, ordered newest first. It is
// mutated only after the corresponding store call has succeeded; a
// failed call leaves it exactly as before the attempt.
type State struct {
	products []model.Product
}

func NewState() *State {
	return &State{}
}

// Load replaces the collection wholesale with the store's contents.
// When the store is unreachable the fixed demo set is substituted and
// fallback is true; the collection is never left empty by a failed
// initial load.
func (s *State) Load(ctx context.Context, lister Lister) (fallback bool) {
	items, err := lister.ListAll(ctx)
	if err != nil {
		s.products = DemoProducts()
		return true
	}
	s.products = items
	return false
}

// ApplyCreate prepends a store-confirmed product, keeping the relative
// order of all existing entries.
func (s *State) ApplyCreate(p model.Product) {
	s.products = append([]model.Product{p}, s.products...)
}

// ApplyUpdate replaces the entry whose id matches p. No match is a
// no-op.
func (s *State) ApplyUpdate(p model.Product) {
	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p
			return
		}
	}
}

// ApplyDelete removes the entry with the given id. Absent ids are a
// no-op.
func (s *State) ApplyDelete(id string) {
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return
		}
	}
}

// Products returns the collection in order. Callers must not mutate the
// returned slice.
func (s *State) Products() []model.Product {
	return s.products
}

// Len returns the collection size.
func (s *State) Len() int {
	return len(s.products)
}
