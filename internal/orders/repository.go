package orders

import (
	"sync"

	"github.com/bibagei/Hudoleev-kursovaya/internal/models/errs"
	"github.com/bibagei/Hudoleev-kursovaya/internal/models/order"
)

// MaxOrders bounds the repository size.
const MaxOrders = 100

// Repository is the in-memory ordered collection of orders. It owns
// all order instances for the lifetime of a session; durability is the
// caller's concern. The mutex matters only if the core is ever exposed
// beyond a single console session, but every pack repository guards
// its state, so this one does too.
type Repository struct {
	mu    sync.RWMutex
	items []*order.Order
}

func NewRepository() *Repository {
	return &Repository{items: make([]*order.Order, 0, MaxOrders)}
}

// Reset replaces the whole collection, e.g. after loading a snapshot.
func (r *Repository) Reset(items []*order.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = items
	if r.items == nil {
		r.items = make([]*order.Order, 0, MaxOrders)
	}
}

// Add appends an order, preserving insertion order. Fails with
// errs.ErrCapacityExceeded before any mutation when the repository is
// full.
func (r *Repository) Add(o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) >= MaxOrders {
		return errs.ErrCapacityExceeded
	}
	r.items = append(r.items, o)
	return nil
}

// Get resolves an order by its immutable ID.
func (r *Repository) Get(id string) (*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.items {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, errs.ErrNotFound
}

// Remove deletes the order with the given ID, shifting subsequent
// records down.
func (r *Repository) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, o := range r.items {
		if o.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return errs.ErrNotFound
}

// All returns the live ordered slice. Sorting reorders this same
// slice in place; callers must not append to it.
func (r *Repository) All() []*order.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items
}

// Len reports the current number of orders.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
