package users

import (
	"sync"

	"github.com/bibagei/Hudoleev-kursovaya/internal/models/errs"
	"github.com/bibagei/Hudoleev-kursovaya/internal/models/user"
)

// MaxUsers bounds the number of staff accounts.
const MaxUsers = 50

// Repository is the in-memory ordered collection of staff accounts.
type Repository struct {
	mu    sync.RWMutex
	items []*user.User
}

func NewRepository() *Repository {
	return &Repository{items: make([]*user.User, 0, MaxUsers)}
}

// Reset replaces the whole collection, e.g. after loading a snapshot.
func (r *Repository) Reset(items []*user.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = items
	if r.items == nil {
		r.items = make([]*user.User, 0, MaxUsers)
	}
}

// Add appends an account. Fails with errs.ErrCapacityExceeded when
// full and errs.ErrConflict when the login is taken.
func (r *Repository) Add(u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) >= MaxUsers {
		return errs.ErrCapacityExceeded
	}
	for _, existing := range r.items {
		if existing.Login == u.Login {
			return errs.ErrConflict
		}
	}
	r.items = append(r.items, u)
	return nil
}

// Get resolves an account by its immutable ID.
func (r *Repository) Get(id string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.items {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, errs.ErrNotFound
}

// GetByLogin resolves an account by login.
func (r *Repository) GetByLogin(login string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.items {
		if u.Login == login {
			return u, nil
		}
	}
	return nil, errs.ErrNotFound
}

// Remove deletes the account with the given ID.
func (r *Repository) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, u := range r.items {
		if u.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return errs.ErrNotFound
}

// All returns the live ordered slice.
func (r *Repository) All() []*user.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items
}

// Len reports the current number of accounts.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
