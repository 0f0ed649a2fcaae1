// Package storage implements the durable snapshot store for orders and
// users. Each save rewrites the whole data file: the data sets are
// bounded (100 orders, 50 users) and the caller saves after every
// mutating operation, so incremental writes would buy nothing.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bibagei/Hudoleev-kursovaya/internal/config"
	"github.com/bibagei/Hudoleev-kursovaya/internal/models/errs"
	"github.com/bibagei/Hudoleev-kursovaya/internal/models/order"
	"github.com/bibagei/Hudoleev-kursovaya/internal/models/user"
)

// FileStore persists both entity sets as JSON files in the data
// directory. A write goes to a temp file first and is renamed into
// place, so a crash mid-save never truncates the previous snapshot.
type FileStore struct {
	ordersPath string
	usersPath  string
}

func NewFileStore(cfg *config.Config) (*FileStore, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil dependency: config")
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{
		ordersPath: filepath.Join(cfg.DataDir, cfg.OrdersFile),
		usersPath:  filepath.Join(cfg.DataDir, cfg.UsersFile),
	}, nil
}

// LoadOrders reads the orders snapshot. Returns errs.ErrNotFound when
// the file does not exist yet, which triggers the bootstrap path.
func (s *FileStore) LoadOrders() ([]*order.Order, error) {
	var orders []*order.Order
	if err := load(s.ordersPath, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// SaveOrders replaces the orders snapshot.
func (s *FileStore) SaveOrders(orders []*order.Order) error {
	return save(s.ordersPath, orders)
}

// LoadUsers reads the users snapshot. Returns errs.ErrNotFound when
// the file does not exist yet.
func (s *FileStore) LoadUsers() ([]*user.User, error) {
	var users []*user.User
	if err := load(s.usersPath, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// SaveUsers replaces the users snapshot.
func (s *FileStore) SaveUsers(users []*user.User) error {
	return save(s.usersPath, users)
}

func load(path string, dst interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s: %w", path, errs.ErrNotFound)
		}
		return fmt.Errorf("read %s: %w", path, errs.ErrPersistence)
	}
	if err = json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode %s: %w", path, errs.ErrPersistence)
	}
	return nil
}

func save(path string, src interface{}) error {
	data, err := json.MarshalIndent(src, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, errs.ErrPersistence)
	}

	tmp := path + ".tmp"
	if err = os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, errs.ErrPersistence)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, errs.ErrPersistence)
	}
	return nil
}
