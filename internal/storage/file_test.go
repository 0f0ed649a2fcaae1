package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bibagei/Hudoleev-kursovaya/internal/config"
	"github.com/bibagei/Hudoleev-kursovaya/internal/models/errs"
	"github.com/bibagei/Hudoleev-kursovaya/internal/models/order"
	"github.com/bibagei/Hudoleev-kursovaya/internal/models/user"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*FileStore, *config.Config) {
	t.Helper()
	cfg := &config.Config{
		DataDir:    t.TempDir(),
		OrdersFile: "orders.json",
		UsersFile:  "users.json",
	}
	store, err := NewFileStore(cfg)
	require.NoError(t, err)
	return store, cfg
}

func TestFileStore_LoadMissingSnapshots(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.LoadOrders()
	assert.ErrorIs(t, err, errs.ErrNotFound)

	_, err = store.LoadUsers()
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestFileStore_OrdersRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)

	orders := []*order.Order{
		{
			ID:              uuid.NewString(),
			Name:            "Camera A",
			Brand:           "Acme",
			FullName:        "John Smith",
			Phone:           "5550100",
			Status:          "accepted",
			Price:           decimal.RequireFromString("199.99"),
			DateAppointment: "01-06-2024",
			DateIssue:       order.InProgress,
		},
		{
			ID:              uuid.NewString(),
			Name:            "Drum",
			Price:           decimal.NewFromInt(50),
			DateAppointment: "02-06-2024",
			DateIssue:       "10-06-2024",
		},
	}

	require.NoError(t, store.SaveOrders(orders))

	got, err := store.LoadOrders()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, orders[0].ID, got[0].ID)
	assert.Equal(t, "Camera A", got[0].Name)
	assert.True(t, orders[0].Price.Equal(got[0].Price))
	assert.Equal(t, order.InProgress, got[0].DateIssue)
	assert.Equal(t, "10-06-2024", got[1].DateIssue)
}

func TestFileStore_UsersRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)

	users := []*user.User{
		{ID: uuid.NewString(), Login: "admin", Password: "$2a$04$hash", Role: user.RoleAdmin},
	}

	require.NoError(t, store.SaveUsers(users))

	got, err := store.LoadUsers()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, users[0].ID, got[0].ID)
	assert.Equal(t, user.RoleAdmin, got[0].Role)
	assert.Equal(t, "$2a$04$hash", got[0].Password)
}

func TestFileStore_SaveReplacesSnapshot(t *testing.T) {
	store, cfg := newTestStore(t)

	require.NoError(t, store.SaveOrders([]*order.Order{{ID: "one", Price: decimal.Zero}}))
	require.NoError(t, store.SaveOrders(nil))

	got, err := store.LoadOrders()
	require.NoError(t, err)
	assert.Empty(t, got)

	// The temp file never survives a completed save.
	_, err = os.Stat(filepath.Join(cfg.DataDir, cfg.OrdersFile+".tmp"))
	assert.True(t, os.IsNotExist(err))
}

func TestFileStore_CorruptSnapshot(t *testing.T) {
	store, cfg := newTestStore(t)

	path := filepath.Join(cfg.DataDir, cfg.OrdersFile)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := store.LoadOrders()
	assert.ErrorIs(t, err, errs.ErrPersistence)
}
