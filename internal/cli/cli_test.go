package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/bibagei/Hudoleev-kursovaya/internal/config"
	"github.com/bibagei/Hudoleev-kursovaya/internal/models/errs"
	"github.com/bibagei/Hudoleev-kursovaya/internal/models/order"
	"github.com/bibagei/Hudoleev-kursovaya/internal/models/user"
	"github.com/bibagei/Hudoleev-kursovaya/internal/orders"
	"github.com/bibagei/Hudoleev-kursovaya/internal/users"
	"github.com/bibagei/Hudoleev-kursovaya/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// memStore keeps both snapshots in memory and reports "not found"
// until the first save, which exercises the bootstrap paths.
type memStore struct {
	orders []*order.Order
	users  []*user.User
}

func (m *memStore) LoadOrders() ([]*order.Order, error) {
	if m.orders == nil {
		return nil, errs.ErrNotFound
	}
	return m.orders, nil
}

func (m *memStore) SaveOrders(o []*order.Order) error {
	if o == nil {
		o = []*order.Order{}
	}
	m.orders = o
	return nil
}

func (m *memStore) LoadUsers() ([]*user.User, error) {
	if m.users == nil {
		return nil, errs.ErrNotFound
	}
	return m.users, nil
}

func (m *memStore) SaveUsers(u []*user.User) error {
	m.users = u
	return nil
}

func newTestApp(t *testing.T, input string) (*App, *bytes.Buffer, *memStore) {
	t.Helper()

	store := &memStore{}
	cfg := &config.Config{PasswordHashCost: bcrypt.MinCost}

	orderService, err := orders.NewService(orders.NewRepository(), store, logger.NewNop())
	require.NoError(t, err)
	userService, err := users.NewService(users.NewRepository(), store, logger.NewNop(), cfg)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, userService.Load(ctx))
	require.NoError(t, orderService.Load(ctx))

	out := &bytes.Buffer{}
	app, err := New(strings.NewReader(input), out, orderService, userService, logger.NewNop())
	require.NoError(t, err)
	return app, out, store
}

func TestRun_AdminAddsAndListsOrder(t *testing.T) {
	input := strings.Join([]string{
		"admin", "admin", // login
		"",           // press enter
		"1",          // order management
		"1",          // add order
		"Camera A",   // name
		"Acme",       // brand
		"John Smith", // customer
		"199.99",     // price
		"5550100",    // phone
		"accepted",   // status
		"01-06-2024", // appointment date
		"2",          // issue: in progress
		"",           // press enter
		"4",          // list orders
		"",           // press enter
		"0",          // back
		"0",          // log out
	}, "\n") + "\n"

	app, out, store := newTestApp(t, input)

	require.NoError(t, app.Run(context.Background()))

	got := out.String()
	assert.Contains(t, got, "Welcome, admin.")
	assert.Contains(t, got, "Order added")
	assert.Contains(t, got, "1. Camera A")
	assert.Contains(t, got, "Issued: "+order.InProgress)
	assert.Contains(t, got, "Goodbye!")

	// The order reached the store.
	require.Len(t, store.orders, 1)
	assert.Equal(t, "Camera A", store.orders[0].Name)
}

func TestRun_RejectsWrongPassword(t *testing.T) {
	input := strings.Join([]string{
		"admin", "nope", // wrong password
		"",
		"admin", "admin", // second attempt
		"",
		"0", // log out
	}, "\n") + "\n"

	app, out, _ := newTestApp(t, input)

	require.NoError(t, app.Run(context.Background()))

	got := out.String()
	assert.Contains(t, got, "Wrong login or password")
	assert.Contains(t, got, "Welcome, admin.")
}

func TestRun_StaleSelectionIsRejected(t *testing.T) {
	input := strings.Join([]string{
		"admin", "admin",
		"",
		"1", // order management
		"1", // add order
		"Camera A", "Acme", "John Smith", "100", "5550100", "accepted",
		"01-06-2024", "2",
		"",
		"3", // delete order
		"7", // way out of the displayed range
		"",
		"0", // back
		"0", // log out
	}, "\n") + "\n"

	app, out, store := newTestApp(t, input)

	require.NoError(t, app.Run(context.Background()))

	assert.Contains(t, out.String(), "Invalid choice")
	require.Len(t, store.orders, 1)
}
