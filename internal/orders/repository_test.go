package orders

import (
	"fmt"
	"testing"

	"github.com/bibagei/Hudoleev-kursovaya/internal/models/errs"
	"github.com/bibagei/Hudoleev-kursovaya/internal/models/order"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder(name string) *order.Order {
	return &order.Order{
		ID:              uuid.NewString(),
		Name:            name,
		Brand:           "Acme",
		FullName:        "John Smith",
		Phone:           "5550100",
		Status:          "accepted",
		Price:           decimal.NewFromInt(100),
		DateAppointment: "01-06-2024",
		DateIssue:       order.InProgress,
	}
}

func TestRepository_AddCapacity(t *testing.T) {
	repo := NewRepository()

	for i := 0; i < MaxOrders; i++ {
		require.NoError(t, repo.Add(testOrder(fmt.Sprintf("order %d", i))))
	}
	require.Equal(t, MaxOrders, repo.Len())

	err := repo.Add(testOrder("one too many"))
	assert.ErrorIs(t, err, errs.ErrCapacityExceeded)
	assert.Equal(t, MaxOrders, repo.Len())
}

func TestRepository_Get(t *testing.T) {
	repo := NewRepository()
	o := testOrder("camera")
	require.NoError(t, repo.Add(o))

	got, err := repo.Get(o.ID)
	require.NoError(t, err)
	assert.Same(t, o, got)

	_, err = repo.Get("no-such-id")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestRepository_RemoveShiftsSubsequent(t *testing.T) {
	repo := NewRepository()
	first := testOrder("first")
	second := testOrder("second")
	third := testOrder("third")
	for _, o := range []*order.Order{first, second, third} {
		require.NoError(t, repo.Add(o))
	}

	require.NoError(t, repo.Remove(second.ID))

	all := repo.All()
	require.Len(t, all, 2)
	assert.Equal(t, "first", all[0].Name)
	assert.Equal(t, "third", all[1].Name)

	err := repo.Remove(second.ID)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestRepository_AllPreservesInsertionOrder(t *testing.T) {
	repo := NewRepository()
	names := []string{"delta", "alpha", "charlie", "bravo"}
	for _, name := range names {
		require.NoError(t, repo.Add(testOrder(name)))
	}

	all := repo.All()
	require.Len(t, all, len(names))
	for i, name := range names {
		assert.Equal(t, name, all[i].Name)
	}
}
