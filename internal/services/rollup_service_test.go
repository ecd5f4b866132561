package services

import (
	"context"
	"testing"

	"caters-backend/internal/models"
	"caters-backend/internal/repositories"
	"caters-backend/internal/rollup"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRollupStore holds rows in maps. WithinTx runs fn against the same
// store and counts invocations so tests can assert a chain used one
// transaction.
type fakeRollupStore struct {
	events   map[int]*models.Event
	orders   map[int]*models.Order
	menus    map[int][]rollup.MenuLine
	payments map[int][]float64
	txCount  int
}

func newFakeRollupStore() *fakeRollupStore {
	return &fakeRollupStore{
		events:   make(map[int]*models.Event),
		orders:   make(map[int]*models.Order),
		menus:    make(map[int][]rollup.MenuLine),
		payments: make(map[int][]float64),
	}
}

func (f *fakeRollupStore) WithinTx(ctx context.Context, fn func(repositories.RollupStore) error) error {
	f.txCount++
	return fn(f)
}

func (f *fakeRollupStore) GetEvent(ctx context.Context, id int) (*models.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *e
	return &copied, nil
}

func (f *fakeRollupStore) MenuLines(ctx context.Context, eventID int) ([]rollup.MenuLine, error) {
	return f.menus[eventID], nil
}

func (f *fakeRollupStore) SetEventAmount(ctx context.Context, eventID int, amount float64) error {
	f.events[eventID].Amount = amount
	return nil
}

func (f *fakeRollupStore) GetOrder(ctx context.Context, id int) (*models.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *o
	return &copied, nil
}

func (f *fakeRollupStore) EventAmounts(ctx context.Context, orderID int) ([]float64, error) {
	var amounts []float64
	for _, e := range f.events {
		if e.OrderID == orderID {
			amounts = append(amounts, e.Amount)
		}
	}
	return amounts, nil
}

func (f *fakeRollupStore) SetOrderTotal(ctx context.Context, orderID int, total float64) error {
	f.orders[orderID].TotalAmount = total
	return nil
}

func (f *fakeRollupStore) PaymentAmounts(ctx context.Context, entityType string, entityID int) ([]float64, error) {
	if entityType != models.PaymentEntityOrder {
		return nil, nil
	}
	return f.payments[entityID], nil
}

func (f *fakeRollupStore) SetOrderBalance(ctx context.Context, orderID int, balance float64) error {
	f.orders[orderID].Balance = balance
	return nil
}

func seedOrderWithEvent(store *fakeRollupStore) {
	store.orders[1] = &models.Order{ID: 1}
	store.events[10] = &models.Event{ID: 10, OrderID: 1}
}

func TestRecomputeEventAmount(t *testing.T) {
	store := newFakeRollupStore()
	seedOrderWithEvent(store)
	store.menus[10] = []rollup.MenuLine{
		{Price: 250, Quantity: 100},
		{Price: 50, Quantity: 10},
	}

	svc := NewRollupService(store)
	amount, err := svc.RecomputeEventAmount(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 25500.0, amount)
	assert.Equal(t, 25500.0, store.events[10].Amount)
}

func TestRecomputeEventAmountMissingEvent(t *testing.T) {
	store := newFakeRollupStore()
	svc := NewRollupService(store)

	_, err := svc.RecomputeEventAmount(context.Background(), 99)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestRecomputeOrderTotalMissingOrder(t *testing.T) {
	store := newFakeRollupStore()
	svc := NewRollupService(store)

	_, err := svc.RecomputeOrderTotal(context.Background(), 99)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestMenuChangedRunsFullChain(t *testing.T) {
	store := newFakeRollupStore()
	seedOrderWithEvent(store)
	store.events[11] = &models.Event{ID: 11, OrderID: 1, Amount: 1000}
	store.menus[10] = []rollup.MenuLine{{Price: 300, Quantity: 5}}
	store.payments[1] = []float64{500}

	svc := NewRollupService(store)
	require.NoError(t, svc.MenuChanged(context.Background(), 10))

	assert.Equal(t, 1500.0, store.events[10].Amount)
	assert.Equal(t, 2500.0, store.orders[1].TotalAmount)
	assert.Equal(t, 2000.0, store.orders[1].Balance)
	assert.Equal(t, 1, store.txCount, "chain should run in one transaction")
}

func TestMenuChangedEmptyMenusZeroesEvent(t *testing.T) {
	store := newFakeRollupStore()
	seedOrderWithEvent(store)
	store.events[10].Amount = 4000
	store.orders[1].TotalAmount = 4000
	store.orders[1].Balance = 4000

	svc := NewRollupService(store)
	require.NoError(t, svc.MenuChanged(context.Background(), 10))

	assert.Equal(t, 0.0, store.events[10].Amount)
	assert.Equal(t, 0.0, store.orders[1].TotalAmount)
	assert.Equal(t, 0.0, store.orders[1].Balance)
}

func TestEventChangedOverwritesStoredAmount(t *testing.T) {
	store := newFakeRollupStore()
	seedOrderWithEvent(store)
	// Stored amount disagrees with the menus; the chain must win.
	store.events[10].Amount = 99999
	store.menus[10] = []rollup.MenuLine{{Price: 100, Quantity: 2}}

	svc := NewRollupService(store)
	require.NoError(t, svc.EventChanged(context.Background(), 10))

	assert.Equal(t, 200.0, store.events[10].Amount)
	assert.Equal(t, 200.0, store.orders[1].TotalAmount)
}

func TestEventDeletedRefreshesOrder(t *testing.T) {
	store := newFakeRollupStore()
	store.orders[1] = &models.Order{ID: 1, TotalAmount: 5000, Balance: 5000}
	store.events[11] = &models.Event{ID: 11, OrderID: 1, Amount: 2000}
	store.payments[1] = []float64{1500}

	svc := NewRollupService(store)
	require.NoError(t, svc.EventDeleted(context.Background(), 1))

	assert.Equal(t, 2000.0, store.orders[1].TotalAmount)
	assert.Equal(t, 500.0, store.orders[1].Balance)
}

func TestPaymentChangedRecomputesBalanceOnly(t *testing.T) {
	store := newFakeRollupStore()
	store.orders[1] = &models.Order{ID: 1, TotalAmount: 3000, Balance: 3000}
	store.payments[1] = []float64{1000, 500}

	svc := NewRollupService(store)
	require.NoError(t, svc.PaymentChanged(context.Background(), 1))

	assert.Equal(t, 3000.0, store.orders[1].TotalAmount)
	assert.Equal(t, 1500.0, store.orders[1].Balance)
}

func TestPaymentChangedOverpaymentClamps(t *testing.T) {
	store := newFakeRollupStore()
	store.orders[1] = &models.Order{ID: 1, TotalAmount: 1000, Balance: 1000}
	store.payments[1] = []float64{800, 800}

	svc := NewRollupService(store)
	require.NoError(t, svc.PaymentChanged(context.Background(), 1))

	assert.Equal(t, 0.0, store.orders[1].Balance)
}

// Walks an order through its lifecycle: menus added, a payment recorded, a
// menu removed, the event removed. The derived fields must be right after
// every step.
func TestOrderLifecycleRollups(t *testing.T) {
	ctx := context.Background()
	store := newFakeRollupStore()
	store.orders[1] = &models.Order{ID: 1}
	store.events[10] = &models.Event{ID: 10, OrderID: 1}
	svc := NewRollupService(store)

	// Two menus priced 100x2 and 50x1 land under the event
	store.menus[10] = []rollup.MenuLine{
		{Price: 100, Quantity: 2},
		{Price: 50, Quantity: 1},
	}
	require.NoError(t, svc.MenuChanged(ctx, 10))
	assert.Equal(t, 250.0, store.events[10].Amount)
	assert.Equal(t, 250.0, store.orders[1].TotalAmount)
	assert.Equal(t, 250.0, store.orders[1].Balance)

	// A payment of 100 comes in
	store.payments[1] = []float64{100}
	require.NoError(t, svc.PaymentChanged(ctx, 1))
	assert.Equal(t, 150.0, store.orders[1].Balance)

	// The 100x2 menu is removed; the payment now exceeds the total
	store.menus[10] = []rollup.MenuLine{{Price: 50, Quantity: 1}}
	require.NoError(t, svc.MenuChanged(ctx, 10))
	assert.Equal(t, 50.0, store.events[10].Amount)
	assert.Equal(t, 50.0, store.orders[1].TotalAmount)
	assert.Equal(t, 0.0, store.orders[1].Balance)

	// The event itself is removed
	delete(store.events, 10)
	store.menus[10] = nil
	require.NoError(t, svc.EventDeleted(ctx, 1))
	assert.Equal(t, 0.0, store.orders[1].TotalAmount)
	assert.Equal(t, 0.0, store.orders[1].Balance)
}

func TestChainIsIdempotent(t *testing.T) {
	store := newFakeRollupStore()
	seedOrderWithEvent(store)
	store.menus[10] = []rollup.MenuLine{{Price: 750, Quantity: 4}}
	store.payments[1] = []float64{1000}

	svc := NewRollupService(store)
	require.NoError(t, svc.MenuChanged(context.Background(), 10))
	require.NoError(t, svc.MenuChanged(context.Background(), 10))

	assert.Equal(t, 3000.0, store.events[10].Amount)
	assert.Equal(t, 3000.0, store.orders[1].TotalAmount)
	assert.Equal(t, 2000.0, store.orders[1].Balance)
}
