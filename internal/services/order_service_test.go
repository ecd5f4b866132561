package services

import (
	"context"
	"testing"

	"caters-backend/internal/models"
	"caters-backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCustomerStore struct {
	customers map[int]*models.Customer
	nextID    int
}

func newFakeCustomerStore() *fakeCustomerStore {
	return &fakeCustomerStore{customers: make(map[int]*models.Customer)}
}

func (f *fakeCustomerStore) Create(ctx context.Context, c *models.Customer) error {
	f.nextID++
	c.ID = f.nextID
	copied := *c
	f.customers[c.ID] = &copied
	return nil
}

func (f *fakeCustomerStore) Get(ctx context.Context, id int) (*models.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *c
	return &copied, nil
}

func (f *fakeCustomerStore) List(ctx context.Context) ([]*models.Customer, error) {
	var out []*models.Customer
	for _, c := range f.customers {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCustomerStore) Update(ctx context.Context, c *models.Customer) error {
	if _, ok := f.customers[c.ID]; !ok {
		return repositories.ErrNotFound
	}
	copied := *c
	f.customers[c.ID] = &copied
	return nil
}

type orderServiceFixture struct {
	svc       *OrderService
	orders    *fakeOrderStore
	customers *fakeCustomerStore
	events    *fakeEventStore
	menus     *fakeMenuStore
	payments  *fakePaymentStore
}

func newOrderServiceForTest() *orderServiceFixture {
	f := &orderServiceFixture{
		orders:    newFakeOrderStore(),
		customers: newFakeCustomerStore(),
		events:    &fakeEventStore{events: make(map[int]*models.Event)},
		menus:     newFakeMenuStore(),
		payments:  newFakePaymentStore(),
	}
	f.customers.customers[1] = &models.Customer{ID: 1, Name: "Sharma family", Phone: "9876543210"}
	f.customers.nextID = 1
	f.svc = NewOrderService(f.orders, f.customers, f.events, f.menus, f.payments)
	return f
}

func TestCreateOrderDefaultsStatus(t *testing.T) {
	f := newOrderServiceForTest()

	order, err := f.svc.CreateOrder(context.Background(), &models.CreateOrderRequest{
		CustomerID: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.NotZero(t, order.ID)
}

func TestCreateOrderRequiresCustomer(t *testing.T) {
	f := newOrderServiceForTest()
	var vErr ValidationError

	_, err := f.svc.CreateOrder(context.Background(), &models.CreateOrderRequest{})
	require.ErrorAs(t, err, &vErr)

	_, err = f.svc.CreateOrder(context.Background(), &models.CreateOrderRequest{CustomerID: 99})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestCreateOrderRejectsUnknownStatus(t *testing.T) {
	f := newOrderServiceForTest()

	_, err := f.svc.CreateOrder(context.Background(), &models.CreateOrderRequest{
		CustomerID: 1,
		Status:     "shipped",
	})
	var vErr ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestGetOrderExpandsRelations(t *testing.T) {
	f := newOrderServiceForTest()
	f.orders.orders[1] = &models.Order{ID: 1, CustomerID: 1, TotalAmount: 1700, Balance: 700}
	f.orders.nextID = 1
	f.events.events[10] = &models.Event{ID: 10, OrderID: 1, Name: "Reception", Amount: 1700}
	// Belongs to a different order; must not leak into the expansion
	f.events.events[11] = &models.Event{ID: 11, OrderID: 2, Name: "Haldi"}
	f.menus.menus[100] = &models.Menu{ID: 100, EventID: 10, Name: "Buffet", Price: 850, Quantity: 2}
	f.payments.payments[5] = &models.Payment{
		ID: 5, EntityType: models.PaymentEntityOrder, EntityID: 1, Amount: 1000,
	}

	detail, err := f.svc.GetOrder(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, detail.Customer)
	assert.Equal(t, "Sharma family", detail.Customer.Name)
	require.Len(t, detail.Events, 1)
	require.Len(t, detail.Events[0].Menus, 1)
	assert.Equal(t, "Buffet", detail.Events[0].Menus[0].Name)
	require.Len(t, detail.Payments, 1)
	assert.Equal(t, 1000.0, detail.Payments[0].Amount)
}

func TestGetOrderToleratesDanglingCustomer(t *testing.T) {
	f := newOrderServiceForTest()
	f.orders.orders[1] = &models.Order{ID: 1, CustomerID: 77}

	detail, err := f.svc.GetOrder(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, detail.Customer)
	assert.NotNil(t, detail.Events)
	assert.NotNil(t, detail.Payments)
}

func TestGetOrderMissing(t *testing.T) {
	f := newOrderServiceForTest()
	_, err := f.svc.GetOrder(context.Background(), 9)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestUpdateOrderValidatesNewCustomer(t *testing.T) {
	f := newOrderServiceForTest()
	f.orders.orders[1] = &models.Order{ID: 1, CustomerID: 1, Status: models.OrderStatusPending}

	_, err := f.svc.UpdateOrder(context.Background(), 1, &models.UpdateOrderRequest{
		CustomerID: 42,
		Status:     models.OrderStatusConfirmed,
	})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestUpdateOrder(t *testing.T) {
	f := newOrderServiceForTest()
	f.orders.orders[1] = &models.Order{ID: 1, CustomerID: 1, Status: models.OrderStatusPending}

	order, err := f.svc.UpdateOrder(context.Background(), 1, &models.UpdateOrderRequest{
		CustomerID: 1,
		Status:     models.OrderStatusConfirmed,
		Notes:      "decor upgraded",
	})
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusConfirmed, order.Status)
	assert.Equal(t, "decor upgraded", order.Notes)
}

func TestDeleteOrderMissing(t *testing.T) {
	f := newOrderServiceForTest()
	assert.ErrorIs(t, f.svc.DeleteOrder(context.Background(), 3), repositories.ErrNotFound)
}
