package services

import (
	"context"
	"testing"

	"caters-backend/internal/models"
	"caters-backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMenuStore struct {
	menus  map[int]*models.Menu
	nextID int
}

func newFakeMenuStore() *fakeMenuStore {
	return &fakeMenuStore{menus: make(map[int]*models.Menu), nextID: 1}
}

func (f *fakeMenuStore) Create(ctx context.Context, m *models.Menu) error {
	m.ID = f.nextID
	f.nextID++
	copied := *m
	f.menus[m.ID] = &copied
	return nil
}

func (f *fakeMenuStore) Get(ctx context.Context, id int) (*models.Menu, error) {
	m, ok := f.menus[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *m
	return &copied, nil
}

func (f *fakeMenuStore) List(ctx context.Context) ([]*models.Menu, error) {
	var out []*models.Menu
	for _, m := range f.menus {
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeMenuStore) ListByEvent(ctx context.Context, eventID int) ([]*models.Menu, error) {
	var out []*models.Menu
	for _, m := range f.menus {
		if m.EventID == eventID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMenuStore) Update(ctx context.Context, m *models.Menu) error {
	if _, ok := f.menus[m.ID]; !ok {
		return repositories.ErrNotFound
	}
	copied := *m
	f.menus[m.ID] = &copied
	return nil
}

func (f *fakeMenuStore) Delete(ctx context.Context, id int) error {
	if _, ok := f.menus[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.menus, id)
	return nil
}

type fakeEventStore struct {
	events map[int]*models.Event
	nextID int
}

func (f *fakeEventStore) Create(ctx context.Context, e *models.Event) error {
	if e.ID == 0 {
		f.nextID++
		e.ID = f.nextID
	}
	copied := *e
	f.events[e.ID] = &copied
	return nil
}

func (f *fakeEventStore) Get(ctx context.Context, id int) (*models.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return e, nil
}

func (f *fakeEventStore) List(ctx context.Context) ([]*models.Event, error) { return nil, nil }

func (f *fakeEventStore) ListByOrder(ctx context.Context, orderID int) ([]*models.Event, error) {
	var out []*models.Event
	for _, e := range f.events {
		if e.OrderID == orderID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventStore) Update(ctx context.Context, e *models.Event) error {
	if _, ok := f.events[e.ID]; !ok {
		return repositories.ErrNotFound
	}
	copied := *e
	f.events[e.ID] = &copied
	return nil
}

func (f *fakeEventStore) Delete(ctx context.Context, id int) error {
	delete(f.events, id)
	return nil
}

func newMenuServiceForTest() (*MenuService, *fakeMenuStore, *fakeRollupStore) {
	menus := newFakeMenuStore()
	rollupStore := newFakeRollupStore()
	seedOrderWithEvent(rollupStore)
	events := &fakeEventStore{events: map[int]*models.Event{
		10: {ID: 10, OrderID: 1},
	}}
	svc := NewMenuService(menus, events, NewRollupService(rollupStore))
	return svc, menus, rollupStore
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestCreateMenuDefaults(t *testing.T) {
	svc, _, _ := newMenuServiceForTest()

	menu, err := svc.CreateMenu(context.Background(), &models.CreateMenuRequest{
		EventID: 10,
		Name:    "Wedding buffet",
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, menu.Price)
	assert.Equal(t, 1, menu.Quantity)
}

func TestCreateMenuExplicitPriceAndQuantity(t *testing.T) {
	svc, store, _ := newMenuServiceForTest()

	menu, err := svc.CreateMenu(context.Background(), &models.CreateMenuRequest{
		EventID:  10,
		Name:     "Lunch thali",
		Price:    floatPtr(250),
		Quantity: intPtr(100),
	})
	require.NoError(t, err)
	assert.Equal(t, 250.0, menu.Price)
	assert.Equal(t, 100, menu.Quantity)
	assert.Contains(t, store.menus, menu.ID)
}

func TestCreateMenuLegacyItemsOnly(t *testing.T) {
	svc, _, _ := newMenuServiceForTest()

	menu, err := svc.CreateMenu(context.Background(), &models.CreateMenuRequest{
		EventID: 10,
		Items:   "paneer tikka, dal makhani, naan",
	})
	require.NoError(t, err)
	assert.Equal(t, "paneer tikka, dal makhani, naan", menu.Items)
}

func TestCreateMenuValidation(t *testing.T) {
	svc, _, _ := newMenuServiceForTest()

	_, err := svc.CreateMenu(context.Background(), &models.CreateMenuRequest{Name: "x"})
	var vErr ValidationError
	require.ErrorAs(t, err, &vErr)

	_, err = svc.CreateMenu(context.Background(), &models.CreateMenuRequest{EventID: 10})
	require.ErrorAs(t, err, &vErr)
}

func TestCreateMenuMissingEvent(t *testing.T) {
	svc, _, _ := newMenuServiceForTest()

	_, err := svc.CreateMenu(context.Background(), &models.CreateMenuRequest{
		EventID: 99,
		Name:    "Dinner",
	})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestCreateMenuTriggersRollup(t *testing.T) {
	svc, _, rollupStore := newMenuServiceForTest()
	rollupStore.menus[10] = nil

	_, err := svc.CreateMenu(context.Background(), &models.CreateMenuRequest{
		EventID: 10,
		Name:    "Snacks",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, rollupStore.txCount)
}

func TestUpdateMenuAbsentFieldsResetToDefaults(t *testing.T) {
	svc, store, _ := newMenuServiceForTest()
	store.menus[1] = &models.Menu{ID: 1, EventID: 10, Name: "Old", Price: 500, Quantity: 20}
	store.nextID = 2

	menu, err := svc.UpdateMenu(context.Background(), 1, &models.UpdateMenuRequest{
		Name: "New",
	})
	require.NoError(t, err)
	assert.Equal(t, "New", menu.Name)
	assert.Equal(t, 0.0, menu.Price)
	assert.Equal(t, 1, menu.Quantity)
}

func TestDeleteMenuMissing(t *testing.T) {
	svc, _, _ := newMenuServiceForTest()
	assert.ErrorIs(t, svc.DeleteMenu(context.Background(), 42), repositories.ErrNotFound)
}

func TestDeleteMenuTriggersRollup(t *testing.T) {
	svc, store, rollupStore := newMenuServiceForTest()
	store.menus[1] = &models.Menu{ID: 1, EventID: 10, Name: "Buffet", Price: 100, Quantity: 2}

	require.NoError(t, svc.DeleteMenu(context.Background(), 1))
	assert.NotContains(t, store.menus, 1)
	assert.Equal(t, 1, rollupStore.txCount)
}
