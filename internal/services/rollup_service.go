package services

import (
	"context"

	"caters-backend/internal/metrics"
	"caters-backend/internal/models"
	"caters-backend/internal/repositories"
	"caters-backend/internal/rollup"
)

// RollupService keeps the three derived monetary fields consistent with
// their source rows: event.amount with the event's menus, order.total_amount
// with the order's events, and order.balance with the order's payments.
//
// Every exported method runs inside a single transaction, so a chain either
// lands completely or not at all. Each recomputation is idempotent; with
// unchanged source rows it re-persists the same value.
type RollupService struct {
	Store repositories.RollupStore
}

func NewRollupService(store repositories.RollupStore) *RollupService {
	return &RollupService{Store: store}
}

// RecomputeEventAmount refreshes the event's amount from its menus and
// returns the new value
func (s *RollupService) RecomputeEventAmount(ctx context.Context, eventID int) (float64, error) {
	var amount float64
	err := s.Store.WithinTx(ctx, func(st repositories.RollupStore) error {
		a, err := recomputeEventAmount(ctx, st, eventID)
		amount = a
		return err
	})
	return amount, err
}

// RecomputeOrderTotal refreshes the order's total from its events' persisted
// amounts and returns the new value. Callers must refresh any event whose
// menus changed first, or the sum reflects stale event amounts.
func (s *RollupService) RecomputeOrderTotal(ctx context.Context, orderID int) (float64, error) {
	var total float64
	err := s.Store.WithinTx(ctx, func(st repositories.RollupStore) error {
		t, err := recomputeOrderTotal(ctx, st, orderID)
		total = t
		return err
	})
	return total, err
}

// RecomputeOrderBalance refreshes the order's balance from its total and its
// payments and returns the new value
func (s *RollupService) RecomputeOrderBalance(ctx context.Context, orderID int) (float64, error) {
	var balance float64
	err := s.Store.WithinTx(ctx, func(st repositories.RollupStore) error {
		b, err := recomputeOrderBalance(ctx, st, orderID)
		balance = b
		return err
	})
	return balance, err
}

// MenuChanged runs the full chain after a menu create/update/delete:
// event amount, then order total, then order balance (the balance is
// derived from the total, so a total change recomputes it too).
func (s *RollupService) MenuChanged(ctx context.Context, eventID int) error {
	metrics.RollupRunsTotal.WithLabelValues("menu").Inc()
	return s.eventChain(ctx, eventID)
}

// EventChanged runs the chain after an event create/update. Any
// client-supplied amount is overwritten by the true sum of the event's
// menus here.
func (s *RollupService) EventChanged(ctx context.Context, eventID int) error {
	metrics.RollupRunsTotal.WithLabelValues("event").Inc()
	return s.eventChain(ctx, eventID)
}

func (s *RollupService) eventChain(ctx context.Context, eventID int) error {
	return s.Store.WithinTx(ctx, func(st repositories.RollupStore) error {
		event, err := st.GetEvent(ctx, eventID)
		if err != nil {
			return err
		}
		if _, err := recomputeEventAmount(ctx, st, eventID); err != nil {
			return err
		}
		return refreshOrder(ctx, st, event.OrderID)
	})
}

// EventDeleted refreshes the parent order after an event (and its menus,
// cascaded by the database) has been removed
func (s *RollupService) EventDeleted(ctx context.Context, orderID int) error {
	metrics.RollupRunsTotal.WithLabelValues("event_delete").Inc()
	return s.Store.WithinTx(ctx, func(st repositories.RollupStore) error {
		return refreshOrder(ctx, st, orderID)
	})
}

// PaymentChanged refreshes the order balance after a payment mutation
// tagged to the order
func (s *RollupService) PaymentChanged(ctx context.Context, orderID int) error {
	metrics.RollupRunsTotal.WithLabelValues("payment").Inc()
	return s.Store.WithinTx(ctx, func(st repositories.RollupStore) error {
		_, err := recomputeOrderBalance(ctx, st, orderID)
		return err
	})
}

func refreshOrder(ctx context.Context, st repositories.RollupStore, orderID int) error {
	if _, err := recomputeOrderTotal(ctx, st, orderID); err != nil {
		return err
	}
	_, err := recomputeOrderBalance(ctx, st, orderID)
	return err
}

func recomputeEventAmount(ctx context.Context, st repositories.RollupStore, eventID int) (float64, error) {
	if _, err := st.GetEvent(ctx, eventID); err != nil {
		return 0, err
	}
	lines, err := st.MenuLines(ctx, eventID)
	if err != nil {
		return 0, err
	}
	amount := rollup.EventAmount(lines)
	return amount, st.SetEventAmount(ctx, eventID, amount)
}

func recomputeOrderTotal(ctx context.Context, st repositories.RollupStore, orderID int) (float64, error) {
	if _, err := st.GetOrder(ctx, orderID); err != nil {
		return 0, err
	}
	amounts, err := st.EventAmounts(ctx, orderID)
	if err != nil {
		return 0, err
	}
	total := rollup.OrderTotal(amounts)
	return total, st.SetOrderTotal(ctx, orderID, total)
}

func recomputeOrderBalance(ctx context.Context, st repositories.RollupStore, orderID int) (float64, error) {
	order, err := st.GetOrder(ctx, orderID)
	if err != nil {
		return 0, err
	}
	payments, err := st.PaymentAmounts(ctx, models.PaymentEntityOrder, orderID)
	if err != nil {
		return 0, err
	}
	balance := rollup.OrderBalance(order.TotalAmount, payments)
	return balance, st.SetOrderBalance(ctx, orderID, balance)
}
