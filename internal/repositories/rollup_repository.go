package repositories

import (
	"context"
	"errors"

	"caters-backend/internal/models"
	"caters-backend/internal/rollup"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RollupStore is the persistence contract of the rollup engine. WithinTx
// runs fn against a store bound to a single transaction, so a whole rollup
// chain commits or rolls back as one unit.
type RollupStore interface {
	WithinTx(ctx context.Context, fn func(RollupStore) error) error
	GetEvent(ctx context.Context, id int) (*models.Event, error)
	MenuLines(ctx context.Context, eventID int) ([]rollup.MenuLine, error)
	SetEventAmount(ctx context.Context, eventID int, amount float64) error
	GetOrder(ctx context.Context, id int) (*models.Order, error)
	EventAmounts(ctx context.Context, orderID int) ([]float64, error)
	SetOrderTotal(ctx context.Context, orderID int, total float64) error
	PaymentAmounts(ctx context.Context, entityType string, entityID int) ([]float64, error)
	SetOrderBalance(ctx context.Context, orderID int, balance float64) error
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type RollupRepository struct {
	pool *pgxpool.Pool
	q    querier
}

func NewRollupRepository(db *pgxpool.Pool) *RollupRepository {
	return &RollupRepository{pool: db, q: db}
}

func (r *RollupRepository) WithinTx(ctx context.Context, fn func(RollupStore) error) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(&RollupRepository{pool: r.pool, q: tx})
	})
}

func (r *RollupRepository) GetEvent(ctx context.Context, id int) (*models.Event, error) {
	var event models.Event
	err := r.q.QueryRow(ctx,
		`SELECT id, order_id, amount FROM events WHERE id=$1`, id,
	).Scan(&event.ID, &event.OrderID, &event.Amount)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *RollupRepository) MenuLines(ctx context.Context, eventID int) ([]rollup.MenuLine, error) {
	rows, err := r.q.Query(ctx,
		`SELECT COALESCE(price, 0), COALESCE(quantity, 0) FROM menus WHERE event_id=$1`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []rollup.MenuLine
	for rows.Next() {
		var line rollup.MenuLine
		if err := rows.Scan(&line.Price, &line.Quantity); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (r *RollupRepository) SetEventAmount(ctx context.Context, eventID int, amount float64) error {
	_, err := r.q.Exec(ctx,
		`UPDATE events SET amount=$1, updated_at=CURRENT_TIMESTAMP WHERE id=$2`, amount, eventID)
	return err
}

func (r *RollupRepository) GetOrder(ctx context.Context, id int) (*models.Order, error) {
	var order models.Order
	err := r.q.QueryRow(ctx,
		`SELECT id, total_amount, balance FROM orders WHERE id=$1`, id,
	).Scan(&order.ID, &order.TotalAmount, &order.Balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *RollupRepository) EventAmounts(ctx context.Context, orderID int) ([]float64, error) {
	return r.queryAmounts(ctx,
		`SELECT amount FROM events WHERE order_id=$1`, orderID)
}

func (r *RollupRepository) SetOrderTotal(ctx context.Context, orderID int, total float64) error {
	_, err := r.q.Exec(ctx,
		`UPDATE orders SET total_amount=$1, updated_at=CURRENT_TIMESTAMP WHERE id=$2`, total, orderID)
	return err
}

func (r *RollupRepository) PaymentAmounts(ctx context.Context, entityType string, entityID int) ([]float64, error) {
	return r.queryAmounts(ctx,
		`SELECT amount FROM payments WHERE entity_type=$1 AND entity_id=$2`, entityType, entityID)
}

func (r *RollupRepository) SetOrderBalance(ctx context.Context, orderID int, balance float64) error {
	_, err := r.q.Exec(ctx,
		`UPDATE orders SET balance=$1, updated_at=CURRENT_TIMESTAMP WHERE id=$2`, balance, orderID)
	return err
}

func (r *RollupRepository) queryAmounts(ctx context.Context, sql string, args ...any) ([]float64, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var amounts []float64
	for rows.Next() {
		var a float64
		if err := rows.Scan(&a); err != nil {
			return nil, err
		}
		amounts = append(amounts, a)
	}
	return amounts, rows.Err()
}
