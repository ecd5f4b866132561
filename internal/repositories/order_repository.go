package repositories

import (
	"context"
	"errors"
	"fmt"

	"caters-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// OrderStore is the persistence contract consumed by the order service
type OrderStore interface {
	Create(ctx context.Context, o *models.Order) error
	Get(ctx context.Context, id int) (*models.Order, error)
	List(ctx context.Context) ([]*models.Order, error)
	Update(ctx context.Context, o *models.Order) error
	Delete(ctx context.Context, id int) error
}

type OrderRepository struct {
	DB *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) generateOrderNumber(ctx context.Context) (string, error) {
	var nextNum int
	err := r.DB.QueryRow(ctx, "SELECT nextval('order_number_sequence')").Scan(&nextNum)
	if err != nil {
		return "", fmt.Errorf("failed to get next order number: %w", err)
	}
	return fmt.Sprintf("ORD-%06d", nextNum), nil
}

func (r *OrderRepository) Create(ctx context.Context, o *models.Order) error {
	orderNumber, err := r.generateOrderNumber(ctx)
	if err != nil {
		return err
	}

	err = r.DB.QueryRow(ctx,
		`INSERT INTO orders(order_number, customer_id, status, total_amount, balance, notes)
         VALUES($1, $2, $3, 0, 0, $4)
         RETURNING id, total_amount, balance, created_at, updated_at`,
		orderNumber, o.CustomerID, o.Status, o.Notes,
	).Scan(&o.ID, &o.TotalAmount, &o.Balance, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return err
	}

	o.OrderNumber = orderNumber
	return nil
}

func (r *OrderRepository) Get(ctx context.Context, id int) (*models.Order, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, order_number, customer_id, status, total_amount, balance, COALESCE(notes, ''), created_at, updated_at
         FROM orders WHERE id=$1`, id)

	var order models.Order
	err := row.Scan(&order.ID, &order.OrderNumber, &order.CustomerID, &order.Status,
		&order.TotalAmount, &order.Balance, &order.Notes, &order.CreatedAt, &order.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) List(ctx context.Context) ([]*models.Order, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, order_number, customer_id, status, total_amount, balance, COALESCE(notes, ''), created_at, updated_at
         FROM orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		var order models.Order
		err := rows.Scan(&order.ID, &order.OrderNumber, &order.CustomerID, &order.Status,
			&order.TotalAmount, &order.Balance, &order.Notes, &order.CreatedAt, &order.UpdatedAt)
		if err != nil {
			return nil, err
		}
		orders = append(orders, &order)
	}
	return orders, rows.Err()
}

func (r *OrderRepository) Update(ctx context.Context, o *models.Order) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE orders SET customer_id=$1, status=$2, notes=$3, updated_at=CURRENT_TIMESTAMP
         WHERE id=$4`,
		o.CustomerID, o.Status, o.Notes, o.ID)
	return err
}

// Delete removes the order, its events and menus (FK cascade), and any
// payments tagged to it. Payments carry no FK, so they go in the same
// transaction.
func (r *OrderRepository) Delete(ctx context.Context, id int) error {
	return pgx.BeginFunc(ctx, r.DB, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`DELETE FROM payments WHERE entity_type=$1 AND entity_id=$2`,
			models.PaymentEntityOrder, id); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
		return err
	})
}
