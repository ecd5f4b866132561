package repositories

import (
	"context"
	"errors"

	"caters-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PaymentStore is the persistence contract consumed by the payment service
type PaymentStore interface {
	Create(ctx context.Context, p *models.Payment) error
	Get(ctx context.Context, id int) (*models.Payment, error)
	List(ctx context.Context) ([]*models.Payment, error)
	ListByEntity(ctx context.Context, entityType string, entityID int) ([]*models.Payment, error)
	Update(ctx context.Context, p *models.Payment) error
	Delete(ctx context.Context, id int) error
}

type PaymentRepository struct {
	DB *pgxpool.Pool
}

func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

const paymentColumns = `id, entity_type, entity_id, amount, payment_method, payment_date,
       COALESCE(notes, ''), created_at, updated_at`

func scanPayment(row pgx.Row) (*models.Payment, error) {
	var payment models.Payment
	err := row.Scan(&payment.ID, &payment.EntityType, &payment.EntityID, &payment.Amount,
		&payment.PaymentMethod, &payment.PaymentDate, &payment.Notes,
		&payment.CreatedAt, &payment.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepository) Create(ctx context.Context, p *models.Payment) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO payments(entity_type, entity_id, amount, payment_method, payment_date, notes)
         VALUES($1, $2, $3, $4, $5, $6)
         RETURNING id, created_at, updated_at`,
		p.EntityType, p.EntityID, p.Amount, p.PaymentMethod, p.PaymentDate, p.Notes,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PaymentRepository) Get(ctx context.Context, id int) (*models.Payment, error) {
	payment, err := scanPayment(r.DB.QueryRow(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return payment, err
}

func (r *PaymentRepository) List(ctx context.Context) ([]*models.Payment, error) {
	return r.queryPayments(ctx,
		`SELECT `+paymentColumns+` FROM payments ORDER BY payment_date DESC`)
}

func (r *PaymentRepository) ListByEntity(ctx context.Context, entityType string, entityID int) ([]*models.Payment, error) {
	return r.queryPayments(ctx,
		`SELECT `+paymentColumns+` FROM payments
         WHERE entity_type=$1 AND entity_id=$2 ORDER BY payment_date DESC`,
		entityType, entityID)
}

func (r *PaymentRepository) queryPayments(ctx context.Context, sql string, args ...any) ([]*models.Payment, error) {
	rows, err := r.DB.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}
	return payments, rows.Err()
}

func (r *PaymentRepository) Update(ctx context.Context, p *models.Payment) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE payments SET amount=$1, payment_method=$2, payment_date=$3, notes=$4,
                updated_at=CURRENT_TIMESTAMP
         WHERE id=$5`,
		p.Amount, p.PaymentMethod, p.PaymentDate, p.Notes, p.ID)
	return err
}

func (r *PaymentRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM payments WHERE id=$1`, id)
	return err
}
