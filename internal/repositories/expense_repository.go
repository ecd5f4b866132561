package repositories

import (
	"context"
	"errors"

	"caters-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ExpenseStore is the persistence contract consumed by the expense service
type ExpenseStore interface {
	Create(ctx context.Context, e *models.Expense) error
	Get(ctx context.Context, id int) (*models.Expense, error)
	List(ctx context.Context) ([]*models.Expense, error)
	Update(ctx context.Context, e *models.Expense) error
	Delete(ctx context.Context, id int) error
}

type ExpenseRepository struct {
	DB *pgxpool.Pool
}

func NewExpenseRepository(db *pgxpool.Pool) *ExpenseRepository {
	return &ExpenseRepository{DB: db}
}

const expenseColumns = `id, description, amount, category, expense_date,
       COALESCE(notes, ''), created_at, updated_at`

func scanExpense(row pgx.Row) (*models.Expense, error) {
	var expense models.Expense
	err := row.Scan(&expense.ID, &expense.Description, &expense.Amount, &expense.Category,
		&expense.ExpenseDate, &expense.Notes, &expense.CreatedAt, &expense.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *ExpenseRepository) Create(ctx context.Context, e *models.Expense) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO expenses(description, amount, category, expense_date, notes)
         VALUES($1, $2, $3, $4, $5)
         RETURNING id, created_at, updated_at`,
		e.Description, e.Amount, e.Category, e.ExpenseDate, e.Notes,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

func (r *ExpenseRepository) Get(ctx context.Context, id int) (*models.Expense, error) {
	expense, err := scanExpense(r.DB.QueryRow(ctx,
		`SELECT `+expenseColumns+` FROM expenses WHERE id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return expense, err
}

func (r *ExpenseRepository) List(ctx context.Context) ([]*models.Expense, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+expenseColumns+` FROM expenses ORDER BY expense_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	return expenses, rows.Err()
}

func (r *ExpenseRepository) Update(ctx context.Context, e *models.Expense) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE expenses SET description=$1, amount=$2, category=$3, expense_date=$4, notes=$5,
                updated_at=CURRENT_TIMESTAMP
         WHERE id=$6`,
		e.Description, e.Amount, e.Category, e.ExpenseDate, e.Notes, e.ID)
	return err
}

func (r *ExpenseRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM expenses WHERE id=$1`, id)
	return err
}
