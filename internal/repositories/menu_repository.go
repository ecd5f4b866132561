package repositories

import (
	"context"
	"errors"

	"caters-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MenuStore is the persistence contract consumed by the menu service
type MenuStore interface {
	Create(ctx context.Context, m *models.Menu) error
	Get(ctx context.Context, id int) (*models.Menu, error)
	List(ctx context.Context) ([]*models.Menu, error)
	ListByEvent(ctx context.Context, eventID int) ([]*models.Menu, error)
	Update(ctx context.Context, m *models.Menu) error
	Delete(ctx context.Context, id int) error
}

type MenuRepository struct {
	DB *pgxpool.Pool
}

func NewMenuRepository(db *pgxpool.Pool) *MenuRepository {
	return &MenuRepository{DB: db}
}

const menuColumns = `id, event_id, name, COALESCE(description, ''), price, quantity,
       COALESCE(items, ''), created_at, updated_at`

func scanMenu(row pgx.Row) (*models.Menu, error) {
	var menu models.Menu
	err := row.Scan(&menu.ID, &menu.EventID, &menu.Name, &menu.Description,
		&menu.Price, &menu.Quantity, &menu.Items, &menu.CreatedAt, &menu.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *MenuRepository) Create(ctx context.Context, m *models.Menu) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO menus(event_id, name, description, price, quantity, items)
         VALUES($1, $2, $3, $4, $5, $6)
         RETURNING id, created_at, updated_at`,
		m.EventID, m.Name, m.Description, m.Price, m.Quantity, m.Items,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
}

func (r *MenuRepository) Get(ctx context.Context, id int) (*models.Menu, error) {
	menu, err := scanMenu(r.DB.QueryRow(ctx,
		`SELECT `+menuColumns+` FROM menus WHERE id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return menu, err
}

func (r *MenuRepository) List(ctx context.Context) ([]*models.Menu, error) {
	return r.queryMenus(ctx, `SELECT `+menuColumns+` FROM menus ORDER BY created_at DESC`)
}

// ListByEvent returns the menus under an event. A missing or deleted
// parent yields an empty list, not an error.
func (r *MenuRepository) ListByEvent(ctx context.Context, eventID int) ([]*models.Menu, error) {
	return r.queryMenus(ctx,
		`SELECT `+menuColumns+` FROM menus WHERE event_id=$1 ORDER BY created_at`, eventID)
}

func (r *MenuRepository) queryMenus(ctx context.Context, sql string, args ...any) ([]*models.Menu, error) {
	rows, err := r.DB.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var menus []*models.Menu
	for rows.Next() {
		menu, err := scanMenu(rows)
		if err != nil {
			return nil, err
		}
		menus = append(menus, menu)
	}
	return menus, rows.Err()
}

func (r *MenuRepository) Update(ctx context.Context, m *models.Menu) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE menus SET name=$1, description=$2, price=$3, quantity=$4, items=$5,
                updated_at=CURRENT_TIMESTAMP
         WHERE id=$6`,
		m.Name, m.Description, m.Price, m.Quantity, m.Items, m.ID)
	return err
}

func (r *MenuRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM menus WHERE id=$1`, id)
	return err
}
