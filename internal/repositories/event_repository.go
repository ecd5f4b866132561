package repositories

import (
	"context"
	"errors"

	"caters-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EventStore is the persistence contract consumed by the event service
type EventStore interface {
	Create(ctx context.Context, e *models.Event) error
	Get(ctx context.Context, id int) (*models.Event, error)
	List(ctx context.Context) ([]*models.Event, error)
	ListByOrder(ctx context.Context, orderID int) ([]*models.Event, error)
	Update(ctx context.Context, e *models.Event) error
	Delete(ctx context.Context, id int) error
}

type EventRepository struct {
	DB *pgxpool.Pool
}

func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{DB: db}
}

const eventColumns = `id, order_id, COALESCE(name, ''), COALESCE(venue, ''), event_date,
       COALESCE(guest_count, 0), status, amount, COALESCE(notes, ''), created_at, updated_at`

func scanEvent(row pgx.Row) (*models.Event, error) {
	var event models.Event
	err := row.Scan(&event.ID, &event.OrderID, &event.Name, &event.Venue, &event.EventDate,
		&event.GuestCount, &event.Status, &event.Amount, &event.Notes,
		&event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) Create(ctx context.Context, e *models.Event) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO events(order_id, name, venue, event_date, guest_count, status, amount, notes)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8)
         RETURNING id, created_at, updated_at`,
		e.OrderID, e.Name, e.Venue, e.EventDate, e.GuestCount, e.Status, e.Amount, e.Notes,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

func (r *EventRepository) Get(ctx context.Context, id int) (*models.Event, error) {
	event, err := scanEvent(r.DB.QueryRow(ctx,
		`SELECT `+eventColumns+` FROM events WHERE id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return event, err
}

func (r *EventRepository) List(ctx context.Context) ([]*models.Event, error) {
	return r.queryEvents(ctx, `SELECT `+eventColumns+` FROM events ORDER BY created_at DESC`)
}

// ListByOrder returns the events under an order. A missing or deleted
// parent yields an empty list, not an error.
func (r *EventRepository) ListByOrder(ctx context.Context, orderID int) ([]*models.Event, error) {
	return r.queryEvents(ctx,
		`SELECT `+eventColumns+` FROM events WHERE order_id=$1 ORDER BY created_at DESC`, orderID)
}

func (r *EventRepository) queryEvents(ctx context.Context, sql string, args ...any) ([]*models.Event, error) {
	rows, err := r.DB.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func (r *EventRepository) Update(ctx context.Context, e *models.Event) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE events SET name=$1, venue=$2, event_date=$3, guest_count=$4, status=$5, notes=$6,
                updated_at=CURRENT_TIMESTAMP
         WHERE id=$7`,
		e.Name, e.Venue, e.EventDate, e.GuestCount, e.Status, e.Notes, e.ID)
	return err
}

// Delete removes the event; its menus go with it via FK cascade
func (r *EventRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM events WHERE id=$1`, id)
	return err
}
