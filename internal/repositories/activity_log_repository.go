package repositories

import (
	"context"

	"caters-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ActivityLogStore records auth events
type ActivityLogStore interface {
	Create(ctx context.Context, l *models.ActivityLog) error
	List(ctx context.Context, limit int) ([]*models.ActivityLog, error)
}

type ActivityLogRepository struct {
	DB *pgxpool.Pool
}

func NewActivityLogRepository(db *pgxpool.Pool) *ActivityLogRepository {
	return &ActivityLogRepository{DB: db}
}

func (r *ActivityLogRepository) Create(ctx context.Context, l *models.ActivityLog) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO activity_logs(user_id, action, detail, created_at)
         VALUES($1, $2, $3, $4)
         RETURNING id`,
		l.UserID, l.Action, l.Detail, l.CreatedAt,
	).Scan(&l.ID)
}

func (r *ActivityLogRepository) List(ctx context.Context, limit int) ([]*models.ActivityLog, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.DB.Query(ctx,
		`SELECT id, user_id, action, COALESCE(detail, ''), created_at
         FROM activity_logs ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []*models.ActivityLog
	for rows.Next() {
		var l models.ActivityLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.Action, &l.Detail, &l.CreatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, &l)
	}
	return logs, rows.Err()
}
