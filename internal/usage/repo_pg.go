package usage

import (
	"context"
	"database/sql"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Record appends the event to usage_logs.
func (r *PGRepo) Record(ctx context.Context, event Event) error {
	const query = `
INSERT INTO usage_logs (user_id, action, created_at)
VALUES ($1, $2, $3)`
	_, err := r.DB.ExecContext(ctx, query, event.UserID, event.Action, event.CreatedAt)
	return err
}

// CountSince counts events for the user and action at or after since.
func (r *PGRepo) CountSince(ctx context.Context, userID, action string, since time.Time) (int, error) {
	const query = `
SELECT COUNT(*) FROM usage_logs
WHERE user_id = $1 AND action = $2 AND created_at >= $3`
	var count int
	if err := r.DB.QueryRowContext(ctx, query, userID, action, since).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
