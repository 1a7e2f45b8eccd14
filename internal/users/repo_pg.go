package users

import (
	"context"
	"database/sql"
	"errors"

	"atsmatch-backend/internal/plans"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Upsert inserts the user or refreshes mutable profile fields. The plan
// column is deliberately left alone on conflict: only the billing
// integration updates it.
func (r *PGRepo) Upsert(ctx context.Context, user User) error {
	const query = `
INSERT INTO users (id, email, plan, email_verified, created_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO UPDATE SET
	email = EXCLUDED.email,
	email_verified = EXCLUDED.email_verified`
	_, err := r.DB.ExecContext(ctx, query,
		user.ID,
		user.Email,
		string(user.Plan),
		user.EmailVerified,
		user.CreatedAt,
	)
	return err
}

// GetByID returns a user by ID.
func (r *PGRepo) GetByID(ctx context.Context, userID string) (User, error) {
	const query = `
SELECT id, email, plan, email_verified, created_at
FROM users
WHERE id = $1
LIMIT 1`
	var u User
	var plan string
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&u.ID,
		&u.Email,
		&plan,
		&u.EmailVerified,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	u.Plan = plans.ParseTier(plan)
	return u, nil
}
