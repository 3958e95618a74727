package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/inventory-service/internal/domain"
)

// SessionRepository manages customer session persistence. Rows are created
// at login/registration, never mutated, and deleted at logout. Expiry is
// lazy: the validity predicate filters on expires_at, no reaper runs.
type SessionRepository interface {
	Create(ctx context.Context, customerID, token string, ttl time.Duration) (*domain.Session, error)
	IsValid(ctx context.Context, token string) (bool, error)
	Revoke(ctx context.Context, token string) error
}

type sessionRepository struct {
	pool *pgxpool.Pool
}

// NewSessionRepository returns a Postgres-backed implementation.
func NewSessionRepository(pool *pgxpool.Pool) SessionRepository {
	return &sessionRepository{pool: pool}
}

func (r *sessionRepository) Create(ctx context.Context, customerID, token string, ttl time.Duration) (*domain.Session, error) {
	const query = `
        INSERT INTO customer_sessions (customer_id, token, expires_at)
        VALUES ($1, $2, $3)
        RETURNING id, created_at`

	session := &domain.Session{
		CustomerID: customerID,
		Token:      token,
		ExpiresAt:  time.Now().Add(ttl),
	}
	if err := r.pool.QueryRow(ctx, query,
		session.CustomerID,
		session.Token,
		session.ExpiresAt,
	).Scan(&session.ID, &session.CreatedAt); err != nil {
		return nil, err
	}
	return session, nil
}

// IsValid reports whether a live session row exists for the exact token value.
func (r *sessionRepository) IsValid(ctx context.Context, token string) (bool, error) {
	const query = `
        SELECT EXISTS (
            SELECT 1 FROM customer_sessions
            WHERE token=$1 AND expires_at > NOW()
        )`

	var valid bool
	if err := r.pool.QueryRow(ctx, query, token).Scan(&valid); err != nil {
		return false, err
	}
	return valid, nil
}

// Revoke deletes the session row. Deleting a nonexistent row is not an error.
func (r *sessionRepository) Revoke(ctx context.Context, token string) error {
	const query = `DELETE FROM customer_sessions WHERE token=$1`

	_, err := r.pool.Exec(ctx, query, token)
	return err
}
