// Package user implements user reads for notification fan-out using PostgreSQL.
package user

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/promptcycle-backend/internal/adapter/postgres"
	"github.com/heartmarshall/promptcycle-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `id, username, push_token, created_at`

const getByIDSQL = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1`

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return u, nil
}

// ListRecipients returns every user with a registered push token, ordered
// by id. A non-empty only restricts the result to those ids.
func (r *Repo) ListRecipients(ctx context.Context, only []uuid.UUID) ([]domain.Recipient, error) {
	q := postgres.Builder().
		Select("id", "push_token").
		From("users").
		Where(sq.NotEq{"push_token": nil}).
		Where(sq.NotEq{"push_token": ""}).
		OrderBy("id")
	if len(only) > 0 {
		q = q.Where(sq.Eq{"id": only})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build recipients query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list recipients: %w", err)
	}

	recipients, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Recipient, error) {
		var rc domain.Recipient
		err := row.Scan(&rc.UserID, &rc.PushToken)
		return rc, err
	})
	if err != nil {
		return nil, fmt.Errorf("list recipients: %w", err)
	}

	return recipients, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.PushToken, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}
