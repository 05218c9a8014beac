// Package post answers which users already responded to a prompt.
package post

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/promptcycle-backend/internal/adapter/postgres"
)

// Repo reads posts backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new post repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// RespondedUserIDs returns the set of users that posted a response to
// promptID. A non-empty among restricts the lookup to those users.
func (r *Repo) RespondedUserIDs(ctx context.Context, promptID uuid.UUID, among []uuid.UUID) (map[uuid.UUID]bool, error) {
	q := postgres.Builder().
		Select("DISTINCT user_id").
		From("posts").
		Where(sq.Eq{"prompt_id": promptID})
	if len(among) > 0 {
		q = q.Where(sq.Eq{"user_id": among})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build responded query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "posts of prompt", promptID)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, postgres.MapError(err, "posts of prompt", promptID)
	}

	responded := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		responded[id] = true
	}
	return responded, nil
}
