// Package openmark persists the instant a user first opened a prompt.
package openmark

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/promptcycle-backend/internal/adapter/postgres"
	"github.com/heartmarshall/promptcycle-backend/internal/domain"
)

// Repo provides open-mark persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new open-mark repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const markColumns = `user_id, prompt_id, opened_at`

const getSQL = `
SELECT ` + markColumns + `
FROM prompt_open_marks
WHERE user_id = $1 AND prompt_id = $2`

const recordSQL = `
INSERT INTO prompt_open_marks (user_id, prompt_id, opened_at)
VALUES ($1, $2, $3)
ON CONFLICT (user_id, prompt_id) DO NOTHING
RETURNING ` + markColumns

// Get returns the mark for a user and prompt.
// Returns domain.ErrNotFound when the user has not opened the prompt.
func (r *Repo) Get(ctx context.Context, userID, promptID uuid.UUID) (*domain.PromptOpenMark, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	m, err := scanMark(querier.QueryRow(ctx, getSQL, userID, promptID))
	if err != nil {
		return nil, postgres.MapError(err, "open_mark", markKey(userID, promptID))
	}

	return m, nil
}

// Record stores mark unless one already exists. The stored mark is returned
// either way; created reports whether this call wrote it. An existing
// opened_at is never overwritten.
func (r *Repo) Record(ctx context.Context, mark domain.PromptOpenMark) (stored *domain.PromptOpenMark, created bool, err error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	openedAt := mark.OpenedAt.UTC().Truncate(time.Microsecond)

	m, err := scanMark(querier.QueryRow(ctx, recordSQL, mark.UserID, mark.PromptID, openedAt))
	switch {
	case err == nil:
		return m, true, nil
	case errors.Is(err, pgx.ErrNoRows):
		existing, getErr := r.Get(ctx, mark.UserID, mark.PromptID)
		if getErr != nil {
			return nil, false, fmt.Errorf("read existing mark: %w", getErr)
		}
		return existing, false, nil
	default:
		return nil, false, postgres.MapError(err, "open_mark", markKey(mark.UserID, mark.PromptID))
	}
}

func markKey(userID, promptID uuid.UUID) string {
	return userID.String() + "/" + promptID.String()
}

func scanMark(row pgx.Row) (*domain.PromptOpenMark, error) {
	var m domain.PromptOpenMark
	if err := row.Scan(&m.UserID, &m.PromptID, &m.OpenedAt); err != nil {
		return nil, err
	}
	return &m, nil
}
