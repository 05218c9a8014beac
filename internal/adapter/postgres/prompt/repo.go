// Package prompt implements the daily Prompt repository using PostgreSQL.
package prompt

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/promptcycle-backend/internal/adapter/postgres"
	"github.com/heartmarshall/promptcycle-backend/internal/domain"
	"github.com/heartmarshall/promptcycle-backend/pkg/cycle"
)

// Repo provides prompt persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new prompt repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const promptColumns = `id, prompt_date, text, created_at`

const getByDateSQL = `
SELECT ` + promptColumns + `
FROM prompts
WHERE prompt_date = $1`

const createSQL = `
INSERT INTO prompts (id, prompt_date, text, created_at)
VALUES ($1, $2, $3, $4)
RETURNING ` + promptColumns

// GetByDate returns the prompt scheduled for a civil date.
// Returns domain.ErrNotFound when no prompt is scheduled.
func (r *Repo) GetByDate(ctx context.Context, date cycle.Date) (*domain.Prompt, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanPrompt(querier.QueryRow(ctx, getByDateSQL, date.Time()))
	if err != nil {
		return nil, postgres.MapError(err, "prompt", date)
	}

	return p, nil
}

// Create schedules a prompt. A second prompt for the same date fails with
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, p domain.Prompt) (*domain.Prompt, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}

	created, err := scanPrompt(querier.QueryRow(ctx, createSQL,
		p.ID, p.Date.Time(), p.Text, p.CreatedAt.UTC().Truncate(time.Microsecond),
	))
	if err != nil {
		return nil, postgres.MapError(err, "prompt", p.Date)
	}

	return created, nil
}

func scanPrompt(row pgx.Row) (*domain.Prompt, error) {
	var (
		p    domain.Prompt
		date time.Time
	)
	if err := row.Scan(&p.ID, &date, &p.Text, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.Date = cycle.DateOf(date)
	return &p, nil
}
