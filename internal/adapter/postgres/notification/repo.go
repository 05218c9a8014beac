// Package notification implements the notification outbox using PostgreSQL.
package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/promptcycle-backend/internal/adapter/postgres"
	"github.com/heartmarshall/promptcycle-backend/internal/domain"
	"github.com/heartmarshall/promptcycle-backend/pkg/cycle"
)

// chunkSize keeps one INSERT well below the 65535 bind-parameter limit.
const chunkSize = 1000

// Repo provides outbox persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new outbox repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const notificationColumns = `id, user_id, prompt_id, type, tick, cycle_date, created_at`

const listByCycleDateSQL = `
SELECT ` + notificationColumns + `
FROM notification_outbox
WHERE cycle_date = $1
ORDER BY created_at, user_id`

// Enqueue inserts notifications, skipping any (user, type, cycle date) that
// is already queued. It returns how many rows were actually inserted.
func (r *Repo) Enqueue(ctx context.Context, items []domain.Notification) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var inserted int64
	for start := 0; start < len(items); start += chunkSize {
		chunk := items[start:min(start+chunkSize, len(items))]

		q := postgres.Builder().
			Insert("notification_outbox").
			Columns("id", "user_id", "prompt_id", "type", "tick", "cycle_date", "created_at").
			Suffix("ON CONFLICT (user_id, type, cycle_date) DO NOTHING")

		now := time.Now().UTC().Truncate(time.Microsecond)
		for _, n := range chunk {
			if n.ID == uuid.Nil {
				n.ID = uuid.New()
			}
			createdAt := now
			if !n.CreatedAt.IsZero() {
				createdAt = n.CreatedAt.UTC().Truncate(time.Microsecond)
			}
			q = q.Values(n.ID, n.UserID, n.PromptID, string(n.Type), string(n.Tick), n.CycleDate.Time(), createdAt)
		}

		query, args, err := q.ToSql()
		if err != nil {
			return inserted, fmt.Errorf("build enqueue query: %w", err)
		}

		tag, err := querier.Exec(ctx, query, args...)
		if err != nil {
			return inserted, postgres.MapError(err, "notifications", chunk[0].CycleDate)
		}
		inserted += tag.RowsAffected()
	}

	return inserted, nil
}

// ListByCycleDate returns every queued notification of one cycle date.
func (r *Repo) ListByCycleDate(ctx context.Context, date cycle.Date) ([]domain.Notification, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listByCycleDateSQL, date.Time())
	if err != nil {
		return nil, postgres.MapError(err, "notifications", date)
	}

	items, err := pgx.CollectRows(rows, scanNotification)
	if err != nil {
		return nil, postgres.MapError(err, "notifications", date)
	}
	return items, nil
}

func scanNotification(row pgx.CollectableRow) (domain.Notification, error) {
	var (
		n        domain.Notification
		typ      string
		tick     string
		cycleDay time.Time
	)
	if err := row.Scan(&n.ID, &n.UserID, &n.PromptID, &typ, &tick, &cycleDay, &n.CreatedAt); err != nil {
		return domain.Notification{}, err
	}
	n.Type = cycle.NotificationType(typ)
	n.Tick = cycle.Tick(tick)
	n.CycleDate = cycle.DateOf(cycleDay)
	return n, nil
}
