// Package daily implements the server-side use cases of the daily cycle:
// the current phase, today's prompt, prompt windows and personal deadlines.
package daily

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/promptcycle-backend/internal/domain"
	"github.com/heartmarshall/promptcycle-backend/pkg/cycle"
)

type promptRepo interface {
	GetByDate(ctx context.Context, date cycle.Date) (*domain.Prompt, error)
}

type openMarkRepo interface {
	Get(ctx context.Context, userID, promptID uuid.UUID) (*domain.PromptOpenMark, error)
	Record(ctx context.Context, mark domain.PromptOpenMark) (*domain.PromptOpenMark, bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service answers cycle questions for API clients.
type Service struct {
	log      *slog.Logger
	clock    clockwork.Clock
	schedule cycle.Schedule
	override cycle.Phase
	prompts  promptRepo
	marks    openMarkRepo
	tx       txManager
}

// NewService creates a daily cycle service. A valid override forces the
// phase reported by GetPhase; pass "" in production.
func NewService(
	logger *slog.Logger,
	clock clockwork.Clock,
	override cycle.Phase,
	prompts promptRepo,
	marks openMarkRepo,
	tx txManager,
) *Service {
	if override != "" {
		logger.Warn("phase override active", slog.String("phase", override.String()))
	}
	return &Service{
		log:      logger.With("service", "daily"),
		clock:    clock,
		schedule: cycle.DefaultSchedule(),
		override: override,
		prompts:  prompts,
		marks:    marks,
		tx:       tx,
	}
}

func (s *Service) now() time.Time {
	return cycle.Instant(s.clock.Now())
}
