// Package notify runs scheduled trigger ticks: it decides which
// notification a tick produces and enqueues it for the matching users.
package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	redisadapter "github.com/heartmarshall/promptcycle-backend/internal/adapter/redis"
	"github.com/heartmarshall/promptcycle-backend/internal/domain"
	"github.com/heartmarshall/promptcycle-backend/pkg/cycle"
)

type userRepo interface {
	ListRecipients(ctx context.Context, only []uuid.UUID) ([]domain.Recipient, error)
}

type promptRepo interface {
	GetByDate(ctx context.Context, date cycle.Date) (*domain.Prompt, error)
}

type postRepo interface {
	RespondedUserIDs(ctx context.Context, promptID uuid.UUID, among []uuid.UUID) (map[uuid.UUID]bool, error)
}

type outboxRepo interface {
	Enqueue(ctx context.Context, items []domain.Notification) (int64, error)
}

type tickGuard interface {
	Claim(ctx context.Context, tick cycle.Tick, date cycle.Date) (redisadapter.Claim, bool, error)
	Release(ctx context.Context, c redisadapter.Claim) error
}

// Result summarizes one tick invocation.
type Result struct {
	Decision   cycle.Decision
	CycleDate  cycle.Date
	Claimed    bool
	Recipients int
	Enqueued   int64
}

// Service is the scheduled trigger host.
type Service struct {
	log      *slog.Logger
	clock    clockwork.Clock
	schedule cycle.Schedule
	users    userRepo
	prompts  promptRepo
	posts    postRepo
	outbox   outboxRepo
	guard    tickGuard
}

// NewService creates a trigger service.
func NewService(
	logger *slog.Logger,
	clock clockwork.Clock,
	users userRepo,
	prompts promptRepo,
	posts postRepo,
	outbox outboxRepo,
	guard tickGuard,
) *Service {
	return &Service{
		log:      logger.With("service", "notify"),
		clock:    clock,
		schedule: cycle.DefaultSchedule(),
		users:    users,
		prompts:  prompts,
		posts:    posts,
		outbox:   outbox,
		guard:    guard,
	}
}

// RunTick handles one invocation of tick. Repeating it for the same tick
// and cycle date enqueues nothing new. Any collaborator failure is
// returned; the claim is then released so a retry can run.
func (s *Service) RunTick(ctx context.Context, tick cycle.Tick) (Result, error) {
	now := cycle.Instant(s.clock.Now())
	phase := s.schedule.CurrentPhase(now)
	decision := cycle.Decide(tick, phase)

	res := Result{Decision: decision, CycleDate: s.schedule.CycleDate(now)}

	log := s.log.With(
		slog.String("tick", string(tick)),
		slog.String("phase", phase.String()),
		slog.String("cycle_date", res.CycleDate.String()),
	)
	s.warnIfOffSchedule(log, tick, now)

	if !decision.Fires() {
		log.InfoContext(ctx, "tick decided no notification")
		return res, nil
	}

	claim, ok, err := s.guard.Claim(ctx, tick, res.CycleDate)
	if err != nil {
		return res, fmt.Errorf("claim tick: %w", err)
	}
	if !ok {
		log.InfoContext(ctx, "tick already handled")
		return res, nil
	}
	res.Claimed = true

	if err := s.fanOut(ctx, log, now, &res); err != nil {
		if relErr := s.guard.Release(context.WithoutCancel(ctx), claim); relErr != nil {
			log.ErrorContext(ctx, "release tick claim", slog.String("error", relErr.Error()))
		}
		return res, err
	}

	log.InfoContext(ctx, "tick enqueued",
		slog.String("decision", string(decision.Type)),
		slog.Int("recipients", res.Recipients),
		slog.Int64("enqueued", res.Enqueued),
	)
	return res, nil
}

func (s *Service) fanOut(ctx context.Context, log *slog.Logger, now time.Time, res *Result) error {
	var (
		recipients []domain.Recipient
		prompt     *domain.Prompt
		responded  map[uuid.UUID]bool
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		recipients, err = s.users.ListRecipients(gctx, nil)
		if err != nil {
			return fmt.Errorf("list recipients: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		p, err := s.prompts.GetByDate(gctx, res.CycleDate)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return nil
		case err != nil:
			return fmt.Errorf("get prompt %s: %w", res.CycleDate, err)
		}
		prompt = p

		if res.Decision.Filter != cycle.RecipientsNotResponded {
			return nil
		}
		responded, err = s.posts.RespondedUserIDs(gctx, p.ID, nil)
		if err != nil {
			return fmt.Errorf("responded users: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	// A reminder targets users who have not answered the day's prompt.
	if prompt == nil && res.Decision.Filter == cycle.RecipientsNotResponded {
		log.WarnContext(ctx, "no active prompt, reminder skipped")
		return nil
	}

	ids := make([]uuid.UUID, len(recipients))
	for i, r := range recipients {
		ids[i] = r.UserID
	}
	selected := cycle.SelectRecipients(res.Decision, ids, responded)
	res.Recipients = len(selected)

	if len(selected) == 0 {
		return nil
	}

	var promptID *uuid.UUID
	if prompt != nil {
		promptID = &prompt.ID
	}

	items := make([]domain.Notification, len(selected))
	for i, userID := range selected {
		items[i] = domain.Notification{
			ID:        uuid.New(),
			UserID:    userID,
			PromptID:  promptID,
			Type:      res.Decision.Type,
			Tick:      res.Decision.Tick,
			CycleDate: res.CycleDate,
			CreatedAt: now.UTC(),
		}
	}

	n, err := s.outbox.Enqueue(ctx, items)
	if err != nil {
		return fmt.Errorf("enqueue notifications: %w", err)
	}
	res.Enqueued = n
	return nil
}

// warnIfOffSchedule flags invocations far from the tick's civil time; the
// phase is still taken from now.
func (s *Service) warnIfOffSchedule(log *slog.Logger, tick cycle.Tick, now time.Time) {
	at, ok := s.schedule.TickTime(tick)
	if !ok {
		return
	}
	civ := s.schedule.Converter().ToCivil(now)
	scheduled := s.schedule.Converter().ToInstant(civ.Date().At(at))
	if drift := now.Sub(scheduled).Abs(); drift > time.Hour {
		log.Warn("tick invoked off schedule",
			slog.String("scheduled", at.String()),
			slog.Duration("drift", drift),
		)
	}
}
