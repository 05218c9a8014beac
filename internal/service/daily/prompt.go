package daily

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/promptcycle-backend/internal/domain"
	"github.com/heartmarshall/promptcycle-backend/pkg/ctxutil"
	"github.com/heartmarshall/promptcycle-backend/pkg/cycle"
)

// TodayView describes the prompt of the current cycle date. Prompt is nil
// when none is scheduled; the window is still reported.
type TodayView struct {
	Prompt *domain.Prompt
	Window cycle.PromptWindow
	State  cycle.WindowState
}

// Available reports whether a prompt is scheduled today.
func (v TodayView) Available() bool { return v.Prompt != nil }

// DeadlineView is a caller's personal response deadline for one prompt.
// Deadline is only meaningful when Opened is true.
type DeadlineView struct {
	Prompt   *domain.Prompt
	Window   cycle.PromptWindow
	Opened   bool
	Deadline cycle.ResponseDeadline
}

// GetToday returns the prompt of the current cycle date. A missing prompt
// is not an error.
func (s *Service) GetToday(ctx context.Context) (TodayView, error) {
	now := s.now()
	date := s.schedule.CycleDate(now)
	window := s.schedule.Window(date)

	view := TodayView{Window: window, State: window.State(now)}

	p, err := s.prompts.GetByDate(ctx, date)
	switch {
	case err == nil:
		view.Prompt = p
	case errors.Is(err, domain.ErrNotFound):
		s.log.DebugContext(ctx, "no prompt scheduled", slog.String("date", date.String()))
	default:
		return TodayView{}, fmt.Errorf("get prompt %s: %w", date, err)
	}

	return view, nil
}

// GetWindow derives the window of a YYYY-MM-DD prompt date.
func (s *Service) GetWindow(_ context.Context, date string) (cycle.PromptWindow, error) {
	w, err := s.schedule.WindowFor(date)
	if err != nil {
		return cycle.PromptWindow{}, domain.InvalidCycleInput("date", err)
	}
	return w, nil
}

// GetDeadline returns the caller's response deadline for the prompt of date.
// A caller that never opened the prompt gets Opened == false.
func (s *Service) GetDeadline(ctx context.Context, date string) (DeadlineView, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return DeadlineView{}, domain.ErrUnauthorized
	}

	d, err := cycle.ParseDate(date)
	if err != nil {
		return DeadlineView{}, domain.InvalidCycleInput("date", err)
	}

	p, err := s.prompts.GetByDate(ctx, d)
	if err != nil {
		return DeadlineView{}, fmt.Errorf("get prompt %s: %w", d, err)
	}

	view := DeadlineView{Prompt: p, Window: s.schedule.Window(d)}

	mark, err := s.marks.Get(ctx, userID, p.ID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return view, nil
	case err != nil:
		return DeadlineView{}, fmt.Errorf("get open mark: %w", err)
	}

	view.Deadline, view.Opened = s.schedule.ResponseDeadline(s.now(), &mark.OpenedAt, view.Window.ResponseCloseAt)
	return view, nil
}

// OpenPrompt records the caller's first open of the prompt of date and
// returns the resulting deadline. Opening again keeps the first instant.
// A prompt can only be opened while its window is open.
func (s *Service) OpenPrompt(ctx context.Context, date string) (DeadlineView, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return DeadlineView{}, domain.ErrUnauthorized
	}

	d, err := cycle.ParseDate(date)
	if err != nil {
		return DeadlineView{}, domain.InvalidCycleInput("date", err)
	}

	now := s.now()
	view := DeadlineView{Window: s.schedule.Window(d)}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		p, err := s.prompts.GetByDate(ctx, d)
		if err != nil {
			return fmt.Errorf("get prompt %s: %w", d, err)
		}
		view.Prompt = p

		existing, err := s.marks.Get(ctx, userID, p.ID)
		switch {
		case err == nil:
			view.Deadline, view.Opened = s.schedule.ResponseDeadline(now, &existing.OpenedAt, view.Window.ResponseCloseAt)
			return nil
		case !errors.Is(err, domain.ErrNotFound):
			return fmt.Errorf("get open mark: %w", err)
		}

		if state := view.Window.State(now); state != cycle.WindowOpen {
			return domain.NewValidationError("date", "prompt is "+string(state)+", not open for responses")
		}

		mark, created, err := s.marks.Record(ctx, domain.PromptOpenMark{UserID: userID, PromptID: p.ID, OpenedAt: now})
		if err != nil {
			return fmt.Errorf("record open mark: %w", err)
		}
		if created {
			s.log.InfoContext(ctx, "prompt opened",
				slog.String("date", d.String()),
				slog.String("user_id", userID.String()),
			)
		}

		view.Deadline, view.Opened = s.schedule.ResponseDeadline(now, &mark.OpenedAt, view.Window.ResponseCloseAt)
		return nil
	})
	if err != nil {
		return DeadlineView{}, err
	}

	return view, nil
}
