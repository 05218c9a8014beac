// Package countdown is the interactive-client host of the daily cycle: it
// recomputes the phase, prompt window and personal deadline once per tick
// and hands each snapshot to a renderer.
package countdown

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/promptcycle-backend/pkg/cycle"
)

// ErrStarted is returned by Start on a ticker that was already started.
var ErrStarted = errors.New("countdown: already started")

// MarkState says what is known about the user's open mark for the prompt
// of the current cycle date.
type MarkState int

const (
	MarkUnknown MarkState = iota
	MarkNotOpened
	MarkOpened
)

func (m MarkState) String() string {
	switch m {
	case MarkNotOpened:
		return "not_opened"
	case MarkOpened:
		return "opened"
	default:
		return "unknown"
	}
}

// MarkSource returns when the user opened the prompt of date, or nil if
// they have not.
type MarkSource interface {
	OpenedAt(ctx context.Context, date cycle.Date) (*time.Time, error)
}

// Snapshot is everything one tick renders.
type Snapshot struct {
	Now         time.Time
	Phase       cycle.CyclePhaseInfo
	Window      cycle.PromptWindow
	WindowState cycle.WindowState
	Mark        MarkState
	// Deadline is set only when Mark is MarkOpened.
	Deadline cycle.ResponseDeadline
}

// Options tune a Ticker. Zero values take defaults.
type Options struct {
	Interval      time.Duration // default 1s
	FetchTimeout  time.Duration // default 5s
	RefreshMarkIn time.Duration // re-ask a not-opened mark after this; default 30s
	PhaseOverride cycle.Phase
	Logger        *slog.Logger
}

type markCache struct {
	date      cycle.Date
	state     MarkState
	openedAt  time.Time
	fetching  bool
	fetchedAt time.Time
}

// Ticker drives the countdown. It is safe for concurrent use.
type Ticker struct {
	clock    clockwork.Clock
	schedule cycle.Schedule
	src      MarkSource
	render   func(Snapshot)
	opts     Options
	log      *slog.Logger

	mu      sync.Mutex
	mark    markCache
	started bool
	cancel  context.CancelFunc
	done    chan struct{}
	fetches sync.WaitGroup
}

// NewTicker creates a stopped ticker. render is called from the ticker
// goroutine and must not block for long.
func NewTicker(clock clockwork.Clock, src MarkSource, render func(Snapshot), opts Options) *Ticker {
	if opts.Interval <= 0 {
		opts.Interval = time.Second
	}
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = 5 * time.Second
	}
	if opts.RefreshMarkIn <= 0 {
		opts.RefreshMarkIn = 30 * time.Second
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Ticker{
		clock:    clock,
		schedule: cycle.DefaultSchedule(),
		src:      src,
		render:   render,
		opts:     opts,
		log:      logger.With("component", "countdown"),
	}
}

// Start renders once immediately and then once per interval until ctx is
// done or Stop is called.
func (t *Ticker) Start(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return ErrStarted
	}
	t.started = true

	ctx, t.cancel = context.WithCancel(ctx)
	t.done = make(chan struct{})

	go t.loop(ctx)
	return nil
}

// Stop terminates the loop and waits for it and any pending mark fetch to
// exit. Calling Stop more than once, or before Start, is a no-op.
func (t *Ticker) Stop() {
	t.mu.Lock()
	cancel, done := t.cancel, t.done
	t.cancel = nil
	t.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	t.fetches.Wait()
}

// Done is closed when the loop has exited. It is nil before Start.
func (t *Ticker) Done() <-chan struct{} {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.done
}

func (t *Ticker) loop(ctx context.Context) {
	defer close(t.done)

	tk := t.clock.NewTicker(t.opts.Interval)
	defer tk.Stop()

	t.render(t.snapshot(ctx))

	for {
		select {
		case <-ctx.Done():
			return
		case <-tk.Chan():
			t.render(t.snapshot(ctx))
		}
	}
}

// snapshot computes the state at the current clock reading. It never
// blocks on the mark source.
func (t *Ticker) snapshot(ctx context.Context) Snapshot {
	now := cycle.Instant(t.clock.Now())
	date := t.schedule.CycleDate(now)
	window := t.schedule.Window(date)

	s := Snapshot{
		Now:         now,
		Phase:       t.schedule.PhaseInfo(now, cycle.WithPhaseOverride(t.opts.PhaseOverride)),
		Window:      window,
		WindowState: window.State(now),
	}

	t.mu.Lock()
	if t.mark.date != date {
		t.mark = markCache{date: date}
	}
	s.Mark = t.mark.state
	openedAt := t.mark.openedAt
	if t.needsFetch(now) {
		t.mark.fetching = true
		t.fetches.Add(1)
		go t.fetch(ctx, date)
	}
	t.mu.Unlock()

	if s.Mark == MarkOpened {
		s.Deadline, _ = t.schedule.ResponseDeadline(now, &openedAt, window.ResponseCloseAt)
	}
	return s
}

// needsFetch must be called with t.mu held.
func (t *Ticker) needsFetch(now time.Time) bool {
	if t.src == nil || t.mark.fetching {
		return false
	}
	switch t.mark.state {
	case MarkOpened:
		return false
	case MarkNotOpened:
		return now.Sub(t.mark.fetchedAt) >= t.opts.RefreshMarkIn
	default:
		return true
	}
}

func (t *Ticker) fetch(ctx context.Context, date cycle.Date) {
	defer t.fetches.Done()

	fctx, cancel := clockwork.WithTimeout(ctx, t.clock, t.opts.FetchTimeout)
	defer cancel()

	openedAt, err := t.src.OpenedAt(fctx, date)

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.mark.date != date {
		return
	}
	t.mark.fetching = false
	t.mark.fetchedAt = cycle.Instant(t.clock.Now())

	switch {
	case err != nil:
		if ctx.Err() == nil {
			t.log.Warn("fetch open mark", slog.String("date", date.String()), slog.String("error", err.Error()))
		}
		t.mark.state = MarkUnknown
	case openedAt == nil:
		t.mark.state = MarkNotOpened
	default:
		t.mark.state = MarkOpened
		t.mark.openedAt = cycle.Instant(*openedAt)
	}
}
