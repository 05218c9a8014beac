package cycle

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidPhase = errors.New("invalid phase")

// Phase is the half of the daily alternation that is currently active.
type Phase string

const (
	PhasePosting Phase = "posting"
	PhaseViewing Phase = "viewing"
)

func (p Phase) String() string { return string(p) }

// IsValid reports whether p is a known phase.
func (p Phase) IsValid() bool {
	return p == PhasePosting || p == PhaseViewing
}

// ParsePhase parses a phase name. The empty string is rejected.
func ParsePhase(s string) (Phase, error) {
	p := Phase(s)
	if !p.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPhase, s)
	}
	return p, nil
}

// CyclePhaseInfo describes the phase active at a given instant.
// It is derived on demand and never stored.
type CyclePhaseInfo struct {
	Phase         Phase
	StartedAt     time.Time
	EndsAt        time.Time
	TimeRemaining time.Duration
	// Overridden is set when the phase came from WithPhaseOverride.
	Overridden bool
}

// PhaseOption adjusts a PhaseInfo computation.
type PhaseOption func(*phaseOptions)

type phaseOptions struct {
	override Phase
}

// WithPhaseOverride forces the reported phase, keeping the real boundaries.
// Used for manual testing; an empty or unknown phase is ignored.
func WithPhaseOverride(p Phase) PhaseOption {
	return func(o *phaseOptions) {
		if p.IsValid() {
			o.override = p
		}
	}
}

// flipOn returns the flip instant on civil date d.
func (s Schedule) flipOn(d Date) time.Time {
	return s.at(d, s.Flip)
}

// boundary returns the most recent flip at or before now.
func (s Schedule) boundary(now time.Time) (Date, time.Time) {
	today := s.conv.ToCivil(now).Date()
	flip := s.flipOn(today)
	if now.Before(flip) {
		yesterday := today.AddDays(-1)
		return yesterday, s.flipOn(yesterday)
	}
	return today, flip
}

// CycleDate returns the civil date of the flip that started the current
// phase. Before the flip hour this is yesterday's date.
func (s Schedule) CycleDate(now time.Time) Date {
	d, _ := s.boundary(Instant(now))
	return d
}

// CurrentPhase returns the phase active at now. Parity counts whole civil
// days between the current boundary and the anchor, so the flip stays at
// the same wall-clock hour on daylight-saving days.
func (s Schedule) CurrentPhase(now time.Time) Phase {
	d, _ := s.boundary(Instant(now))
	return s.phaseOn(d)
}

func (s Schedule) phaseOn(d Date) Phase {
	days := d.DaysSince(s.Anchor.Date())
	if days%2 == 0 {
		return PhasePosting
	}
	return PhaseViewing
}

// nextFlip returns today's flip if it is still ahead, otherwise tomorrow's.
func (s Schedule) nextFlip(now time.Time) time.Time {
	today := s.conv.ToCivil(now).Date()
	if flip := s.flipOn(today); now.Before(flip) {
		return flip
	}
	return s.flipOn(today.AddDays(1))
}

// TimeUntilNextPhase returns the time left until the next flip, never negative.
func (s Schedule) TimeUntilNextPhase(now time.Time) time.Duration {
	now = Instant(now)
	return max(0, s.nextFlip(now).Sub(now))
}

// PhaseInfo combines the phase with its boundaries.
func (s Schedule) PhaseInfo(now time.Time, opts ...PhaseOption) CyclePhaseInfo {
	var o phaseOptions
	for _, opt := range opts {
		opt(&o)
	}

	now = Instant(now)
	d, started := s.boundary(now)
	ends := s.nextFlip(now)

	info := CyclePhaseInfo{
		Phase:         s.phaseOn(d),
		StartedAt:     started,
		EndsAt:        ends,
		TimeRemaining: max(0, ends.Sub(now)),
	}
	if o.override != "" {
		info.Phase = o.override
		info.Overridden = true
	}
	return info
}
