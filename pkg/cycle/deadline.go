package cycle

import "time"

// ResponseDeadline is one user's effective deadline for the active prompt.
type ResponseDeadline struct {
	OpenedAt  time.Time
	Deadline  time.Time
	Remaining time.Duration
	// Clamped is set when the global close came before OpenedAt+grace.
	Clamped bool
	// Closed is set once Remaining hits zero, even if the global window is open.
	Closed bool
}

// ResponseDeadline derives the user's deadline from the instant they opened
// the prompt. ok is false while openedAt is nil ("not yet opened"), which
// is a normal state.
func (s Schedule) ResponseDeadline(now time.Time, openedAt *time.Time, closeAt time.Time) (ResponseDeadline, bool) {
	if openedAt == nil {
		return ResponseDeadline{}, false
	}

	now = Instant(now)
	opened := Instant(*openedAt)
	deadline := opened.Add(s.ResponseGrace)
	clamped := false
	if closeAt.Before(deadline) {
		deadline = closeAt
		clamped = true
	}

	remaining := max(0, deadline.Sub(now))
	return ResponseDeadline{
		OpenedAt:  opened,
		Deadline:  deadline,
		Remaining: remaining,
		Clamped:   clamped,
		Closed:    remaining == 0,
	}, true
}
