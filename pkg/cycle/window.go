package cycle

import "time"

// PromptWindow holds the instants derived from one prompt's date.
// AvailableAt < ResponseCloseAt < ReleaseAt always holds.
type PromptWindow struct {
	Date            Date
	AvailableAt     time.Time
	ResponseCloseAt time.Time
	ReleaseAt       time.Time
}

// WindowState is where an instant falls relative to a PromptWindow.
type WindowState string

const (
	WindowUpcoming WindowState = "upcoming"
	WindowOpen     WindowState = "open"
	WindowClosed   WindowState = "closed"
	WindowReleased WindowState = "released"
)

// Window derives the prompt window for d.
func (s Schedule) Window(d Date) PromptWindow {
	return PromptWindow{
		Date:            d,
		AvailableAt:     s.at(d, s.Available),
		ResponseCloseAt: s.at(d, s.ResponseClose),
		ReleaseAt:       s.at(d, s.Release),
	}
}

// WindowFor parses a YYYY-MM-DD prompt date and derives its window.
func (s Schedule) WindowFor(date string) (PromptWindow, error) {
	d, err := ParseDate(date)
	if err != nil {
		return PromptWindow{}, err
	}
	return s.Window(d), nil
}

// State reports which part of the window now falls in.
func (w PromptWindow) State(now time.Time) WindowState {
	now = Instant(now)
	switch {
	case now.Before(w.AvailableAt):
		return WindowUpcoming
	case now.Before(w.ResponseCloseAt):
		return WindowOpen
	case now.Before(w.ReleaseAt):
		return WindowClosed
	default:
		return WindowReleased
	}
}
