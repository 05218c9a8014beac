package countdown

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/heartmarshall/promptcycle-backend/pkg/cycle"
)

// Format renders a snapshot as one status line.
func Format(s Snapshot) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[%s] next phase in %s", s.Phase.Phase, clock(s.Phase.TimeRemaining))
	if s.Phase.Overridden {
		b.WriteString(" (override)")
	}

	b.WriteString(" | prompt ")
	switch s.WindowState {
	case cycle.WindowUpcoming:
		fmt.Fprintf(&b, "opens in %s", clock(s.Window.AvailableAt.Sub(s.Now)))
	case cycle.WindowOpen:
		fmt.Fprintf(&b, "closes in %s", clock(s.Window.ResponseCloseAt.Sub(s.Now)))
	case cycle.WindowClosed:
		fmt.Fprintf(&b, "closed, released in %s", clock(s.Window.ReleaseAt.Sub(s.Now)))
	default:
		b.WriteString("released")
	}

	switch s.Mark {
	case MarkOpened:
		if s.Deadline.Closed {
			b.WriteString(" | your time is up")
		} else {
			fmt.Fprintf(&b, " | your deadline in %s", clock(s.Deadline.Remaining))
		}
	case MarkNotOpened:
		b.WriteString(" | not opened yet")
	}

	return b.String()
}

// LineRenderer returns a render func that redraws one terminal line on w.
func LineRenderer(w io.Writer) func(Snapshot) {
	return func(s Snapshot) {
		fmt.Fprintf(w, "\r\033[K%s", Format(s))
	}
}

func clock(d time.Duration) string {
	d = max(d, 0).Truncate(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	return fmt.Sprintf("%02d:%02d:%02d", h, m, d/time.Second)
}
