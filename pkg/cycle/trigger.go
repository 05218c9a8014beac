package cycle

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidTick = errors.New("invalid tick")

// Tick names a fixed daily time at which the scheduler invokes the trigger.
type Tick string

const (
	// TickPhaseFlip fires at the flip hour.
	TickPhaseFlip Tick = "phase_flip"
	// TickReminder fires mid-phase.
	TickReminder Tick = "reminder"
)

func (t Tick) String() string { return string(t) }

// IsKnown reports whether t is one of the scheduled ticks.
func (t Tick) IsKnown() bool {
	return t == TickPhaseFlip || t == TickReminder
}

// ParseTick normalizes a tick name from the transport boundary. Unknown but
// well-formed names are accepted and decide to NotifyNone.
func ParseTick(s string) (Tick, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidTick)
	}
	return Tick(s), nil
}

// TickTime returns the civil time of day a known tick fires at.
func (s Schedule) TickTime(t Tick) (ClockTime, bool) {
	switch t {
	case TickPhaseFlip:
		return s.Flip, true
	case TickReminder:
		return s.Reminder, true
	default:
		return ClockTime{}, false
	}
}

// NotificationType is the closed set of notifications the trigger can fire.
type NotificationType string

const (
	NotifyNone            NotificationType = "none"
	NotifyPostingOpened   NotificationType = "posting_opened"
	NotifyViewingOpened   NotificationType = "viewing_opened"
	NotifyPostingReminder NotificationType = "posting_reminder"
)

// RecipientFilter selects who receives a notification.
type RecipientFilter string

const (
	RecipientsNone         RecipientFilter = "none"
	RecipientsAll          RecipientFilter = "all"
	RecipientsNotResponded RecipientFilter = "not_responded"
)

// Decision is what the trigger should do for one tick.
type Decision struct {
	Tick   Tick
	Phase  Phase
	Type   NotificationType
	Filter RecipientFilter
}

// Fires reports whether a notification should be sent at all.
func (d Decision) Fires() bool {
	return d.Type != NotifyNone
}

// Includes is the recipient predicate: responded tells whether the user has
// already submitted a response for the active prompt.
func (d Decision) Includes(responded bool) bool {
	switch d.Filter {
	case RecipientsAll:
		return true
	case RecipientsNotResponded:
		return !responded
	default:
		return false
	}
}

// Decide maps a tick and the phase at that instant to a notification.
// It has no state: identical inputs give identical decisions.
func Decide(tick Tick, phase Phase) Decision {
	d := Decision{Tick: tick, Phase: phase, Type: NotifyNone, Filter: RecipientsNone}

	switch tick {
	case TickPhaseFlip:
		switch phase {
		case PhasePosting:
			d.Type, d.Filter = NotifyPostingOpened, RecipientsAll
		case PhaseViewing:
			d.Type, d.Filter = NotifyViewingOpened, RecipientsAll
		}
	case TickReminder:
		if phase == PhasePosting {
			d.Type, d.Filter = NotifyPostingReminder, RecipientsNotResponded
		}
	}
	return d
}

// SelectRecipients applies the decision's predicate to all. responded holds
// the users who already answered the active prompt; nil means nobody has.
func SelectRecipients[K comparable](d Decision, all []K, responded map[K]bool) []K {
	out := make([]K, 0, len(all))
	for _, id := range all {
		if d.Includes(responded[id]) {
			out = append(out, id)
		}
	}
	return out
}
