// Package cycle computes the daily posting/viewing cycle: civil <-> absolute
// time conversion in the app zone, phase parity against a fixed anchor,
// per-prompt windows, per-user response deadlines and the notification
// decision for scheduled trigger ticks.
//
// Everything here is a pure function of its inputs. The server trigger and
// the countdown client both import this package so they cannot drift apart.
package cycle

import (
	"fmt"
	"time"
	_ "time/tzdata" // both hosts must read the same zone rules
)

// ZoneName is the only civil zone the cycle is defined in.
const ZoneName = "America/New_York"

// Anchor is the first posting day at the flip hour.
var Anchor = CivilDateTime{Year: 2026, Month: 1, Day: 12, Hour: 6}

// Schedule bundles the zone and the fixed times of day the cycle is built from.
type Schedule struct {
	conv *Converter

	Anchor        CivilDateTime
	Flip          ClockTime
	Reminder      ClockTime
	Available     ClockTime
	ResponseClose ClockTime
	Release       ClockTime
	ResponseGrace time.Duration
}

// DefaultSchedule returns the production schedule. Every host uses it.
func DefaultSchedule() Schedule {
	loc, err := time.LoadLocation(ZoneName)
	if err != nil {
		// tzdata is embedded, so this only fires on a broken build.
		panic(fmt.Sprintf("cycle: load %s: %v", ZoneName, err))
	}
	return Schedule{
		conv:          NewConverter(loc),
		Anchor:        Anchor,
		Flip:          ClockTime{Hour: 6},
		Reminder:      ClockTime{Hour: 18},
		Available:     ClockTime{Hour: 6},
		ResponseClose: ClockTime{Hour: 12},
		Release:       ClockTime{Hour: 12, Minute: 30},
		ResponseGrace: 30 * time.Minute,
	}
}

// Converter returns the civil time converter for the schedule's zone.
func (s Schedule) Converter() *Converter { return s.conv }

// Location returns the schedule's zone.
func (s Schedule) Location() *time.Location { return s.conv.loc }

// at converts a civil date plus time of day to an instant.
func (s Schedule) at(d Date, c ClockTime) time.Time {
	return s.conv.ToInstant(d.At(c))
}

// Instant truncates t to the millisecond precision the cycle works in.
func Instant(t time.Time) time.Time {
	return t.Truncate(time.Millisecond)
}
