package cycle

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidClockTime = errors.New("invalid time of day")
	ErrInvalidCivilTime = errors.New("invalid civil time")
)

const dateLayout = "2006-01-02"

// Date is a civil calendar date with no zone attached.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses a YYYY-MM-DD string. It never substitutes a default.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w %q: %v", ErrInvalidDate, s, err)
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// At combines the date with a time of day.
func (d Date) At(c ClockTime) CivilDateTime {
	return CivilDateTime{Year: d.Year, Month: d.Month, Day: d.Day, Hour: c.Hour, Minute: c.Minute}
}

// AddDays returns the date n civil days later (n may be negative).
func (d Date) AddDays(n int) Date {
	return DateOf(d.midnight().AddDate(0, 0, n))
}

// DaysSince returns the number of whole civil days from other to d.
func (d Date) DaysSince(other Date) int {
	return int(d.midnight().Sub(other.midnight()) / (24 * time.Hour))
}

// Before reports whether d is earlier than other.
func (d Date) Before(other Date) bool {
	return d.midnight().Before(other.midnight())
}

// DateOf reads the calendar date of t in t's own location. It is meant for
// values that already represent a civil date (a scanned SQL DATE); use
// Converter.ToCivil for instants.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Time returns the date as UTC midnight, the form SQL DATE parameters take.
func (d Date) Time() time.Time { return d.midnight() }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d == Date{} }

// MarshalText formats the date as YYYY-MM-DD.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText parses a YYYY-MM-DD date.
func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// midnight is the date as a zone-less value. UTC has no transitions, so
// differences between two of these are exact multiples of 24h.
func (d Date) midnight() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// ClockTime is a time-of-day marker.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClockTime parses an HH:MM string.
func ParseClockTime(s string) (ClockTime, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return ClockTime{}, fmt.Errorf("%w %q: %v", ErrInvalidClockTime, s, err)
	}
	return ClockTime{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// CivilDateTime is a wall-clock reading in the schedule's zone.
type CivilDateTime struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
	Second int
}

// Validate checks that every field is in range for its calendar position.
func (c CivilDateTime) Validate() error {
	switch {
	case c.Month < time.January || c.Month > time.December:
		return fmt.Errorf("%w: month %d", ErrInvalidCivilTime, c.Month)
	case c.Day < 1 || c.Day > daysIn(c.Year, c.Month):
		return fmt.Errorf("%w: day %d", ErrInvalidCivilTime, c.Day)
	case c.Hour < 0 || c.Hour > 23:
		return fmt.Errorf("%w: hour %d", ErrInvalidCivilTime, c.Hour)
	case c.Minute < 0 || c.Minute > 59:
		return fmt.Errorf("%w: minute %d", ErrInvalidCivilTime, c.Minute)
	case c.Second < 0 || c.Second > 59:
		return fmt.Errorf("%w: second %d", ErrInvalidCivilTime, c.Second)
	}
	return nil
}

// Date drops the time of day.
func (c CivilDateTime) Date() Date {
	return Date{Year: c.Year, Month: c.Month, Day: c.Day}
}

func (c CivilDateTime) String() string {
	return fmt.Sprintf("%s %02d:%02d:%02d", c.Date(), c.Hour, c.Minute, c.Second)
}

// naive reads the civil fields as if they were already UTC.
func (c CivilDateTime) naive() time.Time {
	return time.Date(c.Year, c.Month, c.Day, c.Hour, c.Minute, c.Second, 0, time.UTC)
}

func (c CivilDateTime) timeOfDay() time.Duration {
	return time.Duration(c.Hour)*time.Hour +
		time.Duration(c.Minute)*time.Minute +
		time.Duration(c.Second)*time.Second
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ResolutionKind tells how a civil time mapped onto the instant line.
type ResolutionKind int

const (
	// ResolvedExact means exactly one instant has the requested reading.
	ResolvedExact ResolutionKind = iota
	// ResolvedAmbiguous means the reading occurs twice (fall-back overlap);
	// the earlier instant is chosen.
	ResolvedAmbiguous
	// ResolvedNonexistent means the reading is skipped (spring-forward gap);
	// the pre-transition offset is applied, moving the result forward by the gap.
	ResolvedNonexistent
)

func (k ResolutionKind) String() string {
	switch k {
	case ResolvedExact:
		return "exact"
	case ResolvedAmbiguous:
		return "ambiguous"
	case ResolvedNonexistent:
		return "nonexistent"
	default:
		return fmt.Sprintf("ResolutionKind(%d)", int(k))
	}
}

// Resolution is the result of Converter.Lookup.
type Resolution struct {
	Instant time.Time
	Kind    ResolutionKind
}

// transitionSpan is how far on either side of a wall time the zone offsets
// are sampled. Real zones never put two transitions this close together.
const transitionSpan = 36 * time.Hour

// Converter converts between instants and civil readings in one zone.
type Converter struct {
	loc *time.Location
}

// NewConverter creates a Converter for loc.
func NewConverter(loc *time.Location) *Converter {
	return &Converter{loc: loc}
}

// ToCivil returns the wall-clock reading of t. Sub-second parts are dropped.
func (c *Converter) ToCivil(t time.Time) CivilDateTime {
	lt := t.In(c.loc)
	return CivilDateTime{
		Year:   lt.Year(),
		Month:  lt.Month(),
		Day:    lt.Day(),
		Hour:   lt.Hour(),
		Minute: lt.Minute(),
		Second: lt.Second(),
	}
}

// ToInstant returns the instant whose reading is want. See Lookup for the
// handling of overlaps and gaps.
func (c *Converter) ToInstant(want CivilDateTime) time.Time {
	return c.Lookup(want).Instant
}

// Lookup converts want to an instant and reports how it was resolved.
//
// The fields are first taken as a UTC instant. Each pass reads that guess
// back in the zone and moves it by the difference between the wanted and
// the actual time of day, plus whole days when the reading landed on a
// different date. The second pass fixes a first correction made with the
// offset from the wrong side of a transition.
func (c *Converter) Lookup(want CivilDateTime) Resolution {
	guess := want.naive()
	for range 2 {
		got := c.ToCivil(guess)
		delta := want.timeOfDay() - got.timeOfDay()
		if gd := got.Date(); gd != want.Date() {
			delta += want.Date().midnight().Sub(gd.midnight())
		}
		guess = guess.Add(delta)
	}
	return c.resolve(want, guess)
}

func (c *Converter) resolve(want CivilDateTime, guess time.Time) Resolution {
	target := want.naive()
	before := target.Add(-c.offset(target.Add(-transitionSpan)))
	after := target.Add(-c.offset(target.Add(transitionSpan)))

	var matches []time.Time
	for _, t := range []time.Time{guess, before, after} {
		if c.ToCivil(t) == want {
			matches = append(matches, t)
		}
	}
	if len(matches) == 0 {
		return Resolution{Instant: before, Kind: ResolvedNonexistent}
	}

	earliest := slices.MinFunc(matches, func(a, b time.Time) int { return a.Compare(b) })
	kind := ResolvedExact
	for _, t := range matches {
		if !t.Equal(earliest) {
			kind = ResolvedAmbiguous
			break
		}
	}
	return Resolution{Instant: earliest, Kind: kind}
}

func (c *Converter) offset(t time.Time) time.Duration {
	_, secs := t.In(c.loc).Zone()
	return time.Duration(secs) * time.Second
}
