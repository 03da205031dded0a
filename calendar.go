package eventstudy

import (
	"fmt"
	"slices"
	"strings"
)

// Direction selects which way [Calendar.Closest] resolves a date that is not
// itself a trading session.
type Direction int

const (
	// Forward resolves to the earliest session on or after the target.
	Forward Direction = iota
	// Backward resolves to the latest session on or before the target.
	Backward
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection parses a direction name as written on the command line.
func ParseDirection(str string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "forward":
		return Forward, nil
	case "backward":
		return Backward, nil
	default:
		return Forward, fmt.Errorf("invalid direction %q (want %q or %q)", str, Forward, Backward)
	}
}

// Calendar is the ordered set of sessions an instrument actually traded.
//
// It never invents sessions: weekends and holidays are simply absent, and
// every resolution lands on a day that has a price. A Calendar is immutable
// once built and safe for concurrent readers.
type Calendar struct {
	days []Date
}

// NewCalendar builds a calendar from the given days. The input does not need
// to be ordered; it is sorted and deduplicated once here, and never again.
func NewCalendar(days []Date) *Calendar {
	sorted := slices.Clone(days)
	slices.SortFunc(sorted, compareDays)
	return &Calendar{days: slices.Compact(sorted)}
}

// Len returns the number of sessions in the calendar.
func (c *Calendar) Len() int { return len(c.days) }

// First returns the earliest session, or false on an empty calendar.
func (c *Calendar) First() (Date, bool) {
	if len(c.days) == 0 {
		return Date{}, false
	}
	return c.days[0], true
}

// Last returns the latest session, or false on an empty calendar.
func (c *Calendar) Last() (Date, bool) {
	if len(c.days) == 0 {
		return Date{}, false
	}
	return c.days[len(c.days)-1], true
}

// Contains reports whether on is a session of this calendar.
func (c *Calendar) Contains(on Date) bool {
	_, found := c.search(on)
	return found
}

// search locates on in the sorted session list. When absent, the returned
// index is the insertion point, i.e. the first session after on.
func (c *Calendar) search(on Date) (int, bool) {
	return slices.BinarySearchFunc(c.days, on, compareDays)
}

// Closest returns the session nearest to on in the given direction: on itself
// when it is a session, otherwise the first session after it (Forward) or the
// last session before it (Backward). It returns false when the calendar holds
// no session on that side.
func (c *Calendar) Closest(on Date, dir Direction) (Date, bool) {
	i, found := c.search(on)
	if found {
		return c.days[i], true
	}
	if dir == Backward {
		if i == 0 {
			return Date{}, false
		}
		return c.days[i-1], true
	}
	if i == len(c.days) {
		return Date{}, false
	}
	return c.days[i], true
}

// Offset returns the session a fixed number of sessions away from base.
// The count may be negative, and zero returns base itself.
//
// When base is not a session it is resolved forward once, and the same offset
// is applied from the resolved session; if that resolution fails, or the
// target index falls outside the calendar, Offset returns false. There is no
// further retry: a study horizon that outruns the recorded history is
// reported as missing, never approximated.
func (c *Calendar) Offset(base Date, sessions int) (Date, bool) {
	i, found := c.search(base)
	if !found && i == len(c.days) {
		// base is past the last session, forward resolution has nothing
		// to offer.
		return Date{}, false
	}
	// When base is absent, i is already the index of the first session
	// after it, which is exactly the forward resolution.
	j := i + sessions
	if j < 0 || j >= len(c.days) {
		return Date{}, false
	}
	return c.days[j], true
}
