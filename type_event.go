package eventstudy

import (
	"fmt"
	"strings"
)

// Event is a named historical event under study.
type Event struct {
	Name string // e.g. "Black Monday"
	Raw  string // the date as spelled in the source, e.g. "1950-06-25 – 1953-07-27"
	Date Date   // the resolved study date: the start of Raw's range
}

// NewEvent resolves the raw date spelling of an event source into an Event.
func NewEvent(name, raw string) (Event, error) {
	on, err := ParseEventDate(raw)
	if err != nil {
		return Event{}, err
	}
	return Event{Name: name, Raw: raw, Date: on}, nil
}

func (e Event) String() string { return fmt.Sprintf("%s (%s)", e.Name, e.Date) }

// rangeSeparators split a multi-day event spelling into its endpoints. The
// bare hyphen is not one of them: it would cut ISO dates apart.
var rangeSeparators = []string{"–", "—", " - "}

// ParseEventDate resolves the date column of an event source into a study
// date. Sources spell multi-day events as a range ("1950-06-25 – 1953-07-27");
// the market reacts when the event starts, so the study keeps the start and
// ignores the end.
func ParseEventDate(raw string) (Date, error) {
	str := strings.TrimSpace(raw)
	for _, sep := range rangeSeparators {
		if start, _, found := strings.Cut(str, sep); found {
			str = strings.TrimSpace(start)
			break
		}
	}
	on, err := ParseDate(str)
	if err != nil {
		return Date{}, fmt.Errorf("cannot resolve event date %q: %w", raw, err)
	}
	return on, nil
}
