package eventstudy

import (
	"errors"
	"fmt"
	"log"
)

// DefaultEntryLag is the number of sessions between the resolved event
// session and the entry session. Two sessions leave the first panic out of
// the entry price.
const DefaultEntryLag = 2

// DefaultHorizons are the exits measured for every event.
var DefaultHorizons = []Horizon{1, 3, 5}

var (
	// ErrNoTradingDate reports an event with no session at or after its date.
	ErrNoTradingDate = errors.New("no trading session at or after the event date")
	// ErrNotEnoughSessions reports an event too close to the end of the
	// calendar to have an entry session.
	ErrNotEnoughSessions = errors.New("calendar ends before the entry session")
	// ErrPriceMissing reports a session present in the calendar but absent
	// from the price series. The study builds the calendar from the series,
	// so this is a data integrity fault, not an expected boundary.
	ErrPriceMissing = errors.New("price missing for a resolved session")
)

// Study computes post-event growth over a fixed price history.
//
// The parameters are fields so that a caller can tune them between NewStudy
// and the first Process call; after that the study is read-only and safe for
// concurrent Process calls.
type Study struct {
	series *Series
	cal    *Calendar

	// EntryLag is the number of sessions between the resolved event session
	// and the entry session.
	EntryLag int
	// Horizons are the exits measured for each event.
	Horizons []Horizon
}

// NewStudy returns a study over the given price series with the default
// entry lag and horizons.
func NewStudy(series *Series) *Study {
	return &Study{
		series:   series,
		cal:      series.Calendar(),
		EntryLag: DefaultEntryLag,
		Horizons: DefaultHorizons,
	}
}

// Process measures a single event.
//
// The event is abandoned with an error when its date cannot be resolved to a
// session ([ErrNoTradingDate]), when the calendar is too short for an entry
// ([ErrNotEnoughSessions]), or when a resolved session has no price
// ([ErrPriceMissing]). A horizon whose exit falls beyond the calendar is not
// an error: it yields an unavailable measure and the record still carries the
// horizons that could be measured.
func (s *Study) Process(e Event) (*Record, error) {
	session, ok := s.cal.Closest(e.Date, Forward)
	if !ok {
		return nil, fmt.Errorf("event %q (%s): %w", e.Name, e.Date, ErrNoTradingDate)
	}
	entryDate, ok := s.cal.Offset(session, s.EntryLag)
	if !ok {
		return nil, fmt.Errorf("event %q (%s): %w", e.Name, e.Date, ErrNotEnoughSessions)
	}
	entryPrice, ok := s.series.Price(entryDate)
	if !ok {
		return nil, fmt.Errorf("event %q: entry session %s: %w", e.Name, entryDate, ErrPriceMissing)
	}

	rec := &Record{
		Event:      e.Name,
		EventDate:  e.Date,
		EntryDate:  entryDate,
		EntryPrice: entryPrice,
		Measures:   make([]Measure, 0, len(s.Horizons)),
	}
	for _, h := range s.Horizons {
		m := Measure{Horizon: h}
		exitDate, ok := s.cal.Offset(entryDate, h.Sessions())
		if !ok {
			// Not enough history after the entry. The horizon is
			// unavailable, the event is still worth its other horizons.
			rec.Measures = append(rec.Measures, m)
			continue
		}
		exitPrice, ok := s.series.Price(exitDate)
		if !ok {
			return nil, fmt.Errorf("event %q: exit session %s: %w", e.Name, exitDate, ErrPriceMissing)
		}
		m.ExitDate, m.ExitPrice = exitDate, exitPrice
		m.CAGR, m.Available = CAGR(entryPrice, exitPrice, h.Years())
		rec.Measures = append(rec.Measures, m)
	}
	return rec, nil
}

// ProcessAll measures every event in order, skipping the ones that fail.
// Failures are logged and never interrupt the batch; the records keep the
// input order.
func (s *Study) ProcessAll(events []Event) []*Record {
	records := make([]*Record, 0, len(events))
	for _, e := range events {
		rec, err := s.Process(e)
		if err != nil {
			log.Printf("skipping: %v", err)
			continue
		}
		records = append(records, rec)
	}
	return records
}
