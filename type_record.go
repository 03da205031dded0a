package eventstudy

import "github.com/shopspring/decimal"

// Measure is the outcome of one study horizon for one event.
//
// Available is false when the horizon could not be measured, either because
// the calendar ends before the exit session or because the growth rate is
// undefined for the prices involved. Renderers spell that case "N/A"; it is
// never folded into a zero.
type Measure struct {
	Horizon   Horizon
	ExitDate  Date
	ExitPrice decimal.Decimal
	CAGR      Percent
	Available bool
}

// Record is the study outcome for a single event that could be anchored to
// the trading calendar.
type Record struct {
	Event      string
	EventDate  Date // the event date as resolved from the source
	EntryDate  Date // the event session pushed by the entry lag
	EntryPrice decimal.Decimal
	Measures   []Measure // one per study horizon, in horizon order
}

// Get returns the record's measure for horizon h.
func (r *Record) Get(h Horizon) (Measure, bool) {
	for _, m := range r.Measures {
		if m.Horizon == h {
			return m, true
		}
	}
	return Measure{}, false
}
