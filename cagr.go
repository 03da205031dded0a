package eventstudy

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// SessionsPerYear is the length of a study year in trading sessions.
//
// Horizons are measured in sessions, not calendar days, so "one year after
// the entry" means 252 sessions later regardless of where weekends and
// holidays fall.
const SessionsPerYear = 252

// Horizon is a study horizon in years.
type Horizon int

// Sessions returns the horizon length in trading sessions.
func (h Horizon) Sessions() int { return int(h) * SessionsPerYear }

// Years returns the horizon length in years, as the growth exponent wants it.
func (h Horizon) Years() float64 { return float64(h) }

func (h Horizon) String() string { return fmt.Sprintf("%dY", int(h)) }

// ParseHorizon parses a horizon written as a year count, with or without the
// "Y" suffix ("3", "3Y", "3y").
func ParseHorizon(str string) (Horizon, error) {
	s := strings.TrimSpace(str)
	s = strings.TrimSuffix(strings.TrimSuffix(s, "y"), "Y")
	y, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid horizon %q (want a year count like %q): %w", str, "3Y", err)
	}
	if y <= 0 {
		return 0, fmt.Errorf("invalid horizon %q: must be at least one year", str)
	}
	return Horizon(y), nil
}

// CAGR returns the compound annual growth rate, in percent, between an entry
// and an exit price held for the given number of years:
//
//	((exit/entry)^(1/years) - 1) * 100
//
// It reports false when the rate is undefined: a non-positive price or a
// non-positive year count. That case is an expected boundary, not an error;
// renderers spell it "N/A".
func CAGR(entry, exit decimal.Decimal, years float64) (Percent, bool) {
	if years <= 0 || !entry.IsPositive() || !exit.IsPositive() {
		return 0, false
	}
	ratio := exit.Div(entry)
	growth := math.Pow(ratio.InexactFloat64(), 1/years) - 1
	return Percent(100 * growth), true
}
