package eventstudy

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// Helpers shared by the package tests.

// day is a shorthand to build a date from its ISO spelling.
func day(str string) Date { return MustParse(str) }

// testSeries builds a series from "date:price" specs.
func testSeries(t *testing.T, specs ...string) *Series {
	t.Helper()
	points := make([]Point, 0, len(specs))
	for _, spec := range specs {
		d, p, ok := strings.Cut(spec, ":")
		if !ok {
			t.Fatalf("invalid point spec %q", spec)
		}
		points = append(points, Point{Day: day(d), Price: decimal.RequireFromString(p)})
	}
	s, err := NewSeries(points)
	if err != nil {
		t.Fatalf("NewSeries() error = %v", err)
	}
	return s
}

// weekdays returns the n first weekdays starting at 'start': a long market
// calendar with weekend holes.
func weekdays(start Date, n int) []Date {
	days := make([]Date, 0, n)
	for d := start; len(days) < n; d = d.Add(1) {
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		days = append(days, d)
	}
	return days
}
