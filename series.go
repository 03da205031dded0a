package eventstudy

import (
	"fmt"
	"iter"
	"slices"

	"github.com/shopspring/decimal"
)

// Point is a single daily close.
type Point struct {
	Day   Date
	Price decimal.Decimal
}

// Series holds the daily closing prices of a single instrument as two
// parallel slices in chronological order. Like the calendar it exposes, a
// Series is immutable once built and safe for concurrent readers.
type Series struct {
	days   []Date
	prices []decimal.Decimal
}

// NewSeries builds a series from the given points. The input does not need to
// be ordered; it is sorted once here. When two points share a day, the later
// input wins. A non-positive price is rejected: a close of zero is not a
// price, it is a hole in the source.
func NewSeries(points []Point) (*Series, error) {
	pts := slices.Clone(points)
	slices.SortStableFunc(pts, func(a, b Point) int { return compareDays(a.Day, b.Day) })

	s := &Series{
		days:   make([]Date, 0, len(pts)),
		prices: make([]decimal.Decimal, 0, len(pts)),
	}
	for _, p := range pts {
		if !p.Price.IsPositive() {
			return nil, fmt.Errorf("invalid price %s on %s: prices must be positive", p.Price, p.Day)
		}
		if n := len(s.days); n > 0 && s.days[n-1] == p.Day {
			s.prices[n-1] = p.Price
			continue
		}
		s.days = append(s.days, p.Day)
		s.prices = append(s.prices, p.Price)
	}
	return s, nil
}

// Len returns the number of sessions in the series.
func (s *Series) Len() int { return len(s.days) }

// Calendar returns the trading calendar spanned by the series: every priced
// day is a session and every session has a price. The calendar shares the
// series' backing array; both are read-only.
func (s *Series) Calendar() *Calendar { return &Calendar{days: s.days} }

// Price returns the closing price on day and true, or zero and false when the
// day has no entry. There is no as-of fallback here: resolving a civil date
// to a session is the calendar's job, and it happens before prices are read.
func (s *Series) Price(day Date) (decimal.Decimal, bool) {
	i, found := slices.BinarySearchFunc(s.days, day, compareDays)
	if !found {
		return decimal.Decimal{}, false
	}
	return s.prices[i], true
}

// Points returns an iterator over all day/price pairs in chronological order.
func (s *Series) Points() iter.Seq2[Date, decimal.Decimal] {
	return func(yield func(Date, decimal.Decimal) bool) {
		for i, on := range s.days {
			if !yield(on, s.prices[i]) {
				return
			}
		}
	}
}
