// Package yahoo retrieves daily price histories from the Yahoo Finance chart
// API, ready to feed an event study.
package yahoo

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/eventstudy"
	"github.com/shopspring/decimal"
)

// symbolMap maps the informal index names found in event spreadsheets to
// Yahoo tickers.
var symbolMap = map[string]string{
	"SP500":  "^GSPC",
	"SPX":    "^GSPC",
	"SPX500": "^GSPC",
	"DOW":    "^DJI",
	"NASDAQ": "^IXIC",
}

// Symbol returns the Yahoo ticker for a symbol, mapping the informal index
// names ("SP500") to their tickers ("^GSPC") and leaving everything else
// untouched.
func Symbol(symbol string) string {
	if mapped, ok := symbolMap[strings.ToUpper(strings.TrimSpace(symbol))]; ok {
		return mapped
	}
	return symbol
}

// History fetches the daily adjusted closing prices of symbol from 'from' to
// 'to' inclusive.
//
// Responses are cached on disk for the day, so reworking a study does not
// hammer the quote service.
func History(symbol string, from, to eventstudy.Date) (*eventstudy.Series, error) {
	addr := fmt.Sprintf("https://query1.finance.yahoo.com/v8/finance/chart/%s?period1=%d&period2=%d&interval=1d&events=div%%2Csplit&includeAdjustedClose=true",
		url.PathEscape(Symbol(symbol)), from.Unix(), to.Add(1).Unix())

	var jobj any
	if err := jwget(daily(), addr, &jobj); err != nil {
		return nil, fmt.Errorf("cannot fetch history for %q: %w", symbol, err)
	}
	points, err := chartPoints(jobj)
	if err != nil {
		return nil, fmt.Errorf("cannot read history for %q: %w", symbol, err)
	}
	return eventstudy.NewSeries(points)
}

// chartPoints extracts the daily closes from a chart API response.
func chartPoints(jobj any) ([]eventstudy.Point, error) {
	if desc, found := chartError(jobj); found {
		return nil, fmt.Errorf("quote service error: %s", desc)
	}
	timestamps, err := numbers(jobj, "$.chart.result[0].timestamp")
	if err != nil {
		return nil, err
	}
	// Adjusted closes are the study's price of choice; some instruments come
	// without them, raw closes are the fallback.
	closes, err := numbers(jobj, "$.chart.result[0].indicators.adjclose[0].adjclose")
	if err != nil {
		closes, err = numbers(jobj, "$.chart.result[0].indicators.quote[0].close")
	}
	if err != nil {
		return nil, err
	}
	if len(closes) != len(timestamps) {
		return nil, fmt.Errorf("quote service returned %d timestamps for %d closes", len(timestamps), len(closes))
	}

	points := make([]eventstudy.Point, 0, len(timestamps))
	for i, ts := range timestamps {
		if closes[i] <= 0 {
			// null bars happen on holidays and half sessions
			continue
		}
		y, m, d := time.Unix(int64(ts), 0).UTC().Date()
		points = append(points, eventstudy.Point{
			Day:   eventstudy.NewDate(y, m, d),
			Price: decimal.NewFromFloat(closes[i]),
		})
	}
	return points, nil
}

// chartError returns the error description of a chart API response, if any.
func chartError(jobj any) (string, bool) {
	jval, err := jsonpath.Get("$.chart.error.description", jobj)
	if err != nil {
		// no error object in the response
		return "", false
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	desc, ok := jval.(string)
	return desc, ok && desc != ""
}

// numbers extracts a numeric array at path. Null entries yield zeros, which
// is how the chart API spells sessions without a close.
func numbers(jobj any, path string) ([]float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error parsing %q: %w", path, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("error parsing %q: not a list but %T", path, jval)
	}
	values := make([]float64, len(jlist))
	for i, v := range jlist {
		f, ok := v.(float64)
		if !ok && v != nil {
			return nil, fmt.Errorf("error parsing %q: element %d is not a number but %T", path, i, v)
		}
		values[i] = f
	}
	return values, nil
}
