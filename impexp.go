package eventstudy

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// This file handles the study's interchange formats: the price source, the
// event source and the results table. All three are CSV, human readable, and
// easy to produce or consume with a spreadsheet.

// naCell is how an unavailable measure is spelled in the results table.
const naCell = "N/A"

// findColumn locates the first column whose header matches one of the given
// names, in name priority order. Matching ignores case and surrounding space.
func findColumn(header []string, names ...string) int {
	for _, name := range names {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), name) {
				return i
			}
		}
	}
	return -1
}

// ImportPrices reads a daily price history from 'r'.
//
// The source is a CSV file with a header row; the "Date" and "Adj Close"
// columns are located by name, falling back to "Close". A headerless export
// is accepted too, as date in the first column and price in the second. Rows
// do not need to be ordered, duplicate dates keep the last row, and a row
// with an empty or unreadable cell is skipped with a warning.
func ImportPrices(r io.Reader) (*Series, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read price source: %w", err)
	}
	dateCol := findColumn(header, "Date")
	priceCol := findColumn(header, "Adj Close", "Adj_Close", "Close")

	var points []Point
	if dateCol < 0 || priceCol < 0 {
		// No named columns. If the first row reads as a price point, the
		// source is headerless.
		dateCol, priceCol = 0, 1
		p, ok := readPricePoint(header, dateCol, priceCol)
		if !ok {
			return nil, fmt.Errorf("price source needs %q and %q columns", "Date", "Adj Close")
		}
		points = append(points, p)
	}

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read price source: %w", err)
		}
		p, ok := readPricePoint(row, dateCol, priceCol)
		if !ok {
			log.Printf("warning: skipping price row %q", strings.Join(row, ","))
			continue
		}
		points = append(points, p)
	}
	return NewSeries(points)
}

// readPricePoint parses one source row. It reports false on any cell it
// cannot read, including the "null" cells some providers export on
// non-trading days.
func readPricePoint(row []string, dateCol, priceCol int) (Point, bool) {
	if dateCol >= len(row) || priceCol >= len(row) {
		return Point{}, false
	}
	day, err := ParseDate(row[dateCol])
	if err != nil {
		return Point{}, false
	}
	cell := strings.TrimSpace(row[priceCol])
	if cell == "" || strings.EqualFold(cell, "null") {
		return Point{}, false
	}
	price, err := decimal.NewFromString(cell)
	if err != nil {
		return Point{}, false
	}
	return Point{Day: day, Price: price}, true
}

// ExportPrices writes a price series to 'w', in the shape [ImportPrices]
// reads back.
func ExportPrices(w io.Writer, series *Series) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Date", "Adj Close"}); err != nil {
		return fmt.Errorf("cannot write price header: %w", err)
	}
	for day, price := range series.Points() {
		if err := cw.Write([]string{day.String(), price.String()}); err != nil {
			return fmt.Errorf("cannot write price for %s: %w", day, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("cannot write prices: %w", err)
	}
	return nil
}

// ImportEvents reads the event list from 'r'.
//
// The source is a CSV file with "Event name" and "Time of Event" columns. An
// event whose date cannot be resolved is skipped with a warning rather than
// failing the import: one odd spelling should not cost the whole study.
func ImportEvents(r io.Reader) ([]Event, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read event source: %w", err)
	}
	nameCol := findColumn(header, "Event name", "Event", "Name")
	dateCol := findColumn(header, "Time of Event", "Time", "Date")
	if nameCol < 0 || dateCol < 0 {
		return nil, fmt.Errorf("event source needs %q and %q columns", "Event name", "Time of Event")
	}

	var events []Event
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read event source: %w", err)
		}
		if nameCol >= len(row) || dateCol >= len(row) {
			continue
		}
		e, err := NewEvent(strings.TrimSpace(row[nameCol]), row[dateCol])
		if err != nil {
			log.Printf("warning: skipping event %q: %v", strings.TrimSpace(row[nameCol]), err)
			continue
		}
		events = append(events, e)
	}
	return events, nil
}

// recordHorizons returns the horizon columns of a results table: the first
// record's measures, or the defaults when there is nothing to look at.
func recordHorizons(records []*Record) []Horizon {
	for _, r := range records {
		horizons := make([]Horizon, 0, len(r.Measures))
		for _, m := range r.Measures {
			horizons = append(horizons, m.Horizon)
		}
		return horizons
	}
	return DefaultHorizons
}

// ExportRecords writes the results table to 'w'.
//
// The table keeps full float precision on the growth columns so that it can
// be read back losslessly; unavailable measures are written as "N/A", never
// as zero.
func ExportRecords(w io.Writer, records []*Record) error {
	cw := csv.NewWriter(w)

	header := []string{"Event", "Event Date", "Entry Date", "Entry Price"}
	for _, h := range recordHorizons(records) {
		header = append(header, fmt.Sprintf("%s CAGR %%", h))
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("cannot write results header: %w", err)
	}

	for _, r := range records {
		row := []string{r.Event, r.EventDate.String(), r.EntryDate.String(), r.EntryPrice.String()}
		for _, m := range r.Measures {
			if !m.Available {
				row = append(row, naCell)
				continue
			}
			row = append(row, strconv.FormatFloat(float64(m.CAGR), 'f', -1, 64))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write result for %q: %w", r.Event, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("cannot write results: %w", err)
	}
	return nil
}

// ImportRecords reads a results table back, as written by [ExportRecords].
//
// The table does not carry exit dates or prices, so the records come back
// with growth figures and availability only; that is all the renderers and
// charts need.
func ImportRecords(r io.Reader) ([]*Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read results table: %w", err)
	}
	if len(header) < 4 || findColumn(header[:1], "Event") != 0 {
		return nil, fmt.Errorf("results table needs an %q column first", "Event")
	}
	horizons := make([]Horizon, 0, len(header)-4)
	for _, col := range header[4:] {
		name, found := strings.CutSuffix(strings.TrimSpace(col), " CAGR %")
		if !found {
			return nil, fmt.Errorf("unexpected results column %q", col)
		}
		h, err := ParseHorizon(name)
		if err != nil {
			return nil, fmt.Errorf("unexpected results column %q: %w", col, err)
		}
		horizons = append(horizons, h)
	}

	var records []*Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read results table: %w", err)
		}
		rec, err := readRecord(row, horizons)
		if err != nil {
			return nil, fmt.Errorf("cannot read results row %q: %w", strings.Join(row, ","), err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func readRecord(row []string, horizons []Horizon) (*Record, error) {
	if len(row) != 4+len(horizons) {
		return nil, fmt.Errorf("want %d columns, got %d", 4+len(horizons), len(row))
	}
	eventDate, err := ParseDate(row[1])
	if err != nil {
		return nil, err
	}
	entryDate, err := ParseDate(row[2])
	if err != nil {
		return nil, err
	}
	entryPrice, err := decimal.NewFromString(strings.TrimSpace(row[3]))
	if err != nil {
		return nil, err
	}
	rec := &Record{
		Event:      row[0],
		EventDate:  eventDate,
		EntryDate:  entryDate,
		EntryPrice: entryPrice,
		Measures:   make([]Measure, 0, len(horizons)),
	}
	for i, h := range horizons {
		cell := strings.TrimSpace(row[4+i])
		m := Measure{Horizon: h}
		if cell != "" && !strings.EqualFold(cell, naCell) {
			f, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid growth cell %q: %w", cell, err)
			}
			m.CAGR, m.Available = Percent(f), true
		}
		rec.Measures = append(rec.Measures, m)
	}
	return rec, nil
}
