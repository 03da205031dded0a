// Package renderer turns study outcomes into markdown reports.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/eventstudy"
	md "github.com/nao1215/markdown"
)

// ResultsMarkdown renders the study records as a markdown table, one row per
// event and one growth column per horizon.
func ResultsMarkdown(records []*eventstudy.Record) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Post-Event Growth")
	doc.PlainText(fmt.Sprintf("%d events measured.", len(records)))

	horizons := horizonsOf(records)
	alignment := []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight}
	header := []string{"Event", "Event Date", "Entry Date", "Entry Price"}
	for _, h := range horizons {
		alignment = append(alignment, md.AlignRight)
		header = append(header, fmt.Sprintf("%s CAGR", h))
	}

	table := md.TableSet{
		Alignment: alignment,
		Header:    header,
		Rows:      [][]string{},
	}
	for _, r := range records {
		row := []string{r.Event, r.EventDate.String(), r.EntryDate.String(), r.EntryPrice.String()}
		for _, h := range horizons {
			row = append(row, growthCell(r, h))
		}
		table.Rows = append(table.Rows, row)
	}
	doc.Table(table)

	return doc.String()
}

// growthCell renders one growth cell, "N/A" when the horizon could not be
// measured.
func growthCell(r *eventstudy.Record, h eventstudy.Horizon) string {
	m, ok := r.Get(h)
	if !ok || !m.Available {
		return "N/A"
	}
	return m.CAGR.SignedString()
}

// horizonsOf returns the horizon columns for a set of records: the horizons
// of the first record, or the study defaults when there is nothing to look
// at.
func horizonsOf(records []*eventstudy.Record) []eventstudy.Horizon {
	for _, r := range records {
		horizons := make([]eventstudy.Horizon, 0, len(r.Measures))
		for _, m := range r.Measures {
			horizons = append(horizons, m.Horizon)
		}
		return horizons
	}
	return eventstudy.DefaultHorizons
}
