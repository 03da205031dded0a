package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/eventstudy"
)

// SummaryMarkdown aggregates the study records into a per-horizon overview:
// how many events could be measured, the average annual growth, its range,
// and how often the aftermath was positive.
func SummaryMarkdown(records []*eventstudy.Record) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Event Study Summary\n\n")
	fmt.Fprintf(&b, "Events: %d\n\n", len(records))

	fmt.Fprintln(&b, "| Horizon | Measured | Mean CAGR | Min | Max | Positive |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|")

	for _, h := range horizonsOf(records) {
		var sum float64
		var measured, positive int
		var lo, hi eventstudy.Percent
		for _, r := range records {
			m, ok := r.Get(h)
			if !ok || !m.Available {
				continue
			}
			if measured == 0 || m.CAGR < lo {
				lo = m.CAGR
			}
			if measured == 0 || m.CAGR > hi {
				hi = m.CAGR
			}
			sum += float64(m.CAGR)
			measured++
			if m.CAGR > 0 {
				positive++
			}
		}
		if measured == 0 {
			fmt.Fprintf(&b, "| %s | 0 | N/A | N/A | N/A | N/A |\n", h)
			continue
		}
		mean := eventstudy.Percent(sum / float64(measured))
		fmt.Fprintf(&b, "| %s | %d | %s | %s | %s | %d/%d |\n",
			h, measured, mean.SignedString(), lo, hi, positive, measured)
	}

	return b.String()
}
