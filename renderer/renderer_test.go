package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/eventstudy"
	"github.com/shopspring/decimal"
)

func day(t *testing.T, s string) eventstudy.Date {
	t.Helper()
	d, err := eventstudy.ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", s, err)
	}
	return d
}

func testRecords(t *testing.T) []*eventstudy.Record {
	t.Helper()
	return []*eventstudy.Record{
		{
			Event:      "Korean War",
			EventDate:  day(t, "1950-06-25"),
			EntryDate:  day(t, "1950-06-27"),
			EntryPrice: decimal.RequireFromString("19.07"),
			Measures: []eventstudy.Measure{
				{Horizon: 1, CAGR: 8.45, Available: true},
				{Horizon: 3, CAGR: 10.00, Available: true},
				{Horizon: 5, CAGR: 15.50, Available: true},
			},
		},
		{
			Event:      "Dot-com Peak",
			EventDate:  day(t, "2000-03-10"),
			EntryDate:  day(t, "2000-03-14"),
			EntryPrice: decimal.RequireFromString("1395.07"),
			Measures: []eventstudy.Measure{
				{Horizon: 1, CAGR: -21.34, Available: true},
				{Horizon: 3, CAGR: -14.10, Available: true},
				{Horizon: 5},
			},
		},
		{
			Event:      "Covid Crash",
			EventDate:  day(t, "2020-03-16"),
			EntryDate:  day(t, "2020-03-18"),
			EntryPrice: decimal.RequireFromString("2398.10"),
			Measures: []eventstudy.Measure{
				{Horizon: 1, CAGR: 74.87, Available: true},
				{Horizon: 3},
				{Horizon: 5},
			},
		},
	}
}

func TestResultsMarkdown(t *testing.T) {
	got := ResultsMarkdown(testRecords(t))

	wants := []string{
		"# Post-Event Growth",
		"3 events measured.",
		"1Y CAGR",
		"5Y CAGR",
		"Korean War",
		"1950-06-25",
		"1950-06-27",
		"19.07",
		"+8.45%",
		"-21.34%",
		"N/A",
	}
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("ResultsMarkdown missing %q in:\n%s", want, got)
		}
	}
}

func TestResultsMarkdown_ColumnsFollowRecords(t *testing.T) {
	records := []*eventstudy.Record{
		{
			Event:      "Flash Crash",
			EventDate:  day(t, "2010-05-06"),
			EntryDate:  day(t, "2010-05-10"),
			EntryPrice: decimal.RequireFromString("1159.73"),
			Measures: []eventstudy.Measure{
				{Horizon: 2, CAGR: 3.14, Available: true},
			},
		},
	}
	got := ResultsMarkdown(records)
	if !strings.Contains(got, "2Y CAGR") {
		t.Errorf("expected a 2Y column in:\n%s", got)
	}
	if strings.Contains(got, "5Y CAGR") {
		t.Errorf("unexpected 5Y column in:\n%s", got)
	}
}

func TestSummaryMarkdown(t *testing.T) {
	got := SummaryMarkdown(testRecords(t))

	want := `# Event Study Summary

Events: 3

| Horizon | Measured | Mean CAGR | Min | Max | Positive |
|:---|---:|---:|---:|---:|---:|
| 1Y | 3 | +20.66% | -21.34% | 74.87% | 2/3 |
| 3Y | 2 | -2.05% | -14.10% | 10.00% | 1/2 |
| 5Y | 1 | +15.50% | 15.50% | 15.50% | 1/1 |
`
	if got != want {
		t.Errorf("SummaryMarkdown mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestSummaryMarkdown_Empty(t *testing.T) {
	got := SummaryMarkdown(nil)

	wants := []string{
		"Events: 0",
		"| 1Y | 0 | N/A | N/A | N/A | N/A |",
		"| 3Y | 0 | N/A | N/A | N/A | N/A |",
		"| 5Y | 0 | N/A | N/A | N/A | N/A |",
	}
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("SummaryMarkdown missing %q in:\n%s", want, got)
		}
	}
}
