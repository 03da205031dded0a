package yahoo

import (
	"encoding/json"
	"testing"

	"github.com/etnz/eventstudy"
	"github.com/shopspring/decimal"
)

// chartSample is a trimmed chart API response: three sessions, the middle one
// a null bar.
const chartSample = `{
  "chart": {
    "result": [
      {
        "meta": {"symbol": "^GSPC", "currency": "USD"},
        "timestamp": [1577975400, 1578061800, 1578321000],
        "indicators": {
          "quote": [{"close": [3257.85, null, 3246.28]}],
          "adjclose": [{"adjclose": [3257.85, null, 3246.28]}]
        }
      }
    ],
    "error": null
  }
}`

const chartErrorSample = `{
  "chart": {
    "result": null,
    "error": {"code": "Not Found", "description": "No data found, symbol may be delisted"}
  }
}`

func TestChartPoints(t *testing.T) {
	var jobj any
	if err := json.Unmarshal([]byte(chartSample), &jobj); err != nil {
		t.Fatalf("cannot parse sample: %v", err)
	}

	points, err := chartPoints(jobj)
	if err != nil {
		t.Fatalf("chartPoints() error = %v", err)
	}
	// the null bar is dropped
	if len(points) != 2 {
		t.Fatalf("len(points) = %d, want 2", len(points))
	}
	if points[0].Day != eventstudy.NewDate(2020, 1, 2) {
		t.Errorf("points[0].Day = %s, want 2020-01-02", points[0].Day)
	}
	if !points[0].Price.Equal(decimal.NewFromFloat(3257.85)) {
		t.Errorf("points[0].Price = %s, want 3257.85", points[0].Price)
	}
	if points[1].Day != eventstudy.NewDate(2020, 1, 6) {
		t.Errorf("points[1].Day = %s, want 2020-01-06", points[1].Day)
	}
}

func TestChartPoints_ServiceError(t *testing.T) {
	var jobj any
	if err := json.Unmarshal([]byte(chartErrorSample), &jobj); err != nil {
		t.Fatalf("cannot parse sample: %v", err)
	}
	if _, err := chartPoints(jobj); err == nil {
		t.Errorf("chartPoints() on a service error: nil error, want error")
	}
}

func TestSymbol(t *testing.T) {
	tests := []struct{ in, want string }{
		{"SP500", "^GSPC"},
		{"sp500", "^GSPC"},
		{"^GSPC", "^GSPC"},
		{"AAPL", "AAPL"},
	}
	for _, tt := range tests {
		if got := Symbol(tt.in); got != tt.want {
			t.Errorf("Symbol(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
