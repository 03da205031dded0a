package eventstudy

import "testing"

// fiveSessions is the canonical toy calendar: a Thursday to Wednesday week
// with its weekend hole.
//
//	2020-01-02 Thu, 2020-01-03 Fri, 2020-01-06 Mon, 2020-01-07 Tue, 2020-01-08 Wed
func fiveSessions() *Calendar {
	return NewCalendar([]Date{
		day("2020-01-02"), day("2020-01-03"), day("2020-01-06"), day("2020-01-07"), day("2020-01-08"),
	})
}

func TestNewCalendar(t *testing.T) {
	// unordered, with a duplicate
	c := NewCalendar([]Date{
		day("2020-01-08"), day("2020-01-02"), day("2020-01-06"),
		day("2020-01-03"), day("2020-01-07"), day("2020-01-06"),
	})
	if got := c.Len(); got != 5 {
		t.Fatalf("Len() = %d, want 5", got)
	}
	if first, _ := c.First(); first != day("2020-01-02") {
		t.Errorf("First() = %s, want 2020-01-02", first)
	}
	if last, _ := c.Last(); last != day("2020-01-08") {
		t.Errorf("Last() = %s, want 2020-01-08", last)
	}
	if !c.Contains(day("2020-01-06")) {
		t.Errorf("Contains(2020-01-06) = false, want true")
	}
	if c.Contains(day("2020-01-04")) {
		t.Errorf("Contains(2020-01-04) = true, want false")
	}
}

func TestCalendar_Closest(t *testing.T) {
	c := fiveSessions()

	tests := []struct {
		name string
		on   string
		dir  Direction
		want string
		ok   bool
	}{
		{"session is its own forward resolution", "2020-01-06", Forward, "2020-01-06", true},
		{"session is its own backward resolution", "2020-01-06", Backward, "2020-01-06", true},
		{"weekend resolves forward to monday", "2020-01-04", Forward, "2020-01-06", true},
		{"weekend resolves backward to friday", "2020-01-05", Backward, "2020-01-03", true},
		{"before the calendar, forward", "2019-12-25", Forward, "2020-01-02", true},
		{"before the calendar, backward", "2019-12-25", Backward, "", false},
		{"after the calendar, forward", "2020-01-09", Forward, "", false},
		{"after the calendar, backward", "2020-01-09", Backward, "2020-01-08", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.Closest(day(tt.on), tt.dir)
			if ok != tt.ok {
				t.Fatalf("Closest(%s, %s) ok = %v, want %v", tt.on, tt.dir, ok, tt.ok)
			}
			if ok && got != day(tt.want) {
				t.Errorf("Closest(%s, %s) = %s, want %s", tt.on, tt.dir, got, tt.want)
			}
		})
	}
}

func TestCalendar_Offset(t *testing.T) {
	c := fiveSessions()

	tests := []struct {
		name     string
		base     string
		sessions int
		want     string
		ok       bool
	}{
		{"zero is identity", "2020-01-06", 0, "2020-01-06", true},
		{"two sessions over the weekend", "2020-01-02", 2, "2020-01-06", true},
		{"backward over the weekend", "2020-01-06", -2, "2020-01-02", true},
		{"to the last session", "2020-01-02", 4, "2020-01-08", true},
		{"past the last session", "2020-01-02", 5, "", false},
		{"before the first session", "2020-01-03", -2, "", false},
		{"absent base resolves forward first", "2020-01-04", 0, "2020-01-06", true},
		{"absent base, then forward", "2020-01-04", 1, "2020-01-07", true},
		{"absent base, then backward", "2020-01-04", -1, "2020-01-03", true},
		{"base after the calendar", "2020-01-09", 0, "", false},
		{"base before the calendar counts from the first", "2019-12-25", 1, "2020-01-03", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.Offset(day(tt.base), tt.sessions)
			if ok != tt.ok {
				t.Fatalf("Offset(%s, %d) ok = %v, want %v", tt.base, tt.sessions, ok, tt.ok)
			}
			if ok && got != day(tt.want) {
				t.Errorf("Offset(%s, %d) = %s, want %s", tt.base, tt.sessions, got, tt.want)
			}
		})
	}
}

// TestCalendar_OffsetRoundTrip checks that a successful offset is undone by
// the opposite offset, from every session.
func TestCalendar_OffsetRoundTrip(t *testing.T) {
	c := fiveSessions()
	sessions := []string{"2020-01-02", "2020-01-03", "2020-01-06", "2020-01-07", "2020-01-08"}
	for _, s := range sessions {
		base := day(s)
		for k := -4; k <= 4; k++ {
			moved, ok := c.Offset(base, k)
			if !ok {
				continue
			}
			back, ok := c.Offset(moved, -k)
			if !ok || back != base {
				t.Errorf("Offset(Offset(%s, %d), %d) = %s, %v, want %s", base, k, -k, back, ok, base)
			}
		}
	}
}

func TestCalendar_Empty(t *testing.T) {
	c := NewCalendar(nil)
	if _, ok := c.Closest(day("2020-01-02"), Forward); ok {
		t.Errorf("Closest() on empty calendar = ok, want none")
	}
	if _, ok := c.Closest(day("2020-01-02"), Backward); ok {
		t.Errorf("Closest() on empty calendar = ok, want none")
	}
	if _, ok := c.Offset(day("2020-01-02"), 0); ok {
		t.Errorf("Offset() on empty calendar = ok, want none")
	}
	if _, ok := c.First(); ok {
		t.Errorf("First() on empty calendar = ok, want none")
	}
}

func TestParseDirection(t *testing.T) {
	if d, err := ParseDirection("Forward"); err != nil || d != Forward {
		t.Errorf("ParseDirection(Forward) = %v, %v", d, err)
	}
	if d, err := ParseDirection(" backward "); err != nil || d != Backward {
		t.Errorf("ParseDirection(backward) = %v, %v", d, err)
	}
	if _, err := ParseDirection("sideways"); err == nil {
		t.Errorf("ParseDirection(sideways) = nil error, want error")
	}
}
