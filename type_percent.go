package eventstudy

import "fmt"

// Percent is a growth rate expressed in percent (so 5 means 5%).
type Percent float64

// Equal compares two percentages with the precision that matters for display.
func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

// SignedString renders the percentage with an explicit sign, and a bare "-"
// for zero, so that gain columns read at a glance.
func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}
