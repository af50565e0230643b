package ui

import "math"

// Selections within integerTolerance of a whole number fill stars
// all-or-nothing; fractional selections may paint one half star once the
// fraction reaches halfFillThreshold. Both constants are load-bearing for
// rendered output and must not drift.
const (
	integerTolerance  = 0.001
	halfFillThreshold = 0.1
)

// FillPercent reports how much of one star to paint for a selection
// value: 0, 50, or 100. Star indexes are 1-based.
func FillPercent(star int, selection float64) int {
	whole := math.Trunc(selection)
	frac := selection - whole
	if frac < integerTolerance || 1-frac < integerTolerance {
		if float64(star) <= math.Round(selection) {
			return 100
		}
		return 0
	}
	switch {
	case float64(star) < whole:
		return 100
	case float64(star) == whole && frac >= halfFillThreshold:
		return 50
	default:
		return 0
	}
}
