package domain

import "math"

// Round2 rounds to 2 decimal places for display. Totals are always
// recomputed from source prices and quantities, so rounding never
// accumulates across steps.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
