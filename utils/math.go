package utils

import "math"

// FloorDiv divides a by b rounding toward negative infinity, so the
// remainder is always in [0, b) for positive b. Go's / truncates toward
// zero, which would hand negative bill totals a remainder of the wrong
// sign when spreading leftovers across payers.
func FloorDiv(a, b int64) (quot, rem int64) {
	quot = a / b
	rem = a % b
	if rem != 0 && (rem < 0) != (b < 0) {
		quot--
		rem += b
	}
	return quot, rem
}

// RoundHalfUp rounds with halves going toward positive infinity:
// 0.5 becomes 1 and -0.5 becomes 0. Proportional shares are rounded this
// way so a bill split recomputed by any client lands on identical cents.
func RoundHalfUp(x float64) int64 {
	return int64(math.Floor(x + 0.5))
}
