package steps

import (
	"math"
	"strconv"
	"strings"
)

// Round rounds v half away from zero at the given number of decimal places.
// Scaling happens in decimal exponent notation rather than by multiplying,
// so Round(2.005, 2) is 2.01 even though 2.005 is stored as 2.00499999...
func Round(v float64, decimals int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	if decimals < 0 {
		decimals = 0
	}
	return shift(math.Round(shift(v, decimals)), -decimals)
}

// shift multiplies v by 10^n by editing the exponent of its shortest
// decimal representation.
func shift(v float64, n int) float64 {
	if v == 0 || n == 0 {
		return v
	}
	s := strconv.FormatFloat(v, 'e', -1, 64)
	i := strings.IndexByte(s, 'e')
	exp, err := strconv.Atoi(s[i+1:])
	if err != nil {
		return v * math.Pow10(n)
	}
	out, err := strconv.ParseFloat(s[:i]+"e"+strconv.Itoa(exp+n), 64)
	if err != nil {
		return v * math.Pow10(n)
	}
	return out
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		return hi
	}
	if v < lo {
		return lo
	}
	return v
}

// CountDecimals returns the number of decimal places in the shortest
// representation of v (0.25 -> 2, 5 -> 0).
func CountDecimals(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) || v == math.Trunc(v) {
		return 0
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	i := strings.IndexByte(s, '.')
	if i < 0 {
		return 0
	}
	return len(s) - i - 1
}
