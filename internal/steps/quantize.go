package steps

import "math"

// Nearest returns the table entry closest to v. On equal distance the
// earlier (lower) entry wins. ok is false for an empty table, in which case
// callers use v unquantized.
func (t Table) Nearest(v float64) (float64, bool) {
	i := t.NearestIndex(v)
	if i < 0 {
		return v, false
	}
	return t[i], true
}

// NearestIndex returns the index of the nearest entry, or -1 if t is empty.
func (t Table) NearestIndex(v float64) int {
	if len(t) == 0 {
		return -1
	}
	best := 0
	diff := math.Abs(t[0] - v)
	for i := 1; i < len(t); i++ {
		if d := math.Abs(t[i] - v); d < diff {
			diff = d
			best = i
		}
	}
	return best
}

// Next returns the first entry strictly above v, or v itself at the top.
func (t Table) Next(v float64) float64 {
	for _, s := range t {
		if s > v {
			return s
		}
	}
	return v
}

// Prev returns the last entry strictly below v, or v itself at the bottom.
func (t Table) Prev(v float64) float64 {
	for i := len(t) - 1; i >= 0; i-- {
		if t[i] < v {
			return t[i]
		}
	}
	return v
}
