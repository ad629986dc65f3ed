// Package steps models the slider's numeric domain and its snap points.
package steps

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/llehouerou/dataslider/internal/logging"
)

// ErrInvalidRange is reported when Min is not strictly below Max.
var ErrInvalidRange = errors.New("range min must be less than max")

// maxFuncSteps bounds StepFunc iteration for functions that never pass Max.
const maxFuncSteps = 100_000

// StepFunc generates an irregular step sequence. It is called with ordinals 1, 2, 3, ...
type StepFunc func(ordinal int) float64

// Range is the slider's numeric domain.
type Range struct {
	Min      float64
	Max      float64
	Step     float64
	StepFunc StepFunc // takes precedence over Step when set
	Decimals int      // negative means infer from Step
}

// Normalized returns a copy with Decimals resolved.
func (r Range) Normalized() Range {
	if r.Decimals < 0 {
		if r.StepFunc != nil {
			r.Decimals = 0
		} else {
			r.Decimals = CountDecimals(r.Step)
		}
	}
	return r
}

// IsZero reports whether r is the zero Range, i.e. no range was configured.
func (r Range) IsZero() bool {
	return r.Min == 0 && r.Max == 0 && r.Step == 0 && r.StepFunc == nil && r.Decimals == 0
}

// Validate reports ErrInvalidRange when Min >= Max. The error is a
// diagnostic; the engine keeps operating on the given bounds.
func (r Range) Validate() error {
	if r.Min >= r.Max {
		return fmt.Errorf("%w: min=%v max=%v", ErrInvalidRange, r.Min, r.Max)
	}
	return nil
}

// Clamp limits v to the range bounds.
func (r Range) Clamp(v float64) float64 {
	return Clamp(v, r.Min, r.Max)
}

// Fit clamps v to the range and rounds it to the range's decimals. A bound
// with more digits than the decimals can round outside the range, so the
// rounded value is clamped again.
func (r Range) Fit(v float64) float64 {
	return r.Clamp(Round(r.Clamp(v), r.Decimals))
}

// Span returns Max - Min.
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// Table is the ordered set of snap points.
type Table []float64

// Build creates the snap table for r. When tick values are given and snap
// is set, the table is the sorted unique tick values. Otherwise it is
// generated from the range and step, always including Min and Max.
func Build(r Range, ticks []float64, snap bool, logger *slog.Logger) Table {
	logger = logging.OrNop(logger)
	r = r.Normalized()

	if err := r.Validate(); err != nil {
		logger.Error("invalid slider range", "error", err)
		return Table{r.Min}
	}

	if snap && len(ticks) > 0 {
		t := make(Table, len(ticks))
		copy(t, ticks)
		slices.Sort(t)
		return slices.Compact(t)
	}

	return FromRange(r, logger)
}

// FromRange generates the table {min} ∪ steps ∪ {max} for a valid range.
func FromRange(r Range, logger *slog.Logger) Table {
	logger = logging.OrNop(logger)
	r = r.Normalized()

	var t Table
	switch {
	case r.StepFunc != nil:
		for i := 1; i <= maxFuncSteps; i++ {
			v := r.StepFunc(i)
			if v > r.Max {
				break
			}
			if i == maxFuncSteps {
				logger.Warn("step function did not reach range max", "max", r.Max, "last", v)
			}
			t = append(t, Round(v, r.Decimals))
		}
	case r.Step > 0:
		count := int((r.Max-r.Min)/r.Step + 1e-9)
		if count > maxFuncSteps {
			logger.Warn("step too small for range, table truncated", "step", r.Step, "count", count)
			count = maxFuncSteps
		}
		for i := 1; i <= count; i++ {
			// multiply instead of accumulating to avoid drift
			t = append(t, Round(r.Min+float64(i)*r.Step, r.Decimals))
		}
	default:
		logger.Warn("non-positive step, table reduced to range bounds", "step", r.Step)
	}

	return withBounds(t, r.Min, r.Max)
}

// withBounds sorts the generated interior points, drops those not strictly
// inside (lo, hi) and duplicates, then puts lo and hi at the ends. The
// bounds are kept as given even when they carry more digits than the
// range's decimals.
func withBounds(interior Table, lo, hi float64) Table {
	slices.Sort(interior)
	interior = slices.DeleteFunc(interior, func(v float64) bool { return v <= lo || v >= hi })
	interior = slices.Compact(interior)

	t := make(Table, 0, len(interior)+2)
	t = append(t, lo)
	t = append(t, interior...)
	return append(t, hi)
}

// Len returns the number of snap points.
func (t Table) Len() int {
	return len(t)
}

// First returns the lowest snap point, or false if the table is empty.
func (t Table) First() (float64, bool) {
	if len(t) == 0 {
		return 0, false
	}
	return t[0], true
}

// Last returns the highest snap point, or false if the table is empty.
func (t Table) Last() (float64, bool) {
	if len(t) == 0 {
		return 0, false
	}
	return t[len(t)-1], true
}
