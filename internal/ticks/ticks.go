// Package ticks holds tick labels, tick-mark series and the collision
// resolver that hides crowded ticks.
package ticks

import (
	"cmp"
	"log/slog"
	"slices"

	"github.com/llehouerou/dataslider/internal/logging"
	"github.com/llehouerou/dataslider/internal/steps"
)

// Tick is a marker at a fixed domain value.
type Tick struct {
	Value    float64
	Label    string
	Position int // extra cells away from the track, past the label row or column
}

// Filter sorts ticks by value, removes duplicate values (first wins) and
// drops ticks outside [r.Min, r.Max], logging each one dropped.
func Filter(in []Tick, r steps.Range, logger *slog.Logger) []Tick {
	logger = logging.OrNop(logger)

	out := make([]Tick, 0, len(in))
	for _, t := range in {
		if t.Value < r.Min || t.Value > r.Max {
			logger.Warn("tick value out of range, ignored",
				"value", t.Value, "min", r.Min, "max", r.Max)
			continue
		}
		out = append(out, t)
	}
	slices.SortStableFunc(out, func(a, b Tick) int { return cmp.Compare(a.Value, b.Value) })
	return slices.CompactFunc(out, func(a, b Tick) bool { return a.Value == b.Value })
}

// Values returns the tick values in order.
func Values(ts []Tick) []float64 {
	vs := make([]float64, len(ts))
	for i, t := range ts {
		vs[i] = t.Value
	}
	return vs
}

// IndexOf returns the index of the tick whose value equals v, or -1.
func IndexOf(ts []Tick, v float64) int {
	return slices.IndexFunc(ts, func(t Tick) bool { return t.Value == v })
}

// MarkSet describes a series of unlabeled tick marks.
type MarkSet struct {
	Min      float64
	Max      float64
	Step     float64
	StepFunc steps.StepFunc
}

// Marks expands mark sets into sorted unique mark values within r. A set
// reaching outside r is clamped to r and logged.
func Marks(sets []MarkSet, r steps.Range, logger *slog.Logger) []float64 {
	logger = logging.OrNop(logger)
	r = r.Normalized()

	var out []float64
	for _, set := range sets {
		lo, hi := set.Min, set.Max
		if lo < r.Min || hi > r.Max {
			logger.Warn("tick mark range outside slider range, clamped",
				"mark_min", lo, "mark_max", hi, "min", r.Min, "max", r.Max)
			lo = max(lo, r.Min)
			hi = min(hi, r.Max)
		}
		if lo >= hi {
			continue
		}
		mr := steps.Range{Min: lo, Max: hi, Step: set.Step, StepFunc: set.StepFunc, Decimals: r.Decimals}
		out = append(out, steps.FromRange(mr, logger)...)
	}
	slices.Sort(out)
	return slices.Compact(out)
}
