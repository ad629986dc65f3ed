// Package transform maps between domain values, normalized track progress
// (0-100) and pointer coordinates.
package transform

import (
	"github.com/llehouerou/dataslider/internal/geometry"
	"github.com/llehouerou/dataslider/internal/steps"
)

// Transform converts values for one range.
type Transform struct {
	r steps.Range
}

// New creates a transform for r. Decimals are resolved from the step when
// not set explicitly.
func New(r steps.Range) Transform {
	return Transform{r: r.Normalized()}
}

// Range returns the normalized range.
func (t Transform) Range() steps.Range {
	return t.r
}

// ValueToProgress maps a domain value to track progress. The result is not
// clamped and falls outside [0, 100] for out-of-range values.
func (t Transform) ValueToProgress(v float64) float64 {
	span := t.r.Span()
	if span == 0 {
		return 0
	}
	return (v - t.r.Min) * 100 / span
}

// ProgressToValue maps track progress to a domain value, clamped to the
// range and rounded to its decimals.
func (t Transform) ProgressToValue(p float64) float64 {
	v := t.r.Min + t.r.Span()*p/100
	return t.r.Fit(v)
}

// PointerToProgress converts a pointer coordinate on the track axis to
// progress. Both orientations reduce to one of the two formulas below; the
// axis only decides which screen coordinate is passed in.
func PointerToProgress(s geometry.Snapshot, coord float64) float64 {
	if s.TrackLength <= 0 {
		return 0
	}
	if s.Sense == geometry.EndRelative {
		return (s.TrackEnd() - coord) / s.TrackLength * 100
	}
	return (coord - s.TrackStart) / s.TrackLength * 100
}

// Offset returns the distance from the track's left/top edge at which
// progress p sits, with p clamped to [0, 100].
func Offset(s geometry.Snapshot, p float64) float64 {
	frac := steps.Clamp(p/100, 0, 1)
	if s.Sense == geometry.EndRelative {
		return s.TrackLength - frac*s.TrackLength
	}
	return frac * s.TrackLength
}

// Position returns the absolute screen coordinate for progress p.
func Position(s geometry.Snapshot, p float64) float64 {
	return s.TrackStart + Offset(s, p)
}
