package ticks

import "github.com/llehouerou/dataslider/internal/geometry"

// Extent is a tick's visual span along the track axis.
type Extent struct {
	Start float64 // left or top edge
	End   float64 // right or bottom edge
}

// Resolver hides ticks whose extents collide.
type Resolver struct {
	Enabled bool
}

// Resolve returns the hidden flag for each extent. Extents are given in
// ascending value order, so their screen order depends on sense: ascending
// screen order for start-relative tracks, descending for end-relative ones.
//
// A tick is hidden when it touches or crosses the last visible tick. Hidden
// ticks never become the last visible one, so a crowded run thins out to
// evenly spaced survivors.
func (r Resolver) Resolve(extents []Extent, sense geometry.Sense) []bool {
	hidden := make([]bool, len(extents))
	if !r.Enabled {
		return hidden
	}

	last := -1
	for i, e := range extents {
		if last >= 0 && collides(e, extents[last], sense) {
			hidden[i] = true
			continue
		}
		last = i
	}
	return hidden
}

func collides(cur, last Extent, sense geometry.Sense) bool {
	if sense == geometry.EndRelative {
		return cur.End >= last.Start
	}
	return cur.Start <= last.End
}

// Visible counts the non-hidden flags.
func Visible(hidden []bool) int {
	n := 0
	for _, h := range hidden {
		if !h {
			n++
		}
	}
	return n
}
