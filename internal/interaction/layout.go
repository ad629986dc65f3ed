package interaction

import (
	"github.com/llehouerou/dataslider/internal/ticks"
	"github.com/llehouerou/dataslider/internal/transform"
)

// TickState is the placement of one tick label or mark.
type TickState struct {
	Tick     ticks.Tick
	Index    int
	Offset   float64 // center, measured from the track's left/top edge
	Hidden   bool
	Selected bool
}

// Extent returns the tick's span for the given visual width.
func (s TickState) Extent(width float64) ticks.Extent {
	return ticks.Extent{Start: s.Offset - width/2, End: s.Offset + width/2}
}

// HandleOffset returns the handle center measured from the track's
// left/top edge.
func (c *Controller) HandleOffset() float64 {
	return transform.Offset(c.resolver.Snapshot(), c.progress)
}

// LabelStates places the tick labels on the current geometry and hides
// the ones that collide. width reports a label's extent along the track.
func (c *Controller) LabelStates(width func(ticks.Tick) float64) []TickState {
	return c.place(c.labels, width, true)
}

// MarkStates places tick marks, each width cells wide along the track.
func (c *Controller) MarkStates(width float64) []TickState {
	ts := make([]ticks.Tick, len(c.marks))
	for i, v := range c.marks {
		ts[i] = ticks.Tick{Value: v}
	}
	return c.place(ts, func(ticks.Tick) float64 { return width }, false)
}

func (c *Controller) place(ts []ticks.Tick, width func(ticks.Tick) float64, selectable bool) []TickState {
	snap := c.resolver.Snapshot()
	states := make([]TickState, len(ts))
	extents := make([]ticks.Extent, len(ts))
	for i, t := range ts {
		selected := t.Value == c.value
		if selectable {
			selected = i == c.selected
		}
		states[i] = TickState{
			Tick:     t,
			Index:    i,
			Offset:   transform.Offset(snap, c.tr.ValueToProgress(t.Value)),
			Selected: selected,
		}
		extents[i] = states[i].Extent(width(t))
	}
	hidden := ticks.Resolver{Enabled: c.opts.Responsive}.Resolve(extents, snap.Sense)
	for i := range states {
		states[i].Hidden = hidden[i]
	}
	return states
}
