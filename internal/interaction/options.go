package interaction

import (
	"github.com/llehouerou/dataslider/internal/geometry"
	"github.com/llehouerou/dataslider/internal/steps"
	"github.com/llehouerou/dataslider/internal/ticks"
)

// Options is the configuration snapshot a Controller is built from. It is
// constructed once per lifecycle and never mutated by the controller;
// configuration changes go through Controller.Update with a new value.
type Options struct {
	Range        steps.Range
	Axis         geometry.Axis
	DefaultValue float64

	ArrowKeys  bool // arrow keys move the value while focused
	Responsive bool // hide colliding ticks

	Labels          []ticks.Tick
	SnapToTicks     bool // snap to label values instead of range steps
	LabelsClickable bool
	Marks           []ticks.MarkSet
}

// DefaultOptions returns options for a 0-100 horizontal slider with step 1.
// Values snap to tick labels whenever labels are given.
func DefaultOptions() Options {
	return Options{
		Range:           steps.Range{Min: 0, Max: 100, Step: 1, Decimals: -1},
		Axis:            geometry.NewAxis(geometry.Horizontal, geometry.Right),
		ArrowKeys:       true,
		Responsive:      true,
		LabelsClickable: true,
		SnapToTicks:     true,
	}
}

// Hooks are invoked at lifecycle points. Nil hooks are skipped.
type Hooks struct {
	OnDragStart func(value float64)
	OnDrag      func(value float64)
	OnDragEnd   func(value float64)
	OnUpdate    func(value float64)
	OnTick      func(value float64, tick ticks.Tick, index int)
}

func call(fn func(float64), v float64) {
	if fn != nil {
		fn(v)
	}
}

// SelectionHost lets the controller suppress incidental text selection
// in the host while a drag is in progress.
type SelectionHost interface {
	SetSelectable(selectable bool)
}

// PointerEvent carries a pointer position in screen coordinates.
type PointerEvent struct {
	X, Y float64
	// NoCoords marks events without usable coordinates, such as a touch
	// event with no touch points. They are ignored.
	NoCoords bool
}

// At builds a pointer event at (x, y).
func At(x, y float64) PointerEvent {
	return PointerEvent{X: x, Y: y}
}
