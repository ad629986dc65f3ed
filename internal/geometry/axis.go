// Package geometry resolves track measurements from a render target's box
// and the configured orientation and direction.
package geometry

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDirection is returned when a direction or orientation name
// cannot be parsed.
var ErrUnknownDirection = errors.New("unknown direction")

// Orientation is the track's screen axis.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Direction is the screen direction in which the value increases.
type Direction int

const (
	Right Direction = iota
	Left
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "right"
	}
}

// Sense is the directional alias: whether a pointer near the geometric start
// of the track (left or top edge) maps to a low or a high value.
type Sense int

const (
	// StartRelative: progress grows away from the track's left/top edge.
	StartRelative Sense = iota
	// EndRelative: progress grows away from the track's right/bottom edge.
	EndRelative
)

func (s Sense) String() string {
	if s == EndRelative {
		return "end-relative"
	}
	return "start-relative"
}

// Axis is resolved once per configuration and consulted in hot paths
// instead of re-deriving orientation and direction.
type Axis struct {
	Orientation Orientation
	Direction   Direction
	Sense       Sense
}

// NewAxis resolves the axis descriptor. A direction that does not belong to
// the orientation (e.g. "up" on a horizontal track) falls back to the
// orientation's default.
func NewAxis(o Orientation, d Direction) Axis {
	if o == Horizontal && d != Left && d != Right {
		d = DefaultDirection(o)
	}
	if o == Vertical && d != Up && d != Down {
		d = DefaultDirection(o)
	}

	sense := StartRelative
	if d == Left || d == Up {
		sense = EndRelative
	}
	return Axis{Orientation: o, Direction: d, Sense: sense}
}

// Vertical reports whether the track runs top to bottom.
func (a Axis) Vertical() bool {
	return a.Orientation == Vertical
}

// Coord selects the pointer coordinate that drives progress.
func (a Axis) Coord(x, y float64) float64 {
	if a.Vertical() {
		return y
	}
	return x
}

// KeySign returns +1 or -1 for an arrow key name that moves along the
// track in this direction, and 0 for keys on the other axis.
func (a Axis) KeySign(key string) int {
	inc, dec := a.arrowKeys()
	switch key {
	case inc:
		return 1
	case dec:
		return -1
	}
	return 0
}

func (a Axis) arrowKeys() (inc, dec string) {
	switch a.Direction {
	case Left:
		return "left", "right"
	case Up:
		return "up", "down"
	case Down:
		return "down", "up"
	default:
		return "right", "left"
	}
}

// DefaultDirection is right for horizontal tracks and up for vertical ones.
func DefaultDirection(o Orientation) Direction {
	if o == Vertical {
		return Up
	}
	return Right
}

// ParseOrientation parses "horizontal" or "vertical". Empty means horizontal.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	}
	return Horizontal, fmt.Errorf("%w: orientation %q", ErrUnknownDirection, s)
}

// ParseDirection parses a direction name. Empty yields the orientation default.
func ParseDirection(s string, o Orientation) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DefaultDirection(o), nil
	case "right":
		return Right, nil
	case "left":
		return Left, nil
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	}
	return DefaultDirection(o), fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}
