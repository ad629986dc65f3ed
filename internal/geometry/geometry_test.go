//nolint:goconst // test cases intentionally repeat strings for readability
package geometry

import (
	"errors"
	"testing"
)

type fixedTarget struct{ r Rect }

func (f *fixedTarget) Bounds() Rect { return f.r }

func TestNewAxis(t *testing.T) {
	tests := []struct {
		name      string
		o         Orientation
		d         Direction
		wantDir   Direction
		wantSense Sense
	}{
		{"horizontal right", Horizontal, Right, Right, StartRelative},
		{"horizontal left", Horizontal, Left, Left, EndRelative},
		{"vertical down", Vertical, Down, Down, StartRelative},
		{"vertical up", Vertical, Up, Up, EndRelative},
		{"horizontal with vertical direction falls back", Horizontal, Up, Right, StartRelative},
		{"vertical with horizontal direction falls back", Vertical, Left, Up, EndRelative},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAxis(tt.o, tt.d)
			if a.Direction != tt.wantDir {
				t.Errorf("Direction = %v, want %v", a.Direction, tt.wantDir)
			}
			if a.Sense != tt.wantSense {
				t.Errorf("Sense = %v, want %v", a.Sense, tt.wantSense)
			}
		})
	}
}

func TestAxis_KeySign(t *testing.T) {
	tests := []struct {
		d    Direction
		key  string
		want int
	}{
		{Right, "right", 1},
		{Right, "left", -1},
		{Right, "up", 0},
		{Left, "left", 1},
		{Left, "right", -1},
		{Up, "up", 1},
		{Up, "down", -1},
		{Up, "left", 0},
		{Down, "down", 1},
		{Down, "up", -1},
	}
	for _, tt := range tests {
		o := Horizontal
		if tt.d == Up || tt.d == Down {
			o = Vertical
		}
		a := NewAxis(o, tt.d)
		if got := a.KeySign(tt.key); got != tt.want {
			t.Errorf("%v.KeySign(%q) = %d, want %d", tt.d, tt.key, got, tt.want)
		}
	}
}

func TestAxis_Coord(t *testing.T) {
	if got := NewAxis(Horizontal, Right).Coord(3, 7); got != 3 {
		t.Errorf("horizontal Coord = %v, want 3", got)
	}
	if got := NewAxis(Vertical, Up).Coord(3, 7); got != 7 {
		t.Errorf("vertical Coord = %v, want 7", got)
	}
}

func TestResolver_SnapshotFollowsTarget(t *testing.T) {
	target := &fixedTarget{r: Rect{X: 10, Y: 2, W: 100, H: 1}}
	r := NewResolver(NewAxis(Horizontal, Right), target)

	s := r.Snapshot()
	if s.TrackStart != 10 || s.TrackLength != 100 || s.TrackThickness != 1 {
		t.Errorf("snapshot = %+v", s)
	}
	if s.TrackEnd() != 110 {
		t.Errorf("TrackEnd = %v, want 110", s.TrackEnd())
	}

	// resize without telling the resolver
	target.r = Rect{X: 5, Y: 2, W: 50, H: 1}
	s = r.Snapshot()
	if s.TrackStart != 5 || s.TrackLength != 50 {
		t.Errorf("snapshot after resize = %+v", s)
	}
}

func TestResolver_VerticalSnapshot(t *testing.T) {
	r := NewResolver(NewAxis(Vertical, Up), &fixedTarget{r: Rect{X: 4, Y: 1, W: 3, H: 20}})

	s := r.Snapshot()
	if s.TrackStart != 1 || s.TrackLength != 20 || s.TrackThickness != 3 {
		t.Errorf("snapshot = %+v", s)
	}
	if s.Sense != EndRelative {
		t.Errorf("Sense = %v, want end-relative", s.Sense)
	}
}

func TestResolver_NilTarget(t *testing.T) {
	s := NewResolver(NewAxis(Horizontal, Right), nil).Snapshot()
	if s.TrackLength != 0 {
		t.Errorf("TrackLength = %v, want 0", s.TrackLength)
	}
}

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 2}
	if !r.Contains(10, 2) {
		t.Error("edge should be contained")
	}
	if r.Contains(11, 1) {
		t.Error("point outside should not be contained")
	}
}

func TestParse(t *testing.T) {
	o, err := ParseOrientation("Vertical")
	if err != nil || o != Vertical {
		t.Errorf("ParseOrientation(Vertical) = %v, %v", o, err)
	}
	if _, err := ParseOrientation("diagonal"); !errors.Is(err, ErrUnknownDirection) {
		t.Errorf("expected ErrUnknownDirection, got %v", err)
	}

	d, err := ParseDirection("", Vertical)
	if err != nil || d != Up {
		t.Errorf("ParseDirection(\"\", vertical) = %v, %v", d, err)
	}
	d, err = ParseDirection("left", Horizontal)
	if err != nil || d != Left {
		t.Errorf("ParseDirection(left) = %v, %v", d, err)
	}
	if _, err := ParseDirection("sideways", Horizontal); !errors.Is(err, ErrUnknownDirection) {
		t.Errorf("expected ErrUnknownDirection, got %v", err)
	}
}
