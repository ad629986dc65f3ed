package geometry

// Rect is a bounding box in screen coordinates.
type Rect struct {
	X, Y float64
	W, H float64
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Contains reports whether the point lies inside the box, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left() && x <= r.Right() && y >= r.Top() && y <= r.Bottom()
}

// Target is anything that can report its live bounding box.
type Target interface {
	Bounds() Rect
}

// Snapshot holds the measurements derived from one Bounds() query.
type Snapshot struct {
	TrackStart     float64 // left or top edge of the track
	TrackLength    float64
	TrackThickness float64
	Sense          Sense
}

// TrackEnd returns the right or bottom edge of the track.
func (s Snapshot) TrackEnd() float64 {
	return s.TrackStart + s.TrackLength
}

// Resolver computes snapshots on demand. It holds no measurements itself.
type Resolver struct {
	axis   Axis
	target Target
}

// NewResolver creates a resolver for the target along the axis.
func NewResolver(axis Axis, target Target) *Resolver {
	return &Resolver{axis: axis, target: target}
}

// Axis returns the resolved axis descriptor.
func (r *Resolver) Axis() Axis {
	return r.axis
}

// Snapshot queries the target's current box.
func (r *Resolver) Snapshot() Snapshot {
	var b Rect
	if r.target != nil {
		b = r.target.Bounds()
	}
	return SnapshotOf(r.axis, b)
}

// SnapshotOf derives the measurements of box b along axis.
func SnapshotOf(axis Axis, b Rect) Snapshot {
	if axis.Vertical() {
		return Snapshot{
			TrackStart:     b.Top(),
			TrackLength:    b.H,
			TrackThickness: b.W,
			Sense:          axis.Sense,
		}
	}
	return Snapshot{
		TrackStart:     b.Left(),
		TrackLength:    b.W,
		TrackThickness: b.H,
		Sense:          axis.Sense,
	}
}
