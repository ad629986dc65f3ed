package interaction

import "github.com/llehouerou/dataslider/internal/transform"

// PointerDown starts a drag and processes the event as a first move, so a
// click on the track jumps exactly like a drag would.
func (c *Controller) PointerDown(e PointerEvent) {
	if c.state == Idle {
		c.state = Dragging
		if c.host != nil {
			c.host.SetSelectable(false)
		}
		call(c.hooks.OnDragStart, c.value)
	}
	c.PointerMove(e)
}

// PointerMove updates the value from the pointer while a drag is engaged.
// Moves while idle are ignored.
func (c *Controller) PointerMove(e PointerEvent) {
	if c.state != Dragging {
		return
	}
	if c.updateFromPointer(e) {
		call(c.hooks.OnDrag, c.value)
	}
}

// PointerUp ends the drag. It is expected from a global listener, so it
// may arrive outside the track and even without a preceding PointerDown.
func (c *Controller) PointerUp() {
	c.endDrag(true)
}

// Cancel aborts an in-progress drag, firing OnDragEnd.
func (c *Controller) Cancel() {
	c.endDrag(true)
}

func (c *Controller) endDrag(notify bool) {
	wasDragging := c.state == Dragging
	c.state = Idle
	if c.host != nil {
		c.host.SetSelectable(true)
	}
	if wasDragging && notify {
		call(c.hooks.OnDragEnd, c.value)
	}
}

// updateFromPointer runs pointer -> progress -> value -> snapped value.
// The geometry is queried fresh for every event.
func (c *Controller) updateFromPointer(e PointerEvent) bool {
	if e.NoCoords {
		return false
	}
	snap := c.resolver.Snapshot()
	coord := c.resolver.Axis().Coord(e.X, e.Y)

	v := c.tr.ProgressToValue(transform.PointerToProgress(snap, coord))
	if q, ok := c.table.Nearest(v); ok {
		v = q
	}
	c.apply(v)
	return true
}
