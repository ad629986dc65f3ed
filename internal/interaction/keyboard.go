package interaction

// Focus marks a slider element as holding input focus.
func (c *Controller) Focus() {
	c.focused = true
}

// Blur clears input focus.
func (c *Controller) Blur() {
	c.focused = false
}

// Focused reports whether the slider holds input focus.
func (c *Controller) Focused() bool {
	return c.focused
}

// Key handles an arrow key ("left", "right", "up" or "down"). Keys along
// the slider's direction move the value by one step, or by five with the
// modifier held. It reports whether the key was consumed.
func (c *Controller) Key(key string, modifier bool) bool {
	if !c.opts.ArrowKeys || !c.focused {
		return false
	}
	sign := c.resolver.Axis().KeySign(key)
	if sign == 0 {
		return false
	}
	n := 1
	if modifier {
		n = keyModifierFactor
	}
	c.apply(c.stepped(sign, n))
	return true
}

// stepped moves n steps in the sign's direction. A numeric step is added in
// domain units and snapped to the table like a pointer move, which also
// brings an off-grid value back onto the grid. Irregular tables (step
// functions, tick snapping) are walked entry by entry instead.
func (c *Controller) stepped(sign, n int) float64 {
	r := c.tr.Range()
	if r.StepFunc == nil && !(c.opts.SnapToTicks && len(c.labels) > 0) && r.Step > 0 {
		v := r.Fit(c.value + float64(sign*n)*r.Step)
		if q, ok := c.table.Nearest(v); ok {
			v = q
		}
		return v
	}
	v := c.value
	for range n {
		if sign > 0 {
			v = c.table.Next(v)
		} else {
			v = c.table.Prev(v)
		}
	}
	return v
}

// JumpStart moves the value to the range minimum.
func (c *Controller) JumpStart() {
	c.apply(c.tr.Range().Min)
}

// JumpEnd moves the value to the range maximum.
func (c *Controller) JumpEnd() {
	c.apply(c.tr.Range().Max)
}

// ActivateTick sets the value to label i's value, making it the only
// selected tick, and fires OnTick. It reports whether a tick was activated.
func (c *Controller) ActivateTick(i int) bool {
	if !c.opts.LabelsClickable || i < 0 || i >= len(c.labels) {
		return false
	}
	t := c.labels[i]
	c.apply(t.Value)
	c.selected = i
	if c.hooks.OnTick != nil {
		c.hooks.OnTick(t.Value, t, i)
	}
	return true
}
