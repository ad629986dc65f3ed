// Package interaction implements the slider's drag and keyboard state
// machine on top of the range, geometry and transform packages.
package interaction

import (
	"errors"
	"log/slog"

	"github.com/llehouerou/dataslider/internal/binding"
	"github.com/llehouerou/dataslider/internal/geometry"
	"github.com/llehouerou/dataslider/internal/logging"
	"github.com/llehouerou/dataslider/internal/steps"
	"github.com/llehouerou/dataslider/internal/ticks"
	"github.com/llehouerou/dataslider/internal/transform"
)

// ErrNoRange is returned by New when no range is configured.
var ErrNoRange = errors.New("slider configuration has no range")

// keyModifierFactor multiplies the keyboard step while the modifier is held.
const keyModifierFactor = 5

// State is the drag state.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Controller owns the slider value and drag state. It is not safe for
// concurrent use; all input is expected on one goroutine (the UI loop).
type Controller struct {
	opts     *Options
	resolver *geometry.Resolver
	target   geometry.Target
	tr       transform.Transform
	table    steps.Table
	labels   []ticks.Tick
	marks    []float64

	value    float64
	progress float64
	state    State
	focused  bool
	loading  bool
	selected int // selected label index, -1 for none

	hooks  Hooks
	host   SelectionHost
	hub    *binding.Hub
	logger *slog.Logger
}

// New builds a controller. It fails only when opts is nil or carries no
// range; every other configuration problem is logged and worked around.
func New(opts *Options, target geometry.Target, hooks Hooks, logger *slog.Logger) (*Controller, error) {
	if opts == nil || opts.Range.IsZero() {
		return nil, ErrNoRange
	}
	c := &Controller{
		target:   target,
		hooks:    hooks,
		hub:      binding.NewHub(),
		logger:   logging.OrNop(logger),
		selected: -1,
	}
	c.configure(opts)
	c.apply(c.defaultValue())
	return c, nil
}

// SetHost installs the selection host notified during drags.
func (c *Controller) SetHost(h SelectionHost) {
	c.host = h
}

// SetHooks replaces the lifecycle hooks.
func (c *Controller) SetHooks(h Hooks) {
	c.hooks = h
}

// configure derives everything that depends on the options.
func (c *Controller) configure(opts *Options) {
	c.opts = opts
	r := opts.Range.Normalized()
	if err := r.Validate(); err != nil {
		c.logger.Error("invalid slider range", "error", err)
	}
	c.tr = transform.New(r)
	c.resolver = geometry.NewResolver(opts.Axis, c.target)
	c.labels = ticks.Filter(opts.Labels, r, c.logger)
	c.marks = ticks.Marks(opts.Marks, r, c.logger)
	c.table = steps.Build(r, ticks.Values(c.labels), opts.SnapToTicks, c.logger)
}

func (c *Controller) defaultValue() float64 {
	r := c.tr.Range()
	v := c.opts.DefaultValue
	if v < r.Min || v > r.Max {
		c.logger.Warn("default value out of range, clamped", "value", v, "min", r.Min, "max", r.Max)
		v = r.Clamp(v)
	}
	return v
}

// Update applies new options, rebuilding the step table. The current value
// is kept, clamped to the new range.
func (c *Controller) Update(opts *Options) error {
	if opts == nil || opts.Range.IsZero() {
		return ErrNoRange
	}
	c.configure(opts)
	c.apply(c.value)
	return nil
}

// Reset rebuilds from the current options, ends any drag and restores the
// default value.
func (c *Controller) Reset() {
	c.endDrag(false)
	c.configure(c.opts)
	c.apply(c.defaultValue())
}

// ResetTo is Reset followed by SetValue(v).
func (c *Controller) ResetTo(v float64) {
	c.Reset()
	c.SetValue(v)
}

// Options returns the active configuration snapshot.
func (c *Controller) Options() *Options {
	return c.opts
}

// Value returns the current domain value.
func (c *Controller) Value() float64 {
	return c.value
}

// SetValue sets the value directly, clamped to the range.
func (c *Controller) SetValue(v float64) {
	c.apply(v)
}

// Progress returns the handle position on the 0-100 track scale.
func (c *Controller) Progress() float64 {
	return c.progress
}

// State returns the drag state.
func (c *Controller) State() State {
	return c.state
}

// Dragging reports whether a pointer drag is engaged.
func (c *Controller) Dragging() bool {
	return c.state == Dragging
}

// Table returns the snap table.
func (c *Controller) Table() steps.Table {
	return c.table
}

// Labels returns the in-range tick labels in value order.
func (c *Controller) Labels() []ticks.Tick {
	return c.labels
}

// Marks returns the tick-mark values.
func (c *Controller) Marks() []float64 {
	return c.marks
}

// Selected returns the selected label index, or -1.
func (c *Controller) Selected() int {
	return c.selected
}

// Geometry returns a fresh snapshot of the track measurements.
func (c *Controller) Geometry() geometry.Snapshot {
	return c.resolver.Snapshot()
}

// Transform returns the value/progress transform for the active range.
func (c *Controller) Transform() transform.Transform {
	return c.tr
}

// Subscribe registers an observer called whenever the value changes.
func (c *Controller) Subscribe(fn func(float64), t binding.Transform) (cancel func()) {
	return c.hub.Subscribe(fn, t)
}

// Channel returns a channel subscription to value changes.
func (c *Controller) Channel() *binding.Subscription {
	return c.hub.Channel()
}

// Close ends all subscriptions.
func (c *Controller) Close() {
	c.hub.Close()
}

// Loading toggles the loading indicator.
func (c *Controller) Loading(loading bool) {
	c.loading = loading
}

// IsLoading reports whether the loading indicator is on.
func (c *Controller) IsLoading() bool {
	return c.loading
}

// apply is the single value-update path: clamp, round, reposition the
// handle, reselect ticks, then notify.
func (c *Controller) apply(v float64) {
	v = c.tr.Range().Fit(v)
	changed := v != c.value

	c.value = v
	c.progress = steps.Clamp(c.tr.ValueToProgress(v), 0, 100)
	c.selected = ticks.IndexOf(c.labels, v)

	call(c.hooks.OnUpdate, v)
	if changed {
		c.hub.Publish(v)
	}
}
