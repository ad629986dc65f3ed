package interaction

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/dataslider/internal/geometry"
	"github.com/llehouerou/dataslider/internal/steps"
	"github.com/llehouerou/dataslider/internal/ticks"
)

func TestKey_RequiresFocus(t *testing.T) {
	c, _, _ := newTestController(t, nil)

	assert.False(t, c.Key("right", false))
	assert.InDelta(t, 0.0, c.Value(), 0)

	c.Focus()
	assert.True(t, c.Key("right", false))
	assert.InDelta(t, 25.0, c.Value(), 0)

	c.Blur()
	assert.False(t, c.Focused())
	assert.False(t, c.Key("right", false))
}

func TestKey_Disabled(t *testing.T) {
	c, _, _ := newTestController(t, func(o *Options) { o.ArrowKeys = false })
	c.Focus()

	assert.False(t, c.Key("right", false))
}

func TestKey_DirectionAware(t *testing.T) {
	tests := []struct {
		name    string
		axis    geometry.Axis
		key     string
		handled bool
		want    float64
	}{
		{"right increments on right", geometry.NewAxis(geometry.Horizontal, geometry.Right), "right", true, 60},
		{"left decrements on right", geometry.NewAxis(geometry.Horizontal, geometry.Right), "left", true, 40},
		{"left increments on left", geometry.NewAxis(geometry.Horizontal, geometry.Left), "left", true, 60},
		{"up increments on up", geometry.NewAxis(geometry.Vertical, geometry.Up), "up", true, 60},
		{"up decrements on down", geometry.NewAxis(geometry.Vertical, geometry.Down), "up", true, 40},
		{"cross axis ignored", geometry.NewAxis(geometry.Horizontal, geometry.Right), "up", false, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, _ := newTestController(t, func(o *Options) {
				o.Range = steps.Range{Min: 0, Max: 100, Step: 10}
				o.Axis = tt.axis
				o.DefaultValue = 50
			})
			c.Focus()

			assert.Equal(t, tt.handled, c.Key(tt.key, false))
			assert.InDelta(t, tt.want, c.Value(), 0)
		})
	}
}

func TestKey_ModifierMultipliesAndClamps(t *testing.T) {
	c, _, _ := newTestController(t, func(o *Options) {
		o.Range = steps.Range{Min: 0, Max: 100, Step: 10}
		o.DefaultValue = 20
	})
	c.Focus()

	c.Key("right", true)
	assert.InDelta(t, 70.0, c.Value(), 0)

	c.Key("right", true)
	assert.InDelta(t, 100.0, c.Value(), 0)
}

func TestKey_FractionalStepStaysRounded(t *testing.T) {
	c, _, _ := newTestController(t, func(o *Options) {
		o.Range = steps.Range{Min: 0, Max: 1, Step: 0.1, Decimals: -1}
	})
	c.Focus()

	for range 3 {
		c.Key("right", false)
	}

	assert.InDelta(t, 0.3, c.Value(), 0)
}

func TestKey_OffGridValueSnapsToGrid(t *testing.T) {
	c, _, _ := newTestController(t, func(o *Options) { o.DefaultValue = 10 })
	c.Focus()

	c.Key("right", false)
	assert.InDelta(t, 25.0, c.Value(), 0)

	c.SetValue(60)
	c.Key("left", false)
	assert.InDelta(t, 25.0, c.Value(), 0)
}

func TestKey_StepFuncWalksTable(t *testing.T) {
	c, _, _ := newTestController(t, func(o *Options) {
		o.Range = steps.Range{Min: 0, Max: 100, StepFunc: func(i int) float64 { return float64(i * i) }}
	})
	c.Focus()

	c.Key("right", false)
	c.Key("right", false)
	assert.InDelta(t, 4.0, c.Value(), 0)

	c.Key("left", false)
	assert.InDelta(t, 1.0, c.Value(), 0)
}

func TestJumpStartEnd(t *testing.T) {
	c, _, _ := newTestController(t, func(o *Options) { o.DefaultValue = 50 })

	c.JumpEnd()
	assert.InDelta(t, 100.0, c.Value(), 0)
	c.JumpStart()
	assert.InDelta(t, 0.0, c.Value(), 0)
}

func labelOptions(o *Options) {
	o.Range = steps.Range{Min: 0, Max: 100, Step: 1}
	o.Labels = []ticks.Tick{
		{Value: 90, Label: "high"},
		{Value: 10, Label: "low"},
		{Value: 50, Label: "mid"},
		{Value: 200, Label: "out"},
	}
}

func TestActivateTick(t *testing.T) {
	c, rec, _ := newTestController(t, labelOptions)

	assert.True(t, c.ActivateTick(1))

	assert.InDelta(t, 50.0, c.Value(), 0)
	assert.Equal(t, 1, c.Selected())
	assert.Equal(t, []float64{50}, rec.tickValues)
	assert.Equal(t, []int{1}, rec.tickIndexes)

	assert.True(t, c.ActivateTick(2))
	assert.Equal(t, 2, c.Selected())

	assert.False(t, c.ActivateTick(3))
	assert.False(t, c.ActivateTick(-1))
}

func TestActivateTick_NotClickable(t *testing.T) {
	c, rec, _ := newTestController(t, func(o *Options) {
		labelOptions(o)
		o.LabelsClickable = false
	})

	assert.False(t, c.ActivateTick(0))
	assert.Empty(t, rec.tickValues)
}

func TestSnapToTicks(t *testing.T) {
	c, _, _ := newTestController(t, func(o *Options) {
		labelOptions(o)
		o.SnapToTicks = true
	})

	assert.Equal(t, steps.Table{10, 50, 90}, c.Table())

	c.PointerDown(At(35, 0))
	assert.InDelta(t, 50.0, c.Value(), 0)
	assert.Equal(t, 1, c.Selected())

	c.PointerUp()
	c.Focus()
	c.Key("right", false)
	assert.InDelta(t, 90.0, c.Value(), 0)
}

func TestLabelStates(t *testing.T) {
	c, _, _ := newTestController(t, func(o *Options) {
		o.Range = steps.Range{Min: 0, Max: 100, Step: 1}
		o.Labels = []ticks.Tick{{Value: 0}, {Value: 8}, {Value: 20}}
		o.DefaultValue = 20
	})

	states := c.LabelStates(func(ticks.Tick) float64 { return 10 })

	assert.Len(t, states, 3)
	assert.InDelta(t, 8.0, states[1].Offset, 1e-9)
	assert.False(t, states[0].Hidden)
	assert.True(t, states[1].Hidden)
	assert.False(t, states[2].Hidden)
	assert.True(t, states[2].Selected)
}

func TestLabelStates_NotResponsive(t *testing.T) {
	c, _, _ := newTestController(t, func(o *Options) {
		o.Range = steps.Range{Min: 0, Max: 100, Step: 1}
		o.Labels = []ticks.Tick{{Value: 0}, {Value: 1}}
		o.Responsive = false
	})

	for _, s := range c.LabelStates(func(ticks.Tick) float64 { return 10 }) {
		assert.False(t, s.Hidden)
	}
}

func TestMarkStates(t *testing.T) {
	c, _, _ := newTestController(t, func(o *Options) {
		o.Range = steps.Range{Min: 0, Max: 100, Step: 1}
		o.Marks = []ticks.MarkSet{{Min: 0, Max: 100, Step: 25}}
		o.DefaultValue = 25
		o.Axis = geometry.NewAxis(geometry.Horizontal, geometry.Left)
	})

	states := c.MarkStates(1)

	assert.Len(t, states, 5)
	assert.InDelta(t, 100.0, states[0].Offset, 1e-9)
	assert.InDelta(t, 75.0, states[1].Offset, 1e-9)
	assert.True(t, states[1].Selected)
	assert.InDelta(t, 75.0, c.HandleOffset(), 1e-9)
}
