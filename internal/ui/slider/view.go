package slider

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/dataslider/internal/interaction"
	"github.com/llehouerou/dataslider/internal/ticks"
	"github.com/llehouerou/dataslider/internal/ui/layout"
	"github.com/llehouerou/dataslider/internal/ui/overlay"
	"github.com/llehouerou/dataslider/internal/ui/render"
	"github.com/llehouerou/dataslider/internal/ui/styles"
)

const title = "dataslider"

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Glyphs, horizontal then vertical.
const (
	glyphFilledH = "━"
	glyphEmptyH  = "─"
	glyphMarkH   = "╵"
	glyphFilledV = "┃"
	glyphEmptyV  = "│"
	glyphMarkV   = "╴"
	glyphHandle  = "●"
)

// Label placement relative to the track: labels sit past the marks.
const (
	labelRow    = 2 // rows below a horizontal track
	labelColumn = 3 // columns right of a vertical track
)

// box is a placed piece of text in window cells.
type box struct {
	row, col, width int
	text            string
}

func (b box) contains(x, y int) bool {
	return y == b.row && x >= b.col && x < b.col+b.width
}

// labelBox is a tick label with its placement.
type labelBox struct {
	box
	state interaction.TickState
}

// cell converts a track offset to a cell index along the track.
func (m *Model) cell(offset float64) int {
	return min(max(int(offset), 0), max(m.track.Length-1, 0))
}

// labelBoxes places the tick labels. Hidden labels are included with
// their Hidden flag set.
func (m *Model) labelBoxes() []labelBox {
	vertical := m.vertical()
	width := func(t ticks.Tick) float64 {
		if vertical {
			return 1
		}
		return float64(textWidth(m.labelText(t)) + 1)
	}
	states := m.ctrl.LabelStates(width)
	boxes := make([]labelBox, len(states))
	for i, s := range states {
		text := m.labelText(s.Tick)
		w := textWidth(text)
		c := m.cell(s.Offset)
		b := box{width: w, text: text}
		if vertical {
			b.row = m.track.Y + c
			b.col = m.track.X + labelColumn + s.Tick.Position
		} else {
			b.row = m.track.Y + labelRow + s.Tick.Position
			b.col = m.track.X + c - w/2
		}
		boxes[i] = labelBox{box: b, state: s}
	}
	return boxes
}

// capBoxes places the leading (left/top) and trailing caps.
func (m *Model) capBoxes() (leading, trailing box) {
	lt, tt := m.capTexts()
	t := m.track
	leading = box{text: lt, width: textWidth(lt)}
	trailing = box{text: tt, width: textWidth(tt)}
	if m.vertical() {
		leading.row, leading.col = t.Y-1-capGap, t.X
		trailing.row, trailing.col = t.Y+t.Length+capGap, t.X
		return leading, trailing
	}
	leading.row, leading.col = t.Y, t.X-capGap-leading.width
	trailing.row, trailing.col = t.Y, t.X+t.Length+capGap
	return leading, trailing
}

// labelAt returns the index of the visible label under (x, y).
func (m *Model) labelAt(x, y int) (int, bool) {
	for _, b := range m.labelBoxes() {
		if !b.state.Hidden && b.contains(x, y) {
			return b.state.Index, true
		}
	}
	return -1, false
}

// capAt reports whether (x, y) hits a cap and whether that cap is the
// minimum.
func (m *Model) capAt(x, y int) (isMin, ok bool) {
	if m.track.Length == 0 {
		return false, false
	}
	leading, trailing := m.capBoxes()
	switch {
	case leading.contains(x, y):
		return m.leadingIsMin(), true
	case trailing.contains(x, y):
		return !m.leadingIsMin(), true
	}
	return false, false
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	s := m.theme.S()
	if layout.IsTooSmall(m.trackOpts()) {
		return s.Error.Render(render.Truncate("window too small", m.width))
	}

	c := overlay.New(m.width, m.height)
	m.drawHeader(c, s)
	m.drawTrack(c, s)
	m.drawCaps(c, s)
	m.drawMarks(c, s)
	m.drawLabels(c, s)
	m.drawTooltip(c, s)
	m.drawFooter(c, s)
	return c.String()
}

func (m *Model) drawHeader(c *overlay.Canvas, s *styles.Styles) {
	left := s.Title.Render(title)
	if m.ctrl.IsLoading() {
		frame := spinnerFrames[m.loadingFrame%len(spinnerFrames)]
		left += " " + s.Tooltip.Render(frame)
	}
	right := s.Base.Render(m.format(m.ctrl.Value()))
	c.Put(0, layout.Padding, render.Row(left, right, m.width-2*layout.Padding))
}

// drawTrack draws the filled part from the progress origin to the handle,
// the empty remainder and the handle itself.
func (m *Model) drawTrack(c *overlay.Canvas, s *styles.Styles) {
	t := m.track
	handle := m.cell(m.ctrl.HandleOffset())
	originAtLead := m.leadingIsMin()

	handleStyle := s.Handle
	if !m.selectable {
		handleStyle = s.HandleActive
	}

	if m.vertical() {
		filled := handle
		if !originAtLead {
			filled = t.Length - 1 - handle
		}
		colors := styles.Blend(filled, m.theme.RibbonFrom, m.theme.RibbonTo)
		for i := range t.Length {
			var glyph string
			switch {
			case i == handle:
				glyph = handleStyle.Render(glyphHandle)
			case originAtLead && i < handle:
				glyph = lipgloss.NewStyle().Foreground(colors[i]).Render(glyphFilledV)
			case !originAtLead && i > handle:
				glyph = lipgloss.NewStyle().Foreground(colors[t.Length-1-i]).Render(glyphFilledV)
			default:
				glyph = s.Track.Render(glyphEmptyV)
			}
			c.Put(t.Y+i, t.X, glyph)
		}
		return
	}

	before, after := handle, t.Length-1-handle
	var b strings.Builder
	if originAtLead {
		b.WriteString(styles.ApplyGradient(strings.Repeat(glyphFilledH, before), m.theme.RibbonFrom, m.theme.RibbonTo))
		b.WriteString(handleStyle.Render(glyphHandle))
		b.WriteString(s.Track.Render(strings.Repeat(glyphEmptyH, after)))
	} else {
		b.WriteString(s.Track.Render(strings.Repeat(glyphEmptyH, before)))
		b.WriteString(handleStyle.Render(glyphHandle))
		b.WriteString(styles.ApplyGradient(strings.Repeat(glyphFilledH, after), m.theme.RibbonTo, m.theme.RibbonFrom))
	}
	c.Put(t.Y, t.X, b.String())
}

func (m *Model) drawCaps(c *overlay.Canvas, s *styles.Styles) {
	leading, trailing := m.capBoxes()
	c.Put(leading.row, leading.col, s.Muted.Render(leading.text))
	c.Put(trailing.row, trailing.col, s.Muted.Render(trailing.text))
}

func (m *Model) drawMarks(c *overlay.Canvas, s *styles.Styles) {
	t := m.track
	for _, st := range m.ctrl.MarkStates(1) {
		if st.Hidden {
			continue
		}
		style := s.Subtle
		if st.Selected {
			style = s.Base
		}
		i := m.cell(st.Offset)
		if m.vertical() {
			c.Put(t.Y+i, t.X+1, style.Render(glyphMarkV))
		} else {
			c.Put(t.Y+1, t.X+i, style.Render(glyphMarkH))
		}
	}
}

func (m *Model) drawLabels(c *overlay.Canvas, s *styles.Styles) {
	for _, b := range m.labelBoxes() {
		if b.state.Hidden {
			continue
		}
		style := s.Label
		switch {
		case b.state.Index == m.tickFocus:
			style = s.LabelFocused
		case b.state.Selected:
			style = s.LabelSelected
		}
		c.Put(b.row, b.col, style.Render(b.text))
	}
}

// drawTooltip shows the value next to the handle while dragging. On a
// vertical track it covers the label column for the handle's row.
func (m *Model) drawTooltip(c *overlay.Canvas, s *styles.Styles) {
	if !m.ctrl.Dragging() {
		return
	}
	text := m.format(m.ctrl.Value())
	w := textWidth(text)
	t := m.track
	handle := m.cell(m.ctrl.HandleOffset())
	if m.vertical() {
		c.Put(t.Y+handle, t.X+labelColumn, s.Tooltip.Render(text))
		return
	}
	c.Put(t.Y-1, t.X+handle-w/2, s.Tooltip.Render(text))
}

func (m *Model) drawFooter(c *overlay.Canvas, s *styles.Styles) {
	helpLines := strings.Split(m.helpView(), "\n")
	row := m.height - len(helpLines)
	for i, line := range helpLines {
		c.Put(row+i, layout.Padding, line)
	}

	style := s.Muted
	if m.errText != "" {
		style = s.Error
	}
	c.Put(row-statusHeight, layout.Padding, style.Render(render.Truncate(m.Status(), m.width-2*layout.Padding)))
}
