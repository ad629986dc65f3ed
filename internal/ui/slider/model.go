// Package slider is the terminal front-end of the slider: a bubbletea model
// that hosts one interaction.Controller and draws its track, handle, caps,
// tick marks and labels on a cell canvas.
package slider

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/dataslider/internal/geometry"
	"github.com/llehouerou/dataslider/internal/interaction"
	"github.com/llehouerou/dataslider/internal/keymap"
	"github.com/llehouerou/dataslider/internal/logging"
	"github.com/llehouerou/dataslider/internal/ticks"
	"github.com/llehouerou/dataslider/internal/ui/layout"
	"github.com/llehouerou/dataslider/internal/ui/styles"
)

// Compile-time checks.
var (
	_ tea.Model                 = (*Model)(nil)
	_ geometry.Target           = (*Model)(nil)
	_ interaction.SelectionHost = (*Model)(nil)
)

const (
	headerHeight = 2 // title row, tooltip row
	statusHeight = 1
	capGap       = 1 // blank cells between a cap and the track

	maxLabelWidth = 16
)

// Model is the slider screen.
type Model struct {
	ctrl   *interaction.Controller
	keys   *keymap.Resolver
	help   help.Model
	theme  *styles.Theme
	logger *slog.Logger

	width, height int
	length        int // requested track length, 0 fits the window
	track         layout.Track

	selectable   bool
	tickFocus    int // focused label index, -1 for none
	loadingFrame int
	status       string
	errText      string

	pending []tea.Msg // lifecycle messages raised by controller hooks
}

// New creates the slider model for opts. It fails when opts carries no
// range.
func New(opts *interaction.Options, logger *slog.Logger) (*Model, error) {
	m := &Model{
		keys:       keymap.NewResolver(keymap.Bindings),
		help:       help.New(),
		theme:      styles.T(),
		logger:     logging.OrNop(logger),
		selectable: true,
		tickFocus:  -1,
	}
	ctrl, err := interaction.New(opts, m, m.hooks(), m.logger)
	if err != nil {
		return nil, err
	}
	ctrl.SetHost(m)
	ctrl.Focus()
	m.ctrl = ctrl
	m.applyHelpStyles()
	return m, nil
}

func (m *Model) hooks() interaction.Hooks {
	return interaction.Hooks{
		OnDragStart: func(v float64) {
			m.pending = append(m.pending, DragStartedMsg{Value: v})
		},
		OnDragEnd: func(v float64) {
			m.pending = append(m.pending, DragEndedMsg{Value: v})
		},
		OnTick: func(v float64, t ticks.Tick, i int) {
			m.pending = append(m.pending, TickActivatedMsg{Value: v, Tick: t, Index: i})
		},
	}
}

// Controller returns the hosted controller.
func (m *Model) Controller() *interaction.Controller {
	return m.ctrl
}

// Value returns the current slider value.
func (m *Model) Value() float64 {
	return m.ctrl.Value()
}

// SetLength requests a track length in cells; 0 fits the window.
func (m *Model) SetLength(n int) {
	m.length = max(n, 0)
	m.resize()
}

// SetTheme replaces the color theme.
func (m *Model) SetTheme(t *styles.Theme) {
	if t == nil {
		return
	}
	m.theme = t
	m.applyHelpStyles()
}

// Track returns the track placement for the current window size.
func (m *Model) Track() layout.Track {
	return m.track
}

// Bounds implements geometry.Target. The track is one cell thick.
func (m *Model) Bounds() geometry.Rect {
	t := m.track
	if m.vertical() {
		return geometry.Rect{X: float64(t.X), Y: float64(t.Y), W: 1, H: float64(t.Length)}
	}
	return geometry.Rect{X: float64(t.X), Y: float64(t.Y), W: float64(t.Length), H: 1}
}

// SetSelectable implements interaction.SelectionHost. The terminal has no
// text selection to suppress; the flag switches the handle to its active
// style for the duration of a drag.
func (m *Model) SetSelectable(selectable bool) {
	m.selectable = selectable
}

// TickFocus returns the focused label index, or -1.
func (m *Model) TickFocus() int {
	return m.tickFocus
}

// Status returns the status line text.
func (m *Model) Status() string {
	if m.errText != "" {
		return m.errText
	}
	return m.status
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) vertical() bool {
	return m.ctrl.Options().Axis.Vertical()
}

func (m *Model) trackOpts() layout.TrackOpts {
	opts := layout.TrackOpts{
		WindowWidth:  m.width,
		WindowHeight: m.height,
		Vertical:     m.vertical(),
		HeaderHeight: headerHeight,
		FooterHeight: statusHeight + m.helpHeight(),
		Length:       m.length,
	}
	if opts.Vertical {
		opts.StartCap = 1 + capGap
		opts.EndCap = 1 + capGap
		return opts
	}
	leading, trailing := m.capTexts()
	opts.StartCap = textWidth(leading) + capGap
	opts.EndCap = textWidth(trailing) + capGap
	opts.Gutter = max(0, (m.widestLabel()+1)/2-min(opts.StartCap, opts.EndCap))
	return opts
}

// resize re-places the track. The controller reads the new bounds on its
// next event.
func (m *Model) resize() {
	m.help.Width = max(m.width-2*layout.Padding, 0)
	m.track = layout.Place(m.trackOpts())
}

func (m *Model) applyHelpStyles() {
	s := m.theme.S()
	m.help.Styles.ShortKey = s.Muted
	m.help.Styles.ShortDesc = s.Subtle
	m.help.Styles.ShortSeparator = s.Subtle
	m.help.Styles.FullKey = s.Muted
	m.help.Styles.FullDesc = s.Subtle
	m.help.Styles.FullSeparator = s.Subtle
	m.help.Styles.Ellipsis = s.Subtle
}
