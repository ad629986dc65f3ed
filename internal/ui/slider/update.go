package slider

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/dataslider/internal/errmsg"
	"github.com/llehouerou/dataslider/internal/interaction"
	"github.com/llehouerou/dataslider/internal/keymap"
	"github.com/llehouerou/dataslider/internal/ui/styles"
)

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case ReloadStartedMsg:
		m.ctrl.Loading(true)
		m.loadingFrame = 0
		return m, LoadingTickCmd()

	case LoadingTickMsg:
		if m.ctrl.IsLoading() {
			m.loadingFrame++
			return m, LoadingTickCmd()
		}
		return m, nil

	case ConfigReloadedMsg:
		m.handleReload(msg)
		return m, nil

	case DragStartedMsg:
		m.status = ""
		return m, nil

	case DragEndedMsg:
		m.status = "set to " + m.format(msg.Value)
		m.logger.Debug("drag ended", "value", msg.Value)
		return m, nil

	case CopiedMsg:
		if msg.Err != nil {
			m.errText = errmsg.Format(errmsg.OpCopyValue, msg.Err)
			m.logger.Warn("clipboard write failed", "error", msg.Err)
			return m, nil
		}
		m.errText = ""
		m.status = "copied " + msg.Text
		return m, nil

	case TickActivatedMsg:
		m.tickFocus = msg.Index
		m.status = "selected " + m.labelText(msg.Tick)
		m.logger.Debug("tick activated", "value", msg.Value, "index", msg.Index)
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()
	switch m.keys.Resolve(k) {
	case keymap.ActionQuit:
		m.ctrl.Cancel()
		return m, tea.Quit
	case keymap.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
	case keymap.ActionReset:
		m.ctrl.Reset()
		m.tickFocus = -1
		m.status = "reset to " + m.format(m.ctrl.Value())
	case keymap.ActionCopy:
		// the raw value, without thousands separators
		text := strconv.FormatFloat(m.ctrl.Value(), 'f', -1, 64)
		return m, tea.Batch(m.flush(), copyCmd(text))
	case keymap.ActionStep:
		m.ctrl.Key(keymap.ArrowKey(k), false)
	case keymap.ActionStepLarge:
		m.ctrl.Key(keymap.ArrowKey(k), true)
	case keymap.ActionJumpStart:
		m.ctrl.JumpStart()
	case keymap.ActionJumpEnd:
		m.ctrl.JumpEnd()
	case keymap.ActionCancel:
		if m.ctrl.Dragging() {
			m.ctrl.Cancel()
		} else {
			m.tickFocus = -1
		}
	case keymap.ActionNextTick:
		m.cycleTick(1)
	case keymap.ActionPrevTick:
		m.cycleTick(-1)
	case keymap.ActionActivateTick:
		if m.tickFocus >= 0 {
			m.ctrl.ActivateTick(m.tickFocus)
		}
	}
	return m, m.flush()
}

// cycleTick moves tick focus by delta, wrapping around. Focus starts at
// the first label going forward and the last going backward.
func (m *Model) cycleTick(delta int) {
	n := len(m.ctrl.Labels())
	if n == 0 {
		m.tickFocus = -1
		return
	}
	if m.tickFocus < 0 {
		if delta > 0 {
			m.tickFocus = 0
		} else {
			m.tickFocus = n - 1
		}
		return
	}
	m.tickFocus = ((m.tickFocus+delta)%n + n) % n
}

// handleMouse maps terminal mouse events to controller pointer events.
// Cells are addressed by their centers. A press starts a drag only on the
// track; labels and caps are activated instead. Motion and release go to
// the controller unconditionally, which ignores them when idle.
func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	e := interaction.At(float64(msg.X)+0.5, float64(msg.Y)+0.5)

	switch msg.Action { //nolint:exhaustive // only button actions matter
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			break
		}
		if i, ok := m.labelAt(msg.X, msg.Y); ok {
			m.ctrl.ActivateTick(i)
			break
		}
		if minCap, ok := m.capAt(msg.X, msg.Y); ok {
			if minCap {
				m.ctrl.JumpStart()
			} else {
				m.ctrl.JumpEnd()
			}
			break
		}
		if m.Bounds().Contains(e.X, e.Y) {
			m.ctrl.PointerDown(e)
		}
	case tea.MouseActionMotion:
		m.ctrl.PointerMove(e)
	case tea.MouseActionRelease:
		m.ctrl.PointerUp()
	}
	return m, m.flush()
}

func (m *Model) handleReload(msg ConfigReloadedMsg) {
	m.ctrl.Loading(false)
	if msg.Err != nil {
		m.errText = errmsg.Format(errmsg.OpConfigLoad, msg.Err)
		m.logger.Error("config reload failed", "error", msg.Err)
		return
	}
	opts, err := msg.Config.Options(m.logger)
	if err == nil {
		err = m.ctrl.Update(opts)
	}
	if err != nil {
		m.errText = errmsg.Format(errmsg.OpConfigApply, err)
		m.logger.Error("config apply failed", "error", err)
		return
	}
	theme := msg.Config.GetThemeConfig()
	m.SetTheme(styles.T().WithRibbon(lipgloss.Color(theme.From), lipgloss.Color(theme.To)))
	if m.tickFocus >= len(m.ctrl.Labels()) {
		m.tickFocus = -1
	}
	m.errText = ""
	m.status = "configuration reloaded"
	m.SetLength(msg.Config.Length)
}

// flush turns the messages raised by controller hooks during this update
// into commands.
func (m *Model) flush() tea.Cmd {
	if len(m.pending) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, len(m.pending))
	for i, msg := range m.pending {
		cmds[i] = func() tea.Msg { return msg }
	}
	m.pending = nil
	return tea.Batch(cmds...)
}
