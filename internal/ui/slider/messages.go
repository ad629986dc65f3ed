package slider

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/dataslider/internal/config"
	"github.com/llehouerou/dataslider/internal/ticks"
)

// DragStartedMsg is emitted when a pointer drag engages.
type DragStartedMsg struct {
	Value float64
}

// DragEndedMsg is emitted when a drag ends, by release or cancel.
type DragEndedMsg struct {
	Value float64
}

// TickActivatedMsg is emitted when a tick label is activated by click or
// keyboard.
type TickActivatedMsg struct {
	Value float64
	Tick  ticks.Tick
	Index int
}

// ReloadStartedMsg signals that the configuration file changed and is
// being reloaded. The slider shows its loading indicator until the
// matching ConfigReloadedMsg arrives.
type ReloadStartedMsg struct{}

// ConfigReloadedMsg carries a reloaded configuration, or the error that
// prevented loading it.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}

// LoadingTickMsg advances the loading animation.
type LoadingTickMsg struct{}

// LoadingTickCmd returns a command that sends LoadingTickMsg for animation.
func LoadingTickCmd() tea.Cmd {
	return tea.Tick(150*time.Millisecond, func(_ time.Time) tea.Msg {
		return LoadingTickMsg{}
	})
}

// CopiedMsg reports the outcome of copying the value to the clipboard.
type CopiedMsg struct {
	Text string
	Err  error
}
