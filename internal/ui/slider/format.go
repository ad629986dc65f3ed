package slider

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/dataslider/internal/geometry"
	"github.com/llehouerou/dataslider/internal/keymap"
	"github.com/llehouerou/dataslider/internal/ticks"
	"github.com/llehouerou/dataslider/internal/ui/render"
)

// FormatValue renders v with thousands separators and at most decimals
// fractional digits.
func FormatValue(v float64, decimals int) string {
	if v == 0 {
		v = 0 // drop the sign of negative zero
	}
	return humanize.CommafWithDigits(v, max(decimals, 0))
}

func (m *Model) format(v float64) string {
	return FormatValue(v, m.ctrl.Transform().Range().Decimals)
}

// labelText is the display text of a tick: its label, or its formatted
// value when the label is empty.
func (m *Model) labelText(t ticks.Tick) string {
	text := t.Label
	if text == "" {
		text = m.format(t.Value)
	}
	return render.Truncate(text, maxLabelWidth)
}

func textWidth(s string) int {
	return render.Width(s)
}

func (m *Model) widestLabel() int {
	w := 0
	for _, t := range m.ctrl.Labels() {
		w = max(w, textWidth(m.labelText(t)))
	}
	return w
}

// capTexts returns the cap labels at the leading (left/top) and trailing
// (right/bottom) ends of the track. The minimum sits at the end where
// progress starts.
func (m *Model) capTexts() (leading, trailing string) {
	r := m.ctrl.Transform().Range()
	lo, hi := m.format(r.Min), m.format(r.Max)
	if m.ctrl.Options().Axis.Sense == geometry.EndRelative {
		return hi, lo
	}
	return lo, hi
}

// leadingIsMin reports whether the left/top cap shows the minimum.
func (m *Model) leadingIsMin() bool {
	return m.ctrl.Options().Axis.Sense == geometry.StartRelative
}

// helpKeys adapts the key resolver to bubbles help.KeyMap.
type helpKeys struct {
	r        *keymap.Resolver
	vertical bool
}

func (k helpKeys) arrows() string {
	if k.vertical {
		return "↑/↓"
	}
	return "←/→"
}

// ShortHelp implements help.KeyMap.
func (k helpKeys) ShortHelp() []key.Binding {
	return []key.Binding{
		k.binding(keymap.ActionStep),
		k.r.HelpBinding(keymap.ActionNextTick, ""),
		k.r.HelpBinding(keymap.ActionActivateTick, ""),
		k.r.HelpBinding(keymap.ActionHelp, ""),
		k.r.HelpBinding(keymap.ActionQuit, ""),
	}
}

// helpColumns orders the full help, one column per binding context.
var helpColumns = []string{"slider", "ticks", "global"}

// FullHelp implements help.KeyMap.
func (k helpKeys) FullHelp() [][]key.Binding {
	cols := make([][]key.Binding, 0, len(helpColumns))
	for _, context := range helpColumns {
		var col []key.Binding
		for _, b := range keymap.ByContext(context) {
			col = append(col, k.binding(b.Action))
		}
		cols = append(cols, col)
	}
	return cols
}

// binding labels the step keys with arrows for the slider's axis.
func (k helpKeys) binding(a keymap.Action) key.Binding {
	switch a { //nolint:exhaustive // other actions show their first key
	case keymap.ActionStep:
		return k.r.HelpBinding(a, k.arrows())
	case keymap.ActionStepLarge:
		return k.r.HelpBinding(a, "shift+"+k.arrows())
	}
	return k.r.HelpBinding(a, "")
}

func (m *Model) helpKeys() helpKeys {
	return helpKeys{r: m.keys, vertical: m.vertical()}
}

func (m *Model) helpView() string {
	return m.help.View(m.helpKeys())
}

func (m *Model) helpHeight() int {
	v := m.helpView()
	if strings.TrimSpace(v) == "" {
		return 0
	}
	return lipgloss.Height(v)
}
