package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the slider.
type Theme struct {
	// Ribbon gradient, from the start of the track to the handle
	RibbonFrom lipgloss.Color
	RibbonTo   lipgloss.Color

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // Values, focused labels
	FgMuted  lipgloss.Color // Tick labels
	FgSubtle lipgloss.Color // Empty track, help

	Handle   lipgloss.Color
	Selected lipgloss.Color // Selected tick label
	Error    lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for the slider parts.
type Styles struct {
	Base          lipgloss.Style
	Muted         lipgloss.Style
	Subtle        lipgloss.Style
	Title         lipgloss.Style
	Track         lipgloss.Style
	Handle        lipgloss.Style
	HandleActive  lipgloss.Style // while dragging or focused
	Label         lipgloss.Style
	LabelSelected lipgloss.Style
	LabelFocused  lipgloss.Style
	Tooltip       lipgloss.Style
	Error         lipgloss.Style
}

var defaultTheme = Theme{
	RibbonFrom: lipgloss.Color("#a78bfa"),
	RibbonTo:   lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	Handle:   lipgloss.Color("#ffffff"),
	Selected: lipgloss.Color("#f1a208"),
	Error:    lipgloss.Color("#ff5555"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// WithRibbon returns a copy of the theme using the given gradient colors.
func (t *Theme) WithRibbon(from, to lipgloss.Color) *Theme {
	c := *t
	c.RibbonFrom = from
	c.RibbonTo = to
	c.styles = nil
	return &c
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Track:  lipgloss.NewStyle().Foreground(t.FgSubtle),
		Handle: lipgloss.NewStyle().Foreground(t.Handle),
		HandleActive: lipgloss.NewStyle().
			Foreground(t.RibbonTo).
			Bold(true),
		Label: lipgloss.NewStyle().Foreground(t.FgMuted),
		LabelSelected: lipgloss.NewStyle().
			Foreground(t.Selected).
			Bold(true),
		LabelFocused: lipgloss.NewStyle().
			Foreground(t.FgBase).
			Underline(true),
		Tooltip: lipgloss.NewStyle().
			Foreground(t.RibbonTo),
		Error: lipgloss.NewStyle().Foreground(t.Error),
	}
}
