package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "slider", "ticks"
}

// Bindings contains all key bindings.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Toggle help", "global"},
	{ActionReset, []string{"r"}, "Reset to default", "global"},
	{ActionCopy, []string{"y"}, "Copy value", "global"},

	// Slider
	{ActionStep, []string{"left", "right", "up", "down"}, "Step", "slider"},
	{ActionStepLarge, []string{"shift+left", "shift+right", "shift+up", "shift+down"}, "Step x5", "slider"},
	{ActionJumpStart, []string{"home"}, "Minimum", "slider"},
	{ActionJumpEnd, []string{"end"}, "Maximum", "slider"},
	{ActionCancel, []string{"esc"}, "Cancel drag", "slider"},

	// Ticks
	{ActionNextTick, []string{"tab"}, "Focus next tick", "ticks"},
	{ActionPrevTick, []string{"shift+tab"}, "Focus previous tick", "ticks"},
	{ActionActivateTick, []string{"enter", " "}, "Select focused tick", "ticks"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// ArrowKey strips the shift modifier from an arrow key name:
// "shift+left" -> "left". Other keys are returned unchanged.
func ArrowKey(key string) string {
	const prefix = "shift+"
	if len(key) > len(prefix) && key[:len(prefix)] == prefix {
		return key[len(prefix):]
	}
	return key
}
