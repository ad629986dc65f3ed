// Package keymap defines key bindings and action dispatch for the slider.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit  Action = "quit"
	ActionHelp  Action = "help"
	ActionReset Action = "reset"
	ActionCopy  Action = "copy" // copy the value to the clipboard

	// Value actions
	ActionStep      Action = "step"       // arrow key, one step
	ActionStepLarge Action = "step_large" // shift+arrow, five steps
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"
	ActionCancel    Action = "cancel" // abort an in-progress drag

	// Tick actions
	ActionNextTick     Action = "next_tick"
	ActionPrevTick     Action = "prev_tick"
	ActionActivateTick Action = "activate_tick"
)
