//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"slices"
	"testing"
)

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver(Bindings)

	tests := []struct {
		key      string
		expected Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{"left", ActionStep},
		{"down", ActionStep},
		{"shift+right", ActionStepLarge},
		{"home", ActionJumpStart},
		{"end", ActionJumpEnd},
		{"tab", ActionNextTick},
		{"enter", ActionActivateTick},
		{" ", ActionActivateTick},
		{"unknown", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			result := r.Resolve(tt.key)
			if result != tt.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tt.key, result, tt.expected)
			}
		})
	}
}

func TestResolver_KeysFor(t *testing.T) {
	r := NewResolver(Bindings)

	keys := r.KeysFor(ActionQuit)
	if !slices.Contains(keys, "q") || !slices.Contains(keys, "ctrl+c") {
		t.Errorf("KeysFor(quit) = %v", keys)
	}
	if got := r.KeysFor(Action("unknown")); got != nil {
		t.Errorf("KeysFor(unknown) = %v, want nil", got)
	}
}

func TestResolver_DeduplicatesKeys(t *testing.T) {
	bindings := []Binding{
		{ActionStep, []string{"left", "right"}, "Step", "slider"},
		{ActionStep, []string{"left"}, "Step", "ticks"},
	}

	r := NewResolver(bindings)

	count := 0
	for _, k := range r.KeysFor(ActionStep) {
		if k == "left" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected 'left' once after deduplication, got %d", count)
	}
}

func TestResolver_HelpBinding(t *testing.T) {
	r := NewResolver(Bindings)

	b := r.HelpBinding(ActionStep, "←/→")
	if b.Help().Key != "←/→" || b.Help().Desc != "Step" {
		t.Errorf("help = %+v", b.Help())
	}
	if !slices.Contains(b.Keys(), "right") {
		t.Errorf("keys = %v", b.Keys())
	}

	q := r.HelpBinding(ActionQuit, "")
	if q.Help().Key != "q" {
		t.Errorf("default help key = %q, want q", q.Help().Key)
	}

	if r.HelpBinding(Action("unknown"), "").Enabled() {
		t.Error("unknown action binding should be disabled")
	}
}
