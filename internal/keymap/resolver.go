package keymap

import "github.com/charmbracelet/bubbles/key"

// Resolver maps key strings to actions.
type Resolver struct {
	bindings map[string]Action   // key -> action
	byAction map[Action][]string // action -> keys (for help/documentation)
	help     map[Action]string   // action -> description
}

// NewResolver creates a resolver from bindings.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		bindings: make(map[string]Action),
		byAction: make(map[Action][]string),
		help:     make(map[Action]string),
	}
	for _, b := range bindings {
		for _, k := range b.Keys {
			r.bindings[k] = b.Action
		}
		r.byAction[b.Action] = append(r.byAction[b.Action], b.Keys...)
		if _, ok := r.help[b.Action]; !ok {
			r.help[b.Action] = b.Description
		}
	}
	for action, keys := range r.byAction {
		r.byAction[action] = dedupe(keys)
	}
	return r
}

// Resolve returns the action for a key, or empty string if not bound.
func (r *Resolver) Resolve(k string) Action {
	return r.bindings[k]
}

// KeysFor returns the keys bound to an action (for help/documentation).
func (r *Resolver) KeysFor(action Action) []string {
	return r.byAction[action]
}

// HelpBinding builds a bubbles key.Binding for the help view. helpKey is
// the short key label shown; empty uses the first bound key.
func (r *Resolver) HelpBinding(action Action, helpKey string) key.Binding {
	keys := r.byAction[action]
	if len(keys) == 0 {
		b := key.NewBinding()
		b.SetEnabled(false)
		return b
	}
	if helpKey == "" {
		helpKey = keys[0]
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpKey, r.help[action]),
	)
}

// dedupe removes duplicate strings from a slice.
func dedupe(s []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(s))
	for _, v := range s {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}
