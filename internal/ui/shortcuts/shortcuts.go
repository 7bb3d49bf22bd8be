// Package shortcuts maps keyboard shortcuts onto playground actions.
package shortcuts

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Action names a playground command reachable from the keyboard.
type Action string

const (
	ActionArea      Action = "area"
	ActionScope     Action = "scope"
	ActionArray     Action = "array"
	ActionOpenModal Action = "open-modal"
)

// Binding ties a key, pressed with the platform shortcut modifier, to an action.
type Binding struct {
	Key    fyne.KeyName
	Action Action
}

// Defaults returns the built-in bindings: Ctrl/Cmd+1, +2, +3 and +M.
func Defaults() []Binding {
	return []Binding{
		{Key: fyne.Key1, Action: ActionArea},
		{Key: fyne.Key2, Action: ActionScope},
		{Key: fyne.Key3, Action: ActionArray},
		{Key: fyne.KeyM, Action: ActionOpenModal},
	}
}

// Lookup returns the action bound to key.
func Lookup(bindings []Binding, key fyne.KeyName) (Action, bool) {
	for _, binding := range bindings {
		if binding.Key == key {
			return binding.Action, true
		}
	}
	return "", false
}

// Shortcut returns the toolkit shortcut of binding.
func (binding Binding) Shortcut() *desktop.CustomShortcut {
	return &desktop.CustomShortcut{KeyName: binding.Key, Modifier: fyne.KeyModifierShortcutDefault}
}

// Registrar accepts shortcut handlers. fyne.Canvas implements it.
type Registrar interface {
	AddShortcut(shortcut fyne.Shortcut, handler func(fyne.Shortcut))
}

// Bind registers every binding whose action has a handler on target and
// returns how many were registered.
func Bind(target Registrar, bindings []Binding, handlers map[Action]func()) int {
	bound := 0
	for _, binding := range bindings {
		handler, ok := handlers[binding.Action]
		if !ok || handler == nil {
			continue
		}
		target.AddShortcut(binding.Shortcut(), func(fyne.Shortcut) { handler() })
		bound++
	}
	return bound
}
