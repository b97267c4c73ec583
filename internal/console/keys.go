package console

import (
	"fmt"
	"sort"

	"github.com/dshills/replterm/internal/input/key"
	"github.com/dshills/replterm/internal/renderer/backend"
)

// Action is something a key can be bound to.
type Action uint8

const (
	ActionNone Action = iota
	ActionSubmit
	ActionHistoryUp
	ActionHistoryDown
	ActionLeft
	ActionRight
	ActionEscape
	ActionScrollUp
	ActionScrollDown
	ActionBackspace
	ActionDelete
	ActionInsert
	ActionPaste
	ActionInterrupt
)

// actions lists every bindable action in lookup order.
var actions = []Action{
	ActionSubmit,
	ActionHistoryUp,
	ActionHistoryDown,
	ActionLeft,
	ActionRight,
	ActionEscape,
	ActionScrollUp,
	ActionScrollDown,
	ActionBackspace,
	ActionDelete,
	ActionInsert,
	ActionPaste,
	ActionInterrupt,
}

var actionNames = map[Action]string{
	ActionNone:        "none",
	ActionSubmit:      "submit",
	ActionHistoryUp:   "history_up",
	ActionHistoryDown: "history_down",
	ActionLeft:        "left",
	ActionRight:       "right",
	ActionEscape:      "escape",
	ActionScrollUp:    "scroll_up",
	ActionScrollDown:  "scroll_down",
	ActionBackspace:   "backspace",
	ActionDelete:      "delete",
	ActionInsert:      "insert",
	ActionPaste:       "paste",
	ActionInterrupt:   "interrupt",
}

// String returns the configuration name of the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParseAction returns the action with the given configuration name.
func ParseAction(name string) (Action, bool) {
	for a, n := range actionNames {
		if n == name && a != ActionNone {
			return a, true
		}
	}
	return ActionNone, false
}

// KeyMap binds actions to keys.
type KeyMap map[Action]key.Binding

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		ActionSubmit:      key.MustParse("Enter"),
		ActionHistoryUp:   key.MustParse("Up"),
		ActionHistoryDown: key.MustParse("Down"),
		ActionLeft:        key.MustParse("Left"),
		ActionRight:       key.MustParse("Right"),
		ActionEscape:      key.MustParse("Escape"),
		ActionScrollUp:    key.MustParse("PageUp"),
		ActionScrollDown:  key.MustParse("PageDown"),
		ActionBackspace:   key.MustParse("Backspace"),
		ActionDelete:      key.MustParse("Delete"),
		ActionInsert:      key.MustParse("Insert"),
		ActionPaste:       key.MustParse("Ctrl+V"),
		ActionInterrupt:   key.MustParse("Ctrl+C"),
	}
}

// ParseKeyMap overrides the default bindings with action name to key spec
// pairs, such as {"scroll_up": "Ctrl+U"}.
func ParseKeyMap(specs map[string]string) (KeyMap, error) {
	km := DefaultKeyMap()

	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		a, ok := ParseAction(name)
		if !ok {
			return nil, fmt.Errorf("console: unknown key action %q", name)
		}
		b, err := key.Parse(specs[name])
		if err != nil {
			return nil, fmt.Errorf("console: key for %s: %w", name, err)
		}
		km[a] = b
	}
	return km, nil
}

// Lookup returns the action bound to ev.
func (km KeyMap) Lookup(ev backend.Event) (Action, bool) {
	for _, a := range actions {
		if b, ok := km[a]; ok && b.Matches(ev) {
			return a, true
		}
	}
	return ActionNone, false
}
