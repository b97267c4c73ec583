package key

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/replterm/internal/renderer/backend"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Binding is a key with modifiers.
type Binding struct {
	Key  backend.Key
	Rune rune
	Mod  backend.ModMask
}

// Matches reports whether ev is a key event for this binding.
//
// Control keys ignore the Ctrl modifier, which terminals report
// inconsistently. Rune bindings without modifiers match the rune
// regardless of Shift.
func (b Binding) Matches(ev backend.Event) bool {
	if ev.Type != backend.EventKey || ev.Key != b.Key {
		return false
	}
	switch {
	case b.Key.IsCtrl():
		return ev.Mod&^(backend.ModCtrl|backend.ModShift) == b.Mod&^(backend.ModCtrl|backend.ModShift)
	case b.Key == backend.KeyRune:
		return ev.Rune == b.Rune && ev.Mod&^backend.ModShift == b.Mod&^backend.ModShift
	default:
		return ev.Mod == b.Mod
	}
}

// String returns the binding in modifier style.
func (b Binding) String() string {
	var sb strings.Builder
	if b.Mod.Has(backend.ModAlt) {
		sb.WriteString("Alt+")
	}
	if b.Mod.Has(backend.ModMeta) {
		sb.WriteString("Meta+")
	}
	if b.Mod.Has(backend.ModShift) {
		sb.WriteString("Shift+")
	}
	switch {
	case b.Key.IsCtrl():
		sb.WriteString("Ctrl+")
		sb.WriteRune('A' + rune(b.Key-backend.KeyCtrlA))
	case b.Key == backend.KeyRune:
		if b.Mod.Has(backend.ModCtrl) {
			sb.WriteString("Ctrl+")
		}
		if b.Rune == ' ' {
			sb.WriteString("Space")
		} else {
			sb.WriteRune(b.Rune)
		}
	default:
		if b.Mod.Has(backend.ModCtrl) {
			sb.WriteString("Ctrl+")
		}
		sb.WriteString(keyName(b.Key))
	}
	return sb.String()
}

// Parse parses a key specification string into a Binding.
func Parse(spec string) (Binding, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Binding{}, ErrEmptySpec
	}

	// Check for Vim-style <...> notation
	if len(spec) > 2 && strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseVimStyle(spec[1 : len(spec)-1])
	}

	// "+" alone is a rune, otherwise a separator
	if spec != "+" && strings.Contains(spec, "+") {
		return parseModifierStyle(spec)
	}

	return parseKey(spec, backend.ModNone)
}

// MustParse parses a key specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Binding {
	b, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return b
}

// parseVimStyle parses Vim-style notation like "C-s", "A-F4", "CR", "Esc"
func parseVimStyle(inner string) (Binding, error) {
	parts := strings.Split(strings.TrimSpace(inner), "-")
	keyPart := parts[len(parts)-1]

	var mods backend.ModMask
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "c":
			mods |= backend.ModCtrl
		case "a":
			mods |= backend.ModAlt
		case "s":
			mods |= backend.ModShift
		case "m", "d":
			mods |= backend.ModMeta
		default:
			return Binding{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
	}
	return parseKey(keyPart, mods)
}

// parseModifierStyle parses "Ctrl+S" style notation
func parseModifierStyle(spec string) (Binding, error) {
	parts := strings.Split(spec, "+")

	var mods backend.ModMask
	for _, p := range parts[:len(parts)-1] {
		p = strings.TrimSpace(p)
		mod := modifierFromName(strings.ToLower(p))
		if mod == backend.ModNone {
			return Binding{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods |= mod
	}
	return parseKey(parts[len(parts)-1], mods)
}

func modifierFromName(name string) backend.ModMask {
	switch name {
	case "ctrl", "control", "c":
		return backend.ModCtrl
	case "alt", "opt", "option", "a":
		return backend.ModAlt
	case "shift", "s":
		return backend.ModShift
	case "meta", "cmd", "super", "m":
		return backend.ModMeta
	default:
		return backend.ModNone
	}
}

// parseKey parses a key part with already-known modifiers.
func parseKey(keyPart string, mods backend.ModMask) (Binding, error) {
	keyPart = strings.TrimSpace(keyPart)
	if keyPart == "" {
		return Binding{}, ErrInvalidSpec
	}

	lower := strings.ToLower(keyPart)
	if k, ok := namedKeys[lower]; ok {
		return Binding{Key: k, Mod: mods}, nil
	}
	if lower == "space" {
		return Binding{Key: backend.KeyRune, Rune: ' ', Mod: mods}, nil
	}

	runes := []rune(keyPart)
	if len(runes) != 1 {
		return Binding{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
	}
	r := runes[0]

	if mods.Has(backend.ModCtrl) {
		if ck := backend.CtrlKey(r); ck != backend.KeyNone {
			return Binding{Key: ck, Mod: mods &^ backend.ModCtrl}, nil
		}
	}
	return Binding{Key: backend.KeyRune, Rune: r, Mod: mods}, nil
}

var namedKeys = map[string]backend.Key{
	"cr":        backend.KeyEnter,
	"return":    backend.KeyEnter,
	"enter":     backend.KeyEnter,
	"esc":       backend.KeyEscape,
	"escape":    backend.KeyEscape,
	"tab":       backend.KeyTab,
	"bs":        backend.KeyBackspace,
	"backspace": backend.KeyBackspace,
	"del":       backend.KeyDelete,
	"delete":    backend.KeyDelete,
	"ins":       backend.KeyInsert,
	"insert":    backend.KeyInsert,
	"up":        backend.KeyUp,
	"down":      backend.KeyDown,
	"left":      backend.KeyLeft,
	"right":     backend.KeyRight,
	"home":      backend.KeyHome,
	"end":       backend.KeyEnd,
	"pageup":    backend.KeyPageUp,
	"pgup":      backend.KeyPageUp,
	"pagedown":  backend.KeyPageDown,
	"pgdn":      backend.KeyPageDown,
	"f1":        backend.KeyF1,
	"f2":        backend.KeyF2,
	"f3":        backend.KeyF3,
	"f4":        backend.KeyF4,
	"f5":        backend.KeyF5,
	"f6":        backend.KeyF6,
	"f7":        backend.KeyF7,
	"f8":        backend.KeyF8,
	"f9":        backend.KeyF9,
	"f10":       backend.KeyF10,
	"f11":       backend.KeyF11,
	"f12":       backend.KeyF12,
}

// keyNames holds the canonical display name of each named key.
var keyNames = map[backend.Key]string{
	backend.KeyEnter:     "Enter",
	backend.KeyEscape:    "Escape",
	backend.KeyTab:       "Tab",
	backend.KeyBackspace: "Backspace",
	backend.KeyDelete:    "Delete",
	backend.KeyInsert:    "Insert",
	backend.KeyUp:        "Up",
	backend.KeyDown:      "Down",
	backend.KeyLeft:      "Left",
	backend.KeyRight:     "Right",
	backend.KeyHome:      "Home",
	backend.KeyEnd:       "End",
	backend.KeyPageUp:    "PageUp",
	backend.KeyPageDown:  "PageDown",
}

func keyName(k backend.Key) string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	if k >= backend.KeyF1 && k <= backend.KeyF12 {
		return fmt.Sprintf("F%d", int(k-backend.KeyF1)+1)
	}
	return "None"
}
