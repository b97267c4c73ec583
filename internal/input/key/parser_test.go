package key

import (
	"errors"
	"testing"

	"github.com/dshills/replterm/internal/renderer/backend"
)

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want Binding
	}{
		{"a", Binding{Key: backend.KeyRune, Rune: 'a'}},
		{"+", Binding{Key: backend.KeyRune, Rune: '+'}},
		{"Space", Binding{Key: backend.KeyRune, Rune: ' '}},
		{"Enter", Binding{Key: backend.KeyEnter}},
		{"enter", Binding{Key: backend.KeyEnter}},
		{"<CR>", Binding{Key: backend.KeyEnter}},
		{"Escape", Binding{Key: backend.KeyEscape}},
		{"<Esc>", Binding{Key: backend.KeyEscape}},
		{"PageUp", Binding{Key: backend.KeyPageUp}},
		{"pgdn", Binding{Key: backend.KeyPageDown}},
		{"Insert", Binding{Key: backend.KeyInsert}},
		{"F12", Binding{Key: backend.KeyF12}},
		{"Ctrl+V", Binding{Key: backend.KeyCtrlV}},
		{"ctrl+v", Binding{Key: backend.KeyCtrlV}},
		{"<C-v>", Binding{Key: backend.KeyCtrlV}},
		{"<C-V>", Binding{Key: backend.KeyCtrlV}},
		{"Ctrl+Alt+C", Binding{Key: backend.KeyCtrlC, Mod: backend.ModAlt}},
		{"Alt+F4", Binding{Key: backend.KeyF4, Mod: backend.ModAlt}},
		{"Ctrl+1", Binding{Key: backend.KeyRune, Rune: '1', Mod: backend.ModCtrl}},
		{"Shift+Up", Binding{Key: backend.KeyUp, Mod: backend.ModShift}},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.spec, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		spec string
		want error
	}{
		{"", ErrEmptySpec},
		{"   ", ErrEmptySpec},
		{"Hyper+x", ErrInvalidSpec},
		{"<X-a>", ErrInvalidSpec},
		{"Ctrl+", ErrInvalidSpec},
		{"NotAKey", ErrInvalidSpec},
	}

	for _, tt := range tests {
		_, err := Parse(tt.spec)
		if !errors.Is(err, tt.want) {
			t.Errorf("Parse(%q) error = %v, want %v", tt.spec, err, tt.want)
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse did not panic")
		}
	}()
	MustParse("Bogus+q")
}

func TestBindingMatches(t *testing.T) {
	tests := []struct {
		name string
		spec string
		ev   backend.Event
		want bool
	}{
		{"ctrl key", "Ctrl+V", backend.Event{Type: backend.EventKey, Key: backend.KeyCtrlV, Mod: backend.ModCtrl}, true},
		{"ctrl key without mod", "Ctrl+V", backend.Event{Type: backend.EventKey, Key: backend.KeyCtrlV}, true},
		{"ctrl key extra alt", "Ctrl+V", backend.Event{Type: backend.EventKey, Key: backend.KeyCtrlV, Mod: backend.ModAlt}, false},
		{"different ctrl", "Ctrl+V", backend.Event{Type: backend.EventKey, Key: backend.KeyCtrlC}, false},
		{"named", "PageUp", backend.Event{Type: backend.EventKey, Key: backend.KeyPageUp}, true},
		{"named with mod", "PageUp", backend.Event{Type: backend.EventKey, Key: backend.KeyPageUp, Mod: backend.ModShift}, false},
		{"rune", "q", backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: 'q'}, true},
		{"rune shift", "Q", backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: 'Q', Mod: backend.ModShift}, true},
		{"rune other", "q", backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: 'w'}, false},
		{"not key", "Enter", backend.Event{Type: backend.EventResize}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MustParse(tt.spec).Matches(tt.ev); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBindingString(t *testing.T) {
	tests := []struct {
		spec string
		want string
	}{
		{"<C-v>", "Ctrl+V"},
		{"pgup", "PageUp"},
		{"Alt+F4", "Alt+F4"},
		{"space", "Space"},
		{"x", "x"},
	}

	for _, tt := range tests {
		if got := MustParse(tt.spec).String(); got != tt.want {
			t.Errorf("String(%q) = %q, want %q", tt.spec, got, tt.want)
		}
		// Formatted bindings parse back to themselves.
		if again := MustParse(MustParse(tt.spec).String()); again != MustParse(tt.spec) {
			t.Errorf("round trip of %q = %+v", tt.spec, again)
		}
	}
}
