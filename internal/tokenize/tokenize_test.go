package tokenize

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Args
	}{
		{"command only", "exit", Args{"", "exit"}},
		{"quoted argument", `echo "hello world" foo`, Args{`"hello world" foo`, "echo", "hello world", "foo"}},
		{"plain arguments", "echo hi there", Args{"hi there", "echo", "hi", "there"}},
		{"blank line", "   ", Args{"", ""}},
		{"empty line", "", Args{"", ""}},
		{"punctuation only", `!! "" ?`, Args{"", ""}},
		{"empty quoted argument dropped", `cmd ""`, Args{`""`, "cmd"}},
		{"repeated spaces", "a  b", Args{" b", "a", "b"}},
		{"unterminated quote absorbs rest", `say "one two three`, Args{`"one two three`, "say", "one two three"}},
		{"quoted command name", `"test command" x`, Args{"x", "test command", "x"}},
		{"quote joins tokens", `a b"c d"e`, Args{`b"c d"e`, "a", "bc de"}},
		{"leading space", " x", Args{"x", "x"}},
		{"trailing space", "ls ", Args{"", "ls"}},
		{"unicode letters", "grüß welt", Args{"welt", "grüß", "welt"}},
		{"digits count as content", "42", Args{"", "42"}},
		{"invalid utf-8 kept verbatim", "echo a\xff \"b\xfe\"", Args{"a\xff \"b\xfe\"", "echo", "a\xff", "b\xfe"}},
		{"multi-byte after quote", `say "é"ü`, Args{`"é"ü`, "say", "éü"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseAlwaysHasTwoElements(t *testing.T) {
	lines := []string{"", " ", `"`, `""`, "a", `"a`, "  a  ", "\t", "x y z"}
	for _, line := range lines {
		if got := Parse(line); len(got) < 2 {
			t.Errorf("Parse(%q) has %d elements, want at least 2", line, len(got))
		}
	}
}

func TestArgsAccessors(t *testing.T) {
	a := Parse(`argtest one "two three"`)

	if a.Command() != "argtest" {
		t.Errorf("Command() = %q, want %q", a.Command(), "argtest")
	}
	if a.Raw() != `one "two three"` {
		t.Errorf("Raw() = %q", a.Raw())
	}
	if got := a.Positional(); !reflect.DeepEqual(got, []string{"one", "two three"}) {
		t.Errorf("Positional() = %q", got)
	}
	if a.Len() != 4 {
		t.Errorf("Len() = %d, want 4", a.Len())
	}
	if a.At(10) != "" || a.At(-1) != "" {
		t.Error("At() out of range should return empty string")
	}
	if a.Empty() {
		t.Error("Empty() = true for a line with a command")
	}
	if !Parse("  ").Empty() {
		t.Error("Empty() = false for a blank line")
	}
	if Parse("exit").Positional() != nil {
		t.Error("Positional() should be nil without arguments")
	}
}
