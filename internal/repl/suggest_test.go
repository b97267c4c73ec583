package repl

import "testing"

func TestSuggest(t *testing.T) {
	tests := []struct {
		name          string
		caseSensitive bool
		input         string
		want          string
		ok            bool
	}{
		{"one typo", false, "ecoh", "echo", true},
		{"missing letter", false, "exi", "exit", true},
		{"upper", false, "ECHP", "echo", true},
		{"upper sensitive", true, "ECHO", "", false},
		{"too far", false, "window", "", false},
		{"single rune", false, "x", "", false},
		{"empty", false, "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWindow(nil, WithCaseSensitive(tt.caseSensitive))
			got, ok := Suggest(w, tt.input)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Suggest(%q) = %q, %v, want %q, %v", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestSuggestTieGoesToFirst(t *testing.T) {
	w := NewWindow("main", nil)
	w.AddCommandFunc("cat", "", "", nil)
	w.AddCommandFunc("car", "", "", nil)

	if got, _ := Suggest(w, "caz"); got != "cat" {
		t.Errorf("Suggest(caz) = %q, want cat", got)
	}
}
