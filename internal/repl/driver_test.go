package repl

import (
	"context"
	"errors"
	"io"
	"testing"
)

// scriptTerminal replays input lines and records output.
type scriptTerminal struct {
	lines   []string
	errs    map[int]error
	read    int
	prompts []string
	written []string
	clears  int
}

func (s *scriptTerminal) ReadLine(prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	i := s.read
	s.read++
	if err, ok := s.errs[i]; ok {
		return "", err
	}
	if i >= len(s.lines) {
		return "", io.EOF
	}
	return s.lines[i], nil
}

func (s *scriptTerminal) WriteLine(text string) error {
	s.written = append(s.written, text)
	return nil
}

func (s *scriptTerminal) Clear() error {
	s.clears++
	return nil
}

func TestDriverEchoExit(t *testing.T) {
	m := NewManager()
	m.Add(newTestWindow(nil))
	term := &scriptTerminal{lines: []string{"echo hi there", "", "   ", "exit", "echo never"}}

	if err := NewDriver(m, term).Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := []string{"hi there", "bye"}
	if len(term.written) != len(want) {
		t.Fatalf("written = %q, want %q", term.written, want)
	}
	for i := range want {
		if term.written[i] != want[i] {
			t.Errorf("written[%d] = %q, want %q", i, term.written[i], want[i])
		}
	}
	if m.Len() != 0 {
		t.Errorf("Len() = %d after exit, want 0", m.Len())
	}
	if term.clears != 1 {
		t.Errorf("clears = %d, want 1", term.clears)
	}
	if term.read != 4 {
		t.Errorf("lines read = %d, want 4", term.read)
	}
}

func TestDriverPrintsEmptyText(t *testing.T) {
	m := NewManager()
	m.Add(NewWindow("main", nil))
	term := &scriptTerminal{lines: []string{"unknown"}}

	if err := NewDriver(m, term).Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(term.written) != 1 || term.written[0] != "" {
		t.Errorf("written = %q, want one empty line", term.written)
	}
}

func TestDriverParseEmpty(t *testing.T) {
	var seen []string
	w := NewWindow("main", HookFunc(func(w *Window, in Input) HookResult {
		seen = append(seen, in.Line)
		return HookResult{Text: "got"}
	}), WithParseEmpty(true))
	m := NewManager()
	m.Add(w)
	term := &scriptTerminal{lines: []string{"", "!!"}}

	if err := NewDriver(m, term).Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(seen) != 2 {
		t.Errorf("hook saw %q, want both lines", seen)
	}
}

func TestDriverInterruptContinues(t *testing.T) {
	m := NewManager()
	m.Add(newTestWindow(nil))
	term := &scriptTerminal{
		lines: []string{"", "echo ok"},
		errs:  map[int]error{0: ErrInterrupted},
	}

	if err := NewDriver(m, term).Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(term.written) != 1 || term.written[0] != "ok" {
		t.Errorf("written = %q, want [ok]", term.written)
	}
}

func TestDriverReadError(t *testing.T) {
	boom := errors.New("boom")
	m := NewManager()
	m.Add(newTestWindow(nil))
	term := &scriptTerminal{errs: map[int]error{0: boom}}

	err := NewDriver(m, term).Run(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("Run() error = %v, want wrapping boom", err)
	}
	var te *TerminalError
	if !errors.As(err, &te) || te.Op != "read" || te.Window != "main" {
		t.Errorf("error = %#v, want read TerminalError for main", err)
	}
}

func TestDriverSwitchClears(t *testing.T) {
	m := NewManager()
	a := NewWindow("a", nil, WithPrompt("a> "))
	b := NewWindow("b", nil, WithPrompt("b> "))
	a.AddCommandFunc("next", "", "", func(w *Window, inv Invocation) Result {
		m.Switch(1)
		return Text("switched")
	})
	b.AddCommandFunc("exit", "", "", exitHandler)
	m.Add(a)
	m.Add(b)
	term := &scriptTerminal{lines: []string{"next", "exit"}}

	if err := NewDriver(m, term).Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	wantPrompts := []string{"a> ", "b> ", "a> "}
	for i, p := range wantPrompts {
		if i >= len(term.prompts) || term.prompts[i] != p {
			t.Fatalf("prompts = %q, want prefix %q", term.prompts, wantPrompts)
		}
	}
	// One clear for the switch, one for closing b, one when a is shown again.
	if term.clears != 3 {
		t.Errorf("clears = %d, want 3", term.clears)
	}
}

func TestDriverEmptyRegistry(t *testing.T) {
	err := NewDriver(NewManager(), &scriptTerminal{}).Run(context.Background())
	if !errors.Is(err, ErrNoWindows) {
		t.Errorf("Run() error = %v, want ErrNoWindows", err)
	}
}

func TestDriverContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := NewManager()
	m.Add(newTestWindow(nil))

	err := NewDriver(m, &scriptTerminal{lines: []string{"echo x"}}).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}
