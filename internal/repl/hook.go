package repl

import "github.com/dshills/replterm/internal/tokenize"

// Input is one line as seen by an eval hook.
type Input struct {
	// Line is the full raw line.
	Line string

	// Args is the tokenized line.
	Args tokenize.Args
}

// NewInput tokenizes line.
func NewInput(line string) Input {
	return Input{Line: line, Args: tokenize.Parse(line)}
}

// HookResult is the outcome of an eval hook.
type HookResult struct {
	// Text is printed when no command matches, or always when
	// SuppressBuiltins is set.
	Text string

	// SuppressBuiltins skips built-in help and command matching.
	SuppressBuiltins bool
}

// Hook runs before any built-in processing of a line.
type Hook interface {
	Eval(w *Window, in Input) HookResult
}

// HookFunc adapts a function to Hook.
type HookFunc func(w *Window, in Input) HookResult

// Eval implements Hook.
func (f HookFunc) Eval(w *Window, in Input) HookResult {
	if f == nil {
		return HookResult{}
	}
	return f(w, in)
}

// Outcome is the result of evaluating one line in a window.
type Outcome struct {
	// Text is what the driver prints.
	Text string

	// Continue is false when the window asked to be closed.
	Continue bool
}
