package repl

import (
	"errors"
	"fmt"
)

var (
	// ErrInterrupted is returned by a LineTerminal when the user aborts the
	// current line. The driver discards the line and prompts again.
	ErrInterrupted = errors.New("line interrupted")

	// ErrNoWindows is returned when a driver is started on an empty registry.
	ErrNoWindows = errors.New("no windows registered")
)

// TerminalError wraps a failure of the line terminal.
type TerminalError struct {
	Op     string
	Window string
	Err    error
}

// Error implements the error interface.
func (e *TerminalError) Error() string {
	return fmt.Sprintf("repl: %s (window %q): %v", e.Op, e.Window, e.Err)
}

// Unwrap returns the underlying error.
func (e *TerminalError) Unwrap() error {
	return e.Err
}
