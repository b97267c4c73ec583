package script

import (
	"errors"
	"fmt"
)

var (
	// ErrClosed is returned when using a closed Engine.
	ErrClosed = errors.New("script engine is closed")
)

// Error is a Lua load or runtime failure.
type Error struct {
	// Script names the file or chunk.
	Script string
	// Command is set for failures inside a command handler.
	Command string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Command != "" {
		return fmt.Sprintf("script %s: command %s: %v", e.Script, e.Command, e.Err)
	}
	return fmt.Sprintf("script %s: %v", e.Script, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}
