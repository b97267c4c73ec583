package repl

import "github.com/dshills/replterm/internal/tokenize"

// Request is what a command asks of its window after it returns.
type Request uint8

const (
	// RequestNone keeps the window running.
	RequestNone Request = iota
	// RequestClose ends the window; the driver removes it from the registry.
	RequestClose
)

// String returns a string representation of the request.
func (r Request) String() string {
	switch r {
	case RequestNone:
		return "none"
	case RequestClose:
		return "close"
	default:
		return "unknown"
	}
}

// Invocation is the input to a command handler.
type Invocation struct {
	// Help is set when the handler is called from "help <name>". Handlers
	// should return supplementary help text (or "") and skip side effects.
	Help bool

	// Args is the argument vector of the line that triggered the call.
	Args tokenize.Args
}

// Result is the outcome of a command handler.
type Result struct {
	// Text is printed by the driver.
	Text string

	// Request is ignored for help-mode invocations.
	Request Request
}

// Text returns a result that prints s.
func Text(s string) Result {
	return Result{Text: s}
}

// Close returns a result that prints s and closes the window.
func Close(s string) Result {
	return Result{Text: s, Request: RequestClose}
}

// Handler runs a command.
type Handler interface {
	Invoke(w *Window, inv Invocation) Result
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(w *Window, inv Invocation) Result

// Invoke implements Handler.
func (f HandlerFunc) Invoke(w *Window, inv Invocation) Result {
	if f == nil {
		return Result{}
	}
	return f(w, inv)
}

// Command is a named operation registered on a Window.
type Command struct {
	name        string
	usage       string
	description string
	handler     Handler
	window      *Window
}

// Name returns the command name matched against Args[1].
func (c *Command) Name() string { return c.name }

// Usage returns the usage string shown after the name in help,
// conventionally "[required] (optional)".
func (c *Command) Usage() string { return c.usage }

// Description returns the help description.
func (c *Command) Description() string { return c.description }

// Handler returns the command's handler.
func (c *Command) Handler() Handler { return c.handler }

// Window returns the window the command belongs to.
func (c *Command) Window() *Window { return c.window }

func (c *Command) invoke(inv Invocation) Result {
	if c.handler == nil {
		return Result{}
	}
	return c.handler.Invoke(c.window, inv)
}
