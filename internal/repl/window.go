package repl

import (
	"strings"

	"github.com/google/uuid"

	"github.com/dshills/replterm/internal/logging"
	"github.com/dshills/replterm/internal/owner"
)

// DefaultPrompt is the prompt used when none is configured.
const DefaultPrompt = "> "

// Window is an independent command context.
type Window struct {
	id            string
	name          string
	prompt        string
	caseSensitive bool
	parseEmpty    bool
	handleHelp    bool
	hook          Hook
	commands      []*Command
	clearRequired bool

	log   *logging.Logger
	guard *owner.Guard
}

// Option configures a Window.
type Option func(*Window)

// WithPrompt sets the input prompt. Default: "> ".
func WithPrompt(prompt string) Option {
	return func(w *Window) {
		w.prompt = prompt
	}
}

// WithCaseSensitive makes command matching case sensitive. Default: false.
func WithCaseSensitive(enable bool) Option {
	return func(w *Window) {
		w.caseSensitive = enable
	}
}

// WithParseEmpty makes the driver evaluate lines without a command.
// Default: false.
func WithParseEmpty(enable bool) Option {
	return func(w *Window) {
		w.parseEmpty = enable
	}
}

// WithHelp enables the built-in help command. Default: true.
func WithHelp(enable bool) Option {
	return func(w *Window) {
		w.handleHelp = enable
	}
}

// WithLogger sets the window's logger.
func WithLogger(l *logging.Logger) Option {
	return func(w *Window) {
		if l != nil {
			w.log = l
		}
	}
}

// NewWindow creates a window. A nil hook behaves as a hook that prints
// nothing and never suppresses built-ins.
func NewWindow(name string, hook Hook, opts ...Option) *Window {
	w := &Window{
		id:         uuid.NewString(),
		name:       name,
		prompt:     DefaultPrompt,
		handleHelp: true,
		hook:       hook,
		log:        logging.Null(),
		guard:      owner.Named("repl.Window"),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.log = w.log.WithComponent("repl").WithField("window", name)
	return w
}

// ID returns the window's session identifier.
func (w *Window) ID() string { return w.id }

// Name returns the window name, unique within a Manager.
func (w *Window) Name() string { return w.name }

// Prompt returns the input prompt.
func (w *Window) Prompt() string { return w.prompt }

// SetPrompt changes the input prompt.
func (w *Window) SetPrompt(prompt string) { w.prompt = prompt }

// CaseSensitive reports whether command names are matched case sensitively.
func (w *Window) CaseSensitive() bool { return w.caseSensitive }

// SetCaseSensitive changes command name matching.
func (w *Window) SetCaseSensitive(enable bool) { w.caseSensitive = enable }

// ParseEmpty reports whether lines without a command are evaluated.
func (w *Window) ParseEmpty() bool { return w.parseEmpty }

// SetParseEmpty changes whether lines without a command are evaluated.
func (w *Window) SetParseEmpty(enable bool) { w.parseEmpty = enable }

// HandlesHelp reports whether the built-in help command is enabled.
func (w *Window) HandlesHelp() bool { return w.handleHelp }

// SetHandleHelp enables or disables the built-in help command.
func (w *Window) SetHandleHelp(enable bool) { w.handleHelp = enable }

// Hook returns the eval hook.
func (w *Window) Hook() Hook { return w.hook }

// SetHook replaces the eval hook.
func (w *Window) SetHook(h Hook) { w.hook = h }

// AddCommand registers a command. It returns false, leaving the window
// unchanged, if a command with exactly the same name exists.
func (w *Window) AddCommand(name, usage, description string, h Handler) bool {
	defer w.guard.Enter("AddCommand")()

	for _, c := range w.commands {
		if c.name == name {
			w.log.Debug("duplicate command %q rejected", name)
			return false
		}
	}
	w.commands = append(w.commands, &Command{
		name:        name,
		usage:       usage,
		description: description,
		handler:     h,
		window:      w,
	})
	return true
}

// AddCommandFunc registers a function as a command.
func (w *Window) AddCommandFunc(name, usage, description string, fn func(*Window, Invocation) Result) bool {
	return w.AddCommand(name, usage, description, HandlerFunc(fn))
}

// RemoveCommand unregisters the command with exactly this name.
// It returns false if there is none.
func (w *Window) RemoveCommand(name string) bool {
	defer w.guard.Enter("RemoveCommand")()

	for i, c := range w.commands {
		if c.name == name {
			w.commands = append(w.commands[:i], w.commands[i+1:]...)
			return true
		}
	}
	return false
}

// Commands returns the registered commands in registration order.
func (w *Window) Commands() []*Command {
	out := make([]*Command, len(w.commands))
	copy(out, w.commands)
	return out
}

// Lookup finds a command using the window's matching rules.
func (w *Window) Lookup(name string) (*Command, bool) {
	for _, c := range w.commands {
		if w.matches(c.name, name) {
			return c, true
		}
	}
	return nil, false
}

func (w *Window) matches(commandName, input string) bool {
	if w.caseSensitive {
		return commandName == input
	}
	return strings.EqualFold(commandName, input)
}

func (w *Window) requireClear() { w.clearRequired = true }

// TakeClear reports and resets the pending clear request. Whatever shows
// the window calls it before reading the next line.
func (w *Window) TakeClear() bool {
	c := w.clearRequired
	w.clearRequired = false
	return c
}

// ClearRequired reports whether the console must be cleared before the
// window is next shown.
func (w *Window) ClearRequired() bool { return w.clearRequired }
