// Package demo provides the example command set served by cmd/replterm.
package demo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dshills/replterm/internal/logging"
	"github.com/dshills/replterm/internal/repl"
)

// Demo builds windows that share one command set and registry.
type Demo struct {
	manager    *repl.Manager
	windowOpts []repl.Option
	installers []func(*repl.Window)
	log        *logging.Logger
}

// Option configures a Demo.
type Option func(*Demo)

// WithWindowOptions applies opts to every window the demo creates.
func WithWindowOptions(opts ...repl.Option) Option {
	return func(d *Demo) {
		d.windowOpts = append(d.windowOpts, opts...)
	}
}

// WithInstaller runs fn on every new window after the built-in commands
// are registered. Script engines use it to add their commands.
func WithInstaller(fn func(*repl.Window)) Option {
	return func(d *Demo) {
		if fn != nil {
			d.installers = append(d.installers, fn)
		}
	}
}

// WithLogger sets the logger passed to every window.
func WithLogger(l *logging.Logger) Option {
	return func(d *Demo) {
		if l != nil {
			d.log = l
		}
	}
}

// New creates a demo bound to m.
func New(m *repl.Manager, opts ...Option) *Demo {
	d := &Demo{
		manager: m,
		log:     logging.Null(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Manager returns the registry the demo's window commands act on.
func (d *Demo) Manager() *repl.Manager { return d.manager }

// NewWindow creates a window named name with the demo commands. It is not
// registered.
func (d *Demo) NewWindow(name string) *repl.Window {
	opts := make([]repl.Option, 0, len(d.windowOpts)+1)
	opts = append(opts, d.windowOpts...)
	opts = append(opts, repl.WithLogger(d.log))

	w := repl.NewWindow(name, repl.HookFunc(d.eval), opts...)
	w.AddCommandFunc("addwindow", "[window name]", "Adds a new window with name [window name]", d.cmdAddWindow)
	w.AddCommandFunc("argtest", "(args)", "Displays argument information", cmdArgTest)
	w.AddCommandFunc("echo", "[string]", "Echos [string] to the console", cmdEcho)
	w.AddCommandFunc("exit", "", "Exits the window", cmdExit)
	w.AddCommandFunc("quit", "", "Exits the window", cmdExit)
	w.AddCommandFunc("window", "[window]", "Switches to a different window", d.cmdWindow)

	for _, install := range d.installers {
		install(w)
	}
	return w
}

// Start creates the main window and makes it active.
func (d *Demo) Start(name string) (*repl.Window, error) {
	w := d.NewWindow(name)
	if !d.manager.Attach(w) {
		return nil, fmt.Errorf("demo: window %q already registered", name)
	}
	return w, nil
}

// eval supplies the text shown when no command matches.
func (d *Demo) eval(w *repl.Window, in repl.Input) repl.HookResult {
	name := in.Args.Command()
	text := "Unknown command " + name
	if s, ok := repl.Suggest(w, name); ok {
		text += fmt.Sprintf("\nDid you mean %q?", s)
	}
	return repl.HookResult{Text: text}
}

func (d *Demo) cmdAddWindow(w *repl.Window, inv repl.Invocation) repl.Result {
	if inv.Help {
		return repl.Text("")
	}
	if inv.Args.Len() != 3 {
		return repl.Text(w.Help(inv.Args.Command()))
	}
	if d.manager.Add(d.NewWindow(inv.Args.At(2))) {
		return repl.Text("Added window!")
	}
	return repl.Text("Adding window failed")
}

func cmdArgTest(_ *repl.Window, inv repl.Invocation) repl.Result {
	if inv.Help {
		return repl.Text("")
	}
	var b strings.Builder
	for i, a := range inv.Args {
		fmt.Fprintf(&b, "args[%d]: %s\n", i, a)
	}
	return repl.Text(b.String())
}

func cmdEcho(_ *repl.Window, inv repl.Invocation) repl.Result {
	if inv.Help || inv.Args.Len() < 3 {
		return repl.Text("")
	}
	return repl.Text(inv.Args.Raw())
}

func cmdExit(_ *repl.Window, inv repl.Invocation) repl.Result {
	if inv.Help {
		return repl.Text("")
	}
	return repl.Close("")
}

func (d *Demo) cmdWindow(w *repl.Window, inv repl.Invocation) repl.Result {
	if inv.Help {
		return repl.Text("")
	}

	if inv.Args.Len() == 3 {
		target := inv.Args.At(2)
		index, err := strconv.Atoi(target)
		if err != nil {
			if index = d.manager.Index(target); index < 0 {
				return repl.Text("Invalid window\n" + w.Help(inv.Args.Command()))
			}
		}
		if d.manager.Switch(index) {
			return repl.Text("Switch Successful!")
		}
		return repl.Text("Switch Unsuccessful")
	}

	var b strings.Builder
	b.WriteString("Window list:\n")
	active := d.manager.ActiveIndex()
	for i, win := range d.manager.Windows() {
		marker := " "
		if i == active {
			marker = "="
		}
		fmt.Fprintf(&b, "%s%d: %s\n", marker, i, win.Name())
	}
	return repl.Text(b.String())
}
