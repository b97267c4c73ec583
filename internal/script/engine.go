package script

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/replterm/internal/logging"
	"github.com/dshills/replterm/internal/repl"
)

// DefaultTimeout bounds a single load or command call.
const DefaultTimeout = 5 * time.Second

// Command is a command defined by a script.
type Command struct {
	Name        string
	Usage       string
	Description string
	Script      string

	fn *lua.LFunction
}

// Engine owns one Lua state and the commands its scripts define.
//
// gopher-lua states are not goroutine-safe; every call into Lua holds mu.
type Engine struct {
	L *lua.LState

	mu       sync.Mutex
	commands []*Command
	loading  string
	output   *strings.Builder
	timeout  time.Duration
	log      *logging.Logger
	closed   bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithTimeout bounds each load and command call. Default: 5s.
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// WithLogger sets the engine logger. Output printed while loading goes to it.
func WithLogger(l *logging.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// NewEngine creates a sandboxed Lua state with the repl API installed.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		timeout: DefaultTimeout,
		log:     logging.Null(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log = e.log.WithComponent("script")

	e.L = lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(e.L)
	restrictGlobals(e.L)
	e.installAPI()
	return e
}

// LoadFile runs the script at path.
func (e *Engine) LoadFile(path string) error {
	return e.run(filepath.Base(path), func() error {
		return e.L.DoFile(path)
	})
}

// LoadString runs code as a script called name.
func (e *Engine) LoadString(name, code string) error {
	return e.run(name, func() error {
		return e.L.DoString(code)
	})
}

func (e *Engine) run(name string, fn func() error) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrClosed
	}

	before := len(e.commands)
	e.loading = name
	defer func() { e.loading = "" }()

	ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
	defer cancel()
	e.L.SetContext(ctx)
	defer e.L.RemoveContext()

	if err := doWithRecovery(fn); err != nil {
		// Commands from a failed script are not kept.
		e.commands = e.commands[:before]
		return &Error{Script: name, Err: err}
	}
	e.log.Debug("loaded %s: %d commands", name, len(e.commands)-before)
	return nil
}

// Commands returns the commands defined so far, in definition order.
func (e *Engine) Commands() []*Command {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]*Command, len(e.commands))
	copy(out, e.commands)
	return out
}

// Install registers every script command on w and returns how many were
// added. Names the window already has are skipped.
func (e *Engine) Install(w *repl.Window) int {
	n := 0
	for _, cmd := range e.Commands() {
		if !w.AddCommand(cmd.Name, cmd.Usage, cmd.Description, e.handler(cmd)) {
			e.log.Warn("window %s already has a %s command; skipped", w.Name(), cmd.Name)
			continue
		}
		n++
	}
	return n
}

func (e *Engine) handler(cmd *Command) repl.Handler {
	return repl.HandlerFunc(func(w *repl.Window, inv repl.Invocation) repl.Result {
		text, quit, err := e.Call(cmd, w.Name(), inv)
		if err != nil {
			e.log.Warn("%v", err)
			return repl.Text(err.Error())
		}
		if quit {
			return repl.Close(text)
		}
		return repl.Text(text)
	})
}

// Call runs a command's Lua handler and returns its text and close request.
// Printed output is placed before the returned text.
func (e *Engine) Call(cmd *Command, window string, inv repl.Invocation) (string, bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return "", false, ErrClosed
	}

	var out strings.Builder
	e.output = &out
	defer func() { e.output = nil }()

	ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
	defer cancel()
	e.L.SetContext(ctx)
	defer e.L.RemoveContext()

	L := e.L
	base := L.GetTop()
	L.Push(cmd.fn)
	L.Push(e.contextTable(cmd, window, inv))

	if err := doWithRecovery(func() error { return L.PCall(1, lua.MultRet, nil) }); err != nil {
		L.SetTop(base)
		return "", false, &Error{Script: cmd.Script, Command: cmd.Name, Err: err}
	}

	nRet := L.GetTop() - base
	var text string
	var quit bool
	if nRet >= 1 {
		if v := L.Get(base + 1); v != lua.LNil {
			text = L.ToStringMeta(v).String()
		}
	}
	if nRet >= 2 {
		quit = lua.LVAsBool(L.Get(base + 2))
	}
	L.SetTop(base)

	return out.String() + text, quit, nil
}

func (e *Engine) contextTable(cmd *Command, window string, inv repl.Invocation) *lua.LTable {
	L := e.L
	t := L.NewTable()
	t.RawSetString("name", lua.LString(cmd.Name))
	t.RawSetString("raw", lua.LString(inv.Args.Raw()))
	t.RawSetString("help", lua.LBool(inv.Help))
	t.RawSetString("window", lua.LString(window))

	args := L.NewTable()
	for _, a := range inv.Args.Positional() {
		args.Append(lua.LString(a))
	}
	t.RawSetString("args", args)
	return t
}

// Close releases the Lua state. Installed commands report ErrClosed.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil
	}
	e.L.Close()
	e.closed = true
	return nil
}

func doWithRecovery(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn()
}
