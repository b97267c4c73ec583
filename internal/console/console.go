package console

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"
	"unicode"

	"github.com/atotto/clipboard"

	"github.com/dshills/replterm/internal/logging"
	"github.com/dshills/replterm/internal/renderer/backend"
)

// Defaults.
const (
	DefaultPollInterval = time.Millisecond
	waitInterval        = 100 * time.Millisecond
)

// Console is an interactive terminal that captures a program's standard
// streams. Text written to Out and Err scrolls in the output pane; lines the
// user submits can be read from In.
type Console struct {
	backend backend.Backend
	state   *State
	keys    KeyMap

	in  *pipe
	out *pipe
	err *pipe

	running atomic.Bool

	statusMu      sync.Mutex
	pendingStatus *string
	pendingClear  bool

	pollInterval    time.Duration
	echo            bool
	historyLimit    int
	scrollbackLimit int
	readClipboard   func() (string, error)

	log *logging.Logger
}

// Option configures a Console.
type Option func(*Console)

// WithKeyMap replaces the key bindings.
func WithKeyMap(km KeyMap) Option {
	return func(c *Console) {
		if km != nil {
			c.keys = km
		}
	}
}

// WithPollInterval sets the sleep between cycles. Default: 1ms.
func WithPollInterval(d time.Duration) Option {
	return func(c *Console) {
		if d > 0 {
			c.pollInterval = d
		}
	}
}

// WithHistoryLimit caps the number of submitted lines kept. Default: 0
// (unbounded).
func WithHistoryLimit(n int) Option {
	return func(c *Console) {
		c.historyLimit = n
	}
}

// WithScrollbackLimit caps the number of output lines kept. Default: 0
// (unbounded).
func WithScrollbackLimit(n int) Option {
	return func(c *Console) {
		c.scrollbackLimit = n
	}
}

// WithEcho controls whether submitted lines are copied to the output pane.
// Default: true.
func WithEcho(enable bool) Option {
	return func(c *Console) {
		c.echo = enable
	}
}

// WithClipboard replaces the clipboard reader used by the paste binding.
func WithClipboard(read func() (string, error)) Option {
	return func(c *Console) {
		if read != nil {
			c.readClipboard = read
		}
	}
}

// WithStatus sets the initial status line.
func WithStatus(status string) Option {
	return func(c *Console) {
		c.pendingStatus = &status
	}
}

// WithLogger sets the console logger. It must not write to the terminal
// the console draws on.
func WithLogger(l *logging.Logger) Option {
	return func(c *Console) {
		if l != nil {
			c.log = l
		}
	}
}

// New creates a console drawing on b. The backend is initialised by Run.
func New(b backend.Backend, opts ...Option) *Console {
	c := &Console{
		backend:       b,
		keys:          DefaultKeyMap(),
		in:            newPipe(),
		out:           newPipe(),
		err:           newPipe(),
		pollInterval:  DefaultPollInterval,
		echo:          true,
		readClipboard: clipboard.ReadAll,
		log:           logging.Null(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.WithComponent("console")
	c.state = NewState(0, 0)
	c.state.SetLimits(c.historyLimit, c.scrollbackLimit)
	c.running.Store(true)
	return c
}

// In returns the reader for submitted lines, one per line with a trailing
// newline. Reads block until a line is submitted and return io.EOF once the
// console has stopped.
func (c *Console) In() io.Reader { return c.in }

// Out returns the writer for standard output. It is safe for concurrent use.
func (c *Console) Out() io.Writer { return c.out }

// Err returns the writer for standard error. It is safe for concurrent use.
func (c *Console) Err() io.Writer { return c.err }

// State returns the console state. It must only be inspected while Run is
// not executing.
func (c *Console) State() *State { return c.state }

// SetStatus replaces the status line. It is safe for concurrent use; the
// change is drawn on the next cycle.
func (c *Console) SetStatus(status string) {
	c.statusMu.Lock()
	defer c.statusMu.Unlock()
	c.pendingStatus = &status
}

// Clear empties the output pane on the next cycle. Output written before
// the call and not yet shown is discarded with it. It is safe for
// concurrent use.
func (c *Console) Clear() {
	c.statusMu.Lock()
	defer c.statusMu.Unlock()
	c.out.Drain()
	c.err.Drain()
	c.pendingClear = true
}

// Running reports whether the console is still running.
func (c *Console) Running() bool { return c.running.Load() }

// Stop ends Run after its current cycle. It is safe for concurrent use.
func (c *Console) Stop() {
	if c.running.CompareAndSwap(true, false) {
		c.log.Debug("stop requested")
	}
}

// Wait blocks until the console stops or ctx is done.
func (c *Console) Wait(ctx context.Context) error {
	ticker := time.NewTicker(waitInterval)
	defer ticker.Stop()

	for c.Running() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}

// Run initialises the backend and runs the poll loop until Stop is called
// or ctx is done. Each cycle handles pending key events, drains Out and Err
// into the scrollback and redraws the dirty regions.
func (c *Console) Run(ctx context.Context) error {
	if err := c.backend.Init(); err != nil {
		return fmt.Errorf("console: init backend: %w", err)
	}
	defer c.backend.Shutdown()
	defer c.in.Close()
	defer c.running.Store(false)

	w, h := c.backend.Size()
	c.state.SetSize(w, h)
	c.backend.OnResize(func(width, height int) {
		c.state.SetSize(width, height)
	})
	c.log.Info("console started (%dx%d)", w, h)

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for c.Running() {
		c.step()
		select {
		case <-ctx.Done():
			c.log.Debug("context done: %v", ctx.Err())
			return ctx.Err()
		case <-ticker.C:
		}
	}
	c.log.Info("console stopped")
	return nil
}

// step runs one cycle of the poll loop.
func (c *Console) step() {
	for {
		ev, ok := c.backend.PollEvent()
		if !ok {
			break
		}
		c.handleEvent(ev)
	}
	c.drain()
	Draw(c.backend, c.state)
}

func (c *Console) handleEvent(ev backend.Event) {
	switch ev.Type {
	case backend.EventKey:
		c.handleKey(ev)
	case backend.EventPaste:
		c.paste(ev.PasteText)
	case backend.EventResize:
		c.log.Debug("resized to %dx%d", ev.Width, ev.Height)
	}
}

func (c *Console) handleKey(ev backend.Event) {
	action, ok := c.keys.Lookup(ev)
	if !ok {
		if ev.Key == backend.KeyRune && unicode.IsPrint(ev.Rune) {
			c.state.Insert(ev.Rune)
		}
		return
	}

	c.log.Debug("key action %s", action)
	switch action {
	case ActionSubmit:
		c.submit()
	case ActionHistoryUp:
		c.state.HistoryUp()
	case ActionHistoryDown:
		c.state.HistoryDown()
	case ActionLeft:
		c.state.Left()
	case ActionRight:
		c.state.Right()
	case ActionEscape:
		c.state.Escape()
	case ActionScrollUp:
		c.state.ScrollUp()
	case ActionScrollDown:
		c.state.ScrollDown()
	case ActionBackspace:
		c.state.Backspace()
	case ActionDelete:
		c.state.Delete()
	case ActionInsert:
		c.state.ToggleOverwrite()
	case ActionPaste:
		text, err := c.readClipboard()
		if err != nil {
			c.log.Warn("clipboard read failed: %v", err)
			return
		}
		c.paste(text)
	case ActionInterrupt:
		c.Stop()
	}
}

// submit sends the current entry to In and echoes it to the output pane.
func (c *Console) submit() {
	line := c.state.Submit()
	if _, err := c.in.WriteString(line + "\n"); err != nil {
		c.log.Warn("input closed, dropping line: %v", err)
	}
	if c.echo {
		_, _ = c.out.WriteString(line + "\n")
	}
}

// paste types text; each newline submits the line so far.
func (c *Console) paste(text string) {
	for _, r := range text {
		switch {
		case r == '\n':
			c.submit()
		case r == '\t':
			c.state.Insert(' ')
		case unicode.IsPrint(r):
			c.state.Insert(r)
		}
	}
}

// drain moves pending output and status changes into the state.
func (c *Console) drain() {
	c.statusMu.Lock()
	status := c.pendingStatus
	c.pendingStatus = nil
	clearOutput := c.pendingClear
	c.pendingClear = false
	c.statusMu.Unlock()
	if status != nil {
		c.state.SetStatus(*status)
	}
	if clearOutput {
		c.state.ClearOutput()
	}

	for _, p := range []*pipe{c.out, c.err} {
		text := p.Drain()
		if text == "" {
			continue
		}
		for _, line := range splitLines(text) {
			c.state.AppendOutput(line)
		}
	}
}
