package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/dshills/replterm/internal/console"
	"github.com/dshills/replterm/internal/renderer/backend"
	"github.com/dshills/replterm/internal/repl"
)

func (app *Application) begin() error {
	if app.shutdown.Load() {
		return ErrShutdown
	}
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	return nil
}

// RunLine serves the windows on a line terminal until every window closes,
// input ends or ctx is done.
func (app *Application) RunLine(ctx context.Context, term repl.LineTerminal) error {
	if err := app.begin(); err != nil {
		return err
	}
	defer app.running.Store(false)

	app.log.Info("line mode started")
	return repl.NewDriver(app.manager, term, repl.WithDriverLogger(app.log)).Run(ctx)
}

// RunInteractive serves the windows on a full-screen console drawn on b.
// Submitted lines are evaluated in the active window on a separate
// goroutine, which is the only one touching the window registry.
func (app *Application) RunInteractive(ctx context.Context, b backend.Backend, extra ...console.Option) error {
	if err := app.begin(); err != nil {
		return err
	}
	defer app.running.Store(false)

	opts, err := app.config.ConsoleOptions()
	if err != nil {
		return err
	}
	opts = append(opts, console.WithLogger(app.log))
	opts = append(opts, extra...)
	c := console.New(b, opts...)

	app.showStatus(c)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		app.serveConsole(c, c.In())
	}()

	app.log.Info("interactive mode started")
	err = c.Run(ctx)
	// Run closes In, which ends serveConsole.
	wg.Wait()
	return err
}

// serveConsole evaluates each line read from in. Lines have no length limit.
// The console is stopped when the last window closes or in ends.
func (app *Application) serveConsole(c *console.Console, in io.Reader) {
	defer c.Stop()

	r := bufio.NewReader(in)
	for {
		line, err := r.ReadString('\n')
		if line != "" || err == nil {
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			if !app.evalConsoleLine(c, line) {
				return
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				app.log.Error("reading console input: %v", err)
			}
			return
		}
	}
}

// evalConsoleLine runs line in the active window and reports whether any
// window is left to serve.
func (app *Application) evalConsoleLine(c *console.Console, line string) bool {
	w := app.manager.Active()
	if w == nil {
		return false
	}

	input := repl.NewInput(line)
	if input.Args.Empty() && !w.ParseEmpty() {
		return true
	}

	out := w.Eval(input)
	fmt.Fprintln(c.Out(), out.Text)

	if !out.Continue {
		app.manager.Remove(w)
		app.log.Info("window %q closed, %d remaining", w.Name(), app.manager.Len())
		c.Clear()
		if app.manager.Len() == 0 {
			return false
		}
	}
	if next := app.manager.Active(); next != nil && next.TakeClear() {
		c.Clear()
	}
	app.showStatus(c)
	return true
}

// showStatus names the active window unless the config fixes the status.
func (app *Application) showStatus(c *console.Console) {
	w := app.manager.Active()
	if w == nil || app.config.Console.Status != "" {
		return
	}
	c.SetStatus(fmt.Sprintf(" %s (%d/%d)", w.Name(), app.manager.ActiveIndex()+1, app.manager.Len()))
}
