package repl

import (
	"context"
	"errors"
	"io"

	"github.com/dshills/replterm/internal/logging"
)

// LineTerminal is a blocking line-oriented terminal.
type LineTerminal interface {
	// ReadLine shows prompt and reads one line. It returns ErrInterrupted
	// when the user aborts the line and io.EOF at end of input.
	ReadLine(prompt string) (string, error)

	// WriteLine prints text followed by a newline.
	WriteLine(text string) error

	// Clear clears the screen.
	Clear() error
}

// Driver runs the read-eval-print loop over a Manager.
type Driver struct {
	manager *Manager
	term    LineTerminal
	log     *logging.Logger
}

// DriverOption configures a Driver.
type DriverOption func(*Driver)

// WithDriverLogger sets the driver's logger.
func WithDriverLogger(l *logging.Logger) DriverOption {
	return func(d *Driver) {
		if l != nil {
			d.log = l
		}
	}
}

// NewDriver creates a driver reading from term.
func NewDriver(m *Manager, term LineTerminal, opts ...DriverOption) *Driver {
	d := &Driver{
		manager: m,
		term:    term,
		log:     logging.Null(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.log = d.log.WithComponent("repl.driver")
	return d
}

// Run reads, evaluates and prints lines in the active window until every
// window has closed, input ends, or ctx is cancelled.
//
// Lines without a command are skipped unless the window parses empty
// lines. The evaluation text is always printed, even when empty. A window
// whose command requests close is removed and the screen cleared.
func (d *Driver) Run(ctx context.Context) error {
	if d.manager.Len() == 0 {
		return ErrNoWindows
	}

	for d.manager.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		w := d.manager.Active()
		if w.TakeClear() {
			if err := d.term.Clear(); err != nil {
				return &TerminalError{Op: "clear", Window: w.name, Err: err}
			}
		}

		line, err := d.term.ReadLine(w.prompt)
		if err != nil {
			if errors.Is(err, ErrInterrupted) {
				continue
			}
			if errors.Is(err, io.EOF) {
				d.log.Debug("input closed")
				return nil
			}
			return &TerminalError{Op: "read", Window: w.name, Err: err}
		}

		in := NewInput(line)
		if in.Args.Empty() && !w.parseEmpty {
			continue
		}

		out := w.Eval(in)
		if err := d.term.WriteLine(out.Text); err != nil {
			return &TerminalError{Op: "write", Window: w.name, Err: err}
		}

		if !out.Continue {
			d.manager.Remove(w)
			d.log.Info("window %q closed, %d remaining", w.name, d.manager.Len())
			if err := d.term.Clear(); err != nil {
				return &TerminalError{Op: "clear", Window: w.name, Err: err}
			}
		}
	}
	return nil
}
