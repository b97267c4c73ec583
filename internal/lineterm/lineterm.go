// Package lineterm provides a line-editing terminal for the command
// driver, backed by github.com/peterh/liner.
package lineterm

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/dshills/replterm/internal/repl"
)

const clearScreen = "\033[H\033[2J"

// prompter is the subset of *liner.State used by Terminal.
type prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
	Close() error
}

// Terminal reads lines with history and editing and writes output lines.
type Terminal struct {
	line prompter
	out  io.Writer
}

// New puts the controlling terminal into line-editing mode. Close must be
// called to restore it.
func New() *Terminal {
	ln := liner.NewLiner()
	ln.SetCtrlCAborts(true)
	return &Terminal{line: ln, out: os.Stdout}
}

// ReadLine implements repl.LineTerminal. Ctrl+C maps to
// repl.ErrInterrupted and Ctrl+D to io.EOF.
func (t *Terminal) ReadLine(prompt string) (string, error) {
	line, err := t.line.Prompt(prompt)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", repl.ErrInterrupted
		}
		return "", err
	}
	if strings.TrimSpace(line) != "" {
		t.line.AppendHistory(line)
	}
	return line, nil
}

// WriteLine implements repl.LineTerminal.
func (t *Terminal) WriteLine(text string) error {
	_, err := fmt.Fprintln(t.out, text)
	return err
}

// Clear implements repl.LineTerminal.
func (t *Terminal) Clear() error {
	_, err := io.WriteString(t.out, clearScreen)
	return err
}

// Close restores the terminal.
func (t *Terminal) Close() error {
	return t.line.Close()
}
