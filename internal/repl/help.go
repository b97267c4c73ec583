package repl

import (
	"strings"

	"github.com/dshills/replterm/internal/tokenize"
)

const helpCommand = "help"

// Help renders the help text for name, or the command list when name is
// empty. It works whether or not the built-in help command is enabled.
func (w *Window) Help(name string) string {
	return w.showHelp(tokenize.Parse(helpCommand + " " + name))
}

func (w *Window) showHelp(args tokenize.Args) string {
	var b strings.Builder

	if args.Len() == 2 {
		b.WriteString("Help:\nUsage: ")
		b.WriteString(helpCommand)
		b.WriteString(" (command)\n\nList of available commands:\n")
		w.writeCommandList(&b)
		return b.String()
	}

	name := args.At(2)
	cmd := w.command(name)
	if cmd == nil {
		b.WriteString(`Command "`)
		b.WriteString(name)
		b.WriteString("\" not found.\nAvailable commands:\n")
		w.writeCommandList(&b)
		return b.String()
	}

	b.WriteString("Usage: ")
	b.WriteString(cmd.name)
	b.WriteString(" ")
	b.WriteString(cmd.usage)
	b.WriteString("\nDescription: ")
	b.WriteString(cmd.description)
	b.WriteString("\n")

	res := cmd.invoke(Invocation{Help: true, Args: args})
	if res.Request != RequestNone {
		w.log.Debug("ignoring %s request from help call to %q", res.Request, cmd.name)
	}
	b.WriteString(res.Text)
	return b.String()
}

// command finds name exactly, regardless of the window's case rule.
func (w *Window) command(name string) *Command {
	for _, c := range w.commands {
		if c.name == name {
			return c
		}
	}
	return nil
}

func (w *Window) writeCommandList(b *strings.Builder) {
	for _, c := range w.commands {
		b.WriteString(c.name)
		b.WriteString("\n")
	}
}
