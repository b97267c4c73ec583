package repl

// Eval evaluates one line in this window.
//
// The hook runs first. Unless it suppresses built-ins, "help" is handled
// when enabled, otherwise the first command whose name matches Args[1] is
// invoked and its result replaces the hook's text. When nothing matches the
// hook's text is returned unchanged.
func (w *Window) Eval(in Input) Outcome {
	var hr HookResult
	if w.hook != nil {
		hr = w.hook.Eval(w, in)
	}
	out := Outcome{Text: hr.Text, Continue: true}
	if hr.SuppressBuiltins {
		w.log.Debug("built-ins suppressed by hook")
		return out
	}

	name := in.Args.Command()
	if w.handleHelp && name == helpCommand {
		out.Text = w.showHelp(in.Args)
		return out
	}

	cmd, ok := w.Lookup(name)
	if !ok {
		w.log.Debug("no command matches %q", name)
		return out
	}

	res := cmd.invoke(Invocation{Args: in.Args})
	out.Text = res.Text
	if res.Request == RequestClose {
		w.log.Debug("command %q closed the window", cmd.name)
		out.Continue = false
	}
	return out
}

// EvalLine tokenizes and evaluates line.
func (w *Window) EvalLine(line string) Outcome {
	return w.Eval(NewInput(line))
}
