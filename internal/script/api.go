package script

import (
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// installAPI defines the global repl table and replaces print.
func (e *Engine) installAPI() {
	L := e.L
	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"command": e.luaCommand,
	})
	L.SetGlobal("repl", mod)
	L.SetGlobal("print", L.NewFunction(e.luaPrint))
}

// luaCommand implements repl.command(name, usage, description, fn).
func (e *Engine) luaCommand(L *lua.LState) int {
	name := L.CheckString(1)
	usage := L.OptString(2, "")
	desc := L.OptString(3, "")
	fn := L.CheckFunction(4)

	if strings.TrimSpace(name) == "" || strings.ContainsAny(name, " \"") {
		L.ArgError(1, "command name must be a single word")
		return 0
	}
	for _, c := range e.commands {
		if c.Name == name {
			L.RaiseError("command %q already defined by %s", name, c.Script)
			return 0
		}
	}

	e.commands = append(e.commands, &Command{
		Name:        name,
		Usage:       usage,
		Description: desc,
		Script:      e.loading,
		fn:          fn,
	})
	return 0
}

// luaPrint collects output while a command runs and logs it otherwise.
func (e *Engine) luaPrint(L *lua.LState) int {
	n := L.GetTop()
	parts := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		parts = append(parts, L.ToStringMeta(L.Get(i)).String())
	}
	line := strings.Join(parts, "\t")

	if e.output != nil {
		e.output.WriteString(line)
		e.output.WriteString("\n")
		return 0
	}
	e.log.Info("%s: %s", e.loading, line)
	return 0
}
