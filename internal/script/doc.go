// Package script loads Lua files that define replterm commands.
//
// Scripts run in a sandboxed gopher-lua state with only the base, table,
// string and math libraries. A script registers commands through the global
// repl table:
//
//	repl.command("greet", "[name]", "Say hello", function(ctx)
//	    if ctx.help then
//	        return "greet takes one name"
//	    end
//	    if #ctx.args == 0 then
//	        return "Usage: greet [name]"
//	    end
//	    return "Hello, " .. ctx.args[1]
//	end)
//
// The handler receives a table with the fields:
//
//	name    the command name
//	raw     the verbatim text after the command name
//	args    positional arguments (a Lua array)
//	help    true when called from "help <name>"
//	window  the name of the window running the command
//
// It returns the text to print and, optionally, true to close the window.
// Anything the handler prints is placed before the returned text. A runtime
// error inside a handler becomes the command's output instead of stopping
// the REPL.
package script
