package script

import (
	lua "github.com/yuin/gopher-lua"
)

// openSafeLibraries opens only the libraries a command script needs.
// io, os, debug and package stay closed.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// restrictGlobals removes base functions that load code from disk or
// strings.
func restrictGlobals(L *lua.LState) {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module"} {
		L.SetGlobal(name, lua.LNil)
	}
}
