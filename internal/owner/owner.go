// Package owner provides a fail-fast check for single-owner mutable state.
//
// The window registry and the interactive console state are owned by one
// control flow at a time and carry no locks. A Guard detects the case where
// two mutations overlap, which can only happen when a second goroutine
// touches the state, and panics instead of corrupting it.
package owner

import (
	"fmt"
	"sync/atomic"
)

// Guard marks a critical section of a single-owner structure.
// The zero value is ready to use.
type Guard struct {
	busy atomic.Bool
	name string
}

// Named returns a guard whose panics identify the structure.
func Named(name string) *Guard {
	return &Guard{name: name}
}

// Enter claims the guard for op and returns the release function.
// It panics if the guard is already held.
//
//	defer g.Enter("Add")()
func (g *Guard) Enter(op string) func() {
	if !g.busy.CompareAndSwap(false, true) {
		name := g.name
		if name == "" {
			name = "state"
		}
		panic(fmt.Sprintf("%s: concurrent %s; this value has a single owner and must not be shared between goroutines", name, op))
	}
	return g.release
}

func (g *Guard) release() {
	g.busy.Store(false)
}
