//go:build arenadebug

package typedarena

import "sync/atomic"

// ownerGuard detects two goroutines mutating the same Arena at once.
// An Arena has a single owner; this only turns a data race into a loud
// failure in builds tagged arenadebug.
type ownerGuard struct {
	busy atomic.Bool
}

func (g *ownerGuard) enter() {
	if !g.busy.CompareAndSwap(false, true) {
		panic("arena: concurrent use of Arena detected")
	}
}

func (g *ownerGuard) exit() {
	g.busy.Store(false)
}
