package views

import "sync/atomic"

// Guard hands out monotonically increasing generation tokens so that
// concurrent loads for the same page resolve latest-wins: a response
// carrying a stale token is discarded instead of overwriting newer data.
type Guard struct {
	gen atomic.Uint64
}

// Begin registers a new load attempt and returns its token. The newest
// token invalidates all earlier ones.
func (g *Guard) Begin() uint64 {
	return g.gen.Add(1)
}

// Current reports whether token still belongs to the newest load.
func (g *Guard) Current(token uint64) bool {
	return g.gen.Load() == token
}
