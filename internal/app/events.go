package app

import (
	"log"

	"github.com/diegok/pong/internal/game"
)

// guardedListener shields the tick from a failing sound backend. The
// first panic is logged and the listener is switched off for good.
type guardedListener struct {
	next     game.Listener
	logger   *log.Logger
	disabled bool
}

func newGuardedListener(next game.Listener, logger *log.Logger) *guardedListener {
	return &guardedListener{next: next, logger: logger}
}

func (g *guardedListener) OnEvent(e game.Event) {
	if g.disabled || g.next == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			g.disabled = true
			g.logger.Printf("component=audio action=disabled event=%s panic=%v", e, r)
		}
	}()
	g.next.OnEvent(e)
}
