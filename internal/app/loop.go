package app

import (
	"context"
	"log"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/diegok/pong/internal/game"
	"github.com/diegok/pong/internal/protocol"
)

// InputSource is sampled once per tick
type InputSource interface {
	Poll() protocol.Input
}

// Renderer draws one frame. Errors are logged; the simulation keeps going.
type Renderer interface {
	Render(protocol.Frame) error
}

// Loop drives the engine at a fixed tick rate. Everything runs on the
// goroutine that calls Run.
type Loop struct {
	engine  *game.Engine
	input   InputSource
	render  Renderer
	frame   time.Duration
	logger  *log.Logger
	matchID ulid.ULID

	renderFailing bool
}

func NewLoop(engine *game.Engine, input InputSource, render Renderer, frame time.Duration, logger *log.Logger) *Loop {
	return &Loop{
		engine: engine,
		input:  input,
		render: render,
		frame:  frame,
		logger: logger,
	}
}

// Run ticks until a quit is requested or ctx is cancelled. Time left
// over in a frame is slept out.
func (l *Loop) Run(ctx context.Context) error {
	l.startMatch()

	timer := time.NewTimer(l.frame)
	defer timer.Stop()

	for {
		start := time.Now()
		if ctx.Err() != nil {
			l.logger.Printf("component=app action=shutdown match_id=%s reason=%q", l.matchID, context.Cause(ctx))
			return nil
		}
		if !l.Tick() {
			return nil
		}

		wait := l.frame - time.Since(start)
		if wait <= 0 {
			continue
		}
		timer.Reset(wait)
		select {
		case <-ctx.Done():
			l.logger.Printf("component=app action=shutdown match_id=%s reason=%q", l.matchID, context.Cause(ctx))
			return nil
		case <-timer.C:
		}
	}
}

// Tick runs one input, update, render and match check cycle. It returns
// false when the player asked to quit; nothing else happens on that tick.
func (l *Loop) Tick() bool {
	in := l.input.Poll()
	if in.Quit {
		l.logger.Printf("component=app action=quit match_id=%s phase=%s", l.matchID, l.engine.Phase())
		return false
	}

	before := l.engine.Phase()
	if scorer := l.engine.Step(in); scorer != protocol.SideNone {
		m := l.engine.Match
		l.logger.Printf("component=game action=score match_id=%s side=%s player=%d ai=%d",
			l.matchID, scorer, m.PlayerScore, m.AIScore)
	}
	if before == protocol.PhaseReplaySelect && l.engine.Phase() == protocol.PhasePlaying {
		l.startMatch()
	}

	l.draw()

	if l.engine.CheckMatchOver() {
		m := l.engine.Match
		l.logger.Printf("component=game action=match_over match_id=%s winner=%s player=%d ai=%d",
			l.matchID, m.Winner(), m.PlayerScore, m.AIScore)
	}
	return true
}

func (l *Loop) draw() {
	err := l.render.Render(l.engine.Frame())
	switch {
	case err != nil && !l.renderFailing:
		l.renderFailing = true
		l.logger.Printf("component=ui action=render_failed match_id=%s err=%v", l.matchID, err)
	case err == nil && l.renderFailing:
		l.renderFailing = false
		l.logger.Printf("component=ui action=render_recovered match_id=%s", l.matchID)
	}
}

func (l *Loop) startMatch() {
	l.matchID = ulid.Make()
	l.logger.Printf("component=game action=match_start match_id=%s best_of=%d",
		l.matchID, l.engine.Match.WinningScore)
}

// MatchID identifies the match being played
func (l *Loop) MatchID() ulid.ULID {
	return l.matchID
}
