package game

import (
	"math/rand"

	"github.com/diegok/pong/internal/protocol"
)

// Engine owns the whole simulation of one session: both paddles, the
// ball and the match. It is not safe for concurrent use; the game loop
// is the only caller.
type Engine struct {
	opts   Options
	Player *Paddle
	AI     *Paddle
	Ball   *Ball
	Match  *Match
	events Listener
}

// NewEngine lays out the court and serves the first ball
func NewEngine(opts Options, rng *rand.Rand, events Listener) (*Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if events == nil {
		events = nopListener{}
	}

	match, err := NewMatch(opts.WinningScore, opts.OverTicks)
	if err != nil {
		return nil, err
	}

	paddleY := opts.CourtHeight/2 - opts.PaddleHeight/2
	return &Engine{
		opts:   opts,
		Player: NewPaddle(opts.PaddleWidth, paddleY, opts.PaddleWidth, opts.PaddleHeight),
		AI:     NewPaddle(opts.CourtWidth-2*opts.PaddleWidth, paddleY, opts.PaddleWidth, opts.PaddleHeight),
		Ball:   NewBall(opts.CourtWidth/2, opts.CourtHeight/2, opts, rng, events),
		Match:  match,
		events: events,
	}, nil
}

// Phase returns the current match phase
func (e *Engine) Phase() protocol.Phase {
	return e.Match.Phase
}

// Step runs one tick for the current phase and returns the side that
// scored during it, if any.
func (e *Engine) Step(in protocol.Input) protocol.Side {
	switch e.Match.Phase {
	case protocol.PhasePlaying:
		e.Player.Steer(in.Direction(), e.opts.CourtHeight)
		return e.Update()
	case protocol.PhaseMatchOver:
		e.Match.Advance()
	case protocol.PhaseReplaySelect:
		if in.Choice != 0 {
			e.Replay(in.Choice)
		}
	}
	return protocol.SideNone
}

// Update advances the ball, settles scoring and lets the AI react
func (e *Engine) Update() protocol.Side {
	e.Ball.Move(e.Player, e.AI)

	scorer := protocol.SideNone
	if e.Ball.X <= 0 {
		scorer = protocol.SideAI
	} else if e.Ball.X >= e.opts.CourtWidth {
		scorer = protocol.SidePlayer
	}
	if scorer != protocol.SideNone {
		e.Match.Score(scorer)
		e.events.OnEvent(EventScore)
		e.Ball.Reset()
	}

	e.AI.AutoTrack(e.Ball, e.opts.CourtHeight)
	return scorer
}

// CheckMatchOver ends the match once a side reaches the winning score
func (e *Engine) CheckMatchOver() bool {
	return e.Match.Check()
}

// Replay starts a new match from the replay menu. Choices other than
// 3, 5 or 7 are ignored.
func (e *Engine) Replay(winningScore int) bool {
	if err := e.Match.Restart(winningScore); err != nil {
		return false
	}
	e.Ball.Reset()
	return true
}

// Frame captures what a renderer needs to draw this tick
func (e *Engine) Frame() protocol.Frame {
	f := protocol.Frame{
		Phase:        e.Match.Phase,
		CourtWidth:   e.opts.CourtWidth,
		CourtHeight:  e.opts.CourtHeight,
		Player:       e.Player.Rect(),
		AI:           e.AI.Rect(),
		Ball:         e.Ball.Rect(),
		PlayerScore:  e.Match.PlayerScore,
		AIScore:      e.Match.AIScore,
		WinningScore: e.Match.WinningScore,
	}
	switch e.Match.Phase {
	case protocol.PhaseMatchOver:
		f.Winner = e.Match.WinnerText()
	case protocol.PhaseReplaySelect:
		f.Menu = ReplayMenu()
	}
	return f
}
