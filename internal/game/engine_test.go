package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diegok/pong/internal/protocol"
)

func newTestEngine(t *testing.T, opts Options, seed int64) (*Engine, *recorder) {
	t.Helper()
	rec := &recorder{}
	e, err := NewEngine(opts, rand.New(rand.NewSource(seed)), rec)
	require.NoError(t, err)
	return e, rec
}

func TestNewEngine_Layout(t *testing.T) {
	e, _ := newTestEngine(t, DefaultOptions(), 1)

	assert.Equal(t, protocol.Rect{X: 10, Y: 250, W: 10, H: 100}, e.Player.Rect())
	assert.Equal(t, protocol.Rect{X: 780, Y: 250, W: 10, H: 100}, e.AI.Rect())
	assert.Equal(t, protocol.Rect{X: 400, Y: 300, W: 7, H: 7}, e.Ball.Rect())
	assert.Equal(t, DefaultWinningScore, e.Match.WinningScore)
	assert.Equal(t, protocol.PhasePlaying, e.Phase())
}

func TestNewEngine_InvalidOptions(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{"zero width", func(o *Options) { o.CourtWidth = 0 }},
		{"negative height", func(o *Options) { o.CourtHeight = -600 }},
		{"zero paddle", func(o *Options) { o.PaddleHeight = 0 }},
		{"paddle taller than court", func(o *Options) { o.PaddleHeight = 601 }},
		{"paddle too wide", func(o *Options) { o.PaddleWidth = 200 }},
		{"zero ball", func(o *Options) { o.BallSize = 0 }},
		{"zero speed", func(o *Options) { o.BallSpeedX = 0 }},
		{"no vertical speeds", func(o *Options) { o.BallSpeedsY = nil }},
		{"zero vertical speed", func(o *Options) { o.BallSpeedsY = []int{0, 3} }},
		{"winning score", func(o *Options) { o.WinningScore = 4 }},
		{"negative delay", func(o *Options) { o.OverTicks = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.mutate(&opts)
			_, err := NewEngine(opts, rand.New(rand.NewSource(1)), nil)
			assert.Error(t, err)
		})
	}

	opts := DefaultOptions()
	opts.WinningScore = 9
	_, err := NewEngine(opts, rand.New(rand.NewSource(1)), nil)
	assert.ErrorIs(t, err, ErrInvalidWinningScore)
}

func TestEngine_AIScoresAndWins(t *testing.T) {
	opts := DefaultOptions()
	opts.OverTicks = 0
	e, rec := newTestEngine(t, opts, 1)
	e.Match.AIScore = 4
	e.Match.PlayerScore = 3
	e.Ball.X = 0
	e.Ball.Y = 300
	e.Ball.VX = -5
	e.Ball.VY = 3

	scorer := e.Step(protocol.Input{})

	assert.Equal(t, protocol.SideAI, scorer)
	assert.Equal(t, 5, e.Match.AIScore)
	assert.Equal(t, 3, e.Match.PlayerScore)
	assert.Equal(t, 1, rec.count(EventScore))
	assert.Equal(t, 400, e.Ball.X)
	assert.Equal(t, 300, e.Ball.Y)

	require.True(t, e.CheckMatchOver())
	assert.Equal(t, protocol.PhaseReplaySelect, e.Phase())
	assert.Equal(t, ReplayMenu(), e.Frame().Menu)
}

func TestEngine_PlayerScores(t *testing.T) {
	e, rec := newTestEngine(t, DefaultOptions(), 1)
	e.Ball.X = 796
	e.Ball.Y = 100
	e.Ball.VX = 5
	e.Ball.VY = 3

	scorer := e.Step(protocol.Input{})

	assert.Equal(t, protocol.SidePlayer, scorer)
	assert.Equal(t, 1, e.Match.PlayerScore)
	assert.Equal(t, 0, e.Match.AIScore)
	assert.Equal(t, 1, rec.count(EventScore))
	assert.False(t, e.CheckMatchOver())
}

func TestEngine_ServeDirectionAfterScore(t *testing.T) {
	// Reset always inverts VX, so a point won by the AI (ball travelling
	// left) is served back toward the AI side.
	e, _ := newTestEngine(t, DefaultOptions(), 1)
	e.Ball.X = 2
	e.Ball.Y = 100
	e.Ball.VX = -5

	require.Equal(t, protocol.SideAI, e.Step(protocol.Input{}))
	assert.Equal(t, 5, e.Ball.VX)

	e.Ball.X = 798
	e.Ball.Y = 100
	require.Equal(t, protocol.SidePlayer, e.Step(protocol.Input{}))
	assert.Equal(t, -5, e.Ball.VX)
}

func TestEngine_BannerThenReplay(t *testing.T) {
	opts := DefaultOptions()
	opts.OverTicks = 2
	e, _ := newTestEngine(t, opts, 3)
	e.Match.PlayerScore = 5

	require.True(t, e.CheckMatchOver())
	assert.Equal(t, protocol.PhaseMatchOver, e.Phase())
	assert.Equal(t, "Player Wins!", e.Frame().Winner)

	ballBefore := e.Ball.Rect()
	e.Step(protocol.Input{Up: true})
	assert.Equal(t, protocol.PhaseMatchOver, e.Phase())
	assert.Equal(t, ballBefore, e.Ball.Rect(), "ball is frozen once the match is over")
	assert.Equal(t, 250, e.Player.Y, "paddle is frozen once the match is over")

	e.Step(protocol.Input{})
	assert.Equal(t, protocol.PhaseReplaySelect, e.Phase())
	assert.Empty(t, e.Frame().Winner)
}

func TestEngine_ReplaySelect(t *testing.T) {
	opts := DefaultOptions()
	opts.OverTicks = 0
	opts.WinningScore = 3
	e, _ := newTestEngine(t, opts, 5)
	e.Match.AIScore = 3
	e.Match.PlayerScore = 1
	e.Ball.X = 123
	e.Ball.Y = 45
	require.True(t, e.CheckMatchOver())

	e.Step(protocol.Input{Choice: 4})
	assert.Equal(t, protocol.PhaseReplaySelect, e.Phase(), "invalid choice is ignored")

	e.Step(protocol.Input{})
	assert.Equal(t, protocol.PhaseReplaySelect, e.Phase())

	e.Step(protocol.Input{Choice: 5})
	assert.Equal(t, protocol.PhasePlaying, e.Phase())
	assert.Equal(t, 5, e.Match.WinningScore)
	assert.Equal(t, 0, e.Match.PlayerScore)
	assert.Equal(t, 0, e.Match.AIScore)
	assert.Equal(t, 400, e.Ball.X)
	assert.Equal(t, 300, e.Ball.Y)
	assert.Empty(t, e.Frame().Menu)
}

func TestEngine_PlayerInput(t *testing.T) {
	e, _ := newTestEngine(t, DefaultOptions(), 1)

	e.Step(protocol.Input{Up: true})
	assert.Equal(t, 240, e.Player.Y)

	e.Step(protocol.Input{Down: true})
	e.Step(protocol.Input{Down: true})
	assert.Equal(t, 260, e.Player.Y)

	e.Step(protocol.Input{Up: true, Down: true})
	assert.Equal(t, 260, e.Player.Y)

	e.Player.Y = 0
	e.Step(protocol.Input{Up: true})
	assert.Equal(t, 0, e.Player.Y)
}

func TestEngine_Frame(t *testing.T) {
	e, _ := newTestEngine(t, DefaultOptions(), 1)
	e.Match.PlayerScore = 2
	e.Match.AIScore = 1

	f := e.Frame()

	assert.Equal(t, protocol.PhasePlaying, f.Phase)
	assert.Equal(t, 800, f.CourtWidth)
	assert.Equal(t, 600, f.CourtHeight)
	assert.Equal(t, e.Player.Rect(), f.Player)
	assert.Equal(t, e.AI.Rect(), f.AI)
	assert.Equal(t, e.Ball.Rect(), f.Ball)
	assert.Equal(t, 2, f.PlayerScore)
	assert.Equal(t, 1, f.AIScore)
	assert.Equal(t, 5, f.WinningScore)
	assert.Empty(t, f.Winner)
	assert.Empty(t, f.Menu)
}

// Long randomized run checking the invariants that must hold every tick.
func TestEngine_Invariants(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		opts := DefaultOptions()
		opts.OverTicks = 10
		e, rec := newTestEngine(t, opts, seed)
		inputs := rand.New(rand.NewSource(seed * 31))
		maxY := opts.CourtHeight - opts.PaddleHeight

		for tick := 0; tick < 20000; tick++ {
			in := protocol.Input{
				Up:   inputs.Intn(3) == 0,
				Down: inputs.Intn(3) == 0,
			}
			if e.Phase() == protocol.PhaseReplaySelect {
				in.Choice = WinningScores[inputs.Intn(len(WinningScores))]
			}

			wasPlaying := e.Phase() == protocol.PhasePlaying
			before := e.Match.PlayerScore + e.Match.AIScore
			rec.reset()
			e.Step(in)
			after := e.Match.PlayerScore + e.Match.AIScore

			if wasPlaying {
				require.LessOrEqual(t, after-before, 1, "seed %d tick %d", seed, tick)
				require.GreaterOrEqual(t, after, before, "seed %d tick %d", seed, tick)
			}
			require.LessOrEqual(t, rec.count(EventScore), 1)
			require.LessOrEqual(t, rec.count(EventPaddleHit), 1)

			if rec.count(EventPaddleHit) == 1 && rec.count(EventScore) == 0 {
				require.False(t, e.Ball.Rect().Intersects(e.Player.Rect()), "seed %d tick %d", seed, tick)
				require.False(t, e.Ball.Rect().Intersects(e.AI.Rect()), "seed %d tick %d", seed, tick)
			}

			for _, p := range []*Paddle{e.Player, e.AI} {
				require.GreaterOrEqual(t, p.Y, 0)
				require.LessOrEqual(t, p.Y, maxY)
			}

			e.CheckMatchOver()
			if e.Match.Phase == protocol.PhasePlaying {
				require.Less(t, e.Match.PlayerScore, e.Match.WinningScore)
				require.Less(t, e.Match.AIScore, e.Match.WinningScore)
			}
		}
	}
}
