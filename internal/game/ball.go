package game

import (
	"math/rand"

	"github.com/diegok/pong/internal/protocol"
)

type Ball struct {
	X, Y          int
	VX, VY        int
	Width, Height int

	screenWidth  int
	screenHeight int
	spawnX       int
	spawnY       int
	speedsY      []int
	rng          *rand.Rand
	events       Listener
}

// NewBall places a ball at its spawn point with a random serve
func NewBall(x, y int, opts Options, rng *rand.Rand, events Listener) *Ball {
	if events == nil {
		events = nopListener{}
	}
	b := &Ball{
		X:            x,
		Y:            y,
		Width:        opts.BallSize,
		Height:       opts.BallSize,
		screenWidth:  opts.CourtWidth,
		screenHeight: opts.CourtHeight,
		spawnX:       x,
		spawnY:       y,
		speedsY:      opts.BallSpeedsY,
		rng:          rng,
		events:       events,
	}
	b.VX = opts.BallSpeedX
	if rng.Intn(2) == 0 {
		b.VX = -b.VX
	}
	b.VY = b.randomSpeedY()
	return b
}

// Move advances the ball one tick and resolves wall and paddle contacts.
// Wall contacts flip VY without clamping, so the ball can sit slightly
// past the wall for one frame.
func (b *Ball) Move(player, ai *Paddle) {
	b.X += b.VX
	b.Y += b.VY

	if b.Y <= 0 || b.Y+b.Height >= b.screenHeight {
		b.VY = -b.VY
		b.events.OnEvent(EventWallHit)
	}

	// Player paddle wins ties; only one paddle is resolved per tick.
	if b.Rect().Intersects(player.Rect()) {
		b.X = player.Rect().Right()
		b.VX = -b.VX
		b.events.OnEvent(EventPaddleHit)
	} else if b.Rect().Intersects(ai.Rect()) {
		b.X = ai.Rect().Left() - b.Width
		b.VX = -b.VX
		b.events.OnEvent(EventPaddleHit)
	}
}

// Reset puts the ball back on its spawn point. VX is always inverted,
// regardless of which side conceded.
func (b *Ball) Reset() {
	b.X = b.spawnX
	b.Y = b.spawnY
	b.VX = -b.VX
	b.VY = b.randomSpeedY()
}

// Spawn returns the point the ball serves from
func (b *Ball) Spawn() (int, int) {
	return b.spawnX, b.spawnY
}

func (b *Ball) Rect() protocol.Rect {
	return protocol.Rect{X: b.X, Y: b.Y, W: b.Width, H: b.Height}
}

func (b *Ball) randomSpeedY() int {
	return b.speedsY[b.rng.Intn(len(b.speedsY))]
}
