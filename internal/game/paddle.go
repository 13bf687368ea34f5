package game

import "github.com/diegok/pong/internal/protocol"

const (
	PaddleSpeed = 10 // Units per tick while a key is held
	AIStep      = 5  // Units per tick the AI paddle moves toward the ball
)

type Paddle struct {
	X      int // Fixed at creation
	Y      int
	Width  int
	Height int
}

func NewPaddle(x, y, width, height int) *Paddle {
	return &Paddle{X: x, Y: y, Width: width, Height: height}
}

// Move shifts the paddle vertically and keeps it inside the court
func (p *Paddle) Move(delta, screenHeight int) {
	p.Y += delta
	p.clamp(screenHeight)
}

// Steer applies one tick of player input
func (p *Paddle) Steer(dir protocol.Direction, screenHeight int) {
	switch dir {
	case protocol.DirUp:
		p.Move(-PaddleSpeed, screenHeight)
	case protocol.DirDown:
		p.Move(PaddleSpeed, screenHeight)
	}
}

// AutoTrack moves the paddle one AI step toward the ball's vertical centre
func (p *Paddle) AutoTrack(ball *Ball, screenHeight int) {
	center := p.Y + p.Height/2
	target := ball.Y + ball.Height/2

	switch {
	case center < target:
		p.Move(AIStep, screenHeight)
	case center > target:
		p.Move(-AIStep, screenHeight)
	}
}

func (p *Paddle) Rect() protocol.Rect {
	return protocol.Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

func (p *Paddle) clamp(screenHeight int) {
	maxY := screenHeight - p.Height
	if p.Y > maxY {
		p.Y = maxY
	}
	if p.Y < 0 {
		p.Y = 0
	}
}
