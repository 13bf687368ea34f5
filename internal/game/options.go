package game

import (
	"errors"
	"fmt"
	"time"
)

// Defaults match the classic 800x600 court
const (
	DefaultCourtWidth   = 800
	DefaultCourtHeight  = 600
	DefaultPaddleWidth  = 10
	DefaultPaddleHeight = 100
	DefaultBallSize     = 7
	DefaultBallSpeedX   = 5
	DefaultWinningScore = 5
	DefaultOverDelay    = time.Second
	DefaultTickRate     = 60
)

// DefaultBallSpeedsY is the set the vertical speed is drawn from on every serve
var DefaultBallSpeedsY = []int{-3, 3}

// WinningScores lists the accepted best-of-N targets
var WinningScores = []int{3, 5, 7}

var ErrInvalidWinningScore = errors.New("winning score must be 3, 5 or 7")

// ValidWinningScore reports whether n is an accepted best-of-N target
func ValidWinningScore(n int) bool {
	for _, s := range WinningScores {
		if s == n {
			return true
		}
	}
	return false
}

// Options is the fixed geometry and pacing of a session
type Options struct {
	CourtWidth   int
	CourtHeight  int
	PaddleWidth  int
	PaddleHeight int
	BallSize     int
	BallSpeedX   int
	BallSpeedsY  []int
	WinningScore int
	// OverTicks is how many ticks the winner banner stays up before the
	// replay menu opens.
	OverTicks int
}

// DefaultOptions returns the options of a standard session
func DefaultOptions() Options {
	return Options{
		CourtWidth:   DefaultCourtWidth,
		CourtHeight:  DefaultCourtHeight,
		PaddleWidth:  DefaultPaddleWidth,
		PaddleHeight: DefaultPaddleHeight,
		BallSize:     DefaultBallSize,
		BallSpeedX:   DefaultBallSpeedX,
		BallSpeedsY:  append([]int(nil), DefaultBallSpeedsY...),
		WinningScore: DefaultWinningScore,
		OverTicks:    int(DefaultOverDelay / (time.Second / DefaultTickRate)),
	}
}

// Validate checks the options describe a playable court
func (o Options) Validate() error {
	if o.CourtWidth <= 0 || o.CourtHeight <= 0 {
		return fmt.Errorf("court must be positive, got %dx%d", o.CourtWidth, o.CourtHeight)
	}
	if o.PaddleWidth <= 0 || o.PaddleHeight <= 0 {
		return fmt.Errorf("paddle must be positive, got %dx%d", o.PaddleWidth, o.PaddleHeight)
	}
	if o.PaddleHeight > o.CourtHeight {
		return fmt.Errorf("paddle height %d exceeds court height %d", o.PaddleHeight, o.CourtHeight)
	}
	// Both paddles sit one paddle width in from their wall.
	if 4*o.PaddleWidth >= o.CourtWidth {
		return fmt.Errorf("paddle width %d too large for court width %d", o.PaddleWidth, o.CourtWidth)
	}
	if o.BallSize <= 0 || o.BallSize >= o.CourtHeight || o.BallSize >= o.CourtWidth {
		return fmt.Errorf("ball size %d does not fit a %dx%d court", o.BallSize, o.CourtWidth, o.CourtHeight)
	}
	if o.BallSpeedX <= 0 {
		return fmt.Errorf("ball speed must be positive, got %d", o.BallSpeedX)
	}
	if len(o.BallSpeedsY) == 0 {
		return errors.New("ball vertical speed set is empty")
	}
	for _, vy := range o.BallSpeedsY {
		if vy == 0 {
			return errors.New("ball vertical speeds must be non-zero")
		}
	}
	if !ValidWinningScore(o.WinningScore) {
		return fmt.Errorf("%w, got %d", ErrInvalidWinningScore, o.WinningScore)
	}
	if o.OverTicks < 0 {
		return fmt.Errorf("game over delay must not be negative, got %d ticks", o.OverTicks)
	}
	return nil
}
