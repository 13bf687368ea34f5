package game

import (
	"fmt"

	"github.com/diegok/pong/internal/protocol"
)

// Match tracks the score of a best-of-N match and its phase
type Match struct {
	PlayerScore  int
	AIScore      int
	WinningScore int
	Phase        protocol.Phase

	overTicks int // Banner duration
	overLeft  int
}

func NewMatch(winningScore, overTicks int) (*Match, error) {
	if !ValidWinningScore(winningScore) {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidWinningScore, winningScore)
	}
	return &Match{
		WinningScore: winningScore,
		Phase:        protocol.PhasePlaying,
		overTicks:    overTicks,
	}, nil
}

// Score awards one point. Points are only counted while playing.
func (m *Match) Score(side protocol.Side) {
	if m.Phase != protocol.PhasePlaying {
		return
	}
	switch side {
	case protocol.SidePlayer:
		m.PlayerScore++
	case protocol.SideAI:
		m.AIScore++
	}
}

// Winner returns the side that reached the winning score, if any
func (m *Match) Winner() protocol.Side {
	switch {
	case m.PlayerScore >= m.WinningScore:
		return protocol.SidePlayer
	case m.AIScore >= m.WinningScore:
		return protocol.SideAI
	}
	return protocol.SideNone
}

// IsOver reports whether either side has won
func (m *Match) IsOver() bool {
	return m.Winner() != protocol.SideNone
}

// Check moves a finished match out of play. It returns true on the
// tick the match ends.
func (m *Match) Check() bool {
	if m.Phase != protocol.PhasePlaying || !m.IsOver() {
		return false
	}
	m.Phase = protocol.PhaseMatchOver
	m.overLeft = m.overTicks
	if m.overLeft == 0 {
		m.Phase = protocol.PhaseReplaySelect
	}
	return true
}

// Advance counts down the winner banner and opens the replay menu
func (m *Match) Advance() {
	if m.Phase != protocol.PhaseMatchOver {
		return
	}
	if m.overLeft > 0 {
		m.overLeft--
	}
	if m.overLeft == 0 {
		m.Phase = protocol.PhaseReplaySelect
	}
}

// Restart starts a new match to the chosen target. It is only accepted
// from the replay menu.
func (m *Match) Restart(winningScore int) error {
	if m.Phase != protocol.PhaseReplaySelect {
		return fmt.Errorf("cannot restart during %s", m.Phase)
	}
	if !ValidWinningScore(winningScore) {
		return fmt.Errorf("%w, got %d", ErrInvalidWinningScore, winningScore)
	}
	m.WinningScore = winningScore
	m.PlayerScore = 0
	m.AIScore = 0
	m.Phase = protocol.PhasePlaying
	return nil
}

// WinnerText is the banner shown once the match is over
func (m *Match) WinnerText() string {
	switch m.Winner() {
	case protocol.SidePlayer:
		return "Player Wins!"
	case protocol.SideAI:
		return "AI Wins!"
	}
	return ""
}

// ReplayMenu lists the lines of the best-of-N menu
func ReplayMenu() []string {
	return []string{
		"Choose Best of 3, 5, 7, or ESC to Exit:",
		"Press 3 -> Best of 3",
		"Press 5 -> Best of 5",
		"Press 7 -> Best of 7",
		"Press ESC -> Exit",
	}
}
