// Package protocol holds the types exchanged between the game core and
// its frontends: input snapshots going in, render frames coming out.
package protocol

// Direction represents paddle movement direction
type Direction int

const (
	DirNone Direction = 0
	DirUp   Direction = 1
	DirDown Direction = 2
)

// Side identifies one of the two players
type Side int

const (
	SideNone   Side = 0
	SidePlayer Side = 1
	SideAI     Side = 2
)

func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideAI:
		return "ai"
	}
	return "none"
}

// Phase is the state of the match flow
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseMatchOver
	PhaseReplaySelect
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseMatchOver:
		return "match_over"
	case PhaseReplaySelect:
		return "replay_select"
	}
	return "unknown"
}

// Rect is an axis-aligned rectangle in court units
type Rect struct {
	X, Y int
	W, H int
}

func (r Rect) Left() int   { return r.X }
func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Top() int    { return r.Y }
func (r Rect) Bottom() int { return r.Y + r.H }

// Intersects reports whether the two rectangles overlap. Rectangles that
// only share an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Input is the state of the controls sampled once per tick
type Input struct {
	Quit bool
	Up   bool
	Down bool
	// Choice is a best-of-N key press (3, 5 or 7), 0 when none.
	Choice int
}

// Direction collapses the held keys into a single direction
func (in Input) Direction() Direction {
	switch {
	case in.Up && !in.Down:
		return DirUp
	case in.Down && !in.Up:
		return DirDown
	}
	return DirNone
}

// Frame is the read-only geometry and text handed to a renderer each tick
type Frame struct {
	Phase        Phase
	CourtWidth   int
	CourtHeight  int
	Player       Rect
	AI           Rect
	Ball         Rect
	PlayerScore  int
	AIScore      int
	WinningScore int
	Winner       string
	Menu         []string
}
