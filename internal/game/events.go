package game

// Event is a side effect signalled by the simulation
type Event int

const (
	EventWallHit Event = iota + 1
	EventPaddleHit
	EventScore
)

func (e Event) String() string {
	switch e {
	case EventWallHit:
		return "wall_hit"
	case EventPaddleHit:
		return "paddle_hit"
	case EventScore:
		return "score"
	}
	return "unknown"
}

// Listener receives simulation events. Implementations must return
// quickly; the tick does not wait on them.
type Listener interface {
	OnEvent(Event)
}

// ListenerFunc adapts a function to a Listener
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

type nopListener struct{}

func (nopListener) OnEvent(Event) {}
