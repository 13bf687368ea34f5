package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/diegok/pong/internal/protocol"
)

// HoldTicks is how long a key press keeps the paddle moving. Terminals
// report no key releases, so a held key is seen as a stream of repeats
// and each one refreshes the window (~133ms at 60Hz).
const HoldTicks = 8

// KeyToDirection converts a key event to a movement direction
// For Pong, only up/down movement is allowed
func KeyToDirection(key tcell.Key, r rune) protocol.Direction {
	switch key {
	case tcell.KeyUp:
		return protocol.DirUp
	case tcell.KeyDown:
		return protocol.DirDown
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return protocol.DirUp
		case 's', 'S':
			return protocol.DirDown
		}
	}
	return protocol.DirNone
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return true
	}
	return false
}

// ChoiceKey returns the best-of-N target selected by the key, or 0
func ChoiceKey(key tcell.Key, r rune) int {
	if key != tcell.KeyRune {
		return 0
	}
	switch r {
	case '3':
		return 3
	case '5':
		return 5
	case '7':
		return 7
	}
	return 0
}

// Keyboard turns terminal events into one input snapshot per tick
type Keyboard struct {
	events    <-chan tcell.Event
	upTicks   int
	downTicks int
}

func NewKeyboard(events <-chan tcell.Event) *Keyboard {
	return &Keyboard{events: events}
}

// Poll drains pending events without blocking. A closed event stream
// means the terminal is gone and is reported as a quit request.
func (k *Keyboard) Poll() protocol.Input {
	var in protocol.Input

drain:
	for {
		select {
		case ev, ok := <-k.events:
			if !ok {
				in.Quit = true
				break drain
			}
			if key, isKey := ev.(*tcell.EventKey); isKey {
				k.handleKey(key.Key(), key.Rune(), &in)
			}
		default:
			break drain
		}
	}

	in.Up = k.upTicks > 0
	in.Down = k.downTicks > 0
	if k.upTicks > 0 {
		k.upTicks--
	}
	if k.downTicks > 0 {
		k.downTicks--
	}
	return in
}

func (k *Keyboard) handleKey(key tcell.Key, r rune, in *protocol.Input) {
	if IsQuitKey(key, r) {
		in.Quit = true
		return
	}
	if choice := ChoiceKey(key, r); choice != 0 {
		in.Choice = choice
		return
	}

	// A new direction cancels the opposite one immediately
	switch KeyToDirection(key, r) {
	case protocol.DirUp:
		k.upTicks = HoldTicks
		k.downTicks = 0
	case protocol.DirDown:
		k.downTicks = HoldTicks
		k.upTicks = 0
	}
}
