package game

import "math/rand"

type recorder struct {
	events []Event
}

func (r *recorder) OnEvent(e Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(e Event) int {
	n := 0
	for _, got := range r.events {
		if got == e {
			n++
		}
	}
	return n
}

func (r *recorder) reset() {
	r.events = r.events[:0]
}

func newTestBall(rec *recorder) *Ball {
	opts := DefaultOptions()
	return NewBall(opts.CourtWidth/2, opts.CourtHeight/2, opts, rand.New(rand.NewSource(1)), rec)
}

func defaultPaddles() (*Paddle, *Paddle) {
	return NewPaddle(10, 250, 10, 100), NewPaddle(780, 250, 10, 100)
}
