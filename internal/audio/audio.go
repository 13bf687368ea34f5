// Package audio synthesizes the game's sound effects. The speaker is a
// process-wide resource: the entry point calls Init once before the game
// starts and Close on exit. Every effect is a no-op until Init succeeds.
package audio

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/diegok/pong/internal/game"
)

const (
	sampleRate = beep.SampleRate(44100)
)

var (
	initialized atomic.Bool
)

// Init initializes the audio system
func Init() error {
	if initialized.Load() {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Second/30))
	if err != nil {
		return err
	}

	initialized.Store(true)
	return nil
}

// Close shuts down the audio system
func Close() {
	if initialized.CompareAndSwap(true, false) {
		speaker.Close()
	}
}

// Enabled reports whether sound can be played
func Enabled() bool {
	return initialized.Load()
}

// tone generates a sine wave tone at the given frequency for the given duration
func tone(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := 2 * math.Pi * freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, false
			}
			val := math.Sin(phase) * 0.3 // 0.3 volume
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}

// squareWave generates a square wave tone (more retro/8-bit feel)
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, false
			}
			// Square wave: positive or negative based on phase
			val := 0.2 // volume
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}

func paddleHit() beep.Streamer {
	// High-pitched short beep
	return squareWave(880, 50*time.Millisecond)
}

func wallHit() beep.Streamer {
	// Softer, lower blip
	return tone(440, 30*time.Millisecond)
}

func score() beep.Streamer {
	// Descending three-note jingle
	return beep.Seq(
		squareWave(660, 100*time.Millisecond),
		squareWave(440, 100*time.Millisecond),
		squareWave(330, 150*time.Millisecond),
	)
}

// effectFor maps a game event to its sound
func effectFor(e game.Event) beep.Streamer {
	switch e {
	case game.EventPaddleHit:
		return paddleHit()
	case game.EventWallHit:
		return wallHit()
	case game.EventScore:
		return score()
	}
	return nil
}

// Effects plays a sound for every game event it receives. Playback is
// queued on the speaker and never waits for the sound to finish.
type Effects struct{}

func (Effects) OnEvent(e game.Event) {
	if !Enabled() {
		return
	}
	if s := effectFor(e); s != nil {
		speaker.Play(s)
	}
}
