package app

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/diegok/pong/internal/audio"
	"github.com/diegok/pong/internal/config"
	"github.com/diegok/pong/internal/game"
	"github.com/diegok/pong/internal/ui"
)

// App wires the engine to the terminal and the speaker
type App struct {
	cfg    *config.Config
	logger *log.Logger
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config, logger *log.Logger) *App {
	return &App{cfg: cfg, logger: logger}
}

// Run builds the session and plays until the player quits or ctx is
// cancelled. The audio subsystem is owned by the caller.
func (a *App) Run(ctx context.Context) error {
	seed := a.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var sound game.Listener
	if !a.cfg.Mute && audio.Enabled() {
		sound = audio.Effects{}
	}

	engine, err := game.NewEngine(a.cfg.GameOptions(), rand.New(rand.NewSource(seed)), newGuardedListener(sound, a.logger))
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	screen, err := ui.InitScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	done := make(chan struct{})
	defer close(done)

	a.logger.Printf("component=app action=start seed=%d fps=%d sound=%t", seed, a.cfg.FPS, sound != nil)

	loop := NewLoop(engine, ui.NewKeyboard(screen.Events(done)), ui.NewRenderer(screen), a.cfg.FrameDuration(), a.logger)
	return loop.Run(ctx)
}
