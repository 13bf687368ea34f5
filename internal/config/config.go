package config

import (
	"flag"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/diegok/pong/internal/game"
)

// Default values for configuration
const (
	DefaultFPS    = game.DefaultTickRate
	DefaultPoints = game.DefaultWinningScore
	MaxFPS        = 1000
)

// Config holds the application configuration. Everything is fixed at
// startup.
type Config struct {
	Width        int           `yaml:"width"`
	Height       int           `yaml:"height"`
	PaddleWidth  int           `yaml:"paddle_width"`
	PaddleHeight int           `yaml:"paddle_height"`
	BallSize     int           `yaml:"ball_size"`
	BallSpeed    int           `yaml:"ball_speed"`
	BallSpeedsY  []int         `yaml:"ball_speeds_y"`
	FPS          int           `yaml:"fps"`
	PointsToWin  int           `yaml:"points"`
	OverDelay    time.Duration `yaml:"over_delay"`
	Seed         int64         `yaml:"seed"`
	Mute         bool          `yaml:"mute"`
	LogFile      string        `yaml:"log_file"`
}

// Default returns the configuration of a standard session
func Default() *Config {
	opts := game.DefaultOptions()
	return &Config{
		Width:        opts.CourtWidth,
		Height:       opts.CourtHeight,
		PaddleWidth:  opts.PaddleWidth,
		PaddleHeight: opts.PaddleHeight,
		BallSize:     opts.BallSize,
		BallSpeed:    opts.BallSpeedX,
		BallSpeedsY:  opts.BallSpeedsY,
		FPS:          DefaultFPS,
		PointsToWin:  DefaultPoints,
		OverDelay:    game.DefaultOverDelay,
	}
}

// ParseArgs parses command line arguments and returns a Config. Values
// from --config are applied first; flags given explicitly override them.
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("pong", flag.ContinueOnError)

	flags := Default()
	configPath := fs.String("config", "", "YAML configuration file")
	fs.IntVar(&flags.Width, "width", flags.Width, "court width in court units")
	fs.IntVar(&flags.Height, "height", flags.Height, "court height in court units")
	fs.IntVar(&flags.PaddleWidth, "paddle-width", flags.PaddleWidth, "paddle width")
	fs.IntVar(&flags.PaddleHeight, "paddle-height", flags.PaddleHeight, "paddle height")
	fs.IntVar(&flags.BallSize, "ball-size", flags.BallSize, "ball side length")
	fs.IntVar(&flags.BallSpeed, "ball-speed", flags.BallSpeed, "horizontal ball speed per tick")
	speedY := fs.Int("ball-speed-y", 0, "vertical ball speed per tick, served as ±n")
	fs.IntVar(&flags.FPS, "fps", flags.FPS, "ticks per second")
	fs.IntVar(&flags.PointsToWin, "points", flags.PointsToWin, "points to win (3, 5 or 7)")
	fs.DurationVar(&flags.OverDelay, "over-delay", flags.OverDelay, "how long the winner is shown before the replay menu")
	fs.Int64Var(&flags.Seed, "seed", 0, "random seed (0 picks one from the clock)")
	fs.BoolVar(&flags.Mute, "mute", false, "disable sound")
	fs.StringVar(&flags.LogFile, "log", "", "write logs to this file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, errors.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg := Default()
	if *configPath != "" {
		if err := cfg.LoadFile(*configPath); err != nil {
			return nil, err
		}
	}

	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = flags.Width
		case "height":
			cfg.Height = flags.Height
		case "paddle-width":
			cfg.PaddleWidth = flags.PaddleWidth
		case "paddle-height":
			cfg.PaddleHeight = flags.PaddleHeight
		case "ball-size":
			cfg.BallSize = flags.BallSize
		case "ball-speed":
			cfg.BallSpeed = flags.BallSpeed
		case "ball-speed-y":
			if *speedY <= 0 {
				flagErr = errors.Errorf("ball-speed-y must be positive, got %d", *speedY)
				return
			}
			cfg.BallSpeedsY = []int{-*speedY, *speedY}
		case "fps":
			cfg.FPS = flags.FPS
		case "points":
			cfg.PointsToWin = flags.PointsToWin
		case "over-delay":
			cfg.OverDelay = flags.OverDelay
		case "seed":
			cfg.Seed = flags.Seed
		case "mute":
			cfg.Mute = flags.Mute
		case "log":
			cfg.LogFile = flags.LogFile
		}
	})
	if flagErr != nil {
		return nil, flagErr
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile overlays the YAML document at path on cfg
func (c *Config) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open config")
	}
	defer f.Close()

	if err := c.Decode(f); err != nil {
		return errors.Wrapf(err, "config %s", path)
	}
	return nil
}

// Decode overlays a YAML document on cfg. Unknown keys are rejected.
func (c *Config) Decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && err != io.EOF {
		return errors.Wrap(err, "decode yaml")
	}
	return nil
}

// Validate rejects configurations the game cannot start with
func (c *Config) Validate() error {
	if c.FPS < 1 || c.FPS > MaxFPS {
		return errors.Errorf("fps must be between 1 and %d, got %d", MaxFPS, c.FPS)
	}
	if c.OverDelay < 0 {
		return errors.Errorf("over-delay must not be negative, got %s", c.OverDelay)
	}
	if err := c.GameOptions().Validate(); err != nil {
		return errors.Wrap(err, "invalid game settings")
	}
	return nil
}

// FrameDuration is the time budget of a single tick
func (c *Config) FrameDuration() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// GameOptions converts the configuration into simulation options
func (c *Config) GameOptions() game.Options {
	overTicks := 0
	if c.FPS > 0 {
		overTicks = int(c.OverDelay / c.FrameDuration())
	}
	return game.Options{
		CourtWidth:   c.Width,
		CourtHeight:  c.Height,
		PaddleWidth:  c.PaddleWidth,
		PaddleHeight: c.PaddleHeight,
		BallSize:     c.BallSize,
		BallSpeedX:   c.BallSpeed,
		BallSpeedsY:  append([]int(nil), c.BallSpeedsY...),
		WinningScore: c.PointsToWin,
		OverTicks:    overTicks,
	}
}
