package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/diegok/pong/internal/app"
	"github.com/diegok/pong/internal/audio"
	"github.com/diegok/pong/internal/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		return 1
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: pong needs an interactive terminal")
		return 1
	}

	logger, closeLog, err := openLog(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()

	// Sound is optional: the game plays silently without a device
	if !cfg.Mute {
		if err := audio.Init(); err != nil {
			logger.Printf("component=audio action=init_failed err=%v", err)
		}
	}
	defer audio.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.NewApp(cfg, logger).Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func openLog(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return log.New(f, "", log.LstdFlags|log.Lmicroseconds), func() { f.Close() }, nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  pong [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --points <n>        Points to win: 3, 5 or 7 (default: 5)")
	fmt.Fprintln(os.Stderr, "  --fps <n>           Ticks per second (default: 60)")
	fmt.Fprintln(os.Stderr, "  --seed <n>          Random seed for a reproducible session")
	fmt.Fprintln(os.Stderr, "  --over-delay <d>    How long the winner is shown (default: 1s)")
	fmt.Fprintln(os.Stderr, "  --mute              Disable sound")
	fmt.Fprintln(os.Stderr, "  --log <file>        Write logs to a file")
	fmt.Fprintln(os.Stderr, "  --config <file>     Load settings from a YAML file")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Controls:")
	fmt.Fprintln(os.Stderr, "  W/S or arrow keys   Move your paddle")
	fmt.Fprintln(os.Stderr, "  3, 5, 7             Pick the next match length after a game")
	fmt.Fprintln(os.Stderr, "  Esc or q            Quit")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  pong --points 7")
	fmt.Fprintln(os.Stderr, "  pong --config pong.yaml --log pong.log")
}
