package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"

	"github.com/plus3/shooter/game"
	"github.com/plus3/shooter/tui"
)

func main() {
	seed := flag.Uint64("seed", 0, "Random seed (0 picks one from the clock).")
	smoothing := flag.Float64("smoothing", 1.0, "Camera follow factor in (0, 1]; 1 snaps onto the player.")
	maxEnemies := flag.Int("max-enemies", 50, "Enemy cap; the terminal gets crowded quickly.")
	contacts := flag.Bool("contacts", true, "Enable built-in contact and hit detection.")
	logFile := flag.String("log", "", "Write logs to this file; the terminal is busy drawing.")
	verbose := flag.Bool("v", false, "Log at debug level.")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.DiscardHandler)
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			slog.Error("open log file", "err", err)
			os.Exit(1)
		}
		defer f.Close()
		logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	}

	cfg := game.DefaultConfig()
	if *seed != 0 {
		cfg.Rand = game.NewRand(*seed)
	}
	cfg.Logger = logger
	cfg.CameraSmoothing = *smoothing
	cfg.MaxEnemyCount = *maxEnemies
	cfg.DetectContacts = *contacts

	input := tui.NewInput()
	g, err := game.NewGame(cfg, input)
	if err != nil {
		logger.Error("startup failed", "err", err)
		os.Exit(1)
	}

	screen, err := tui.Open()
	if err != nil {
		logger.Error("terminal unavailable", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = tui.Run(ctx, screen, g, input)
	stop()
	screen.Fini()

	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("game exited", "err", err)
		os.Exit(1)
	}
}
