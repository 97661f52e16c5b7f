package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/plus3/shooter/audio"
	"github.com/plus3/shooter/game"
	"github.com/plus3/shooter/view"
)

func main() {
	seed := flag.Uint64("seed", 0, "Random seed (0 picks one from the clock).")
	smoothing := flag.Float64("smoothing", 1.0, "Camera follow factor in (0, 1]; 1 snaps onto the player.")
	layout := flag.String("layout", "qwerty", "Movement key layout: qwerty or colemak.")
	debugUI := flag.Bool("debugui", false, "Show the ImGui debug windows (toggle with F1).")
	sound := flag.Bool("sound", true, "Play sound effects.")
	volume := flag.Float64("volume", 0.5, "Sound effect volume in [0, 1].")
	contacts := flag.Bool("contacts", true, "Enable built-in contact and hit detection.")
	bounds := flag.Bool("bounds", false, "Draw the world boundary.")
	verbose := flag.Bool("v", false, "Log at debug level.")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	keys, err := view.ParseLayout(*layout)
	if err != nil {
		logger.Error("bad flag", "err", err)
		os.Exit(2)
	}

	cfg := game.DefaultConfig()
	if *seed != 0 {
		cfg.Rand = game.NewRand(*seed)
	}
	cfg.Logger = logger
	cfg.CameraSmoothing = *smoothing
	cfg.DetectContacts = *contacts

	opts := view.Options{
		Layout:     keys,
		DebugUI:    *debugUI,
		ShowBounds: *bounds,
	}
	if *sound {
		player, err := audio.New(*volume, logger)
		if err != nil {
			logger.Warn("sound disabled", "err", err)
		}
		defer player.Close()
		opts.Sound = player
	}

	app, err := view.NewApp(cfg, opts)
	if err != nil {
		logger.Error("startup failed", "err", err)
		os.Exit(1)
	}
	app.Game().Logger().Info("starting", "layout", keys, "debugui", *debugUI, "sound", *sound)

	if err := app.Run(); err != nil {
		app.Game().Logger().Error("game exited", "err", err)
		os.Exit(1)
	}
}
