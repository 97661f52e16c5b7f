package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/plus3/shooter/game"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total wall-clock duration the bench should run for.")
	frames := flag.Int64("frames", 0, "Stop after this many frames (0 runs for the full duration).")
	tps := flag.Int("tps", 60, "Simulated ticks per second; each frame advances the world by 1/tps.")
	seed := flag.Uint64("seed", 1, "Random seed for spawns and decorations.")
	maxEnemies := flag.Int("max-enemies", game.MaxEnemyCount, "Enemy cap.")
	contacts := flag.Bool("contacts", true, "Enable built-in contact and hit detection.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	verbose := flag.Bool("v", false, "Log at debug level.")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(logger, options{
		duration:       *duration,
		frames:         *frames,
		tps:            *tps,
		seed:           *seed,
		maxEnemies:     *maxEnemies,
		contacts:       *contacts,
		gcPauseMetrics: *gcPauseMetrics,
	}); err != nil {
		logger.Error("bench failed", "err", err)
		os.Exit(1)
	}
}

type options struct {
	duration       time.Duration
	frames         int64
	tps            int
	seed           uint64
	maxEnemies     int
	contacts       bool
	gcPauseMetrics bool
}

func run(logger *slog.Logger, opts options) error {
	if opts.tps <= 0 {
		return fmt.Errorf("tps must be positive, got %d", opts.tps)
	}

	cfg := game.DefaultConfig()
	cfg.Rand = game.NewRand(opts.seed)
	cfg.Logger = logger
	cfg.MaxEnemyCount = opts.maxEnemies
	cfg.DetectContacts = opts.contacts
	// The bot never dies; the bench measures a full world, not a lost game.
	cfg.EnemyDamage = 0

	input := game.NewScriptedInput()
	g, err := game.NewGame(cfg, input)
	if err != nil {
		return err
	}
	bot := game.NewBot(input)

	report, err := bench(g, bot, opts)
	if err != nil {
		return err
	}

	fmt.Println("\n\n--- Shooter Bench Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		return fmt.Errorf("generate report: %w", err)
	}
	fmt.Println("--- End of Report ---")
	return nil
}

func bench(g *game.Game, bot *game.Bot, opts options) (*Report, error) {
	dt := 1 / float64(opts.tps)
	report := &Report{
		Session:        g.Session().String(),
		Duration:       opts.duration,
		TPS:            opts.tps,
		Seed:           opts.seed,
		MaxEnemies:     opts.maxEnemies,
		GCPauseMetrics: opts.gcPauseMetrics,
	}

	g.Logger().Info("running bench", "duration", opts.duration, "frames", opts.frames)
	ctx, cancel := context.WithTimeout(context.Background(), opts.duration)
	defer cancel()

	g.Start()
	runtime.ReadMemStats(&report.MemStatsStart)
	startTime := time.Now()

Loop:
	for opts.frames == 0 || report.TotalUpdates < opts.frames {
		select {
		case <-ctx.Done():
			break Loop
		default:
		}

		bot.Drive(g.World, dt)

		updateStart := time.Now()
		g.Update(dt)
		report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
		report.TotalUpdates++

		ev := &g.World.Events
		report.Shots += len(ev.Shots)
		report.Hits += len(ev.Hits)
		report.Kills += len(ev.Kills)
		report.Contacts += len(ev.Contacts)
	}

	report.TotalTime = time.Since(startTime)
	report.SimulatedTime = time.Duration(float64(report.TotalUpdates) * dt * float64(time.Second))
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	report.Systems = g.Stats().Systems
	report.Enemies = g.World.Enemies.Len()
	report.Bullets = g.World.Bullets.Len()
	report.Entities = g.World.EntityCount()

	g.Logger().Info("bench finished", "updates", report.TotalUpdates, "kills", report.Kills)
	return report, nil
}
