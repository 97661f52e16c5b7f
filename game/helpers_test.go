package game

import (
	"log/slog"
	"testing"

	"github.com/plus3/shooter/ecs"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Rand = NewRand(1)
	cfg.Logger = slog.New(slog.DiscardHandler)
	cfg.NumDecorations = 0
	cfg.DetectContacts = false
	return cfg
}

// newTestWorld returns a world holding the player and gun at the origin.
func newTestWorld(configure ...func(*Config)) *World {
	cfg := testConfig()
	for _, fn := range configure {
		fn(&cfg)
	}
	w := NewWorld(&cfg)
	w.Player.Set(newPlayer(&cfg))
	w.Gun.Set(newGun(&cfg))
	return w
}

func newTestGame(t *testing.T, configure ...func(*Config)) (*Game, *ScriptedInput) {
	t.Helper()
	cfg := testConfig()
	for _, fn := range configure {
		fn(&cfg)
	}
	input := NewScriptedInput()
	g, err := NewGame(cfg, input)
	require.NoError(t, err)
	g.Start()
	return g, input
}

// runSystems runs one frame of the given systems against w, flushing commands.
func runSystems(w *World, dt float64, systems ...ecs.System[*World]) {
	scheduler := ecs.NewScheduler(w)
	for _, s := range systems {
		scheduler.Register(s)
	}
	w.beginFrame()
	scheduler.Once(dt)
}
