package game

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameErrors(t *testing.T) {
	_, err := NewGame(testConfig(), nil)
	assert.True(t, errors.Is(err, ErrNoInput))

	cfg := testConfig()
	cfg.CameraSmoothing = 0
	_, err = NewGame(cfg, NewScriptedInput())
	assert.ErrorIs(t, err, ErrInvalidConfig)

	cfg = testConfig()
	cfg.MinZoom, cfg.MaxZoom = 4, 2
	_, err = NewGame(cfg, NewScriptedInput())
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNewGameFillsDefaults(t *testing.T) {
	cfg := testConfig()
	cfg.Rand = nil
	cfg.Logger = nil

	g, err := NewGame(cfg, NewScriptedInput())
	require.NoError(t, err)
	assert.NotNil(t, g.World.Config.Rand)
	assert.NotNil(t, g.Logger())
	assert.Equal(t, PhaseLoading, g.Phase())
}

func TestGameStart(t *testing.T) {
	g, _ := newTestGame(t, func(c *Config) { c.NumDecorations = 50 })
	w := g.World

	assert.Equal(t, PhaseInGame, g.Phase())
	require.True(t, w.Player.Exists())
	require.True(t, w.Gun.Exists())
	assert.Equal(t, mgl64.Vec3{0, 0, 3}, w.Player.Get().Transform.Pos)
	assert.Equal(t, PlayerHealth, w.Health.Value)
	assert.Equal(t, 50, w.Decorations.Len())

	for d := range w.Decorations.Values() {
		assert.Equal(t, 1.0, d.Transform.Pos.Z())
		assert.Contains(t, []int{0, 1}, d.Sprite.Index)
		assert.True(t, w.InBounds(d.Transform.Pos2()))
	}

	assert.Equal(t, 52, w.EntityCount())
}

func TestGameUpdateStartsTheGame(t *testing.T) {
	cfg := testConfig()
	g, err := NewGame(cfg, NewScriptedInput())
	require.NoError(t, err)

	g.Update(0.016)
	assert.Equal(t, PhaseInGame, g.Phase())
	assert.True(t, g.World.Player.Exists())

	stats := g.Stats()
	assert.Equal(t, int64(1), stats.Frames)
	assert.Equal(t, 14, stats.SystemCount)
	assert.Equal(t, "CursorSystem", stats.Systems[0].Name)
	assert.Equal(t, "HudSystem", stats.Systems[len(stats.Systems)-1].Name)
}

func TestGameRestart(t *testing.T) {
	g, input := newTestGame(t, func(c *Config) { c.NumDecorations = 5 })
	w := g.World

	input.Press(ActionRight, ActionFire)
	for range 120 {
		g.Update(1.0 / 60)
		input.Step()
	}
	require.Positive(t, w.Enemies.Len())
	require.Positive(t, w.Bullets.Len())
	w.Health.Value = 3

	g.Restart()

	assert.Equal(t, PhaseInGame, g.Phase())
	assert.Equal(t, 0, w.Enemies.Len())
	assert.Equal(t, 0, w.Bullets.Len())
	assert.Equal(t, 5, w.Decorations.Len())
	assert.Equal(t, PlayerHealth, w.Health.Value)
	assert.Equal(t, mgl64.Vec3{0, 0, 3}, w.Player.Get().Transform.Pos)

	// The spawn timer restarts with the world.
	g.Update(EnemySpawnInterval / 2)
	assert.Equal(t, 0, w.Enemies.Len())
}

func TestGameHudAfterFrames(t *testing.T) {
	g, _ := newTestGame(t)

	for range 90 {
		g.Update(1.0 / 60)
	}

	assert.InDelta(t, 60, g.World.Hud.FPS, 1e-6)
	assert.Equal(t, EnemySpawnBatch, g.World.Hud.Enemies)
	assert.Contains(t, g.World.Hud.Text, "Health: 100")
}

func TestGameWithBot(t *testing.T) {
	g, input := newTestGame(t, func(c *Config) {
		c.DetectContacts = true
		c.MaxEnemyCount = 40
	})
	bot := NewBot(input)

	shots, kills := 0, 0
	for range 60 * 20 {
		bot.Drive(g.World, 1.0/60)
		g.Update(1.0 / 60)

		shots += len(g.World.Events.Shots)
		kills += len(g.World.Events.Kills)
		assert.LessOrEqual(t, g.World.Enemies.Len(), 40)
		assert.True(t, g.World.InBounds(g.World.Player.Get().Transform.Pos2()))
	}

	assert.Positive(t, shots)
	player := g.World.Player.Get().Transform.Pos2()
	assert.InDelta(t, player.X(), g.World.Camera.Pos.X(), 1e-9)
	assert.InDelta(t, player.Y(), g.World.Camera.Pos.Y(), 1e-9)
	t.Logf("bot fired %d shots and killed %d enemies", shots, kills)
}
