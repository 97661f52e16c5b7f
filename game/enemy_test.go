package game

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnemySpawnCap(t *testing.T) {
	w := newTestWorld(func(c *Config) {
		c.MaxEnemyCount = 25
	})
	spawner := NewEnemySpawnSystem(w.Config)

	var counts []int
	for range 5 {
		runSystems(w, EnemySpawnInterval, spawner)
		counts = append(counts, w.Enemies.Len())
		assert.LessOrEqual(t, w.Enemies.Len(), 25)
	}

	assert.Equal(t, []int{10, 20, 25, 25, 25}, counts)
}

func TestEnemySpawnBatch(t *testing.T) {
	w := newTestWorld()
	spawner := NewEnemySpawnSystem(w.Config)

	runSystems(w, 0.5, spawner)
	assert.Equal(t, 0, w.Enemies.Len(), "nothing before the interval")

	runSystems(w, 0.5, spawner)
	require.Equal(t, EnemySpawnBatch, w.Enemies.Len())

	var archetype Archetype
	first := true
	for e := range w.Enemies.Values() {
		if first {
			archetype, first = e.Archetype, false
		}
		assert.Equal(t, archetype, e.Archetype, "one archetype per batch")
		assert.Equal(t, archetype.Sheet(), e.Sprite.Sheet)
		assert.Equal(t, EnemyHealth, e.Health)
		assert.Equal(t, Running, e.State)
		assert.True(t, w.InBounds(e.Transform.Pos2()))
		assert.Equal(t, 2.0, e.Transform.Pos.Z())
	}
}

func TestEnemySpawnTimerResetsAtCap(t *testing.T) {
	const dt = 0.25
	w := newTestWorld(func(c *Config) {
		c.MaxEnemyCount = 10
	})
	spawner := NewEnemySpawnSystem(w.Config)

	for range 4 {
		runSystems(w, dt, spawner)
	}
	require.Equal(t, 10, w.Enemies.Len())

	// At the cap on the next expiry; the timer still restarts.
	for range 4 {
		runSystems(w, dt, spawner)
	}
	require.Equal(t, 10, w.Enemies.Len())

	w.Enemies.Clear()
	for range 3 {
		runSystems(w, dt, spawner)
		assert.Equal(t, 0, w.Enemies.Len())
	}
	runSystems(w, dt, spawner)
	assert.Equal(t, 10, w.Enemies.Len())
}

func TestEnemySpawnIsReproducible(t *testing.T) {
	positions := func() []mgl64.Vec3 {
		w := newTestWorld()
		spawner := NewEnemySpawnSystem(w.Config)
		runSystems(w, EnemySpawnInterval, spawner)

		var out []mgl64.Vec3
		for e := range w.Enemies.Values() {
			out = append(out, e.Transform.Pos)
		}
		return out
	}

	assert.Equal(t, positions(), positions())
}

func TestEnemyChase(t *testing.T) {
	w := newTestWorld()
	w.Player.Get().Transform.Pos = mgl64.Vec3{0, 0, 3}

	right := w.Enemies.Insert(newEnemy(ArchetypeGob, mgl64.Vec3{100, 0, 2}, w.Config))
	diag := w.Enemies.Insert(newEnemy(ArchetypeGob, mgl64.Vec3{-300, -400, 2}, w.Config))

	runSystems(w, 0.5, &EnemyChaseSystem{})

	assert.InDelta(t, 50, w.Enemies.Get(right).Transform.Pos.X(), 1e-9)
	assert.InDelta(t, 0, w.Enemies.Get(right).Transform.Pos.Y(), 1e-9)

	pos := w.Enemies.Get(diag).Transform.Pos
	assert.InDelta(t, -300+30, pos.X(), 1e-9)
	assert.InDelta(t, -400+40, pos.Y(), 1e-9)
	assert.Equal(t, 2.0, pos.Z())
	assert.Equal(t, Running, w.Enemies.Get(diag).State)
}

func TestEnemyChaseOnTopOfPlayer(t *testing.T) {
	w := newTestWorld()
	w.Player.Get().Transform.Pos = mgl64.Vec3{7, 7, 3}
	id := w.Enemies.Insert(newEnemy(ArchetypeGrub, mgl64.Vec3{7, 7, 2}, w.Config))

	runSystems(w, 0.5, &EnemyChaseSystem{})

	e := w.Enemies.Get(id)
	assert.False(t, math.IsNaN(e.Transform.Pos.X()) || math.IsNaN(e.Transform.Pos.Y()))
	assert.Equal(t, mgl64.Vec3{7, 7, 2}, e.Transform.Pos)
	assert.Equal(t, Idle, e.State)
}

func TestEnemyChaseWithoutPlayer(t *testing.T) {
	w := newTestWorld()
	w.Player.Clear()
	id := w.Enemies.Insert(newEnemy(ArchetypeGrub, mgl64.Vec3{7, 7, 2}, w.Config))

	runSystems(w, 0.5, &EnemyChaseSystem{})
	assert.Equal(t, mgl64.Vec3{7, 7, 2}, w.Enemies.Get(id).Transform.Pos)
}

func TestEnemyDespawn(t *testing.T) {
	w := newTestWorld()
	dead := w.Enemies.Insert(newEnemy(ArchetypeDevil, mgl64.Vec3{1, 2, 2}, w.Config))
	alive := w.Enemies.Insert(newEnemy(ArchetypeDevil, mgl64.Vec3{3, 4, 2}, w.Config))
	w.Enemies.Get(dead).Health = 0

	runSystems(w, 0.016, &EnemyDespawnSystem{})

	assert.False(t, w.Enemies.Has(dead))
	assert.True(t, w.Enemies.Has(alive))
	require.Len(t, w.Events.Kills, 1)
	assert.Equal(t, KillEvent{Enemy: dead, Archetype: ArchetypeDevil, Pos: mgl64.Vec2{1, 2}}, w.Events.Kills[0])
}

func TestArchetypeString(t *testing.T) {
	assert.Equal(t, "Skele", ArchetypeSkele.String())
	assert.Equal(t, "Demon", ArchetypeDemon.String())
	assert.Equal(t, "Archetype(9)", Archetype(9).String())
	assert.Equal(t, SheetDemon, ArchetypeDemon.Sheet())
}
