package game

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/shooter/ecs"
)

// EnemySpawnSystem adds a batch of enemies every spawn interval until the
// population cap is reached.
type EnemySpawnSystem struct {
	timer ecs.Timer
}

func NewEnemySpawnSystem(cfg *Config) *EnemySpawnSystem {
	return &EnemySpawnSystem{
		timer: ecs.NewTimer(cfg.EnemySpawnInterval, ecs.TimerOnce),
	}
}

func (s *EnemySpawnSystem) Execute(frame *Frame) {
	w := frame.World
	cfg := w.Config

	s.timer.Tick(frame.DeltaTime)
	if !s.timer.Finished() {
		return
	}
	defer s.timer.Reset()

	count := w.Enemies.Len()
	if count >= cfg.MaxEnemyCount {
		return
	}

	batch := min(cfg.MaxEnemyCount-count, cfg.EnemySpawnBatch)
	archetype := Archetype(cfg.Rand.IntN(archetypeCount))
	enemies := make([]Enemy, batch)
	for i := range enemies {
		pos := randomWorldPos(cfg)
		enemies[i] = newEnemy(archetype, mgl64.Vec3{pos.X(), pos.Y(), 2}, cfg)
	}

	frame.Commands.Spawn(func(w *World) {
		for _, e := range enemies {
			w.Enemies.Insert(e)
		}
	})
}

func newEnemy(archetype Archetype, pos mgl64.Vec3, cfg *Config) Enemy {
	return Enemy{
		Transform: Transform{Pos: pos, Scale: SpriteScaleFactor},
		Sprite:    Sprite{Sheet: archetype.Sheet()},
		Health:    cfg.EnemyHealth,
		State:     Running,
		Archetype: archetype,
		Animation: newAnimation(cfg.AnimationInterval),
	}
}

// randomWorldPos returns a uniform position in [-W, W) x [-H, H).
func randomWorldPos(cfg *Config) mgl64.Vec2 {
	return mgl64.Vec2{
		(cfg.Rand.Float64()*2 - 1) * cfg.WorldW,
		(cfg.Rand.Float64()*2 - 1) * cfg.WorldH,
	}
}

// EnemyChaseSystem walks every enemy straight toward the player.
type EnemyChaseSystem struct{}

func (s *EnemyChaseSystem) Execute(frame *Frame) {
	w := frame.World

	player := w.Player.Get()
	if player == nil {
		return
	}
	target := player.Transform.Pos2()
	step := w.Config.EnemySpeed * frame.DeltaTime

	for enemy := range w.Enemies.Values() {
		dir := target.Sub(enemy.Transform.Pos2()).Normalize()
		if !finite(dir) {
			enemy.State = Idle
			continue
		}
		enemy.Transform.Pos = enemy.Transform.Pos.Add(dir.Mul(step).Vec3(0))
		enemy.State = Running
	}
}

// EnemyDespawnSystem removes enemies whose health ran out.
type EnemyDespawnSystem struct{}

func (s *EnemyDespawnSystem) Execute(frame *Frame) {
	w := frame.World

	for id, enemy := range w.Enemies.Iter() {
		if enemy.Health > 0 {
			continue
		}
		frame.Commands.Delete(id)
		w.Events.Kills = append(w.Events.Kills, KillEvent{
			Enemy:     id,
			Archetype: enemy.Archetype,
			Pos:       enemy.Transform.Pos2(),
		})
	}
}
