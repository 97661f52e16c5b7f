package game

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/plus3/shooter/ecs"
)

//go:generate go tool stringer -type=Phase -trimprefix=Phase

// Phase is the coarse game state. Systems only run InGame.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseGameInit
	PhaseInGame
)

// Game owns a world and the fixed system order that updates it.
type Game struct {
	World *World

	scheduler *ecs.Scheduler[*World]
	spawner   *EnemySpawnSystem
	phase     Phase
	session   uuid.UUID
	logger    *slog.Logger
}

// NewGame validates cfg and builds a game in the Loading phase. Missing Rand
// and Logger fields are filled with defaults.
func NewGame(cfg Config, input Input) (*Game, error) {
	if input == nil {
		return nil, fmt.Errorf("new game: %w", ErrNoInput)
	}
	if cfg.Rand == nil {
		cfg.Rand = DefaultConfig().Rand
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	session := uuid.New()
	world := NewWorld(&cfg)
	g := &Game{
		World:     world,
		scheduler: ecs.NewScheduler(world),
		spawner:   NewEnemySpawnSystem(&cfg),
		session:   session,
		logger:    cfg.Logger.With("session", session.String()),
	}

	g.scheduler.Register(&CursorSystem{Input: input})
	g.scheduler.Register(&PlayerControlSystem{Input: input})
	g.scheduler.Register(&GunAimSystem{})
	g.scheduler.Register(&GunFireSystem{Input: input})
	g.scheduler.Register(&BulletSystem{})
	g.scheduler.Register(g.spawner)
	g.scheduler.Register(&EnemyChaseSystem{})
	g.scheduler.Register(&ContactSystem{})
	g.scheduler.Register(&DamageSystem{})
	g.scheduler.Register(&EnemyDespawnSystem{})
	g.scheduler.Register(&AnimationSystem{})
	g.scheduler.Register(&SpriteFlipSystem{})
	g.scheduler.Register(&CameraFollowSystem{})
	g.scheduler.Register(&HudSystem{})

	return g, nil
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Session identifies this game instance in logs.
func (g *Game) Session() uuid.UUID {
	return g.session
}

// Logger returns the session-scoped logger.
func (g *Game) Logger() *slog.Logger {
	return g.logger
}

// AddSystem appends a system that runs after the built-in ones, such as a
// debug overlay.
func (g *Game) AddSystem(s ecs.System[*World]) {
	g.scheduler.Register(s)
}

// Stats returns per-system timings.
func (g *Game) Stats() *ecs.SchedulerStats {
	return g.scheduler.GetStats()
}

// Start moves the game through loading and world setup into play. It is a
// no-op once the game is running.
func (g *Game) Start() {
	if g.phase == PhaseLoading {
		g.setPhase(PhaseGameInit)
	}
	if g.phase == PhaseGameInit {
		g.initWorld()
		g.setPhase(PhaseInGame)
	}
}

// Update advances the game by dt seconds.
func (g *Game) Update(dt float64) {
	if g.phase != PhaseInGame {
		g.Start()
	}

	g.World.beginFrame()
	g.scheduler.Once(dt)
}

// Restart tears down every game entity and sets up a fresh world.
func (g *Game) Restart() {
	g.World.Teardown()
	g.spawner.timer.Reset()
	g.logger.Info("game restarted", "frames", g.scheduler.GetStats().Frames)
	g.setPhase(PhaseGameInit)
	g.Start()
}

func (g *Game) setPhase(next Phase) {
	g.logger.Info("phase changed", "from", g.phase, "to", next)
	g.phase = next
}

func (g *Game) initWorld() {
	w := g.World
	cfg := w.Config

	w.Player.Set(newPlayer(cfg))
	w.Gun.Set(newGun(cfg))
	w.Health.Value = cfg.PlayerHealth
	w.Hud = Hud{}
	w.Camera.Pos = mgl64.Vec2{}

	for range cfg.NumDecorations {
		pos := randomWorldPos(cfg)
		w.Decorations.Insert(Decoration{
			Transform: Transform{Pos: pos.Vec3(1), Scale: SpriteScaleFactor},
			Sprite:    Sprite{Sheet: SheetDecoration, Index: cfg.Rand.IntN(2)},
		})
	}

	g.logger.Debug("world initialized",
		"decorations", w.Decorations.Len(),
		"health", w.Health.Value,
	)
}

func newPlayer(cfg *Config) Player {
	cooldown := ecs.NewTimer(cfg.ContactCooldown, ecs.TimerOnce)
	cooldown.Tick(cfg.ContactCooldown)

	return Player{
		Transform:       Transform{Pos: mgl64.Vec3{0, 0, 3}, Scale: SpriteScaleFactor},
		Sprite:          Sprite{Sheet: SheetPlayer},
		State:           Idle,
		Animation:       newAnimation(cfg.AnimationInterval),
		ContactCooldown: cooldown,
	}
}
