package game

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/shooter/ecs"
)

//go:generate go tool stringer -type=MovementState
//go:generate go tool stringer -type=Archetype -trimprefix=Archetype

const (
	KindPlayer ecs.Kind = iota + 1
	KindGun
	KindBullet
	KindEnemy
	KindDecoration
)

var (
	PlayerId = ecs.NewEntityId(KindPlayer, 0)
	GunId    = ecs.NewEntityId(KindGun, 0)
)

type Transform struct {
	Pos      mgl64.Vec3
	Rotation float64
	Scale    float64
}

// Pos2 drops the draw-order coordinate.
func (t *Transform) Pos2() mgl64.Vec2 {
	return t.Pos.Vec2()
}

// Sheet selects a sprite sheet. The first six are entity sheets sharing one layout.
type Sheet int

const (
	SheetPlayer Sheet = iota
	SheetGrub
	SheetSkele
	SheetGob
	SheetDevil
	SheetDemon
	SheetResource
	SheetDecoration
)

type Sprite struct {
	Sheet Sheet
	Index int
	FlipX bool
}

type MovementState int

const (
	Idle MovementState = iota
	Running
)

// FrameBase returns the first sprite frame of the band used for this state.
func (s MovementState) FrameBase() int {
	if s == Running {
		return 4
	}
	return 0
}

// Archetype is a cosmetic enemy kind; it only selects a sprite sheet.
type Archetype int

const (
	ArchetypeGrub Archetype = iota
	ArchetypeSkele
	ArchetypeGob
	ArchetypeDevil
	ArchetypeDemon

	archetypeCount = 5
)

func (a Archetype) Sheet() Sheet {
	return SheetGrub + Sheet(a)
}

type Animation struct {
	Timer ecs.Timer
}

func newAnimation(interval float64) Animation {
	return Animation{Timer: ecs.NewTimer(interval, ecs.TimerRepeating)}
}

type Player struct {
	Transform Transform
	Sprite    Sprite
	State     MovementState
	Animation Animation
	// ContactCooldown gates repeated contact damage.
	ContactCooldown ecs.Timer
}

type Gun struct {
	Transform Transform
	Sprite    Sprite
	Cooldown  ecs.Timer
}

type Bullet struct {
	Transform Transform
	Sprite    Sprite
	Velocity  mgl64.Vec3
	Lifetime  ecs.Timer
}

type Enemy struct {
	Transform Transform
	Sprite    Sprite
	Health    float64
	State     MovementState
	Archetype Archetype
	Animation Animation
}

type Decoration struct {
	Transform Transform
	Sprite    Sprite
}

// Health is the player's hit points, kept outside the player record so it
// survives the player entity being absent.
type Health struct {
	Value float64
}
