package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/shooter/ecs"
)

// Sprite indices on the resource sheet.
const (
	resourceGun    = 0
	resourceBullet = 1
)

// GunAimSystem rotates the gun toward the cursor and keeps it on a circle
// around the player.
type GunAimSystem struct{}

func (s *GunAimSystem) Execute(frame *Frame) {
	w := frame.World

	player, gun := w.Player.Get(), w.Gun.Get()
	if player == nil || gun == nil {
		return
	}

	origin := player.Transform.Pos2()
	target := origin
	if cursor := w.Cursor.Get(); cursor != nil {
		target = *cursor
	}

	angle := aimAngle(origin, target)
	gun.Transform.Rotation = angle
	offset := gunOffset(angle, w.Config.GunOffset)
	gun.Transform.Pos = mgl64.Vec3{
		origin.X() + offset.X(),
		origin.Y() + offset.Y(),
		gun.Transform.Pos.Z(),
	}
}

// aimAngle returns the rotation that points a sprite drawn facing +y from
// origin toward target. A zero-length aim yields -π/2.
func aimAngle(origin, target mgl64.Vec2) float64 {
	d := target.Sub(origin)
	return math.Atan2(d.Y(), d.X()) - math.Pi/2
}

// gunOffset is the displacement of the gun from the player for a rotation.
func gunOffset(angle, distance float64) mgl64.Vec2 {
	return mgl64.Vec2{-distance * math.Sin(angle), distance * math.Cos(angle)}
}

// GunFireSystem spawns bullets while the fire action is held, limited by the
// gun cooldown. A fresh press always fires.
type GunFireSystem struct {
	Input Input
}

func (s *GunFireSystem) Execute(frame *Frame) {
	w := frame.World

	gun := w.Gun.Get()
	if gun == nil {
		return
	}

	gun.Cooldown.Tick(frame.DeltaTime)
	if !s.Input.JustPressed(ActionFire) &&
		!(s.Input.Pressed(ActionFire) && gun.Cooldown.Finished()) {
		return
	}
	gun.Cooldown.Reset()

	bullet := newBullet(gun.Transform, w.Config)
	frame.Commands.Spawn(func(w *World) {
		w.Bullets.Insert(bullet)
	})
	w.Events.Shots = append(w.Events.Shots, ShotEvent{
		Pos:      gun.Transform.Pos2(),
		Rotation: gun.Transform.Rotation,
	})
}

func newGun(cfg *Config) Gun {
	return Gun{
		Transform: Transform{Pos: mgl64.Vec3{0, 0, 3}, Scale: SpriteScaleFactor},
		Sprite:    Sprite{Sheet: SheetResource, Index: resourceGun},
		Cooldown:  ecs.NewTimer(cfg.GunFireInterval, ecs.TimerOnce),
	}
}

func newBullet(from Transform, cfg *Config) Bullet {
	heading := from.Rotation + math.Pi/2
	velocity := mgl64.Vec3{math.Cos(heading), math.Sin(heading), 0}.Normalize().Mul(cfg.BulletSpeed)
	return Bullet{
		Transform: from,
		Sprite:    Sprite{Sheet: SheetResource, Index: resourceBullet},
		Velocity:  velocity,
		Lifetime:  ecs.NewTimer(cfg.BulletLifetime, ecs.TimerOnce),
	}
}
