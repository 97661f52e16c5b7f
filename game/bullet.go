package game

// BulletSystem moves bullets and removes the ones that expired or left the
// world.
type BulletSystem struct{}

func (s *BulletSystem) Execute(frame *Frame) {
	w := frame.World
	dt := frame.DeltaTime

	for id, bullet := range w.Bullets.Iter() {
		bullet.Lifetime.Tick(dt)
		bullet.Transform.Pos = bullet.Transform.Pos.Add(bullet.Velocity.Mul(dt))

		if bullet.spent(w) {
			frame.Commands.Delete(id)
		}
	}
}

// spent reports whether the bullet expired or left the world. A spent bullet
// is already queued for removal and hits nothing.
func (b *Bullet) spent(w *World) bool {
	return b.Lifetime.Finished() || !w.InBounds(b.Transform.Pos2())
}
