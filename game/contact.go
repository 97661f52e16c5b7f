package game

// ContactSystem finds player/enemy overlaps and bullet/enemy hits and records
// them as events. It does nothing when built-in detection is disabled; contacts
// then only arrive through World.ReportContact.
type ContactSystem struct{}

func (s *ContactSystem) Execute(frame *Frame) {
	w := frame.World
	cfg := w.Config
	if !cfg.DetectContacts {
		return
	}

	if player := w.Player.Get(); player != nil {
		player.ContactCooldown.Tick(frame.DeltaTime)
		if player.ContactCooldown.Finished() {
			origin := player.Transform.Pos2()
			for id, enemy := range w.Enemies.Iter() {
				if enemy.Transform.Pos2().Sub(origin).Len() <= cfg.ContactRadius {
					w.Events.Contacts = append(w.Events.Contacts, ContactEvent{Enemy: id})
					player.ContactCooldown.Reset()
					break
				}
			}
		}
	}

	for bulletId, bullet := range w.Bullets.Iter() {
		if bullet.spent(w) {
			continue
		}
		pos := bullet.Transform.Pos2()
		for enemyId, enemy := range w.Enemies.Iter() {
			if enemy.Health <= 0 || enemy.Transform.Pos2().Sub(pos).Len() > cfg.HitRadius {
				continue
			}
			w.Events.Hits = append(w.Events.Hits, HitEvent{Bullet: bulletId, Enemy: enemyId})
			frame.Commands.Delete(bulletId)
			break
		}
	}
}

// DamageSystem applies this frame's contacts to the player's health and hits
// to enemy health.
type DamageSystem struct{}

func (s *DamageSystem) Execute(frame *Frame) {
	w := frame.World
	cfg := w.Config

	for range w.Events.Contacts {
		w.Health.Value -= cfg.EnemyDamage
	}

	for _, hit := range w.Events.Hits {
		if enemy := w.Enemies.Get(hit.Enemy); enemy != nil {
			enemy.Health -= cfg.BulletDamage
		}
	}
}
