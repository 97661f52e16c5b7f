// Package game is a top-down arena shooter built on the ecs package. It has
// no rendering or platform input; frontends drive it through Input and Update.
package game

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/kamstrup/intmap"
	"github.com/plus3/shooter/ecs"
)

// compactThreshold is the free-slot share above which a table is compacted
// between frames.
const compactThreshold = 0.5

// Frame is the update frame every gameplay system receives.
type Frame = ecs.UpdateFrame[*World]

// World is the entity pool shared by all systems: one singleton per unique
// entity, one table per transient kind, plus the frame-global resources.
type World struct {
	Config *Config

	Player ecs.Singleton[Player]
	Gun    ecs.Singleton[Gun]

	Bullets     *ecs.Table[Bullet]
	Enemies     *ecs.Table[Enemy]
	Decorations *ecs.Table[Decoration]

	// Cursor is the cursor in world coordinates, absent when the pointer is
	// outside the viewport.
	Cursor ecs.Singleton[mgl64.Vec2]
	Camera Camera
	Health Health
	Hud    Hud
	Events Events

	// Compactions lists the tables renumbered at the start of this frame.
	// Ids of those kinds held outside the world must be translated.
	Compactions []Compaction

	pendingContacts []ContactEvent
}

// Compaction maps old slot indexes of one kind to new ones. Slots missing
// from Remap held no entity.
type Compaction struct {
	Kind  ecs.Kind
	Remap *intmap.Map[uint32, uint32]
}

// Translate returns the id after compaction, or false if id is of another
// kind or was not live.
func (c Compaction) Translate(id ecs.EntityId) (ecs.EntityId, bool) {
	if id.Kind() != c.Kind {
		return id, false
	}
	idx, ok := c.Remap.Get(id.Index())
	if !ok {
		return 0, false
	}
	return ecs.NewEntityId(c.Kind, idx), true
}

// NewWorld creates an empty world bound to cfg.
func NewWorld(cfg *Config) *World {
	return &World{
		Config:      cfg,
		Bullets:     ecs.NewTable[Bullet](KindBullet),
		Enemies:     ecs.NewTable[Enemy](KindEnemy),
		Decorations: ecs.NewTable[Decoration](KindDecoration),
		Camera:      NewCamera(WindowWidth, WindowHeight),
		Health:      Health{Value: cfg.PlayerHealth},
	}
}

// Delete removes an entity of any kind. Unknown or stale ids are ignored.
func (w *World) Delete(id ecs.EntityId) {
	switch id.Kind() {
	case KindPlayer:
		w.Player.Clear()
	case KindGun:
		w.Gun.Clear()
	case KindBullet:
		w.Bullets.Delete(id)
	case KindEnemy:
		w.Enemies.Delete(id)
	case KindDecoration:
		w.Decorations.Delete(id)
	}
}

// EntityCount returns the number of live entities across all kinds.
func (w *World) EntityCount() int {
	n := w.Bullets.Len() + w.Enemies.Len() + w.Decorations.Len()
	if w.Player.Exists() {
		n++
	}
	if w.Gun.Exists() {
		n++
	}
	return n
}

// Teardown despawns every game entity and drops pending events.
func (w *World) Teardown() {
	w.Player.Clear()
	w.Gun.Clear()
	w.Bullets.Clear()
	w.Enemies.Clear()
	w.Decorations.Clear()
	w.Cursor.Clear()
	w.Events.reset()
	w.pendingContacts = nil
}

// ReportContact records a player/enemy contact detected outside the systems.
// It is applied on the next frame.
func (w *World) ReportContact(enemy ecs.EntityId) {
	w.pendingContacts = append(w.pendingContacts, ContactEvent{Enemy: enemy})
}

// beginFrame compacts fragmented tables, translating queued contact ids and
// recording the remaps in Compactions, then publishes the queued contacts as
// this frame's events.
func (w *World) beginFrame() {
	w.Compactions = w.Compactions[:0]

	if w.Enemies.Fragmentation() > compactThreshold {
		c := Compaction{Kind: KindEnemy, Remap: w.Enemies.Compact()}
		w.Compactions = append(w.Compactions, c)

		kept := w.pendingContacts[:0]
		for _, contact := range w.pendingContacts {
			if id, ok := c.Translate(contact.Enemy); ok {
				contact.Enemy = id
				kept = append(kept, contact)
			}
		}
		w.pendingContacts = kept
	}
	if w.Bullets.Fragmentation() > compactThreshold {
		w.Compactions = append(w.Compactions, Compaction{Kind: KindBullet, Remap: w.Bullets.Compact()})
	}

	w.Events.reset()
	w.Events.Contacts = append(w.Events.Contacts, w.pendingContacts...)
	w.pendingContacts = w.pendingContacts[:0]
}

// InBounds reports whether p lies inside the world rectangle.
func (w *World) InBounds(p mgl64.Vec2) bool {
	return !outOfBounds(p, w.Config.WorldW, w.Config.WorldH)
}

func outOfBounds(p mgl64.Vec2, width, height float64) bool {
	return p.X() > width || p.X() < -width || p.Y() > height || p.Y() < -height
}

// ShotEvent is emitted when the gun fires.
type ShotEvent struct {
	Pos      mgl64.Vec2
	Rotation float64
}

// ContactEvent signals that an enemy touched the player.
type ContactEvent struct {
	Enemy ecs.EntityId
}

// HitEvent signals that a bullet struck an enemy.
type HitEvent struct {
	Bullet ecs.EntityId
	Enemy  ecs.EntityId
}

// KillEvent is emitted when a dead enemy is removed.
type KillEvent struct {
	Enemy     ecs.EntityId
	Archetype Archetype
	Pos       mgl64.Vec2
}

// Events collects what happened during the last frame. Frontends read it after
// Game.Update returns; it is cleared when the next frame begins.
type Events struct {
	Shots    []ShotEvent
	Contacts []ContactEvent
	Hits     []HitEvent
	Kills    []KillEvent
}

func (e *Events) reset() {
	e.Shots = e.Shots[:0]
	e.Contacts = e.Contacts[:0]
	e.Hits = e.Hits[:0]
	e.Kills = e.Kills[:0]
}
