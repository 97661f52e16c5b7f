package view

import (
	"fmt"

	"github.com/plus3/shooter/ecs/debugui"
	"github.com/plus3/shooter/game"
)

// EntityRows lists every live entity of w for the entity browser.
func EntityRows(w *game.World) []debugui.EntityRow {
	rows := make([]debugui.EntityRow, 0, w.EntityCount())

	if p := w.Player.Get(); p != nil {
		rows = append(rows, debugui.EntityRow{
			ID:      game.PlayerId,
			Kind:    "Player",
			Summary: fmt.Sprintf("%s hp=%g", p.State, w.Health.Value),
			Record:  p,
		})
	}
	if g := w.Gun.Get(); g != nil {
		rows = append(rows, debugui.EntityRow{
			ID:      game.GunId,
			Kind:    "Gun",
			Summary: fmt.Sprintf("rot=%.2f", g.Transform.Rotation),
			Record:  g,
		})
	}
	for id, e := range w.Enemies.Iter() {
		rows = append(rows, debugui.EntityRow{
			ID:      id,
			Kind:    "Enemy",
			Summary: fmt.Sprintf("%s %s hp=%g", e.Archetype, e.State, e.Health),
			Record:  e,
		})
	}
	for id, b := range w.Bullets.Iter() {
		rows = append(rows, debugui.EntityRow{
			ID:      id,
			Kind:    "Bullet",
			Summary: fmt.Sprintf("ttl=%.2f", b.Lifetime.Remaining()),
			Record:  b,
		})
	}
	for id, d := range w.Decorations.Iter() {
		rows = append(rows, debugui.EntityRow{ID: id, Kind: "Decoration", Record: d})
	}

	return rows
}

func tableInfo(w *game.World) []debugui.TableInfo {
	return []debugui.TableInfo{
		{Name: "Bullets", Len: w.Bullets.Len(), Fragmentation: w.Bullets.Fragmentation()},
		{Name: "Enemies", Len: w.Enemies.Len(), Fragmentation: w.Enemies.Fragmentation()},
		{Name: "Decorations", Len: w.Decorations.Len(), Fragmentation: w.Decorations.Fragmentation()},
	}
}
