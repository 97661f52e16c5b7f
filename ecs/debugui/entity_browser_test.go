package debugui

import (
	"testing"

	"github.com/plus3/shooter/ecs"
	"github.com/stretchr/testify/assert"
)

func testRows() []EntityRow {
	return []EntityRow{
		{ID: ecs.NewEntityId(4, 2), Kind: "Enemy", Summary: "Gob hp=100"},
		{ID: ecs.NewEntityId(1, 0), Kind: "Player", Summary: "Running"},
		{ID: ecs.NewEntityId(3, 7), Kind: "Bullet", Summary: "ttl=4.2"},
		{ID: ecs.NewEntityId(4, 0), Kind: "Enemy", Summary: "Demon hp=45"},
	}
}

func TestFilterRows(t *testing.T) {
	rows := testRows()

	assert.Len(t, filterRows(rows, ""), 4)
	assert.Len(t, filterRows(rows, "enemy"), 2)
	assert.Len(t, filterRows(rows, "DEMON"), 1)
	assert.Equal(t, "Bullet", filterRows(rows, "3:7")[0].Kind)
	assert.Empty(t, filterRows(rows, "nothing"))

	filtered := filterRows(rows, "")
	filtered[0].Kind = "changed"
	assert.Equal(t, "Enemy", rows[0].Kind, "filtering never aliases the input")
}

func TestSortRows(t *testing.T) {
	rows := testRows()

	sortRows(rows, 0, true)
	assert.Equal(t, ecs.NewEntityId(1, 0), rows[0].ID)
	assert.Equal(t, ecs.NewEntityId(4, 2), rows[3].ID)

	sortRows(rows, 1, true)
	assert.Equal(t, []string{"Bullet", "Enemy", "Enemy", "Player"},
		[]string{rows[0].Kind, rows[1].Kind, rows[2].Kind, rows[3].Kind})
	assert.Equal(t, ecs.NewEntityId(4, 0), rows[1].ID, "ties fall back to the id")

	sortRows(rows, 1, false)
	assert.Equal(t, "Player", rows[0].Kind)
}

func TestSelected(t *testing.T) {
	eb := NewEntityBrowser(10)
	rows := testRows()

	_, ok := eb.Selected(rows)
	assert.False(t, ok)

	eb.selectedEntityId = ecs.NewEntityId(3, 7)
	row, ok := eb.Selected(rows)
	assert.True(t, ok)
	assert.Equal(t, "Bullet", row.Kind)
	assert.Equal(t, ecs.NewEntityId(3, 7), eb.GetSelectedEntity())

	_, ok = eb.Selected(rows[:2])
	assert.False(t, ok, "deleted entities drop out")
}

func TestRemapSelection(t *testing.T) {
	moved := map[ecs.EntityId]ecs.EntityId{ecs.NewEntityId(4, 2): ecs.NewEntityId(4, 0)}
	translate := func(id ecs.EntityId) (ecs.EntityId, bool) {
		next, ok := moved[id]
		return next, ok
	}

	eb := NewEntityBrowser(10)
	eb.selectedEntityId = ecs.NewEntityId(4, 2)
	eb.Remap(4, translate)
	assert.Equal(t, ecs.NewEntityId(4, 0), eb.GetSelectedEntity(), "selection follows the entity")

	eb.selectedEntityId = ecs.NewEntityId(3, 7)
	eb.Remap(4, translate)
	assert.Equal(t, ecs.NewEntityId(3, 7), eb.GetSelectedEntity(), "other kinds are untouched")

	eb.selectedEntityId = ecs.NewEntityId(4, 5)
	eb.Remap(4, translate)
	assert.Zero(t, eb.GetSelectedEntity(), "a gone entity clears the selection")
}

func TestPageBounds(t *testing.T) {
	start, end := pageBounds(25, 0, 10)
	assert.Equal(t, [2]int{0, 10}, [2]int{start, end})

	start, end = pageBounds(25, 2, 10)
	assert.Equal(t, [2]int{20, 25}, [2]int{start, end})

	start, end = pageBounds(5, 3, 10)
	assert.Equal(t, [2]int{5, 5}, [2]int{start, end})
}

func TestPerformanceStatsAverage(t *testing.T) {
	ps := NewPerformanceStats(4)
	for range 4 {
		ps.Record(0.016)
	}
	assert.InDelta(t, 16, ps.AverageFrameTime(), 1e-3)

	ps.Record(0.032)
	assert.InDelta(t, 20, ps.AverageFrameTime(), 1e-3)
}
