package ecs_test

import (
	"testing"

	"github.com/plus3/shooter/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityId(t *testing.T) {
	id := ecs.NewEntityId(KindHealth, 12345)
	assert.Equal(t, KindHealth, id.Kind())
	assert.Equal(t, uint32(12345), id.Index())

	last := ecs.NewEntityId(ecs.Kind(0xFFFFFFFF), 0xFFFFFFFF)
	assert.Equal(t, ecs.Kind(0xFFFFFFFF), last.Kind())
	assert.Equal(t, uint32(0xFFFFFFFF), last.Index())
}

func TestTable(t *testing.T) {
	t.Run("kind zero is reserved", func(t *testing.T) {
		assert.Panics(t, func() { ecs.NewTable[Health](0) })
	})

	t.Run("insert get delete", func(t *testing.T) {
		table := ecs.NewTable[Health](KindHealth)

		a := table.Insert(Health{Current: 1})
		b := table.Insert(Health{Current: 2})
		assert.Equal(t, KindHealth, a.Kind())
		assert.NotEqual(t, a, b)
		assert.Equal(t, 2, table.Len())

		require.NotNil(t, table.Get(b))
		assert.Equal(t, 2, table.Get(b).Current)

		assert.True(t, table.Delete(a))
		assert.False(t, table.Delete(a))
		assert.Nil(t, table.Get(a))
		assert.False(t, table.Has(a))
		assert.Equal(t, 1, table.Len())
	})

	t.Run("ids of another kind are rejected", func(t *testing.T) {
		table := ecs.NewTable[Health](KindHealth)
		table.Insert(Health{})

		foreign := ecs.NewEntityId(KindMover, 0)
		assert.False(t, table.Has(foreign))
		assert.False(t, table.Delete(foreign))
		assert.Equal(t, 1, table.Len())
	})

	t.Run("freed slots are reused", func(t *testing.T) {
		table := ecs.NewTable[Health](KindHealth)
		a := table.Insert(Health{})
		table.Insert(Health{})
		table.Delete(a)

		c := table.Insert(Health{Current: 7})
		assert.Equal(t, a, c)
		assert.Equal(t, 7, table.Get(c).Current)
	})

	t.Run("pointers survive growth past a block", func(t *testing.T) {
		table := ecs.NewTable[Health](KindHealth)
		first := table.Insert(Health{Current: 1})
		ptr := table.Get(first)

		for i := range 200 {
			table.Insert(Health{Current: i})
		}
		ptr.Current = 99
		assert.Equal(t, 99, table.Get(first).Current)
		assert.Equal(t, 201, table.Len())
	})

	t.Run("iteration allows deleting the current item", func(t *testing.T) {
		table := ecs.NewTable[Health](KindHealth)
		for i := range 10 {
			table.Insert(Health{Current: i})
		}

		for id, h := range table.Iter() {
			if h.Current%2 == 0 {
				table.Delete(id)
			}
		}

		var seen []int
		for h := range table.Values() {
			seen = append(seen, h.Current)
		}
		assert.Equal(t, []int{1, 3, 5, 7, 9}, seen)
	})

	t.Run("early break stops iteration", func(t *testing.T) {
		table := ecs.NewTable[Health](KindHealth)
		for range 5 {
			table.Insert(Health{})
		}

		n := 0
		for range table.Iter() {
			n++
			if n == 2 {
				break
			}
		}
		assert.Equal(t, 2, n)
	})

	t.Run("compact packs live items and reports the remap", func(t *testing.T) {
		table := ecs.NewTable[Health](KindHealth)
		var ids []ecs.EntityId
		for i := range 100 {
			ids = append(ids, table.Insert(Health{Current: i}))
		}
		for i, id := range ids {
			if i%4 != 0 {
				table.Delete(id)
			}
		}
		assert.InDelta(t, 0.75, table.Fragmentation(), 1e-9)

		remap := table.Compact()
		assert.Equal(t, 25, table.Len())
		assert.Equal(t, 0.0, table.Fragmentation())
		assert.Equal(t, 25, remap.Len())

		for i := 0; i < 100; i += 4 {
			newIndex, ok := remap.Get(ids[i].Index())
			require.True(t, ok)
			h := table.Get(ecs.NewEntityId(KindHealth, newIndex))
			require.NotNil(t, h)
			assert.Equal(t, i, h.Current)
		}

		_, ok := remap.Get(ids[1].Index())
		assert.False(t, ok)
	})

	t.Run("compact of an empty table clears it", func(t *testing.T) {
		table := ecs.NewTable[Health](KindHealth)
		id := table.Insert(Health{})
		table.Delete(id)

		remap := table.Compact()
		assert.Equal(t, 0, remap.Len())
		assert.Equal(t, 0, table.Len())
		assert.Equal(t, 0.0, table.Fragmentation())
	})

	t.Run("clear", func(t *testing.T) {
		table := ecs.NewTable[Health](KindHealth)
		id := table.Insert(Health{})
		table.Clear()

		assert.Equal(t, 0, table.Len())
		assert.False(t, table.Has(id))
		assert.Equal(t, id, table.Insert(Health{}))
	})
}
