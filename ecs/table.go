package ecs

import (
	"iter"

	"github.com/kamstrup/intmap"
)

const (
	tableBlockSize = 64
)

type tableBlock[T any] struct {
	values [tableBlockSize]T
	filled [tableBlockSize]bool
}

// Table stores every entity of one kind in fixed-size blocks. Slots freed by
// Delete are reused by later inserts, so ids stay stable until Compact runs.
// Blocks are allocated individually, so pointers returned by Get remain valid
// across inserts.
type Table[T any] struct {
	kind      Kind
	blocks    []*tableBlock[T]
	freeSlots []uint32
	nextIndex uint32
	count     int
}

// NewTable creates an empty table for the given kind. Kind 0 is reserved so
// that the zero EntityId never refers to a live entity.
func NewTable[T any](kind Kind) *Table[T] {
	if kind == 0 {
		panic("ecs: table kind 0 is reserved")
	}
	return &Table[T]{kind: kind}
}

// Kind returns the kind encoded into every id handed out by this table.
func (t *Table[T]) Kind() Kind {
	return t.kind
}

// Insert adds an item and returns its entity id.
func (t *Table[T]) Insert(item T) EntityId {
	var index uint32
	if len(t.freeSlots) > 0 {
		index = t.freeSlots[len(t.freeSlots)-1]
		t.freeSlots = t.freeSlots[:len(t.freeSlots)-1]
	} else {
		index = t.nextIndex
		t.nextIndex++
	}

	blockIdx := index / tableBlockSize
	slotIdx := index % tableBlockSize

	for int(blockIdx) >= len(t.blocks) {
		t.blocks = append(t.blocks, &tableBlock[T]{})
	}

	b := t.blocks[blockIdx]
	b.values[slotIdx] = item
	b.filled[slotIdx] = true
	t.count++

	return NewEntityId(t.kind, index)
}

func (t *Table[T]) slot(id EntityId) (*tableBlock[T], uint32, bool) {
	if id.Kind() != t.kind {
		return nil, 0, false
	}

	index := id.Index()
	if index >= t.nextIndex {
		return nil, 0, false
	}

	b := t.blocks[index/tableBlockSize]
	slotIdx := index % tableBlockSize
	if !b.filled[slotIdx] {
		return nil, 0, false
	}
	return b, slotIdx, true
}

// Get returns a pointer to the item, or nil if the id is not live in this table.
func (t *Table[T]) Get(id EntityId) *T {
	b, slotIdx, ok := t.slot(id)
	if !ok {
		return nil
	}
	return &b.values[slotIdx]
}

// Has checks if the id refers to a live item in this table.
func (t *Table[T]) Has(id EntityId) bool {
	_, _, ok := t.slot(id)
	return ok
}

// Delete marks the slot as empty. It returns false if the id was not live.
func (t *Table[T]) Delete(id EntityId) bool {
	b, slotIdx, ok := t.slot(id)
	if !ok {
		return false
	}

	var zero T
	b.values[slotIdx] = zero
	b.filled[slotIdx] = false
	t.freeSlots = append(t.freeSlots, id.Index())
	t.count--
	return true
}

// Len returns the number of live items.
func (t *Table[T]) Len() int {
	return t.count
}

// Clear removes every item and releases all blocks.
func (t *Table[T]) Clear() {
	t.blocks = nil
	t.freeSlots = nil
	t.nextIndex = 0
	t.count = 0
}

// Fragmentation returns the share of allocated slots that are currently free.
func (t *Table[T]) Fragmentation() float64 {
	if t.nextIndex == 0 {
		return 0
	}
	return float64(len(t.freeSlots)) / float64(t.nextIndex)
}

// Compact moves all live items to the front of the table and returns the
// mapping from old slot index to new slot index for every live item.
// Ids handed out before the call must be translated through the mapping.
func (t *Table[T]) Compact() *intmap.Map[uint32, uint32] {
	remap := intmap.New[uint32, uint32](t.count)

	if t.count == 0 {
		t.Clear()
		return remap
	}

	numBlocks := (t.count + tableBlockSize - 1) / tableBlockSize
	newBlocks := make([]*tableBlock[T], numBlocks)
	for i := range newBlocks {
		newBlocks[i] = &tableBlock[T]{}
	}

	var writePos uint32
	for readIdx := uint32(0); readIdx < t.nextIndex; readIdx++ {
		rb := t.blocks[readIdx/tableBlockSize]
		rs := readIdx % tableBlockSize
		if !rb.filled[rs] {
			continue
		}

		wb := newBlocks[writePos/tableBlockSize]
		ws := writePos % tableBlockSize
		wb.values[ws] = rb.values[rs]
		wb.filled[ws] = true

		remap.Put(readIdx, writePos)
		writePos++
	}

	t.blocks = newBlocks
	t.freeSlots = nil
	t.nextIndex = writePos

	return remap
}

// Iter returns an iterator over live ids and pointers to their items, in slot order.
// Deleting the current item while iterating is allowed.
func (t *Table[T]) Iter() iter.Seq2[EntityId, *T] {
	return func(yield func(EntityId, *T) bool) {
		for i := uint32(0); i < t.nextIndex; i++ {
			b := t.blocks[i/tableBlockSize]
			s := i % tableBlockSize
			if !b.filled[s] {
				continue
			}
			if !yield(NewEntityId(t.kind, i), &b.values[s]) {
				return
			}
		}
	}
}

// Values returns an iterator over pointers to the live items only.
func (t *Table[T]) Values() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for _, item := range t.Iter() {
			if !yield(item) {
				return
			}
		}
	}
}
