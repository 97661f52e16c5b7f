// Package ecs provides typed entity tables, deferred commands, timers and a
// system scheduler with per-system timings.
package ecs

// Kind identifies the table an entity lives in. Kinds form a small closed set
// chosen by the application.
type Kind uint32

// EntityId encodes both the entity kind (upper 32 bits) and the slot index (lower 32 bits)
type EntityId uint64

// NewEntityId creates an EntityId from a kind and slot index
func NewEntityId(kind Kind, index uint32) EntityId {
	return EntityId(uint64(kind)<<32 | uint64(index))
}

// Kind extracts the entity kind from the entity ID
func (e EntityId) Kind() Kind {
	return Kind(e >> 32)
}

// Index extracts the slot index from the entity ID
func (e EntityId) Index() uint32 {
	return uint32(e & 0xFFFFFFFF)
}
