package ecs

// Commands provides a buffer for deferred world operations that are executed at the end of a frame.
// This prevents structural changes to the world while systems iterate its tables.
type Commands[W World] struct {
	deletes []EntityId
	spawns  []func(W)
	defers  []func()
}

func newCommands[W World]() *Commands[W] {
	return &Commands[W]{}
}

// Defer queues a function to run after all deletes and spawns are applied.
func (c *Commands[W]) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Spawn queues a structural insert against the world.
func (c *Commands[W]) Spawn(fn func(W)) {
	c.spawns = append(c.spawns, fn)
}

// Delete queues an entity deletion operation.
func (c *Commands[W]) Delete(entity EntityId) {
	c.deletes = append(c.deletes, entity)
}

// Pending reports the number of queued operations.
func (c *Commands[W]) Pending() int {
	return len(c.deletes) + len(c.spawns) + len(c.defers)
}

// Flush applies all commands to the provided world, reseting the buffer state.
// Deletes run first so that a slot freed this frame can be reused by a spawn.
func (c *Commands[W]) Flush(world W) {
	deleted := make(map[EntityId]bool, len(c.deletes))
	for _, id := range c.deletes {
		if deleted[id] {
			continue
		}
		world.Delete(id)
		deleted[id] = true
	}

	for _, spawn := range c.spawns {
		spawn(world)
	}

	for _, fn := range c.defers {
		fn()
	}

	c.deletes = c.deletes[:0]
	c.spawns = c.spawns[:0]
	c.defers = c.defers[:0]
}
