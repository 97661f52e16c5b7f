package ecs

// System represents a behavior that runs once per frame against a world of type W.
// Systems can keep custom state fields that persist between frames.
type System[W World] interface {
	Execute(frame *UpdateFrame[W])
}

// World is the minimum a world must provide for deferred commands to be applied.
type World interface {
	Delete(id EntityId)
}
