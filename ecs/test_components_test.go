package ecs_test

import "github.com/plus3/shooter/ecs"

type Position struct {
	X, Y float64
}

type Velocity struct {
	DX, DY float64
}

type Health struct {
	Current, Max int
}

type Mover struct {
	Position Position
	Velocity Velocity
}

const (
	KindMover ecs.Kind = iota + 1
	KindHealth
)

// testWorld is a two-kind world used across the package tests.
type testWorld struct {
	Movers  *ecs.Table[Mover]
	Healths *ecs.Table[Health]
	Deleted []ecs.EntityId
}

func newTestWorld() *testWorld {
	return &testWorld{
		Movers:  ecs.NewTable[Mover](KindMover),
		Healths: ecs.NewTable[Health](KindHealth),
	}
}

func (w *testWorld) Delete(id ecs.EntityId) {
	w.Deleted = append(w.Deleted, id)
	switch id.Kind() {
	case KindMover:
		w.Movers.Delete(id)
	case KindHealth:
		w.Healths.Delete(id)
	}
}
