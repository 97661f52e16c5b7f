package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// PlayerControlSystem moves the player from the directional actions.
type PlayerControlSystem struct {
	Input Input
}

func (s *PlayerControlSystem) Execute(frame *Frame) {
	w := frame.World

	player := w.Player.Get()
	if player == nil {
		return
	}

	pos := player.Transform.Pos
	var delta mgl64.Vec2
	if s.Input.Pressed(ActionUp) && pos.Y() < w.Config.WorldH {
		delta[1] += 1
	}
	if s.Input.Pressed(ActionDown) && pos.Y() > -w.Config.WorldH {
		delta[1] -= 1
	}
	if s.Input.Pressed(ActionLeft) && pos.X() > -w.Config.WorldW {
		delta[0] -= 1
	}
	if s.Input.Pressed(ActionRight) && pos.X() < w.Config.WorldW {
		delta[0] += 1
	}

	// Normalizing the zero vector yields NaN, which doubles as the idle test.
	dir := delta.Normalize()
	if !finite(dir) {
		player.State = Idle
		return
	}

	step := dir.Mul(w.Config.PlayerSpeed * frame.DeltaTime)
	player.Transform.Pos = pos.Add(step.Vec3(0))
	player.State = Running
}

func finite(v mgl64.Vec2) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
