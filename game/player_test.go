package game

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestPlayerControl(t *testing.T) {
	const dt = 0.1
	diag := PlayerSpeed * dt / math.Sqrt2

	cases := []struct {
		name  string
		keys  []Action
		delta mgl64.Vec2
		state MovementState
	}{
		{"none", nil, mgl64.Vec2{}, Idle},
		{"up", []Action{ActionUp}, mgl64.Vec2{0, PlayerSpeed * dt}, Running},
		{"down", []Action{ActionDown}, mgl64.Vec2{0, -PlayerSpeed * dt}, Running},
		{"left", []Action{ActionLeft}, mgl64.Vec2{-PlayerSpeed * dt, 0}, Running},
		{"right", []Action{ActionRight}, mgl64.Vec2{PlayerSpeed * dt, 0}, Running},
		{"up right", []Action{ActionUp, ActionRight}, mgl64.Vec2{diag, diag}, Running},
		{"down left", []Action{ActionDown, ActionLeft}, mgl64.Vec2{-diag, -diag}, Running},
		{"up down cancel", []Action{ActionUp, ActionDown}, mgl64.Vec2{}, Idle},
		{"all cancel", []Action{ActionUp, ActionDown, ActionLeft, ActionRight}, mgl64.Vec2{}, Idle},
		{"cancel leaves one axis", []Action{ActionLeft, ActionRight, ActionUp}, mgl64.Vec2{0, PlayerSpeed * dt}, Running},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld()
			input := NewScriptedInput()
			input.Press(tc.keys...)

			runSystems(w, dt, &PlayerControlSystem{Input: input})

			player := w.Player.Get()
			got := player.Transform.Pos2()
			assert.InDelta(t, tc.delta.X(), got.X(), 1e-9)
			assert.InDelta(t, tc.delta.Y(), got.Y(), 1e-9)
			assert.Equal(t, tc.state, player.State)
			assert.Equal(t, 3.0, player.Transform.Pos.Z())
		})
	}
}

func TestPlayerHoldRightForOneSecond(t *testing.T) {
	w := newTestWorld()
	input := NewScriptedInput()
	input.Press(ActionRight)

	for range 60 {
		runSystems(w, 1.0/60, &PlayerControlSystem{Input: input})
	}

	player := w.Player.Get()
	assert.InDelta(t, 200, player.Transform.Pos.X(), 1e-6)
	assert.Equal(t, 0.0, player.Transform.Pos.Y())
	assert.Equal(t, Running, player.State)
}

func TestPlayerEdgeCheck(t *testing.T) {
	const dt = 0.1

	t.Run("blocked axis contributes nothing", func(t *testing.T) {
		w := newTestWorld()
		w.Player.Get().Transform.Pos = mgl64.Vec3{WorldW, 0, 3}

		input := NewScriptedInput()
		input.Press(ActionRight, ActionUp)
		runSystems(w, dt, &PlayerControlSystem{Input: input})

		pos := w.Player.Get().Transform.Pos
		assert.Equal(t, WorldW, pos.X())
		assert.InDelta(t, PlayerSpeed*dt, pos.Y(), 1e-9)
	})

	t.Run("held into the corner is idle", func(t *testing.T) {
		w := newTestWorld()
		w.Player.Get().Transform.Pos = mgl64.Vec3{-WorldW, -WorldH, 3}

		input := NewScriptedInput()
		input.Press(ActionLeft, ActionDown)
		runSystems(w, dt, &PlayerControlSystem{Input: input})

		player := w.Player.Get()
		assert.Equal(t, mgl64.Vec3{-WorldW, -WorldH, 3}, player.Transform.Pos)
		assert.Equal(t, Idle, player.State)
	})

	t.Run("moving away from the edge is allowed", func(t *testing.T) {
		w := newTestWorld()
		w.Player.Get().Transform.Pos = mgl64.Vec3{WorldW + 1, 0, 3}

		input := NewScriptedInput()
		input.Press(ActionLeft)
		runSystems(w, dt, &PlayerControlSystem{Input: input})

		assert.InDelta(t, WorldW+1-PlayerSpeed*dt, w.Player.Get().Transform.Pos.X(), 1e-9)
	})
}

func TestPlayerControlWithoutPlayer(t *testing.T) {
	w := newTestWorld()
	w.Player.Clear()

	input := NewScriptedInput()
	input.Press(ActionRight)
	assert.NotPanics(t, func() {
		runSystems(w, 0.1, &PlayerControlSystem{Input: input})
	})
	assert.False(t, w.Player.Exists())
}
