package view

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/shooter/game"
)

// Input reads the keyboard and mouse through ebiten. Mouse buttons are ignored
// while CaptureMouse reports that an overlay owns the pointer.
type Input struct {
	bindings map[game.Action][]ebiten.Key

	CaptureMouse func() bool
}

func NewInput(layout KeyLayout) *Input {
	return &Input{bindings: Bindings(layout)}
}

func (in *Input) mouseCaptured() bool {
	return in.CaptureMouse != nil && in.CaptureMouse()
}

func (in *Input) Pressed(action game.Action) bool {
	for _, k := range in.bindings[action] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return action == game.ActionFire && !in.mouseCaptured() &&
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func (in *Input) JustPressed(action game.Action) bool {
	for _, k := range in.bindings[action] {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return action == game.ActionFire && !in.mouseCaptured() &&
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// Cursor returns the pointer in window pixels. The camera decides whether it
// lies inside the viewport.
func (in *Input) Cursor() (mgl64.Vec2, bool) {
	x, y := ebiten.CursorPosition()
	return mgl64.Vec2{float64(x), float64(y)}, true
}

// Wheel returns the vertical scroll since the last frame, or zero while the
// pointer is captured.
func (in *Input) Wheel() float64 {
	if in.mouseCaptured() {
		return 0
	}
	_, dy := ebiten.Wheel()
	return dy
}
