package game

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Camera maps between world space (y up, origin at the center) and screen
// space (y down, origin at the top-left of the viewport).
type Camera struct {
	Pos mgl64.Vec2
	// Zoom is the number of world units covered by one screen pixel.
	Zoom      float64
	ViewportW int
	ViewportH int
}

func NewCamera(viewportW, viewportH int) Camera {
	return Camera{
		Zoom:      1,
		ViewportW: viewportW,
		ViewportH: viewportH,
	}
}

// SetViewport updates the viewport size in pixels.
func (c *Camera) SetViewport(w, h int) {
	c.ViewportW = w
	c.ViewportH = h
}

// ScreenToWorld converts a viewport position to world coordinates. It returns
// false when the position lies outside the viewport.
func (c *Camera) ScreenToWorld(screen mgl64.Vec2) (mgl64.Vec2, bool) {
	if screen.X() < 0 || screen.Y() < 0 ||
		screen.X() >= float64(c.ViewportW) || screen.Y() >= float64(c.ViewportH) {
		return mgl64.Vec2{}, false
	}

	halfW := float64(c.ViewportW) / 2
	halfH := float64(c.ViewportH) / 2
	return mgl64.Vec2{
		c.Pos.X() + (screen.X()-halfW)*c.Zoom,
		c.Pos.Y() - (screen.Y()-halfH)*c.Zoom,
	}, true
}

// WorldToScreen converts a world position to viewport coordinates. The result
// may lie outside the viewport.
func (c *Camera) WorldToScreen(p mgl64.Vec2) mgl64.Vec2 {
	halfW := float64(c.ViewportW) / 2
	halfH := float64(c.ViewportH) / 2
	return mgl64.Vec2{
		(p.X()-c.Pos.X())/c.Zoom + halfW,
		(c.Pos.Y()-p.Y())/c.Zoom + halfH,
	}
}

// ZoomBy scales the view by wheel steps; positive steps zoom in.
func (c *Camera) ZoomBy(steps, minZoom, maxZoom float64) {
	if steps == 0 {
		return
	}
	c.Zoom = mgl64.Clamp(c.Zoom*(1-0.1*steps), minZoom, maxZoom)
}

// CursorSystem recomputes the world cursor from the raw pointer position.
type CursorSystem struct {
	Input Input
}

func (s *CursorSystem) Execute(frame *Frame) {
	w := frame.World

	screen, ok := s.Input.Cursor()
	if !ok {
		w.Cursor.Clear()
		return
	}

	pos, ok := w.Camera.ScreenToWorld(screen)
	if !ok {
		w.Cursor.Clear()
		return
	}
	w.Cursor.Set(pos)
}

// CameraFollowSystem moves the camera toward the player by the configured
// smoothing factor each frame. A factor of 1 snaps onto the player.
type CameraFollowSystem struct{}

func (s *CameraFollowSystem) Execute(frame *Frame) {
	w := frame.World

	player := w.Player.Get()
	if player == nil {
		return
	}

	target := player.Transform.Pos2()
	t := w.Config.CameraSmoothing
	w.Camera.Pos = w.Camera.Pos.Add(target.Sub(w.Camera.Pos).Mul(t))
}
