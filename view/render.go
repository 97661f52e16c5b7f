package view

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/shooter/game"
)

var (
	playerColor     = color.RGBA{R: 60, G: 90, B: 200, A: 255}
	gunColor        = color.RGBA{R: 70, G: 70, B: 80, A: 255}
	bulletColor     = color.RGBA{R: 240, G: 220, B: 60, A: 255}
	eyeColor        = color.RGBA{R: 250, G: 250, B: 250, A: 255}
	hudPanelColor   = color.RGBA{A: 230}
	boundsColor     = color.RGBA{R: 120, G: 120, B: 110, A: 255}
	decorationColor = [2]color.RGBA{
		{R: 150, G: 170, B: 130, A: 255},
		{R: 170, G: 160, B: 120, A: 255},
	}
	sheetColor = map[game.Sheet]color.RGBA{
		game.SheetGrub:  {R: 140, G: 190, B: 80, A: 255},
		game.SheetSkele: {R: 220, G: 220, B: 210, A: 255},
		game.SheetGob:   {R: 60, G: 150, B: 70, A: 255},
		game.SheetDevil: {R: 200, G: 50, B: 50, A: 255},
		game.SheetDemon: {R: 120, G: 40, B: 140, A: 255},
	}
)

// bob is the vertical sprite offset in pixels for each frame of a band.
var bob = [4]float32{0, -2, 0, 2}

// tileSize is the on-screen size of one sprite at zoom 1.
const tileSize = game.SpriteTileSize * game.SpriteScaleFactor

// Renderer draws a world with primitive shapes standing in for sprite sheets.
type Renderer struct {
	ShowBounds bool
}

func (r *Renderer) Draw(screen *ebiten.Image, w *game.World) {
	screen.Fill(game.BackgroundColor)
	cam := &w.Camera

	if r.ShowBounds {
		r.drawBounds(screen, w)
	}

	for d := range w.Decorations.Values() {
		p, ok := onScreen(cam, d.Transform.Pos2())
		if !ok {
			continue
		}
		size := float32(tileSize/4) / float32(cam.Zoom)
		vector.DrawFilledRect(screen, p[0]-size/2, p[1]-size/2, size, size,
			decorationColor[d.Sprite.Index%2], false)
	}

	for e := range w.Enemies.Values() {
		if p, ok := onScreen(cam, e.Transform.Pos2()); ok {
			drawCreature(screen, cam, p, sheetColor[e.Sprite.Sheet], e.Sprite)
		}
	}

	if player := w.Player.Get(); player != nil {
		p, _ := onScreen(cam, player.Transform.Pos2())
		drawCreature(screen, cam, p, playerColor, player.Sprite)

		if gun := w.Gun.Get(); gun != nil {
			g := toF32(cam.WorldToScreen(gun.Transform.Pos2()))
			vector.StrokeLine(screen, p[0], p[1], g[0], g[1], 6/float32(cam.Zoom), gunColor, true)
		}
	}

	radius := float32(tileSize/8) / float32(cam.Zoom)
	for b := range w.Bullets.Values() {
		if p, ok := onScreen(cam, b.Transform.Pos2()); ok {
			vector.DrawFilledCircle(screen, p[0], p[1], radius, bulletColor, true)
		}
	}

	drawHud(screen, w.Hud.Text)
}

func (r *Renderer) drawBounds(screen *ebiten.Image, w *game.World) {
	cam := &w.Camera
	tl := toF32(cam.WorldToScreen(mgl64.Vec2{-w.Config.WorldW, w.Config.WorldH}))
	br := toF32(cam.WorldToScreen(mgl64.Vec2{w.Config.WorldW, -w.Config.WorldH}))
	vector.StrokeRect(screen, tl[0], tl[1], br[0]-tl[0], br[1]-tl[1], 2, boundsColor, false)
}

func drawCreature(screen *ebiten.Image, cam *game.Camera, p [2]float32, body color.RGBA, sprite game.Sprite) {
	radius := float32(tileSize/2) / float32(cam.Zoom)
	y := p[1] + bob[sprite.Index%4]

	vector.DrawFilledCircle(screen, p[0], y, radius, body, true)

	eyeX := p[0] + radius/2
	if sprite.FlipX {
		eyeX = p[0] - radius/2
	}
	vector.DrawFilledCircle(screen, eyeX, y-radius/3, radius/5, eyeColor, true)
}

func drawHud(screen *ebiten.Image, text string) {
	if text == "" {
		return
	}
	vector.DrawFilledRect(screen, 8, 8, 140, 52, hudPanelColor, false)
	ebitenutil.DebugPrintAt(screen, text, 14, 12)
}

// onScreen converts a world position and reports whether it is close enough
// to the viewport to be worth drawing.
func onScreen(cam *game.Camera, p mgl64.Vec2) ([2]float32, bool) {
	s := cam.WorldToScreen(p)
	margin := tileSize / cam.Zoom
	visible := s.X() >= -margin && s.Y() >= -margin &&
		s.X() <= float64(cam.ViewportW)+margin && s.Y() <= float64(cam.ViewportH)+margin
	return toF32(s), visible
}

func toF32(v mgl64.Vec2) [2]float32 {
	return [2]float32{float32(v.X()), float32(v.Y())}
}
