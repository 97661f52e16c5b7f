package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/shooter/game"
)

// One terminal cell covers CellW by CellH viewport pixels.
const (
	CellW = 16
	CellH = 32
)

var (
	decorationStyle = tcell.StyleDefault.Foreground(tcell.Color(240))
	playerStyle     = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	gunStyle        = tcell.StyleDefault.Foreground(tcell.ColorLightGray)
	bulletStyle     = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	hudStyle        = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)

	enemyGlyphs = map[game.Archetype]rune{
		game.ArchetypeGrub:  'g',
		game.ArchetypeSkele: 's',
		game.ArchetypeGob:   'o',
		game.ArchetypeDevil: 'd',
		game.ArchetypeDemon: 'D',
	}
	enemyStyles = map[game.Archetype]tcell.Style{
		game.ArchetypeGrub:  tcell.StyleDefault.Foreground(tcell.ColorGreenYellow),
		game.ArchetypeSkele: tcell.StyleDefault.Foreground(tcell.ColorWhite),
		game.ArchetypeGob:   tcell.StyleDefault.Foreground(tcell.ColorGreen),
		game.ArchetypeDevil: tcell.StyleDefault.Foreground(tcell.ColorRed),
		game.ArchetypeDemon: tcell.StyleDefault.Foreground(tcell.ColorPurple),
	}
)

// cellCenter converts a terminal cell to the viewport pixel at its center.
func cellCenter(x, y int) mgl64.Vec2 {
	return mgl64.Vec2{(float64(x) + 0.5) * CellW, (float64(y) + 0.5) * CellH}
}

// Viewport returns the camera viewport in pixels for a terminal size.
func Viewport(cols, rows int) (int, int) {
	return cols * CellW, rows * CellH
}

// Draw renders w into the screen buffer; the caller shows it. Later layers
// overwrite earlier ones.
func Draw(screen tcell.Screen, w *game.World) {
	screen.Clear()
	cols, rows := screen.Size()
	cam := &w.Camera

	put := func(p mgl64.Vec2, r rune, style tcell.Style) {
		s := cam.WorldToScreen(p)
		if s.X() < 0 || s.Y() < 0 {
			return
		}
		x, y := int(s.X()/CellW), int(s.Y()/CellH)
		if x >= cols || y >= rows {
			return
		}
		screen.SetContent(x, y, r, nil, style)
	}

	for d := range w.Decorations.Values() {
		put(d.Transform.Pos2(), '.', decorationStyle)
	}
	for e := range w.Enemies.Values() {
		put(e.Transform.Pos2(), enemyGlyphs[e.Archetype], enemyStyles[e.Archetype])
	}
	for b := range w.Bullets.Values() {
		put(b.Transform.Pos2(), '*', bulletStyle)
	}
	if gun := w.Gun.Get(); gun != nil {
		put(gun.Transform.Pos2(), '+', gunStyle)
	}
	if player := w.Player.Get(); player != nil {
		glyph := '@'
		if player.Sprite.FlipX {
			glyph = '&'
		}
		put(player.Transform.Pos2(), glyph, playerStyle)
	}

	drawText(screen, 0, 0, w.Hud.Text, hudStyle)
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, line := range strings.Split(text, "\n") {
		for j, r := range line {
			screen.SetContent(x+j, y+i, r, nil, style)
		}
	}
}

// statusLine is shown on the last row.
func statusLine(g *game.Game) string {
	return fmt.Sprintf("session %s  esc quit  F5 restart", g.Session().String()[:8])
}
