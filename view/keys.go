package view

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/shooter/game"
)

// KeyLayout selects the physical keys bound to the movement actions.
type KeyLayout int

const (
	LayoutQWERTY KeyLayout = iota
	LayoutColemak
)

func (l KeyLayout) String() string {
	switch l {
	case LayoutQWERTY:
		return "qwerty"
	case LayoutColemak:
		return "colemak"
	}
	return fmt.Sprintf("KeyLayout(%d)", int(l))
}

// ParseLayout maps a layout name from the command line to a KeyLayout.
func ParseLayout(name string) (KeyLayout, error) {
	switch strings.ToLower(name) {
	case "qwerty", "":
		return LayoutQWERTY, nil
	case "colemak":
		return LayoutColemak, nil
	}
	return 0, fmt.Errorf("unknown key layout %q", name)
}

// Bindings lists the keys for each action. Arrow keys and Space are bound in
// every layout. Input adds the left mouse button to fire.
func Bindings(layout KeyLayout) map[game.Action][]ebiten.Key {
	b := map[game.Action][]ebiten.Key{
		game.ActionUp:    {ebiten.KeyArrowUp},
		game.ActionDown:  {ebiten.KeyArrowDown},
		game.ActionLeft:  {ebiten.KeyArrowLeft},
		game.ActionRight: {ebiten.KeyArrowRight},
		game.ActionFire:  {ebiten.KeySpace},
	}

	switch layout {
	case LayoutColemak:
		// W R A S sit where W S A D are on a QWERTY board.
		b[game.ActionUp] = append(b[game.ActionUp], ebiten.KeyW)
		b[game.ActionDown] = append(b[game.ActionDown], ebiten.KeyR)
		b[game.ActionLeft] = append(b[game.ActionLeft], ebiten.KeyA)
		b[game.ActionRight] = append(b[game.ActionRight], ebiten.KeyS)
	default:
		b[game.ActionUp] = append(b[game.ActionUp], ebiten.KeyW)
		b[game.ActionDown] = append(b[game.ActionDown], ebiten.KeyS)
		b[game.ActionLeft] = append(b[game.ActionLeft], ebiten.KeyA)
		b[game.ActionRight] = append(b[game.ActionRight], ebiten.KeyD)
	}
	return b
}
