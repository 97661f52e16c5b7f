// Package tui plays the game in a terminal through tcell.
package tui

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/shooter/game"
)

// keyTimeout is how long a key counts as held after its last event. Terminals
// report repeats, never releases.
const keyTimeout = 150 * time.Millisecond

// Input turns tcell events into game actions. It is safe for one goroutine to
// feed events while another reads actions.
type Input struct {
	mu          sync.Mutex
	keys        map[game.Action]time.Time
	justPressed map[game.Action]bool
	cursor      mgl64.Vec2
	hasCursor   bool
	mouseDown   bool

	now func() time.Time
}

func NewInput() *Input {
	return &Input{
		keys:        make(map[game.Action]time.Time),
		justPressed: make(map[game.Action]bool),
		now:         time.Now,
	}
}

func keyAction(ev *tcell.EventKey) (game.Action, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.ActionUp, true
	case tcell.KeyDown:
		return game.ActionDown, true
	case tcell.KeyLeft:
		return game.ActionLeft, true
	case tcell.KeyRight:
		return game.ActionRight, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return game.ActionUp, true
		case 's', 'S':
			return game.ActionDown, true
		case 'a', 'A':
			return game.ActionLeft, true
		case 'd', 'D':
			return game.ActionRight, true
		case ' ':
			return game.ActionFire, true
		}
	}
	return 0, false
}

// HandleEvent records a key or mouse event. It reports whether the event was
// consumed.
func (in *Input) HandleEvent(ev tcell.Event) bool {
	in.mu.Lock()
	defer in.mu.Unlock()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		action, ok := keyAction(ev)
		if !ok {
			return false
		}
		now := in.now()
		if !in.heldAt(action, now) {
			in.justPressed[action] = true
		}
		in.keys[action] = now
		return true
	case *tcell.EventMouse:
		x, y := ev.Position()
		in.cursor = cellCenter(x, y)
		in.hasCursor = true

		down := ev.Buttons()&tcell.Button1 != 0
		if down && !in.mouseDown {
			in.justPressed[game.ActionFire] = true
		}
		in.mouseDown = down
		return true
	}
	return false
}

func (in *Input) heldAt(action game.Action, now time.Time) bool {
	last, ok := in.keys[action]
	return ok && now.Sub(last) < keyTimeout
}

// Step forgets the presses reported for the previous frame.
func (in *Input) Step() {
	in.mu.Lock()
	defer in.mu.Unlock()
	clear(in.justPressed)
}

func (in *Input) Pressed(action game.Action) bool {
	in.mu.Lock()
	defer in.mu.Unlock()

	if action == game.ActionFire && in.mouseDown {
		return true
	}
	return in.heldAt(action, in.now())
}

func (in *Input) JustPressed(action game.Action) bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.justPressed[action]
}

// Cursor returns the last mouse position in viewport pixels.
func (in *Input) Cursor() (mgl64.Vec2, bool) {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.cursor, in.hasCursor
}
