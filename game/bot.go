package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// botPattern is the sequence of held directions the bot cycles through.
var botPattern = [][]Action{
	{ActionRight},
	{ActionUp, ActionRight},
	{ActionUp},
	{ActionUp, ActionLeft},
	{ActionLeft},
	{ActionDown, ActionLeft},
	{ActionDown},
	{ActionDown, ActionRight},
}

// Bot plays through a ScriptedInput: it walks in a slow circle, aims at the
// nearest enemy and keeps the trigger held.
type Bot struct {
	Input *ScriptedInput
	// Leg is how long each direction of the walking pattern is held.
	Leg float64

	elapsed float64
	step    int
}

func NewBot(input *ScriptedInput) *Bot {
	return &Bot{Input: input, Leg: 1.5}
}

// Drive updates the held actions and cursor for the next frame of w.
func (b *Bot) Drive(w *World, dt float64) {
	b.Input.Step()

	b.elapsed += dt
	if b.elapsed >= b.Leg {
		b.elapsed = 0
		b.step = (b.step + 1) % len(botPattern)
	}
	held := botPattern[b.step]

	target, ok := nearestEnemy(w)
	if !ok {
		b.Input.HideCursor()
		b.Input.Hold(held...)
		return
	}
	b.Input.SetCursor(w.Camera.WorldToScreen(target))
	b.Input.Hold(append(held[:len(held):len(held)], ActionFire)...)
}

func nearestEnemy(w *World) (mgl64.Vec2, bool) {
	player := w.Player.Get()
	if player == nil {
		return mgl64.Vec2{}, false
	}
	origin := player.Transform.Pos2()

	best, found := math.Inf(1), false
	var target mgl64.Vec2
	for enemy := range w.Enemies.Values() {
		p := enemy.Transform.Pos2()
		d := p.Sub(origin)
		if dist := d.Dot(d); dist < best {
			best, target, found = dist, p, true
		}
	}
	return target, found
}
