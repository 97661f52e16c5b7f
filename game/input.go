package game

import (
	"github.com/go-gl/mathgl/mgl64"
)

//go:generate go tool stringer -type=Action -trimprefix=Action
//go:generate go tool mockgen -destination=./mocks/input_mock.go -package=mocks . Input

// Action is a logical input; frontends bind one or more physical keys to each.
type Action int

const (
	ActionUp Action = iota
	ActionDown
	ActionLeft
	ActionRight
	ActionFire
)

// Input is the per-frame view of the player's devices.
type Input interface {
	// Pressed reports whether the action is currently held.
	Pressed(action Action) bool
	// JustPressed reports whether the action went down this frame.
	JustPressed(action Action) bool
	// Cursor returns the pointer position in viewport pixels, or false when
	// no pointer is available.
	Cursor() (mgl64.Vec2, bool)
}

// ScriptedInput is an Input driven from code. Tests and the bench bot set its
// state directly; Step ends the frame and clears the just-pressed edges.
type ScriptedInput struct {
	held        map[Action]bool
	justPressed map[Action]bool
	cursor      mgl64.Vec2
	hasCursor   bool
}

func NewScriptedInput() *ScriptedInput {
	return &ScriptedInput{
		held:        make(map[Action]bool),
		justPressed: make(map[Action]bool),
	}
}

// Press holds an action down. A press of a released action is also reported
// by JustPressed until the next Step.
func (s *ScriptedInput) Press(actions ...Action) {
	for _, a := range actions {
		if !s.held[a] {
			s.justPressed[a] = true
		}
		s.held[a] = true
	}
}

// Release lets go of the given actions.
func (s *ScriptedInput) Release(actions ...Action) {
	for _, a := range actions {
		delete(s.held, a)
	}
}

// ReleaseAll lets go of every action.
func (s *ScriptedInput) ReleaseAll() {
	clear(s.held)
}

// Hold makes exactly the given actions held, releasing every other one.
func (s *ScriptedInput) Hold(actions ...Action) {
	keep := make(map[Action]bool, len(actions))
	for _, a := range actions {
		keep[a] = true
	}
	for a := range s.held {
		if !keep[a] {
			delete(s.held, a)
		}
	}
	s.Press(actions...)
}

// SetCursor places the pointer at a viewport position.
func (s *ScriptedInput) SetCursor(p mgl64.Vec2) {
	s.cursor = p
	s.hasCursor = true
}

// HideCursor removes the pointer.
func (s *ScriptedInput) HideCursor() {
	s.hasCursor = false
}

// Step clears just-pressed edges; call it once per frame after the update.
func (s *ScriptedInput) Step() {
	clear(s.justPressed)
}

func (s *ScriptedInput) Pressed(action Action) bool {
	return s.held[action]
}

func (s *ScriptedInput) JustPressed(action Action) bool {
	return s.justPressed[action]
}

func (s *ScriptedInput) Cursor() (mgl64.Vec2, bool) {
	return s.cursor, s.hasCursor
}
