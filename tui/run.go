package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/shooter/game"
)

// FrameDuration is the tick of the terminal loop.
const FrameDuration = time.Second / 30

// maxFrameTime caps the delta after a stall so the world does not jump.
const maxFrameTime = 0.1

// Run plays g on screen until Escape is pressed or ctx is cancelled. The
// screen must already be initialized; Run does not finalize it.
func Run(ctx context.Context, screen tcell.Screen, g *game.Game, input *Input) error {
	screen.EnableMouse()
	resize(screen, g)

	events := make(chan tcell.Event, 10)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(FrameDuration)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if done := handle(screen, g, input, ev); done {
				g.Logger().Info("quit requested")
				return nil
			}
		case now := <-ticker.C:
			dt := min(now.Sub(last).Seconds(), maxFrameTime)
			last = now

			g.Update(dt)
			input.Step()
			Draw(screen, g.World)
			_, rows := screen.Size()
			drawText(screen, 0, rows-1, statusLine(g), hudStyle)
			screen.Show()
		}
	}
}

func handle(screen tcell.Screen, g *game.Game, input *Input, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyF5:
			g.Restart()
			return false
		}
	case *tcell.EventResize:
		resize(screen, g)
		screen.Sync()
		return false
	}
	input.HandleEvent(ev)
	return false
}

func resize(screen tcell.Screen, g *game.Game) {
	cols, rows := screen.Size()
	w, h := Viewport(cols, rows)
	g.World.Camera.SetViewport(w, h)
}

// Open creates and initializes a terminal screen.
func Open() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault.
		Background(tcell.ColorDefault).
		Foreground(tcell.ColorWhite))
	screen.Clear()
	return screen, nil
}
