// Package view is the ebiten desktop frontend.
package view

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/shooter/audio"
	"github.com/plus3/shooter/ecs/debugui"
	debugui_ebiten "github.com/plus3/shooter/ecs/debugui/ebiten"
	"github.com/plus3/shooter/game"
)

const windowTitle = "shooter"

// Options selects the optional parts of the ebiten frontend.
type Options struct {
	Layout     KeyLayout
	DebugUI    bool
	ShowBounds bool
	// Sound may be nil.
	Sound *audio.Player
}

// App runs a game inside an ebiten window. Escape quits, F5 restarts, F1
// toggles the debug windows and the mouse wheel zooms.
type App struct {
	game     *game.Game
	input    *Input
	renderer Renderer
	sound    *audio.Player

	imgui     *debugui_ebiten.ImguiBackend
	showDebug bool
}

// NewApp builds the game against the ebiten input and opens the window.
func NewApp(cfg game.Config, opts Options) (*App, error) {
	input := NewInput(opts.Layout)
	g, err := game.NewGame(cfg, input)
	if err != nil {
		return nil, fmt.Errorf("new app: %w", err)
	}

	a := &App{
		game:     g,
		input:    input,
		renderer: Renderer{ShowBounds: opts.ShowBounds},
		sound:    opts.Sound,
	}

	if opts.DebugUI {
		a.imgui = debugui_ebiten.NewImguiBackend(windowTitle, game.WindowWidth, game.WindowHeight)
		a.showDebug = true
		a.installDebugUI()
	} else {
		ebiten.SetWindowTitle(windowTitle)
		ebiten.SetWindowSize(game.WindowWidth, game.WindowHeight)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return a, nil
}

// Game exposes the running game.
func (a *App) Game() *game.Game {
	return a.game
}

func (a *App) installDebugUI() {
	state := &debugui.ImguiInputState{}
	a.input.CaptureMouse = func() bool {
		return a.showDebug && state.WantCaptureMouse
	}

	stats := debugui.NewPerformanceStats(120)
	timer := debugui.NewFrameTimer()
	browser := debugui.NewEntityBrowser(100)
	inspector := debugui.NewInspector()
	w := a.game.World

	a.game.AddSystem(&debugui.ImguiSystem[*game.World]{
		InputState: state,
		Items: []debugui.ImguiItem{
			{Render: func() {
				if a.showDebug {
					stats.Render(a.game.Stats(), tableInfo(w), timer.GetDeltaTime())
				}
			}},
			{Render: func() {
				for _, c := range w.Compactions {
					browser.Remap(c.Kind, c.Translate)
				}
				if !a.showDebug {
					return
				}
				rows := EntityRows(w)
				browser.Render(rows)
				if row, ok := browser.Selected(rows); ok {
					inspector.Render(row.ID, row.Record)
				} else {
					inspector.Render(0, nil)
				}
			}},
		},
	})
}

func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.game.Logger().Info("quit requested")
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		a.game.Restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) && a.imgui != nil {
		a.showDebug = !a.showDebug
	}

	cfg := a.game.World.Config
	a.game.World.Camera.ZoomBy(a.input.Wheel(), cfg.MinZoom, cfg.MaxZoom)

	if a.imgui != nil {
		a.imgui.BeginFrame()
		defer a.imgui.EndFrame()
	}

	a.game.Update(1 / float64(ebiten.TPS()))
	a.playEvents(&a.game.World.Events)
	return nil
}

func (a *App) playEvents(ev *game.Events) {
	if a.sound == nil {
		return
	}
	if len(ev.Shots) > 0 {
		a.sound.Play(audio.SoundShot)
	}
	if len(ev.Kills) > 0 {
		a.sound.Play(audio.SoundKill)
	} else if len(ev.Hits) > 0 {
		a.sound.Play(audio.SoundHit)
	}
	if len(ev.Contacts) > 0 {
		a.sound.Play(audio.SoundHurt)
	}
}

func (a *App) Draw(screen *ebiten.Image) {
	a.renderer.Draw(screen, a.game.World)
	if a.imgui != nil {
		a.imgui.DrawOver(screen)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if a.imgui != nil {
		a.imgui.Layout(outsideWidth, outsideHeight)
	}
	a.game.World.Camera.SetViewport(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Run blocks until the window is closed or the player quits.
func (a *App) Run() error {
	if err := ebiten.RunGame(a); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	a.game.Logger().Info("game closed", "frames", a.game.Stats().Frames)
	return nil
}
