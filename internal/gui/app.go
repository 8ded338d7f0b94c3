package gui

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/modviz/internal/config"
	"github.com/san-kum/modviz/internal/scene"
)

// Theme Colors, white paper with blue rings and orange arrows.
var (
	ColBg        = rl.NewColor(255, 255, 255, 255)
	ColInk       = rl.NewColor(20, 20, 20, 255)
	ColRing      = rl.NewColor(0, 191, 255, 255)
	ColArrow     = rl.NewColor(245, 173, 66, 150) // Transparent orange
	ColOrbit     = rl.NewColor(255, 140, 0, 255)
	ColHighlight = rl.NewColor(255, 214, 140, 255)
	ColPanel     = rl.NewColor(240, 240, 244, 255)
	ColWidget    = rl.NewColor(255, 255, 255, 255)
	ColFocus     = rl.NewColor(0, 120, 215, 255)
	ColTextDim   = rl.NewColor(110, 110, 110, 255)
	ColError     = rl.NewColor(200, 30, 30, 255)
)

const panelWidth = 260

type App struct {
	Scene  *scene.Scene
	Width  int32
	Height int32

	ui   *ui
	quit bool
}

// initWindow opens the window at the configured size and frame rate and
// disables the default exit key so Escape can cancel edits.
func initWindow(cfg *config.Config) {
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), "modviz")
	rl.SetTargetFPS(int32(cfg.FPS))
	rl.SetExitKey(0)
}

func NewApp(s *scene.Scene, cfg *config.Config) *App {
	return &App{
		Scene:  s,
		Width:  int32(cfg.Window.Width),
		Height: int32(cfg.Window.Height),
		ui:     newUI(),
	}
}

// Run opens the window and blocks until it is closed. When generate is
// true the scene is generated once before the first frame, as if the
// button had been pressed.
func Run(s *scene.Scene, cfg *config.Config, generate bool) {
	initWindow(cfg)
	defer rl.CloseWindow()

	app := NewApp(s, cfg)
	if generate {
		if err := s.OnGenerate(); err != nil {
			log.Printf("initial generate: %v", err)
		}
	}
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !a.quit && !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

// Update advances the animation and handles keyboard shortcuts that are
// not owned by a focused text field.
func (a *App) Update() {
	a.Scene.AdvanceFrame()

	if a.ui.editing() {
		return
	}
	if rl.IsKeyPressed(rl.KeyQ) {
		a.quit = true
		return
	}
	if rl.IsKeyPressed(rl.KeyM) {
		a.toggleMode()
	}
	if rl.IsKeyPressed(rl.KeyG) || rl.IsKeyPressed(rl.KeyEnter) {
		a.Scene.OnGenerate()
	}
}

func (a *App) toggleMode() {
	if a.Scene.Mode() == scene.ModeReduction {
		a.Scene.SetMode(scene.ModeCycle)
	} else {
		a.Scene.SetMode(scene.ModeReduction)
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	rl.ClearBackground(ColBg)

	snap := a.Scene.Snapshot()
	w := int32(rl.GetScreenWidth())
	h := int32(rl.GetScreenHeight())
	a.renderScene(snap, panelWidth, 0, w-panelWidth, h)
	a.drawPanel(snap, h)
}
