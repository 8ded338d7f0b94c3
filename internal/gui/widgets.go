package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/modviz/internal/scene"
)

const (
	widgetHeight = 32
	fontSize     = 18
)

// ui is the state carried between frames by the immediate-mode widgets:
// which text field has focus and what has been typed into it.
type ui struct {
	active string
	buffer string
}

func newUI() *ui {
	return &ui{}
}

func (u *ui) editing() bool {
	return u.active != ""
}

// textField draws an editable numeric field. It returns the typed text and
// true on the frame the edit is committed (Enter, Tab or a click outside).
func (u *ui) textField(id string, rec rl.Rectangle, value string) (string, bool) {
	mouse := rl.GetMousePosition()
	clicked := rl.IsMouseButtonPressed(rl.MouseLeftButton)
	hover := rl.CheckCollisionPointRec(mouse, rec)

	committed := false
	text := value
	if u.active == id {
		for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
			if ch >= '0' && ch <= '9' && len(u.buffer) < 6 {
				u.buffer += string(rune(ch))
			}
		}
		if rl.IsKeyPressed(rl.KeyBackspace) && len(u.buffer) > 0 {
			u.buffer = u.buffer[:len(u.buffer)-1]
		}
		switch {
		case rl.IsKeyPressed(rl.KeyEscape):
			u.active, u.buffer = "", ""
		case rl.IsKeyPressed(rl.KeyEnter), rl.IsKeyPressed(rl.KeyTab), clicked && !hover:
			text, committed = u.buffer, true
			u.active, u.buffer = "", ""
		default:
			text = u.buffer
		}
	} else if clicked && hover {
		u.active, u.buffer = id, value
		text = value
	}

	border := ColTextDim
	if u.active == id {
		border = ColFocus
	}
	rl.DrawRectangleRec(rec, ColWidget)
	rl.DrawRectangleLinesEx(rec, 2, border)
	shown := text
	if u.active == id {
		shown += "_"
	}
	rl.DrawText(shown, int32(rec.X)+8, int32(rec.Y)+(widgetHeight-fontSize)/2, fontSize, ColInk)
	return text, committed
}

// button draws a push button and reports a click on it this frame.
func button(rec rl.Rectangle, label string, fill rl.Color) bool {
	hover := rl.CheckCollisionPointRec(rl.GetMousePosition(), rec)
	if hover {
		fill = rl.ColorAlpha(fill, 0.8)
	}
	rl.DrawRectangleRec(rec, fill)
	rl.DrawRectangleLinesEx(rec, 1, ColInk)
	tw := rl.MeasureText(label, fontSize)
	rl.DrawText(label, int32(rec.X)+(int32(rec.Width)-tw)/2, int32(rec.Y)+(widgetHeight-fontSize)/2, fontSize, ColInk)
	return hover && rl.IsMouseButtonPressed(rl.MouseLeftButton)
}

// drawPanel lays out the input widgets down the left edge and feeds their
// events to the scene.
func (a *App) drawPanel(snap scene.Snapshot, h int32) {
	rl.DrawRectangle(0, 0, panelWidth, h, ColPanel)

	const x, w = 16, panelWidth - 32
	y := float32(16)
	rl.DrawText("modviz", x, int32(y), 28, ColInk)
	y += 48

	fields := []struct {
		name  string
		value int
	}{
		{scene.FieldOperand, snap.Params.Operand},
		{scene.FieldModulus, snap.Params.Modulus},
		{scene.FieldGenerator, snap.Params.Generator},
	}
	for _, f := range fields {
		rl.DrawText(f.name, x, int32(y), 16, ColTextDim)
		y += 20
		rec := rl.NewRectangle(x, y, w, widgetHeight)
		if text, ok := a.ui.textField(f.name, rec, fmt.Sprint(f.value)); ok {
			a.Scene.SetField(f.name, text)
		}
		y += widgetHeight + 12
	}

	half := float32(w-8) / 2
	redFill, cycFill := ColHighlight, ColWidget
	if snap.Mode == scene.ModeCycle {
		redFill, cycFill = ColWidget, ColHighlight
	}
	if button(rl.NewRectangle(x, y, half, widgetHeight), "Reduce", redFill) {
		a.Scene.SetMode(scene.ModeReduction)
	}
	if button(rl.NewRectangle(x+half+8, y, half, widgetHeight), "Cycle", cycFill) {
		a.Scene.SetMode(scene.ModeCycle)
	}
	y += widgetHeight + 12

	if button(rl.NewRectangle(x, y, w, widgetHeight), "Generate", ColRing) {
		a.Scene.OnGenerate()
	}
	y += widgetHeight + 20

	rl.DrawText(snap.Summary(), x, int32(y), 16, ColInk)
	y += 24

	bar := rl.NewRectangle(x, y, w, 8)
	rl.DrawRectangleRec(bar, ColWidget)
	bar.Width *= float32(snap.Progress)
	rl.DrawRectangleRec(bar, ColOrbit)
	y += 24

	if snap.Message != "" {
		rl.DrawText(snap.Message, x, int32(y), 14, ColError)
	}

	rl.DrawText("G generate  M mode  Q quit", x, h-28, 14, ColTextDim)
}
