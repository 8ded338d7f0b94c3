package gui

import (
	"math"
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/modviz/internal/modarith"
	"github.com/san-kum/modviz/internal/scene"
)

const (
	pointRadius = modarith.CircleSize / 2
	labelSize   = 12
)

// view maps world coordinates (origin centre, y up) into the drawing area.
type view struct {
	cx, cy float32
	scale  float32
}

func fitView(x, y, w, h int32, radius float64) view {
	v := view{
		cx:    float32(x) + float32(w)/2,
		cy:    float32(y) + float32(h)/2,
		scale: 1,
	}
	half := 0.45 * math.Min(float64(w), float64(h))
	if radius > half {
		v.scale = float32(half / radius)
	}
	return v
}

func (v view) point(p modarith.Point) rl.Vector2 {
	return rl.NewVector2(v.cx+float32(p.X)*v.scale, v.cy-float32(p.Y)*v.scale)
}

func (a *App) renderScene(snap scene.Snapshot, x, y, w, h int32) {
	if !snap.HasResult || len(snap.Rings) == 0 {
		msg := "Enter values and press Generate"
		rl.DrawText(msg, x+(w-rl.MeasureText(msg, 20))/2, y+h/2, 20, ColTextDim)
		return
	}

	outer := snap.Rings[len(snap.Rings)-1].Radius + pointRadius
	v := fitView(x, y, w, h, outer)
	center := rl.NewVector2(v.cx, v.cy)

	// Largest ring first so the number circles sit on top.
	for nr := len(snap.Rings) - 1; nr >= 0; nr-- {
		ring := snap.Rings[nr]
		if !ring.Visible {
			continue
		}
		r := float32(ring.Radius) * v.scale
		rl.DrawRing(center, r-1, r+1, 0, 360, 96, ColRing)
	}

	switch snap.Result.Mode {
	case scene.ModeCycle:
		drawPoints(snap, v)
		for _, ar := range snap.Arrows {
			drawArrow(v, ar, 4, 12, ColArrow)
		}
		for _, ar := range snap.Orbit {
			drawArrow(v, ar, 4, 12, ColOrbit)
		}
	default:
		drawPoints(snap, v)
		for _, ar := range snap.Arrows {
			drawArrow(v, ar, 8, 20, ColArrow)
		}
	}
}

func drawPoints(snap scene.Snapshot, v view) {
	r := pointRadius * v.scale
	size := int32(math.Max(8, float64(labelSize*v.scale)))
	for _, p := range snap.Points[:snap.VisiblePoints] {
		pos := v.point(p)
		fill := ColWidget
		if snap.IsHighlighted(p.Label) {
			fill = ColHighlight
		}
		rl.DrawCircleV(pos, r, fill)
		rl.DrawRing(pos, r-1.5, r, 0, 360, 32, ColInk)

		label := strconv.Itoa(p.Label)
		tw := rl.MeasureText(label, size)
		rl.DrawText(label, int32(pos.X)-tw/2, int32(pos.Y)-size/2, size, ColInk)
	}
}

// drawArrow draws a thick shaft with a two-stroke head at the end point.
func drawArrow(v view, a modarith.Arrow, weight, head float32, col rl.Color) {
	start, end := v.point(a.Start), v.point(a.End)
	rl.DrawLineEx(start, end, weight*v.scale, col)

	angle := math.Atan2(float64(end.Y-start.Y), float64(end.X-start.X))
	for _, side := range []float64{-1, 1} {
		t := angle + math.Pi - side*math.Pi/6
		tip := rl.NewVector2(
			end.X+head*v.scale*float32(math.Cos(t)),
			end.Y+head*v.scale*float32(math.Sin(t)),
		)
		rl.DrawLineEx(end, tip, weight*v.scale, col)
	}
}
