package scene

import (
	"github.com/san-kum/modviz/internal/modarith"
	"github.com/san-kum/modviz/internal/timeline"
)

// Ring is one circle of the reduction drawing.
type Ring struct {
	Radius  float64
	Visible bool
}

// Snapshot is a read-only view of a scene for one frame. All slices are
// freshly allocated; front ends may keep or modify them.
type Snapshot struct {
	Params    Params
	Mode      Mode
	Progress  float64
	Animating bool
	Done      bool
	Message   string

	HasResult bool
	Result    Result

	// Points are laid out for Result, not for Params; edits only show up
	// after the next Generate.
	Points        []modarith.Point
	VisiblePoints int
	Rings         []Ring
	// Arrows holds only the arrows revealed so far.
	Arrows []modarith.Arrow
	// Orbit holds the arrows along the orbit of 0 revealed so far.
	Orbit []modarith.Arrow
	// Highlight lists the labels drawn as active.
	Highlight []int
}

// IsHighlighted reports whether label is active in this frame.
func (s Snapshot) IsHighlighted(label int) bool {
	for _, h := range s.Highlight {
		if h == label {
			return true
		}
	}
	return false
}

// Summary is a one-line description of the result for status bars.
func (s Snapshot) Summary() string {
	if !s.HasResult {
		return "press Generate"
	}
	switch s.Result.Mode {
	case ModeCycle:
		return s.Result.Cycle.String()
	default:
		return s.Result.Reduction.String()
	}
}

func (s *Scene) Snapshot() Snapshot {
	res, ok := s.Result()
	snap := Snapshot{
		Params:    s.params,
		Mode:      s.mode,
		Progress:  s.timeline.Progress(),
		Animating: s.timeline.Active(),
		Message:   s.message,
		HasResult: ok,
		Result:    res,
	}
	if !ok {
		return snap
	}
	snap.Done = snap.Progress >= 1

	switch res.Mode {
	case ModeReduction:
		layoutReduction(&snap)
	case ModeCycle:
		layoutCycle(&snap)
	}
	return snap
}

// layoutReduction reveals points one by one across the rings; once all are
// visible, the arrow from the operand to its remainder appears.
func layoutReduction(snap *Snapshot) {
	r := snap.Result.Reduction
	m := r.Modulus

	snap.Points = modarith.ReductionPoints(r.Operand, m)
	snap.VisiblePoints = timeline.VisibleCount(snap.Progress, len(snap.Points))

	rings := modarith.RingCount(r.Operand, m)
	snap.Rings = make([]Ring, rings)
	for nr := range snap.Rings {
		snap.Rings[nr] = Ring{
			Radius:  modarith.RingRadius(m, nr),
			Visible: snap.VisiblePoints > 0 && (snap.VisiblePoints-1)/m >= nr,
		}
	}

	if !snap.Done {
		if snap.VisiblePoints > 0 {
			snap.Highlight = []int{snap.Points[snap.VisiblePoints-1].Label}
		}
		return
	}
	if a, ok := modarith.ReductionArrow(snap.Points, m, r.Remainder); ok {
		snap.Arrows = []modarith.Arrow{a}
	}
	snap.Highlight = []int{r.Operand, r.Remainder}
}

// layoutCycle shows every residue at once and reveals the translation
// arrows and the orbit of 0 as the animation runs.
func layoutCycle(snap *Snapshot) {
	c := snap.Result.Cycle

	snap.Points = modarith.CyclePoints(c.Modulus)
	snap.VisiblePoints = len(snap.Points)
	snap.Rings = []Ring{{Radius: modarith.CycleRadius, Visible: true}}

	all := modarith.CycleArrows(snap.Points, c.Generator, c.Modulus)
	snap.Arrows = all[:timeline.VisibleCount(snap.Progress, len(all))]

	orbit := modarith.OrbitArrows(snap.Points, c)
	snap.Orbit = orbit[:timeline.VisibleCount(snap.Progress, len(orbit))]

	reached := timeline.VisibleCount(snap.Progress, c.Len())
	if reached == 0 {
		reached = 1
	}
	snap.Highlight = append([]int(nil), c.Residues[:reached]...)
}
