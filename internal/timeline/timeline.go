// Package timeline drives frame-counted animations.
//
// A Timeline is owned by whoever advances it; it never reads a wall clock.
// Callers tick it once per rendered frame.
package timeline

import "math"

// DefaultTicks is one second at 60 frames per second.
const DefaultTicks = 60

// State is a copy of the timeline counters.
type State struct {
	Elapsed int
	Total   int
	Active  bool
}

// Timeline is a two-state machine: idle, or running with Elapsed advancing
// toward Total.
type Timeline struct {
	elapsed int
	total   int
	active  bool
}

func New() *Timeline {
	return &Timeline{total: DefaultTicks}
}

// Start (re)starts the animation over total ticks, regardless of the
// current phase. A non-positive total is treated as a single tick.
func (t *Timeline) Start(total int) {
	if total < 1 {
		total = 1
	}
	t.elapsed = 0
	t.total = total
	t.active = true
}

// Tick advances a running timeline by one frame. It is a no-op when idle.
func (t *Timeline) Tick() {
	if !t.active {
		return
	}
	t.elapsed++
	if t.elapsed >= t.total {
		t.active = false
	}
}

// Progress is min(1, elapsed/total). A timeline that has never run reports 0.
func (t *Timeline) Progress() float64 {
	if t.total <= 0 {
		return 0
	}
	return math.Min(1, float64(t.elapsed)/float64(t.total))
}

func (t *Timeline) Active() bool { return t.active }

func (t *Timeline) State() State {
	return State{Elapsed: t.elapsed, Total: t.total, Active: t.active}
}

// Visible is the number of n items revealed at the current progress,
// ceil(progress*n).
func (t *Timeline) Visible(n int) int {
	return VisibleCount(t.Progress(), n)
}

// VisibleCount maps a progress fraction onto 0..n items.
func VisibleCount(progress float64, n int) int {
	if n <= 0 || progress <= 0 {
		return 0
	}
	if progress >= 1 {
		return n
	}
	v := int(math.Ceil(progress*float64(n) - 1e-9))
	if v > n {
		return n
	}
	return v
}
