package modarith

import "math"

// Layout constants for the ring drawings, in world units with the origin at
// the centre and y pointing up.
const (
	CircleSize      = 32.0
	RingSpacing     = 40.0
	RingRadiusScale = 4.0
	CycleRadius     = 320.0

	// arrowShrink is the fraction trimmed from each end of an arrow so it
	// does not overlap the circles it joins.
	arrowShrink = 0.05
)

type Point struct {
	X, Y  float64
	Label int
}

type Arrow struct {
	Start, End Point
}

// RingCount is the number of rings needed to lay out 0..operand.
// An operand that is an exact multiple still gets its own ring, so 3 mod 3
// shows two rings.
func RingCount(operand, modulus int) int {
	if modulus <= 0 {
		return 0
	}
	return (operand + modulus) / modulus
}

// RingRadius is the radius of ring nr when laying out modulus residues.
func RingRadius(modulus, nr int) float64 {
	return CircleSize*float64(modulus)/RingRadiusScale + float64(nr)*RingSpacing
}

// ReductionPoints lays out 0..RingCount*modulus-1 on concentric rings,
// modulus points per ring, starting at 12 o'clock and going clockwise.
func ReductionPoints(operand, modulus int) []Point {
	rings := RingCount(operand, modulus)
	points := make([]Point, 0, rings*modulus)
	for nr := 0; nr < rings; nr++ {
		points = appendRing(points, modulus, RingRadius(modulus, nr), nr*modulus)
	}
	return points
}

// CyclePoints lays out 0..modulus-1 on a single circle.
func CyclePoints(modulus int) []Point {
	if modulus <= 0 {
		return nil
	}
	return appendRing(make([]Point, 0, modulus), modulus, CycleRadius, 0)
}

func appendRing(points []Point, modulus int, radius float64, first int) []Point {
	for i := 0; i < modulus; i++ {
		angle := 2 * math.Pi * float64(i) / float64(modulus)
		points = append(points, Point{
			X:     math.Sin(angle) * radius,
			Y:     math.Cos(angle) * radius,
			Label: first + i,
		})
	}
	return points
}

// ShrinkArrow pulls both ends of the segment from a to b slightly toward
// each other.
func ShrinkArrow(a, b Point) Arrow {
	dx, dy := b.X-a.X, b.Y-a.Y
	return Arrow{
		Start: Point{X: a.X + arrowShrink*dx, Y: a.Y + arrowShrink*dy, Label: a.Label},
		End:   Point{X: b.X - arrowShrink*dx, Y: b.Y - arrowShrink*dy, Label: b.Label},
	}
}

// ReductionArrow points from the outermost point congruent to remainder to
// the innermost one. ok is false when no point carries that residue.
func ReductionArrow(points []Point, modulus, remainder int) (arrow Arrow, ok bool) {
	if modulus <= 0 {
		return Arrow{}, false
	}
	var inner, outer *Point
	for i := range points {
		if points[i].Label%modulus != remainder {
			continue
		}
		if inner == nil {
			inner = &points[i]
		}
		outer = &points[i]
	}
	if inner == nil {
		return Arrow{}, false
	}
	return ShrinkArrow(*outer, *inner), true
}

// CycleArrows joins every residue i to i+generator on a single ring. The
// orbit of 0 is one of the cycles these arrows form; the others are its
// cosets.
func CycleArrows(points []Point, generator, modulus int) []Arrow {
	if modulus <= 0 || len(points) < modulus {
		return nil
	}
	arrows := make([]Arrow, 0, modulus)
	for i := 0; i < modulus; i++ {
		end := (i + generator) % modulus
		arrows = append(arrows, ShrinkArrow(points[i], points[end]))
	}
	return arrows
}

// OrbitArrows joins consecutive residues of seq.
func OrbitArrows(points []Point, seq CycleSequence) []Arrow {
	if len(seq.Residues) < 2 {
		return nil
	}
	arrows := make([]Arrow, 0, len(seq.Residues)-1)
	for i := 1; i < len(seq.Residues); i++ {
		from, to := seq.Residues[i-1], seq.Residues[i]
		if from >= len(points) || to >= len(points) {
			break
		}
		arrows = append(arrows, ShrinkArrow(points[from], points[to]))
	}
	return arrows
}
