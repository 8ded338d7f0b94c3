package export

import (
	"strings"
	"testing"

	"github.com/san-kum/modviz/internal/scene"
)

func finished(t *testing.T, mode scene.Mode, p scene.Params) scene.Snapshot {
	t.Helper()
	s := scene.New(scene.Options{Params: p, Ticks: 1})
	if err := s.OnGenerateMode(mode); err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	s.AdvanceFrame()
	return s.Snapshot()
}

func TestSnapshotToSVG_Reduction(t *testing.T) {
	svg := SnapshotToSVG(finished(t, scene.ModeReduction, scene.Params{Operand: 7, Modulus: 3}))

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>\n") {
		t.Fatal("expected a complete SVG document")
	}
	if got := strings.Count(svg, "<text "); got != 9 {
		t.Errorf("expected 9 labels, got %d", got)
	}
	if got := strings.Count(svg, `<circle cx="0" cy="0"`); got != 3 {
		t.Errorf("expected 3 rings, got %d", got)
	}
	if got := strings.Count(svg, "<line "); got != 1 {
		t.Errorf("expected 1 arrow, got %d", got)
	}
	if !strings.Contains(svg, "<title>7 mod 3 = 1</title>") {
		t.Error("expected summary title")
	}
	if strings.Contains(svg, "-0.0") {
		t.Error("unexpected negative zero in output")
	}
}

func TestSnapshotToSVG_Cycle(t *testing.T) {
	svg := SnapshotToSVG(finished(t, scene.ModeCycle, scene.Params{Modulus: 12, Generator: 3}))

	// 12 translation arrows plus 4 along the orbit of 0.
	if got := strings.Count(svg, "<line "); got != 16 {
		t.Errorf("expected 16 arrows, got %d", got)
	}
	if got := strings.Count(svg, `fill="#ffd68c"`); got != 4 {
		t.Errorf("expected 4 highlighted residues, got %d", got)
	}
	if !strings.Contains(svg, "&gt;") {
		t.Error("expected escaped orbit summary")
	}
}

func TestSnapshotToSVG_Empty(t *testing.T) {
	s := scene.New(scene.Options{Params: scene.Params{Modulus: 5}})
	svg := SnapshotToSVG(s.Snapshot())

	if strings.Contains(svg, "<text ") {
		t.Error("expected no labels before generate")
	}
	if !strings.Contains(svg, "press Generate") {
		t.Error("expected placeholder title")
	}
}
