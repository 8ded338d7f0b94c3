package viz

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestResidueStrip(t *testing.T) {
	plain := lipgloss.NewStyle()
	active := func(l int) bool { return l == 3 }

	got := ResidueStrip([]int{0, 1, 2, 3}, active, plain, plain, 0)
	if got != "0 1 2 [3]" {
		t.Errorf("unexpected strip %q", got)
	}

	labels := make([]int, 40)
	for i := range labels {
		labels[i] = i
	}
	long := ResidueStrip(labels, active, plain, plain, 10)
	if !strings.Contains(long, "…") || strings.Contains(long, " 20 ") {
		t.Errorf("expected elided strip, got %q", long)
	}
	if !strings.HasPrefix(long, "0 1 2 [3] 4 …") || !strings.HasSuffix(long, "35 36 37 38 39") {
		t.Errorf("unexpected elision %q", long)
	}
}

func TestProgressBar(t *testing.T) {
	plain := lipgloss.NewStyle()
	if got := ProgressBar(0.5, 4, plain); got != "██░░" {
		t.Errorf("unexpected bar %q", got)
	}
	if got := ProgressBar(2, 3, plain); got != "███" {
		t.Errorf("expected clamped bar, got %q", got)
	}
}
