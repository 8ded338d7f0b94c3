package viz

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders the animation progress as a bar of width cells.
func ProgressBar(percent float64, width int, fill lipgloss.Style) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return fill.Render(strings.Repeat("█", filled)) + strings.Repeat("░", width-filled)
}

// ResidueStrip lists labels in order, rendering the ones in active with
// the highlight style. Long sets are elided in the middle.
func ResidueStrip(labels []int, active func(int) bool, normal, highlight lipgloss.Style, limit int) string {
	if len(labels) == 0 {
		return ""
	}
	parts := make([]string, 0, len(labels))
	for i, l := range labels {
		if limit > 0 && len(labels) > limit && i == limit/2 {
			parts = append(parts, normal.Render("…"))
		}
		if limit > 0 && len(labels) > limit && i >= limit/2 && i < len(labels)-limit/2 {
			continue
		}
		s := strconv.Itoa(l)
		if active(l) {
			parts = append(parts, highlight.Render("["+s+"]"))
		} else {
			parts = append(parts, normal.Render(s))
		}
	}
	return strings.Join(parts, " ")
}

// Separator is a decorative horizontal rule.
func Separator(width int, style lipgloss.Style) string {
	if width < 8 {
		return style.Render(strings.Repeat("─", width))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return style.Render(left + " ◆ " + right)
}
