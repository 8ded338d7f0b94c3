package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/modviz/internal/modarith"
	"github.com/san-kum/modviz/internal/scene"
)

const margin = 24.0

// SnapshotToSVG renders a scene snapshot as a standalone SVG document, with
// the same rings, labelled circles and arrows the GUI draws.
func SnapshotToSVG(snap scene.Snapshot) string {
	var sb strings.Builder

	outer := modarith.CircleSize
	if n := len(snap.Rings); n > 0 {
		outer = snap.Rings[n-1].Radius + modarith.CircleSize/2
	}
	size := 2 * (outer + margin)

	// SVG header; world y points up, so points are flipped below.
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="%.1f %.1f %.1f %.1f">
<defs><marker id="head" viewBox="0 0 10 10" refX="8" refY="5" markerWidth="4" markerHeight="4" orient="auto-start-reverse"><path d="M0,0 L10,5 L0,10 z" fill="#f5ad42"/></marker></defs>
<rect x="%.1f" y="%.1f" width="100%%" height="100%%" fill="#ffffff"/>
`, size, size, -size/2, -size/2, size, size, -size/2, -size/2))

	sb.WriteString(fmt.Sprintf("<title>%s</title>\n", escape(snap.Summary())))

	sb.WriteString(`<g fill="none" stroke="#00bfff" stroke-width="2">` + "\n")
	for nr := len(snap.Rings) - 1; nr >= 0; nr-- {
		if snap.Rings[nr].Visible {
			sb.WriteString(fmt.Sprintf(`<circle cx="0" cy="0" r="%.1f"/>`+"\n", snap.Rings[nr].Radius))
		}
	}
	sb.WriteString("</g>\n")

	sb.WriteString(`<g stroke="#000000" stroke-width="1.5" font-family="monospace" font-size="12" text-anchor="middle" dominant-baseline="central">` + "\n")
	for _, p := range snap.Points[:snap.VisiblePoints] {
		fill := "#ffffff"
		if snap.IsHighlighted(p.Label) {
			fill = "#ffd68c"
		}
		x, y := flip(p)
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>`+"\n", x, y, modarith.CircleSize/2, fill))
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" stroke="none" fill="#000000">%d</text>`+"\n", x, y, p.Label))
	}
	sb.WriteString("</g>\n")

	weight := 8.0
	if snap.Result.Mode == scene.ModeCycle {
		weight = 4.0
	}
	writeArrows(&sb, snap.Arrows, weight, "#f5ad42", 0.6)
	writeArrows(&sb, snap.Orbit, weight, "#ff8c00", 1)

	sb.WriteString("</svg>\n")
	return sb.String()
}

func writeArrows(sb *strings.Builder, arrows []modarith.Arrow, weight float64, color string, opacity float64) {
	if len(arrows) == 0 {
		return
	}
	sb.WriteString(fmt.Sprintf(`<g stroke="%s" stroke-opacity="%.2f" stroke-width="%.1f" marker-end="url(#head)">`+"\n", color, opacity, weight))
	for _, a := range arrows {
		x1, y1 := flip(a.Start)
		x2, y2 := flip(a.End)
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n", x1, y1, x2, y2))
	}
	sb.WriteString("</g>\n")
}

func flip(p modarith.Point) (float64, float64) {
	return coord(p.X), coord(-p.Y)
}

// coord rounds to the printed precision so tiny negatives don't print as -0.0.
func coord(v float64) float64 {
	v = math.Round(v*10) / 10
	if v == 0 {
		return 0
	}
	return v
}

func escape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
