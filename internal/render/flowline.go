package render

import (
	"strings"

	"github.com/evoterm/gamescape/internal/dynamics"
)

// Fixed-point glyphs on the flow line and in the report.
const (
	GlyphStable   = "@"
	GlyphUnstable = "o"
	GlyphNeutral  = "~"
)

// Marker returns the glyph for a fixed point.
func Marker(fp dynamics.FixedPoint) string {
	switch {
	case fp.Neutral:
		return GlyphNeutral
	case fp.Stable:
		return GlyphStable
	default:
		return GlyphUnstable
	}
}

// FlowLine renders the 1-D phase line: x=0 (all-D) on the left, x=1
// (all-C) on the right, fixed points as glyphs, arrows showing the
// flow direction between them.
func FlowLine(m dynamics.PayoffMatrix, width int, st Styles) string {
	fps := dynamics.FindFixedPoints(m)

	var sb strings.Builder
	for i := 0; i < width; i++ {
		x := float64(i) / float64(width-1)

		var near *dynamics.FixedPoint
		for j := range fps {
			if diff := x - fps[j].X; diff < 0.5/float64(width) && diff > -0.5/float64(width) {
				near = &fps[j]
				break
			}
		}

		if near != nil {
			switch {
			case near.Neutral:
				sb.WriteString(st.Neutral.Render(GlyphNeutral))
			case near.Stable:
				sb.WriteString(st.Stable.Render(GlyphStable))
			default:
				sb.WriteString(st.Unstable.Render(GlyphUnstable))
			}
			continue
		}

		switch dx := m.Flow(x); {
		case dx > 0:
			sb.WriteString(st.Right.Render(">"))
		case dx < 0:
			sb.WriteString(st.Left.Render("<"))
		default:
			sb.WriteString(st.Dim.Render("."))
		}
	}

	return "  " + st.Label.Render("all-D") + " |" + sb.String() + "| " + st.Label.Render("all-C")
}
