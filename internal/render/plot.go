package render

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/evoterm/gamescape/internal/sim"
)

var seriesColors = []asciigraph.AnsiColor{
	asciigraph.Cyan,
	asciigraph.Green,
	asciigraph.Yellow,
	asciigraph.Magenta,
	asciigraph.Red,
	asciigraph.Blue,
}

// TrajectoryPlot renders x(t) curves for the given trajectories as a
// single asciigraph chart with a legend of initial conditions.
func TrajectoryPlot(trajs []*sim.Trajectory, width, height int, color bool, st Styles) string {
	if len(trajs) == 0 {
		return ""
	}

	series := make([][]float64, len(trajs))
	for i, tr := range trajs {
		series[i] = tr.Xs
	}

	opts := []asciigraph.Option{
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(1),
		asciigraph.Caption(fmt.Sprintf("x(t) from %d initial conditions", len(trajs))),
	}
	if color {
		colors := make([]asciigraph.AnsiColor, len(trajs))
		for i := range trajs {
			colors[i] = seriesColors[i%len(seriesColors)]
		}
		opts = append(opts, asciigraph.SeriesColors(colors...))
	}

	graph := asciigraph.PlotMany(series, opts...)

	legend := make([]string, 0, len(trajs))
	for _, tr := range trajs {
		entry := fmt.Sprintf("x0=%.2f", tr.X0)
		if color {
			entry = st.Dim.Render(entry)
		}
		legend = append(legend, entry)
	}

	return graph + "\n\n  " + strings.Join(legend, "  ")
}
