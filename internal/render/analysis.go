// Package render formats game analyses as terminal text. It consumes
// the outputs of the dynamics and sim packages and owns all glyph,
// layout, and color decisions.
package render

import (
	"fmt"
	"strings"

	"github.com/evoterm/gamescape/internal/config"
	"github.com/evoterm/gamescape/internal/dynamics"
	"github.com/evoterm/gamescape/internal/sim"
)

// Options selects the report geometry and color handling.
type Options struct {
	Color bool
	Cfg   *config.Config
}

// Analysis renders the full report for one game: payoff table,
// classification, fixed points, flow line, and trajectory plot.
func Analysis(m dynamics.PayoffMatrix, name string, integ sim.Integrator, opts Options) (string, error) {
	cfg := opts.Cfg
	if cfg == nil {
		cfg = config.Default()
	}
	st := ForColor(opts.Color)

	fps := dynamics.FindFixedPoints(m)
	cls, err := dynamics.Classify(fps)
	if err != nil {
		return "", fmt.Errorf("analyze %s: %w", name, err)
	}

	simulator := sim.New(integ)
	simCfg := sim.Config{Dt: cfg.Dt, Steps: cfg.Steps}
	trajs := make([]*sim.Trajectory, 0, len(cfg.Starts))
	for _, x0 := range cfg.Starts {
		tr, err := simulator.Run(m, x0, simCfg)
		if err != nil {
			return "", fmt.Errorf("trajectory from %f: %w", x0, err)
		}
		trajs = append(trajs, tr)
	}

	var sb strings.Builder

	title := "Game Analysis"
	if name != "" {
		title = fmt.Sprintf("Game Analysis: %s", name)
	}
	sb.WriteString("\n  " + st.Title.Render(title) + "\n")
	sb.WriteString("  " + strings.Repeat("=", 40) + "\n\n")

	sb.WriteString("  " + st.Header.Render("Payoff Matrix:") + "\n")
	sb.WriteString(PayoffTable(m, st) + "\n\n")

	sb.WriteString("  " + st.Header.Render("Classification:") + " " + st.Class.Render(string(cls)) + "\n\n")

	sb.WriteString("  " + st.Header.Render("Fixed Points:") + "\n")
	for _, fp := range fps {
		sb.WriteString("    " + FixedPointLine(fp, st) + "\n")
	}
	sb.WriteString("\n")

	sb.WriteString("  " + st.Header.Render("Phase Flow:") + "\n")
	sb.WriteString(FlowLine(m, cfg.Plot.FlowWidth, st) + "\n\n")

	sb.WriteString("  " + st.Header.Render("Trajectories:") + "\n")
	sb.WriteString(TrajectoryPlot(trajs, cfg.Plot.Width, cfg.Plot.Height, opts.Color, st) + "\n")

	return sb.String(), nil
}

// FixedPointLine formats one fixed point for the report.
func FixedPointLine(fp dynamics.FixedPoint, st Styles) string {
	stability := "unstable"
	style := st.Unstable
	switch {
	case fp.Neutral:
		stability = "neutral"
		style = st.Neutral
	case fp.Stable:
		stability = "stable"
		style = st.Stable
	}
	return fmt.Sprintf("%s x=%.4f (%s, %s)",
		style.Render(Marker(fp)), fp.X, fp.Label, style.Render(stability))
}
