package render

import (
	"strings"
	"testing"

	"github.com/evoterm/gamescape/internal/dynamics"
	"github.com/evoterm/gamescape/internal/sim"
)

var (
	prisonersDilemma = dynamics.PayoffMatrix{A: 3, B: 0, C: 5, D: 1}
	hawkDove         = dynamics.PayoffMatrix{A: 0, B: 3, C: 5, D: 1}
)

func TestFlowLine(t *testing.T) {
	line := FlowLine(prisonersDilemma, 60, PlainStyles())
	if !strings.Contains(line, "all-D") || !strings.Contains(line, "all-C") {
		t.Errorf("flow line missing boundary labels: %q", line)
	}
	// Defection dominates: arrows point left, stable point at x=0.
	if !strings.Contains(line, "<") {
		t.Errorf("expected leftward arrows: %q", line)
	}
	if !strings.Contains(line, GlyphStable) {
		t.Errorf("expected a stable marker: %q", line)
	}
}

func TestFlowLineInteriorMarker(t *testing.T) {
	line := FlowLine(hawkDove, 60, PlainStyles())
	// Hawk-dove has three fixed points; the interior one is stable.
	if got := strings.Count(line, GlyphStable)+strings.Count(line, GlyphUnstable); got != 3 {
		t.Errorf("expected 3 fixed-point markers, got %d: %q", got, line)
	}
}

func TestPayoffTable(t *testing.T) {
	table := PayoffTable(prisonersDilemma, PlainStyles())
	for _, want := range []string{"Cooperate", "Defect", "3.0", "5.0", "1.0"} {
		if !strings.Contains(table, want) {
			t.Errorf("table missing %q:\n%s", want, table)
		}
	}
}

func TestTrajectoryPlot(t *testing.T) {
	s := sim.New(sim.NewEuler())
	var trajs []*sim.Trajectory
	for _, x0 := range []float64{0.2, 0.8} {
		tr, err := s.Run(hawkDove, x0, sim.DefaultConfig())
		if err != nil {
			t.Fatalf("run failed: %v", err)
		}
		trajs = append(trajs, tr)
	}

	out := TrajectoryPlot(trajs, 60, 12, false, PlainStyles())
	if !strings.Contains(out, "2 initial conditions") {
		t.Errorf("missing caption:\n%s", out)
	}
	if !strings.Contains(out, "x0=0.20") || !strings.Contains(out, "x0=0.80") {
		t.Errorf("missing legend entries:\n%s", out)
	}
}

func TestAnalysis(t *testing.T) {
	out, err := Analysis(prisonersDilemma, "prisoners-dilemma", sim.NewEuler(), Options{})
	if err != nil {
		t.Fatalf("analysis failed: %v", err)
	}
	for _, want := range []string{
		"Payoff Matrix",
		"Classification",
		"dominant-defect",
		"Fixed Points",
		"Phase Flow",
		"Trajectories",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("analysis missing %q", want)
		}
	}
}

func TestAnalysisColorDoesNotCrash(t *testing.T) {
	out, err := Analysis(hawkDove, "hawk-dove", sim.NewRK4(), Options{Color: true})
	if err != nil {
		t.Fatalf("analysis failed: %v", err)
	}
	if len(out) == 0 {
		t.Error("empty output")
	}
}
