package sim

import (
	"math"
	"testing"

	"github.com/evoterm/gamescape/internal/dynamics"
)

var (
	prisonersDilemma = dynamics.PayoffMatrix{A: 3, B: 0, C: 5, D: 1}
	harmony          = dynamics.PayoffMatrix{A: 4, B: 3, C: 3, D: 2}
	hawkDove         = dynamics.PayoffMatrix{A: 0, B: 3, C: 5, D: 1}
	stagHunt         = dynamics.PayoffMatrix{A: 1, B: 0, C: 0, D: 2}
)

func TestRunConvergesToDominantAttractor(t *testing.T) {
	s := New(NewEuler())
	cfg := Config{Dt: 0.01, Steps: 5000}

	tr, err := s.Run(prisonersDilemma, 0.5, cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if tr.Final() > 0.01 {
		t.Errorf("PD from 0.5: expected collapse toward 0, got %f", tr.Final())
	}

	tr, err = s.Run(harmony, 0.5, cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if tr.Final() < 0.99 {
		t.Errorf("harmony from 0.5: expected convergence toward 1, got %f", tr.Final())
	}
}

func TestRunConvergesToInteriorPoint(t *testing.T) {
	s := New(NewRK4())
	tr, err := s.Run(hawkDove, 0.01, Config{Dt: 0.01, Steps: 5000})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	// Hawk-dove interior equilibrium: (d-b)/(a-b-c+d) = 2/7.
	xStar := 2.0 / 7.0
	if math.Abs(tr.Final()-xStar) > 0.01 {
		t.Errorf("expected convergence toward %f, got %f", xStar, tr.Final())
	}

	// Approach from below the attractor is monotone.
	for i := 1; i < tr.Len(); i++ {
		if tr.Xs[i] < tr.Xs[i-1]-1e-12 {
			t.Fatalf("non-monotone approach at step %d: %f then %f", i, tr.Xs[i-1], tr.Xs[i])
		}
		if tr.Xs[i] > xStar+1e-6 {
			t.Fatalf("trajectory crossed the interior equilibrium at step %d: %f", i, tr.Xs[i])
		}
	}
}

func TestRunRespectsSeparatrix(t *testing.T) {
	s := New(NewEuler())
	cfg := Config{Dt: 0.01, Steps: 5000}

	// Stag hunt separatrix at 2/3: starts on either side converge to
	// the boundary on that side and never cross.
	below, err := s.Run(stagHunt, 0.5, cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if below.Final() > 0.01 {
		t.Errorf("start below separatrix: expected 0, got %f", below.Final())
	}
	for _, x := range below.Xs {
		if x > 2.0/3.0 {
			t.Fatalf("trajectory crossed the unstable interior point: %f", x)
		}
	}

	above, err := s.Run(stagHunt, 0.8, cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if above.Final() < 0.99 {
		t.Errorf("start above separatrix: expected 1, got %f", above.Final())
	}
}

func TestRunStaysInBounds(t *testing.T) {
	s := New(NewEuler())
	cfg := Config{Dt: 0.05, Steps: 2000}
	for _, m := range []dynamics.PayoffMatrix{prisonersDilemma, harmony, hawkDove, stagHunt} {
		for _, x0 := range []float64{0.0, 0.1, 0.5, 0.9, 1.0} {
			tr, err := s.Run(m, x0, cfg)
			if err != nil {
				t.Fatalf("run failed: %v", err)
			}
			for _, x := range tr.Xs {
				if x < 0 || x > 1 {
					t.Fatalf("%+v from %f: sample %f out of [0,1]", m, x0, x)
				}
			}
		}
	}
}

func TestRunBoundaryStartIsConstant(t *testing.T) {
	s := New(NewEuler())
	for _, x0 := range []float64{0.0, 1.0} {
		tr, err := s.Run(prisonersDilemma, x0, DefaultConfig())
		if err != nil {
			t.Fatalf("run failed: %v", err)
		}
		for _, x := range tr.Xs {
			if x != x0 {
				t.Errorf("boundary start %f drifted to %f", x0, x)
			}
		}
	}
}

func TestRunDegenerateMatrixIsConstant(t *testing.T) {
	s := New(NewRK4())
	m := dynamics.PayoffMatrix{A: 2, B: 2, C: 2, D: 2}
	tr, err := s.Run(m, 0.37, DefaultConfig())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	for _, x := range tr.Xs {
		if x != 0.37 {
			t.Errorf("degenerate flow moved the state: %f", x)
		}
	}
}

func TestRunDeterministic(t *testing.T) {
	s := New(NewEuler())
	cfg := DefaultConfig()
	first, err := s.Run(hawkDove, 0.3, cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	second, err := s.Run(hawkDove, 0.3, cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if first.Len() != second.Len() {
		t.Fatalf("lengths differ: %d vs %d", first.Len(), second.Len())
	}
	for i := range first.Xs {
		if first.Xs[i] != second.Xs[i] || first.Times[i] != second.Times[i] {
			t.Fatalf("sample %d differs", i)
		}
	}
}

func TestRunTimesStrictlyIncreasing(t *testing.T) {
	s := New(NewEuler())
	tr, err := s.Run(harmony, 0.2, DefaultConfig())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if tr.Times[0] != 0 {
		t.Errorf("first sample at t=%f, want 0", tr.Times[0])
	}
	for i := 1; i < tr.Len(); i++ {
		if tr.Times[i] <= tr.Times[i-1] {
			t.Fatalf("times not strictly increasing at %d", i)
		}
	}
}

func TestRunInvalidInputs(t *testing.T) {
	s := New(NewEuler())
	tests := []struct {
		name string
		x0   float64
		cfg  Config
	}{
		{"zero dt", 0.5, Config{Dt: 0, Steps: 100}},
		{"negative dt", 0.5, Config{Dt: -0.01, Steps: 100}},
		{"zero steps", 0.5, Config{Dt: 0.01, Steps: 0}},
		{"x0 below range", -0.1, DefaultConfig()},
		{"x0 above range", 1.1, DefaultConfig()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.Run(prisonersDilemma, tt.x0, tt.cfg); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
