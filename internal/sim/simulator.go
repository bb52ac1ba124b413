package sim

import (
	"fmt"
	"math"

	"github.com/evoterm/gamescape/internal/dynamics"
)

// convergeEps stops the run once the flow magnitude falls below it;
// the replicator flow decays smoothly into every attractor, so a
// smaller flow means the trajectory has effectively arrived.
const convergeEps = 1e-10

// Simulator integrates replicator trajectories with a fixed-step
// explicit integrator. Identical (matrix, x0, config) inputs always
// produce identical trajectories.
type Simulator struct {
	integ Integrator
}

func New(integ Integrator) *Simulator {
	return &Simulator{integ: integ}
}

// Run integrates from x0 for at most cfg.Steps steps, clamping to
// [0,1] after every step and stopping early once the flow vanishes.
// The first sample is (0, x0).
func (s *Simulator) Run(m dynamics.PayoffMatrix, x0 float64, cfg Config) (*Trajectory, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	if x0 < 0 || x0 > 1 || math.IsNaN(x0) {
		return nil, fmt.Errorf("x0 must be in [0,1], got %v", x0)
	}

	tr := &Trajectory{
		X0:    x0,
		Times: make([]float64, 0, cfg.Steps+1),
		Xs:    make([]float64, 0, cfg.Steps+1),
	}

	x := x0
	t := 0.0
	tr.Times = append(tr.Times, t)
	tr.Xs = append(tr.Xs, x)

	for i := 0; i < cfg.Steps; i++ {
		dx := m.Flow(x)

		x = s.integ.Step(m, x, t, cfg.Dt)
		x = clamp01(x)
		t += cfg.Dt

		tr.Times = append(tr.Times, t)
		tr.Xs = append(tr.Xs, x)

		if math.Abs(dx) < convergeEps {
			break
		}
	}

	return tr, nil
}

func validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", cfg.Steps)
	}
	return nil
}

// clamp01 guards against numerical overshoot near the boundaries,
// where the flow itself already forces convergence.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
