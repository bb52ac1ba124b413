package sim

import "github.com/evoterm/gamescape/internal/dynamics"

// Integrator advances the cooperator frequency one step under the
// replicator flow of m.
type Integrator interface {
	Step(m dynamics.PayoffMatrix, x, t, dt float64) float64
}

// Config holds the fixed-step integration parameters. Step size and
// horizon are configuration constants, never derived per game.
type Config struct {
	Dt    float64
	Steps int
}

// DefaultConfig returns the step size and horizon used by the CLI.
func DefaultConfig() Config {
	return Config{Dt: 0.01, Steps: 2000}
}

// Trajectory is an ordered, finite sequence of (time, frequency)
// samples. Times are strictly increasing starting at 0 and every X
// lies in [0,1].
type Trajectory struct {
	X0    float64
	Times []float64
	Xs    []float64
}

// Final returns the last sampled frequency.
func (tr *Trajectory) Final() float64 {
	return tr.Xs[len(tr.Xs)-1]
}

// Len returns the number of samples.
func (tr *Trajectory) Len() int {
	return len(tr.Xs)
}
