package sim

import "github.com/evoterm/gamescape/internal/dynamics"

type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(m dynamics.PayoffMatrix, x, t, dt float64) float64 {
	return x + dt*m.Flow(x)
}
