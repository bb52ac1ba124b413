package sim

import "github.com/evoterm/gamescape/internal/dynamics"

type RK4 struct{}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Step(m dynamics.PayoffMatrix, x, t, dt float64) float64 {
	k1 := m.Flow(x)
	k2 := m.Flow(x + dt*0.5*k1)
	k3 := m.Flow(x + dt*0.5*k2)
	k4 := m.Flow(x + dt*k3)
	return x + dt/6.0*(k1+2*k2+2*k3+k4)
}
