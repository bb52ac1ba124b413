package dynamics

// PayoffMatrix holds the payoffs of a symmetric 2x2 game. Entry (i,j)
// is the payoff to the focal player using strategy i against an
// opponent using strategy j, with strategy order (cooperate, defect):
//
//	A = C vs C    B = C vs D
//	C = D vs C    D = D vs D
//
// Any four reals form a valid game; degenerate matrices produce a
// flow that is zero everywhere.
type PayoffMatrix struct {
	A, B, C, D float64
}

// Fitness returns the expected payoff of each pure strategy when a
// fraction x of the population cooperates.
func (m PayoffMatrix) Fitness(x float64) (fc, fd float64) {
	fc = m.A*x + m.B*(1-x)
	fd = m.C*x + m.D*(1-x)
	return fc, fd
}

// AvgFitness returns the population-average payoff at frequency x.
func (m PayoffMatrix) AvgFitness(x float64) float64 {
	fc, fd := m.Fitness(x)
	return x*fc + (1-x)*fd
}

// Flow is the replicator equation dx/dt = x(1-x)(fc - fd). The
// variance factor x(1-x) vanishes at both boundaries, so x=0 and x=1
// are equilibria for every matrix. Outside [0,1] the flow is zero.
func (m PayoffMatrix) Flow(x float64) float64 {
	if x <= 0 || x >= 1 {
		return 0
	}
	fc, fd := m.Fitness(x)
	return x * (1 - x) * (fc - fd)
}

// Fixed-point labels.
const (
	LabelAllD     = "all-D"
	LabelAllC     = "all-C"
	LabelInterior = "interior"
)

// FixedPoint is an equilibrium frequency of the replicator dynamics.
// Neutral marks boundary points whose one-sided flow is zero within
// tolerance; a neutral point is never reported stable.
type FixedPoint struct {
	X       float64
	Stable  bool
	Neutral bool
	Label   string
}

// Classification is the qualitative game type derived from the
// stability pattern of the fixed points.
type Classification string

const (
	DominantCooperate Classification = "dominant-cooperate"
	DominantDefect    Classification = "dominant-defect"
	Coordination      Classification = "coordination"
	Coexistence       Classification = "coexistence"
	Bistable          Classification = "bistable"
)
