package dynamics

import (
	"math"
	"sort"
)

const (
	// probeEps is the offset used for one-sided stability probes at
	// the boundaries, matching the solver's interior tolerance scale.
	probeEps = 1e-8
	// advEps is the magnitude below which a probed payoff advantage
	// counts as zero; such boundary points are reported neutral, not
	// stable. The advantage is probed instead of the full flow: the
	// variance factor x(1-x) would shrink the probed flow to
	// probeEps^2 scale on a weakly dominated boundary and bury a
	// genuine sign under this threshold.
	advEps = 1e-12
	// denomEps guards the affine bracket's slope: below it the
	// bracket is constant and no distinguishable interior root exists.
	denomEps = 1e-12
)

// FindFixedPoints returns every equilibrium of the replicator
// dynamics for m, sorted by ascending frequency. The boundary points
// x=0 and x=1 are always present; an interior point is included when
// the payoff-advantage bracket has a root strictly inside (0,1).
func FindFixedPoints(m PayoffMatrix) []FixedPoint {
	// Inside (0,1) the flow's sign equals the sign of fc-fd, so the
	// advantage at the probe point decides boundary stability.
	adv0 := advantage(m, probeEps)
	adv1 := advantage(m, 1-probeEps)

	// x=0 is stable iff the flow just inside pushes back down;
	// x=1 iff the flow just inside pushes up.
	points := []FixedPoint{
		{X: 0, Stable: adv0 < -advEps, Neutral: math.Abs(adv0) <= advEps, Label: LabelAllD},
		{X: 1, Stable: adv1 > advEps, Neutral: math.Abs(adv1) <= advEps, Label: LabelAllC},
	}

	// Interior root of (a-c)x + (b-d)(1-x) = 0, solved directly since
	// the bracket is affine in x.
	denom := m.A - m.B - m.C + m.D
	if math.Abs(denom) > denomEps {
		xs := (m.D - m.B) / denom
		if xs > 0 && xs < 1 {
			// At the root the bracket vanishes, so the linearized flow
			// is x*(1-x) times the bracket's slope; the variance factor
			// is positive inside (0,1), leaving the sign of denom.
			points = append(points, FixedPoint{
				X:      xs,
				Stable: denom < 0,
				Label:  LabelInterior,
			})
		}
	}

	sort.Slice(points, func(i, j int) bool { return points[i].X < points[j].X })
	return points
}

// advantage is the payoff-advantage bracket fc - fd at frequency x.
func advantage(m PayoffMatrix, x float64) float64 {
	fc, fd := m.Fitness(x)
	return fc - fd
}
