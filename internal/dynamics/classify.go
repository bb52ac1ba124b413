package dynamics

import "fmt"

// Classify maps a fixed-point sequence to one of the five game types.
//
// Decision table over (all-D stability, all-C stability, interior):
//
//	unstable  stable    absent             dominant-cooperate
//	stable    unstable  absent             dominant-defect
//	unstable  unstable  present, stable    coexistence
//	stable    stable    present, unstable  bistable
//	stable    stable    absent             coordination
//	neutral   neutral   absent             coordination (degenerate flow)
//
// Any other pattern cannot arise from a correctly computed replicator
// flow and returns ErrInconsistentPattern rather than a guessed label.
func Classify(fps []FixedPoint) (Classification, error) {
	var allD, allC, interior *FixedPoint
	for i := range fps {
		switch fps[i].Label {
		case LabelAllD:
			allD = &fps[i]
		case LabelAllC:
			allC = &fps[i]
		case LabelInterior:
			interior = &fps[i]
		}
	}
	if allD == nil || allC == nil {
		return "", fmt.Errorf("classify %d fixed points: %w", len(fps), ErrMissingBoundary)
	}

	// Fully degenerate matrix: flow vanishes everywhere. Explicitly a
	// degraded output, not an error.
	if allD.Neutral && allC.Neutral && interior == nil {
		return Coordination, nil
	}

	switch {
	case interior == nil && allC.Stable && !allD.Stable:
		return DominantCooperate, nil
	case interior == nil && allD.Stable && !allC.Stable:
		return DominantDefect, nil
	case interior != nil && interior.Stable && !allD.Stable && !allC.Stable:
		return Coexistence, nil
	case interior != nil && !interior.Stable && allD.Stable && allC.Stable:
		return Bistable, nil
	case interior == nil && allD.Stable && allC.Stable:
		return Coordination, nil
	}

	return "", fmt.Errorf("all-D stable=%v all-C stable=%v interior=%v: %w",
		allD.Stable, allC.Stable, interior != nil, ErrInconsistentPattern)
}

// ClassifyMatrix solves for the fixed points of m and classifies them.
func ClassifyMatrix(m PayoffMatrix) (Classification, error) {
	return Classify(FindFixedPoints(m))
}
