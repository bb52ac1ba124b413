package dynamics

import "errors"

// Domain errors for game analysis.
var (
	// ErrInconsistentPattern indicates a fixed-point stability pattern
	// that cannot arise from a correctly computed replicator flow.
	// Hitting it means a solver/classifier defect, not bad user input.
	ErrInconsistentPattern = errors.New("dynamics: inconsistent fixed-point stability pattern")

	// ErrMissingBoundary indicates a fixed-point sequence without both
	// boundary points, which FindFixedPoints guarantees by construction.
	ErrMissingBoundary = errors.New("dynamics: fixed-point sequence missing a boundary point")
)
