// Package dynamics implements replicator dynamics for symmetric 2x2 games.
//
// The package reduces the two-strategy replicator equation to a single
// scalar ODE over the cooperator frequency x in [0,1]:
//
//	dx/dt = x(1-x)[(a-c)x + (b-d)(1-x)]
//
// and provides:
//
//   - [PayoffMatrix]: the four payoffs and the flow function
//   - [FindFixedPoints]: analytic enumeration of equilibria with stability
//   - [Classify]: qualitative game type from the stability pattern
//
// All operations are pure functions over value types; nothing in this
// package holds state between calls.
package dynamics
