package solver

import (
	"time"

	"github.com/katalvlaran/wsmatch/core"
)

// Solution is one complete monomorphism, in the caller's vertex labels.
type Solution struct {
	// Assignments maps every pattern vertex, sorted by pattern vertex.
	Assignments []core.Assignment
	// ScalarProduct is Σ w_p(e) · w_t(f(e)) over all pattern edges.
	ScalarProduct core.Weight
	// TotalPatternWeight is Σ w_p(e), identical for every solution of a
	// problem; kept here so a Solution is self-describing.
	TotalPatternWeight core.Weight
}

// SolutionData is everything one Solve call learned.
type SolutionData struct {
	// Solutions holds one entry in single-best mode (the best found so
	// far), otherwise up to MaxSolutions entries in discovery order.
	Solutions []Solution

	// Iterations counts the search iterations spent.
	Iterations uint64

	// Finished reports that the search space is exhausted: in
	// single-best mode the solution (if any) is optimal, otherwise every
	// admissible solution was enumerated. False means a budget ran out.
	Finished bool

	// TargetIsComplete reports whether the target graph has every
	// possible edge, in which case only the weights constrain anything.
	TargetIsComplete bool

	// TotalPatternWeight is Σ w_p(e) over all pattern edges.
	TotalPatternWeight core.Weight

	// TrivialWeightLowerBound and TrivialWeightInitialUpperBound come
	// from the rearrangement inequality on the sorted weight sequences;
	// every solution's scalar product lies in between. For a problem
	// detected impossible before searching, the bounds are crossed
	// (lower = core.MaxWeight, upper = 0).
	TrivialWeightLowerBound        core.Weight
	TrivialWeightInitialUpperBound core.Weight

	// InitTime and SearchTime split the wall-clock cost of the call.
	InitTime   time.Duration
	SearchTime time.Duration
}
