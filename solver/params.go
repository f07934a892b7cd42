package solver

import (
	"time"

	"github.com/katalvlaran/wsmatch/core"
)

// Parameters control one Solve call. Start from DefaultParameters and
// override what you need.
type Parameters struct {
	// Timeout bounds the total wall-clock time, initialisation included.
	Timeout time.Duration

	// IterationsTimeout bounds the number of search iterations (one
	// descent from a reduced node per iteration). Zero forbids searching
	// altogether, returning only the precomputed data.
	IterationsTimeout uint64

	// TerminateWithFirstFullSolution stops at the first full solution
	// found, which is then not necessarily optimal. Only meaningful in
	// single-best mode (MaxSolutions == 0).
	TerminateWithFirstFullSolution bool

	// MaxSolutions selects the mode. Zero: single-best mode, keep one
	// solution and tighten the admissible weight after each, proving
	// optimality if the search finishes. Positive: collect up to that
	// many solutions without weight-driven pruning between them.
	MaxSolutions int

	// MaxDistanceForDomainInitialisation is the largest distance used by
	// the vertex-count filters when building initial domains.
	MaxDistanceForDomainInitialisation int

	// MaxDistanceForDistanceReduction is the largest d for which a
	// bounded-distance propagator runs during the search.
	MaxDistanceForDistanceReduction int

	// WeightUpperBound rejects any solution whose scalar product exceeds
	// it. core.MaxWeight means unconstrained.
	WeightUpperBound core.Weight

	// Seed drives all tie-breaking randomness; equal seeds replay the
	// identical search.
	Seed int64
}

// DefaultParameters returns the standard budgets.
func DefaultParameters() Parameters {
	return Parameters{
		Timeout:                            10 * time.Second,
		IterationsTimeout:                  1_000_000,
		MaxDistanceForDomainInitialisation: 2,
		MaxDistanceForDistanceReduction:    6,
		WeightUpperBound:                   core.MaxWeight,
	}
}
