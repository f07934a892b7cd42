package solver

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/wsmatch/core"
	"github.com/katalvlaran/wsmatch/derived"
	"github.com/katalvlaran/wsmatch/neighbours"
	"github.com/katalvlaran/wsmatch/search"
)

// Solve searches for weighted subgraph monomorphisms from pattern into
// target under the given parameters. Input validity problems (self
// loops, non-canonical edges, an unsatisfiable pattern vertex) surface
// as errors before any search; an infeasible or exhausted search is not
// an error and is reported through SolutionData.
func Solve(pattern, target core.EdgeWeights, params Parameters) (*SolutionData, error) {
	start := time.Now()

	// Bounds crossed (lower > upper) until proven otherwise.
	data := &SolutionData{TrivialWeightLowerBound: core.MaxWeight}

	pRelabel, err := core.NewRelabelling(pattern)
	if err != nil {
		return nil, fmt.Errorf("solver: pattern: %w", err)
	}
	tRelabel, err := core.NewRelabelling(target)
	if err != nil {
		return nil, fmt.Errorf("solver: target: %w", err)
	}

	if pRelabel.NumVertices() == 0 {
		// Nothing to embed.
		data.TrivialWeightLowerBound = 0
		data.Finished = true
		data.InitTime = time.Since(start)
		return data, nil
	}

	pData, err := neighbours.New(pRelabel.Edges)
	if err != nil {
		return nil, fmt.Errorf("solver: pattern: %w", err)
	}
	tData, err := neighbours.New(tRelabel.Edges)
	if err != nil {
		return nil, fmt.Errorf("solver: target: %w", err)
	}

	numTV := tData.NumVertices()
	data.TargetIsComplete = numTV*(numTV-1)/2 == tData.NumEdges()

	if pData.NumVertices() > numTV || pData.NumEdges() > tData.NumEdges() {
		data.Finished = true
		data.InitTime = time.Since(start)
		return data, nil
	}

	pNear, tNear := neighbours.NewNear(pData), neighbours.NewNear(tData)
	pDerived, tDerived := derived.NewGraphs(pData), derived.NewGraphs(tData)

	domains := initialDomains(pData, tData, pNear, tNear, pDerived, tDerived,
		params.MaxDistanceForDomainInitialisation)
	for pv, domain := range domains {
		if domain.None() {
			return nil, fmt.Errorf("%w: pattern vertex %d has no admissible target",
				search.ErrEmptyDomain, pRelabel.Old(core.Vertex(pv)))
		}
	}
	raw, err := search.NewRawData(domains, numTV)
	if err != nil {
		return nil, err
	}

	if err := fillWeightBounds(data, pData, tData); err != nil {
		return nil, err
	}

	branch := newSearchBranch(raw, pData, tData, pNear, tNear, pDerived, tDerived,
		params.MaxDistanceForDistanceReduction,
		data.TotalPatternWeight, tData.SortedWeights()[0],
		rand.New(rand.NewSource(params.Seed)))

	data.InitTime = time.Since(start)
	if data.InitTime >= params.Timeout {
		return data, nil
	}

	// The deadline is anchored at start, so initialisation time counts
	// against the same budget.
	searchStart := time.Now()
	if params.IterationsTimeout != 0 {
		internalSolve(branch, params, data, start.Add(params.Timeout))
	}
	data.SearchTime = time.Since(searchStart)

	relabelSolutions(data, pRelabel, tRelabel)
	return data, nil
}

// fillWeightBounds computes the total pattern weight and the trivial
// lower/upper bounds on any solution's scalar product: with p-weights
// and t-weights both sorted ascending, the rearrangement inequality
// pairs ascending with descending for the minimum and ascending with
// the largest t-weights for the maximum. All later search arithmetic
// stays below these values, so only this computation needs overflow
// checks.
func fillWeightBounds(data *SolutionData, pData, tData *neighbours.Data) error {
	pWeights := pData.SortedWeights()
	tWeights := tData.SortedWeights()

	overflow := fmt.Errorf("solver: weight bounds: %w", core.ErrWeightOverflow)
	var total, lower, upper core.Weight
	var ok bool

	for _, w := range pWeights {
		if total, ok = core.CheckedAdd(total, w); !ok {
			return overflow
		}
	}

	for i, w := range pWeights {
		product, ok := core.CheckedMul(w, tWeights[len(pWeights)-1-i])
		if !ok {
			return overflow
		}
		if lower, ok = core.CheckedAdd(lower, product); !ok {
			return overflow
		}
	}

	offset := len(tWeights) - len(pWeights)
	for i, w := range pWeights {
		product, ok := core.CheckedMul(w, tWeights[i+offset])
		if !ok {
			return overflow
		}
		if upper, ok = core.CheckedAdd(upper, product); !ok {
			return overflow
		}
	}

	data.TotalPatternWeight = total
	data.TrivialWeightLowerBound = lower
	data.TrivialWeightInitialUpperBound = upper
	return nil
}

// enoughSolutions reports whether the requested number of solutions has
// been collected.
func enoughSolutions(params Parameters, data *SolutionData) bool {
	if params.MaxSolutions == 0 {
		return params.TerminateWithFirstFullSolution && len(data.Solutions) > 0
	}
	return len(data.Solutions) >= params.MaxSolutions
}

// internalSolve is the outer branch-and-bound loop. Each iteration
// fixes the admissible weight, repairs the current node (reduce on the
// first pass, backtrack afterwards) and descends to either a full
// solution or a dead end.
func internalSolve(b *searchBranch, params Parameters, data *SolutionData, deadline time.Time) {
	for data.Iterations < params.IterationsTimeout {
		maxWeight := params.WeightUpperBound
		if len(data.Solutions) > 0 && params.MaxSolutions == 0 {
			best := data.Solutions[0].ScalarProduct
			if best == 0 {
				// Nothing beats zero.
				data.Finished = true
				return
			}
			if best-1 < maxWeight {
				maxWeight = best - 1
			}
		}
		if maxWeight < data.TrivialWeightLowerBound {
			data.Finished = true
			return
		}

		data.Iterations++
		if data.Iterations == 1 {
			if !b.reduceCurrentNode(maxWeight) {
				data.Finished = true
				return
			}
		} else if !b.backtrack(maxWeight) {
			data.Finished = true
			return
		}

		if b.descend(maxWeight) {
			// The admissible weight guaranteed this solution is worth
			// keeping before we ever reached it.
			recordSolution(b, params, data)
			if enoughSolutions(params, data) {
				return
			}
		}
		if !time.Now().Before(deadline) {
			return
		}
	}
}

// recordSolution snapshots the current node's singleton domains. In
// single-best mode the one stored solution is overwritten; it can only
// ever improve.
func recordSolution(b *searchBranch, params Parameters, data *SolutionData) {
	numPV := b.acc.NumPatternVertices()
	sol := Solution{
		Assignments:        make([]core.Assignment, 0, numPV),
		ScalarProduct:      b.acc.ScalarProduct(),
		TotalPatternWeight: data.TotalPatternWeight,
	}
	for i := 0; i < numPV; i++ {
		pv := core.Vertex(i)
		tv, single := b.acc.Domain(pv).Single()
		if !single {
			panic("solver: full solution with a non-singleton domain")
		}
		sol.Assignments = append(sol.Assignments,
			core.Assignment{PatternVertex: pv, TargetVertex: core.Vertex(tv)})
	}
	if params.MaxSolutions == 0 && len(data.Solutions) > 0 {
		data.Solutions[0] = sol
	} else {
		data.Solutions = append(data.Solutions, sol)
	}
}

// relabelSolutions converts solutions from the contiguous internal
// namespace back to the caller's vertex labels.
func relabelSolutions(data *SolutionData, pRelabel, tRelabel *core.Relabelling) {
	for si := range data.Solutions {
		assignments := data.Solutions[si].Assignments
		for ai := range assignments {
			assignments[ai].PatternVertex = pRelabel.Old(assignments[ai].PatternVertex)
			assignments[ai].TargetVertex = tRelabel.Old(assignments[ai].TargetVertex)
		}
	}
}
