package solver

import (
	"math/rand"

	"github.com/katalvlaran/wsmatch/bitset"
	"github.com/katalvlaran/wsmatch/core"
	"github.com/katalvlaran/wsmatch/derived"
	"github.com/katalvlaran/wsmatch/neighbours"
	"github.com/katalvlaran/wsmatch/order"
	"github.com/katalvlaran/wsmatch/reduce"
	"github.com/katalvlaran/wsmatch/search"
)

// searchBranch drives one search tree: it owns the propagator wrappers,
// the scratch bitset they consume, the memo of already-checked pairs,
// and the reduce-to-fixpoint loop run at every node.
type searchBranch struct {
	pattern *neighbours.Data
	target  *neighbours.Data

	acc  search.Accessor
	trav search.Traversal

	wrappers []*reduce.Wrapper
	scratch  *bitset.Dense

	// checked memoizes pairs that passed every Check; a pair failing a
	// Check is erased from all history and never seen again.
	checked map[core.Assignment]struct{}

	// assignedPos maps a pattern vertex to its index in the current
	// assignment window during scalar-product updates, -1 outside them.
	assignedPos []int

	totalPatternWeight core.Weight
	minTargetWeight    core.Weight

	chooser order.VariableChooser
	picker  order.ValuePicker
	rng     *rand.Rand
}

func newSearchBranch(
	raw *search.RawData,
	pattern, target *neighbours.Data,
	pNear, tNear *neighbours.NearData,
	pDerived, tDerived *derived.Graphs,
	maxDistanceReduction int,
	totalPatternWeight, minTargetWeight core.Weight,
	rng *rand.Rand,
) *searchBranch {
	wrappers := make([]*reduce.Wrapper, 0, maxDistanceReduction+1)
	wrappers = append(wrappers, reduce.NewWrapper(reduce.NewNeighbours(pattern, target)))
	wrappers = append(wrappers, reduce.NewWrapper(reduce.NewDerivedGraphs(pDerived, tDerived)))
	for d := 2; d <= maxDistanceReduction; d++ {
		wrappers = append(wrappers, reduce.NewWrapper(reduce.NewDistances(pNear, tNear, d)))
	}

	assignedPos := make([]int, pattern.NumVertices())
	for i := range assignedPos {
		assignedPos[i] = -1
	}
	return &searchBranch{
		pattern:            pattern,
		target:             target,
		acc:                raw.Accessor(),
		trav:               raw.Traversal(),
		wrappers:           wrappers,
		scratch:            bitset.New(target.NumVertices()),
		checked:            make(map[core.Assignment]struct{}),
		assignedPos:        assignedPos,
		totalPatternWeight: totalPatternWeight,
		minTargetWeight:    minTargetWeight,
		rng:                rng,
	}
}

// reduceCurrentNode runs the full propagation fixpoint on the current
// node. Returns false if the node turns out infeasible.
func (b *searchBranch) reduceCurrentNode(maxWeight core.Weight) bool {
	for _, w := range b.wrappers {
		w.Clear()
	}
	if !b.mainReduceLoop(maxWeight) {
		return false
	}
	b.acc.ClearNewAssignments()
	return true
}

func (b *searchBranch) mainReduceLoop(maxWeight core.Weight) bool {
	// processed counts the node's assignments already folded into the
	// alldiff constraint, the checks and the scalar product.
	processed := 0
	for {
		if !b.acc.AlldiffReduce(processed) {
			return false
		}
		if !b.checkAssignmentsFrom(processed) {
			return false
		}
		if !b.updateScalarProduct(processed) {
			return false
		}
		processed = len(b.acc.NewAssignments())

		if b.weightNogood(maxWeight) {
			return false
		}

		switch b.runReducers() {
		case search.Nogood:
			return false
		case search.NewAssignments:
			// Fold the cheap consequences in before reducing further.
			continue
		}
		if processed == len(b.acc.NewAssignments()) {
			return true
		}
	}
}

// checkAssignmentsFrom runs every propagator's cheap admissibility test
// on the unchecked assignments. A failure means the pair is invalid in
// every node of every search, so it is purged from all domain history;
// the current node is then doomed regardless.
func (b *searchBranch) checkAssignmentsFrom(from int) bool {
	assignments := b.acc.NewAssignments()
	for i := from; i < len(assignments); i++ {
		asg := assignments[i]
		if _, done := b.checked[asg]; done {
			continue
		}
		for _, w := range b.wrappers {
			if !w.Check(asg) {
				b.trav.EraseImpossibleAssignment(asg)
				return false
			}
		}
		b.checked[asg] = struct{}{}
	}
	return true
}

// updateScalarProduct folds the pattern edges resolved by the
// assignments from index from onwards into the objective accumulators.
// Each edge is counted exactly once, at its later-assigned endpoint. A
// resolved pattern edge with no target edge underneath is a nogood.
//
// The arithmetic is unchecked: every partial sum is bounded by the
// trivial upper bound, whose computation at setup already verified that
// no overflow can occur.
func (b *searchBranch) updateScalarProduct(from int) bool {
	assignments := b.acc.NewAssignments()
	window := assignments[from:]
	for i, asg := range window {
		b.assignedPos[asg.PatternVertex] = i
	}

	scalar := b.acc.ScalarProduct()
	total := b.acc.TotalPEdgeWeights()
	ok := true

outer:
	for i, asg := range window {
		for _, nw := range b.pattern.NeighboursAndWeights(asg.PatternVertex) {
			if b.assignedPos[nw.Vertex] > i {
				// Counted later, at the other endpoint.
				continue
			}
			tv2, single := b.acc.Domain(nw.Vertex).Single()
			if !single {
				continue
			}
			wT, present := b.target.EdgeWeight(asg.TargetVertex, core.Vertex(tv2))
			if !present {
				ok = false
				break outer
			}
			scalar += nw.Weight * wT
			total += nw.Weight
		}
	}
	for _, asg := range window {
		b.assignedPos[asg.PatternVertex] = -1
	}
	if !ok {
		return false
	}
	b.acc.SetScalarProduct(scalar)
	b.acc.SetTotalPEdgeWeights(total)
	return true
}

// weightNogood reports that the node cannot beat maxWeight even if
// every unresolved pattern edge lands on a minimum-weight target edge.
func (b *searchBranch) weightNogood(maxWeight core.Weight) bool {
	if maxWeight == core.MaxWeight {
		return false
	}
	scalar := b.acc.ScalarProduct()
	if scalar > maxWeight {
		return true
	}
	remaining := b.totalPatternWeight - b.acc.TotalPEdgeWeights()
	return scalar+remaining*b.minTargetWeight > maxWeight
}

func (b *searchBranch) runReducers() search.ReductionResult {
	for _, w := range b.wrappers {
		if res := w.Reduce(b.acc, b.scratch); res != search.Success {
			return res
		}
	}
	return search.Success
}

// backtrack abandons the current node and climbs until some ancestor
// survives re-reduction. Returns false when the tree is exhausted.
func (b *searchBranch) backtrack(maxWeight core.Weight) bool {
	for {
		if !b.trav.MoveUp() {
			return false
		}
		if b.reduceCurrentNode(maxWeight) {
			return true
		}
	}
}

// descend commits assignments from a reduced node until every pattern
// vertex is assigned (a full solution, true) or a dead end (false).
func (b *searchBranch) descend(maxWeight core.Weight) bool {
	for {
		res := b.chooser.Choose(b.acc, b.rng)
		if res.EmptyDomain {
			return false
		}
		if !res.Found {
			// All assigned; edge validity was enforced on the way down.
			return true
		}
		tv := b.picker.Pick(b.acc.Domain(res.Vertex), b.target, b.rng)
		b.trav.MoveDown(res.Vertex, tv)
		if !b.reduceCurrentNode(maxWeight) {
			return false
		}
	}
}
