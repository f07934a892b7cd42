package search

import (
	"github.com/katalvlaran/wsmatch/bitset"
	"github.com/katalvlaran/wsmatch/core"
)

// Accessor reads and mutates the CURRENT node: its domains, its new
// assignments and its objective bookkeeping. It is a cheap value; copy
// it freely.
type Accessor struct {
	raw *RawData
}

// NumPatternVertices returns the number of pattern vertices.
func (a Accessor) NumPatternVertices() int { return a.raw.NumPatternVertices() }

// NumTargetVertices returns the target vertex count.
func (a Accessor) NumTargetVertices() int { return a.raw.NumTargetVertices() }

// CurrentNodeIsValid reports whether the current node is not a nogood.
func (a Accessor) CurrentNodeIsValid() bool { return !a.raw.currentNode().Nogood }

// Domain returns the current domain of pv. The caller must treat it as
// read only; all mutation goes through IntersectDomain, AlldiffReduce
// or the Traversal moves, which maintain the snapshot history.
func (a Accessor) Domain(pv core.Vertex) *bitset.Dense {
	return a.raw.domains[pv].Top().domain
}

// DomainSize returns the current domain size of pv.
func (a Accessor) DomainSize(pv core.Vertex) int { return a.Domain(pv).Count() }

// DomainCreatedInCurrentNode reports whether pv's current domain
// snapshot is owned by the current node rather than shared with an
// ancestor.
func (a Accessor) DomainCreatedInCurrentNode(pv core.Vertex) bool {
	return a.raw.domains[pv].Top().nodeIndex == a.raw.currentNodeIndex()
}

// NewAssignments returns the current node's unprocessed assignments.
// The slice is live: reductions append to it.
func (a Accessor) NewAssignments() []core.Assignment {
	return a.raw.currentNode().NewAssignments
}

// ClearNewAssignments discards the current node's assignment list, once
// every reducer has fully processed it.
func (a Accessor) ClearNewAssignments() {
	node := a.raw.currentNode()
	node.NewAssignments = node.NewAssignments[:0]
}

// ScalarProduct returns the accumulated weighted objective so far.
func (a Accessor) ScalarProduct() core.Weight { return a.raw.currentNode().ScalarProduct }

// SetScalarProduct records the accumulated weighted objective.
func (a Accessor) SetScalarProduct(w core.Weight) { a.raw.currentNode().ScalarProduct = w }

// TotalPEdgeWeights returns the total pattern weight of the edges
// already counted in the scalar product.
func (a Accessor) TotalPEdgeWeights() core.Weight {
	return a.raw.currentNode().TotalPEdgeWeights
}

// SetTotalPEdgeWeights records the total counted pattern edge weight.
func (a Accessor) SetTotalPEdgeWeights(w core.Weight) {
	a.raw.currentNode().TotalPEdgeWeights = w
}

// UnassignedSuperset returns the deepest recorded superset of the
// unassigned pattern vertices. An empty record on the current node
// means the parent's is still accurate.
func (a Accessor) UnassignedSuperset() []core.Vertex {
	node := a.raw.currentNode()
	if len(node.UnassignedSuperset) > 0 {
		return node.UnassignedSuperset
	}
	return a.raw.nodes.OneBelowTop().UnassignedSuperset
}

// SetUnassignedSuperset records a fresh superset on the current node,
// copying vs into retained storage.
func (a Accessor) SetUnassignedSuperset(vs []core.Vertex) {
	node := a.raw.currentNode()
	node.UnassignedSuperset = append(node.UnassignedSuperset[:0], vs...)
}

// AlldiffReduce propagates the current node's new assignments starting
// at index processed: each newly used target vertex is erased from every
// other domain. An erasure leaving a two-element domain with a single
// member appends a further assignment, handled within the same call.
// Returns false if some domain is wiped out, making the node infeasible.
func (a Accessor) AlldiffReduce(processed int) bool {
	raw := a.raw
	node := raw.currentNode()
	for processed < len(node.NewAssignments) {
		asg := node.NewAssignments[processed]
		processed++
		tv := int(asg.TargetVertex)

		for i := range raw.domains {
			pv := core.Vertex(i)
			if pv == asg.PatternVertex {
				continue
			}
			domain := raw.domains[pv].Top().domain
			if !domain.Test(tv) {
				continue
			}
			first, _ := domain.FirstSet()
			second, hasSecond := domain.NextSet(first)
			if !hasSecond {
				// Another vertex already needs tv. Wipeout.
				return false
			}
			if _, hasThird := domain.NextSet(second); !hasThird {
				// Exactly two members; erasing tv assigns the other.
				other := first
				if other == tv {
					other = second
				}
				node.NewAssignments = append(node.NewAssignments,
					core.Assignment{PatternVertex: pv, TargetVertex: core.Vertex(other)})
			}
			entry := raw.topEntryOwnedByCurrentNode(pv)
			entry.domain.Clear(tv)
		}
	}
	return true
}

// IntersectionResult describes what IntersectDomain did.
type IntersectionResult struct {
	Result  ReductionResult
	NewSize int
	Changed bool
}

// IntersectDomain replaces Domain(pv) with its intersection with mask.
// The mask is consumed: afterwards it holds unspecified contents and is
// only good for reuse as scratch. A new singleton is recorded as an
// assignment on the current node; a wipeout reports Nogood and leaves
// the domain history untouched.
func (a Accessor) IntersectDomain(pv core.Vertex, mask *bitset.Dense) IntersectionResult {
	raw := a.raw
	entries := &raw.domains[pv]
	top := entries.Top()
	mask.IntersectWith(top.domain)

	newSize := mask.Count()
	if newSize == top.domain.Count() {
		return IntersectionResult{Result: Success, NewSize: newSize}
	}
	if newSize == 0 {
		return IntersectionResult{Result: Nogood, Changed: true}
	}
	result := Success
	if newSize == 1 {
		result = NewAssignments
		tv, _ := mask.FirstSet()
		node := raw.currentNode()
		node.NewAssignments = append(node.NewAssignments,
			core.Assignment{PatternVertex: pv, TargetVertex: core.Vertex(tv)})
	}
	if top.nodeIndex != raw.currentNodeIndex() {
		top = entries.Push()
		top.nodeIndex = raw.currentNodeIndex()
		if top.domain == nil {
			top.domain = bitset.New(raw.numTargetVertices)
		}
	}
	top.domain.Swap(mask)
	return IntersectionResult{Result: result, NewSize: newSize, Changed: true}
}
