package search

import (
	"github.com/katalvlaran/wsmatch/bitset"
	"github.com/katalvlaran/wsmatch/core"
)

// Traversal performs the structural moves on the node list: descending
// with a candidate assignment, backtracking, and globally erasing an
// assignment proved impossible. It is a cheap value; copy it freely.
type Traversal struct {
	raw *RawData
}

// MoveUp abandons the current node and returns to the deepest ancestor
// still worth exploring, discarding all domain history above it.
// Returns false when the whole tree is exhausted.
func (t Traversal) MoveUp() bool {
	raw := t.raw
	if raw.nodes.Len() <= 1 {
		return false
	}
	raw.nodes.Pop()
	for raw.nodes.Top().Nogood {
		raw.nodes.Pop()
		if raw.nodes.Empty() {
			return false
		}
	}
	cur := raw.currentNodeIndex()
	for pv := range raw.domains {
		entries := &raw.domains[pv]
		for entries.Top().nodeIndex > cur {
			entries.Pop()
		}
	}
	return true
}

// MoveDown commits the candidate assignment pv -> tv in a fresh child
// node. The current node first loses tv from Domain(pv), remembering
// the alternative branch: a two-element domain leaves the sibling value
// behind as an assignment, a singleton makes the current node a nogood.
// The current node must be valid, fully reduced, and have tv in
// Domain(pv).
func (t Traversal) MoveDown(pv, tv core.Vertex) {
	raw := t.raw
	domain := raw.domains[pv].Top().domain

	parentValid := true
	first, _ := domain.FirstSet()
	second, hasSecond := domain.NextSet(first)
	switch {
	case !hasSecond:
		// Dom(pv) = {tv} already; exploring the child exhausts this node.
		raw.currentNode().Nogood = true
		parentValid = false
	default:
		if _, hasThird := domain.NextSet(second); !hasThird {
			// Dom(pv) = {tv, other}: the sibling branch is forced.
			other := first
			if other == int(tv) {
				other = second
			}
			node := raw.currentNode()
			node.NewAssignments = append(node.NewAssignments,
				core.Assignment{PatternVertex: pv, TargetVertex: core.Vertex(other)})
		}
	}
	if parentValid {
		entry := raw.topEntryOwnedByCurrentNode(pv)
		entry.domain.Clear(int(tv))
	}

	scalar := raw.currentNode().ScalarProduct
	total := raw.currentNode().TotalPEdgeWeights

	child := raw.nodes.Push()
	child.NewAssignments = append(child.NewAssignments[:0],
		core.Assignment{PatternVertex: pv, TargetVertex: tv})
	child.Nogood = false
	child.ScalarProduct = scalar
	child.TotalPEdgeWeights = total
	child.UnassignedSuperset = child.UnassignedSuperset[:0]

	entry := raw.domains[pv].Push()
	entry.nodeIndex = raw.currentNodeIndex()
	if entry.domain == nil {
		entry.domain = bitset.New(raw.numTargetVertices)
	}
	entry.domain.ClearAll()
	entry.domain.Set(int(tv))
}

// EraseImpossibleAssignment removes a pair pv -> tv known to be invalid
// in every node of every search, not merely under the current
// decisions, from all live domain history. A snapshot that collapses
// marks every node sharing it: a wipeout turns them into nogoods, a
// remaining singleton adds the implied assignment to each.
func (t Traversal) EraseImpossibleAssignment(asg core.Assignment) {
	raw := t.raw
	entries := &raw.domains[asg.PatternVertex]
	tv := int(asg.TargetVertex)

	for i := 0; i < entries.Len(); i++ {
		entry := entries.At(i)
		if raw.nodes.At(entry.nodeIndex).Nogood {
			continue
		}
		if !entry.domain.Test(tv) {
			continue
		}
		entry.domain.Clear(tv)
		size := entry.domain.Count()
		if size >= 2 {
			continue
		}

		// The snapshot collapsed; every node sharing it is affected.
		last := raw.currentNodeIndex()
		if i+1 < entries.Len() {
			last = entries.At(i+1).nodeIndex - 1
		}
		if size == 0 {
			for j := entry.nodeIndex; j <= last; j++ {
				raw.nodes.At(j).Nogood = true
			}
			continue
		}
		other, _ := entry.domain.FirstSet()
		implied := core.Assignment{
			PatternVertex: asg.PatternVertex,
			TargetVertex:  core.Vertex(other),
		}
		for j := entry.nodeIndex; j <= last; j++ {
			node := raw.nodes.At(j)
			if !node.Nogood {
				node.NewAssignments = append(node.NewAssignments, implied)
			}
		}
	}
}
