package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wsmatch/bitset"
	"github.com/katalvlaran/wsmatch/core"
	"github.com/katalvlaran/wsmatch/stack"
)

// Sentinel errors for construction-time input validation.
var (
	// ErrTooFewPatternVertices is returned for patterns with < 2 vertices.
	ErrTooFewPatternVertices = errors.New("search: need at least two pattern vertices")

	// ErrEmptyDomain is returned when a pattern vertex has no candidate
	// target vertices before the search even starts.
	ErrEmptyDomain = errors.New("search: empty initial domain")
)

// ReductionResult reports the outcome of one domain-shrinking step.
type ReductionResult int

const (
	// Success: domains may have shrunk; no new singleton, no wipeout.
	Success ReductionResult = iota
	// NewAssignments: at least one domain became a singleton.
	NewAssignments
	// Nogood: some domain became empty; the node is infeasible.
	Nogood
)

// NodeData is one level of the DFS stack.
type NodeData struct {
	// NewAssignments lists the vertices fixed at this node, in discovery
	// order. Cleared once fully processed, so it need not be the full
	// assignment history of the node.
	NewAssignments []core.Assignment

	// Nogood marks the node infeasible.
	Nogood bool

	// ScalarProduct accumulates w_p(e)*w_t(f(e)) over pattern edges with
	// both endpoints assigned.
	ScalarProduct core.Weight

	// TotalPEdgeWeights accumulates the pattern weight of those same
	// edges, used to bound the best achievable remaining score.
	TotalPEdgeWeights core.Weight

	// UnassignedSuperset includes every unassigned pattern vertex (and
	// possibly some assigned ones). Empty means "consult the parent".
	UnassignedSuperset []core.Vertex
}

// domainEntry is one domain snapshot: the domain of a pattern vertex as
// of nodeIndex, shared by all deeper nodes until a later snapshot.
type domainEntry struct {
	nodeIndex int
	domain    *bitset.Dense
}

// RawData owns the node stack and all domain history. Access it through
// Accessor and Traversal.
type RawData struct {
	nodes             stack.Stack[NodeData]
	domains           []stack.Stack[domainEntry]
	numTargetVertices int
}

// NewRawData validates the initial domains and builds the root node.
// Takes ownership of the domain bitsets. Initial singletons become root
// assignments immediately.
func NewRawData(initialDomains []*bitset.Dense, numTargetVertices int) (*RawData, error) {
	if len(initialDomains) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPatternVertices, len(initialDomains))
	}
	r := &RawData{
		domains:           make([]stack.Stack[domainEntry], len(initialDomains)),
		numTargetVertices: numTargetVertices,
	}
	root := r.nodes.Push()
	root.NewAssignments = root.NewAssignments[:0]
	root.Nogood = false
	root.ScalarProduct = 0
	root.TotalPEdgeWeights = 0
	root.UnassignedSuperset = root.UnassignedSuperset[:0]

	for pv, domain := range initialDomains {
		if domain.None() {
			return nil, fmt.Errorf("%w: pattern vertex %d", ErrEmptyDomain, pv)
		}
		entry := r.domains[pv].Push()
		entry.nodeIndex = 0
		entry.domain = domain
		root.UnassignedSuperset = append(root.UnassignedSuperset, core.Vertex(pv))
		if tv, ok := domain.Single(); ok {
			root.NewAssignments = append(root.NewAssignments,
				core.Assignment{PatternVertex: core.Vertex(pv), TargetVertex: core.Vertex(tv)})
		}
	}
	return r, nil
}

// NumPatternVertices returns the number of pattern vertices.
func (r *RawData) NumPatternVertices() int { return len(r.domains) }

// NumTargetVertices returns the target vertex count (domain bit length).
func (r *RawData) NumTargetVertices() int { return r.numTargetVertices }

func (r *RawData) currentNodeIndex() int { return r.nodes.Len() - 1 }

func (r *RawData) currentNode() *NodeData { return r.nodes.Top() }

// topEntryOwnedByCurrentNode returns pv's top domain snapshot, cloning
// it first if it is shared with an ancestor node.
func (r *RawData) topEntryOwnedByCurrentNode(pv core.Vertex) *domainEntry {
	entries := &r.domains[pv]
	top := entries.Top()
	if top.nodeIndex == r.currentNodeIndex() {
		return top
	}
	fresh := entries.Push()
	fresh.nodeIndex = r.currentNodeIndex()
	if fresh.domain == nil {
		fresh.domain = bitset.New(r.numTargetVertices)
	}
	fresh.domain.CopyFrom(entries.OneBelowTop().domain)
	return fresh
}

// Accessor returns the read/mutate façade over r.
func (r *RawData) Accessor() Accessor { return Accessor{raw: r} }

// Traversal returns the structural-moves façade over r.
func (r *RawData) Traversal() Traversal { return Traversal{raw: r} }
