package order

import (
	"math/rand"

	"github.com/katalvlaran/wsmatch/bitset"
	"github.com/katalvlaran/wsmatch/core"
	"github.com/katalvlaran/wsmatch/neighbours"
	"github.com/katalvlaran/wsmatch/search"
)

// Result reports the outcome of choosing a branch variable.
type Result struct {
	// Vertex is the chosen pattern vertex, meaningful only if Found.
	Vertex core.Vertex
	// Found is false when every pattern vertex is already assigned,
	// meaning the current node holds a full solution.
	Found bool
	// EmptyDomain is set when some domain was wiped out, making the
	// node a nogood; Vertex and Found are then meaningless.
	EmptyDomain bool
}

// VariableChooser picks the next pattern vertex to branch on. It keeps
// scratch storage between calls; not safe for concurrent use.
type VariableChooser struct {
	kept []core.Vertex
	ties []core.Vertex
}

// Choose scans the unassigned-vertices superset for the smallest domain
// of size at least two, breaking ties uniformly at random, and rewrites
// the superset to drop vertices that have become assigned.
func (c *VariableChooser) Choose(acc search.Accessor, rng *rand.Rand) Result {
	c.kept = c.kept[:0]
	c.ties = c.ties[:0]
	bestSize := 0

	for _, pv := range acc.UnassignedSuperset() {
		size := acc.DomainSize(pv)
		switch {
		case size == 0:
			return Result{EmptyDomain: true}
		case size == 1:
			// Assigned; drop from the superset.
			continue
		}
		c.kept = append(c.kept, pv)
		if bestSize == 0 || size < bestSize {
			bestSize = size
			c.ties = c.ties[:0]
		}
		if size == bestSize {
			c.ties = append(c.ties, pv)
		}
	}
	acc.SetUnassignedSuperset(c.kept)

	if len(c.ties) == 0 {
		return Result{}
	}
	return Result{Vertex: c.ties[rng.Intn(len(c.ties))], Found: true}
}

// ValuePicker picks a target vertex from a domain. It keeps scratch
// storage between calls; not safe for concurrent use.
type ValuePicker struct {
	ties []core.Vertex
}

// Pick returns the domain member with the largest target degree,
// breaking ties uniformly at random. The domain must be non-empty.
func (p *ValuePicker) Pick(domain *bitset.Dense, target *neighbours.Data, rng *rand.Rand) core.Vertex {
	p.ties = p.ties[:0]
	bestDegree := -1

	for tv, ok := domain.FirstSet(); ok; tv, ok = domain.NextSet(tv) {
		degree := target.Degree(core.Vertex(tv))
		if degree > bestDegree {
			bestDegree = degree
			p.ties = p.ties[:0]
		}
		if degree == bestDegree {
			p.ties = append(p.ties, core.Vertex(tv))
		}
	}
	return p.ties[rng.Intn(len(p.ties))]
}
