package derived

import (
	"sort"

	"github.com/katalvlaran/wsmatch/core"
	"github.com/katalvlaran/wsmatch/neighbours"
)

// NeighbourCount pairs a reachable vertex with the number of distinct
// paths (of the relevant length) leading to it.
type NeighbourCount struct {
	Vertex core.Vertex
	Count  int
}

// VertexData bundles the invariants of one vertex. It is cheap to hold
// by pointer; the pointed-to entry is never moved or rewritten once
// computed.
type VertexData struct {
	// TriangleCount is the number of triangles through the vertex.
	TriangleCount int
	// D2 lists every vertex joined by at least one length-2 path,
	// sorted by vertex id, with the path count.
	D2 []NeighbourCount
	// D2SortedCounts holds the D2 path counts sorted descending.
	D2SortedCounts []int
	// D3 and D3SortedCounts are the length-3 analogues.
	D3             []NeighbourCount
	D3SortedCounts []int
}

// Graphs lazily computes and memoizes VertexData for one graph.
// Entries are boxed: handing out *VertexData is safe across all future
// computations. Not safe for concurrent use.
type Graphs struct {
	ndata   *neighbours.Data
	entries []*VertexData
}

// NewGraphs wraps adjacency data with an empty invariant cache.
func NewGraphs(ndata *neighbours.Data) *Graphs {
	return &Graphs{ndata: ndata, entries: make([]*VertexData, ndata.NumVertices())}
}

// Data returns the memoized invariants of v, computing them on first use.
func (g *Graphs) Data(v core.Vertex) *VertexData {
	if entry := g.entries[v]; entry != nil {
		return entry
	}
	entry := g.compute(v)
	g.entries[v] = entry
	return entry
}

func (g *Graphs) compute(v core.Vertex) *VertexData {
	entry := &VertexData{}
	nbrs := g.ndata.NeighboursAndWeights(v)

	for i := 0; i < len(nbrs); i++ {
		for j := i + 1; j < len(nbrs); j++ {
			if _, ok := g.ndata.EdgeWeight(nbrs[i].Vertex, nbrs[j].Vertex); ok {
				entry.TriangleCount++
			}
		}
	}

	d2 := make(map[core.Vertex]int)
	for _, a := range nbrs {
		for _, w := range g.ndata.NeighboursAndWeights(a.Vertex) {
			if w.Vertex != v {
				d2[w.Vertex]++
			}
		}
	}
	entry.D2, entry.D2SortedCounts = collect(d2)

	d3 := make(map[core.Vertex]int)
	for _, a := range nbrs {
		for _, b := range g.ndata.NeighboursAndWeights(a.Vertex) {
			if b.Vertex == v {
				continue
			}
			for _, w := range g.ndata.NeighboursAndWeights(b.Vertex) {
				if w.Vertex != v && w.Vertex != a.Vertex {
					d3[w.Vertex]++
				}
			}
		}
	}
	entry.D3, entry.D3SortedCounts = collect(d3)
	return entry
}

func collect(counts map[core.Vertex]int) ([]NeighbourCount, []int) {
	if len(counts) == 0 {
		return nil, nil
	}
	list := make([]NeighbourCount, 0, len(counts))
	sorted := make([]int, 0, len(counts))
	for w, c := range counts {
		list = append(list, NeighbourCount{Vertex: w, Count: c})
		sorted = append(sorted, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Vertex < list[j].Vertex })
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	return list, sorted
}

// CountsDominated reports whether the descending sequence p is
// componentwise dominated by the descending sequence t, requiring
// len(p) <= len(t). The condition is necessary for an injection pairing
// each pattern count with a target count at least as large.
func CountsDominated(p, t []int) bool {
	if len(p) > len(t) {
		return false
	}
	for i := range p {
		if p[i] > t[i] {
			return false
		}
	}
	return true
}

// Compatible reports whether target invariants dominate pattern
// invariants, a necessary condition for any monomorphism mapping the
// pattern vertex onto the target vertex.
func Compatible(p, t *VertexData) bool {
	return p.TriangleCount <= t.TriangleCount &&
		CountsDominated(p.D2SortedCounts, t.D2SortedCounts) &&
		CountsDominated(p.D3SortedCounts, t.D3SortedCounts)
}
