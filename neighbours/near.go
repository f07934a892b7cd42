package neighbours

import (
	"sort"

	"github.com/katalvlaran/wsmatch/bitset"
	"github.com/katalvlaran/wsmatch/core"
)

// DegreeCount is one entry of a degree summary: Count vertices of the
// given Degree. Summaries are sorted by Degree ascending.
type DegreeCount struct {
	Degree int
	Count  int
}

// vertexLayers holds the lazily grown distance layers of one root vertex.
// All four lists only ever append; earlier entries are never reallocated,
// so references handed out remain valid across later growth.
type vertexLayers struct {
	exact       []*bitset.Dense // exact[i]: vertices at distance exactly i+1
	upTo        []*bitset.Dense // upTo[i]: vertices at distance <= i+1
	exactCounts [][]DegreeCount
	upToCounts  [][]DegreeCount
}

// NearData answers bounded-distance queries for one graph, caching every
// layer it computes. Not safe for concurrent use; each solve call owns
// its own instance.
type NearData struct {
	ndata          *Data
	perVertex      []vertexLayers
	scratchDegrees []int
}

// NewNear wraps adjacency data with an empty distance cache.
func NewNear(ndata *Data) *NearData {
	return &NearData{
		ndata:          ndata,
		perVertex:      make([]vertexLayers, ndata.NumVertices()),
		scratchDegrees: make([]int, 0, ndata.NumVertices()),
	}
}

// NumVertices returns the vertex count of the underlying graph.
func (n *NearData) NumVertices() int { return n.ndata.NumVertices() }

func checkDistance(d int) {
	if d < 1 {
		panic("neighbours: distance queries require d >= 1")
	}
}

// VerticesAtExactDistance returns the set of vertices at distance
// exactly d from v. The returned bitset is a live cache entry; treat as
// read-only. Requires d >= 1.
func (n *NearData) VerticesAtExactDistance(v core.Vertex, d int) *bitset.Dense {
	checkDistance(d)
	layers := &n.perVertex[v]
	size := n.ndata.NumVertices()
	if len(layers.exact) == 0 {
		nbrs := bitset.New(size)
		for _, vw := range n.ndata.NeighboursAndWeights(v) {
			nbrs.Set(int(vw.Vertex))
		}
		layers.exact = append(layers.exact, nbrs)
	}
	for d > len(layers.exact) {
		prev := layers.exact[len(layers.exact)-1]
		if prev.None() {
			// All later layers are empty too; stop growing.
			return prev
		}
		next := bitset.New(size)
		for w, ok := prev.FirstSet(); ok; w, ok = prev.NextSet(w) {
			for _, vw := range n.ndata.NeighboursAndWeights(core.Vertex(w)) {
				next.Set(int(vw.Vertex))
			}
		}
		// Neighbours of layer d-1 lie at distance d-2, d-1 or d from the
		// root; strip the two earlier layers and the root itself.
		next.DiffWith(prev)
		if len(layers.exact) >= 2 {
			next.DiffWith(layers.exact[len(layers.exact)-2])
		}
		next.Clear(int(v))
		layers.exact = append(layers.exact, next)
	}
	return layers.exact[d-1]
}

// VerticesUpToDistance returns the set of vertices at distance <= d
// from v (excluding v itself). Live cache entry; read-only. d >= 1.
func (n *NearData) VerticesUpToDistance(v core.Vertex, d int) *bitset.Dense {
	checkDistance(d)
	layers := &n.perVertex[v]
	if len(layers.upTo) == 0 {
		layers.upTo = append(layers.upTo, n.VerticesAtExactDistance(v, 1).Clone())
	}
	for d > len(layers.upTo) {
		nextExact := n.VerticesAtExactDistance(v, len(layers.upTo)+1)
		if nextExact.None() {
			// The union has stopped changing.
			return layers.upTo[len(layers.upTo)-1]
		}
		union := layers.upTo[len(layers.upTo)-1].Clone()
		union.UnionWith(nextExact)
		layers.upTo = append(layers.upTo, union)
	}
	return layers.upTo[d-1]
}

// NumVerticesUpToDistance counts vertices within distance d of v;
// zero when d == 0.
func (n *NearData) NumVerticesUpToDistance(v core.Vertex, d int) int {
	if d == 0 {
		return 0
	}
	return n.VerticesUpToDistance(v, d).Count()
}

// DegreeCountsAtExactDistance summarizes the degrees of the vertices at
// distance exactly d from v. Live cache entry; read-only. d >= 1.
func (n *NearData) DegreeCountsAtExactDistance(v core.Vertex, d int) []DegreeCount {
	checkDistance(d)
	layers := &n.perVertex[v]
	if d <= len(layers.exactCounts) {
		return layers.exactCounts[d-1]
	}
	if k := len(layers.exactCounts); k > 0 && len(layers.exactCounts[k-1]) == 0 {
		return nil
	}
	for d > len(layers.exactCounts) {
		counts := n.summarize(n.VerticesAtExactDistance(v, len(layers.exactCounts)+1))
		layers.exactCounts = append(layers.exactCounts, counts)
		if len(counts) == 0 {
			return nil
		}
	}
	return layers.exactCounts[d-1]
}

// DegreeCountsUpToDistance summarizes the degrees of the vertices within
// distance d of v. Live cache entry; read-only. d >= 1.
func (n *NearData) DegreeCountsUpToDistance(v core.Vertex, d int) []DegreeCount {
	checkDistance(d)
	layers := &n.perVertex[v]
	if d <= len(layers.upToCounts) {
		return layers.upToCounts[d-1]
	}
	for d > len(layers.upToCounts) {
		if n.VerticesAtExactDistance(v, len(layers.upToCounts)+1).None() {
			// No new vertices; the summary has stopped changing.
			return layers.upToCounts[len(layers.upToCounts)-1]
		}
		counts := n.summarize(n.VerticesUpToDistance(v, len(layers.upToCounts)+1))
		layers.upToCounts = append(layers.upToCounts, counts)
	}
	return layers.upToCounts[d-1]
}

// summarize turns a vertex set into sorted (degree, count) pairs.
func (n *NearData) summarize(vertices *bitset.Dense) []DegreeCount {
	n.scratchDegrees = n.scratchDegrees[:0]
	for w, ok := vertices.FirstSet(); ok; w, ok = vertices.NextSet(w) {
		n.scratchDegrees = append(n.scratchDegrees, n.ndata.Degree(core.Vertex(w)))
	}
	if len(n.scratchDegrees) == 0 {
		return nil
	}
	sort.Ints(n.scratchDegrees)
	var counts []DegreeCount
	for _, degree := range n.scratchDegrees {
		if k := len(counts); k > 0 && counts[k-1].Degree == degree {
			counts[k-1].Count++
		} else {
			counts = append(counts, DegreeCount{Degree: degree, Count: 1})
		}
	}
	return counts
}

// DegreeCountsDominated reports whether an injection could exist mapping
// each pattern vertex (summarized in p) to a target vertex of at least
// its degree (summarized in t): for every degree threshold, t must hold
// at least as many vertices of that degree or higher as p.
func DegreeCountsDominated(p, t []DegreeCount) bool {
	pCum, tCum := 0, 0
	ti := len(t) - 1
	for pi := len(p) - 1; pi >= 0; pi-- {
		pCum += p[pi].Count
		for ti >= 0 && t[ti].Degree >= p[pi].Degree {
			tCum += t[ti].Count
			ti--
		}
		if pCum > tCum {
			return false
		}
	}
	return true
}
