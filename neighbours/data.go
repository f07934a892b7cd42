package neighbours

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/wsmatch/core"
)

// ErrNonContiguous is returned when a graph's vertex set is not exactly
// [0, n); callers relabel first via core.NewRelabelling.
var ErrNonContiguous = errors.New("neighbours: vertex ids are not contiguous from zero")

// VertexWeight is one (neighbour, edge-weight) pair in an adjacency list.
type VertexWeight struct {
	Vertex core.Vertex
	Weight core.Weight
}

// Data is the immutable adjacency view of one graph: for each vertex,
// its neighbours sorted ascending with the joining edge weights.
type Data struct {
	lists    [][]VertexWeight
	numEdges int
}

// New builds the adjacency data from a weighted edge map whose vertex
// set must be exactly [0, n). Rejects self-loops and non-canonical keys.
func New(ew core.EdgeWeights) (*Data, error) {
	vertices, err := ew.Vertices()
	if err != nil {
		return nil, err
	}
	n := len(vertices)
	if n > 0 && int(vertices[n-1]) != n-1 {
		return nil, fmt.Errorf("%w: max id %d with %d vertices", ErrNonContiguous, vertices[n-1], n)
	}
	d := &Data{lists: make([][]VertexWeight, n), numEdges: len(ew)}
	for e, w := range ew {
		d.lists[e.First] = append(d.lists[e.First], VertexWeight{Vertex: e.Second, Weight: w})
		d.lists[e.Second] = append(d.lists[e.Second], VertexWeight{Vertex: e.First, Weight: w})
	}
	for _, list := range d.lists {
		sort.Slice(list, func(i, j int) bool { return list[i].Vertex < list[j].Vertex })
	}
	return d, nil
}

// NumVertices returns the number of (non-isolated) vertices.
func (d *Data) NumVertices() int { return len(d.lists) }

// NumEdges returns the number of edges.
func (d *Data) NumEdges() int { return d.numEdges }

// Degree returns the number of neighbours of v.
func (d *Data) Degree(v core.Vertex) int { return len(d.lists[v]) }

// NeighboursAndWeights returns v's sorted adjacency list. Read-only.
func (d *Data) NeighboursAndWeights(v core.Vertex) []VertexWeight { return d.lists[v] }

// EdgeWeight returns the weight of edge (a, b), if present.
func (d *Data) EdgeWeight(a, b core.Vertex) (core.Weight, bool) {
	list := d.lists[a]
	i := sort.Search(len(list), func(i int) bool { return list[i].Vertex >= b })
	if i < len(list) && list[i].Vertex == b {
		return list[i].Weight, true
	}
	return 0, false
}

// SortedWeights returns all edge weights, ascending. Allocates; intended
// for once-per-solve bound computation, not the search loop.
func (d *Data) SortedWeights() []core.Weight {
	weights := make([]core.Weight, 0, d.numEdges)
	for v, list := range d.lists {
		for _, nw := range list {
			if core.Vertex(v) < nw.Vertex {
				weights = append(weights, nw.Weight)
			}
		}
	}
	sort.Slice(weights, func(i, j int) bool { return weights[i] < weights[j] })
	return weights
}
