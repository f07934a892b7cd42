package core

// Relabelling maps a graph's (possibly sparse) vertex ids onto the
// contiguous range [0, n), which is what all internal data structures
// index by. Solutions are translated back through NewToOld.
type Relabelling struct {
	// Edges holds the same weighted edges with relabelled endpoints.
	Edges EdgeWeights
	// NewToOld[i] is the original id of internal vertex i; ascending.
	NewToOld []Vertex
}

// NewRelabelling validates ew (canonical keys, no self-loops) and builds
// the contiguous relabelling. Original ids keep their relative order.
func NewRelabelling(ew EdgeWeights) (*Relabelling, error) {
	vertices, err := ew.Vertices()
	if err != nil {
		return nil, err
	}
	oldToNew := make(map[Vertex]Vertex, len(vertices))
	for i, v := range vertices {
		oldToNew[v] = Vertex(i)
	}
	edges := make(EdgeWeights, len(ew))
	for e, w := range ew {
		a, b := oldToNew[e.First], oldToNew[e.Second]
		if a > b {
			a, b = b, a
		}
		edges[Edge{First: a, Second: b}] = w
	}
	return &Relabelling{Edges: edges, NewToOld: vertices}, nil
}

// Old translates an internal vertex id back to the caller's id.
func (r *Relabelling) Old(v Vertex) Vertex { return r.NewToOld[v] }

// NumVertices returns the size of the contiguous namespace.
func (r *Relabelling) NumVertices() int { return len(r.NewToOld) }
