package core

import (
	"fmt"
	"sort"
)

// NewEdge canonicalizes the pair (a, b) as (min, max).
// Returns ErrSelfLoop if a == b.
func NewEdge(a, b Vertex) (Edge, error) {
	if a == b {
		return Edge{}, fmt.Errorf("%w: vertex %d", ErrSelfLoop, a)
	}
	if a > b {
		a, b = b, a
	}
	return Edge{First: a, Second: b}, nil
}

// MustEdge is NewEdge for statically known distinct endpoints;
// panics on a self-loop. Intended for tests and fixtures.
func MustEdge(a, b Vertex) Edge {
	e, err := NewEdge(a, b)
	if err != nil {
		panic(err)
	}
	return e
}

// Vertices extracts the implicit vertex set, sorted ascending.
// Fails if any key is non-canonical (First >= Second); a self-looped key
// (First == Second) reports ErrSelfLoop.
func (ew EdgeWeights) Vertices() ([]Vertex, error) {
	seen := make(map[Vertex]struct{}, 2*len(ew))
	for e := range ew {
		if e.First == e.Second {
			return nil, fmt.Errorf("%w: vertex %d", ErrSelfLoop, e.First)
		}
		if e.First > e.Second {
			return nil, fmt.Errorf("%w: (%d, %d)", ErrNonCanonicalEdge, e.First, e.Second)
		}
		seen[e.First] = struct{}{}
		seen[e.Second] = struct{}{}
	}
	vertices := make([]Vertex, 0, len(seen))
	for v := range seen {
		vertices = append(vertices, v)
	}
	sort.Slice(vertices, func(i, j int) bool { return vertices[i] < vertices[j] })
	return vertices, nil
}

// TotalWeight sums all edge weights, reporting overflow.
func (ew EdgeWeights) TotalWeight() (Weight, error) {
	var total Weight
	for _, w := range ew {
		sum, ok := CheckedAdd(total, w)
		if !ok {
			return 0, ErrWeightOverflow
		}
		total = sum
	}
	return total, nil
}

// CheckedAdd returns x+y and true, or 0 and false on overflow.
func CheckedAdd(x, y Weight) (Weight, bool) {
	sum := x + y
	if sum < x {
		return 0, false
	}
	return sum, true
}

// CheckedMul returns x*y and true, or 0 and false on overflow.
func CheckedMul(x, y Weight) (Weight, bool) {
	if x == 0 || y == 0 {
		return 0, true
	}
	product := x * y
	if product/x != y {
		return 0, false
	}
	return product, true
}
