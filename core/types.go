// Package core: primitive types and sentinel errors.
package core

import "errors"

// Sentinel errors for edge and weight-map validation.
var (
	// ErrSelfLoop is returned when an edge joins a vertex to itself.
	ErrSelfLoop = errors.New("core: edge endpoints are equal")

	// ErrNonCanonicalEdge is returned when an edge map contains a key
	// with First >= Second.
	ErrNonCanonicalEdge = errors.New("core: edge key is not canonical")

	// ErrWeightOverflow is returned when weight arithmetic would wrap.
	ErrWeightOverflow = errors.New("core: weight overflow")
)

// Vertex identifies a vertex within one graph. Pattern and target graphs
// use separate Vertex namespaces.
type Vertex uint32

// Weight is a non-negative edge weight.
type Weight uint64

// MaxWeight is the largest representable Weight, used as "unbounded".
const MaxWeight = Weight(^uint64(0))

// Edge is an unordered pair of distinct vertices stored canonically,
// so First < Second always holds for edges built via NewEdge.
type Edge struct {
	First  Vertex
	Second Vertex
}

// EdgeWeights maps canonical edges to weights and fully describes one
// undirected weighted graph. The vertex set is implicit.
type EdgeWeights map[Edge]Weight

// Assignment is a committed pattern-vertex → target-vertex pair.
type Assignment struct {
	PatternVertex Vertex
	TargetVertex  Vertex
}
