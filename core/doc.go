// Package core provides the graph primitives shared by every other
// wsmatch package: vertex identifiers, canonical undirected edges,
// edge-weight maps, and checked weight arithmetic.
//
// What
//
//   - Vertex: an unsigned integer vertex identifier. Pattern-graph and
//     target-graph vertex spaces are disjoint namespaces; they are never
//     compared directly.
//   - Edge: an unordered pair of distinct vertices, canonicalized as
//     (min, max). Constructing an edge from two equal endpoints is an error.
//   - EdgeWeights: a map from canonical edge to non-negative weight. The
//     vertex set of a graph is implicit: every vertex appearing in some edge.
//   - Assignment: one committed pattern→target vertex pair.
//   - CheckedAdd / CheckedMul: weight arithmetic that reports overflow
//     instead of silently wrapping.
//
// Why
//
//	Every layer above (adjacency data, domains, reducers, the solver)
//	assumes edges are canonical and weights never wrap. Validating once,
//	here, lets the hot search loop skip re-validation entirely.
//
// Determinism
//
//	Vertices() returns the implicit vertex set in ascending order, so all
//	downstream relabelling is reproducible.
package core
