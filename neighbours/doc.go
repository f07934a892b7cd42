// Package neighbours provides the per-graph adjacency layer and the
// lazily grown bounded-distance layer on top of it.
//
// What
//
//   - Data: built once per graph, immutable thereafter; for each vertex
//     its sorted (neighbour, edge-weight) list, degree and edge-weight
//     lookups, and the sorted weight sequence used for trivial bounds.
//   - NearData: for each vertex, the set of vertices at exact distance d
//     and within distance d, as bitsets, plus (degree, count) summaries
//     of those sets. Layers are computed by breadth-first expansion from
//     previously cached smaller-distance layers, so repeated queries for
//     non-decreasing d are amortized O(frontier) rather than O(d·n).
//
// Why
//
//	Distance-based propagation asks the same "who is within d of v"
//	questions millions of times during search; caching whole layers as
//	bitsets makes each reduction a handful of word operations.
//
// A vertex is never its own neighbour; self-looped input fails fast at
// construction. Distance queries require d >= 1; plain neighbours are
// the distinguished, cheaper special case (exact distance 1).
//
// Returned bitsets and count slices are live cache references: callers
// must treat them as read-only.
package neighbours
