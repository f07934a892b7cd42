// Package derived supplies cheap per-vertex graph invariants used to
// reject impossible assignments before any expensive set-based
// reduction runs.
//
// What
//
//   - VertexData: triangle count, and for distances 2 and 3 the list of
//     reachable vertices with their path counts plus a sorted view of
//     those counts. Handles are memoized per vertex and stay valid for
//     the lifetime of the Graphs object: storage is a fixed table of
//     boxed entries that is only ever filled in, never reallocated.
//   - Compatible: the necessary condition an assignment pv→tv must
//     pass, namely every pattern invariant dominated by the target's.
//
// Why
//
//	An injective, adjacency-preserving map sends every triangle through
//	pv to a triangle through tv, and every length-2 (length-3) path from
//	pv to a length-2 (length-3) path from tv. Comparing counts is
//	O(degree) and prunes most bad assignments without touching domains.
//
// Only distances 2 and 3 are kept. Deeper invariants (invariants of
// invariants) cost more to compute than they prune.
package derived
