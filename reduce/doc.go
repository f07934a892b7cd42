// Package reduce holds the propagators that shrink domains after each
// committed assignment.
//
// What
//
//   - Reducer: a closed tagged variant of propagator kinds behind one
//     dispatch point. Each kind offers Check (a cheap admissibility test
//     of a single pv -> tv pair, independent of the other domains) and
//     Reduce (shrink the domains affected by a committed assignment).
//     The kinds:
//
//     Neighbours      after pv -> tv, every pattern neighbour of pv must
//     map inside the target neighbourhood of tv.
//     Distances(d)    every pattern vertex at distance exactly d from pv
//     must map within distance d of tv, built layer by
//     layer with an early subset short-circuit.
//     DerivedGraphs   path-count invariants: pattern vertices reachable
//     by length-2 (length-3) walks from pv keep only
//     targets reachable by at least as many such walks
//     from tv.
//
//   - Wrapper: pairs a Reducer with a per-node counter of how many of
//     the node's assignments it has folded in, so resumed reduction
//     passes only process the delta.
//
// A failed Check means the pair is invalid in EVERY node of every
// search, so the caller erases it from all domain history. A Nogood
// from Reduce only condemns the current node.
package reduce
