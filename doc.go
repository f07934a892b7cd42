// Package wsmatch is a weighted subgraph monomorphism (WSM) solver:
// given a small, edge-weighted "pattern" graph and a larger "target"
// graph, it finds injective vertex mappings from pattern to target that
// preserve adjacency, minimizing a weighted matching score under a
// time/iteration budget.
//
// 🚀 What is wsmatch?
//
//	A deterministic, single-threaded constraint-search engine built from
//	small composable packages:
//		• core       — vertex/edge primitives, canonical edge keys, weight maps
//		• bitset     — dense bitsets and bit utilities for domain storage
//		• stack      — a logical stack with cheap push/pop and stable storage
//		• neighbours — per-vertex adjacency and lazy bounded-distance layers
//		• derived    — lazily computed per-vertex graph invariants
//		• search     — the backtracking substrate: nodes, domains, history
//		• reduce     — pluggable propagators that shrink domains
//		• order      — fail-first variable ordering with seeded tie-breaks
//		• solver     — the branch-and-bound driver and public Solve surface
//
// ✨ Why choose wsmatch?
//
//   - Deterministic – every random choice flows from an injectable seed
//   - Cheap backtracking – domains restore by truncation, never by copy-back
//   - Pure library – the engine never logs, never parses, never blocks
//
// The typical consumer is qubit placement: the pattern graph encodes
// desired logical interactions, the target graph encodes physical device
// connectivity, and a returned mapping becomes an initial qubit layout.
//
// A tiny demo driver lives in cmd/wsmatch; see the solver package for the
// call contract.
//
//	go get github.com/katalvlaran/wsmatch/solver
package wsmatch
