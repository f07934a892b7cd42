// Package search is the backtracking substrate of the solver: the
// logical stack of search-tree nodes, the per-pattern-vertex domain
// history, and the two façades everything above works through.
//
// What
//
//   - RawData: the node stack (new assignments, nogood flag, objective
//     accumulators, unassigned-superset scratch) plus, per pattern
//     vertex, a stack of (node index, domain bitset) snapshots. A
//     snapshot is pushed only when a domain first changes within a node;
//     reverting to an earlier node pops every snapshot tagged at or
//     after it.
//   - Accessor: the read/mutate façade used by reducers and the driver:
//     current domains, new assignments, scalar-product bookkeeping,
//     all-different propagation of committed assignments, and domain
//     intersection with automatic history-entry creation.
//   - Traversal: structural moves. MoveDown commits a candidate
//     assignment in a fresh node, MoveUp pops back to the deepest
//     non-nogood ancestor and truncates dead history, and
//     EraseImpossibleAssignment removes an always-invalid pair from
//     every live snapshot.
//
// Why
//
//	Committing an assignment, undoing to a previous choice point, and
//	querying the current domain must all be cheap. Domains shrink
//	monotonically along a path and restore by truncation on backtrack;
//	nothing is ever recomputed or copied back.
//
// Construction validates that every pattern vertex has a non-empty
// initial domain (reporting which vertex) and that there are at least
// two pattern vertices; initial singleton domains become root-node
// assignments.
package search
