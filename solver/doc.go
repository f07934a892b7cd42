// Package solver is the public surface: it assembles the graph layers,
// the backtracking substrate, the propagators and the orderings into a
// branch-and-bound search for weighted subgraph monomorphisms.
//
// What
//
//   - Solve(pattern, target, params): find injective, edge-preserving
//     maps from the pattern graph into the target graph, minimising the
//     scalar product Σ w_p(e) · w_t(f(e)) over pattern edges e.
//   - Parameters: time, iteration and weight budgets, reduction depths,
//     and a seed for deterministic replay.
//   - SolutionData: the solutions found, iteration count, trivial weight
//     bounds, and whether the search finished or ran out of budget.
//
// How
//
//	Domains are initialised by degree, distance-count and derived-graph
//	filters, then a depth-first search commits one assignment per node,
//	propagating each through the alldiff constraint and the reducers to
//	a fixpoint before descending further. In single-best mode every full
//	solution tightens the admissible weight to strictly better, so the
//	final solution is optimal whenever the search finishes.
//
// Complexity
//
//	Worst case exponential, as for any subgraph isomorphism variant; the
//	budgets make every call terminate.
package solver
