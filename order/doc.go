// Package order decides where the search branches next.
//
// What
//
//   - VariableChooser: picks the unassigned pattern vertex with the
//     smallest remaining domain (fail first), breaking ties uniformly at
//     random. While scanning it also rewrites the current node's
//     unassigned-vertices superset, so later nodes scan fewer candidates.
//   - ValuePicker: picks a target vertex from the chosen domain,
//     preferring the highest degree in the target graph, ties again
//     broken at random.
//
// Why
//
//	Small domains fail fast, so mistakes are discovered near the top of
//	the tree where undoing them is cheap. High-degree target vertices
//	keep the most room for the still-unassigned neighbours. Randomised
//	tie-breaking avoids pathological orderings on symmetric inputs while
//	staying reproducible under a fixed seed.
package order
