// Package stack provides the logical stack used by the backtracking
// substrate: a slice-backed stack whose Pop only truncates, so previously
// allocated elements are reused by the next Push.
//
// What
//
//   - Stack[T]: Push (exposing a reusable element to overwrite), Pop,
//     Top, OneBelowTop, indexed At access, Len, Clear.
//
// Why
//
//	Search descends and backtracks millions of times; domains, node
//	records and history entries must come and go without freeing interior
//	storage. Reusing popped elements makes each step O(1) amortized and
//	keeps pointers into live elements stable until their level is popped.
//
// A pushed element holds whatever stale contents the previous occupant
// of that slot left behind; callers must fully overwrite it.
package stack
