// Package bitset provides the dense fixed-length bitset used to store
// search domains (the still-possible target vertices of one pattern
// vertex), plus two small bit utilities.
//
// What
//
//   - Dense: a fixed-length bitset over [0, n) backed by uint64 words,
//     with the operations the search substrate needs in its hot loop:
//     Test/Set/Clear, Count, FirstSet/NextSet scans, in-place
//     intersection/difference/union, subset tests, O(1) Swap, and a
//     fast Single probe for singleton domains.
//   - BitLength, RightmostZeroBits: word-level helpers with fully
//     specified edge behavior at zero.
//
// Why
//
//	Domains only ever shrink along a search path, and backtracking
//	restores snapshots rather than recomputing; a flat word array with
//	in-place operations keeps both directions cheap and allocation-free.
//
// Complexity
//
//	All scans and set operations are O(n/64); Test/Set/Clear/Swap are O(1).
package bitset
