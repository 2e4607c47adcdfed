// Package vf2 implements subgraph isomorphism search: given a small
// pattern graph and a larger host graph, find every way to embed the
// pattern into the host such that adjacency (and, optionally, edge
// labels) are preserved.
//
// The search is a VF2-style depth-first backtracking enumeration: pick
// the first unmapped pattern node in insertion order, try it against
// every unmapped host node, check feasibility, recurse, undo. There is
// no state-pruning heuristic beyond the feasibility test itself — the
// specification this package implements scopes performance tuning out
// (patterns are expected to be small).
package vf2
