// Package dpo implements double-pushout graph rewriting: matching a
// rule's left-hand pattern against a host graph (via package vf2),
// checking the gluing condition, and performing the delete-then-add
// rewrite step that produces a new host graph.
//
// Every operation here treats its input host as immutable: ApplyOnce
// clones before mutating, so a caller's graph is never modified out
// from under it (see core.Graph.Clone, which this package leans on
// directly rather than duplicating the copy logic).
package dpo
