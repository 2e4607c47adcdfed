// Package core defines the labeled directed multigraph that underlies
// pattern matching and DPO rewriting: Node, Edge, and Graph, plus the
// deterministic, insertion-ordered primitives needed to build, query,
// and clone graphs.
//
// Graph is parametric over two comparable label alphabets, N (node
// labels) and E (edge labels). comparable gives both the equality and
// the "clone" capability opaque labels need: value types copy by
// assignment and compare with ==, so no bespoke Equal/Clone methods
// are required for the common alphabets (strings, ints, small structs
// of comparable fields).
//
// Unlike a general-purpose graph library, this Graph carries no
// concurrency guarantees: matching and rewriting are synchronous,
// single-threaded operations over borrowed (read-only) or owned
// (cloned) graphs, so no locks are taken here. Determinism instead
// comes from explicit insertion-order bookkeeping (an order slice
// alongside each catalog map) rather than sorting by ID at read time.
//
// Errors:
//
//	ErrEmptyID     - a node or edge ID was the empty string.
//	ErrNodeNotFound - an operation referenced a non-existent node.
//	ErrEdgeNotFound - an operation referenced a non-existent edge.
package core

import "errors"

// Sentinel errors for core graph operations. Callers must branch on
// these with errors.Is, never by comparing error strings.
var (
	// ErrEmptyID indicates an operation was given an empty identifier.
	ErrEmptyID = errors.New("core: empty identifier")

	// ErrNodeNotFound indicates an operation referenced a node ID that
	// is not present in the graph.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced an edge ID
	// that is not present in the graph.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Direction selects which side of an edge a traversal inspects.
type Direction int

const (
	// Out selects edges for which the queried node is the source.
	Out Direction = iota
	// In selects edges for which the queried node is the target.
	In
)
