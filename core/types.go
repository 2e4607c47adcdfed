// File: types.go
// Role: Node, Edge, and Graph type declarations.
//
// Determinism:
//   - nodeOrder/edgeOrder record insertion order; Nodes()/Edges() walk
//     them directly instead of sorting the backing maps at read time.
package core

// Node is a single vertex of a Graph: a stable opaque ID plus an
// opaque, comparable label.
type Node[N comparable] struct {
	// ID uniquely identifies this node within its Graph. Never reused.
	ID string
	// Label is the node's opaque payload, compared with ==.
	Label N
}

// Edge is a single directed connection between two live nodes. Multi-
// edges are permitted: two distinct Edge.ID may share endpoints and/or
// labels.
type Edge[E comparable] struct {
	// ID uniquely identifies this edge within its Graph. Never reused.
	ID string
	// From is the source node ID.
	From string
	// To is the destination node ID.
	To string
	// Label is the edge's opaque payload, compared with ==.
	Label E
}

// Graph is a labeled directed multigraph: every edge's endpoints are
// live nodes, and removing a node cascades to remove its incident
// edges. Node/edge IDs are assigned from a monotonic per-graph counter
// and are never reused within a Graph's lifetime.
//
// Iteration order (Nodes, Edges) is insertion order, tracked in
// nodeOrder/edgeOrder alongside the ID-keyed catalogs, so that matcher
// output is reproducible across runs for a fixed construction history.
type Graph[N comparable, E comparable] struct {
	nextNodeID uint64
	nextEdgeID uint64

	nodes     map[string]*Node[N]
	nodeOrder []string

	edges     map[string]*Edge[E]
	edgeOrder []string

	// adjOut[from][to] = ordered edge IDs from "from" to "to".
	adjOut map[string]map[string][]string
	// adjIn[to][from] = ordered edge IDs from "from" to "to", indexed
	// by target for O(1) incoming-neighbor queries.
	adjIn map[string]map[string][]string
}

// NewGraph creates an empty Graph. Complexity: O(1).
func NewGraph[N comparable, E comparable]() *Graph[N, E] {
	return &Graph[N, E]{
		nodes:  make(map[string]*Node[N]),
		edges:  make(map[string]*Edge[E]),
		adjOut: make(map[string]map[string][]string),
		adjIn:  make(map[string]map[string][]string),
	}
}
