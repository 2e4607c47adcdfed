// File: methods_clone.go
// Role: Deep-copying a Graph. Rewriting never mutates a caller-visible
// host in place: dpo.ApplyOnce clones the host before delete/add, so
// the caller's graph is left untouched (see §5 of the specification
// this package implements).
package core

// Clone returns a deep copy of g: every node, edge, and adjacency
// bucket is duplicated, and nextNodeID/nextEdgeID are carried over so
// that IDs minted on the clone never collide with the source.
//
// Complexity: O(V + E).
func (g *Graph[N, E]) Clone() *Graph[N, E] {
	out := NewGraph[N, E]()
	out.nextNodeID = g.nextNodeID
	out.nextEdgeID = g.nextEdgeID

	for _, id := range g.nodeOrder {
		n := g.nodes[id]
		out.nodes[id] = &Node[N]{ID: n.ID, Label: n.Label}
		out.nodeOrder = append(out.nodeOrder, id)
		out.adjOut[id] = make(map[string][]string)
		out.adjIn[id] = make(map[string][]string)
	}

	for _, id := range g.edgeOrder {
		e := g.edges[id]
		out.edges[id] = &Edge[E]{ID: e.ID, From: e.From, To: e.To, Label: e.Label}
		out.edgeOrder = append(out.edgeOrder, id)
		out.adjOut[e.From][e.To] = append(out.adjOut[e.From][e.To], id)
		out.adjIn[e.To][e.From] = append(out.adjIn[e.To][e.From], id)
	}

	return out
}
