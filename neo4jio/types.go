package neo4jio

import "encoding/json"

// NodeData is the per-node payload carried by an ingested graph's
// node labels: the external identity and display fields a Neo4j
// export attaches to a node.
type NodeData struct {
	Name string `json:"name"`
	Text string `json:"text"`
	ID   string `json:"id"`
}

// String renders a NodeData for display and for use as a Cypher
// property value by package cypher, which requires node/edge labels
// to implement fmt.Stringer.
func (n NodeData) String() string { return n.Name }

// RelationType is an ingested relationship's type token (the middle
// element of a Neo4j "rel" triple), carried as edge labels so that
// ingested graphs can be exported through package cypher without a
// conversion step.
type RelationType string

// String returns the relationship type as-is.
func (r RelationType) String() string { return string(r) }

// rawEntry is one element of the top-level JSON array: a source node,
// an optional [props, relType, props] relationship triple, and an
// optional target node. Rel and Target are both present or both
// absent in well-formed input, but that pairing is not enforced at
// the unmarshal stage — LoadGraph only acts on a relationship when
// both are non-nil.
type rawEntry struct {
	Node   NodeData          `json:"Node"`
	Rel    []json.RawMessage `json:"Rel"`
	Target *NodeData         `json:"Target"`
}
