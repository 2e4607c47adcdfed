package neo4jio

import (
	"encoding/json"
	"strconv"

	"github.com/katalvlaran/morphgraph/core"
)

// LoadGraph parses a Neo4j-style JSON export and builds a
// core.Graph[NodeData, RelationType] from it: node labels are the full
// NodeData record, edge labels are the relationship type.
//
// Nodes are deduplicated by NodeData.ID: repeated entries referencing
// the same external id reuse the node created for its first
// occurrence. Entries whose Rel/Target are both absent contribute only
// their source node.
func LoadGraph(data []byte) (*core.Graph[NodeData, RelationType], error) {
	var entries []rawEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, &Error{Kind: InvalidJSON, Msg: "decoding entry array", Err: err}
	}

	g := core.NewGraph[NodeData, RelationType]()
	idToNode := make(map[string]string)

	resolve := func(nd NodeData) string {
		if id, ok := idToNode[nd.ID]; ok {
			return id
		}
		id := g.AddNode(nd)
		idToNode[nd.ID] = id

		return id
	}

	for _, entry := range entries {
		srcID := resolve(entry.Node)

		if entry.Rel == nil || entry.Target == nil {
			continue
		}
		if len(entry.Rel) != 3 {
			return nil, &Error{Kind: BadRelationLength, Msg: badRelationLengthMsg(len(entry.Rel))}
		}

		var relType string
		if err := json.Unmarshal(entry.Rel[1], &relType); err != nil {
			return nil, &Error{Kind: BadRelationFormat, Msg: "relationship type is not a string", Err: err}
		}

		tgtID := resolve(*entry.Target)
		if _, err := g.AddEdge(srcID, tgtID, RelationType(relType)); err != nil {
			return nil, &Error{Kind: BadRelationFormat, Msg: "adding relationship edge", Err: err}
		}
	}

	return g, nil
}

func badRelationLengthMsg(n int) string {
	return "expected relationship array of length 3, got " + strconv.Itoa(n)
}
