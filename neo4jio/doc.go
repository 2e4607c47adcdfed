// Package neo4jio ingests a Neo4j-style JSON export — a flat list of
// {node, rel, target} entries, where rel is a 3-element
// [source-props, relationship-type, target-props] triple — into a
// core.Graph[NodeData, RelationType]. Nodes are deduplicated by their
// external "id" field: an entry whose node.id has already been seen
// reuses the existing graph node instead of minting a duplicate.
package neo4jio
