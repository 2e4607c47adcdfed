// Package morphgraph ties together a generic labeled directed
// multigraph (core), subgraph matching (vf2), double-pushout rewrite
// rules (rule) and their application (dpo), Neo4j JSON ingestion
// (neo4jio), and Cypher export (cypher) behind one façade: find
// subgraph matches, apply a single rule or a sequence of rules, and
// apply a rule exhaustively to its fixed point(s).
//
// Most programs only need this package and core; the subpackages
// exist so each concern (matching, rule validation, rewriting, I/O)
// can be used, tested, and understood independently.
package morphgraph
