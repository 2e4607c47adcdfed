// Package cypher renders a DPO rewrite rule as a single openCypher
// statement that performs the equivalent rewrite against a live Neo4j
// graph: MATCH the left-hand pattern, WITH the bound variables carried
// forward, DELETE the elements L \ K removes, then MERGE/CREATE the
// elements R \ K adds.
//
// Labels must implement DisplayLabel so they can be rendered as the
// "label" property used to match existing nodes; this package never
// inspects label structure beyond that.
package cypher
