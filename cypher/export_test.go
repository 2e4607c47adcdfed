package cypher_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/morphgraph/core"
	"github.com/katalvlaran/morphgraph/cypher"
	"github.com/katalvlaran/morphgraph/morphism"
	"github.com/katalvlaran/morphgraph/rule"
)

// label is a minimal DisplayLabel: comparable and Stringer.
type label string

func (l label) String() string { return string(l) }

// addEdgeRule builds a rule matching two isolated nodes and adding a
// new relationship between them, the same scenario dpo's tests cover.
func addEdgeRule(t *testing.T) *rule.Rule[label, label] {
	t.Helper()

	l := core.NewGraph[label, label]()
	la := l.AddNode("Person")
	lb := l.AddNode("Company")

	k := core.NewGraph[label, label]()
	ka := k.AddNode("Person")
	kb := k.AddNode("Company")

	r := core.NewGraph[label, label]()
	ra := r.AddNode("Person")
	rb := r.AddNode("Company")
	_, err := r.AddEdge(ra, rb, "works at")
	require.NoError(t, err)

	l2k := morphism.New()
	l2k.InsertNode(la, ka)
	l2k.InsertNode(lb, kb)

	k2r := morphism.New()
	k2r.InsertNode(ka, ra)
	k2r.InsertNode(kb, rb)

	return rule.New("hire", l, k, r, l2k, k2r)
}

// deleteEdgeRule builds a rule matching a->b and deleting that edge,
// keeping both nodes.
func deleteEdgeRule(t *testing.T) *rule.Rule[label, label] {
	t.Helper()

	l := core.NewGraph[label, label]()
	la := l.AddNode("Person")
	lb := l.AddNode("Company")
	_, err := l.AddEdge(la, lb, "works at")
	require.NoError(t, err)

	k := core.NewGraph[label, label]()
	ka := k.AddNode("Person")
	kb := k.AddNode("Company")

	r := core.NewGraph[label, label]()
	ra := r.AddNode("Person")
	rb := r.AddNode("Company")

	l2k := morphism.New()
	l2k.InsertNode(la, ka)
	l2k.InsertNode(lb, kb)

	k2r := morphism.New()
	k2r.InsertNode(ka, ra)
	k2r.InsertNode(kb, rb)

	return rule.New("quit", l, k, r, l2k, k2r)
}

func TestExport_AddEdge(t *testing.T) {
	ru := addEdgeRule(t)

	out, err := cypher.Export(ru)
	require.NoError(t, err)

	require.Contains(t, out, "MATCH (n0 {label: \"Person\"}), (n1 {label: \"Company\"})")
	require.Equal(t, 1, strings.Count(out, "MATCH "))
	require.Contains(t, out, "WITH n0, n1")
	require.Contains(t, out, "CREATE (n0)-[:WORKS_AT]->(n1)")
	require.NotContains(t, out, "DELETE")
}

func TestExport_DeleteEdge(t *testing.T) {
	ru := deleteEdgeRule(t)

	out, err := cypher.Export(ru)
	require.NoError(t, err)

	require.Contains(t, out, "MATCH (n0 {label: \"Person\"})-[r0:WORKS_AT]->(n1 {label: \"Company\"})")
	require.Contains(t, out, "WITH n0, n1, r0")
	require.Contains(t, out, "DELETE r0")
	require.NotContains(t, out, "CREATE")
}

// TestExport_SingleMatchClause locks in the well-formedness property
// that output contains exactly one MATCH, at most one DELETE, and at
// most one CREATE, even when the rule's left side has several
// disconnected nodes and edges that would otherwise read naturally as
// separate MATCH statements.
func TestExport_SingleMatchClause(t *testing.T) {
	for _, ru := range []*rule.Rule[label, label]{addEdgeRule(t), deleteEdgeRule(t)} {
		out, err := cypher.Export(ru)
		require.NoError(t, err)

		require.Equal(t, 1, strings.Count(out, "MATCH "), "expected exactly one MATCH in:\n%s", out)
		require.LessOrEqual(t, strings.Count(out, "DELETE "), 1, "expected at most one DELETE in:\n%s", out)
		require.LessOrEqual(t, strings.Count(out, "CREATE "), 1, "expected at most one CREATE in:\n%s", out)
	}
}

// TestExport_EveryPostWithVariableIsCarried checks the well-formedness
// property: every MATCH-bound variable token referenced by DELETE
// appears in the WITH clause that precedes it.
func TestExport_EveryPostWithVariableIsCarried(t *testing.T) {
	ru := deleteEdgeRule(t)

	out, err := cypher.Export(ru)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	var withVars map[string]bool
	for _, line := range lines {
		if strings.HasPrefix(line, "WITH ") {
			withVars = make(map[string]bool)
			for _, v := range strings.Split(strings.TrimPrefix(line, "WITH "), ", ") {
				withVars[v] = true
			}
		}
		if strings.HasPrefix(line, "DELETE ") {
			require.NotNil(t, withVars, "DELETE appeared before any WITH")
			for _, v := range strings.Split(strings.TrimPrefix(line, "DELETE "), ", ") {
				require.True(t, withVars[v], "variable %q used after WITH but not carried forward", v)
			}
		}
	}
}

func TestExportToFile_WritesRenderedCypher(t *testing.T) {
	ru := addEdgeRule(t)
	path := t.TempDir() + "/rule.cypher"

	err := cypher.ExportToFile(ru, path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "CREATE")
}
