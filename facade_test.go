package morphgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/morphgraph"
	"github.com/katalvlaran/morphgraph/core"
	"github.com/katalvlaran/morphgraph/morphism"
	"github.com/katalvlaran/morphgraph/rule"
)

func buildDeleteMiddle(t *testing.T) *rule.Rule[string, string] {
	t.Helper()

	l := core.NewGraph[string, string]()
	la := l.AddNode("A")
	lb := l.AddNode("B")
	lc := l.AddNode("C")
	_, err := l.AddEdge(la, lb, "e")
	require.NoError(t, err)
	_, err = l.AddEdge(lb, lc, "e")
	require.NoError(t, err)

	k := core.NewGraph[string, string]()
	ka := k.AddNode("A")
	kc := k.AddNode("C")

	r := core.NewGraph[string, string]()
	ra := r.AddNode("A")
	rc := r.AddNode("C")

	l2k := morphism.New()
	l2k.InsertNode(la, ka)
	l2k.InsertNode(lc, kc)

	k2r := morphism.New()
	k2r.InsertNode(ka, ra)
	k2r.InsertNode(kc, rc)

	return rule.New("delete-middle", l, k, r, l2k, k2r)
}

func TestMatchSubgraphs_FindsEmbedding(t *testing.T) {
	pattern := core.NewGraph[string, string]()
	pa := pattern.AddNode("X")
	pb := pattern.AddNode("X")
	_, err := pattern.AddEdge(pa, pb, "e")
	require.NoError(t, err)

	host := core.NewGraph[string, string]()
	ha := host.AddNode("X")
	hb := host.AddNode("X")
	hc := host.AddNode("X")
	_, err = host.AddEdge(ha, hb, "e")
	require.NoError(t, err)
	_, err = host.AddEdge(hb, hc, "e")
	require.NoError(t, err)

	matches := morphgraph.MatchSubgraphs(pattern, host, morphgraph.MatchOptions{FindAll: true, CheckEdgeLabels: true})
	require.Len(t, matches, 2)
	require.True(t, morphgraph.HasSubgraph(pattern, host, morphgraph.MatchOptions{CheckEdgeLabels: true}))

	first := morphgraph.MatchSubgraphs(pattern, host, morphgraph.MatchOptions{FindAll: false, CheckEdgeLabels: true})
	require.Len(t, first, 1)
}

func TestApplyRule_AppliesAtFirstMatch(t *testing.T) {
	ru := buildDeleteMiddle(t)

	host := core.NewGraph[string, string]()
	a := host.AddNode("A")
	b := host.AddNode("B")
	c := host.AddNode("C")
	_, err := host.AddEdge(a, b, "e")
	require.NoError(t, err)
	_, err = host.AddEdge(b, c, "e")
	require.NoError(t, err)

	out, applied, err := morphgraph.ApplyRule(ru, host, morphgraph.MatchOptions{CheckEdgeLabels: true})
	require.NoError(t, err)
	require.True(t, applied)
	require.Equal(t, 2, out.NodeCount())
	require.Equal(t, 0, out.EdgeCount())
}

func TestApplyRule_NoMatchReturnsHostUnchanged(t *testing.T) {
	ru := buildDeleteMiddle(t)
	host := core.NewGraph[string, string]()
	host.AddNode("Z")

	out, applied, err := morphgraph.ApplyRule(ru, host, morphgraph.MatchOptions{CheckEdgeLabels: true})
	require.NoError(t, err)
	require.False(t, applied)
	require.Same(t, host, out)
}

func TestApplyRules_SequentialThreading(t *testing.T) {
	ru := buildDeleteMiddle(t)

	host := core.NewGraph[string, string]()
	a := host.AddNode("A")
	b := host.AddNode("B")
	c := host.AddNode("C")
	_, err := host.AddEdge(a, b, "e")
	require.NoError(t, err)
	_, err = host.AddEdge(b, c, "e")
	require.NoError(t, err)

	rewriters := []morphgraph.Rewriter[string, string]{
		morphgraph.RuleRewriter[string, string]{Rule: ru, Opts: morphgraph.MatchOptions{CheckEdgeLabels: true}},
		morphgraph.RuleRewriter[string, string]{Rule: ru, Opts: morphgraph.MatchOptions{CheckEdgeLabels: true}},
	}

	out, applied, err := morphgraph.ApplyRules(rewriters, host)
	require.NoError(t, err)
	require.Equal(t, 1, applied) // second attempt finds no further match
	require.Equal(t, 2, out.NodeCount())
}

func TestApplyExhaustive_ReachesFixedPoint(t *testing.T) {
	ru := buildDeleteMiddle(t)

	host := core.NewGraph[string, string]()
	a := host.AddNode("A")
	b := host.AddNode("B")
	c := host.AddNode("C")
	_, err := host.AddEdge(a, b, "e")
	require.NoError(t, err)
	_, err = host.AddEdge(b, c, "e")
	require.NoError(t, err)

	finals, err := morphgraph.ApplyExhaustive(ru, host, morphgraph.MatchOptions{CheckEdgeLabels: true})
	require.NoError(t, err)
	require.Len(t, finals, 1)
	require.Equal(t, 0, finals[0].EdgeCount())
}
