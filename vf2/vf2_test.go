package vf2_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/morphgraph/core"
	"github.com/katalvlaran/morphgraph/vf2"
)

// buildCycle constructs a directed n-cycle with every node labeled "X"
// and every edge labeled "e".
func buildCycle(n int) *core.Graph[string, string] {
	g := core.NewGraph[string, string]()
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = g.AddNode("X")
	}
	for i := 0; i < n; i++ {
		_, _ = g.AddEdge(ids[i], ids[(i+1)%n], "e")
	}

	return g
}

// buildPath constructs a directed path of n nodes (n-1 edges), all
// sharing the cycle's labels, so it embeds as a subgraph of the cycle.
func buildPath(n int) *core.Graph[string, string] {
	g := core.NewGraph[string, string]()
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = g.AddNode("X")
	}
	for i := 0; i < n-1; i++ {
		_, _ = g.AddEdge(ids[i], ids[i+1], "e")
	}

	return g
}

func TestVF2_PathEmbedsInCycle(t *testing.T) {
	pattern := buildPath(3)
	host := buildCycle(5)

	require.True(t, vf2.HasSubgraph(pattern, host, true))

	mappings := vf2.FindMappings(pattern, host, true)
	require.NotEmpty(t, mappings)

	// Every mapping must be injective on nodes and must cover every
	// pattern node and edge.
	for _, m := range mappings {
		require.Len(t, m.NodeMap, pattern.NodeCount())
		require.Len(t, m.EdgeMap, pattern.EdgeCount())
		seen := make(map[string]bool)
		for _, g := range m.NodeMap {
			require.False(t, seen[g], "mapping must be injective")
			seen[g] = true
		}
	}

	// A 5-cycle has exactly 5 rotations that embed a 3-node path.
	require.Len(t, mappings, 5)
}

func TestVF2_PathLongerThanHostNeverMatches(t *testing.T) {
	pattern := buildPath(6)
	host := buildCycle(5)

	require.False(t, vf2.HasSubgraph(pattern, host, true))
	require.Empty(t, vf2.FindMappings(pattern, host, true))
}

func TestVF2_LabelMismatchRejected(t *testing.T) {
	host := buildCycle(4)
	pattern := core.NewGraph[string, string]()
	a := pattern.AddNode("X")
	b := pattern.AddNode("Y") // no host node carries this label
	_, _ = pattern.AddEdge(a, b, "e")

	require.False(t, vf2.HasSubgraph(pattern, host, true))
}

func TestVF2_EdgeLabelMismatchRejectedWhenChecked(t *testing.T) {
	host := core.NewGraph[string, string]()
	ha := host.AddNode("X")
	hb := host.AddNode("X")
	_, _ = host.AddEdge(ha, hb, "wrong-label")

	pattern := core.NewGraph[string, string]()
	pa := pattern.AddNode("X")
	pb := pattern.AddNode("X")
	_, _ = pattern.AddEdge(pa, pb, "expected-label")

	require.False(t, vf2.HasSubgraph(pattern, host, true))
	// With edge labels ignored, only adjacency matters.
	require.True(t, vf2.HasSubgraph(pattern, host, false))
}
