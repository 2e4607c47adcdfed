package neo4jio_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/morphgraph/neo4jio"
)

func TestLoadGraph_NodesAndRelations(t *testing.T) {
	// Six entries describing a small chain of REFINE relationships;
	// c2..c5 each appear both as a target and as a source, and c2 is
	// also the target of the last relationship, to exercise dedup.
	input := `[
		{"Node": {"name":"c1","text":"t1","id":"c1"}, "Rel": [{}, "REFINE", {}], "Target": {"name":"c2","text":"t2","id":"c2"}},
		{"Node": {"name":"c2","text":"t2","id":"c2"}, "Rel": [{}, "REFINE", {}], "Target": {"name":"c3","text":"t3","id":"c3"}},
		{"Node": {"name":"c3","text":"t3","id":"c3"}, "Rel": [{}, "REFINE", {}], "Target": {"name":"c4","text":"t4","id":"c4"}},
		{"Node": {"name":"c4","text":"t4","id":"c4"}, "Rel": [{}, "REFINE", {}], "Target": {"name":"c5","text":"t5","id":"c5"}},
		{"Node": {"name":"c5","text":"t5","id":"c5"}, "Rel": [{}, "REFINE", {}], "Target": {"name":"c2","text":"t2","id":"c2"}},
		{"Node": {"name":"c6","text":"t6","id":"c6"}}
	]`

	g, err := neo4jio.LoadGraph([]byte(input))
	require.NoError(t, err)

	require.Equal(t, 6, g.NodeCount())
	require.Equal(t, 5, g.EdgeCount())

	for _, eid := range g.Edges() {
		label, ok := g.EdgeLabel(eid)
		require.True(t, ok)
		require.Equal(t, neo4jio.RelationType("REFINE"), label)
	}
}

func TestLoadGraph_InvalidJSON(t *testing.T) {
	_, err := neo4jio.LoadGraph([]byte("not json"))
	require.Error(t, err)

	var nErr *neo4jio.Error
	require.ErrorAs(t, err, &nErr)
	require.Equal(t, neo4jio.InvalidJSON, nErr.Kind)
}

func TestLoadGraph_BadRelationLength(t *testing.T) {
	input := `[{"Node": {"name":"a","text":"","id":"a"}, "Rel": [{}, "REL"], "Target": {"name":"b","text":"","id":"b"}}]`

	_, err := neo4jio.LoadGraph([]byte(input))
	require.Error(t, err)

	var nErr *neo4jio.Error
	require.ErrorAs(t, err, &nErr)
	require.Equal(t, neo4jio.BadRelationLength, nErr.Kind)
}

func TestLoadGraph_BadRelationFormat(t *testing.T) {
	input := `[{"Node": {"name":"a","text":"","id":"a"}, "Rel": [{}, 42, {}], "Target": {"name":"b","text":"","id":"b"}}]`

	_, err := neo4jio.LoadGraph([]byte(input))
	require.Error(t, err)

	var nErr *neo4jio.Error
	require.ErrorAs(t, err, &nErr)
	require.Equal(t, neo4jio.BadRelationFormat, nErr.Kind)
}

func TestLoadGraph_NodeOnlyEntrySkipsEdge(t *testing.T) {
	input := `[{"Node": {"name":"solo","text":"t","id":"solo"}}]`

	g, err := neo4jio.LoadGraph([]byte(input))
	require.NoError(t, err)
	require.Equal(t, 1, g.NodeCount())
	require.Equal(t, 0, g.EdgeCount())
}
