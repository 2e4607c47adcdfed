package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/katalvlaran/morphgraph/core"
	"github.com/katalvlaran/morphgraph/morphism"
	"github.com/katalvlaran/morphgraph/neo4jio"
	"github.com/katalvlaran/morphgraph/rule"
)

// ruleEdgeSpec is one right-hand-side edge in a rule file, referencing
// its endpoints by index into the "right" node array.
type ruleEdgeSpec struct {
	From  int    `json:"from"`
	To    int    `json:"to"`
	Label string `json:"label"`
}

// ruleFile is the on-disk JSON shape accepted by the apply/rewrite/
// export-cypher subcommands: L, K, and R given as flat NodeData
// arrays, new R-side edges given by endpoint index, and the two span
// morphisms given as positional index correspondences (l2k[i] = index
// into "interface" that "left" node i maps to, or -1 if deleted; same
// shape for k2r against "right").
type ruleFile struct {
	Name       string              `json:"name"`
	Left       []neo4jio.NodeData  `json:"left"`
	Interface  []neo4jio.NodeData  `json:"interface"`
	Right      []neo4jio.NodeData  `json:"right"`
	RightEdges []ruleEdgeSpec      `json:"right_edges"`
	L2K        []int               `json:"l2k"`
	K2R        []int               `json:"k2r"`
}

// loadRule reads a ruleFile from path and builds a
// rule.Rule[neo4jio.NodeData, neo4jio.RelationType] from it.
func loadRule(path string) (*rule.Rule[neo4jio.NodeData, neo4jio.RelationType], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("morphgraphctl: reading rule file %q: %w", path, err)
	}
	var rf ruleFile
	if err := json.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("morphgraphctl: parsing rule file %q: %w", path, err)
	}

	l := core.NewGraph[neo4jio.NodeData, neo4jio.RelationType]()
	lIDs := make([]string, len(rf.Left))
	for i, nd := range rf.Left {
		lIDs[i] = l.AddNode(nd)
	}

	k := core.NewGraph[neo4jio.NodeData, neo4jio.RelationType]()
	kIDs := make([]string, len(rf.Interface))
	for i, nd := range rf.Interface {
		kIDs[i] = k.AddNode(nd)
	}

	r := core.NewGraph[neo4jio.NodeData, neo4jio.RelationType]()
	rIDs := make([]string, len(rf.Right))
	for i, nd := range rf.Right {
		rIDs[i] = r.AddNode(nd)
	}
	for _, es := range rf.RightEdges {
		if es.From < 0 || es.From >= len(rIDs) || es.To < 0 || es.To >= len(rIDs) {
			return nil, fmt.Errorf("morphgraphctl: right_edges entry references out-of-range node index")
		}
		if _, err := r.AddEdge(rIDs[es.From], rIDs[es.To], neo4jio.RelationType(es.Label)); err != nil {
			return nil, fmt.Errorf("morphgraphctl: building right-hand edge: %w", err)
		}
	}

	l2k := morphism.New()
	for i, target := range rf.L2K {
		if target < 0 {
			continue
		}
		if i >= len(lIDs) || target >= len(kIDs) {
			return nil, fmt.Errorf("morphgraphctl: l2k entry %d out of range", i)
		}
		l2k.InsertNode(lIDs[i], kIDs[target])
	}

	k2r := morphism.New()
	for i, target := range rf.K2R {
		if target < 0 {
			continue
		}
		if i >= len(kIDs) || target >= len(rIDs) {
			return nil, fmt.Errorf("morphgraphctl: k2r entry %d out of range", i)
		}
		k2r.InsertNode(kIDs[i], rIDs[target])
	}

	return rule.New(rf.Name, l, k, r, l2k, k2r), nil
}
