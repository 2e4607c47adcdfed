package dpo

import (
	"fmt"

	"github.com/katalvlaran/morphgraph/core"
	"github.com/katalvlaran/morphgraph/morphism"
	"github.com/katalvlaran/morphgraph/rule"
)

// addPart adds, into host, the image of R \ K under the rule's span:
// every R-node not preserved by K2R becomes a fresh host node, and
// every R-edge not preserved by K2R becomes a fresh host edge, with
// endpoints resolved either to a freshly added node (if the endpoint
// is itself new) or to m's image of the corresponding L-node (if the
// endpoint survived from K, traced back through L2K).
//
// Both span morphisms are inverted up front; rule.Validate's
// injectivity check (part of AssertValid, called by the exported entry
// points in apply.go before addPart ever runs) guarantees both
// inversions succeed.
func addPart[N comparable, E comparable](host *core.Graph[N, E], m *morphism.Morphism, ru *rule.Rule[N, E]) error {
	invK2R, err := ru.K2R.Invert()
	if err != nil {
		return fmt.Errorf("dpo: inverting K2R: %w", err)
	}
	invL2K, err := ru.L2K.Invert()
	if err != nil {
		return fmt.Errorf("dpo: inverting L2K: %w", err)
	}

	rNodeToHost := make(map[string]string)
	for _, rNode := range ru.R.Nodes() {
		if _, preserved := invK2R.MapNode(rNode); preserved {
			continue
		}
		label, _ := ru.R.NodeLabel(rNode)
		rNodeToHost[rNode] = host.AddNode(label)
	}

	resolve := func(rNode string) (string, bool) {
		if hNode, ok := rNodeToHost[rNode]; ok {
			return hNode, true
		}
		kNode, ok := invK2R.MapNode(rNode)
		if !ok {
			return "", false
		}
		lNode, ok := invL2K.MapNode(kNode)
		if !ok {
			return "", false
		}

		return m.MapNode(lNode)
	}

	for _, rEdge := range ru.R.Edges() {
		if _, preserved := invK2R.MapEdge(rEdge); preserved {
			continue
		}
		rFrom, rTo, _ := ru.R.EdgeEndpoints(rEdge)
		hFrom, ok := resolve(rFrom)
		if !ok {
			return fmt.Errorf("dpo: cannot resolve source endpoint of new edge %q", rEdge)
		}
		hTo, ok := resolve(rTo)
		if !ok {
			return fmt.Errorf("dpo: cannot resolve target endpoint of new edge %q", rEdge)
		}
		label, _ := ru.R.EdgeLabel(rEdge)
		if _, err := host.AddEdge(hFrom, hTo, label); err != nil {
			return fmt.Errorf("dpo: adding edge for rule %q: %w", ru.Name, err)
		}
	}

	return nil
}
