package dpo

import (
	"github.com/katalvlaran/morphgraph/core"
	"github.com/katalvlaran/morphgraph/morphism"
	"github.com/katalvlaran/morphgraph/rule"
)

// CheckGluing reports whether applying ru at match m would leave any
// dangling edge behind: for every L-node that the rule deletes (it has
// no image under L2K), every host edge incident to that node's image
// under m must have its *other* endpoint also be the image of some
// L-node. If some incident edge survives only on the host side with no
// corresponding L-node, deleting the node would orphan that edge, and
// the match is refused.
func CheckGluing[N comparable, E comparable](host *core.Graph[N, E], m *morphism.Morphism, ru *rule.Rule[N, E]) bool {
	for _, lNode := range ru.L.Nodes() {
		if _, preserved := ru.L2K.MapNode(lNode); preserved {
			continue
		}
		hNode, ok := m.MapNode(lNode)
		if !ok {
			continue
		}
		if !everyIncidentEdgeLandsInImage(host, m, ru, hNode) {
			return false
		}
	}

	return true
}

func everyIncidentEdgeLandsInImage[N comparable, E comparable](host *core.Graph[N, E], m *morphism.Morphism, ru *rule.Rule[N, E], hNode string) bool {
	inImage := func(other string) bool {
		for _, lNode := range ru.L.Nodes() {
			if mapped, ok := m.MapNode(lNode); ok && mapped == other {
				return true
			}
		}

		return false
	}

	for _, eid := range host.OutEdges(hNode) {
		_, to, _ := host.EdgeEndpoints(eid)
		if !inImage(to) {
			return false
		}
	}
	for _, eid := range host.InEdges(hNode) {
		from, _, _ := host.EdgeEndpoints(eid)
		if !inImage(from) {
			return false
		}
	}

	return true
}
