package dpo

import (
	"github.com/katalvlaran/morphgraph/core"
	"github.com/katalvlaran/morphgraph/morphism"
	"github.com/katalvlaran/morphgraph/rule"
)

// deletePart removes, from host, the image of L \ K under m: every
// L-edge not preserved by L2K, then every L-node not preserved by
// L2K (and whatever incident edges cascade with it).
//
// Membership in L \ K is decided directly against ru.L2K's forward
// domain (is this L-element a key of L2K?), not by inverting L2K and
// probing it with an L-identifier. The two are equivalent in exact
// arithmetic, but only the forward check is well-typed: L2K's domain
// is L and its codomain is K, so its inverse's domain is K, and
// probing an inverted map with an L-identifier only "works" by
// coincidence of identifier spaces overlapping — not something this
// implementation relies on.
//
// Which host edge stands for a deleted L-edge is re-derived from the
// matched endpoints rather than taken as m's already-fixed edge image:
// when the host has parallel edges between those endpoints, the one
// carrying the same label as lEdge is preferred over whichever parallel
// edge the matcher's insertion-order tie-break happened to record.
func deletePart[N comparable, E comparable](host *core.Graph[N, E], m *morphism.Morphism, ru *rule.Rule[N, E]) {
	for _, lEdge := range ru.L.Edges() {
		if _, preserved := ru.L2K.MapEdge(lEdge); preserved {
			continue
		}
		lFrom, lTo, ok := ru.L.EdgeEndpoints(lEdge)
		if !ok {
			continue
		}
		hFrom, ok := m.MapNode(lFrom)
		if !ok {
			continue
		}
		hTo, ok := m.MapNode(lTo)
		if !ok {
			continue
		}
		hEdge, ok := selectEdgeToDelete(host, ru.L, lEdge, hFrom, hTo)
		if !ok {
			continue
		}
		_ = host.RemoveEdge(hEdge)
	}

	for _, lNode := range ru.L.Nodes() {
		if _, preserved := ru.L2K.MapNode(lNode); preserved {
			continue
		}
		hNode, ok := m.MapNode(lNode)
		if !ok {
			continue
		}
		_ = host.RemoveNode(hNode)
	}
}

// selectEdgeToDelete picks, among the host edges running hFrom -> hTo,
// the one whose label equals lEdge's own label in l; if none matches
// (or lEdge carries no findable label), it falls back to the first
// such edge in insertion order. Returns false if no edge runs between
// hFrom and hTo at all.
func selectEdgeToDelete[N comparable, E comparable](host *core.Graph[N, E], l *core.Graph[N, E], lEdge, hFrom, hTo string) (string, bool) {
	candidates := host.EdgesBetween(hFrom, hTo)
	if len(candidates) == 0 {
		return "", false
	}
	wantLabel, ok := l.EdgeLabel(lEdge)
	if !ok {
		return candidates[0], true
	}
	for _, hEdge := range candidates {
		if hLabel, ok := host.EdgeLabel(hEdge); ok && hLabel == wantLabel {
			return hEdge, true
		}
	}

	return candidates[0], true
}
