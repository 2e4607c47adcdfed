// Package morphism defines the partial injective node/edge maps used
// to carry a pattern into a host graph (a match) and to wire the spans
// of a DPO rule (L2K, K2R).
//
// A Morphism never inspects the graphs its IDs come from: it is a pair
// of plain string-to-string maps, consistent with the data model's
// choice to reference nodes and edges only by opaque identifier, never
// by pointer (see the graph-ownership design note this package
// implements). Consistency between NodeMap and EdgeMap — e.g. that an
// edge mapping's endpoints agree with the node mapping — is a
// rule-level invariant checked by package rule, not by Morphism
// itself.
package morphism

import (
	"errors"
	"sort"
)

// ErrNotInjective is returned by Invert when the morphism being
// inverted maps two distinct source identifiers to the same target,
// so no sound inverse exists. The specification's design notes flag
// this exact case as underspecified in the source material; this
// implementation takes the "reject at invert time" branch rather than
// silently keeping whichever write happened to land last.
var ErrNotInjective = errors.New("morphism: map is not injective, cannot invert")

// Morphism is a pair of partial injective maps: NodeMap carries node
// identifiers, EdgeMap carries edge identifiers. Both are exported for
// direct inspection by callers (package dpo and package cypher read
// them extensively); mutate only through Insert* to keep determinism
// of iteration (callers that need deterministic output should sort
// keys themselves, e.g. via NodeDomain/EdgeDomain).
type Morphism struct {
	NodeMap map[string]string
	EdgeMap map[string]string
}

// New returns an empty Morphism.
func New() *Morphism {
	return &Morphism{
		NodeMap: make(map[string]string),
		EdgeMap: make(map[string]string),
	}
}

// InsertNode records src -> dst in the node map.
func (m *Morphism) InsertNode(src, dst string) { m.NodeMap[src] = dst }

// InsertEdge records src -> dst in the edge map.
func (m *Morphism) InsertEdge(src, dst string) { m.EdgeMap[src] = dst }

// MapNode looks up the image of src, if any.
func (m *Morphism) MapNode(src string) (string, bool) {
	dst, ok := m.NodeMap[src]

	return dst, ok
}

// MapEdge looks up the image of src, if any.
func (m *Morphism) MapEdge(src string) (string, bool) {
	dst, ok := m.EdgeMap[src]

	return dst, ok
}

// NodeDomain returns the node-map keys in sorted order, for callers
// that need a deterministic traversal of a Morphism's domain.
func (m *Morphism) NodeDomain() []string { return sortedKeys(m.NodeMap) }

// EdgeDomain returns the edge-map keys in sorted order.
func (m *Morphism) EdgeDomain() []string { return sortedKeys(m.EdgeMap) }

// Compose returns (m ∘ other): for x in other's domain,
// (m∘other)(x) = m(other(x)), defined only where both legs are
// defined. Complexity: O(|other.NodeMap| + |other.EdgeMap|).
func (m *Morphism) Compose(other *Morphism) *Morphism {
	out := New()
	for src, mid := range other.NodeMap {
		if dst, ok := m.NodeMap[mid]; ok {
			out.NodeMap[src] = dst
		}
	}
	for src, mid := range other.EdgeMap {
		if dst, ok := m.EdgeMap[mid]; ok {
			out.EdgeMap[src] = dst
		}
	}

	return out
}

// Invert swaps source and target in both maps. It returns
// ErrNotInjective if either map sends two distinct sources to the same
// target, since no single-valued inverse would exist in that case.
//
// Complexity: O(|NodeMap| + |EdgeMap|).
func (m *Morphism) Invert() (*Morphism, error) {
	out := New()
	for src, dst := range m.NodeMap {
		if _, exists := out.NodeMap[dst]; exists {
			return nil, ErrNotInjective
		}
		out.NodeMap[dst] = src
	}
	for src, dst := range m.EdgeMap {
		if _, exists := out.EdgeMap[dst]; exists {
			return nil, ErrNotInjective
		}
		out.EdgeMap[dst] = src
	}

	return out, nil
}

func sortedKeys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
