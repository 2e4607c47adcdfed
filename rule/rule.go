package rule

import (
	"fmt"

	"github.com/katalvlaran/morphgraph/core"
	"github.com/katalvlaran/morphgraph/morphism"
)

// Rule is a DPO rewrite rule: the span L <- K -> R, represented as two
// forward morphisms L2K (L -> K) and K2R (K -> R) so that the
// interface K is reconstructed on both sides by walking forward from
// L and forward from K. Package dpo's delete step reads L2K forward
// from a match against L; its add step inverts K2R and L2K to trace a
// surviving R-node back through K to its L-preimage.
type Rule[N comparable, E comparable] struct {
	Name string
	L    *core.Graph[N, E]
	K    *core.Graph[N, E]
	R    *core.Graph[N, E]
	L2K  *morphism.Morphism
	K2R  *morphism.Morphism
}

// New constructs a Rule from its five components without validating
// them; call Validate or AssertValid before handing the rule to
// package dpo.
func New[N comparable, E comparable](name string, l, k, r *core.Graph[N, E], l2k, k2r *morphism.Morphism) *Rule[N, E] {
	return &Rule[N, E]{Name: name, L: l, K: k, R: r, L2K: l2k, K2R: k2r}
}

// Validate checks the well-formedness conditions of a linear DPO
// rule:
//
//  1. Every node/edge in L2K's domain exists in L, and every image
//     exists in K (no dangling references).
//  2. L2K's edge mappings are consistent with its node mappings: if an
//     L-edge maps to a K-edge, their endpoints must map correspondingly.
//  3. The same two conditions for K2R, mapping K into R.
//  4. Both L2K and K2R are injective (required for the rule to be
//     "linear": no two distinct L-elements collapse onto one K-element,
//     and likewise for K into R).
//  5. K2R maps every node and edge of K (the interface survives into R
//     in full).
//
// Validate never panics; it returns the first violated condition as an
// error satisfying errors.Is against one of this package's sentinels.
func (ru *Rule[N, E]) Validate() error {
	if err := checkForwardMorphism(ru.L, ru.K, ru.L2K); err != nil {
		return err
	}
	if err := checkForwardMorphism(ru.K, ru.R, ru.K2R); err != nil {
		return err
	}
	if err := checkCoversDomain(ru.K, ru.K2R); err != nil {
		return err
	}
	if err := checkInjective(ru.L2K); err != nil {
		return err
	}
	if err := checkInjective(ru.K2R); err != nil {
		return err
	}

	return nil
}

// AssertValid calls Validate and panics if it returns an error. Use
// this only at the boundary where an ill-formed rule must be treated
// as a programmer error rather than recoverable input (package dpo's
// match-and-rewrite entry points and cypher.Export call this before
// operating on a rule).
func (ru *Rule[N, E]) AssertValid() {
	if err := ru.Validate(); err != nil {
		panic(fmt.Sprintf("rule %q is ill-formed: %v", ru.Name, err))
	}
}

// checkForwardMorphism validates m as a morphism from src to dst:
// every domain node/edge exists in src, every image exists in dst,
// and edge mappings respect endpoint mapping.
func checkForwardMorphism[N comparable, E comparable](src, dst *core.Graph[N, E], m *morphism.Morphism) error {
	for lNode, kNode := range m.NodeMap {
		if !src.HasNode(lNode) {
			return fmt.Errorf("%w: node %q not in source graph", ErrDanglingReference, lNode)
		}
		if !dst.HasNode(kNode) {
			return fmt.Errorf("%w: node %q not in target graph", ErrDanglingReference, kNode)
		}
	}
	for lEdge, kEdge := range m.EdgeMap {
		lFrom, lTo, ok := src.EdgeEndpoints(lEdge)
		if !ok {
			return fmt.Errorf("%w: edge %q not in source graph", ErrDanglingReference, lEdge)
		}
		kFrom, kTo, ok := dst.EdgeEndpoints(kEdge)
		if !ok {
			return fmt.Errorf("%w: edge %q not in target graph", ErrDanglingReference, kEdge)
		}
		mappedFrom, ok := m.MapNode(lFrom)
		if !ok || mappedFrom != kFrom {
			return fmt.Errorf("%w: edge %q source", ErrEdgeEndpointMismatch, lEdge)
		}
		mappedTo, ok := m.MapNode(lTo)
		if !ok || mappedTo != kTo {
			return fmt.Errorf("%w: edge %q target", ErrEdgeEndpointMismatch, lEdge)
		}
	}

	return nil
}

// checkCoversDomain reports whether m maps every node and edge of k:
// the interface graph must survive into R in full, so K2R's domain
// must be all of K, not a subset.
func checkCoversDomain[N comparable, E comparable](k *core.Graph[N, E], m *morphism.Morphism) error {
	for _, id := range k.Nodes() {
		if _, ok := m.MapNode(id); !ok {
			return fmt.Errorf("%w: interface node %q has no image", ErrIncompleteDomain, id)
		}
	}
	for _, id := range k.Edges() {
		if _, ok := m.MapEdge(id); !ok {
			return fmt.Errorf("%w: interface edge %q has no image", ErrIncompleteDomain, id)
		}
	}

	return nil
}

// checkInjective reports whether m's node map and edge map are each
// injective (no two distinct sources share a target).
func checkInjective(m *morphism.Morphism) error {
	seenNodes := make(map[string]string, len(m.NodeMap))
	for src, dst := range m.NodeMap {
		if prior, ok := seenNodes[dst]; ok && prior != src {
			return fmt.Errorf("%w: nodes %q and %q both map to %q", ErrNotInjective, prior, src, dst)
		}
		seenNodes[dst] = src
	}
	seenEdges := make(map[string]string, len(m.EdgeMap))
	for src, dst := range m.EdgeMap {
		if prior, ok := seenEdges[dst]; ok && prior != src {
			return fmt.Errorf("%w: edges %q and %q both map to %q", ErrNotInjective, prior, src, dst)
		}
		seenEdges[dst] = src
	}

	return nil
}
