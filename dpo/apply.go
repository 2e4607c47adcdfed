package dpo

import (
	"fmt"

	"github.com/katalvlaran/morphgraph/core"
	"github.com/katalvlaran/morphgraph/morphism"
	"github.com/katalvlaran/morphgraph/rule"
)

// ApplyOnce performs a single DPO rewrite step of ru at match m against
// host. It returns the rewritten graph, a new value distinct from
// host (host is never mutated); the returned bool is false, with a nil
// graph, if the gluing condition fails at m. ru must be well-formed;
// ApplyOnce calls ru.AssertValid and panics otherwise.
func ApplyOnce[N comparable, E comparable](ru *rule.Rule[N, E], host *core.Graph[N, E], m *morphism.Morphism) (*core.Graph[N, E], bool, error) {
	ru.AssertValid()

	if !CheckGluing(host, m, ru) {
		return nil, false, nil
	}

	result := host.Clone()
	deletePart(result, m, ru)
	if err := addPart(result, m, ru); err != nil {
		return nil, false, fmt.Errorf("dpo: applying rule %q: %w", ru.Name, err)
	}

	return result, true, nil
}

// ApplyExhaustive repeatedly matches and rewrites ru against host,
// branching at every match, until no further match exists along a
// given branch. It returns every terminal graph reached this way.
// Distinct derivation branches are not deduplicated — the same
// resulting graph may appear more than once if multiple rewrite
// sequences reach it, matching the exhaustive (not confluence-aware)
// semantics this operation commits to.
//
// ApplyExhaustive is naturally exponential in the number of
// overlapping matches at each step; callers applying it to rules with
// many simultaneous matches should expect the result set to grow
// accordingly.
func ApplyExhaustive[N comparable, E comparable](ru *rule.Rule[N, E], host *core.Graph[N, E], checkEdgeLabels bool) ([]*core.Graph[N, E], error) {
	ru.AssertValid()

	var finals []*core.Graph[N, E]
	if err := applyRecursive(ru, host, checkEdgeLabels, &finals); err != nil {
		return nil, err
	}

	return finals, nil
}

func applyRecursive[N comparable, E comparable](ru *rule.Rule[N, E], current *core.Graph[N, E], checkEdgeLabels bool, finals *[]*core.Graph[N, E]) error {
	matches := FindMatches(ru, current, checkEdgeLabels)
	if len(matches) == 0 {
		*finals = append(*finals, current)

		return nil
	}
	for _, m := range matches {
		next, ok, err := ApplyOnce(ru, current, m)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if err := applyRecursive(ru, next, checkEdgeLabels, finals); err != nil {
			return err
		}
	}

	return nil
}
