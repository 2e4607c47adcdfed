package morphgraph

import (
	"github.com/katalvlaran/morphgraph/core"
	"github.com/katalvlaran/morphgraph/morphism"
	"github.com/katalvlaran/morphgraph/vf2"
)

// MatchOptions controls subgraph matching. The zero value matches
// neither of the spec's defaults (Go cannot default a bool field to
// true); callers that want the documented default of "find every
// match, checking edge labels" should start from DefaultMatchOptions
// rather than an empty literal.
type MatchOptions struct {
	// FindAll returns every embedding when true, or only the first one
	// the search discovers when false.
	FindAll bool
	// CheckEdgeLabels requires matched edges to carry equal labels, not
	// just exist.
	CheckEdgeLabels bool
}

// DefaultMatchOptions returns {FindAll: true, CheckEdgeLabels: true},
// the matching entry point's documented default.
func DefaultMatchOptions() MatchOptions {
	return MatchOptions{FindAll: true, CheckEdgeLabels: true}
}

// MatchSubgraphs returns every embedding of pattern into host under
// opts, or just the first one (as a single-element slice) when
// opts.FindAll is false, short-circuiting the search the same way
// HasSubgraph does rather than discarding extra work after the fact.
func MatchSubgraphs[N comparable, E comparable](pattern, host *core.Graph[N, E], opts MatchOptions) []*morphism.Morphism {
	if !opts.FindAll {
		m, ok := vf2.FindFirstMapping(pattern, host, opts.CheckEdgeLabels)
		if !ok {
			return nil
		}

		return []*morphism.Morphism{m}
	}

	return vf2.FindMappings(pattern, host, opts.CheckEdgeLabels)
}

// HasSubgraph reports whether at least one embedding of pattern into
// host exists under opts.
func HasSubgraph[N comparable, E comparable](pattern, host *core.Graph[N, E], opts MatchOptions) bool {
	return vf2.HasSubgraph(pattern, host, opts.CheckEdgeLabels)
}
