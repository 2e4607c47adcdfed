package morphgraph

import (
	"github.com/katalvlaran/morphgraph/core"
	"github.com/katalvlaran/morphgraph/dpo"
	"github.com/katalvlaran/morphgraph/rule"
)

// Rewriter is anything that can attempt one rewrite step against a
// host graph. RuleRewriter is the only implementation this package
// provides; it exists so ApplyRules can thread a mixed sequence of
// rules (each with its own matching options) through a single loop.
type Rewriter[N comparable, E comparable] interface {
	Apply(host *core.Graph[N, E]) (*core.Graph[N, E], bool, error)
}

// RuleRewriter adapts a single rule.Rule plus MatchOptions into a
// Rewriter: Apply finds every match and applies the rule at the first
// one whose gluing condition holds.
type RuleRewriter[N comparable, E comparable] struct {
	Rule *rule.Rule[N, E]
	Opts MatchOptions
}

// Apply implements Rewriter.
func (rr RuleRewriter[N, E]) Apply(host *core.Graph[N, E]) (*core.Graph[N, E], bool, error) {
	return ApplyRule(rr.Rule, host, rr.Opts)
}

// ApplyRule finds every match of ru.L in host and applies ru at the
// first match whose gluing condition holds. It returns (host, false,
// nil) if ru has no match, or if every match fails gluing.
func ApplyRule[N comparable, E comparable](ru *rule.Rule[N, E], host *core.Graph[N, E], opts MatchOptions) (*core.Graph[N, E], bool, error) {
	matches := dpo.FindMatches(ru, host, opts.CheckEdgeLabels)
	for _, m := range matches {
		next, ok, err := dpo.ApplyOnce(ru, host, m)
		if err != nil {
			return nil, false, err
		}
		if ok {
			return next, true, nil
		}
	}

	return host, false, nil
}

// ApplyRules threads host through rewriters in order: each is given
// the graph produced by the previous one (or the original host, for
// the first), and is applied at most once. A rewriter with no
// applicable match is simply skipped, leaving the graph unchanged for
// the next step. ApplyRules returns the final graph and the number of
// rewriters that actually applied.
func ApplyRules[N comparable, E comparable](rewriters []Rewriter[N, E], host *core.Graph[N, E]) (*core.Graph[N, E], int, error) {
	current := host
	applied := 0
	for _, rw := range rewriters {
		next, ok, err := rw.Apply(current)
		if err != nil {
			return nil, applied, err
		}
		if ok {
			current = next
			applied++
		}
	}

	return current, applied, nil
}

// ApplyExhaustive applies ru to host repeatedly, branching at every
// match, until no branch has a further match. See dpo.ApplyExhaustive
// for the exact semantics (no deduplication across branches).
func ApplyExhaustive[N comparable, E comparable](ru *rule.Rule[N, E], host *core.Graph[N, E], opts MatchOptions) ([]*core.Graph[N, E], error) {
	return dpo.ApplyExhaustive(ru, host, opts.CheckEdgeLabels)
}
