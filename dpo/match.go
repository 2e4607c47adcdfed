package dpo

import (
	"github.com/katalvlaran/morphgraph/core"
	"github.com/katalvlaran/morphgraph/morphism"
	"github.com/katalvlaran/morphgraph/rule"
	"github.com/katalvlaran/morphgraph/vf2"
)

// FindMatches returns every match morphism of ru.L into host. It calls
// ru.AssertValid first, since an ill-formed rule is a programmer
// error no amount of matching can recover from.
func FindMatches[N comparable, E comparable](ru *rule.Rule[N, E], host *core.Graph[N, E], checkEdgeLabels bool) []*morphism.Morphism {
	ru.AssertValid()

	return vf2.FindMappings(ru.L, host, checkEdgeLabels)
}
