package vf2

import (
	"github.com/katalvlaran/morphgraph/core"
	"github.com/katalvlaran/morphgraph/morphism"
)

// searchState carries the mutable bits threaded through the
// backtracking recursion: the partial node assignment (both
// directions, so feasibility checks and candidate generation are O(1)
// lookups) and the accumulated results.
type searchState[N comparable, E comparable] struct {
	pattern         *core.Graph[N, E]
	host            *core.Graph[N, E]
	checkEdgeLabels bool
	firstOnly       bool // stop and keep only the first complete mapping
	stop            bool
	forward         map[string]string // pattern node -> host node
	backward        map[string]string // host node -> pattern node
	results         []*morphism.Morphism
}

// FindMappings returns every subgraph isomorphism from pattern into
// host, in the order the depth-first search discovers them (which
// follows pattern.Nodes() / host.Nodes() insertion order at each
// branching point, making it deterministic run to run).
//
// Each returned Morphism's NodeMap and EdgeMap are total over pattern:
// every pattern node and every pattern edge has an image in host.
// checkEdgeLabels controls whether matched edges must also carry equal
// labels; when false, only adjacency (an edge must exist, any label)
// is required.
//
// Complexity: worst case O(|V(pattern)|! * |V(host)|) as with any
// unpruned backtracking search; practical cost depends heavily on
// label selectivity.
func FindMappings[N comparable, E comparable](pattern, host *core.Graph[N, E], checkEdgeLabels bool) []*morphism.Morphism {
	st := &searchState[N, E]{
		pattern:         pattern,
		host:            host,
		checkEdgeLabels: checkEdgeLabels,
		forward:         make(map[string]string),
		backward:        make(map[string]string),
	}
	st.search()

	return st.results
}

// FindFirstMapping returns the first embedding of pattern into host
// discovered by the search, short-circuiting the same way HasSubgraph
// does, and false if no embedding exists.
func FindFirstMapping[N comparable, E comparable](pattern, host *core.Graph[N, E], checkEdgeLabels bool) (*morphism.Morphism, bool) {
	st := &searchState[N, E]{
		pattern:         pattern,
		host:            host,
		checkEdgeLabels: checkEdgeLabels,
		firstOnly:       true,
		forward:         make(map[string]string),
		backward:        make(map[string]string),
	}
	st.search()
	if len(st.results) == 0 {
		return nil, false
	}

	return st.results[0], true
}

// HasSubgraph reports whether at least one embedding of pattern into
// host exists, short-circuiting on the first match found.
func HasSubgraph[N comparable, E comparable](pattern, host *core.Graph[N, E], checkEdgeLabels bool) bool {
	st := &searchState[N, E]{
		pattern:         pattern,
		host:            host,
		checkEdgeLabels: checkEdgeLabels,
		forward:         make(map[string]string),
		backward:        make(map[string]string),
	}

	return st.searchFirst()
}

func (st *searchState[N, E]) search() {
	if st.stop {
		return
	}
	if len(st.forward) == st.pattern.NodeCount() {
		st.results = append(st.results, st.buildMorphism())
		if st.firstOnly {
			st.stop = true
		}

		return
	}
	for _, pair := range st.candidates() {
		p, g := pair[0], pair[1]
		if st.feasible(p, g) {
			st.assign(p, g)
			st.search()
			st.unassign(p, g)
			if st.stop {
				return
			}
		}
	}
}

// searchFirst is identical to search but stops at the first complete
// mapping, for HasSubgraph's existence-only contract.
func (st *searchState[N, E]) searchFirst() bool {
	if len(st.forward) == st.pattern.NodeCount() {
		return true
	}
	for _, pair := range st.candidates() {
		p, g := pair[0], pair[1]
		if st.feasible(p, g) {
			st.assign(p, g)
			if st.searchFirst() {
				st.unassign(p, g)

				return true
			}
			st.unassign(p, g)
		}
	}

	return false
}

// candidates yields (pattern node, host node) pairs: the first
// unmapped pattern node (in insertion order) paired with every
// unmapped host node (in insertion order). Once all pattern nodes are
// mapped there is nothing left to branch on.
func (st *searchState[N, E]) candidates() [][2]string {
	var firstUnmapped string
	found := false
	for _, p := range st.pattern.Nodes() {
		if _, ok := st.forward[p]; !ok {
			firstUnmapped = p
			found = true

			break
		}
	}
	if !found {
		return nil
	}

	var out [][2]string
	for _, g := range st.host.Nodes() {
		if _, ok := st.backward[g]; !ok {
			out = append(out, [2]string{firstUnmapped, g})
		}
	}

	return out
}

func (st *searchState[N, E]) assign(p, g string) {
	st.forward[p] = g
	st.backward[g] = p
}

func (st *searchState[N, E]) unassign(p, g string) {
	delete(st.forward, p)
	delete(st.backward, g)
}

// feasible checks node-label equality for (p, g) plus, for every
// pattern neighbor of p already assigned in the current partial
// mapping, that the corresponding host edge exists (and matches label,
// if checkEdgeLabels is set) in the same direction.
func (st *searchState[N, E]) feasible(p, g string) bool {
	pLabel, _ := st.pattern.NodeLabel(p)
	gLabel, _ := st.host.NodeLabel(g)
	if pLabel != gLabel {
		return false
	}

	for _, pOutNeighbor := range st.pattern.Neighbors(p, core.Out) {
		gNeighbor, ok := st.forward[pOutNeighbor]
		if !ok {
			continue
		}
		if !st.edgeFeasible(p, pOutNeighbor, g, gNeighbor) {
			return false
		}
	}
	for _, pInNeighbor := range st.pattern.Neighbors(p, core.In) {
		gNeighbor, ok := st.forward[pInNeighbor]
		if !ok {
			continue
		}
		if !st.edgeFeasible(pInNeighbor, p, gNeighbor, g) {
			return false
		}
	}

	return true
}

// edgeFeasible checks that a host edge exists from gFrom to gTo
// matching the pattern edge from pFrom to pTo, respecting
// checkEdgeLabels: among parallel host edges, any one carrying the
// pattern edge's label suffices.
func (st *searchState[N, E]) edgeFeasible(pFrom, pTo, gFrom, gTo string) bool {
	pEdge, ok := st.pattern.FindEdge(pFrom, pTo)
	if !ok {
		return true
	}
	gEdges := st.host.EdgesBetween(gFrom, gTo)
	if len(gEdges) == 0 {
		return false
	}
	if !st.checkEdgeLabels {
		return true
	}
	pLabel, _ := st.pattern.EdgeLabel(pEdge)
	for _, gEdge := range gEdges {
		if gLabel, _ := st.host.EdgeLabel(gEdge); gLabel == pLabel {
			return true
		}
	}

	return false
}

// buildMorphism turns a complete node assignment into a Morphism whose
// EdgeMap is derived by resolving, for every pattern edge, the host
// edge between the images of its endpoints.
func (st *searchState[N, E]) buildMorphism() *morphism.Morphism {
	m := morphism.New()
	for p, g := range st.forward {
		m.InsertNode(p, g)
	}
	for _, pEdge := range st.pattern.Edges() {
		pFrom, pTo, _ := st.pattern.EdgeEndpoints(pEdge)
		gFrom := st.forward[pFrom]
		gTo := st.forward[pTo]
		if gEdge, ok := st.host.FindEdge(gFrom, gTo); ok {
			m.InsertEdge(pEdge, gEdge)
		}
	}

	return m
}
