package cypher

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/morphgraph/rule"
)

// DisplayLabel is the constraint a rule's node/edge label type must
// satisfy to be exported: comparable (as every label in this module
// is) plus renderable to a Cypher property value via String().
type DisplayLabel interface {
	comparable
	fmt.Stringer
}

// varTable assigns deterministic Cypher variable names to a rule's
// elements: "n<i>" for every L node in insertion order, "r<j>" for
// every L edge in insertion order, and "m<k>" for every R node not
// preserved from K, also in insertion order.
type varTable struct {
	lNode map[string]string
	lEdge map[string]string
	rNode map[string]string // only R nodes absent from K2R's image
}

func buildVarTable[N DisplayLabel, E DisplayLabel](ru *rule.Rule[N, E]) (*varTable, error) {
	vt := &varTable{
		lNode: make(map[string]string),
		lEdge: make(map[string]string),
		rNode: make(map[string]string),
	}
	for i, id := range ru.L.Nodes() {
		vt.lNode[id] = fmt.Sprintf("n%d", i)
	}
	for j, id := range ru.L.Edges() {
		vt.lEdge[id] = fmt.Sprintf("r%d", j)
	}

	invK2R, err := ru.K2R.Invert()
	if err != nil {
		return nil, fmt.Errorf("cypher: inverting K2R: %w", err)
	}
	k := 0
	for _, id := range ru.R.Nodes() {
		if _, preserved := invK2R.MapNode(id); preserved {
			continue
		}
		vt.rNode[id] = fmt.Sprintf("m%d", k)
		k++
	}

	return vt, nil
}

// Export renders ru as a single Cypher statement. ru must be
// well-formed; Export calls ru.AssertValid and panics otherwise, since
// an ill-formed rule is a programmer error, as in package dpo.
func Export[N DisplayLabel, E DisplayLabel](ru *rule.Rule[N, E]) (string, error) {
	ru.AssertValid()

	vt, err := buildVarTable(ru)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	matchVars := writeMatch(&b, ru, vt)
	fmt.Fprintf(&b, "WITH %s\n", strings.Join(matchVars, ", "))
	if err := writeDelete(&b, ru, vt); err != nil {
		return "", err
	}
	if err := writeMergeAndCreate(&b, ru, vt); err != nil {
		return "", err
	}

	return b.String(), nil
}

// ExportToFile renders ru and writes it to path, truncating any
// existing file.
func ExportToFile[N DisplayLabel, E DisplayLabel](ru *rule.Rule[N, E], path string) error {
	cy, err := Export(ru)
	if err != nil {
		return err
	}

	return os.WriteFile(path, []byte(cy), 0o644)
}

// writeMatch emits a single MATCH clause with one comma-separated
// pattern per L edge (binding both endpoints and the relationship) and
// per edge-free L node, declaring each variable's property filter only
// the first time it appears. It returns every variable bound this way,
// in a stable order (nodes first by index, then edges by index) for
// the WITH clause.
func writeMatch[N DisplayLabel, E DisplayLabel](b *strings.Builder, ru *rule.Rule[N, E], vt *varTable) []string {
	declared := make(map[string]bool)
	nodeRef := func(id string) string {
		v := vt.lNode[id]
		if declared[v] {
			return fmt.Sprintf("(%s)", v)
		}
		declared[v] = true
		label, _ := ru.L.NodeLabel(id)

		return fmt.Sprintf("(%s {label: %q})", v, label.String())
	}

	var patterns []string
	touched := make(map[string]bool)
	for _, eid := range ru.L.Edges() {
		from, to, _ := ru.L.EdgeEndpoints(eid)
		label, _ := ru.L.EdgeLabel(eid)
		rVar := vt.lEdge[eid]
		patterns = append(patterns, fmt.Sprintf("%s-[%s:%s]->%s", nodeRef(from), rVar, sanitizeRelType(label.String()), nodeRef(to)))
		touched[from] = true
		touched[to] = true
	}
	for _, id := range ru.L.Nodes() {
		if touched[id] {
			continue
		}
		patterns = append(patterns, nodeRef(id))
	}
	fmt.Fprintf(b, "MATCH %s\n", strings.Join(patterns, ", "))

	var vars []string
	for _, id := range ru.L.Nodes() {
		vars = append(vars, vt.lNode[id])
	}
	for _, id := range ru.L.Edges() {
		vars = append(vars, vt.lEdge[id])
	}

	return vars
}

// writeDelete emits DELETE for L-edges removed by the rule whose
// endpoints both survive, and DETACH DELETE for L-nodes removed by the
// rule (which also disposes of any incident edge, whether or not that
// edge was separately listed).
func writeDelete[N comparable, E comparable](b *strings.Builder, ru *rule.Rule[N, E], vt *varTable) error {
	deletedNode := make(map[string]bool)
	var deletedNodeVars []string
	for _, id := range ru.L.Nodes() {
		if _, preserved := ru.L2K.MapNode(id); preserved {
			continue
		}
		deletedNode[id] = true
		deletedNodeVars = append(deletedNodeVars, vt.lNode[id])
	}

	var deletedEdgeVars []string
	for _, id := range ru.L.Edges() {
		if _, preserved := ru.L2K.MapEdge(id); preserved {
			continue
		}
		from, to, _ := ru.L.EdgeEndpoints(id)
		if deletedNode[from] || deletedNode[to] {
			continue
		}
		deletedEdgeVars = append(deletedEdgeVars, vt.lEdge[id])
	}

	if len(deletedEdgeVars) > 0 {
		fmt.Fprintf(b, "DELETE %s\n", strings.Join(deletedEdgeVars, ", "))
	}
	if len(deletedNodeVars) > 0 {
		fmt.Fprintf(b, "DETACH DELETE %s\n", strings.Join(deletedNodeVars, ", "))
	}

	return nil
}

// writeMergeAndCreate emits one MERGE per brand-new R node (R \ K),
// then a single CREATE listing every brand-new R edge (R \ K),
// resolving each endpoint to either an existing match variable (if it
// survived from K) or a merged variable (if it is itself new).
func writeMergeAndCreate[N DisplayLabel, E DisplayLabel](b *strings.Builder, ru *rule.Rule[N, E], vt *varTable) error {
	invK2R, err := ru.K2R.Invert()
	if err != nil {
		return fmt.Errorf("cypher: inverting K2R: %w", err)
	}
	invL2K, err := ru.L2K.Invert()
	if err != nil {
		return fmt.Errorf("cypher: inverting L2K: %w", err)
	}

	for _, id := range ru.R.Nodes() {
		mVar, isNew := vt.rNode[id]
		if !isNew {
			continue
		}
		label, _ := ru.R.NodeLabel(id)
		fmt.Fprintf(b, "MERGE (%s {label: %q})\n", mVar, label.String())
	}

	resolve := func(rNode string) (string, bool) {
		if mVar, ok := vt.rNode[rNode]; ok {
			return mVar, true
		}
		kNode, ok := invK2R.MapNode(rNode)
		if !ok {
			return "", false
		}
		lNode, ok := invL2K.MapNode(kNode)
		if !ok {
			return "", false
		}

		return vt.lNode[lNode], true
	}

	var relLines []string
	for _, id := range ru.R.Edges() {
		if _, preserved := invK2R.MapEdge(id); preserved {
			continue
		}
		from, to, _ := ru.R.EdgeEndpoints(id)
		label, _ := ru.R.EdgeLabel(id)
		uVar, ok := resolve(from)
		if !ok {
			return fmt.Errorf("cypher: cannot resolve source endpoint for new edge %q", id)
		}
		vVar, ok := resolve(to)
		if !ok {
			return fmt.Errorf("cypher: cannot resolve target endpoint for new edge %q", id)
		}
		relLines = append(relLines, fmt.Sprintf("(%s)-[:%s]->(%s)", uVar, sanitizeRelType(label.String()), vVar))
	}
	if len(relLines) > 0 {
		fmt.Fprintf(b, "CREATE %s\n", strings.Join(relLines, ", "))
	}

	return nil
}

// sanitizeRelType upper-snakes a label for use as a Cypher
// relationship type token, since relationship types are identifiers,
// not quoted strings.
func sanitizeRelType(s string) string {
	s = strings.ToUpper(s)
	s = strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return '_'
		}

		return r
	}, s)

	return s
}
