package rule

import "errors"

// ErrNotInjective indicates L2K or K2R maps two distinct source
// identifiers onto the same target, violating the "linear rule"
// assumption this package requires.
var ErrNotInjective = errors.New("rule: span morphism is not injective")

// ErrDanglingReference indicates a span morphism's domain contains an
// identifier absent from its source graph, or maps to an identifier
// absent from its target graph.
var ErrDanglingReference = errors.New("rule: span morphism references a node or edge outside its graph")

// ErrIncompleteDomain indicates K2R does not map every node and edge
// of K: each interface element must have an image in R. Whether every
// element of K is the image of some L-element under L2K is not checked.
var ErrIncompleteDomain = errors.New("rule: span morphism domain does not cover K")

// ErrEdgeEndpointMismatch indicates an edge mapping's endpoints are
// inconsistent with the paired node mapping: if L2K maps edge e to
// edge e', then L2K must map e's endpoints to e''s endpoints.
var ErrEdgeEndpointMismatch = errors.New("rule: edge mapping endpoints disagree with node mapping")
