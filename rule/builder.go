package rule

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/morphgraph/core"
	"github.com/katalvlaran/morphgraph/morphism"
)

// Builder assembles a Rule step by step. It follows the same
// panic-on-misuse contract as the teacher's functional-option
// builders: Builder methods never return an error, because a missing
// or nil argument to a rule builder is a programmer mistake, not
// recoverable input; the resulting Rule's own Validate/AssertValid are
// the recoverable-input boundary.
type Builder[N comparable, E comparable] struct {
	name string
	l    *core.Graph[N, E]
	k    *core.Graph[N, E]
	r    *core.Graph[N, E]
	l2k  *morphism.Morphism
	k2r  *morphism.Morphism
}

// NewBuilder starts a Builder with an auto-generated name; call Named
// to override it.
func NewBuilder[N comparable, E comparable]() *Builder[N, E] {
	return &Builder[N, E]{name: "rule-" + uuid.NewString()}
}

// Named sets the rule's name.
func (b *Builder[N, E]) Named(name string) *Builder[N, E] {
	if name == "" {
		panic("rule: Builder.Named(\"\")")
	}
	b.name = name

	return b
}

// WithLeft sets the left-hand pattern graph L.
func (b *Builder[N, E]) WithLeft(l *core.Graph[N, E]) *Builder[N, E] {
	if l == nil {
		panic("rule: Builder.WithLeft(nil)")
	}
	b.l = l

	return b
}

// WithInterface sets the interface graph K.
func (b *Builder[N, E]) WithInterface(k *core.Graph[N, E]) *Builder[N, E] {
	if k == nil {
		panic("rule: Builder.WithInterface(nil)")
	}
	b.k = k

	return b
}

// WithRight sets the right-hand replacement graph R.
func (b *Builder[N, E]) WithRight(r *core.Graph[N, E]) *Builder[N, E] {
	if r == nil {
		panic("rule: Builder.WithRight(nil)")
	}
	b.r = r

	return b
}

// WithL2K sets the L -> K span morphism.
func (b *Builder[N, E]) WithL2K(m *morphism.Morphism) *Builder[N, E] {
	if m == nil {
		panic("rule: Builder.WithL2K(nil)")
	}
	b.l2k = m

	return b
}

// WithK2R sets the K -> R span morphism.
func (b *Builder[N, E]) WithK2R(m *morphism.Morphism) *Builder[N, E] {
	if m == nil {
		panic("rule: Builder.WithK2R(nil)")
	}
	b.k2r = m

	return b
}

// Build assembles the Rule. It panics if any of L, K, R, L2K, or K2R
// was never supplied — these are structural requirements of a span,
// not optional tuning knobs. Build does not itself call Validate;
// callers that need well-formedness checked should call
// Rule.Validate or Rule.AssertValid on the result.
func (b *Builder[N, E]) Build() *Rule[N, E] {
	switch {
	case b.l == nil:
		panic("rule: Builder.Build() missing WithLeft")
	case b.k == nil:
		panic("rule: Builder.Build() missing WithInterface")
	case b.r == nil:
		panic("rule: Builder.Build() missing WithRight")
	case b.l2k == nil:
		panic("rule: Builder.Build() missing WithL2K")
	case b.k2r == nil:
		panic("rule: Builder.Build() missing WithK2R")
	}

	return New(b.name, b.l, b.k, b.r, b.l2k, b.k2r)
}
