// Package morphism provides Morphism, the partial injective node/edge
// identifier map shared by subgraph matching (package vf2, which
// produces a Morphism per match) and rule application (package rule,
// whose spans L<-K->R are themselves Morphisms, and package dpo, which
// inverts them while computing a rewrite).
package morphism
