// Package rule defines the double-pushout rewrite rule: a span
// L <- K -> R of three graphs and two injective morphisms, where L is
// the left-hand pattern to match, R is the right-hand replacement, and
// K is their common interface (the part both sides agree survives the
// rewrite unchanged).
//
// Error policy mirrors the teacher's builder package: sentinel errors
// for the well-formedness conditions checked by Validate, returned for
// callers to branch on with errors.Is; AssertValid panics, confined to
// the call sites (package dpo's FindMatches/ApplyOnce/ApplyExhaustive
// and cypher.Export) that treat an ill-formed rule as a programmer
// error rather than recoverable input.
package rule
