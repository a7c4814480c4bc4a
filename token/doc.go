// Package token turns free-form propositional syntax into a flat stream of
// canonical tokens.
//
// The tokenizer accepts Unicode glyphs (∧ ∨ ¬ → ↔), ASCII symbol forms
// (&& || ~ -> <-> and the canonical ! & | => <=>), and whole-word synonyms
// (AND, or, implies, iff, ...). Word synonyms are case-insensitive except
// for the single-character forms v, T, t, F, f, 1 and 0, which are
// recognized only as whole words so that they never split a larger
// identifier.
package token
