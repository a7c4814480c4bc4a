// Package ir provides the expression tree for propositional formulas.
//
// A tree is built from variables, the constants true and false, negation and
// the binary connectives and, or, implication and biconditional. Trees carry
// structural identity: Hash is an injective fingerprint of shape and Equal
// is the matching deep comparison.
//
// # Related Packages
//
//   - github.com/matteo-psnt/proof-generator/parse - Parse text to IR
//   - github.com/matteo-psnt/proof-generator/rewrite - Equivalence rewrites over IR
package ir
