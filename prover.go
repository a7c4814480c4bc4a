// Package prover is the facade over the proof-generator core: parsing,
// evaluation, truth tables and transformational proof search.
package prover

import (
	"context"

	"github.com/matteo-psnt/proof-generator/eval"
	"github.com/matteo-psnt/proof-generator/ir"
	"github.com/matteo-psnt/proof-generator/parse"
	"github.com/matteo-psnt/proof-generator/proof"
)

// Parse turns propositional syntax into an expression tree.
func Parse(src string) (*ir.Node, error) {
	return parse.Parse(src)
}

// Evaluate interprets an expression under an assignment.
func Evaluate(e *ir.Node, env map[string]bool) (bool, error) {
	return eval.Eval(e, env)
}

// TruthTable enumerates all assignments of an expression.
func TruthTable(e *ir.Node) (*eval.Table, error) {
	return eval.New(e)
}

// Equivalent decides semantic equivalence by exhaustive evaluation.
func Equivalent(e1, e2 *ir.Node) bool {
	return eval.Equivalent(e1, e2)
}

// FindProof searches for an equivalence proof carrying from into to.
func FindProof(ctx context.Context, from, to *ir.Node, opts ...proof.SearchOption) *proof.Result {
	return proof.Search(ctx, from, to, opts...)
}
