package eval

// Differential oracle: expressions rendered in expr-lang syntax and run
// through its VM, for cross-checking the native evaluator.

import (
	"strings"

	"github.com/expr-lang/expr"

	"github.com/matteo-psnt/proof-generator/ir"
)

// ExprSource renders e as an expr-lang boolean expression: && || ! and ==
// for the biconditional, implication desugared to !a || b. Composite
// subterms are fully parenthesized.
func ExprSource(e *ir.Node) string {
	var b strings.Builder
	writeExpr(&b, e)
	return b.String()
}

func writeExpr(b *strings.Builder, e *ir.Node) {
	switch e.Type {
	case ir.VarType:
		b.WriteString(e.Name)
	case ir.TrueType:
		b.WriteString("true")
	case ir.FalseType:
		b.WriteString("false")
	case ir.NotType:
		b.WriteString("!")
		writeExprOperand(b, e.Child)
	case ir.AndType:
		writeExprOperand(b, e.Left)
		b.WriteString(" && ")
		writeExprOperand(b, e.Right)
	case ir.OrType:
		writeExprOperand(b, e.Left)
		b.WriteString(" || ")
		writeExprOperand(b, e.Right)
	case ir.ImpType:
		b.WriteString("!")
		writeExprOperand(b, e.Left)
		b.WriteString(" || ")
		writeExprOperand(b, e.Right)
	case ir.IffType:
		writeExprOperand(b, e.Left)
		b.WriteString(" == ")
		writeExprOperand(b, e.Right)
	default:
		panic("type")
	}
}

func writeExprOperand(b *strings.Builder, e *ir.Node) {
	if e.Type.IsLeaf() {
		writeExpr(b, e)
		return
	}
	b.WriteString("(")
	writeExpr(b, e)
	b.WriteString(")")
}

// CrossEval evaluates e under env through the expr VM.
func CrossEval(e *ir.Node, env map[string]bool) (bool, error) {
	runEnv := make(map[string]any, len(env))
	for k, v := range env {
		runEnv[k] = v
	}
	prg, err := expr.Compile(ExprSource(e), expr.Env(runEnv), expr.AsBool())
	if err != nil {
		return false, err
	}
	res, err := expr.Run(prg, runEnv)
	if err != nil {
		return false, err
	}
	return res.(bool), nil
}
