package rewrite

import (
	"github.com/matteo-psnt/proof-generator/debug"
	"github.com/matteo-psnt/proof-generator/ir"
)

// Rewrite is one rule application at one position of an expression.
type Rewrite struct {
	Expr *ir.Node
	Rule Rule
}

// All enumerates every expression reachable from e by applying exactly one
// rule at exactly one position, keeping only results whose size stays within
// maxLen. Traversal order is fixed: the root first, then the negation child,
// then the binary left and right sides. A rule that fails during Apply is
// skipped; rules are supposed to be sound, so the failure is only logged.
func All(e *ir.Node, rules []Rule, maxLen int) []Rewrite {
	var res []Rewrite
	for _, r := range rules {
		if !r.CanApply(e) {
			continue
		}
		out, err := r.Apply(e)
		if err != nil {
			debug.Logf("rewrite: rule %s failed on %s: %v\n", r.Name(), e, err)
			continue
		}
		if out.Size() > maxLen {
			continue
		}
		if debug.Rewrite() {
			debug.Logf("rewrite: %s: %s -> %s\n", r.Name(), e, out)
		}
		res = append(res, Rewrite{Expr: out, Rule: r})
	}
	switch {
	case e.Type == ir.NotType:
		for _, rw := range All(e.Child, rules, maxLen-1) {
			res = append(res, Rewrite{Expr: ir.Not(rw.Expr), Rule: rw.Rule})
		}
	case e.Type.IsBinary():
		leftBudget := maxLen - e.Right.Size() - 1
		for _, rw := range All(e.Left, rules, leftBudget) {
			res = append(res, Rewrite{
				Expr: ir.Binary(e.Type, rw.Expr, e.Right.Clone()),
				Rule: rw.Rule,
			})
		}
		rightBudget := maxLen - e.Left.Size() - 1
		for _, rw := range All(e.Right, rules, rightBudget) {
			res = append(res, Rewrite{
				Expr: ir.Binary(e.Type, e.Left.Clone(), rw.Expr),
				Rule: rw.Rule,
			})
		}
	}
	return res
}
