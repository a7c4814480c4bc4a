package rewrite

import "github.com/matteo-psnt/proof-generator/ir"

var absorbOrRule = &absorb{
	rule:  rule{name: "absorb-or", category: Simp2, desc: "a | (a & b)  <=>  a"},
	outer: ir.OrType,
	inner: ir.AndType,
}

var absorbAndRule = &absorb{
	rule:  rule{name: "absorb-and", category: Simp2, desc: "a & (a | b)  <=>  a"},
	outer: ir.AndType,
	inner: ir.OrType,
}

func AbsorbOr() Rule  { return absorbOrRule }
func AbsorbAnd() Rule { return absorbAndRule }

// absorb matches a outer (a inner b) and (a inner b) outer a, collapsing
// to a.
type absorb struct {
	rule
	outer, inner ir.Type
}

func (a *absorb) keep(e *ir.Node) *ir.Node {
	if e.Right.Type == a.inner && ir.Equal(e.Left, e.Right.Left) {
		return e.Left
	}
	if e.Left.Type == a.inner && ir.Equal(e.Left.Left, e.Right) {
		return e.Right
	}
	return nil
}

func (a *absorb) CanApply(e *ir.Node) bool {
	return e.Type == a.outer && a.keep(e) != nil
}

func (a *absorb) Apply(e *ir.Node) (*ir.Node, error) {
	if !a.CanApply(e) {
		return nil, a.errNotApplicable(e)
	}
	return a.keep(e).Clone(), nil
}
