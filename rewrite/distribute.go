package rewrite

import "github.com/matteo-psnt/proof-generator/ir"

var distributeAndRule = &distribute{
	rule:  rule{name: "distribute-and", category: Distr, desc: "a & (b | c)  <=>  (a & b) | (a & c)"},
	outer: ir.AndType,
	inner: ir.OrType,
}

var distributeOrRule = &distribute{
	rule:  rule{name: "distribute-or", category: Distr, desc: "a | (b & c)  <=>  (a | b) & (a | c)"},
	outer: ir.OrType,
	inner: ir.AndType,
}

func DistributeAnd() Rule { return distributeAndRule }
func DistributeOr() Rule  { return distributeOrRule }

type distribute struct {
	rule
	outer, inner ir.Type
}

func (d *distribute) CanApply(e *ir.Node) bool {
	return e.Type == d.outer && e.Right.Type == d.inner
}

func (d *distribute) Apply(e *ir.Node) (*ir.Node, error) {
	if !d.CanApply(e) {
		return nil, d.errNotApplicable(e)
	}
	a, b, c := e.Left, e.Right.Left, e.Right.Right
	return ir.Binary(d.inner,
		ir.Binary(d.outer, a.Clone(), b.Clone()),
		ir.Binary(d.outer, a.Clone(), c.Clone())), nil
}

var factorAndRule = &factor{
	rule:  rule{name: "factor-and", category: Distr, desc: "(a & b) | (a & c)  <=>  a & (b | c)"},
	outer: ir.AndType,
	inner: ir.OrType,
}

var factorOrRule = &factor{
	rule:  rule{name: "factor-or", category: Distr, desc: "(a | b) & (a | c)  <=>  a | (b & c)"},
	outer: ir.OrType,
	inner: ir.AndType,
}

func FactorAnd() Rule { return factorAndRule }
func FactorOr() Rule  { return factorOrRule }

// factor undoes distribution when the shared left operand matches
// structurally.
type factor struct {
	rule
	outer, inner ir.Type
}

func (f *factor) CanApply(e *ir.Node) bool {
	return e.Type == f.inner &&
		e.Left.Type == f.outer &&
		e.Right.Type == f.outer &&
		ir.Equal(e.Left.Left, e.Right.Left)
}

func (f *factor) Apply(e *ir.Node) (*ir.Node, error) {
	if !f.CanApply(e) {
		return nil, f.errNotApplicable(e)
	}
	a, b, c := e.Left.Left, e.Left.Right, e.Right.Right
	return ir.Binary(f.outer, a.Clone(),
		ir.Binary(f.inner, b.Clone(), c.Clone())), nil
}
