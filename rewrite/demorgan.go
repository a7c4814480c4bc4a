package rewrite

import "github.com/matteo-psnt/proof-generator/ir"

var deMorganAndRule = &deMorgan{
	rule:  rule{name: "demorgan-and", category: DM, desc: "!(a & b)  <=>  !a | !b"},
	inner: ir.AndType,
	outer: ir.OrType,
}

var deMorganOrRule = &deMorgan{
	rule:  rule{name: "demorgan-or", category: DM, desc: "!(a | b)  <=>  !a & !b"},
	inner: ir.OrType,
	outer: ir.AndType,
}

func DeMorganAnd() Rule { return deMorganAndRule }
func DeMorganOr() Rule  { return deMorganOrRule }

// deMorgan pushes a negation through a binary connective:
// !(a inner b) becomes !a outer !b.
type deMorgan struct {
	rule
	inner, outer ir.Type
}

func (d *deMorgan) CanApply(e *ir.Node) bool {
	return e.Type == ir.NotType && e.Child.Type == d.inner
}

func (d *deMorgan) Apply(e *ir.Node) (*ir.Node, error) {
	if !d.CanApply(e) {
		return nil, d.errNotApplicable(e)
	}
	return ir.Binary(d.outer,
		ir.Not(e.Child.Left.Clone()),
		ir.Not(e.Child.Right.Clone())), nil
}

var deMorganAndReverseRule = &deMorganReverse{
	rule:  rule{name: "demorgan-and-reverse", category: DM, desc: "!a | !b  <=>  !(a & b)"},
	inner: ir.AndType,
	outer: ir.OrType,
}

var deMorganOrReverseRule = &deMorganReverse{
	rule:  rule{name: "demorgan-or-reverse", category: DM, desc: "!a & !b  <=>  !(a | b)"},
	inner: ir.OrType,
	outer: ir.AndType,
}

func DeMorganAndReverse() Rule { return deMorganAndReverseRule }
func DeMorganOrReverse() Rule  { return deMorganOrReverseRule }

// deMorganReverse pulls two negations out of a binary connective:
// !a outer !b becomes !(a inner b).
type deMorganReverse struct {
	rule
	inner, outer ir.Type
}

func (d *deMorganReverse) CanApply(e *ir.Node) bool {
	return e.Type == d.outer &&
		e.Left.Type == ir.NotType &&
		e.Right.Type == ir.NotType
}

func (d *deMorganReverse) Apply(e *ir.Node) (*ir.Node, error) {
	if !d.CanApply(e) {
		return nil, d.errNotApplicable(e)
	}
	return ir.Not(ir.Binary(d.inner,
		e.Left.Child.Clone(),
		e.Right.Child.Clone())), nil
}
