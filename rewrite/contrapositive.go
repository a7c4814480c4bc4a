package rewrite

import "github.com/matteo-psnt/proof-generator/ir"

var contrapositiveRule = &contrapositive{
	rule{name: "contrapositive", category: Contrapos, desc: "a => b  <=>  !b => !a"},
}

func Contrapositive() Rule { return contrapositiveRule }

// contrapositive skips implications whose sides are both already negated,
// to avoid oscillating with itself.
type contrapositive struct {
	rule
}

func (c *contrapositive) CanApply(e *ir.Node) bool {
	if e.Type != ir.ImpType {
		return false
	}
	return e.Left.Type != ir.NotType || e.Right.Type != ir.NotType
}

func (c *contrapositive) Apply(e *ir.Node) (*ir.Node, error) {
	if !c.CanApply(e) {
		return nil, c.errNotApplicable(e)
	}
	return ir.Imp(ir.Not(e.Right.Clone()), ir.Not(e.Left.Clone())), nil
}
