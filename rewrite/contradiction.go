package rewrite

import "github.com/matteo-psnt/proof-generator/ir"

var contradictionRule = &contradiction{
	rule{name: "contradiction", category: Contr, desc: "a & !a  <=>  false"},
}

func Contradiction() Rule { return contradictionRule }

type contradiction struct {
	rule
}

func (c *contradiction) CanApply(e *ir.Node) bool {
	if e.Type != ir.AndType {
		return false
	}
	if e.Right.Type == ir.NotType && ir.Equal(e.Left, e.Right.Child) {
		return true
	}
	return e.Left.Type == ir.NotType && ir.Equal(e.Left.Child, e.Right)
}

func (c *contradiction) Apply(e *ir.Node) (*ir.Node, error) {
	if !c.CanApply(e) {
		return nil, c.errNotApplicable(e)
	}
	return ir.False(), nil
}
