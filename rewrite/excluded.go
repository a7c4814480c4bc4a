package rewrite

import "github.com/matteo-psnt/proof-generator/ir"

var excludedMiddleRule = &excludedMiddle{
	rule{name: "excluded-middle", category: LEM, desc: "a | !a  <=>  true"},
}

func ExcludedMiddle() Rule { return excludedMiddleRule }

type excludedMiddle struct {
	rule
}

func (x *excludedMiddle) CanApply(e *ir.Node) bool {
	if e.Type != ir.OrType {
		return false
	}
	if e.Right.Type == ir.NotType && ir.Equal(e.Left, e.Right.Child) {
		return true
	}
	return e.Left.Type == ir.NotType && ir.Equal(e.Left.Child, e.Right)
}

func (x *excludedMiddle) Apply(e *ir.Node) (*ir.Node, error) {
	if !x.CanApply(e) {
		return nil, x.errNotApplicable(e)
	}
	return ir.True(), nil
}
