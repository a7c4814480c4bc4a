package rewrite

import "github.com/matteo-psnt/proof-generator/ir"

var doubleNegationRule = &doubleNegation{
	rule{name: "double-negation", category: Neg, desc: "!!a  <=>  a"},
}

func DoubleNegation() Rule { return doubleNegationRule }

type doubleNegation struct {
	rule
}

func (d *doubleNegation) CanApply(e *ir.Node) bool {
	return e.Type == ir.NotType && e.Child.Type == ir.NotType
}

func (d *doubleNegation) Apply(e *ir.Node) (*ir.Node, error) {
	if !d.CanApply(e) {
		return nil, d.errNotApplicable(e)
	}
	return e.Child.Child.Clone(), nil
}
