package rewrite

import "github.com/matteo-psnt/proof-generator/ir"

var iffExpandRule = &iffExpand{
	rule{name: "iff-expand", category: Equiv, desc: "a <=> b  <=>  (a => b) & (b => a)"},
}

func IffExpand() Rule { return iffExpandRule }

type iffExpand struct {
	rule
}

func (x *iffExpand) CanApply(e *ir.Node) bool {
	return e.Type == ir.IffType
}

func (x *iffExpand) Apply(e *ir.Node) (*ir.Node, error) {
	if !x.CanApply(e) {
		return nil, x.errNotApplicable(e)
	}
	return ir.And(
		ir.Imp(e.Left.Clone(), e.Right.Clone()),
		ir.Imp(e.Right.Clone(), e.Left.Clone())), nil
}

var iffContractRule = &iffContract{
	rule{name: "iff-contract", category: Equiv, desc: "(a => b) & (b => a)  <=>  a <=> b"},
}

func IffContract() Rule { return iffContractRule }

// iffContract requires the two implications to cross-match structurally.
type iffContract struct {
	rule
}

func (x *iffContract) CanApply(e *ir.Node) bool {
	return e.Type == ir.AndType &&
		e.Left.Type == ir.ImpType &&
		e.Right.Type == ir.ImpType &&
		ir.Equal(e.Left.Left, e.Right.Right) &&
		ir.Equal(e.Left.Right, e.Right.Left)
}

func (x *iffContract) Apply(e *ir.Node) (*ir.Node, error) {
	if !x.CanApply(e) {
		return nil, x.errNotApplicable(e)
	}
	return ir.Iff(e.Left.Left.Clone(), e.Left.Right.Clone()), nil
}
