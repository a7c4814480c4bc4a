package rewrite

import "github.com/matteo-psnt/proof-generator/ir"

var implicationElimRule = &implicationElim{
	rule{name: "implication-elim", category: Impl, desc: "a => b  <=>  !a | b"},
}

func ImplicationElim() Rule { return implicationElimRule }

type implicationElim struct {
	rule
}

func (i *implicationElim) CanApply(e *ir.Node) bool {
	return e.Type == ir.ImpType
}

func (i *implicationElim) Apply(e *ir.Node) (*ir.Node, error) {
	if !i.CanApply(e) {
		return nil, i.errNotApplicable(e)
	}
	return ir.Or(ir.Not(e.Left.Clone()), e.Right.Clone()), nil
}

var implicationIntroRule = &implicationIntro{
	rule{name: "implication-intro", category: Impl, desc: "!a | b  <=>  a => b"},
}

func ImplicationIntro() Rule { return implicationIntroRule }

// implicationIntro applies to any disjunction whose left operand is a
// negation.
type implicationIntro struct {
	rule
}

func (i *implicationIntro) CanApply(e *ir.Node) bool {
	return e.Type == ir.OrType && e.Left.Type == ir.NotType
}

func (i *implicationIntro) Apply(e *ir.Node) (*ir.Node, error) {
	if !i.CanApply(e) {
		return nil, i.errNotApplicable(e)
	}
	return ir.Imp(e.Left.Child.Clone(), e.Right.Clone()), nil
}
