package rewrite

import "github.com/matteo-psnt/proof-generator/ir"

var idempotentAndRule = &idempotent{
	rule: rule{name: "idempotent-and", category: Idemp, desc: "a & a  <=>  a"},
	typ:  ir.AndType,
}

var idempotentOrRule = &idempotent{
	rule: rule{name: "idempotent-or", category: Idemp, desc: "a | a  <=>  a"},
	typ:  ir.OrType,
}

func IdempotentAnd() Rule { return idempotentAndRule }
func IdempotentOr() Rule  { return idempotentOrRule }

type idempotent struct {
	rule
	typ ir.Type
}

func (i *idempotent) CanApply(e *ir.Node) bool {
	return e.Type == i.typ && ir.Equal(e.Left, e.Right)
}

func (i *idempotent) Apply(e *ir.Node) (*ir.Node, error) {
	if !i.CanApply(e) {
		return nil, i.errNotApplicable(e)
	}
	return e.Left.Clone(), nil
}

var expandIdempotentAndRule = &expandIdempotent{
	rule: rule{name: "expand-idempotent-and", category: Idemp, desc: "a  <=>  a & a"},
	typ:  ir.AndType,
}

var expandIdempotentOrRule = &expandIdempotent{
	rule: rule{name: "expand-idempotent-or", category: Idemp, desc: "a  <=>  a | a"},
	typ:  ir.OrType,
}

func ExpandIdempotentAnd() Rule { return expandIdempotentAndRule }
func ExpandIdempotentOr() Rule  { return expandIdempotentOrRule }

// expandIdempotent is expansive: every application grows the expression.
// The driver's length budget is what keeps it finite. It skips expressions
// already of the idempotent shape.
type expandIdempotent struct {
	rule
	typ ir.Type
}

func (x *expandIdempotent) CanApply(e *ir.Node) bool {
	return !(e.Type == x.typ && ir.Equal(e.Left, e.Right))
}

func (x *expandIdempotent) Apply(e *ir.Node) (*ir.Node, error) {
	if !x.CanApply(e) {
		return nil, x.errNotApplicable(e)
	}
	return ir.Binary(x.typ, e.Clone(), e.Clone()), nil
}
