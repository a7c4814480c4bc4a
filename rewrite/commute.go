package rewrite

import "github.com/matteo-psnt/proof-generator/ir"

var commuteAndRule = &commute{
	rule: rule{name: "commute-and", category: CommAssoc, desc: "a & b  <=>  b & a"},
	typ:  ir.AndType,
}

var commuteOrRule = &commute{
	rule: rule{name: "commute-or", category: CommAssoc, desc: "a | b  <=>  b | a"},
	typ:  ir.OrType,
}

var commuteIffRule = &commute{
	rule: rule{name: "commute-iff", category: CommAssoc, desc: "a <=> b  <=>  b <=> a"},
	typ:  ir.IffType,
}

func CommuteAnd() Rule { return commuteAndRule }
func CommuteOr() Rule  { return commuteOrRule }
func CommuteIff() Rule { return commuteIffRule }

type commute struct {
	rule
	typ ir.Type
}

func (c *commute) CanApply(e *ir.Node) bool {
	return e.Type == c.typ
}

func (c *commute) Apply(e *ir.Node) (*ir.Node, error) {
	if !c.CanApply(e) {
		return nil, c.errNotApplicable(e)
	}
	return ir.Binary(c.typ, e.Right.Clone(), e.Left.Clone()), nil
}

var commuteAndAndRule = &rotate{
	rule: rule{name: "commute-and-and", category: CommAssoc, desc: "(a & b) & c  <=>  b & (a & c)"},
	typ:  ir.AndType,
}

var commuteOrOrRule = &rotate{
	rule: rule{name: "commute-or-or", category: CommAssoc, desc: "(a | b) | c  <=>  b | (a | c)"},
	typ:  ir.OrType,
}

func CommuteAndAnd() Rule { return commuteAndAndRule }
func CommuteOrOr() Rule   { return commuteOrOrRule }

// rotate re-associates with a swap: (a op b) op c becomes b op (a op c).
type rotate struct {
	rule
	typ ir.Type
}

func (c *rotate) CanApply(e *ir.Node) bool {
	return e.Type == c.typ && e.Left.Type == c.typ
}

func (c *rotate) Apply(e *ir.Node) (*ir.Node, error) {
	if !c.CanApply(e) {
		return nil, c.errNotApplicable(e)
	}
	a, b, cc := e.Left.Left, e.Left.Right, e.Right
	return ir.Binary(c.typ, b.Clone(),
		ir.Binary(c.typ, a.Clone(), cc.Clone())), nil
}
