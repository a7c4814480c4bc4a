package rewrite

import "github.com/matteo-psnt/proof-generator/ir"

var simplifyTrueRule = &simplifyTrue{
	rule{name: "simplify-true", category: Simp1, desc: "a & true  <=>  a,  a | false  <=>  a"},
}

func SimplifyTrue() Rule { return simplifyTrueRule }

// simplifyTrue drops an identity operand: true under conjunction, false
// under disjunction, on either side.
type simplifyTrue struct {
	rule
}

func identityType(e *ir.Node) (ir.Type, bool) {
	switch e.Type {
	case ir.AndType:
		return ir.TrueType, true
	case ir.OrType:
		return ir.FalseType, true
	default:
		return 0, false
	}
}

func (s *simplifyTrue) CanApply(e *ir.Node) bool {
	id, ok := identityType(e)
	if !ok {
		return false
	}
	return e.Left.Type == id || e.Right.Type == id
}

func (s *simplifyTrue) Apply(e *ir.Node) (*ir.Node, error) {
	if !s.CanApply(e) {
		return nil, s.errNotApplicable(e)
	}
	id, _ := identityType(e)
	if e.Left.Type == id {
		return e.Right.Clone(), nil
	}
	return e.Left.Clone(), nil
}

var simplifyFalseRule = &simplifyFalse{
	rule{name: "simplify-false", category: Simp1, desc: "a | true  <=>  true,  a & false  <=>  false"},
}

func SimplifyFalse() Rule { return simplifyFalseRule }

// simplifyFalse collapses to an absorbing operand: true under disjunction,
// false under conjunction, on either side.
type simplifyFalse struct {
	rule
}

func absorbingType(e *ir.Node) (ir.Type, bool) {
	switch e.Type {
	case ir.OrType:
		return ir.TrueType, true
	case ir.AndType:
		return ir.FalseType, true
	default:
		return 0, false
	}
}

func (s *simplifyFalse) CanApply(e *ir.Node) bool {
	ab, ok := absorbingType(e)
	if !ok {
		return false
	}
	return e.Left.Type == ab || e.Right.Type == ab
}

func (s *simplifyFalse) Apply(e *ir.Node) (*ir.Node, error) {
	if !s.CanApply(e) {
		return nil, s.errNotApplicable(e)
	}
	if e.Type == ir.OrType {
		return ir.True(), nil
	}
	return ir.False(), nil
}

var expandAndTrueRule = &expandIdentity{
	rule: rule{name: "expand-and-true", category: Simp1, desc: "a  <=>  a & true"},
	typ:  ir.AndType,
	id:   ir.TrueType,
}

var expandOrFalseRule = &expandIdentity{
	rule: rule{name: "expand-or-false", category: Simp1, desc: "a  <=>  a | false"},
	typ:  ir.OrType,
	id:   ir.FalseType,
}

func ExpandAndTrue() Rule { return expandAndTrueRule }
func ExpandOrFalse() Rule { return expandOrFalseRule }

// expandIdentity is expansive; it skips expressions already carrying the
// identity operand on the right.
type expandIdentity struct {
	rule
	typ ir.Type
	id  ir.Type
}

func (x *expandIdentity) CanApply(e *ir.Node) bool {
	return !(e.Type == x.typ && e.Right.Type == x.id)
}

func (x *expandIdentity) Apply(e *ir.Node) (*ir.Node, error) {
	if !x.CanApply(e) {
		return nil, x.errNotApplicable(e)
	}
	id := ir.True()
	if x.id == ir.FalseType {
		id = ir.False()
	}
	return ir.Binary(x.typ, e.Clone(), id), nil
}

var orTrueRule = &orTrue{
	rule{name: "or-true", category: Simp1, desc: "a | true  <=>  true"},
}

var andFalseRule = &andFalse{
	rule{name: "and-false", category: Simp1, desc: "a & false  <=>  false"},
}

func OrTrue() Rule   { return orTrueRule }
func AndFalse() Rule { return andFalseRule }

// orTrue and andFalse are alternate presentations of the absorbing laws,
// matching only the operand on the right.

type orTrue struct {
	rule
}

func (o *orTrue) CanApply(e *ir.Node) bool {
	return e.Type == ir.OrType && e.Right.Type == ir.TrueType
}

func (o *orTrue) Apply(e *ir.Node) (*ir.Node, error) {
	if !o.CanApply(e) {
		return nil, o.errNotApplicable(e)
	}
	return ir.True(), nil
}

type andFalse struct {
	rule
}

func (a *andFalse) CanApply(e *ir.Node) bool {
	return e.Type == ir.AndType && e.Right.Type == ir.FalseType
}

func (a *andFalse) Apply(e *ir.Node) (*ir.Node, error) {
	if !a.CanApply(e) {
		return nil, a.errNotApplicable(e)
	}
	return ir.False(), nil
}
