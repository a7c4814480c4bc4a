package eval

// SAT-backed oracles. The truth-table oracle is exact but exponential in the
// variable count; these compile the expression to a gini circuit and decide
// by SAT instead, so they carry no variable cap.

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/matteo-psnt/proof-generator/ir"
)

type satBuilder struct {
	c    *logic.C
	vars map[string]z.Lit
}

func newSatBuilder() *satBuilder {
	return &satBuilder{
		c:    logic.NewC(),
		vars: map[string]z.Lit{},
	}
}

func (b *satBuilder) build(e *ir.Node) z.Lit {
	switch e.Type {
	case ir.VarType:
		return b.getVar(e.Name)
	case ir.TrueType:
		return b.c.T
	case ir.FalseType:
		return b.c.F
	case ir.NotType:
		return b.build(e.Child).Not()
	case ir.AndType:
		return b.c.Ands(b.build(e.Left), b.build(e.Right))
	case ir.OrType:
		return b.c.Ors(b.build(e.Left), b.build(e.Right))
	case ir.ImpType:
		return b.c.Ors(b.build(e.Left).Not(), b.build(e.Right))
	case ir.IffType:
		l, r := b.build(e.Left), b.build(e.Right)
		return b.c.Ors(b.c.Ands(l, r), b.c.Ands(l.Not(), r.Not()))
	default:
		panic("type")
	}
}

// getVar gets or creates the literal for a variable name; equal names share
// a literal across both sides of an equivalence query.
func (b *satBuilder) getVar(name string) z.Lit {
	if lit, ok := b.vars[name]; ok {
		return lit
	}
	lit := b.c.Lit()
	b.vars[name] = lit
	return lit
}

func (b *satBuilder) sat(formula z.Lit) bool {
	g := gini.New()
	b.c.ToCnf(g)
	g.Assume(formula)
	return g.Solve() == 1
}

// SATSatisfiable reports whether some assignment makes e true.
func SATSatisfiable(e *ir.Node) bool {
	b := newSatBuilder()
	return b.sat(b.build(e))
}

// SATTautology reports whether e is true under every assignment.
func SATTautology(e *ir.Node) bool {
	b := newSatBuilder()
	return !b.sat(b.build(e).Not())
}

// SATEquivalent reports whether e1 and e2 agree under every assignment over
// the union of their alphabets.
func SATEquivalent(e1, e2 *ir.Node) bool {
	b := newSatBuilder()
	l, r := b.build(e1), b.build(e2)
	differ := b.c.Ors(b.c.Ands(l, r.Not()), b.c.Ands(l.Not(), r))
	return !b.sat(differ)
}
