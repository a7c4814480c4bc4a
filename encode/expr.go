package encode

import (
	"strings"

	"github.com/matteo-psnt/proof-generator/format"
	"github.com/matteo-psnt/proof-generator/ir"
)

// Expr renders an expression in the selected notation. Under the ASCII
// notation the rendering matches ir's canonical String.
func Expr(e *ir.Node, opts ...EncodeOption) string {
	es := newEncState(opts)
	return es.expr(e)
}

func (es *EncState) expr(e *ir.Node) string {
	var b strings.Builder
	es.writeExpr(&b, e)
	return b.String()
}

func (es *EncState) writeExpr(b *strings.Builder, e *ir.Node) {
	sym := es.format.Symbols()
	switch e.Type {
	case ir.VarType:
		b.WriteString(e.Name)
	case ir.TrueType:
		b.WriteString(sym.True)
	case ir.FalseType:
		b.WriteString(sym.False)
	case ir.NotType:
		b.WriteString(sym.Not)
		if e.Child.Type.IsBinary() {
			b.WriteByte('(')
			es.writeExpr(b, e.Child)
			b.WriteByte(')')
		} else {
			es.writeExpr(b, e.Child)
		}
	default:
		es.writeExprOperand(b, e.Left)
		b.WriteByte(' ')
		b.WriteString(es.symbol(e.Type, sym))
		b.WriteByte(' ')
		es.writeExprOperand(b, e.Right)
	}
}

func (es *EncState) writeExprOperand(b *strings.Builder, e *ir.Node) {
	if e.Type.IsBinary() {
		b.WriteByte('(')
		es.writeExpr(b, e)
		b.WriteByte(')')
		return
	}
	es.writeExpr(b, e)
}

func (es *EncState) symbol(t ir.Type, sym *format.Symbols) string {
	switch t {
	case ir.AndType:
		return sym.And
	case ir.OrType:
		return sym.Or
	case ir.ImpType:
		return sym.Imp
	case ir.IffType:
		return sym.Iff
	default:
		panic("type")
	}
}
