package ir

import "strings"

// String renders the canonical output form: variables and constants emit
// their name, negation of an atom or negation omits parentheses, negation of
// a binary wraps its operand, and binary operands are parenthesized iff they
// are themselves binary.
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *Node) write(b *strings.Builder) {
	switch n.Type {
	case VarType:
		b.WriteString(n.Name)
	case TrueType:
		b.WriteString("true")
	case FalseType:
		b.WriteString("false")
	case NotType:
		b.WriteByte('!')
		if n.Child.Type.IsBinary() {
			b.WriteByte('(')
			n.Child.write(b)
			b.WriteByte(')')
		} else {
			n.Child.write(b)
		}
	default:
		n.writeOperand(b, n.Left)
		b.WriteByte(' ')
		b.WriteString(n.Type.symbol())
		b.WriteByte(' ')
		n.writeOperand(b, n.Right)
	}
}

func (n *Node) writeOperand(b *strings.Builder, op *Node) {
	if op.Type.IsBinary() {
		b.WriteByte('(')
		op.write(b)
		b.WriteByte(')')
		return
	}
	op.write(b)
}
