package ir

import "strings"

// Hash returns a deterministic structural fingerprint of the tree, built
// bottom-up. It is injective over AST shape, so two trees are structurally
// equal iff their hashes match. It panics if n is nil.
func (n *Node) Hash() string {
	if n == nil {
		panic("ir: Hash called on nil node")
	}
	var b strings.Builder
	n.hash(&b)
	return b.String()
}

func (n *Node) hash(b *strings.Builder) {
	switch n.Type {
	case VarType:
		b.WriteString("VAR(")
		b.WriteString(n.Name)
		b.WriteByte(')')
	case TrueType:
		b.WriteString("TRUE")
	case FalseType:
		b.WriteString("FALSE")
	case NotType:
		b.WriteString("NOT(")
		n.Child.hash(b)
		b.WriteByte(')')
	default:
		b.WriteString(n.Type.opName())
		b.WriteByte('(')
		n.Left.hash(b)
		b.WriteByte(',')
		n.Right.hash(b)
		b.WriteByte(')')
	}
}
