package ir

import (
	"slices"
)

// Node is a boolean expression tree. Every non-leaf owns its children
// exclusively: trees are strict, never DAGs. Nodes are treated as immutable
// after construction; transformations allocate fresh trees.
type Node struct {
	Type Type

	// Name is set for VarType.
	Name string

	// Child is set for NotType.
	Child *Node

	// Left and Right are set for the binary types.
	Left, Right *Node
}

func Var(name string) *Node {
	return &Node{Type: VarType, Name: name}
}

func True() *Node {
	return &Node{Type: TrueType}
}

func False() *Node {
	return &Node{Type: FalseType}
}

func Not(c *Node) *Node {
	return &Node{Type: NotType, Child: c}
}

func And(l, r *Node) *Node {
	return &Node{Type: AndType, Left: l, Right: r}
}

func Or(l, r *Node) *Node {
	return &Node{Type: OrType, Left: l, Right: r}
}

func Imp(l, r *Node) *Node {
	return &Node{Type: ImpType, Left: l, Right: r}
}

func Iff(l, r *Node) *Node {
	return &Node{Type: IffType, Left: l, Right: r}
}

// Binary builds a binary node of the given type.
// It panics if t is not a binary type.
func Binary(t Type, l, r *Node) *Node {
	if !t.IsBinary() {
		panic("type")
	}
	return &Node{Type: t, Left: l, Right: r}
}

func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

func (n *Node) CloneTo(dst *Node) *Node {
	dst.Type = n.Type
	dst.Name = n.Name
	if n.Child != nil {
		dst.Child = n.Child.Clone()
	}
	if n.Left != nil {
		dst.Left = n.Left.Clone()
	}
	if n.Right != nil {
		dst.Right = n.Right.Clone()
	}
	return dst
}

// Size counts the atomic and operator nodes of the tree.
func (n *Node) Size() int {
	switch n.Type {
	case VarType, TrueType, FalseType:
		return 1
	case NotType:
		return 1 + n.Child.Size()
	default:
		return 1 + n.Left.Size() + n.Right.Size()
	}
}

// Vars returns the variable names of the tree, sorted ascending.
func (n *Node) Vars() []string {
	set := map[string]bool{}
	n.vars(set)
	res := make([]string, 0, len(set))
	for name := range set {
		res = append(res, name)
	}
	slices.Sort(res)
	return res
}

func (n *Node) vars(set map[string]bool) {
	switch n.Type {
	case VarType:
		set[n.Name] = true
	case TrueType, FalseType:
	case NotType:
		n.Child.vars(set)
	default:
		n.Left.vars(set)
		n.Right.vars(set)
	}
}
