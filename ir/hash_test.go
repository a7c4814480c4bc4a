package ir

import "testing"

func TestHash(t *testing.T) {
	tts := []struct {
		node *Node
		want string
	}{
		{Var("a"), "VAR(a)"},
		{True(), "TRUE"},
		{False(), "FALSE"},
		{Not(Var("a")), "NOT(VAR(a))"},
		{And(Var("a"), Var("b")), "AND(VAR(a),VAR(b))"},
		{Or(True(), Not(Var("x"))), "OR(TRUE,NOT(VAR(x)))"},
		{Imp(Var("p"), Var("q")), "IMP(VAR(p),VAR(q))"},
		{Iff(Var("p"), Var("q")), "IFF(VAR(p),VAR(q))"},
		{
			And(Var("a"), Or(Var("b"), Var("c"))),
			"AND(VAR(a),OR(VAR(b),VAR(c)))",
		},
	}
	for _, tt := range tts {
		if got := tt.node.Hash(); got != tt.want {
			t.Errorf("Hash(%s) = %q, want %q", tt.node, got, tt.want)
		}
	}
}

func TestHashDistinguishesShape(t *testing.T) {
	// (a & b) & c vs a & (b & c): same flat reading, different trees
	l := And(And(Var("a"), Var("b")), Var("c"))
	r := And(Var("a"), And(Var("b"), Var("c")))
	if l.Hash() == r.Hash() {
		t.Fatal("hash collides across associativity")
	}
	if Equal(l, r) {
		t.Fatal("Equal ignores shape")
	}
}

func TestEqualMatchesHash(t *testing.T) {
	nodes := []*Node{
		Var("a"), Var("b"), True(), False(),
		Not(Var("a")), And(Var("a"), Var("b")), And(Var("b"), Var("a")),
		Or(Var("a"), Var("b")), Imp(Var("a"), Var("b")), Iff(Var("a"), Var("b")),
	}
	for _, x := range nodes {
		for _, y := range nodes {
			if Equal(x, y) != (x.Hash() == y.Hash()) {
				t.Errorf("Equal(%s, %s) disagrees with hash equality", x, y)
			}
		}
	}
}
