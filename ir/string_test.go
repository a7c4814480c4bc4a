package ir

import "testing"

func TestString(t *testing.T) {
	tts := []struct {
		node *Node
		want string
	}{
		{Var("a"), "a"},
		{True(), "true"},
		{False(), "false"},
		{Not(Var("a")), "!a"},
		{Not(Not(Var("a"))), "!!a"},
		{Not(True()), "!true"},
		{Not(And(Var("a"), Var("b"))), "!(a & b)"},
		{And(Var("a"), Var("b")), "a & b"},
		{Or(Var("a"), Var("b")), "a | b"},
		{Imp(Var("a"), Var("b")), "a => b"},
		{Iff(Var("a"), Var("b")), "a <=> b"},
		{Imp(And(Var("a"), Var("b")), Var("c")), "(a & b) => c"},
		{And(Var("a"), Or(Var("b"), Var("c"))), "a & (b | c)"},
		{Or(Not(Var("a")), Not(Var("b"))), "!a | !b"},
		{Not(Or(Not(Var("a")), Var("b"))), "!(!a | b)"},
		{And(Not(And(Var("a"), Var("b"))), True()), "!(a & b) & true"},
		{
			Iff(Imp(Var("p"), Var("q")), Imp(Not(Var("q")), Not(Var("p")))),
			"(p => q) <=> (!q => !p)",
		},
	}
	for _, tt := range tts {
		if got := tt.node.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
