package prover

import (
	"context"
	"testing"

	"github.com/matteo-psnt/proof-generator/eval"
	"github.com/matteo-psnt/proof-generator/rewrite"
)

func TestEndToEnd(t *testing.T) {
	s, err := Parse("!(a & b)")
	if err != nil {
		t.Fatal(err)
	}
	goal, err := Parse("!a | !b")
	if err != nil {
		t.Fatal(err)
	}
	if !Equivalent(s, goal) {
		t.Fatal("de morgan pair not equivalent")
	}
	v, err := Evaluate(s, map[string]bool{"a": true, "b": false})
	if err != nil {
		t.Fatal(err)
	}
	if !v {
		t.Fatal("!(a & b) under a,!b should hold")
	}
	tbl, err := TruthTable(s)
	if err != nil {
		t.Fatal(err)
	}
	if got := eval.Analyze(tbl).SatisfiableCount; got != 3 {
		t.Fatalf("satisfiable rows = %d, want 3", got)
	}
	res := FindProof(context.Background(), s, goal)
	if !res.Found {
		t.Fatal("no proof found")
	}
	if len(res.Steps) != 2 {
		t.Fatalf("proof has %d steps, want 2", len(res.Steps))
	}
	if res.Steps[1].Rule.Category() != rewrite.DM {
		t.Fatalf("cited %s, want dm", res.Steps[1].Rule.Category())
	}
}
