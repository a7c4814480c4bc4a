package encode

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/matteo-psnt/proof-generator/format"
	"github.com/matteo-psnt/proof-generator/ir"
	"github.com/matteo-psnt/proof-generator/parse"
	"github.com/matteo-psnt/proof-generator/proof"
	"github.com/matteo-psnt/proof-generator/rewrite"
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	node, err := parse.Parse(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return node
}

func TestProofText(t *testing.T) {
	res := &proof.Result{
		Found: true,
		Steps: []proof.Step{
			{Expr: mustParse(t, "!(a & b)")},
			{Expr: mustParse(t, "!a | !b"), Rule: rewrite.DeMorganAnd()},
		},
	}
	buf := bytes.NewBuffer(nil)
	if err := Proof(res, buf); err != nil {
		t.Fatal(err)
	}
	want := "!(a & b)  <->  !a | !b\n" +
		"\n" +
		"1) !(a & b)\n" +
		"2) !a | !b    by dm\n"
	if got := buf.String(); got != want {
		t.Errorf("proof text:\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestProofTextAlignment(t *testing.T) {
	res := &proof.Result{
		Found: true,
		Steps: []proof.Step{
			{Expr: mustParse(t, "a <=> b")},
			{Expr: mustParse(t, "(a => b) & (b => a)"), Rule: rewrite.IffExpand()},
			{Expr: mustParse(t, "(!a | b) & (b => a)"), Rule: rewrite.ImplicationElim()},
		},
	}
	buf := bytes.NewBuffer(nil)
	if err := Proof(res, buf); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// header, blank, three steps
	if len(lines) != 5 {
		t.Fatalf("got %d lines: %q", len(lines), lines)
	}
	// the "by" annotations of the annotated lines line up
	at := -1
	for _, ln := range lines[3:] {
		i := strings.Index(ln, "by ")
		if i < 0 {
			t.Fatalf("no annotation in %q", ln)
		}
		if at == -1 {
			at = i
		}
		if i != at {
			t.Errorf("annotation at column %d, want %d: %q", i, at, ln)
		}
	}
	// three spaces past the longest step prefix
	longest := len("2) (a => b) & (b => a)")
	if at != longest+3 {
		t.Errorf("annotation column %d, want %d", at, longest+3)
	}
}

func TestProofNotFound(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := Proof(&proof.Result{}, buf); err != ErrNoProof {
		t.Fatalf("got %v, want ErrNoProof", err)
	}
}

func TestProofFromSearch(t *testing.T) {
	res := proof.Search(context.Background(),
		mustParse(t, "a | (a & b)"), mustParse(t, "a"))
	if !res.Found {
		t.Fatal("search failed")
	}
	buf := bytes.NewBuffer(nil)
	if err := Proof(res, buf); err != nil {
		t.Fatal(err)
	}
	want := "a | (a & b)  <->  a\n" +
		"\n" +
		"1) a | (a & b)\n" +
		"2) a             by simp2\n"
	if got := buf.String(); got != want {
		t.Errorf("proof text:\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestExprUnicode(t *testing.T) {
	tts := []struct {
		in   string
		want string
	}{
		{"!a", "¬a"},
		{"a & (b | c)", "a ∧ (b ∨ c)"},
		{"a => b", "a → b"},
		{"a <=> b", "a ↔ b"},
		{"!(a & b)", "¬(a ∧ b)"},
		{"true | false", "true ∨ false"},
	}
	for _, tt := range tts {
		got := Expr(mustParse(t, tt.in), WithFormat(format.UnicodeFormat))
		if got != tt.want {
			t.Errorf("Expr(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExprASCIIMatchesString(t *testing.T) {
	for _, in := range []string{"!!a", "a & b | c", "!(a => b) <=> c"} {
		e := mustParse(t, in)
		if got := Expr(e); got != e.String() {
			t.Errorf("Expr(%q) = %q, String %q", in, got, e.String())
		}
	}
}
