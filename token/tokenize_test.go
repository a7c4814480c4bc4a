package token

import (
	"errors"
	"testing"
)

type tokTest struct {
	in   string
	want []TokenType
}

func types(toks []Token) []TokenType {
	res := make([]TokenType, len(toks))
	for i := range toks {
		res[i] = toks[i].Type
	}
	return res
}

func eqTypes(a, b []TokenType) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTokenize(t *testing.T) {
	tts := []tokTest{
		{in: "", want: []TokenType{}},
		{in: "   \t\n", want: []TokenType{}},
		{in: "a", want: []TokenType{TIdent}},
		{in: "a & b", want: []TokenType{TIdent, TAnd, TIdent}},
		{in: "a&b", want: []TokenType{TIdent, TAnd, TIdent}},
		{in: "a && b", want: []TokenType{TIdent, TAnd, TIdent}},
		{in: "a ∧ b", want: []TokenType{TIdent, TAnd, TIdent}},
		{in: "a ^ b", want: []TokenType{TIdent, TAnd, TIdent}},
		{in: "a * b", want: []TokenType{TIdent, TAnd, TIdent}},
		{in: "a AND b", want: []TokenType{TIdent, TAnd, TIdent}},
		{in: "a and b", want: []TokenType{TIdent, TAnd, TIdent}},
		{in: "a And b", want: []TokenType{TIdent, TAnd, TIdent}},
		{in: "a | b", want: []TokenType{TIdent, TOr, TIdent}},
		{in: "a || b", want: []TokenType{TIdent, TOr, TIdent}},
		{in: "a ∨ b", want: []TokenType{TIdent, TOr, TIdent}},
		{in: "a + b", want: []TokenType{TIdent, TOr, TIdent}},
		{in: "a v b", want: []TokenType{TIdent, TOr, TIdent}},
		{in: "a OR b", want: []TokenType{TIdent, TOr, TIdent}},
		{in: "!a", want: []TokenType{TNot, TIdent}},
		{in: "~a", want: []TokenType{TNot, TIdent}},
		{in: "¬a", want: []TokenType{TNot, TIdent}},
		{in: "NOT a", want: []TokenType{TNot, TIdent}},
		{in: "not a", want: []TokenType{TNot, TIdent}},
		{in: "a => b", want: []TokenType{TIdent, TImp, TIdent}},
		{in: "a -> b", want: []TokenType{TIdent, TImp, TIdent}},
		{in: "a → b", want: []TokenType{TIdent, TImp, TIdent}},
		{in: "a imp b", want: []TokenType{TIdent, TImp, TIdent}},
		{in: "a implies b", want: []TokenType{TIdent, TImp, TIdent}},
		{in: "a <=> b", want: []TokenType{TIdent, TIff, TIdent}},
		{in: "a <-> b", want: []TokenType{TIdent, TIff, TIdent}},
		{in: "a ↔ b", want: []TokenType{TIdent, TIff, TIdent}},
		{in: "a iff b", want: []TokenType{TIdent, TIff, TIdent}},
		{in: "a equiv b", want: []TokenType{TIdent, TIff, TIdent}},
		{in: "a<->b", want: []TokenType{TIdent, TIff, TIdent}},
		{in: "a↔b", want: []TokenType{TIdent, TIff, TIdent}},
		{in: "(a)", want: []TokenType{TLParen, TIdent, TRParen}},
		{in: "true", want: []TokenType{TTrue}},
		{in: "TRUE", want: []TokenType{TTrue}},
		{in: "True", want: []TokenType{TTrue}},
		{in: "T", want: []TokenType{TTrue}},
		{in: "t", want: []TokenType{TTrue}},
		{in: "1", want: []TokenType{TTrue}},
		{in: "false", want: []TokenType{TFalse}},
		{in: "FALSE", want: []TokenType{TFalse}},
		{in: "F", want: []TokenType{TFalse}},
		{in: "f", want: []TokenType{TFalse}},
		{in: "0", want: []TokenType{TFalse}},
		{in: "T & F", want: []TokenType{TTrue, TAnd, TFalse}},
		{in: "T&F", want: []TokenType{TTrue, TAnd, TFalse}},
		{in: "(t)", want: []TokenType{TLParen, TTrue, TRParen}},
		{in: "!f", want: []TokenType{TNot, TFalse}},
		// single-character synonyms never split identifiers
		{in: "T1", want: []TokenType{TIdent}},
		{in: "tv", want: []TokenType{TIdent}},
		{in: "vat", want: []TokenType{TIdent}},
		{in: "V", want: []TokenType{TIdent}},
		{in: "x_1 & y2", want: []TokenType{TIdent, TAnd, TIdent}},
		{in: "!!a", want: []TokenType{TNot, TNot, TIdent}},
		{in: "a&b|c=>d<=>e", want: []TokenType{
			TIdent, TAnd, TIdent, TOr, TIdent, TImp, TIdent, TIff, TIdent,
		}},
	}
	for _, tt := range tts {
		toks, err := Tokenize(nil, tt.in)
		if err != nil {
			t.Errorf("Tokenize(%q): %v", tt.in, err)
			continue
		}
		if got := types(toks); !eqTypes(got, tt.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTokenizeCanonicalText(t *testing.T) {
	toks, err := Tokenize(nil, "p ∧ q → ¬r ↔ s ∨ TRUE")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"p", "&", "q", "=>", "!", "r", "<=>", "s", "|", "true"}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i := range toks {
		if toks[i].Text != want[i] {
			t.Errorf("token %d = %q, want %q", i, toks[i].Text, want[i])
		}
	}
}

func TestTokenizeErrs(t *testing.T) {
	for _, in := range []string{"a @ b", "#", "_x", "12", "9a", "1_"} {
		if _, err := Tokenize(nil, in); err == nil {
			t.Errorf("Tokenize(%q): expected error", in)
		}
	}
	_, err := Tokenize(nil, "_x")
	var tkErr *TokenizeErr
	if !errors.As(err, &tkErr) {
		t.Fatalf("expected *TokenizeErr, got %T", err)
	}
}

func TestTokenizePos(t *testing.T) {
	toks, err := Tokenize(nil, "ab <-> c")
	if err != nil {
		t.Fatal(err)
	}
	offs := []int{0, 3, 7}
	for i := range toks {
		if toks[i].Pos.Offset != offs[i] {
			t.Errorf("token %d at %d, want %d", i, toks[i].Pos.Offset, offs[i])
		}
	}
}

func TestReserved(t *testing.T) {
	for _, w := range []string{"and", "AND", "Implies", "v", "T", "f", "true", "False"} {
		if !Reserved(w) {
			t.Errorf("Reserved(%q) = false", w)
		}
	}
	for _, w := range []string{"V", "vat", "truthy", "andx", "p"} {
		if Reserved(w) {
			t.Errorf("Reserved(%q) = true", w)
		}
	}
}
