package parse

import (
	"strings"
	"testing"

	"github.com/matteo-psnt/proof-generator/token"
)

func render(toks []token.Token) string {
	parts := make([]string, len(toks))
	for i := range toks {
		parts[i] = toks[i].Text
	}
	return strings.Join(parts, " ")
}

func TestParenthesize(t *testing.T) {
	tts := []struct {
		in   string
		want string
	}{
		{in: "a", want: "a"},
		{in: "(a & b)", want: "( a & b )"}, // wholly wrapped: untouched
		{in: "(a & b | c)", want: "( a & b | c )"},
		{in: "!a", want: "( ! a )"},
		{in: "!!a", want: "( ! ( ! a ) )"},
		{in: "a & b", want: "( a & b )"},
		{in: "a & b & c", want: "( ( a & b ) & c )"},
		{in: "a => b => c", want: "( a => ( b => c ) )"},
		{in: "a & b | c", want: "( ( a & b ) | c )"},
		{in: "!a & b", want: "( ( ! a ) & b )"},
		{in: "!(a & b)", want: "( ! ( a & b ) )"},
		{in: "a & (b | c)", want: "( a & ( b | c ) )"},
		{in: "a & b => c | d", want: "( ( a & b ) => ( c | d ) )"},
		{in: "a <=> b => c", want: "( a <=> ( b => c ) )"},
	}
	for _, tt := range tts {
		toks, err := token.Tokenize(nil, tt.in)
		if err != nil {
			t.Fatal(err)
		}
		got, err := Parenthesize(toks)
		if err != nil {
			t.Errorf("Parenthesize(%q): %v", tt.in, err)
			continue
		}
		if s := render(got); s != tt.want {
			t.Errorf("Parenthesize(%q) = %q, want %q", tt.in, s, tt.want)
		}
	}
}

func TestParenthesizeErrs(t *testing.T) {
	for _, in := range []string{"", "(a", "!", "a &", "| a"} {
		toks, err := token.Tokenize(nil, in)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := Parenthesize(toks); err == nil {
			t.Errorf("Parenthesize(%q): expected error", in)
		}
	}
}
