package parse

import (
	"fmt"

	"github.com/matteo-psnt/proof-generator/debug"
	"github.com/matteo-psnt/proof-generator/token"
)

// Parenthesize re-parenthesizes a token stream so that operator precedence
// is encoded by explicit grouping. Precedence, highest to lowest:
// ! & | => <=>. Conjunction and disjunction associate left, implication and
// biconditional associate right.
func Parenthesize(toks []token.Token) ([]token.Token, error) {
	if len(toks) == 0 {
		return nil, emptyErr()
	}
	if err := token.Balance(toks); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if whollyWrapped(toks) {
		return toks, nil
	}
	dst := make([]token.Token, len(toks))
	copy(dst, toks)
	dst, err := wrapNegations(dst)
	if err != nil {
		return nil, err
	}
	for _, b := range []struct {
		typ         token.TokenType
		rightToLeft bool
	}{
		{token.TAnd, false},
		{token.TOr, false},
		{token.TImp, true},
		{token.TIff, true},
	} {
		dst, err = bracketBinary(dst, b.typ, b.rightToLeft)
		if err != nil {
			return nil, err
		}
	}
	if debug.Parse() {
		debug.Logf("parenthesized %d tokens into %d\n", len(toks), len(dst))
	}
	return dst, nil
}

// whollyWrapped reports whether the stream is a single balanced
// parenthesization: outermost '(' matches the final ')' with depth never
// reaching zero in between.
func whollyWrapped(toks []token.Token) bool {
	n := len(toks)
	if n < 2 || toks[0].Type != token.TLParen || toks[n-1].Type != token.TRParen {
		return false
	}
	depth := 0
	for i := 0; i < n-1; i++ {
		switch toks[i].Type {
		case token.TLParen:
			depth++
		case token.TRParen:
			depth--
		}
		if depth == 0 {
			return false
		}
	}
	return true
}

// wrapNegations rewrites every negation chain !..!X into nested groups, so
// that !!a becomes (!(!a)). X is a single atom or a parenthesized group.
func wrapNegations(toks []token.Token) ([]token.Token, error) {
	for i := 0; i < len(toks); i++ {
		if toks[i].Type != token.TNot {
			continue
		}
		k := 1
		for i+k < len(toks) && toks[i+k].Type == token.TNot {
			k++
		}
		end, err := operandEnd(toks, i+k)
		if err != nil {
			return nil, missingOperandErr("'!'", toks[i].Pos)
		}
		wrapped := make([]token.Token, 0, (end-i)+2*k)
		for j := 0; j < k; j++ {
			wrapped = append(wrapped,
				token.Token{Type: token.TLParen, Pos: toks[i+j].Pos, Text: "("},
				toks[i+j])
		}
		wrapped = append(wrapped, toks[i+k:end]...)
		for j := k - 1; j >= 0; j-- {
			wrapped = append(wrapped,
				token.Token{Type: token.TRParen, Pos: toks[i+j].Pos, Text: ")"})
		}
		toks = splice(toks, i, end, wrapped)
		// resume at the innermost '!' operand so nested negations inside a
		// grouped operand are wrapped as well
		i += 2*k - 1
	}
	return toks, nil
}

// bracketBinary brackets each depth-zero occurrence of typ with its minimal
// L op R span. Left-to-right bracketing yields left association,
// right-to-left yields right association.
func bracketBinary(toks []token.Token, typ token.TokenType, rightToLeft bool) ([]token.Token, error) {
	for {
		i := findDepthZero(toks, typ, rightToLeft)
		if i < 0 {
			return toks, nil
		}
		lo, err := operandStart(toks, i-1)
		if err != nil {
			return nil, missingOperandErr(fmt.Sprintf("%q", toks[i].Text), toks[i].Pos)
		}
		hi, err := operandEnd(toks, i+1)
		if err != nil {
			return nil, missingOperandErr(fmt.Sprintf("%q", toks[i].Text), toks[i].Pos)
		}
		span := make([]token.Token, 0, (hi-lo)+2)
		span = append(span, token.Token{Type: token.TLParen, Pos: toks[lo].Pos, Text: "("})
		span = append(span, toks[lo:hi]...)
		span = append(span, token.Token{Type: token.TRParen, Pos: toks[hi-1].Pos, Text: ")"})
		toks = splice(toks, lo, hi, span)
	}
}

// findDepthZero locates the first (or last) occurrence of typ outside all
// parentheses, or -1.
func findDepthZero(toks []token.Token, typ token.TokenType, last bool) int {
	depth, res := 0, -1
	for i := range toks {
		switch toks[i].Type {
		case token.TLParen:
			depth++
		case token.TRParen:
			depth--
		case typ:
			if depth == 0 {
				if !last {
					return i
				}
				res = i
			}
		}
	}
	return res
}

// operandEnd returns the exclusive end of the operand group starting at i:
// a single atom or a balanced parenthesization.
func operandEnd(toks []token.Token, i int) (int, error) {
	if i >= len(toks) {
		return 0, unexpectedTokenErr(toks, i)
	}
	switch toks[i].Type {
	case token.TIdent, token.TTrue, token.TFalse:
		return i + 1, nil
	case token.TLParen:
		depth := 0
		for j := i; j < len(toks); j++ {
			switch toks[j].Type {
			case token.TLParen:
				depth++
			case token.TRParen:
				depth--
			}
			if depth == 0 {
				return j + 1, nil
			}
		}
	}
	return 0, unexpectedTokenErr(toks, i)
}

// operandStart returns the inclusive start of the operand group ending at i.
func operandStart(toks []token.Token, i int) (int, error) {
	if i < 0 {
		return 0, unexpectedTokenErr(toks, i)
	}
	switch toks[i].Type {
	case token.TIdent, token.TTrue, token.TFalse:
		return i, nil
	case token.TRParen:
		depth := 0
		for j := i; j >= 0; j-- {
			switch toks[j].Type {
			case token.TRParen:
				depth++
			case token.TLParen:
				depth--
			}
			if depth == 0 {
				return j, nil
			}
		}
	}
	return 0, unexpectedTokenErr(toks, i)
}

func splice(toks []token.Token, lo, hi int, repl []token.Token) []token.Token {
	res := make([]token.Token, 0, len(toks)-(hi-lo)+len(repl))
	res = append(res, toks[:lo]...)
	res = append(res, repl...)
	res = append(res, toks[hi:]...)
	return res
}
