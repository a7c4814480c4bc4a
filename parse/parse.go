// Package parse turns propositional syntax into ir trees.
package parse

import (
	"github.com/matteo-psnt/proof-generator/ir"
	"github.com/matteo-psnt/proof-generator/token"
)

// Parse tokenizes, re-parenthesizes and builds the expression tree for src.
func Parse(src string, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := token.Tokenize(nil, src)
	if err != nil {
		return nil, err
	}
	if len(toks) == 0 {
		return nil, emptyErr()
	}
	bal, err := Parenthesize(toks)
	if err != nil {
		return nil, err
	}
	off := 0
	res, err := parseIff(bal, &off, pOpts)
	if err != nil {
		return nil, err
	}
	if off != len(bal) {
		return nil, unexpectedTokenErr(bal, off)
	}
	return res, nil
}

func trackPos(node *ir.Node, pos token.Pos, opts *parseOpts) {
	if opts.positions != nil {
		opts.positions[node] = pos
	}
}

// precedence-layered descent: biconditional binds loosest, negation
// tightest. Implication and biconditional recurse on their own layer for
// right association; conjunction and disjunction loop for left association.

func parseIff(toks []token.Token, pi *int, opts *parseOpts) (*ir.Node, error) {
	left, err := parseImp(toks, pi, opts)
	if err != nil {
		return nil, err
	}
	if *pi >= len(toks) || toks[*pi].Type != token.TIff {
		return left, nil
	}
	pos := toks[*pi].Pos
	*pi++
	right, err := parseIff(toks, pi, opts)
	if err != nil {
		return nil, err
	}
	res := ir.Iff(left, right)
	trackPos(res, pos, opts)
	return res, nil
}

func parseImp(toks []token.Token, pi *int, opts *parseOpts) (*ir.Node, error) {
	left, err := parseOr(toks, pi, opts)
	if err != nil {
		return nil, err
	}
	if *pi >= len(toks) || toks[*pi].Type != token.TImp {
		return left, nil
	}
	pos := toks[*pi].Pos
	*pi++
	right, err := parseImp(toks, pi, opts)
	if err != nil {
		return nil, err
	}
	res := ir.Imp(left, right)
	trackPos(res, pos, opts)
	return res, nil
}

func parseOr(toks []token.Token, pi *int, opts *parseOpts) (*ir.Node, error) {
	left, err := parseAnd(toks, pi, opts)
	if err != nil {
		return nil, err
	}
	for *pi < len(toks) && toks[*pi].Type == token.TOr {
		pos := toks[*pi].Pos
		*pi++
		right, err := parseAnd(toks, pi, opts)
		if err != nil {
			return nil, err
		}
		left = ir.Or(left, right)
		trackPos(left, pos, opts)
	}
	return left, nil
}

func parseAnd(toks []token.Token, pi *int, opts *parseOpts) (*ir.Node, error) {
	left, err := parseNot(toks, pi, opts)
	if err != nil {
		return nil, err
	}
	for *pi < len(toks) && toks[*pi].Type == token.TAnd {
		pos := toks[*pi].Pos
		*pi++
		right, err := parseNot(toks, pi, opts)
		if err != nil {
			return nil, err
		}
		left = ir.And(left, right)
		trackPos(left, pos, opts)
	}
	return left, nil
}

func parseNot(toks []token.Token, pi *int, opts *parseOpts) (*ir.Node, error) {
	if *pi >= len(toks) || toks[*pi].Type != token.TNot {
		return parsePrimary(toks, pi, opts)
	}
	pos := toks[*pi].Pos
	*pi++
	child, err := parseNot(toks, pi, opts)
	if err != nil {
		return nil, err
	}
	res := ir.Not(child)
	trackPos(res, pos, opts)
	return res, nil
}

func parsePrimary(toks []token.Token, pi *int, opts *parseOpts) (*ir.Node, error) {
	if *pi >= len(toks) {
		return nil, unexpectedTokenErr(toks, *pi)
	}
	t := &toks[*pi]
	switch t.Type {
	case token.TLParen:
		open := t.Pos
		*pi++
		res, err := parseIff(toks, pi, opts)
		if err != nil {
			return nil, err
		}
		if *pi >= len(toks) || toks[*pi].Type != token.TRParen {
			return nil, missingCloseErr(open)
		}
		*pi++
		return res, nil
	case token.TTrue:
		*pi++
		res := ir.True()
		trackPos(res, t.Pos, opts)
		return res, nil
	case token.TFalse:
		*pi++
		res := ir.False()
		trackPos(res, t.Pos, opts)
		return res, nil
	case token.TIdent:
		*pi++
		res := ir.Var(t.Text)
		trackPos(res, t.Pos, opts)
		return res, nil
	default:
		return nil, unexpectedTokenErr(toks, *pi)
	}
}
