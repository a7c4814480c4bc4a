package parse

import (
	"errors"
	"fmt"

	"github.com/matteo-psnt/proof-generator/token"
)

var ErrParse = errors.New("parse error")

func emptyErr() error {
	return fmt.Errorf("%w: empty expression", ErrParse)
}

func missingOperandErr(what string, p token.Pos) error {
	return fmt.Errorf("%w: missing operand for %s %s", ErrParse, what, p)
}

func unexpectedTokenErr(toks []token.Token, i int) error {
	if i < 0 || i >= len(toks) {
		return fmt.Errorf("%w: unexpected end of expression", ErrParse)
	}
	t := &toks[i]
	return fmt.Errorf("%w: unexpected token %q at index %d", ErrParse, t.Text, i)
}

func missingCloseErr(p token.Pos) error {
	return fmt.Errorf("%w: missing closing parenthesis for '(' %s", ErrParse, p)
}
