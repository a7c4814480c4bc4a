package parse

import (
	"github.com/matteo-psnt/proof-generator/ir"
	"github.com/matteo-psnt/proof-generator/token"
)

type parseOpts struct {
	positions map[*ir.Node]token.Pos
}

type ParseOption func(*parseOpts)

// Positions records, for each constructed node, the position of its defining
// token in the input.
func Positions(m map[*ir.Node]token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}
