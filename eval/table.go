package eval

import (
	"errors"
	"fmt"

	"github.com/matteo-psnt/proof-generator/ir"
)

// MaxTableVars caps truth-table enumeration.
const MaxTableVars = 15

var ErrTableTooLarge = errors.New("truth table too large")

type Row struct {
	Assignment map[string]bool
	Result     bool
}

// Table enumerates every assignment over the sorted variable alphabet of an
// expression, in canonical row order: in row i, the variable at sorted
// position j takes bit (i >> (k-1-j)) & 1.
type Table struct {
	Vars []string
	Rows []Row
}

func New(e *ir.Node) (*Table, error) {
	vars := e.Vars()
	k := len(vars)
	if k > MaxTableVars {
		return nil, fmt.Errorf("%w: %d variables exceeds %d",
			ErrTableTooLarge, k, MaxTableVars)
	}
	total := 1 << k
	rows := make([]Row, 0, total)
	for i := 0; i < total; i++ {
		env := make(map[string]bool, k)
		for j, name := range vars {
			env[name] = (i>>(k-1-j))&1 == 1
		}
		res, err := Eval(e, env)
		if err != nil {
			return nil, err
		}
		rows = append(rows, Row{Assignment: env, Result: res})
	}
	return &Table{Vars: vars, Rows: rows}, nil
}
