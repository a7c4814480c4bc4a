// Package eval interprets ir trees: single evaluation under an assignment,
// truth-table enumeration and semantic equivalence.
package eval

import (
	"errors"
	"fmt"

	"github.com/matteo-psnt/proof-generator/ir"
)

var ErrUnboundVariable = errors.New("unbound variable")

// Eval interprets e under env, which must bind every variable of e.
// Implication evaluates as !a | b, biconditional as agreement.
func Eval(e *ir.Node, env map[string]bool) (bool, error) {
	switch e.Type {
	case ir.VarType:
		v, ok := env[e.Name]
		if !ok {
			return false, fmt.Errorf("%w: %q", ErrUnboundVariable, e.Name)
		}
		return v, nil
	case ir.TrueType:
		return true, nil
	case ir.FalseType:
		return false, nil
	case ir.NotType:
		v, err := Eval(e.Child, env)
		if err != nil {
			return false, err
		}
		return !v, nil
	}
	l, err := Eval(e.Left, env)
	if err != nil {
		return false, err
	}
	r, err := Eval(e.Right, env)
	if err != nil {
		return false, err
	}
	switch e.Type {
	case ir.AndType:
		return l && r, nil
	case ir.OrType:
		return l || r, nil
	case ir.ImpType:
		return !l || r, nil
	case ir.IffType:
		return l == r, nil
	default:
		panic("type")
	}
}
