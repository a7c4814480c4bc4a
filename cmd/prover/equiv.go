package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/matteo-psnt/proof-generator/eval"
	"github.com/matteo-psnt/proof-generator/ir"
	"github.com/matteo-psnt/proof-generator/parse"
)

func proverEquiv(cfg *EquivConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Equiv.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: equiv takes exactly two (quoted) expressions", cli.ErrUsage)
	}
	e1, err := parse.Parse(args[0])
	if err != nil {
		return fmt.Errorf("first expression: %w", err)
	}
	e2, err := parse.Parse(args[1])
	if err != nil {
		return fmt.Errorf("second expression: %w", err)
	}
	var equivalent bool
	switch {
	case cfg.SAT:
		equivalent = eval.SATEquivalent(e1, e2)
	case cfg.Cross:
		equivalent, err = crossEquivalent(e1, e2)
		if err != nil {
			return err
		}
	default:
		equivalent = eval.Equivalent(e1, e2)
	}
	if equivalent {
		fmt.Fprintln(cc.Out, "equivalent")
		return nil
	}
	fmt.Fprintln(cc.Out, "not equivalent")
	return nil
}

// crossEquivalent enumerates the union alphabet through the expr VM.
func crossEquivalent(e1, e2 *ir.Node) (bool, error) {
	vars := eval.UnionVars(e1, e2)
	k := len(vars)
	for i := 0; i < 1<<k; i++ {
		env := make(map[string]bool, k)
		for j, name := range vars {
			env[name] = (i>>(k-1-j))&1 == 1
		}
		v1, err := eval.CrossEval(e1, env)
		if err != nil {
			return false, err
		}
		v2, err := eval.CrossEval(e2, env)
		if err != nil {
			return false, err
		}
		if v1 != v2 {
			return false, nil
		}
	}
	return true, nil
}
