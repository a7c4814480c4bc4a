package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/matteo-psnt/proof-generator/encode"
	"github.com/matteo-psnt/proof-generator/eval"
	"github.com/matteo-psnt/proof-generator/parse"
)

func proverTable(cfg *TableConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Table.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: missing expression", cli.ErrUsage)
	}
	node, err := parse.Parse(exprArg(args))
	if err != nil {
		return err
	}
	tbl, err := eval.New(node)
	if err != nil {
		return err
	}
	if cfg.CSV {
		if err := encode.CSV(tbl, cc.Out); err != nil {
			return err
		}
	} else {
		opts := append(cfg.encOpts(cc.Out), encode.WithWords(cfg.Words))
		if err := encode.Table(tbl, cc.Out, opts...); err != nil {
			return err
		}
	}
	if !cfg.Analyze {
		return nil
	}
	a := eval.Analyze(tbl)
	fmt.Fprintf(cc.Out, "\n%d/%d rows satisfiable (%s)\n",
		a.SatisfiableCount, a.TotalRows, verdict(a))
	return nil
}

func verdict(a *eval.Analysis) string {
	switch {
	case a.Tautology:
		return "tautology"
	case a.Contradiction:
		return "contradiction"
	default:
		return "contingent"
	}
}
