package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/matteo-psnt/proof-generator/encode"
	"github.com/matteo-psnt/proof-generator/parse"
)

func proverView(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
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
	fmt.Fprintln(cc.Out, encode.Expr(node, cfg.encOpts(cc.Out)...))
	if cfg.Hash {
		fmt.Fprintf(cc.Out, "hash: %s\n", node.Hash())
	}
	if cfg.Size {
		fmt.Fprintf(cc.Out, "size: %d\n", node.Size())
	}
	if cfg.Vars {
		fmt.Fprintf(cc.Out, "vars: %s\n", strings.Join(node.Vars(), " "))
	}
	return nil
}
