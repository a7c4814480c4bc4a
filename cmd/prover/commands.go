package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/matteo-psnt/proof-generator/format"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"notation"},
			Description: "output notation: ascii/a, unicode/u",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(notation)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "prover").
		WithSynopsis("prover [opts] command [opts]").
		WithDescription("prover is a tool for propositional logic: canonical forms, truth tables, equivalence and transformational proofs.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return proverMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			TableCommand(cfg),
			EquivCommand(cfg),
			ProveCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [-hash] [-size] [-vars] EXPR").
		WithDescription("Parse an expression and print its canonical form").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return proverView(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func TableCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TableConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("table").
		WithAliases("t").
		WithSynopsis("table [-csv] [-words] [-a] EXPR").
		WithDescription("Print the truth table of an expression").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return proverTable(cfg, cc, args)
		})
	cfg.Table = cmd
	return cmd
}

func EquivCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EquivConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("equiv").
		WithAliases("e", "eq").
		WithSynopsis("equiv [-sat] [-cross] EXPR EXPR").
		WithDescription("Decide semantic equivalence of two expressions").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return proverEquiv(cfg, cc, args)
		})
	cfg.Equiv = cmd
	return cmd
}

func ProveCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ProveConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("prove").
		WithAliases("p").
		WithSynopsis("prove [-config file] [-diff] [-v] [-gops] EXPR EXPR").
		WithDescription("Search for an equivalence proof between two expressions").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return proverProve(cfg, cc, args)
		})
	cfg.Prove = cmd
	return cmd
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}
