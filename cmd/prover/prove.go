package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"

	"github.com/matteo-psnt/proof-generator/config"
	"github.com/matteo-psnt/proof-generator/encode"
	"github.com/matteo-psnt/proof-generator/parse"
	"github.com/matteo-psnt/proof-generator/proof"
)

func proverProve(cfg *ProveConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Prove.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: prove takes exactly two (quoted) expressions", cli.ErrUsage)
	}
	if cfg.Gops {
		// inspectable while a long search runs
		if err := agent.Listen(agent.Options{}); err != nil {
			fmt.Fprintf(cc.Out, "gops agent failed: %v\n", err)
		}
		defer agent.Close()
	}
	searchCfg := config.Default()
	if cfg.ConfigFile != "" {
		searchCfg, err = config.Load(cfg.ConfigFile)
		if err != nil {
			return err
		}
	}
	from, err := parse.Parse(args[0])
	if err != nil {
		return fmt.Errorf("first expression: %w", err)
	}
	to, err := parse.Parse(args[1])
	if err != nil {
		return fmt.Errorf("second expression: %w", err)
	}
	opts := searchCfg.SearchOptions()
	if cfg.Verbose {
		opts = append(opts, proof.WithProgress(func(states, depth int) {
			fmt.Fprintf(os.Stderr, "explored %d states at depth %d\n", states, depth)
		}))
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	res := proof.Search(ctx, from, to, opts...)
	switch {
	case res.Cancelled:
		return fmt.Errorf("search cancelled after %d states", res.StatesExplored)
	case !res.Found:
		return fmt.Errorf("no proof found within budgets (depth %d, %d states)",
			res.SearchDepth, res.StatesExplored)
	}
	encOpts := append(cfg.encOpts(cc.Out), encode.WithDiff(cfg.Diff))
	return encode.Proof(res, cc.Out, encOpts...)
}
