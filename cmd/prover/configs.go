package main

import (
	"io"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/matteo-psnt/proof-generator/encode"
	"github.com/matteo-psnt/proof-generator/format"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='colorize output'"`
	U     bool `cli:"name=u aliases=unicode desc='render with unicode connectives'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	fmat := format.ASCIIFormat
	if cfg.U {
		fmat = format.UnicodeFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.WithFormat(fmat),
	}
	if cfg.Color {
		res = append(res, encode.WithColor(encode.NewColors().Func()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.WithColor(encode.NewColors().Func()))
		return res
	}
	return res
}

// exprArg joins the remaining arguments into one expression, so quoting is
// optional: prover view a '&' b and prover view 'a & b' read the same.
func exprArg(args []string) string {
	return strings.Join(args, " ")
}

type ViewConfig struct {
	*MainConfig
	Hash bool `cli:"name=hash desc='print the structural fingerprint'"`
	Size bool `cli:"name=size desc='print the expression size'"`
	Vars bool `cli:"name=vars desc='print the variable alphabet'"`

	View *cli.Command
}

type TableConfig struct {
	*MainConfig
	CSV     bool `cli:"name=csv desc='emit comma-separated 0/1 values'"`
	Words   bool `cli:"name=words desc='render cells as true/false'"`
	Analyze bool `cli:"name=a aliases=analyze desc='print tautology/contradiction analysis'"`

	Table *cli.Command
}

type EquivConfig struct {
	*MainConfig
	SAT   bool `cli:"name=sat desc='decide by SAT instead of truth tables'"`
	Cross bool `cli:"name=cross desc='cross-check through the expr VM'"`

	Equiv *cli.Command
}

type ProveConfig struct {
	*MainConfig
	ConfigFile string `cli:"name=config desc='YAML search configuration'"`
	Diff       bool   `cli:"name=diff desc='highlight changes between steps'"`
	Verbose    bool   `cli:"name=v desc='report search progress on stderr'"`
	Gops       bool   `cli:"name=gops desc='start a gops diagnostics agent'"`

	Prove *cli.Command
}
