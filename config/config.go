// Package config loads YAML search configuration for the prover CLI.
package config

import (
	"fmt"
	"os"
	"slices"

	"github.com/goccy/go-yaml"

	"github.com/matteo-psnt/proof-generator/format"
	"github.com/matteo-psnt/proof-generator/proof"
	"github.com/matteo-psnt/proof-generator/rewrite"
)

// Config tunes proof search. Fields absent from the file keep the search
// defaults.
type Config struct {
	MaxDepth            int      `yaml:"maxDepth"`
	MaxStates           int      `yaml:"maxStates"`
	MaxExpressionLength int      `yaml:"maxExpressionLength"`
	DisabledCategories  []string `yaml:"disabledCategories"`
	Notation            string   `yaml:"notation"`
}

func Default() *Config {
	return &Config{
		MaxDepth:            proof.DefaultMaxDepth,
		MaxStates:           proof.DefaultMaxStates,
		MaxExpressionLength: proof.DefaultMaxExprLen,
	}
}

func Load(path string) (*Config, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Parse(d []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(d, cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	cats := rewrite.Categories()
	for _, d := range c.DisabledCategories {
		if !slices.Contains(cats, rewrite.Category(d)) {
			return fmt.Errorf("unknown rule category %q", d)
		}
	}
	if c.Notation != "" {
		if _, err := format.ParseFormat(c.Notation); err != nil {
			return err
		}
	}
	return nil
}

// Rules returns the catalogue with the disabled categories removed.
func (c *Config) Rules() []rewrite.Rule {
	cats := make([]rewrite.Category, len(c.DisabledCategories))
	for i, d := range c.DisabledCategories {
		cats[i] = rewrite.Category(d)
	}
	return rewrite.Without(rewrite.Catalogue(), cats...)
}

// SearchOptions binds the configuration to a proof search.
func (c *Config) SearchOptions() []proof.SearchOption {
	return []proof.SearchOption{
		proof.WithMaxDepth(c.MaxDepth),
		proof.WithMaxStates(c.MaxStates),
		proof.WithMaxExprLen(c.MaxExpressionLength),
		proof.WithRules(c.Rules()),
	}
}

// Format resolves the configured output notation, defaulting to ASCII.
func (c *Config) Format() format.Format {
	if c.Notation == "" {
		return format.ASCIIFormat
	}
	f, err := format.ParseFormat(c.Notation)
	if err != nil {
		return format.ASCIIFormat
	}
	return f
}
