package config

import (
	"testing"

	"github.com/matteo-psnt/proof-generator/format"
	"github.com/matteo-psnt/proof-generator/proof"
	"github.com/matteo-psnt/proof-generator/rewrite"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte("{}"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxDepth != proof.DefaultMaxDepth ||
		cfg.MaxStates != proof.DefaultMaxStates ||
		cfg.MaxExpressionLength != proof.DefaultMaxExprLen {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if len(cfg.Rules()) != len(rewrite.Catalogue()) {
		t.Fatal("rules filtered with nothing disabled")
	}
	if cfg.Format() != format.ASCIIFormat {
		t.Fatal("default notation not ascii")
	}
}

func TestParseOverrides(t *testing.T) {
	in := `
maxDepth: 4
maxStates: 100
maxExpressionLength: 9
disabledCategories:
  - dm
  - simp1
notation: unicode
`
	cfg, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxDepth != 4 || cfg.MaxStates != 100 || cfg.MaxExpressionLength != 9 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	for _, r := range cfg.Rules() {
		if r.Category() == rewrite.DM || r.Category() == rewrite.Simp1 {
			t.Fatalf("category %s not disabled", r.Category())
		}
	}
	if cfg.Format() != format.UnicodeFormat {
		t.Fatal("notation not unicode")
	}
}

func TestParsePartial(t *testing.T) {
	cfg, err := Parse([]byte("maxDepth: 3\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxDepth != 3 {
		t.Fatalf("maxDepth = %d", cfg.MaxDepth)
	}
	if cfg.MaxStates != proof.DefaultMaxStates {
		t.Fatalf("maxStates = %d", cfg.MaxStates)
	}
}

func TestParseErrs(t *testing.T) {
	for _, in := range []string{
		"disabledCategories: [nonsense]",
		"notation: roman",
		"maxDepth: [1,2]",
	} {
		if _, err := Parse([]byte(in)); err == nil {
			t.Errorf("Parse(%q): expected error", in)
		}
	}
}
