package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Token   bool
	Parse   bool
	Rule    bool
	Rewrite bool
	Search  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Token = boolEnv("PROVER_DEBUG_TOKEN")
	d.Parse = boolEnv("PROVER_DEBUG_PARSE")
	d.Rule = boolEnv("PROVER_DEBUG_RULE")
	d.Rewrite = boolEnv("PROVER_DEBUG_REWRITE")
	d.Search = boolEnv("PROVER_DEBUG_SEARCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Token() bool {
	return d.Token
}
func Parse() bool {
	return d.Parse
}
func Rule() bool {
	return d.Rule
}
func Rewrite() bool {
	return d.Rewrite
}
func Search() bool {
	return d.Search
}
