package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matteo-psnt/proof-generator/ir"
	"github.com/matteo-psnt/proof-generator/parse"
)

func hashes(rws []Rewrite) map[string]bool {
	res := map[string]bool{}
	for _, rw := range rws {
		res[rw.Expr.Hash()] = true
	}
	return res
}

func TestAllRoot(t *testing.T) {
	e, err := parse.Parse("!(a & b)")
	require.NoError(t, err)
	rws := All(e, Catalogue(), 15)
	want, err := parse.Parse("!a | !b")
	require.NoError(t, err)
	assert.True(t, hashes(rws)[want.Hash()], "demorgan result missing")
	for _, rw := range rws {
		if ir.Equal(rw.Expr, want) && rw.Rule.Name() == "demorgan-and" {
			return
		}
	}
	t.Fatal("demorgan-and not cited for !a | !b")
}

func TestAllPositions(t *testing.T) {
	// double negation under the left side of a conjunction
	e, err := parse.Parse("!!a & b")
	require.NoError(t, err)
	rws := All(e, Catalogue(), 15)
	want, err := parse.Parse("a & b")
	require.NoError(t, err)
	assert.True(t, hashes(rws)[want.Hash()], "nested rewrite missing")

	// and under a negation
	e, err = parse.Parse("!(a => b)")
	require.NoError(t, err)
	rws = All(e, Catalogue(), 15)
	want, err = parse.Parse("!(!a | b)")
	require.NoError(t, err)
	assert.True(t, hashes(rws)[want.Hash()], "rewrite under negation missing")
}

func TestAllOriginalUntouched(t *testing.T) {
	e, err := parse.Parse("!!a & b")
	require.NoError(t, err)
	before := e.Hash()
	All(e, Catalogue(), 15)
	assert.Equal(t, before, e.Hash(), "driver mutated its input")
}

// without the length budget the expansive rules would grow expressions
// forever; the driver must filter oversized results
func TestAllLengthBudget(t *testing.T) {
	e, err := parse.Parse("a")
	require.NoError(t, err)
	rws := All(e, Catalogue(), 1)
	assert.Empty(t, rws, "expansive results above the budget survived")

	rws = All(e, Catalogue(), 3)
	require.NotEmpty(t, rws)
	for _, rw := range rws {
		assert.LessOrEqual(t, rw.Expr.Size(), 3)
	}

	// the subexpression budget accounts for the fixed remainder of the tree
	e, err = parse.Parse("a & b")
	require.NoError(t, err)
	for _, rw := range All(e, Catalogue(), 5) {
		assert.LessOrEqual(t, rw.Expr.Size(), 5, "%s via %s", rw.Expr, rw.Rule.Name())
	}
}

func TestAllDeterministic(t *testing.T) {
	e, err := parse.Parse("(a => b) & !!c")
	require.NoError(t, err)
	first := All(e, Catalogue(), 15)
	second := All(e, Catalogue(), 15)
	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Rule.Name(), second[i].Rule.Name())
		assert.True(t, ir.Equal(first[i].Expr, second[i].Expr))
	}
}

func TestAllCitesRules(t *testing.T) {
	e, err := parse.Parse("a | !a")
	require.NoError(t, err)
	found := false
	for _, rw := range All(e, Catalogue(), 15) {
		if rw.Expr.Type == ir.TrueType && rw.Rule.Category() == LEM {
			found = true
		}
	}
	assert.True(t, found, "excluded middle not enumerated")
}
