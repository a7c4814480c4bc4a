package eval

import (
	"slices"

	"github.com/matteo-psnt/proof-generator/ir"
)

// Equivalent reports whether e1 and e2 agree under every assignment over the
// union of their variable alphabets. Any evaluation failure counts as
// non-equivalence. Cost is exponential in the union alphabet; SATEquivalent
// is the scale-out path.
func Equivalent(e1, e2 *ir.Node) bool {
	vars := UnionVars(e1, e2)
	k := len(vars)
	for i := 0; i < 1<<k; i++ {
		env := make(map[string]bool, k)
		for j, name := range vars {
			env[name] = (i>>(k-1-j))&1 == 1
		}
		v1, err := Eval(e1, env)
		if err != nil {
			return false
		}
		v2, err := Eval(e2, env)
		if err != nil {
			return false
		}
		if v1 != v2 {
			return false
		}
	}
	return true
}

// UnionVars returns the sorted union of the two variable alphabets.
func UnionVars(e1, e2 *ir.Node) []string {
	set := map[string]bool{}
	for _, v := range e1.Vars() {
		set[v] = true
	}
	for _, v := range e2.Vars() {
		set[v] = true
	}
	res := make([]string, 0, len(set))
	for v := range set {
		res = append(res, v)
	}
	slices.Sort(res)
	return res
}
