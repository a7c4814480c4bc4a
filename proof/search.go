package proof

import (
	"context"

	"github.com/matteo-psnt/proof-generator/debug"
	"github.com/matteo-psnt/proof-generator/ir"
	"github.com/matteo-psnt/proof-generator/rewrite"
)

// node is an arena entry; parent indexes the arena and is -1 at the root.
// Parents always precede children, so reconstruction cannot cycle.
type node struct {
	expr   *ir.Node
	parent int
	rule   rewrite.Rule
	depth  int
}

// Search looks for a rewrite sequence carrying from into to. The search is
// breadth-first with unit edge costs and hash deduplication, so a found
// proof has the minimum number of rule applications reachable within the
// budgets. Cancellation is observed between expansions and yields
// Cancelled=true with the statistics so far; no partial proof is emitted.
func Search(ctx context.Context, from, to *ir.Node, opts ...SearchOption) *Result {
	o := newSearchOpts(opts)
	if ir.Equal(from, to) {
		return &Result{
			Found: true,
			Steps: []Step{{Expr: from.Clone()}},
		}
	}
	nodes := []node{{expr: from.Clone(), parent: -1}}
	queue := []int{0}
	visited := map[string]bool{from.Hash(): true}
	explored := 0
	deepest := 0
	for len(queue) > 0 {
		if ctx.Err() != nil {
			return &Result{
				Cancelled:      true,
				SearchDepth:    deepest,
				StatesExplored: explored,
			}
		}
		if explored >= o.maxStates {
			if debug.Search() {
				debug.Logf("search: state budget %d exhausted\n", o.maxStates)
			}
			return &Result{
				SearchDepth:    deepest,
				StatesExplored: explored,
			}
		}
		cur := queue[0]
		queue = queue[1:]
		explored++
		curExpr, curDepth := nodes[cur].expr, nodes[cur].depth
		if curDepth >= o.maxDepth {
			continue
		}
		if curDepth > deepest {
			deepest = curDepth
		}
		for _, rw := range rewrite.All(curExpr, o.rules, o.maxExprLen) {
			h := rw.Expr.Hash()
			if visited[h] {
				continue
			}
			visited[h] = true
			nodes = append(nodes, node{
				expr:   rw.Expr,
				parent: cur,
				rule:   rw.Rule,
				depth:  curDepth + 1,
			})
			idx := len(nodes) - 1
			if ir.Equal(rw.Expr, to) {
				return &Result{
					Found:          true,
					Steps:          reconstruct(nodes, idx),
					SearchDepth:    nodes[idx].depth,
					StatesExplored: explored,
				}
			}
			queue = append(queue, idx)
		}
		if o.progress != nil && explored%progressInterval == 0 {
			o.progress(explored, curDepth)
		}
	}
	if debug.Search() {
		debug.Logf("search: frontier exhausted after %d states\n", explored)
	}
	return &Result{
		SearchDepth:    deepest,
		StatesExplored: explored,
	}
}

// reconstruct walks parent pointers once, from the goal back to the root.
func reconstruct(nodes []node, goal int) []Step {
	var steps []Step
	for i := goal; i >= 0; i = nodes[i].parent {
		steps = append(steps, Step{Expr: nodes[i].expr, Rule: nodes[i].rule})
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return steps
}
