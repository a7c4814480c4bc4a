package proof

import "github.com/matteo-psnt/proof-generator/rewrite"

const (
	DefaultMaxDepth   = 15
	DefaultMaxStates  = 10000
	DefaultMaxExprLen = 15
)

// progressInterval is how many explored states pass between progress
// callbacks. Cancellation is checked on every dequeue.
const progressInterval = 100

type searchOpts struct {
	maxDepth   int
	maxStates  int
	maxExprLen int
	rules      []rewrite.Rule
	progress   func(statesExplored, depth int)
}

type SearchOption func(*searchOpts)

func newSearchOpts(opts []SearchOption) *searchOpts {
	o := &searchOpts{
		maxDepth:   DefaultMaxDepth,
		maxStates:  DefaultMaxStates,
		maxExprLen: DefaultMaxExprLen,
		rules:      rewrite.Catalogue(),
	}
	for _, f := range opts {
		f(o)
	}
	return o
}

// WithMaxDepth bounds the BFS depth; nodes at the bound are not expanded.
func WithMaxDepth(d int) SearchOption {
	return func(o *searchOpts) {
		o.maxDepth = d
	}
}

// WithMaxStates bounds how many states the search may dequeue.
func WithMaxStates(n int) SearchOption {
	return func(o *searchOpts) {
		o.maxStates = n
	}
}

// WithMaxExprLen bounds the size of intermediate expressions. The expansive
// rules make the state space infinite without it.
func WithMaxExprLen(n int) SearchOption {
	return func(o *searchOpts) {
		o.maxExprLen = n
	}
}

// WithRules replaces the full catalogue. Rule order fixes the tie-break
// among equally short proofs.
func WithRules(rules []rewrite.Rule) SearchOption {
	return func(o *searchOpts) {
		o.rules = rules
	}
}

// WithProgress installs a callback invoked every 100 explored states.
func WithProgress(f func(statesExplored, depth int)) SearchOption {
	return func(o *searchOpts) {
		o.progress = f
	}
}
