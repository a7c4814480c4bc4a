// Package proof searches for rewrite sequences carrying one expression into
// another, by breadth-first search over the expression state space with
// structural-hash deduplication.
package proof

import (
	"github.com/matteo-psnt/proof-generator/ir"
	"github.com/matteo-psnt/proof-generator/rewrite"
)

// Step is one line of a proof. Rule is nil on the first step and cites the
// rule whose application produced the step's expression afterwards.
type Step struct {
	Expr *ir.Node
	Rule rewrite.Rule
}

// Result distinguishes found from not found from cancelled; no outcome is
// an error. Statistics are filled in all three cases.
type Result struct {
	Found     bool
	Cancelled bool

	// Steps is the proof when Found, nil otherwise.
	Steps []Step

	// SearchDepth is the goal depth when Found, else the deepest level
	// actually expanded.
	SearchDepth int

	// StatesExplored counts dequeued states.
	StatesExplored int
}
