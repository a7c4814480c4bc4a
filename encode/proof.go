package encode

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/matteo-psnt/proof-generator/proof"
)

var ErrNoProof = errors.New("no proof to encode")

// Proof writes the human-readable proof text: a "S  <->  T" header, then
// numbered steps, each step after the first annotated with the category of
// the rule that produced it, column-aligned past the longest step.
func Proof(res *proof.Result, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	if !res.Found || len(res.Steps) == 0 {
		return ErrNoProof
	}
	steps := res.Steps
	first := es.expr(steps[0].Expr)
	last := es.expr(steps[len(steps)-1].Expr)
	header := fmt.Sprintf("%s  <->  %s", first, last)
	if _, err := fmt.Fprintf(w, "%s\n\n", es.color(HeaderColor, header)); err != nil {
		return err
	}
	prefixes := make([]string, len(steps))
	width := 0
	for i := range steps {
		prefixes[i] = fmt.Sprintf("%d) %s", i+1, es.expr(steps[i].Expr))
		if len(prefixes[i]) > width {
			width = len(prefixes[i])
		}
	}
	for i := range steps {
		line := es.stepLine(steps, prefixes, i, width)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func (es *EncState) stepLine(steps []proof.Step, prefixes []string, i, width int) string {
	prefix := prefixes[i]
	pad := strings.Repeat(" ", width-len(prefix)+3)
	body := prefix
	if es.Color != nil {
		num := fmt.Sprintf("%d)", i+1)
		expr := prefix[len(num)+1:]
		if es.diff && i > 0 {
			expr = es.highlightChange(es.expr(steps[i-1].Expr), expr)
		}
		body = es.color(StepNumColor, num) + " " + expr
	}
	if i == 0 {
		return body
	}
	annot := "by " + string(steps[i].Rule.Category())
	return body + pad + es.color(RuleColor, annot)
}
