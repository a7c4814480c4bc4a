package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/matteo-psnt/proof-generator/eval"
)

// Table writes the rendered truth table: a "a | b | Result" header, a
// dashed separator, then one row per assignment with T/F cells (or
// true/false under WithWords).
func Table(t *eval.Table, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	cols := append(append([]string{}, t.Vars...), "Result")
	header := strings.Join(cols, " | ")
	if _, err := fmt.Fprintln(w, es.color(HeaderCellColor, header)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", len(header))); err != nil {
		return err
	}
	for i := range t.Rows {
		row := &t.Rows[i]
		cells := make([]string, 0, len(cols))
		for _, name := range t.Vars {
			cells = append(cells, es.cell(row.Assignment[name]))
		}
		cells = append(cells, es.cell(row.Result))
		if _, err := fmt.Fprintln(w, strings.Join(cells, " | ")); err != nil {
			return err
		}
	}
	return nil
}

func (es *EncState) cell(v bool) string {
	var s string
	switch {
	case es.words && v:
		s = "true"
	case es.words:
		s = "false"
	case v:
		s = "T"
	default:
		s = "F"
	}
	if v {
		return es.color(TrueCellColor, s)
	}
	return es.color(FalseCellColor, s)
}

// CSV writes the truth table as comma-separated 0/1 values with LF line
// endings.
func CSV(t *eval.Table, w io.Writer) error {
	cols := append(append([]string{}, t.Vars...), "Result")
	if _, err := fmt.Fprintf(w, "%s\n", strings.Join(cols, ",")); err != nil {
		return err
	}
	for i := range t.Rows {
		row := &t.Rows[i]
		cells := make([]string, 0, len(cols))
		for _, name := range t.Vars {
			cells = append(cells, bit(row.Assignment[name]))
		}
		cells = append(cells, bit(row.Result))
		if _, err := fmt.Fprintf(w, "%s\n", strings.Join(cells, ",")); err != nil {
			return err
		}
	}
	return nil
}

func bit(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
