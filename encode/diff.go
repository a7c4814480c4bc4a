package encode

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// highlightChange colors the spans of cur that are absent from prev.
func (es *EncState) highlightChange(prev, cur string) string {
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(prev, cur, false)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	var out []byte
	for i := range diffs {
		d := &diffs[i]
		switch d.Type {
		case diffpatch.DiffEqual:
			out = append(out, d.Text...)
		case diffpatch.DiffInsert:
			out = append(out, es.color(ChangedColor, d.Text)...)
		case diffpatch.DiffDelete:
		}
	}
	return string(out)
}
