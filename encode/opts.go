package encode

import "github.com/matteo-psnt/proof-generator/format"

type EncState struct {
	format format.Format
	words  bool
	diff   bool

	Color func(class ColorClass, s string) string
}

type EncodeOption func(*EncState)

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// WithFormat selects the output notation for expressions.
func WithFormat(f format.Format) EncodeOption {
	return func(es *EncState) {
		es.format = f
	}
}

// WithWords renders truth-table cells as true/false instead of T/F.
func WithWords(words bool) EncodeOption {
	return func(es *EncState) {
		es.words = words
	}
}

// WithColor installs a coloring function; nil leaves output plain.
func WithColor(f func(class ColorClass, s string) string) EncodeOption {
	return func(es *EncState) {
		es.Color = f
	}
}

// WithDiff highlights, in each proof step, the span that changed relative
// to the previous step. Only visible under a coloring function.
func WithDiff(diff bool) EncodeOption {
	return func(es *EncState) {
		es.diff = diff
	}
}

func (es *EncState) color(class ColorClass, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(class, s)
}
