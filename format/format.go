package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	ASCIIFormat Format = iota
	UnicodeFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"a":       ASCIIFormat,
		"ascii":   ASCIIFormat,
		"u":       UnicodeFormat,
		"unicode": UnicodeFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case ASCIIFormat:
		return []byte("ascii"), nil
	case UnicodeFormat:
		return []byte("unicode"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsASCII() bool   { return f == ASCIIFormat }
func (f Format) IsUnicode() bool { return f == UnicodeFormat }

// Symbols holds the connective spellings of a notation.
type Symbols struct {
	Not, And, Or, Imp, Iff string
	True, False            string
}

func (f Format) Symbols() *Symbols {
	switch f {
	case UnicodeFormat:
		return &Symbols{
			Not:   "¬",
			And:   "∧",
			Or:    "∨",
			Imp:   "→",
			Iff:   "↔",
			True:  "true",
			False: "false",
		}
	default:
		return &Symbols{
			Not:   "!",
			And:   "&",
			Or:    "|",
			Imp:   "=>",
			Iff:   "<=>",
			True:  "true",
			False: "false",
		}
	}
}
