package token

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/matteo-psnt/proof-generator/debug"
)

var ErrBadIdent = errors.New("bad identifier")

// symbol synonyms ordered longest first so that, for example, "<->" is never
// partially consumed as "->".
var symbols = []struct {
	lit string
	typ TokenType
}{
	{"<=>", TIff},
	{"<->", TIff},
	{"↔", TIff},
	{"=>", TImp},
	{"->", TImp},
	{"→", TImp},
	{"&&", TAnd},
	{"∧", TAnd},
	{"||", TOr},
	{"∨", TOr},
	{"¬", TNot},
	{"&", TAnd},
	{"^", TAnd},
	{"*", TAnd},
	{"|", TOr},
	{"+", TOr},
	{"~", TNot},
	{"!", TNot},
	{"(", TLParen},
	{")", TRParen},
}

// canonical lexemes per token type
var canon = map[TokenType]string{
	TNot:    "!",
	TAnd:    "&",
	TOr:     "|",
	TImp:    "=>",
	TIff:    "<=>",
	TLParen: "(",
	TRParen: ")",
	TTrue:   "true",
	TFalse:  "false",
}

// Tokenize scans src into a flat stream of canonical tokens, appending to
// dst. Empty input yields an empty stream without error.
func Tokenize(dst []Token, src string) ([]Token, error) {
	i, n := 0, len(src)
Scan:
	for i < n {
		c := src[i]
		if c == ' ' || c == '\t' || c == '\r' || c == '\n' {
			i++
			continue
		}
		for _, sym := range symbols {
			if strings.HasPrefix(src[i:], sym.lit) {
				dst = append(dst, Token{
					Type: sym.typ,
					Pos:  Pos{Offset: i},
					Text: canon[sym.typ],
				})
				i += len(sym.lit)
				continue Scan
			}
		}
		if isWordByte(c) {
			j := i + 1
			for j < n && isWordByte(src[j]) {
				j++
			}
			word := src[i:j]
			tok, err := scanWord(word, Pos{Offset: i})
			if err != nil {
				return nil, err
			}
			dst = append(dst, *tok)
			i = j
			continue
		}
		r, w := utf8.DecodeRuneInString(src[i:])
		if unicode.IsSpace(r) {
			i += w
			continue
		}
		return nil, UnexpectedErr(fmt.Sprintf("character %q", r), Pos{Offset: i})
	}
	if debug.Token() {
		debug.Logf("tokenized %q into %d tokens\n", src, len(dst))
	}
	return dst, nil
}

func scanWord(word string, pos Pos) (*Token, error) {
	if t, ok := wordType(word); ok {
		return &Token{Type: t, Pos: pos, Text: canon[t]}, nil
	}
	if !isIdent(word) {
		return nil, NewTokenizeErr(fmt.Errorf("%w: %q", ErrBadIdent, word), pos)
	}
	return &Token{Type: TIdent, Pos: pos, Text: word}, nil
}

func isWordByte(c byte) bool {
	return c == '_' ||
		c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9'
}

// isIdent reports whether word matches [A-Za-z][A-Za-z0-9_]*.
func isIdent(word string) bool {
	if word == "" {
		return false
	}
	c := word[0]
	if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z') {
		return false
	}
	for i := 1; i < len(word); i++ {
		if !isWordByte(word[i]) {
			return false
		}
	}
	return true
}
