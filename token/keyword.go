package token

import "strings"

// connective and constant word synonyms; whole-word, case-insensitive
var wordTypes = map[string]TokenType{
	"and":     TAnd,
	"or":      TOr,
	"not":     TNot,
	"imp":     TImp,
	"implies": TImp,
	"iff":     TIff,
	"equiv":   TIff,
	"true":    TTrue,
	"false":   TFalse,
}

// single-character synonyms; recognized only as whole words, case-sensitive
var charWordTypes = map[string]TokenType{
	"v": TOr,
	"T": TTrue,
	"t": TTrue,
	"1": TTrue,
	"F": TFalse,
	"f": TFalse,
	"0": TFalse,
}

// Reserved reports whether name is a keyword synonym and therefore
// unavailable as a variable name.
func Reserved(name string) bool {
	if _, ok := wordTypes[strings.ToLower(name)]; ok {
		return true
	}
	_, ok := charWordTypes[name]
	return ok
}

// wordType classifies a whole word, returning its token type and whether the
// word is a connective or constant synonym.
func wordType(word string) (TokenType, bool) {
	if t, ok := charWordTypes[word]; ok {
		return t, true
	}
	t, ok := wordTypes[strings.ToLower(word)]
	return t, ok
}
