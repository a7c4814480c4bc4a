// Package format defines the output notations for rendering boolean
// expressions.
//
// # Usage
//
//	f, err := format.ParseFormat("unicode")
//	sym := f.Symbols()
//
// The ASCII notation matches the canonical expression syntax accepted by the
// parser; the Unicode notation renders the usual logic glyphs.
//
// # Related Packages
//
//   - github.com/matteo-psnt/proof-generator/parse - Parse text to IR
//   - github.com/matteo-psnt/proof-generator/encode - Encode IR to text
package format
