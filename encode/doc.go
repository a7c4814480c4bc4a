// Package encode renders proofs, expressions and truth tables as text.
//
// # Usage
//
//	// Write a proof
//	err := encode.Proof(result, os.Stdout)
//
//	// Write with specific options
//	err := encode.Proof(result, os.Stdout,
//		encode.WithFormat(format.UnicodeFormat),
//		encode.WithColor(encode.NewColors().Func()))
//
// # Related Packages
//
//   - github.com/matteo-psnt/proof-generator/proof - Proof search
//   - github.com/matteo-psnt/proof-generator/eval - Truth tables
package encode
