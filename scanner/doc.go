/*
Package scanner defines an interface for scanners to be used with the parsers of
this module, and an adapter for lexmachine.

A lexmachine DFA is compiled from a list of patterns. Each pattern names a
regular expression and a token type; literals use their code point as token
type. Patterns may skip their matches or decode a lexeme into the token's value.

	lx, err := scanner.NewLexer(
		scanner.Pattern{Regex: `[A-Za-z]+`, Type: scanner.Ident},
		scanner.Pattern{Regex: `[0-9]+`, Type: scanner.Float, Decode: parseNumber},
		scanner.Literal("/"),
		scanner.Blank(),
	)

NewLexer will return an error if compiling the DFA failed.
A scanner is instantiated for each concrete input sequence. Tokens are read
until EOF. Input which cannot be tokenized is reported as *scanner.Error to the
scanner's error handler and skipped.

	scan, err := lx.Scanner(`(S\NP)/NP`)
	for token := scan.NextToken(); token.TokType() != scanner.EOF; token = scan.NextToken() {
		…
	}

Sentences are split into words by Words, which splits at white space.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'ccg.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("ccg.scanner")
}
