/*
Package notation parses categories from their textual notation.

Slashes are left-associative and parentheses group. Atomic categories may
carry a feature structure, with variables written as `?name`:

	(S[form=finite]\NP[case=nom,num=?n])/NP[case=acc]

Feature values are atoms (identifiers, numbers, quoted strings, true and
false), variables, nested structures with an optional type tag, and lists
in angle brackets:

	NP[agr=agr[num=sg,per=3],tags=<a,"b c">]

ParseFeatures creates categories with feature structure payloads, ParseLabel
creates categories with plain label payloads and rejects feature structures.
Syntax errors are reported as *SyntaxError, carrying the position of the
offending token.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package notation

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ccg.notation'.
func tracer() tracing.Trace {
	return tracing.Select("ccg.notation")
}
