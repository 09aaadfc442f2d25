/*
Package lexicon reads lexicons from YAML files and creates grammars for them.

A lexicon file has a small header and a list of entries, mapping words to
categories in their textual notation (see package notation). The order of
entries is preserved.

	name: english
	payload: features        # features | labels
	policy: open             # open | closed
	types:                   # optional type hierarchy: type → parents
	  NP: [nominal]
	entries:
	  I: ["NP[case=nom,num=sg]"]
	  likes: ['(S[form=finite]\NP[case=nom,num=sg])/NP[case=acc]']

A couple of lexicons are compiled into the package and available by name
(see Builtin).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexicon

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ccg.lexicon'.
func tracer() tracing.Trace {
	return tracing.Select("ccg.lexicon")
}
