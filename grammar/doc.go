/*
Package grammar implements Combinatory Categorial Grammars.

A CCG consists of a lexicon, assigning categories to words, and a fixed set of
combinators. This package implements forward and backward application and
forward and backward composition:

    X/Y   Y     ⇒  X       (>)
    Y     X\Y   ⇒  X       (<)
    X/Y   Y/Z   ⇒  X/Z     (>B)
    Y\Z   X\Y   ⇒  X\Z     (<B)

Matching of the Y parts is done by unification of categories: complex categories
have to agree in direction and their arguments and results have to unify;
atomic categories delegate to a payload unifier. Payloads may be plain labels
(see Labels) or feature structures (see package feature).

Each combinator attempt starts from an empty environment. On success, the
resulting substitution is applied to the result category before it is handed
out, so categories never carry pending bindings.

Lexical categories are templates. Every lookup renames their variables apart,
so that two occurrences of a word in a sentence never share variables.

Grammars implement the chart.Grammar interface and may be used with package
chart:

    lex := grammar.NewLexicon[string]()
    lex.Add("John", category.Atomic("NP"))
    …
    g := grammar.NewLabelGrammar(lex)
    results := chart.Parse(tokens, g)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ccg.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("ccg.grammar")
}
