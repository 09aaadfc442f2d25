/*
Package ccg is a toolbox for parsing with Combinatory Categorial Grammar.

CCG is a lexicalized grammar formalism: words carry directional,
function-like categories, which are combined by a small set of combinators.
This module implements a bottom-up CYK chart parser over such categories,
where atomic categories may carry feature structures resolved by first-order
unification. Package structure is as follows:

■ feature: Package feature implements feature values, feature structures and
logic variables, together with a unification engine (substitutions,
occurs-check, standardizing apart).

■ category: Package category implements atomic and directional complex
categories, generic over their payload.

■ grammar: Package grammar implements the CCG combinators (application and
composition in both directions) and lexicons.

■ chart: Package chart implements a grammar-agnostic CYK chart parser.

■ cfg: Package cfg implements binary context-free grammars for the same chart parser.

■ scanner, notation, lexicon: Reading categories and lexicons from text.

■ server: Package server wraps a lexicon and the chart parser into an engine
and an HTTP API. Command ccg (in cmd/ccg) is the command line front end.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ccg
