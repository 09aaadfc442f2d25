/*
Package feature implements feature values and a unification engine for them.

Feature values form a closed, recursive type: atomic scalars (strings,
numbers, booleans), typed feature structures, logic variables and lists of
values. Values are immutable once constructed. Variable bindings never change
a value in place; they are recorded in an environment (a substitution), which
is extended copy-on-write by unification:

    u := feature.NewUnifier()
    a := feature.NewStruct("NP", feature.Features{"num": feature.NewVar("x")})
    b := feature.NewStruct("NP", feature.Features{"num": feature.String("sg")})
    env, ok := u.Unify(a, b, u.NewEnv())    // ok == true, x ↦ sg
    c := u.Apply(a, env)                    // NP[num=sg]

Unification failure is a normal outcome and is reported as a boolean. Binding
a variable to a value containing that same variable is rejected (occurs-check).

Before a lexical category takes part in a derivation, its variables are
renamed to fresh ones ("standardizing apart", see Refresh), so that two
occurrences of the same word never share variables.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package feature

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ccg.feature'.
func tracer() tracing.Trace {
	return tracing.Select("ccg.feature")
}
