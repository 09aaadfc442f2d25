/*
Command ccg parses sentences with combinatory categorial grammars.

	ccg parse --lexicon english "I must see him"
	ccg repl --lexicon plain
	ccg serve --addr :8080
	ccg lexicon --lexicon agreement

Lexicons are either built-in (plain, agreement, english) or YAML files.
Settings may be given as flags or in a YAML configuration file (--config):

	lexicon: english
	max-tokens: 40
	workers: 4
	trace: Info
	addr: ":8080"

Flags override settings from the configuration file.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ccg.cli'.
func tracer() tracing.Trace {
	return tracing.Select("ccg.cli")
}
