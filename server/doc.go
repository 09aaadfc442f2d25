/*
Package server parses sentences for a lexicon and exposes the parser as an
HTTP JSON API.

An Engine combines a lexicon with a chart parser. Sentences are split into
words at white space; results are the categories for the complete sentence,
together with their derivation trees. Engines are used by the command line
tools as well as by the HTTP handler.

	POST /parse      {"sentence": "John sees Mary"}
	GET  /lexicon    the entries of the lexicon
	GET  /metrics    Prometheus metrics of the chart parser
	GET  /healthz

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package server

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ccg.server'.
func tracer() tracing.Trace {
	return tracing.Select("ccg.server")
}
