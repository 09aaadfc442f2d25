/*
Package chart implements a grammar-agnostic CYK chart parser.

The parser is generic over the type of categories. It needs a grammar which
provides categories for terminals (words) and is able to combine two adjacent
categories:

    type Grammar[T any] interface {
        TerminalCategories(word string) []T
        Combine(left, right T) []T
    }

The chart is a triangular table, indexed by span length and start position.
Cells for spans of length 1 are seeded from the grammar's terminal categories.
Longer spans are computed from every split point and every pair of categories
of the two sub-spans, bottom-up, so every cell depends only on strictly shorter
spans. Results are collected in order of derivation, without de-duplication.

    results := chart.Parse(strings.Fields("John sees Mary"), g)

Clients interested in derivations build the complete chart and walk the
edges of the top cell, which link back to the edges they were combined from:

    c := chart.Build(tokens, g)
    for _, edge := range c.Derivations() { … }

Complexity is O(n³·k²) for n tokens and k categories per cell. There is no
cancellation; clients wanting bounded latency have to restrict the input
length. Cells of equal span length are independent of each other and may be
computed concurrently (option Parallel), with a barrier between span lengths.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package chart

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ccg.chart'.
func tracer() tracing.Trace {
	return tracing.Select("ccg.chart")
}
