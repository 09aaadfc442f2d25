package chart

import (
	"time"

	"github.com/npillmayer/ccg"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// Grammar is the capability a chart parser needs from a grammar.
//
// TerminalCategories returns the categories of a word; unknown words have no
// categories. Combine returns the categories derivable from two adjacent
// categories; it returns an empty result if no rule applies.
type Grammar[T any] interface {
	TerminalCategories(word string) []T
	Combine(left, right T) []T
}

// Labeled is a category together with the name of the rule which derived it.
type Labeled[T any] struct {
	Value T
	Rule  string
}

// LabelingGrammar is a grammar which is able to tell which rule derived
// a category. If a grammar implements it, the chart's edges will carry rule
// labels.
type LabelingGrammar[T any] interface {
	Grammar[T]
	CombineLabeled(left, right T) []Labeled[T]
}

// LexRule is the rule label of edges for terminal categories.
const LexRule = "lex"

// Edge is an entry of a chart cell: a category for a span of the input,
// together with backpointers to the edges it has been derived from.
type Edge[T any] struct {
	Value T
	Rule  string   // rule which derived this edge
	Span  ccg.Span // input positions covered
	Left  *Edge[T] // nil for terminals
	Right *Edge[T] // nil for terminals
}

// IsTerminal is a predicate: has e been seeded from the lexicon?
func (e *Edge[T]) IsTerminal() bool {
	return e.Left == nil && e.Right == nil
}

// Walk visits e and all edges it has been derived from, depth first and left
// to right. f receives the depth of each edge, starting at 0.
func (e *Edge[T]) Walk(f func(*Edge[T], int)) {
	e.walk(f, 0)
}

func (e *Edge[T]) walk(f func(*Edge[T], int), depth int) {
	f(e, depth)
	if e.Left != nil {
		e.Left.walk(f, depth+1)
	}
	if e.Right != nil {
		e.Right.walk(f, depth+1)
	}
}

// Chart is a triangular CYK chart. Cells are indexed by span length and start
// position. A chart is complete once Build returns and is not changed afterwards.
type Chart[T any] struct {
	tokens []string
	cells  [][][]*Edge[T] // [length-1][start]
}

// Parse parses a sequence of tokens and returns all categories derivable
// for the complete input. An empty input has no categories.
func Parse[T any](tokens []string, g Grammar[T], opts ...Option) []T {
	if len(tokens) == 0 {
		return nil
	}
	return Build(tokens, g, opts...).Result()
}

// Build creates a chart for a sequence of tokens.
func Build[T any](tokens []string, g Grammar[T], opts ...Option) *Chart[T] {
	conf := &config{workers: 1}
	for _, opt := range opts {
		opt(conf)
	}
	n := len(tokens)
	c := &Chart[T]{tokens: slices.Clone(tokens)}
	if n == 0 {
		return c
	}
	started := time.Now()
	c.cells = make([][][]*Edge[T], n)
	for l := 0; l < n; l++ {
		c.cells[l] = make([][]*Edge[T], n-l)
	}
	for i, w := range tokens {
		cats := g.TerminalCategories(w)
		if len(cats) == 0 {
			tracer().Debugf("no categories for word '%s'", w)
		}
		cell := make([]*Edge[T], len(cats))
		for j, cat := range cats {
			cell[j] = &Edge[T]{Value: cat, Rule: LexRule, Span: ccg.MakeSpan(i, 1)}
		}
		c.cells[0][i] = cell
	}
	combine := combiner(g)
	var combinations int64
	for length := 2; length <= n; length++ {
		if conf.workers > 1 {
			var group errgroup.Group
			group.SetLimit(conf.workers)
			counts := make([]int64, n-length+1)
			for start := 0; start+length <= n; start++ {
				start := start
				group.Go(func() error {
					counts[start] = c.fill(start, length, combine)
					return nil
				})
			}
			_ = group.Wait() // barrier between span lengths
			for _, k := range counts {
				combinations += k
			}
		} else {
			for start := 0; start+length <= n; start++ {
				combinations += c.fill(start, length, combine)
			}
		}
	}
	tracer().Debugf("chart for %d tokens complete, %d combinations tried", n, combinations)
	if conf.metrics != nil {
		conf.metrics.observe(n, combinations, c.Size(), len(c.Edges(0, n)), time.Since(started))
	}
	return c
}

type combineFunc[T any] func(left, right T) []Labeled[T]

func combiner[T any](g Grammar[T]) combineFunc[T] {
	if lg, ok := g.(LabelingGrammar[T]); ok {
		return lg.CombineLabeled
	}
	return func(left, right T) []Labeled[T] {
		results := g.Combine(left, right)
		labeled := make([]Labeled[T], len(results))
		for i, r := range results {
			labeled[i] = Labeled[T]{Value: r}
		}
		return labeled
	}
}

// fill computes the cell for a span from all of its sub-spans. Returns the
// number of calls to combine.
func (c *Chart[T]) fill(start, length int, combine combineFunc[T]) int64 {
	var cell []*Edge[T]
	var count int64
	end := start + length
	for split := start + 1; split < end; split++ {
		lefts := c.cells[split-start-1][start]
		rights := c.cells[end-split-1][split]
		for _, l := range lefts {
			for _, r := range rights {
				count++
				for _, res := range combine(l.Value, r.Value) {
					cell = append(cell, &Edge[T]{
						Value: res.Value,
						Rule:  res.Rule,
						Span:  ccg.MakeSpan(start, length),
						Left:  l,
						Right: r,
					})
				}
			}
		}
	}
	c.cells[length-1][start] = cell
	return count
}

// Tokens returns the input tokens of a chart.
func (c *Chart[T]) Tokens() []string {
	return slices.Clone(c.tokens)
}

// Len returns the number of input tokens.
func (c *Chart[T]) Len() int {
	return len(c.tokens)
}

// Edges returns the edges of the cell for a span. Returns nil for spans outside
// of the chart.
func (c *Chart[T]) Edges(start, length int) []*Edge[T] {
	if length < 1 || start < 0 || start+length > len(c.tokens) {
		return nil
	}
	return c.cells[length-1][start]
}

// Cell returns the categories derived for a span.
func (c *Chart[T]) Cell(start, length int) []T {
	edges := c.Edges(start, length)
	if len(edges) == 0 {
		return nil
	}
	cats := make([]T, len(edges))
	for i, e := range edges {
		cats[i] = e.Value
	}
	return cats
}

// Result returns the categories derived for the complete input.
func (c *Chart[T]) Result() []T {
	return c.Cell(0, len(c.tokens))
}

// Derivations returns the edges of the top cell, i.e., the roots of all
// derivations for the complete input.
func (c *Chart[T]) Derivations() []*Edge[T] {
	return c.Edges(0, len(c.tokens))
}

// Size returns the total number of edges in the chart.
func (c *Chart[T]) Size() int {
	size := 0
	for _, row := range c.cells {
		for _, cell := range row {
			size += len(cell)
		}
	}
	return size
}

// Dump is a debugging helper, tracing all cells of the chart.
func (c *Chart[T]) Dump() {
	for l, row := range c.cells {
		tracer().Debugf("--- span length %2d ----------------------------------", l+1)
		for start, cell := range row {
			for _, e := range cell {
				tracer().Debugf("%s %-4s %v", e.Span, e.Rule, e.Value)
			}
			if len(cell) == 0 {
				tracer().Debugf("%s  –", ccg.MakeSpan(start, l+1))
			}
		}
	}
}

// --- Options ---------------------------------------------------------------

type config struct {
	workers int
	metrics *Metrics
}

// Option configures chart construction.
type Option func(*config)

// Parallel fills cells of equal span length using up to n goroutines.
// The grammar's Combine (or CombineLabeled) has to be safe for concurrent use.
func Parallel(n int) Option {
	return func(c *config) {
		if n < 1 {
			n = 1
		}
		c.workers = n
	}
}

// WithMetrics reports parse statistics to m.
func WithMetrics(m *Metrics) Option {
	return func(c *config) {
		c.metrics = m
	}
}
