package server

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/ccg/category"
	"github.com/npillmayer/ccg/chart"
	"github.com/npillmayer/ccg/grammar"
	"github.com/npillmayer/ccg/lexicon"
	"github.com/npillmayer/ccg/scanner"
	"github.com/prometheus/client_golang/prometheus"
)

// ErrTooLong is returned for sentences exceeding the configured maximum
// number of words.
var ErrTooLong = errors.New("sentence too long")

// Result is the outcome of parsing a sentence.
type Result struct {
	Sentence    string        `json:"sentence"`
	Words       []string      `json:"words"`
	Categories  []string      `json:"categories"`            // every derivation's category, in chart order
	Distinct    []string      `json:"distinct"`              // categories equal up to variable renaming merged
	Derivations []*Derivation `json:"derivations,omitempty"` // one per category
}

// Accepted is a predicate: has the sentence been derived as an atomic
// category of type typ, like S or S[form=finite]?
func (r *Result) Accepted(typ string) bool {
	for _, c := range r.Distinct {
		if c == typ || strings.HasPrefix(c, typ+"[") {
			return true
		}
	}
	return false
}

// Derivation is a node of a derivation tree.
type Derivation struct {
	Category string        `json:"category"`
	Rule     string        `json:"rule"`
	From     int           `json:"from"`
	To       int           `json:"to"`
	Word     string        `json:"word,omitempty"` // for terminals
	Children []*Derivation `json:"children,omitempty"`
}

// Walk visits d and its children, depth first.
func (d *Derivation) Walk(f func(*Derivation, int)) {
	d.walk(f, 0)
}

func (d *Derivation) walk(f func(*Derivation, int), depth int) {
	f(d, depth)
	for _, ch := range d.Children {
		ch.walk(f, depth+1)
	}
}

// Engine parses sentences with the grammar of a lexicon.
// An engine is safe for concurrent use.
type Engine struct {
	lexicon   *lexicon.File
	parse     func(words []string, opts ...chart.Option) *Result
	maxTokens int
	workers   int
	registry  *prometheus.Registry
	metrics   *chart.Metrics
}

// Option configures an engine.
type Option func(*Engine)

// MaxTokens limits the number of words of a sentence. 0 means no limit.
func MaxTokens(n int) Option {
	return func(e *Engine) {
		e.maxTokens = n
	}
}

// Workers sets the number of goroutines filling the chart.
func Workers(n int) Option {
	return func(e *Engine) {
		e.workers = n
	}
}

// NewEngine creates an engine for a lexicon.
func NewEngine(lex *lexicon.File, opts ...Option) (*Engine, error) {
	e := &Engine{lexicon: lex, workers: 1}
	for _, opt := range opts {
		opt(e)
	}
	e.registry = prometheus.NewRegistry()
	e.metrics = chart.NewMetrics(e.registry)
	switch lex.Payload {
	case lexicon.Labels:
		g, err := lex.LabelGrammar()
		if err != nil {
			return nil, err
		}
		e.parse = parser(g, (*grammar.LabelCategory).String, func(cats []*grammar.LabelCategory) []*grammar.LabelCategory {
			return grammar.Distinct(cats, func(s string) string { return s })
		})
	default:
		g, err := lex.FeatureGrammar()
		if err != nil {
			return nil, err
		}
		e.parse = parser(g, func(c *grammar.FeatureCategory) string {
			return grammar.Canonical(c).String()
		}, grammar.DistinctFeatures)
	}
	return e, nil
}

// Lexicon returns the lexicon of an engine.
func (e *Engine) Lexicon() *lexicon.File {
	return e.lexicon
}

// Registry returns the registry for the engine's metrics.
func (e *Engine) Registry() *prometheus.Registry {
	return e.registry
}

// Parse parses a sentence. Unknown words or ungrammatical sentences are not
// errors, but result in an empty list of categories.
func (e *Engine) Parse(ctx context.Context, sentence string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	words := scanner.Words(sentence)
	if e.maxTokens > 0 && len(words) > e.maxTokens {
		return nil, fmt.Errorf("%w: %d words, maximum is %d", ErrTooLong, len(words), e.maxTokens)
	}
	r := e.parse(words, chart.Parallel(e.workers), chart.WithMetrics(e.metrics))
	r.Sentence = sentence
	tracer().Infof("%q: %d derivations", sentence, len(r.Categories))
	return r, nil
}

// parser creates a parse function for a grammar.
func parser[P, E any](g *grammar.CCG[P, E], render func(*category.Category[P]) string,
	distinct func([]*category.Category[P]) []*category.Category[P]) func([]string, ...chart.Option) *Result {
	//
	return func(words []string, opts ...chart.Option) *Result {
		r := &Result{Words: words, Categories: []string{}, Distinct: []string{}}
		if len(words) == 0 {
			return r
		}
		c := chart.Build(words, g, opts...)
		for _, edge := range c.Derivations() {
			r.Categories = append(r.Categories, render(edge.Value))
			r.Derivations = append(r.Derivations, derivation(edge, words, render))
		}
		for _, cat := range distinct(c.Result()) {
			r.Distinct = append(r.Distinct, render(cat))
		}
		return r
	}
}

func derivation[T any](edge *chart.Edge[T], words []string, render func(T) string) *Derivation {
	d := &Derivation{
		Category: render(edge.Value),
		Rule:     edge.Rule,
		From:     int(edge.Span.From()),
		To:       int(edge.Span.To()),
	}
	if edge.IsTerminal() {
		d.Word = words[d.From]
		return d
	}
	d.Children = []*Derivation{
		derivation(edge.Left, words, render),
		derivation(edge.Right, words, render),
	}
	return d
}
