/*
Package cfg implements binary context-free grammars over plain symbols, to
be used with the chart parser. Words map to pre-terminal symbols and rules
combine two adjacent symbols into a left-hand side symbol:

	g := cfg.NewBuilder("toy").
		Word("John", "NP").Word("sees", "V").Word("Mary", "NP").
		Rule("S", "NP", "VP").
		Rule("VP", "V", "NP").
		Grammar()
	chart.Parse([]string{"John", "sees", "Mary"}, g)    // [S]

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cfg

import (
	"fmt"

	"github.com/npillmayer/ccg/chart"
	"golang.org/x/exp/slices"
)

// Grammar is a context-free grammar in binary form. It implements
// chart.LabelingGrammar, labeling derivations with the rule applied.
type Grammar struct {
	name  string
	words map[string][]string
	rules map[[2]string][]string
}

var _ chart.LabelingGrammar[string] = (*Grammar)(nil)

// Name returns the name of the grammar.
func (g *Grammar) Name() string {
	return g.name
}

// TerminalCategories is part of interface chart.Grammar.
func (g *Grammar) TerminalCategories(word string) []string {
	return g.words[word]
}

// Combine is part of interface chart.Grammar.
func (g *Grammar) Combine(left, right string) []string {
	return g.rules[[2]string{left, right}]
}

// CombineLabeled is part of interface chart.LabelingGrammar.
func (g *Grammar) CombineLabeled(left, right string) []chart.Labeled[string] {
	lhs := g.rules[[2]string{left, right}]
	if len(lhs) == 0 {
		return nil
	}
	labeled := make([]chart.Labeled[string], len(lhs))
	for i, sym := range lhs {
		labeled[i] = chart.Labeled[string]{
			Value: sym,
			Rule:  fmt.Sprintf("%s → %s %s", sym, left, right),
		}
	}
	return labeled
}

// Words returns the words of the grammar, sorted.
func (g *Grammar) Words() []string {
	words := make([]string, 0, len(g.words))
	for w := range g.words {
		words = append(words, w)
	}
	slices.Sort(words)
	return words
}

// Size returns the number of rules of the grammar.
func (g *Grammar) Size() int {
	n := 0
	for _, lhs := range g.rules {
		n += len(lhs)
	}
	return n
}

// --- Builder ---------------------------------------------------------------

// Builder is used to construct a grammar.
type Builder struct {
	g *Grammar
}

// NewBuilder creates a builder for a grammar with a given name.
func NewBuilder(name string) *Builder {
	return &Builder{g: &Grammar{
		name:  name,
		words: make(map[string][]string),
		rules: make(map[[2]string][]string),
	}}
}

// Word adds pre-terminal symbols for a word. Duplicates are ignored.
func (b *Builder) Word(word string, symbols ...string) *Builder {
	for _, sym := range symbols {
		if !slices.Contains(b.g.words[word], sym) {
			b.g.words[word] = append(b.g.words[word], sym)
		}
	}
	return b
}

// Rule adds a rule lhs → left right. Duplicates are ignored.
func (b *Builder) Rule(lhs, left, right string) *Builder {
	key := [2]string{left, right}
	if !slices.Contains(b.g.rules[key], lhs) {
		b.g.rules[key] = append(b.g.rules[key], lhs)
	}
	return b
}

// Grammar returns the grammar built. The builder must not be used afterwards.
func (b *Builder) Grammar() *Grammar {
	g := b.g
	b.g = nil
	return g
}

// Demo returns a toy grammar for sentences like "John sees a dog".
func Demo() *Grammar {
	return NewBuilder("demo").
		Word("John", "NP").
		Word("sees", "V").
		Word("Mary", "NP").
		Word("a", "Det").
		Word("dog", "N").
		Rule("S", "NP", "VP").
		Rule("VP", "V", "NP").
		Rule("NP", "Det", "N").
		Grammar()
}
