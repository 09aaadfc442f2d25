package grammar

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/npillmayer/ccg/category"
)

// Lexicon maps words to categories. Both the words and the categories of
// each word keep their insertion order. Categories stored in a lexicon are
// templates, which are renamed apart when looked up by a grammar.
//
// A lexicon is safe for concurrent reads, but not for concurrent updates.
type Lexicon[P any] struct {
	entries *linkedhashmap.Map // word → []*category.Category[P]
}

// NewLexicon creates an empty lexicon.
func NewLexicon[P any]() *Lexicon[P] {
	return &Lexicon[P]{entries: linkedhashmap.New()}
}

// Add appends categories for a word. Returns the lexicon (for chaining).
func (lex *Lexicon[P]) Add(word string, cats ...*category.Category[P]) *Lexicon[P] {
	var existing []*category.Category[P]
	if v, found := lex.entries.Get(word); found {
		existing = v.([]*category.Category[P])
	}
	all := make([]*category.Category[P], 0, len(existing)+len(cats))
	all = append(all, existing...)
	all = append(all, cats...)
	lex.entries.Put(word, all)
	return lex
}

// Lookup returns the categories of a word, in insertion order, or nil if the
// word is unknown.
func (lex *Lexicon[P]) Lookup(word string) []*category.Category[P] {
	v, found := lex.entries.Get(word)
	if !found {
		return nil
	}
	return append([]*category.Category[P](nil), v.([]*category.Category[P])...)
}

// Contains is a predicate: does the lexicon know a word?
func (lex *Lexicon[P]) Contains(word string) bool {
	_, found := lex.entries.Get(word)
	return found
}

// Words returns all words of the lexicon, in insertion order.
func (lex *Lexicon[P]) Words() []string {
	keys := lex.entries.Keys()
	words := make([]string, len(keys))
	for i, k := range keys {
		words[i] = k.(string)
	}
	return words
}

// Size returns the number of words in the lexicon.
func (lex *Lexicon[P]) Size() int {
	return lex.entries.Size()
}

// Each calls f for every word of the lexicon, in insertion order.
func (lex *Lexicon[P]) Each(f func(word string, cats []*category.Category[P])) {
	it := lex.entries.Iterator()
	for it.Next() {
		f(it.Key().(string), it.Value().([]*category.Category[P]))
	}
}
