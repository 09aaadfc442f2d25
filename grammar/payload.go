package grammar

import (
	"github.com/cnf/structhash"
	"github.com/npillmayer/ccg/category"
	"github.com/npillmayer/ccg/feature"
)

// Category types for the two kinds of payload supported out of the box.
type (
	LabelCategory   = category.Category[string]
	FeatureCategory = category.Category[*feature.Struct]
)

// --- Plain labels ----------------------------------------------------------

// Labels is a unifier for plain label payloads: labels unify if they are
// identical. There are no variables, and environments carry no information.
type Labels struct{}

// NewEnv is part of interface Unifier.
func (Labels) NewEnv() struct{} { return struct{}{} }

// Unify is part of interface Unifier.
func (Labels) Unify(a, b string, env struct{}) (struct{}, bool) { return env, a == b }

// Apply is part of interface Unifier.
func (Labels) Apply(p string, _ struct{}) string { return p }

// Renamer is part of interface Unifier.
func (Labels) Renamer() func(string) string {
	return func(p string) string { return p }
}

// NewLabelGrammar creates a grammar over plain label categories.
func NewLabelGrammar(lex *Lexicon[string], opts ...Option) *CCG[string, struct{}] {
	return New[string, struct{}](lex, Labels{}, opts...)
}

// --- Feature structures ----------------------------------------------------

var _ Unifier[*feature.Struct, feature.Env] = (*feature.Unifier)(nil)

// NewFeatureGrammar creates a grammar over categories with feature structure
// payloads. If u is nil, a unifier with default settings is used.
func NewFeatureGrammar(lex *Lexicon[*feature.Struct], u *feature.Unifier, opts ...Option) *CCG[*feature.Struct, feature.Env] {
	if u == nil {
		u = feature.NewUnifier()
	}
	return New[*feature.Struct, feature.Env](lex, u, opts...)
}

// Canonical renames the variables of a feature category in order of
// appearance, dropping display names. Categories equal up to renaming of
// variables have identical canonical forms.
func Canonical(c *FeatureCategory) *FeatureCategory {
	r := feature.NewCanonicalRenaming()
	return category.Map(c, func(s *feature.Struct) *feature.Struct {
		return r.Refresh(s).(*feature.Struct)
	})
}

// --- De-duplication --------------------------------------------------------

// node mirrors the structure of a category for fingerprinting.
type node struct {
	Dir      int8
	Payload  string
	Children []node // result and argument
}

func mirror[P any](c *category.Category[P], f func(P) string) node {
	if c.IsAtomic() {
		return node{Payload: f(c.Payload())}
	}
	return node{
		Dir:      int8(c.Dir()),
		Children: []node{mirror(c.Result(), f), mirror(c.Argument(), f)},
	}
}

// Fingerprint returns a hash of the structure of a category, rendering
// payloads with f.
func Fingerprint[P any](c *category.Category[P], f func(P) string) string {
	h, err := structhash.Hash(mirror(c, f), 1)
	if err != nil { // cannot happen for type node
		tracer().Errorf("cannot fingerprint category %v: %v", c, err)
		return category.Format(c, f)
	}
	return h
}

// Distinct removes duplicates from a list of categories, keeping the first
// occurrence. Payloads are compared by their rendering through f.
// Parsers do not de-duplicate; this is for clients presenting results.
func Distinct[P any](cats []*category.Category[P], f func(P) string) []*category.Category[P] {
	seen := map[string]bool{}
	var unique []*category.Category[P]
	for _, c := range cats {
		fp := Fingerprint(c, f)
		if seen[fp] {
			continue
		}
		seen[fp] = true
		unique = append(unique, c)
	}
	return unique
}

// DistinctFeatures removes feature categories which are equal up to renaming
// of variables.
func DistinctFeatures(cats []*FeatureCategory) []*FeatureCategory {
	seen := map[string]bool{}
	var unique []*FeatureCategory
	for _, c := range cats {
		fp := Fingerprint(Canonical(c), (*feature.Struct).String)
		if !seen[fp] {
			seen[fp] = true
			unique = append(unique, c)
		}
	}
	return unique
}
