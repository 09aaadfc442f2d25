package grammar

import (
	"github.com/npillmayer/ccg/category"
	"github.com/npillmayer/ccg/chart"
)

// Unifier is the capability a CCG needs for the payloads of atomic
// categories, with P the payload type and E the type of environments
// (substitutions).
//
// Unify returns false if a and b do not unify; it must not modify env.
// Renamer returns a function renaming the variables of payloads apart; all
// payloads renamed by one such function share a renaming.
type Unifier[P, E any] interface {
	NewEnv() E
	Unify(a, b P, env E) (E, bool)
	Apply(p P, env E) P
	Renamer() func(P) P
}

// Rule is a CCG combinator.
type Rule int8

// The combinators, in the order they are tried.
const (
	ForwardApplication Rule = iota
	BackwardApplication
	ForwardComposition
	BackwardComposition
)

// AllRules lists every combinator, in the order they are tried.
var AllRules = []Rule{ForwardApplication, BackwardApplication, ForwardComposition, BackwardComposition}

func (r Rule) String() string {
	switch r {
	case ForwardApplication:
		return ">"
	case BackwardApplication:
		return "<"
	case ForwardComposition:
		return ">B"
	case BackwardComposition:
		return "<B"
	}
	return "?"
}

// CCG is a Combinatory Categorial Grammar with payload type P and
// environment type E. It implements chart.Grammar.
//
// Combine is safe for concurrent use if the unifier's Unify and Apply are.
type CCG[P, E any] struct {
	lexicon *Lexicon[P]
	unifier Unifier[P, E]
	rules   []Rule
}

// Option configures a CCG.
type Option func(*settings)

type settings struct {
	rules []Rule
}

// WithRules restricts a grammar to a set of combinators. They will be tried in
// the canonical order, regardless of the order given.
func WithRules(rules ...Rule) Option {
	return func(s *settings) {
		s.rules = rules
	}
}

// New creates a grammar from a lexicon and a payload unifier.
func New[P, E any](lexicon *Lexicon[P], unifier Unifier[P, E], opts ...Option) *CCG[P, E] {
	s := &settings{rules: AllRules}
	for _, opt := range opts {
		opt(s)
	}
	g := &CCG[P, E]{lexicon: lexicon, unifier: unifier}
	for _, r := range AllRules {
		for _, enabled := range s.rules {
			if r == enabled {
				g.rules = append(g.rules, r)
				break
			}
		}
	}
	return g
}

var _ chart.LabelingGrammar[*category.Category[string]] = (*CCG[string, struct{}])(nil)

// Lexicon returns the lexicon of a grammar.
func (g *CCG[P, E]) Lexicon() *Lexicon[P] {
	return g.lexicon
}

// Rules returns the combinators of a grammar.
func (g *CCG[P, E]) Rules() []Rule {
	return append([]Rule(nil), g.rules...)
}

// TerminalCategories returns the categories for a word, with their variables
// renamed apart. Unknown words have no categories.
func (g *CCG[P, E]) TerminalCategories(word string) []*category.Category[P] {
	templates := g.lexicon.Lookup(word)
	cats := make([]*category.Category[P], len(templates))
	for i, c := range templates {
		cats[i] = g.Refresh(c)
	}
	return cats
}

// Refresh renames the variables of a category apart, consistently for all of
// its atomic parts.
func (g *CCG[P, E]) Refresh(c *category.Category[P]) *category.Category[P] {
	return category.Map(c, g.unifier.Renamer())
}

// Combine returns all categories derivable from two adjacent categories, trying
// forward application, backward application, forward composition and backward
// composition, in this order.
func (g *CCG[P, E]) Combine(left, right *category.Category[P]) []*category.Category[P] {
	var results []*category.Category[P]
	for _, r := range g.rules {
		if c, ok := g.Apply(r, left, right); ok {
			results = append(results, c)
		}
	}
	return results
}

// CombineLabeled is like Combine, but reports the combinator for each result.
func (g *CCG[P, E]) CombineLabeled(left, right *category.Category[P]) []chart.Labeled[*category.Category[P]] {
	var results []chart.Labeled[*category.Category[P]]
	for _, r := range g.rules {
		if c, ok := g.Apply(r, left, right); ok {
			results = append(results, chart.Labeled[*category.Category[P]]{Value: c, Rule: r.String()})
		}
	}
	return results
}

// Apply tries a single combinator on two adjacent categories.
func (g *CCG[P, E]) Apply(rule Rule, left, right *category.Category[P]) (*category.Category[P], bool) {
	var result *category.Category[P]
	switch rule {
	case ForwardApplication: // X/Y  Y  ⇒  X
		if left.Dir() != category.Forward {
			return nil, false
		}
		env, ok := g.Unify(left.Argument(), right, g.unifier.NewEnv())
		if !ok {
			return nil, false
		}
		result = g.Substitute(left.Result(), env)
	case BackwardApplication: // Y  X\Y  ⇒  X
		if right.Dir() != category.Backward {
			return nil, false
		}
		env, ok := g.Unify(right.Argument(), left, g.unifier.NewEnv())
		if !ok {
			return nil, false
		}
		result = g.Substitute(right.Result(), env)
	case ForwardComposition: // X/Y  Y/Z  ⇒  X/Z
		if left.Dir() != category.Forward || right.Dir() != category.Forward {
			return nil, false
		}
		env, ok := g.Unify(left.Argument(), right.Result(), g.unifier.NewEnv())
		if !ok {
			return nil, false
		}
		result = category.Complex(g.Substitute(left.Result(), env), category.Forward,
			g.Substitute(right.Argument(), env))
	case BackwardComposition: // Y\Z  X\Y  ⇒  X\Z
		if left.Dir() != category.Backward || right.Dir() != category.Backward {
			return nil, false
		}
		env, ok := g.Unify(left.Result(), right.Argument(), g.unifier.NewEnv())
		if !ok {
			return nil, false
		}
		result = category.Complex(g.Substitute(right.Result(), env), category.Backward,
			g.Substitute(left.Argument(), env))
	default:
		return nil, false
	}
	tracer().Debugf("%v  %v  %s⇒  %v", left, right, rule, result)
	return result, true
}

// Unify unifies two categories, starting from env. Atomic categories unify
// if their payloads do. Complex categories unify if they have the same
// direction and their arguments and results unify, in this order.
func (g *CCG[P, E]) Unify(a, b *category.Category[P], env E) (E, bool) {
	if a.IsAtomic() && b.IsAtomic() {
		return g.unifier.Unify(a.Payload(), b.Payload(), env)
	}
	if a.IsComplex() && b.IsComplex() {
		if a.Dir() != b.Dir() {
			return env, false
		}
		var ok bool
		if env, ok = g.Unify(a.Argument(), b.Argument(), env); !ok {
			return env, false
		}
		return g.Unify(a.Result(), b.Result(), env)
	}
	return env, false
}

// Substitute applies a substitution to every atomic part of a category.
func (g *CCG[P, E]) Substitute(c *category.Category[P], env E) *category.Category[P] {
	return category.Map(c, func(p P) P {
		return g.unifier.Apply(p, env)
	})
}
