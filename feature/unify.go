package feature

import (
	"github.com/emirpasic/gods/sets/treeset"
)

// Policy decides how unification treats a feature present in only one of
// two structures.
type Policy int8

const (
	// OpenWorld treats an absent feature as "no constraint": the value of the
	// other side wins unchanged.
	OpenWorld Policy = iota
	// ClosedWorld requires both structures to define the same set of
	// features.
	ClosedWorld
)

func (p Policy) String() string {
	if p == ClosedWorld {
		return "closed"
	}
	return "open"
}

// Unifier unifies feature values. It holds the configuration for
// unification (absent-feature policy, type hierarchy) and a generator for
// fresh variables, used by Refresh. A Unifier is meant to be owned by one
// grammar.
//
// A Unifier is safe for concurrent use.
type Unifier struct {
	policy Policy
	types  *Hierarchy
	gen    *Generator
}

// Option configures a Unifier.
type Option func(u *Unifier)

// WithPolicy sets the absent-feature policy. Default is OpenWorld.
func WithPolicy(p Policy) Option {
	return func(u *Unifier) {
		u.policy = p
	}
}

// WithTypes sets a type hierarchy for type tags of structures. Without a
// hierarchy, type tags have to be identical to unify.
func WithTypes(h *Hierarchy) Option {
	return func(u *Unifier) {
		u.types = h
	}
}

// WithGenerator sets the generator for fresh variables.
func WithGenerator(gen *Generator) Option {
	return func(u *Unifier) {
		u.gen = gen
	}
}

// NewUnifier creates a unifier.
func NewUnifier(opts ...Option) *Unifier {
	u := &Unifier{}
	for _, opt := range opts {
		opt(u)
	}
	if u.gen == nil {
		u.gen = NewGenerator()
	}
	return u
}

// Policy returns the absent-feature policy of u.
func (u *Unifier) Policy() Policy {
	return u.policy
}

// NewEnv returns an empty environment.
func (u *Unifier) NewEnv() Env {
	return NewEnv()
}

// Unify unifies two feature structures, starting from env. It returns the
// extended environment and true, or false if a and b do not unify. env is
// never modified.
func (u *Unifier) Unify(a, b *Struct, env Env) (Env, bool) {
	if a == nil {
		a = emptyStruct
	}
	if b == nil {
		b = emptyStruct
	}
	_, env, ok := u.UnifyValues(a, b, env)
	return env, ok
}

// Apply applies a substitution to a feature structure.
func (u *Unifier) Apply(s *Struct, env Env) *Struct {
	if s == nil {
		return nil
	}
	return Substitute(s, env).(*Struct)
}

// Refresh renames the variables of a feature structure apart.
func (u *Unifier) Refresh(s *Struct) *Struct {
	if s == nil {
		return nil
	}
	return Refresh(s, u.gen).(*Struct)
}

// Renamer returns a function which renames the variables of feature
// structures apart. All structures renamed by the same function share one
// renaming, which is what is needed for the atomic parts of one complex
// category: `(S\NP[num=?x])/(S\NP[num=?x])` has to keep its two ?x identical.
func (u *Unifier) Renamer() func(*Struct) *Struct {
	r := NewRenaming(u.gen)
	return func(s *Struct) *Struct {
		if s == nil {
			return nil
		}
		return r.Refresh(s).(*Struct)
	}
}

// UnifyValues unifies two feature values, starting from env.
// It returns the unified value and the extended environment, or false as
// its third return value if a and b do not unify.
//
// For structures the unified value has the union of the features of a and b
// (under the OpenWorld policy). Features are visited in sorted order, and
// list elements from left to right; later features see the bindings made by
// earlier ones. If a or b is a variable bound to a structure which gets
// extended, the variable is re-bound to the merged structure.
func (u *Unifier) UnifyValues(a, b Value, env Env) (Value, Env, bool) {
	ha, hasA := chainEnd(a, env)
	hb, hasB := chainEnd(b, env)
	a, b = Resolve(a, env), Resolve(b, env)
	if va, ok := a.(Var); ok {
		if vb, ok := b.(Var); ok && va.ID == vb.ID {
			return a, env, true
		}
		return u.bind(va, b, env)
	}
	if vb, ok := b.(Var); ok {
		return u.bind(vb, a, env)
	}
	if a.Kind() != b.Kind() {
		return nil, env, false
	}
	switch x := a.(type) {
	case Atom:
		if x.val == b.(Atom).val {
			return a, env, true
		}
		return nil, env, false
	case List:
		return u.unifyLists(x, b.(List), env)
	case *Struct:
		var v Value
		var ok bool
		if v, env, ok = u.unifyStructs(x, b.(*Struct), env); !ok {
			return nil, env, false
		}
		if hasA {
			if env, ok = u.rebind(ha, a, v, env); !ok {
				return nil, env, false
			}
		}
		if hasB {
			if env, ok = u.rebind(hb, b, v, env); !ok {
				return nil, env, false
			}
		}
		return v, env, true
	}
	return nil, env, false
}

// chainEnd returns the last variable of a chain of bindings starting at v,
// i.e. the variable bound to a non-variable value. It returns false if v is
// not a variable or the chain ends in an unbound variable.
func chainEnd(v Value, env Env) (Var, bool) {
	var last Var
	seen := map[string]bool{}
	for {
		x, ok := v.(Var)
		if !ok {
			return last, len(seen) > 0
		}
		w, ok := env.Lookup(x.ID)
		if !ok || seen[x.ID] {
			return Var{}, false
		}
		seen[x.ID] = true
		last, v = x, w
	}
}

func (u *Unifier) rebind(h Var, old, merged Value, env Env) (Env, bool) {
	if Equal(old, merged) {
		return env, true
	}
	if Occurs(h.ID, merged, env) {
		tracer().Debugf("occurs-check: %s in %s", h, merged)
		return env, false
	}
	return env.Bind(h.ID, merged), true
}

func (u *Unifier) bind(v Var, w Value, env Env) (Value, Env, bool) {
	if Occurs(v.ID, w, env) {
		tracer().Debugf("occurs-check: %s in %s", v, w)
		return nil, env, false
	}
	return w, env.Bind(v.ID, w), true
}

func (u *Unifier) unifyLists(a, b List, env Env) (Value, Env, bool) {
	if len(a) != len(b) {
		return nil, env, false
	}
	l := make(List, len(a))
	for i := range a {
		var ok bool
		if l[i], env, ok = u.UnifyValues(a[i], b[i], env); !ok {
			return nil, env, false
		}
	}
	return l, env, true
}

func (u *Unifier) unifyStructs(a, b *Struct, env Env) (Value, Env, bool) {
	typ, ok := u.unifyTypes(a.Type(), b.Type())
	if !ok {
		return nil, env, false
	}
	keys := treeset.NewWithStringComparator()
	for _, k := range a.keys {
		keys.Add(k)
	}
	for _, k := range b.keys {
		keys.Add(k)
	}
	merged := make(Features, keys.Size())
	it := keys.Iterator()
	for it.Next() {
		k := it.Value().(string)
		va, ina := a.feat[k]
		vb, inb := b.feat[k]
		switch {
		case ina && inb:
			var v Value
			if v, env, ok = u.UnifyValues(va, vb, env); !ok {
				return nil, env, false
			}
			merged[k] = v
		case u.policy == ClosedWorld:
			return nil, env, false
		case ina:
			merged[k] = va
		default:
			merged[k] = vb
		}
	}
	return NewStruct(typ, merged), env, true
}

func (u *Unifier) unifyTypes(a, b string) (string, bool) {
	if a == b {
		return a, true
	}
	if a == "" {
		return b, true
	}
	if b == "" {
		return a, true
	}
	if u.types != nil {
		return u.types.Meet(a, b)
	}
	return "", false
}

var emptyStruct = NewStruct("", nil)

// --- Default unification ---------------------------------------------------

var defaultUnifier = &Unifier{}

// Unify unifies two values with the OpenWorld policy and without a type
// hierarchy. It returns the extended environment, or false if a and b do
// not unify.
func Unify(a, b Value, env Env) (Env, bool) {
	_, env, ok := defaultUnifier.UnifyValues(a, b, env)
	return env, ok
}
