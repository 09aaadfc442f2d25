package feature

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Env is a substitution: a mapping from variable IDs to values, representing
// the most general unifier found so far. Envs are values; extending an Env
// never changes the receiver (copy-on-write).
type Env struct {
	bindings map[string]Value
}

// NewEnv returns an environment without any bindings.
func NewEnv() Env {
	return Env{}
}

// Lookup returns the value bound to a variable ID, if any.
func (env Env) Lookup(id string) (Value, bool) {
	v, ok := env.bindings[id]
	return v, ok
}

// Len returns the number of bindings.
func (env Env) Len() int {
	return len(env.bindings)
}

// Bind returns a new environment with id bound to v. It does not perform an
// occurs-check; see Unifier for that.
func (env Env) Bind(id string, v Value) Env {
	b := make(map[string]Value, len(env.bindings)+1)
	for k, w := range env.bindings {
		b[k] = w
	}
	b[id] = v
	return Env{bindings: b}
}

func (env Env) String() string {
	ids := make([]string, 0, len(env.bindings))
	for id := range env.bindings {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	var b strings.Builder
	b.WriteByte('{')
	for i, id := range ids {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s ↦ %s", id, env.bindings[id])
	}
	b.WriteByte('}')
	return b.String()
}

// Resolve dereferences a value: if v is a variable bound in env (possibly
// over a chain of variables), the final unbound variable or non-variable
// value is returned. A chain leading back to a variable already visited is
// treated as resolved.
func Resolve(v Value, env Env) Value {
	var seen map[string]bool
	for {
		x, ok := v.(Var)
		if !ok {
			return v
		}
		bound, ok := env.bindings[x.ID]
		if !ok {
			return v
		}
		if seen == nil {
			seen = map[string]bool{}
		}
		if seen[x.ID] {
			return v
		}
		seen[x.ID] = true
		v = bound
	}
}

// Occurs checks if the variable with the given ID occurs in v, after
// resolving nested variables against env.
func Occurs(id string, v Value, env Env) bool {
	return occurs(id, v, env, map[string]bool{})
}

func occurs(id string, v Value, env Env, seen map[string]bool) bool {
	v = Resolve(v, env)
	switch x := v.(type) {
	case Var:
		if x.ID == id {
			return true
		}
		if seen[x.ID] {
			return false
		}
		seen[x.ID] = true
		return false
	case List:
		for _, e := range x {
			if occurs(id, e, env, seen) {
				return true
			}
		}
	case *Struct:
		for _, k := range x.keys {
			if occurs(id, x.feat[k], env, seen) {
				return true
			}
		}
	}
	return false
}

// Substitute applies a substitution: every variable reachable from v is
// resolved against env, recursively. Unbound variables are kept as they are.
func Substitute(v Value, env Env) Value {
	return substitute(v, env, map[string]bool{})
}

func substitute(v Value, env Env, active map[string]bool) Value {
	if x, ok := v.(Var); ok {
		if active[x.ID] { // cyclic binding, cannot happen with occurs-check
			return x
		}
		r := Resolve(x, env)
		if _, isvar := r.(Var); isvar {
			return r
		}
		active[x.ID] = true
		defer delete(active, x.ID)
		return substitute(r, env, active)
	}
	switch x := v.(type) {
	case List:
		l := make(List, len(x))
		for i, e := range x {
			l[i] = substitute(e, env, active)
		}
		return l
	case *Struct:
		f := make(Features, len(x.keys))
		for _, k := range x.keys {
			f[k] = substitute(x.feat[k], env, active)
		}
		return NewStruct(x.typ, f)
	}
	return v
}
