package feature

import (
	"fmt"
	"sync/atomic"
)

// Generator produces fresh variable IDs. A generator is safe for concurrent
// use.
type Generator struct {
	counter atomic.Uint64
}

// NewGenerator creates a generator for fresh variables.
func NewGenerator() *Generator {
	return &Generator{}
}

// Fresh returns a variable with a new ID, keeping the given display name.
// Fresh IDs start with an underscore, which category notations do not allow
// for variable names, so fresh variables never clash with template variables.
func (gen *Generator) Fresh(name string) Var {
	n := gen.counter.Add(1)
	return Var{ID: fmt.Sprintf("_%d", n), Name: name}
}

// Renaming maps variable IDs to fresh variables. A renaming is consistent:
// the same source ID is always mapped to the same fresh variable.
type Renaming struct {
	gen       *Generator
	mapping   map[string]Var
	anonymous bool // drop display names
}

// NewRenaming creates a renaming which draws from gen.
func NewRenaming(gen *Generator) *Renaming {
	return &Renaming{gen: gen, mapping: map[string]Var{}}
}

// NewCanonicalRenaming creates a renaming which numbers variables in order
// of appearance and drops their display names. Two values which are equal up
// to a consistent renaming of their variables are rendered identically after
// canonical renaming.
func NewCanonicalRenaming() *Renaming {
	return &Renaming{gen: NewGenerator(), mapping: map[string]Var{}, anonymous: true}
}

// Refresh deep-copies v, replacing every variable by its fresh counterpart.
// Non-variable content is left unchanged.
func (r *Renaming) Refresh(v Value) Value {
	switch x := v.(type) {
	case Var:
		if w, ok := r.mapping[x.ID]; ok {
			return w
		}
		name := x.Name
		if name == "" {
			name = x.ID
		}
		if r.anonymous {
			name = ""
		}
		w := r.gen.Fresh(name)
		r.mapping[x.ID] = w
		return w
	case List:
		l := make(List, len(x))
		for i, e := range x {
			l[i] = r.Refresh(e)
		}
		return l
	case *Struct:
		if x == nil {
			return x
		}
		f := make(Features, len(x.keys))
		for _, k := range x.keys {
			f[k] = r.Refresh(x.feat[k])
		}
		return NewStruct(x.typ, f)
	}
	return v
}

// Refresh renames all variables in v apart, using fresh variables from gen.
func Refresh(v Value, gen *Generator) Value {
	return NewRenaming(gen).Refresh(v)
}
