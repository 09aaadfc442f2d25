package feature

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// Kind classifies feature values.
type Kind int8

// Kinds of feature values.
const (
	AtomKind Kind = iota
	StructKind
	VarKind
	ListKind
)

func (k Kind) String() string {
	switch k {
	case AtomKind:
		return "atom"
	case StructKind:
		return "struct"
	case VarKind:
		return "var"
	case ListKind:
		return "list"
	}
	return "?"
}

// Value is a feature value. It is one of Atom, *Struct, Var or List.
type Value interface {
	Kind() Kind
	String() string
	isValue()
}

// IsAtom is a predicate: is v an atomic scalar?
func IsAtom(v Value) bool { return v != nil && v.Kind() == AtomKind }

// IsStruct is a predicate: is v a feature structure?
func IsStruct(v Value) bool { return v != nil && v.Kind() == StructKind }

// IsVar is a predicate: is v a logic variable?
func IsVar(v Value) bool { return v != nil && v.Kind() == VarKind }

// IsList is a predicate: is v a list of values?
func IsList(v Value) bool { return v != nil && v.Kind() == ListKind }

// --- Atoms -----------------------------------------------------------------

// Atom is an atomic scalar value: a string, a number or a boolean.
// Atoms are compared by value.
type Atom struct {
	val interface{} // string, float64 or bool
}

// String creates a string atom.
func String(s string) Atom { return Atom{val: s} }

// Number creates a numeric atom.
func Number(n float64) Atom { return Atom{val: n} }

// Bool creates a boolean atom.
func Bool(b bool) Atom { return Atom{val: b} }

// Scalar returns the Go value of an atom (string, float64 or bool).
func (a Atom) Scalar() interface{} { return a.val }

// Kind is part of interface Value.
func (a Atom) Kind() Kind { return AtomKind }

func (a Atom) isValue() {}

func (a Atom) String() string {
	switch x := a.val.(type) {
	case string:
		if isIdent(x) && x != "true" && x != "false" {
			return x
		}
		return strconv.Quote(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	}
	return fmt.Sprintf("%v", a.val)
}

// isIdent reports whether s reads back as a bare identifier in category
// notation.
func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '_'):
		default:
			return false
		}
	}
	return true
}

// --- Variables -------------------------------------------------------------

// Var is a logic variable. Variables are identified by their ID; the name is
// for display only.
type Var struct {
	ID   string
	Name string
}

// NewVar creates a variable with identical ID and name. This is what
// category notations produce for lexicon templates.
func NewVar(name string) Var {
	return Var{ID: name, Name: name}
}

// Kind is part of interface Value.
func (v Var) Kind() Kind { return VarKind }

func (v Var) isValue() {}

func (v Var) String() string {
	if v.Name == "" || v.Name == v.ID {
		return "?" + v.ID
	}
	return "?" + v.Name + v.ID
}

// --- Lists -----------------------------------------------------------------

// List is an ordered sequence of values.
type List []Value

// Kind is part of interface Value.
func (l List) Kind() Kind { return ListKind }

func (l List) isValue() {}

func (l List) String() string {
	var b strings.Builder
	b.WriteByte('<')
	for i, v := range l {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(v.String())
	}
	b.WriteByte('>')
	return b.String()
}

// --- Feature structures ----------------------------------------------------

// Features is a convenience type for constructing structures.
type Features map[string]Value

// Struct is a feature structure: an optional type tag together with a mapping
// from feature names to values. Structs are immutable.
type Struct struct {
	typ  string
	feat map[string]Value
	keys []string // sorted
}

// NewStruct creates a feature structure. typ may be empty. The features map
// is copied.
func NewStruct(typ string, features Features) *Struct {
	s := &Struct{typ: typ, feat: make(map[string]Value, len(features))}
	for k, v := range features {
		s.feat[k] = v
		s.keys = append(s.keys, k)
	}
	slices.Sort(s.keys)
	return s
}

// Type returns the type tag of a structure, or "".
func (s *Struct) Type() string {
	if s == nil {
		return ""
	}
	return s.typ
}

// Get returns the value of a feature.
func (s *Struct) Get(name string) (Value, bool) {
	if s == nil {
		return nil, false
	}
	v, ok := s.feat[name]
	return v, ok
}

// Keys returns the feature names of a structure in sorted order.
func (s *Struct) Keys() []string {
	if s == nil {
		return nil
	}
	return slices.Clone(s.keys)
}

// Len returns the number of features.
func (s *Struct) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}

// Kind is part of interface Value.
func (s *Struct) Kind() Kind { return StructKind }

func (s *Struct) isValue() {}

// String renders a structure as `Type[f1=v1,f2=v2]`. The brackets are
// omitted for typed structures without features.
func (s *Struct) String() string {
	if s == nil {
		return "[]"
	}
	var b strings.Builder
	b.WriteString(s.typ)
	if len(s.keys) == 0 && s.typ != "" {
		return b.String()
	}
	b.WriteByte('[')
	for i, k := range s.keys {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(s.feat[k].String())
	}
	b.WriteByte(']')
	return b.String()
}

// --- Equality --------------------------------------------------------------

// Equal reports whether two values are structurally identical. Variables are
// equal if their IDs are equal. Unification never uses Equal; it is meant for
// tests and for de-duplicating results.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case Atom:
		return x.val == b.(Atom).val
	case Var:
		return x.ID == b.(Var).ID
	case List:
		y := b.(List)
		if len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case *Struct:
		y := b.(*Struct)
		if x.Type() != y.Type() || x.Len() != y.Len() {
			return false
		}
		for _, k := range x.keys {
			w, ok := y.feat[k]
			if !ok || !Equal(x.feat[k], w) {
				return false
			}
		}
		return true
	}
	return false
}

// Vars collects the IDs of all variables occuring in v, in order of first
// appearance.
func Vars(v Value) []string {
	var ids []string
	seen := map[string]bool{}
	var collect func(Value)
	collect = func(v Value) {
		switch x := v.(type) {
		case Var:
			if !seen[x.ID] {
				seen[x.ID] = true
				ids = append(ids, x.ID)
			}
		case List:
			for _, e := range x {
				collect(e)
			}
		case *Struct:
			for _, k := range x.keys {
				collect(x.feat[k])
			}
		}
	}
	collect(v)
	return ids
}
