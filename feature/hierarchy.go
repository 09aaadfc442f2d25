package feature

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
)

// Hierarchy is a type hierarchy for the type tags of feature structures.
// Each type may have any number of parent types. A type tag unifies with
// another one if one of them is a subtype of the other; the result is the
// more specific one.
type Hierarchy struct {
	parents map[string][]string
}

// NewHierarchy creates an empty type hierarchy.
func NewHierarchy() *Hierarchy {
	return &Hierarchy{parents: map[string][]string{}}
}

// Define declares a type together with its direct parent types. Defining a type
// twice adds to its parents.
func (h *Hierarchy) Define(typ string, parents ...string) *Hierarchy {
	h.parents[typ] = append(h.parents[typ], parents...)
	return h
}

// Types returns all types mentioned in the hierarchy, sorted.
func (h *Hierarchy) Types() []string {
	set := treeset.NewWithStringComparator()
	for t, ps := range h.parents {
		set.Add(t)
		for _, p := range ps {
			set.Add(p)
		}
	}
	types := make([]string, 0, set.Size())
	for _, t := range set.Values() {
		types = append(types, t.(string))
	}
	return types
}

// IsSubtype is a predicate: is child identical to parent or does parent occur
// among the (transitive) ancestors of child?
func (h *Hierarchy) IsSubtype(child, parent string) bool {
	if child == parent {
		return true
	}
	seen := map[string]bool{child: true}
	queue := []string{child}
	for len(queue) > 0 {
		t := queue[0]
		queue = queue[1:]
		for _, p := range h.parents[t] {
			if p == parent {
				return true
			}
			if !seen[p] {
				seen[p] = true
				queue = append(queue, p)
			}
		}
	}
	return false
}

// Meet returns the more specific of two types, if they are related.
func (h *Hierarchy) Meet(a, b string) (string, bool) {
	if h.IsSubtype(a, b) {
		return a, true
	}
	if h.IsSubtype(b, a) {
		return b, true
	}
	return "", false
}

// Check reports an error if the hierarchy contains a cycle.
func (h *Hierarchy) Check() error {
	for t, ps := range h.parents {
		for _, p := range ps {
			if h.IsSubtype(p, t) {
				return fmt.Errorf("type hierarchy has a cycle: %s and %s", t, p)
			}
		}
	}
	return nil
}
