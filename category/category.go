/*
Package category implements the categories of Combinatory Categorial Grammar.

A category is either atomic, carrying a payload, or complex: a directional
function from an argument category to a result category. Complex categories
are right-branching trees whose leaves are atomic. The payload is generic; it
may be a bare label such as "NP" or a feature structure.

    np := category.Atomic("NP")
    tv := category.Complex(category.Complex(category.Atomic("S"), category.Backward, np), category.Forward, np)
    fmt.Println(tv)    // (S\NP)/NP

Categories are immutable.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package category

import (
	"fmt"
	"strings"
)

// Direction is the direction of a complex category: forward (/) looks for
// its argument to the right, backward (\) to the left.
type Direction int8

// Directions of complex categories. The zero value denotes an atomic category.
const (
	None Direction = iota
	Forward
	Backward
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "/"
	case Backward:
		return `\`
	}
	return ""
}

// Category is an atomic or complex category with payload type P.
type Category[P any] struct {
	dir     Direction
	result  *Category[P]
	arg     *Category[P]
	payload P
}

// Atomic creates an atomic category.
func Atomic[P any](payload P) *Category[P] {
	return &Category[P]{payload: payload}
}

// Complex creates a complex category result/arg or result\arg.
// Will panic if dir is None or if one of the sub-categories is nil.
func Complex[P any](result *Category[P], dir Direction, arg *Category[P]) *Category[P] {
	if dir != Forward && dir != Backward {
		panic(fmt.Sprintf("illegal direction for complex category: %d", dir))
	}
	if result == nil || arg == nil {
		panic("complex category needs result and argument")
	}
	return &Category[P]{dir: dir, result: result, arg: arg}
}

// IsAtomic is a predicate.
func (c *Category[P]) IsAtomic() bool {
	return c.dir == None
}

// IsComplex is a predicate.
func (c *Category[P]) IsComplex() bool {
	return c.dir != None
}

// Dir returns the direction of a complex category, or None.
func (c *Category[P]) Dir() Direction {
	return c.dir
}

// Result returns the result of a complex category, or nil.
func (c *Category[P]) Result() *Category[P] {
	return c.result
}

// Argument returns the argument of a complex category, or nil.
func (c *Category[P]) Argument() *Category[P] {
	return c.arg
}

// Payload returns the payload of an atomic category. For complex categories
// the zero value of P is returned.
func (c *Category[P]) Payload() P {
	return c.payload
}

// Arity returns the number of arguments a category is looking for.
func (c *Category[P]) Arity() int {
	n := 0
	for ; c.IsComplex(); c = c.result {
		n++
	}
	return n
}

// Map rebuilds a category, applying f to every atomic payload. Atomic leaves
// are visited left to right, i.e., results before arguments.
func Map[P, Q any](c *Category[P], f func(P) Q) *Category[Q] {
	if c.IsAtomic() {
		return Atomic(f(c.payload))
	}
	result := Map(c.result, f)
	arg := Map(c.arg, f)
	return Complex(result, c.dir, arg)
}

// Walk calls f for every atomic payload of c, left to right.
func Walk[P any](c *Category[P], f func(P)) {
	if c.IsAtomic() {
		f(c.payload)
		return
	}
	Walk(c.result, f)
	Walk(c.arg, f)
}

// Format renders a category, using f to render atomic payloads.
// Complex sub-categories are enclosed in parentheses.
func Format[P any](c *Category[P], f func(P) string) string {
	var b strings.Builder
	format(&b, c, f, false)
	return b.String()
}

func format[P any](b *strings.Builder, c *Category[P], f func(P) string, paren bool) {
	if c.IsAtomic() {
		b.WriteString(f(c.payload))
		return
	}
	if paren {
		b.WriteByte('(')
	}
	format(b, c.result, f, true)
	b.WriteString(c.dir.String())
	format(b, c.arg, f, true)
	if paren {
		b.WriteByte(')')
	}
}

// String renders a category, using fmt for payloads.
func (c *Category[P]) String() string {
	return Format(c, func(p P) string {
		return fmt.Sprint(p)
	})
}
