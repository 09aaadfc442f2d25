package ccg

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. We do not define any constants here, as
// it is up to scanners to define them.
type TokType int

// Tokens represent input tokens, as produced by a scanner.
//
// An example would be a token for a slash within a category notation:
//
//    TokType = '/'         // identifier for this kind of tokens (scanner specific)
//    Lexeme  = "/"         // lexeme how it appeared in the input stream
//    Span    = 4…5         // occured from position 4 in the input stream
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input token run. For every
// entry in a parse chart we track which input positions
// it covers. A span denotes a start position and the position just
// behind the end.
type Span [2]uint64 // (x…y)

// MakeSpan creates a span from a start position and a length.
func MakeSpan(start, length int) Span {
	return Span{uint64(start), uint64(start + length)}
}

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
