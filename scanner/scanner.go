package scanner

import (
	"strings"
	"text/scanner"

	"github.com/npillmayer/ccg"
)

// EOF is identical to text/scanner.EOF.
// Token types are replicated here for practical reasons.
const (
	EOF    = scanner.EOF
	Ident  = scanner.Ident
	Float  = scanner.Float
	String = scanner.String
)

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() ccg.Token
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// Words splits a sentence into words, separated by white space.
func Words(sentence string) []string {
	return strings.Fields(sentence)
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the
// lexmachine scanner.
type DefaultToken struct {
	kind   ccg.TokType
	lexeme string
	Val    interface{}
	span   ccg.Span
}

// MakeDefaultToken creates a token of type typ.
func MakeDefaultToken(typ ccg.TokType, lexeme string, value interface{}, span ccg.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		Val:    value,
		span:   span,
	}
}

func (t DefaultToken) TokType() ccg.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() ccg.Span {
	return t.span
}
