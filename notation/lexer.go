package notation

import (
	"strconv"
	"sync"

	"github.com/npillmayer/ccg"
	"github.com/npillmayer/ccg/scanner"
)

var literals = []string{"(", ")", "[", "]", "<", ">", "=", ",", "/", `\`, "?"}

// identPattern is also what feature.Atom renders unquoted.
const identPattern = `([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_)*`

var lexer struct {
	once sync.Once
	lx   *scanner.Lexer
	err  error
}

func patterns() []scanner.Pattern {
	pp := []scanner.Pattern{
		{Regex: identPattern, Type: scanner.Ident},
		{Regex: `\-?[0-9]+(\.[0-9]+)?`, Type: scanner.Float, Decode: decodeNumber},
		{Regex: `"([^"\\]|\\.)*"`, Type: scanner.String, Decode: decodeString},
		scanner.Blank(),
	}
	for _, lit := range literals {
		pp = append(pp, scanner.Literal(lit))
	}
	return pp
}

func decodeNumber(lexeme string) (interface{}, error) {
	return strconv.ParseFloat(lexeme, 64)
}

func decodeString(lexeme string) (interface{}, error) {
	return strconv.Unquote(lexeme)
}

// scan returns a scanner for category notation, compiling the DFA on first
// use.
func scan(input string) (*scanner.Scanner, error) {
	lexer.once.Do(func() {
		lexer.lx, lexer.err = scanner.NewLexer(patterns()...)
	})
	if lexer.err != nil {
		return nil, lexer.err
	}
	return lexer.lx.Scanner(input)
}

// number and text return the decoded values of numeric and string tokens.
func number(tok ccg.Token) float64 { return tok.Value().(float64) }
func text(tok ccg.Token) string    { return tok.Value().(string) }
