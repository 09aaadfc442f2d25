package scanner

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/npillmayer/ccg"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Pattern describes one class of tokens. Matches of a pattern with Skip set
// are dropped. Decode, if non-nil, computes the value of a token from its
// lexeme.
type Pattern struct {
	Regex  string
	Type   ccg.TokType
	Skip   bool
	Decode func(lexeme string) (interface{}, error)
}

// Literal is a pattern matching lit verbatim. Its token type is the code
// point of lit's first character.
func Literal(lit string) Pattern {
	return Pattern{
		Regex: regexp.QuoteMeta(lit),
		Type:  ccg.TokType([]rune(lit)[0]),
	}
}

// Blank is a pattern for skipping white space.
func Blank() Pattern {
	return Pattern{Regex: `( |\t|\n|\r)+`, Skip: true}
}

// Error reports a part of the input the scanner could not turn into a token.
type Error struct {
	Pos    int    // byte offset into the input
	Lexeme string // offending input
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("at %d: cannot scan %q: %v", e.Pos, e.Lexeme, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Lexer is a compiled lexmachine DFA for a set of patterns.
type Lexer struct {
	dfa *lexmachine.Lexer
}

// NewLexer compiles a lexer from a list of patterns. For matches of equal
// length, earlier patterns take precedence.
func NewLexer(patterns ...Pattern) (*Lexer, error) {
	dfa := lexmachine.NewLexer()
	for _, p := range patterns {
		dfa.Add([]byte(p.Regex), action(p))
	}
	if err := dfa.Compile(); err != nil {
		tracer().Errorf("error compiling DFA: %v", err)
		return nil, err
	}
	return &Lexer{dfa: dfa}, nil
}

func action(p Pattern) lexmachine.Action {
	if p.Skip {
		return func(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
			return nil, nil
		}
	}
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		lexeme := string(m.Bytes)
		var value interface{}
		if p.Decode != nil {
			var err error
			if value, err = p.Decode(lexeme); err != nil {
				return nil, &Error{Pos: m.TC, Lexeme: lexeme, Err: err}
			}
		}
		return MakeDefaultToken(p.Type, lexeme, value, ccg.MakeSpan(m.TC, len(m.Bytes))), nil
	}
}

// Scanner creates a scanner for a given input.
func (l *Lexer) Scanner(input string) (*Scanner, error) {
	s, err := l.dfa.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	return &Scanner{scanner: s, input: input, onError: logError}, nil
}

// Scanner reads the tokens of one input, implementing the Tokenizer interface.
type Scanner struct {
	scanner *lexmachine.Scanner
	input   string
	onError func(error)
}

var _ Tokenizer = (*Scanner)(nil)

// SetErrorHandler sets an error handler for the scanner. Errors are of
// type *Error.
func (sc *Scanner) SetErrorHandler(h func(error)) {
	if h == nil {
		h = logError
	}
	sc.onError = h
}

// NextToken is part of the Tokenizer interface.
//
// Input which cannot be scanned is reported to the error handler and skipped.
func (sc *Scanner) NextToken() ccg.Token {
	for {
		tok, err, eof := sc.scanner.Next()
		if eof {
			end := sc.scanner.TC
			return MakeDefaultToken(EOF, "", nil, ccg.MakeSpan(end, 0))
		}
		if err == nil {
			tracer().Debugf("token %v", tok)
			return tok.(DefaultToken)
		}
		var ui *machines.UnconsumedInput
		if errors.As(err, &ui) {
			sc.scanner.TC = ui.FailTC
			err = &Error{Pos: ui.StartTC, Lexeme: sc.input[ui.StartTC:ui.FailTC], Err: err}
		}
		sc.onError(err)
	}
}
