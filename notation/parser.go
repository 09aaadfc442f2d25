package notation

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/npillmayer/ccg"
	"github.com/npillmayer/ccg/category"
	"github.com/npillmayer/ccg/feature"
	"github.com/npillmayer/ccg/scanner"
	"github.com/timtadh/lexmachine/machines"
)

// SyntaxError is returned for malformed category notations.
type SyntaxError struct {
	Input string
	Pos   int // byte offset into Input
	Msg   string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at position %d of %q: %s", e.Pos, e.Input, e.Msg)
}

// ParseFeatures parses a category with feature structure payloads.
// Atomic categories without features, like `S`, get a typed structure
// without features.
func ParseFeatures(input string) (*category.Category[*feature.Struct], error) {
	p, err := newParser(input, false)
	if err != nil {
		return nil, err
	}
	return p.parse()
}

// ParseLabel parses a category with plain label payloads.
func ParseLabel(input string) (*category.Category[string], error) {
	p, err := newParser(input, true)
	if err != nil {
		return nil, err
	}
	c, err := p.parse()
	if err != nil {
		return nil, err
	}
	return category.Map(c, (*feature.Struct).Type), nil
}

// ParseStruct parses a single feature structure, like `NP[num=?n]`.
func ParseStruct(input string) (*feature.Struct, error) {
	p, err := newParser(input, false)
	if err != nil {
		return nil, err
	}
	var s *feature.Struct
	switch tok := p.peek(); tok.TokType() {
	case scanner.Ident:
		p.next()
		s, err = p.structure(tok.Lexeme())
	case '[':
		s, err = p.structure("")
	default:
		err = p.errorf(tok, "expected feature structure, found %s", describe(tok))
	}
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.TokType() != scanner.EOF {
		return nil, p.errorf(tok, "unexpected %s", describe(tok))
	}
	return s, nil
}

// MustFeatures is like ParseFeatures, but panics on syntax errors.
func MustFeatures(input string) *category.Category[*feature.Struct] {
	c, err := ParseFeatures(input)
	if err != nil {
		panic(err)
	}
	return c
}

// MustLabel is like ParseLabel, but panics on syntax errors.
func MustLabel(input string) *category.Category[string] {
	c, err := ParseLabel(input)
	if err != nil {
		panic(err)
	}
	return c
}

// --- Recursive descent -----------------------------------------------------

type parser struct {
	input  string
	tokens []ccg.Token // terminated by EOF
	pos    int
	labels bool // reject feature structures
}

func newParser(input string, labels bool) (*parser, error) {
	sc, err := scan(input)
	if err != nil {
		return nil, fmt.Errorf("notation lexer: %w", err)
	}
	p := &parser{input: input, labels: labels}
	var scanErr *scanner.Error
	sc.SetErrorHandler(func(e error) {
		if scanErr == nil && !errors.As(e, &scanErr) {
			scanErr = &scanner.Error{Err: e}
		}
	})
	for {
		tok := sc.NextToken()
		if scanErr != nil {
			tracer().Debugf("scanner error for %q: %v", input, scanErr)
			msg := "illegal character"
			var ui *machines.UnconsumedInput
			if !errors.As(scanErr, &ui) {
				msg = fmt.Sprintf("malformed literal %s", scanErr.Lexeme)
			}
			return nil, &SyntaxError{Input: input, Pos: scanErr.Pos, Msg: msg}
		}
		p.tokens = append(p.tokens, tok)
		if tok.TokType() == scanner.EOF {
			break
		}
	}
	return p, nil
}

func (p *parser) peek() ccg.Token {
	return p.tokens[p.pos]
}

func (p *parser) next() ccg.Token {
	tok := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *parser) is(typ ccg.TokType) bool {
	return p.peek().TokType() == typ
}

func (p *parser) expect(typ ccg.TokType, what string) (ccg.Token, error) {
	tok := p.next()
	if tok.TokType() != typ {
		return tok, p.errorf(tok, "expected %s, found %s", what, describe(tok))
	}
	return tok, nil
}

func (p *parser) errorf(tok ccg.Token, format string, args ...interface{}) error {
	return &SyntaxError{
		Input: p.input,
		Pos:   int(tok.Span().From()),
		Msg:   fmt.Sprintf(format, args...),
	}
}

func describe(tok ccg.Token) string {
	if tok.TokType() == scanner.EOF {
		return "end of input"
	}
	return strconv.Quote(tok.Lexeme())
}

func (p *parser) parse() (*category.Category[*feature.Struct], error) {
	c, err := p.category()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.TokType() != scanner.EOF {
		return nil, p.errorf(tok, "unexpected %s", describe(tok))
	}
	return c, nil
}

// cat := prim { ('/'|'\') prim }
func (p *parser) category() (*category.Category[*feature.Struct], error) {
	left, err := p.primary()
	if err != nil {
		return nil, err
	}
	for p.is('/') || p.is('\\') {
		dir := category.Forward
		if p.next().TokType() == '\\' {
			dir = category.Backward
		}
		right, err := p.primary()
		if err != nil {
			return nil, err
		}
		left = category.Complex(left, dir, right)
	}
	return left, nil
}

// prim := '(' cat ')' | IDENT [struct] | struct
func (p *parser) primary() (*category.Category[*feature.Struct], error) {
	tok := p.peek()
	switch tok.TokType() {
	case '(':
		p.next()
		c, err := p.category()
		if err != nil {
			return nil, err
		}
		if _, err = p.expect(')', `")"`); err != nil {
			return nil, err
		}
		return c, nil
	case scanner.Ident:
		p.next()
		s, err := p.structure(tok.Lexeme())
		if err != nil {
			return nil, err
		}
		return category.Atomic(s), nil
	case '[':
		s, err := p.structure("")
		if err != nil {
			return nil, err
		}
		return category.Atomic(s), nil
	}
	return nil, p.errorf(tok, "expected category, found %s", describe(tok))
}

// struct := '[' [ feat { ',' feat } ] ']'
// feat   := IDENT '=' value
//
// The brackets are optional if typ is not empty.
func (p *parser) structure(typ string) (*feature.Struct, error) {
	if !p.is('[') {
		return feature.NewStruct(typ, nil), nil
	}
	if p.labels {
		return nil, p.errorf(p.peek(), "feature structures not allowed in plain categories")
	}
	p.next()
	feats := feature.Features{}
	if p.is(']') {
		p.next()
		return feature.NewStruct(typ, feats), nil
	}
	for {
		name, err := p.expect(scanner.Ident, "feature name")
		if err != nil {
			return nil, err
		}
		if _, dup := feats[name.Lexeme()]; dup {
			return nil, p.errorf(name, "duplicate feature %q", name.Lexeme())
		}
		if _, err = p.expect('=', `"="`); err != nil {
			return nil, err
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		feats[name.Lexeme()] = v
		if p.is(',') {
			p.next()
			continue
		}
		if _, err = p.expect(']', `"," or "]"`); err != nil {
			return nil, err
		}
		return feature.NewStruct(typ, feats), nil
	}
}

// value := IDENT [struct] | NUM | STRING | '?' IDENT | struct | '<' [ value { ',' value } ] '>'
func (p *parser) value() (feature.Value, error) {
	if p.is('[') {
		return p.structure("")
	}
	tok := p.next()
	switch tok.TokType() {
	case scanner.Ident:
		switch tok.Lexeme() {
		case "true":
			return feature.Bool(true), nil
		case "false":
			return feature.Bool(false), nil
		}
		if p.is('[') {
			return p.structure(tok.Lexeme())
		}
		return feature.String(tok.Lexeme()), nil
	case scanner.Float:
		return feature.Number(number(tok)), nil
	case scanner.String:
		return feature.String(text(tok)), nil
	case '?':
		name, err := p.expect(scanner.Ident, "variable name")
		if err != nil {
			return nil, err
		}
		return feature.NewVar(name.Lexeme()), nil
	case '<':
		list := feature.List{}
		if p.is('>') {
			p.next()
			return list, nil
		}
		for {
			v, err := p.value()
			if err != nil {
				return nil, err
			}
			list = append(list, v)
			if p.is(',') {
				p.next()
				continue
			}
			if _, err = p.expect('>', `"," or ">"`); err != nil {
				return nil, err
			}
			return list, nil
		}
	}
	return nil, p.errorf(tok, "expected value, found %s", describe(tok))
}
