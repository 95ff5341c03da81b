package rdparser

import (
	"io"

	"github.com/sebastian-j-ibanez/copper/lisp"
	"github.com/sebastian-j-ibanez/copper/parser/lexer"
	"github.com/sebastian-j-ibanez/copper/parser/token"
)

type reader struct {
}

// NewReader returns a lisp.Reader to use in a lisp.Runtime.
func NewReader() lisp.Reader {
	return &reader{}
}

// Read implements lisp.Reader.
func (_ *reader) Read(name string, r io.Reader) ([]*lisp.LVal, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	p := New(token.NewScanner(name, src))
	return p.ParseProgram()
}

// Parser is a recursive-descent lisp reader.
type Parser struct {
	lex  *lexer.Lexer
	curr *token.Token
	peek *token.Token
}

// New initializes and returns a new Parser that reads tokens from scanner.
func New(scanner *token.Scanner) *Parser {
	p := &Parser{
		lex: lexer.New(scanner),
	}
	// Setup the peek token so the parser is in the proper state when the
	// first parse function is called.
	p.ReadToken()
	return p
}

// ParseProgram parses expressions until EOF.  The first syntax error aborts
// the parse.
func (p *Parser) ParseProgram() ([]*lisp.LVal, error) {
	var exprs []*lisp.LVal
	for {
		for p.expect(token.COMMENT) {
		}
		if p.expect(token.EOF) {
			break
		}
		expr := p.ParseExpression()
		if expr.Type == lisp.LError {
			return nil, lisp.GoError(expr)
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}

// ParseExpression parses a single expression.
func (p *Parser) ParseExpression() *lisp.LVal {
	for p.expect(token.COMMENT) {
	}
	switch p.PeekType() {
	case token.STRING:
		return p.ParseLiteralString()
	case token.QUOTE:
		return p.ParseQuote()
	case token.SYMBOL:
		return p.ParseAtom()
	case token.PAREN_L:
		return p.ParseConsExpression()
	case token.PAREN_R:
		p.ReadToken()
		return p.errorf(lisp.ParseError, "unmatched )")
	case token.EOF:
		p.ReadToken()
		return p.errorf(lisp.ParseError, "unexpected EOF")
	case token.ERROR, token.INVALID:
		p.ReadToken()
		return p.errorf(lisp.LexError, "%s", p.Token().Text)
	default:
		p.ReadToken()
		return p.errorf(lisp.ParseError, "%s unexpected %s", p.Token().Source, p.Token().Type)
	}
}

func (p *Parser) ParseLiteralString() *lisp.LVal {
	if !p.expect(token.STRING) {
		return p.errorf(lisp.ParseError, "invalid string literal: %v", p.PeekType())
	}
	text := p.Token().Text
	s, err := unquoteString(text)
	if err != nil {
		return p.errorf(lisp.ParseError, "invalid string literal: %v", text)
	}
	return p.String(s)
}

func (p *Parser) ParseQuote() *lisp.LVal {
	if !p.expect(token.QUOTE) {
		return p.errorf(lisp.ParseError, "invalid quote: %v", p.PeekType())
	}
	switch p.PeekType() {
	case token.EOF, token.PAREN_R:
		return p.errorf(lisp.ParseError, "quote must be followed by an expression")
	}
	return p.Quote(p.ParseExpression())
}

// ParseAtom classifies an atom token: boolean, number, or symbol.
func (p *Parser) ParseAtom() *lisp.LVal {
	if !p.expect(token.SYMBOL) {
		return p.errorf(lisp.ParseError, "invalid atom: %v", p.PeekType())
	}
	text := p.Token().Text
	switch text {
	case "#t":
		return p.tokenLVal(lisp.True())
	case "#f":
		return p.tokenLVal(lisp.False())
	}
	if v, ok := lisp.ParseNumber(text); ok {
		if v.Type == lisp.LError {
			return p.errorf(lisp.ParseError, "invalid number literal %s: %v", text, v.Err)
		}
		return p.tokenLVal(v)
	}
	return p.Symbol(text)
}

// ParseConsExpression parses a parenthesized expression into a pair chain,
// including dotted improper tails.
func (p *Parser) ParseConsExpression() *lisp.LVal {
	if !p.expect(token.PAREN_L) {
		return p.errorf(lisp.ParseError, "invalid expression: %v", p.PeekType())
	}
	open := p.Token()
	var elems []*lisp.LVal
	tail := lisp.Nil()
	for {
		for p.expect(token.COMMENT) {
		}
		if p.expect(token.EOF) {
			return p.errorf(lisp.ParseError, "unmatched %s", open.Text)
		}
		if p.expect(token.PAREN_R) {
			break
		}
		if p.PeekType() == token.SYMBOL && p.Peek().Text == "." {
			p.ReadToken()
			if len(elems) == 0 {
				return p.errorf(lisp.ParseError, "misplaced dot")
			}
			x := p.ParseExpression()
			if x.Type == lisp.LError {
				return x
			}
			tail = x
			for p.expect(token.COMMENT) {
			}
			if p.expect(token.EOF) {
				return p.errorf(lisp.ParseError, "unmatched %s", open.Text)
			}
			if !p.expect(token.PAREN_R) {
				p.ReadToken()
				return p.errorf(lisp.ParseError, "expression follows dotted tail")
			}
			break
		}
		x := p.ParseExpression()
		if x.Type == lisp.LError {
			return x
		}
		elems = append(elems, x)
	}
	expr := tail
	for i := len(elems) - 1; i >= 0; i-- {
		expr = lisp.Cons(elems[i], expr)
	}
	expr.Source = open.Source
	return expr
}

func (p *Parser) ReadToken() *token.Token {
	p.curr = p.peek
	p.peek = p.lex.NextToken()
	return p.curr
}

func (p *Parser) Token() *token.Token {
	return p.curr
}

func (p *Parser) Peek() *token.Token {
	return p.peek
}

func (p *Parser) PeekType() token.Type {
	return p.peek.Type
}

func (p *Parser) String(s string) *lisp.LVal {
	return p.tokenLVal(lisp.String(s))
}

func (p *Parser) Symbol(sym string) *lisp.LVal {
	return p.tokenLVal(lisp.Symbol(sym))
}

func (p *Parser) Quote(v *lisp.LVal) *lisp.LVal {
	if v.Type == lisp.LError {
		return v
	}
	return p.tokenLVal(lisp.Quote(v))
}

func (p *Parser) tokenLVal(v *lisp.LVal) *lisp.LVal {
	v.Source = p.Token().Source
	return v
}

func (p *Parser) expect(typ ...token.Type) bool {
	peekType := p.peek.Type
	if len(typ) == 0 {
		return peekType != token.EOF
	}
	for _, typ := range typ {
		if typ == peekType {
			p.ReadToken()
			return true
		}
	}
	return false
}

func (p *Parser) errorf(condition string, format string, v ...interface{}) *lisp.LVal {
	err := lisp.ErrorConditionf(condition, format, v...)
	err.Source = p.Token().Source
	return err
}
