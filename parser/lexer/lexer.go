package lexer

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/sebastian-j-ibanez/copper/parser/token"
)

// delimiters terminate an atom in addition to whitespace and EOF.
const delimiters = "()';\""

// Lexer tokenizes a source buffer.  Atoms are emitted without semantic
// classification; deciding whether an atom is a number, a boolean, or a
// symbol is the parser's job.
type Lexer struct {
	scanner *token.Scanner
}

func New(s *token.Scanner) *Lexer {
	return &Lexer{scanner: s}
}

func (lex *Lexer) NextToken() *token.Token {
	lex.skipWhitespace()
	c := lex.scanner.Peek()
	switch c {
	case token.RuneEOF:
		return lex.scanner.EmitToken(token.EOF)
	case '(':
		lex.scanner.ScanRune()
		return lex.scanner.EmitToken(token.PAREN_L)
	case ')':
		lex.scanner.ScanRune()
		return lex.scanner.EmitToken(token.PAREN_R)
	case '\'':
		lex.scanner.ScanRune()
		return lex.scanner.EmitToken(token.QUOTE)
	case ';':
		return lex.readComment()
	case '"':
		return lex.readString()
	default:
		return lex.readAtom()
	}
}

func (lex *Lexer) errorf(format string, v ...interface{}) *token.Token {
	tok := &token.Token{
		Type:   token.ERROR,
		Text:   fmt.Sprintf(format, v...),
		Source: lex.scanner.LocStart(),
	}
	lex.scanner.Ignore()
	return tok
}

func (lex *Lexer) skipWhitespace() {
	for unicode.IsSpace(lex.scanner.Peek()) {
		lex.scanner.ScanRune()
	}
	lex.scanner.Ignore()
}

// readComment consumes from ; to the end of the line.  The parser discards
// comment tokens.
func (lex *Lexer) readComment() *token.Token {
	for {
		c := lex.scanner.Peek()
		if c == token.RuneEOF || c == '\n' {
			return lex.scanner.EmitToken(token.COMMENT)
		}
		lex.scanner.ScanRune()
	}
}

// readString consumes a double-quoted string literal.  Escape sequences are
// carried through raw and decoded by the parser.
func (lex *Lexer) readString() *token.Token {
	lex.scanner.ScanRune() // opening quote
	for {
		switch lex.scanner.Peek() {
		case token.RuneEOF:
			return lex.errorf("unterminated string literal")
		case '"':
			lex.scanner.ScanRune()
			return lex.scanner.EmitToken(token.STRING)
		case '\\':
			lex.scanner.ScanRune()
			if lex.scanner.Peek() == token.RuneEOF {
				return lex.errorf("unterminated string literal")
			}
			lex.scanner.ScanRune()
		default:
			lex.scanner.ScanRune()
		}
	}
}

// readAtom consumes a maximal run of non-delimiter runes.
func (lex *Lexer) readAtom() *token.Token {
	for {
		c := lex.scanner.Peek()
		if c == token.RuneEOF || unicode.IsSpace(c) || strings.ContainsRune(delimiters, c) {
			return lex.scanner.EmitToken(token.SYMBOL)
		}
		lex.scanner.ScanRune()
	}
}
