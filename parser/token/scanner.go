package token

import "unicode/utf8"

// RuneEOF is returned by Peek and ScanRune when the source is exhausted.
const RuneEOF rune = -1

// Scanner builds tokens from an in-memory source buffer, tracking line and
// column positions as it goes.
type Scanner struct {
	file string
	src  []byte

	start int // index of the first byte of the current token
	pos   int // index of the next byte to scan

	line      int // line number at pos
	col       int // column number at pos
	startLine int // line number at start
	startCol  int // column number at start
}

// NewScanner initializes and returns a new Scanner reading src.
func NewScanner(file string, src []byte) *Scanner {
	return &Scanner{
		file:      file,
		src:       src,
		line:      1,
		col:       1,
		startLine: 1,
		startCol:  1,
	}
}

// EmitToken returns a token containing the text scanned since the last call
// to either EmitToken or Ignore.
func (s *Scanner) EmitToken(typ Type) *Token {
	tok := &Token{
		Type:   typ,
		Text:   s.Text(),
		Source: s.LocStart(),
	}
	s.Ignore()
	return tok
}

// Ignore discards all text scanned since the last call to either EmitToken
// or Ignore.
func (s *Scanner) Ignore() {
	s.start = s.pos
	s.startLine = s.line
	s.startCol = s.col
}

// Text returns the text scanned since the last call to either EmitToken or
// Ignore.
func (s *Scanner) Text() string {
	return string(s.src[s.start:s.pos])
}

// Peek returns the next rune without consuming it, or EOF.
func (s *Scanner) Peek() rune {
	if s.pos >= len(s.src) {
		return RuneEOF
	}
	c, _ := utf8.DecodeRune(s.src[s.pos:])
	return c
}

// ScanRune consumes the next rune for inclusion in the current token and
// returns it, or returns EOF.
func (s *Scanner) ScanRune() rune {
	if s.pos >= len(s.src) {
		return RuneEOF
	}
	c, n := utf8.DecodeRune(s.src[s.pos:])
	s.pos += n
	if c == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return c
}

// LocStart returns a Location referencing the beginning of the current
// token, just beyond the end of the previous token.
func (s *Scanner) LocStart() *Location {
	return &Location{
		File: s.file,
		Pos:  s.start,
		Line: s.startLine,
		Col:  s.startCol,
	}
}

// Loc returns a Location referencing the current scanner position.
func (s *Scanner) Loc() *Location {
	return &Location{
		File: s.file,
		Pos:  s.pos,
		Line: s.line,
		Col:  s.col,
	}
}
