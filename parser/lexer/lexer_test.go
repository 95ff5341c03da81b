package lexer

import (
	"testing"

	"github.com/sebastian-j-ibanez/copper/parser/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenize(src string) []*token.Token {
	lex := New(token.NewScanner("test", []byte(src)))
	var toks []*token.Token
	for {
		tok := lex.NextToken()
		toks = append(toks, tok)
		if tok.Type == token.EOF || tok.Type == token.ERROR {
			return toks
		}
	}
}

func TestTokenTypes(t *testing.T) {
	toks := tokenize(`(define x '(1 2.5 "s")) ; trailing comment`)
	want := []token.Type{
		token.PAREN_L,
		token.SYMBOL, // define
		token.SYMBOL, // x
		token.QUOTE,
		token.PAREN_L,
		token.SYMBOL, // 1
		token.SYMBOL, // 2.5
		token.STRING,
		token.PAREN_R,
		token.PAREN_R,
		token.COMMENT,
		token.EOF,
	}
	require.Len(t, toks, len(want))
	for i, typ := range want {
		assert.Equal(t, typ, toks[i].Type, "token %d %q", i, toks[i].Text)
	}
}

func TestAtomsAreUnclassified(t *testing.T) {
	// The lexer emits every atom as a SYMBOL token; numbers and booleans
	// are the parser's business.
	toks := tokenize("1/2 -3.5e2 #t foo-bar 3+4i")
	require.Len(t, toks, 6)
	texts := []string{"1/2", "-3.5e2", "#t", "foo-bar", "3+4i"}
	for i, text := range texts {
		assert.Equal(t, token.SYMBOL, toks[i].Type)
		assert.Equal(t, text, toks[i].Text)
	}
}

func TestAtomDelimiters(t *testing.T) {
	toks := tokenize("a(b)c'd;x")
	texts := []string{"a", "(", "b", ")", "c", "'", "d", ";x"}
	require.Len(t, toks, len(texts)+1)
	for i, text := range texts {
		assert.Equal(t, text, toks[i].Text)
	}
}

func TestStrings(t *testing.T) {
	toks := tokenize(`"with \"escape\" and ()"`)
	require.Len(t, toks, 2)
	assert.Equal(t, token.STRING, toks[0].Type)
	assert.Equal(t, `"with \"escape\" and ()"`, toks[0].Text)

	toks = tokenize("\"multi\nline\"")
	require.Len(t, toks, 2)
	assert.Equal(t, token.STRING, toks[0].Type)
}

func TestUnterminatedString(t *testing.T) {
	toks := tokenize(`"no closing quote`)
	last := toks[len(toks)-1]
	require.Equal(t, token.ERROR, last.Type)
	assert.Contains(t, last.Text, "unterminated string")
}

func TestLocations(t *testing.T) {
	toks := tokenize("(a\n  b)")
	require.True(t, len(toks) >= 4)
	assert.Equal(t, 1, toks[0].Source.Line)
	assert.Equal(t, 1, toks[0].Source.Col)
	assert.Equal(t, 1, toks[1].Source.Line)
	assert.Equal(t, 2, toks[1].Source.Col)
	assert.Equal(t, 2, toks[2].Source.Line)
	assert.Equal(t, 3, toks[2].Source.Col)
}
