package parser

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sebastian-j-ibanez/copper/lisp"
	"github.com/sebastian-j-ibanez/copper/parser/rdparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLVal(t *testing.T) {
	for _, test := range []struct {
		src  string
		want []string
	}{
		{"1", []string{"1"}},
		{"1 2", []string{"1", "2"}},
		{"(+ 1 2/3)", []string{"(+ 1 2/3)"}},
		{"'(a b)", []string{"(quote (a b))"}},
		{"#t #f foo", []string{"#t", "#f", "foo"}},
		{`"str" 1.5`, []string{`"str"`, "1.5"}},
		{"; only a comment", nil},
		{"   ", nil},
		{"(a (b (c)))", []string{"(a (b (c)))"}},
	} {
		vs, _, err := ParseLVal([]byte(test.src))
		require.NoError(t, err, "src %q", test.src)
		require.Len(t, vs, len(test.want), "src %q", test.src)
		for i, want := range test.want {
			assert.Equal(t, want, vs[i].String(), "src %q", test.src)
		}
	}
}

func TestParseLValDottedPairs(t *testing.T) {
	vs, _, err := ParseLVal([]byte("(1 . 2)"))
	require.NoError(t, err)
	require.Len(t, vs, 1)
	require.Equal(t, lisp.LPair, vs[0].Type)
	assert.False(t, vs[0].IsList())
	assert.Equal(t, lisp.LInt, vs[0].CDR.Type)
	assert.Equal(t, "(1 . 2)", vs[0].String())

	vs, _, err = ParseLVal([]byte("(1 2 . 3)"))
	require.NoError(t, err)
	require.Len(t, vs, 1)
	assert.False(t, vs[0].IsList())
	assert.Equal(t, "(1 2 . 3)", vs[0].String())

	for _, src := range []string{"(. 1)", "(1 .)", "(1 . 2 3)", "(1 . 2 . 3)", "(.)"} {
		_, _, err := ParseLVal([]byte(src))
		assert.Error(t, err, "src %q", src)
	}
}

func TestReadersAgree(t *testing.T) {
	// The quick parser and the recursive-descent reader must produce
	// structurally equal expressions for the same source.
	for _, src := range []string{
		"(1 . 2)",
		"(1 2 . 3)",
		"(a . (b . ()))",
		"'(1 . 2)",
		"(+ 1 2/3 4.5)",
		"'(a b (c))",
		`("s" #t ())`,
	} {
		vs, _, err := ParseLVal([]byte(src))
		require.NoError(t, err, "src %q", src)
		exprs, err := rdparser.NewReader().Read("test", strings.NewReader(src))
		require.NoError(t, err, "src %q", src)
		require.Len(t, exprs, len(vs), "src %q", src)
		for i := range vs {
			assert.True(t, lisp.Equal(vs[i], exprs[i]),
				"src %q: quick parser %v, reader %v", src, vs[i], exprs[i])
		}
	}
}

func TestParseLValIncomplete(t *testing.T) {
	_, _, err := ParseLVal([]byte("(1 2"))
	assert.Error(t, err)

	_, _, err = ParseLVal([]byte(")"))
	assert.Error(t, err)
}

func TestParseLValBadNumber(t *testing.T) {
	_, _, err := ParseLVal([]byte("(/ 1 2) 1/0"))
	require.Error(t, err)
	lerr, ok := err.(*lisp.ErrorVal)
	require.True(t, ok)
	assert.Equal(t, lisp.ParseError, lerr.Condition())
}

func TestParseEval(t *testing.T) {
	var buf bytes.Buffer
	env, err := lisp.NewGlobalEnv(lisp.WithStdout(&buf))
	require.NoError(t, err)

	evaled, err := Parse(env, false, []byte("(define x 21) (display (* x 2))"))
	require.NoError(t, err)
	assert.True(t, evaled)
	assert.Equal(t, "42", buf.String())
}

func TestParseRoundTrip(t *testing.T) {
	for _, src := range []string{
		"(lambda (x) (+ x 1/2))",
		"(quote (1 2 (3)))",
		"(if (< x 0.5) 'low 'high)",
	} {
		vs, _, err := ParseLVal([]byte(src))
		require.NoError(t, err)
		require.Len(t, vs, 1)
		again, _, err := ParseLVal([]byte(vs[0].String()))
		require.NoError(t, err)
		require.Len(t, again, 1)
		assert.True(t, lisp.Equal(vs[0], again[0]), "src %q reparsed as %v", src, again[0])
	}
}
