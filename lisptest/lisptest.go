package lisptest

import (
	"io"
	"testing"

	"github.com/sebastian-j-ibanez/copper/lisp"
	"github.com/sebastian-j-ibanez/copper/parser"
	"github.com/sebastian-j-ibanez/copper/parser/rdparser"
)

// TestSequence is a sequence of expressions which are evaluated sequentially
// by a lisp.LEnv.
type TestSequence []struct {
	Expr   string // an expression
	Result string // the printed result
}

// TestSuite is a set of named TestSequences
type TestSuite []struct {
	Name string
	TestSequence
}

// RunTestSuite runs each TestSequence in tests on isolated lisp.LEnvs.
func RunTestSuite(t *testing.T, tests TestSuite) {
	for i, test := range tests {
		env, err := lisp.NewGlobalEnv(
			lisp.WithReader(rdparser.NewReader()),
			lisp.WithStdout(io.Discard),
		)
		if err != nil {
			t.Errorf("test %d %q: environment: %v", i, test.Name, err)
			continue
		}
		for j, expr := range test.TestSequence {
			v, _, err := parser.ParseLVal([]byte(expr.Expr))
			if err != nil {
				t.Errorf("test %d %q: expr %d: parse error: %v", i, test.Name, j, err)
				continue
			}
			if len(v) != 1 {
				t.Errorf("test %d %q: expr %d: expected one expression parsed (got %d)", i, test.Name, j, len(v))
				continue
			}
			result := env.Eval(v[0]).String()
			if result != expr.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)", i, test.Name, j, expr.Result, result)
			}
		}
	}
}
