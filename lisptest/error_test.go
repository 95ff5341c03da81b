package lisptest

import (
	"testing"
)

func TestErrors(t *testing.T) {
	tests := TestSuite{
		{"unbound symbols", TestSequence{
			{"a", "unbound-variable-error: unbound symbol: a"},
			{"(a)", "unbound-variable-error: unbound symbol: a"},
			{"(+ 1 a)", "unbound-variable-error: unbound symbol: a"},
			{"(set! a 1)", "unbound-variable-error: unbound symbol: a"},
		}},
		{"type errors", TestSequence{
			{"(1 2)", "type-error: not a procedure: 1"},
			{`("f" 2)`, `type-error: not a procedure: "f"`},
			{`(+ 1 "a")`, "type-error: +: argument is not a number: string"},
			{"(< 1 'a)", "type-error: compare: argument is not a number: symbol"},
			{"(< 1 1+2i)", "type-error: complex numbers have no ordering"},
			{"(car 1)", "type-error: car: argument is not a pair: 1"},
			{"(cdr '())", "type-error: cdr: argument is not a pair: ()"},
			{"(length (cons 1 2))", "type-error: length: argument is not a list: (1 . 2)"},
			{"(modulo 1.5 2)", "type-error: modulo: argument is not an integer: real"},
			{"(even? 1.0)", "type-error: even?: argument is not an integer: real"},
			{`(string-length 5)`, "type-error: string-length: argument is not a string: integer"},
			{"(abs 1+2i)", "type-error: abs: argument is not a real number: complex"},
			{"(lambda (1) 1)", "type-error: lambda: parameter is not a symbol: integer"},
			{"(define 1 2)", "type-error: define: first argument is not a symbol: integer"},
		}},
		{"arity errors", TestSequence{
			{"((lambda (x) x))", "arity-error: lambda: expected 1 argument (got 0)"},
			{"((lambda (x) x) 1 2)", "arity-error: lambda: expected 1 argument (got 2)"},
			{"(define (f x) x)", ""},
			{"(f 1 2)", "arity-error: f: expected 1 argument (got 2)"},
			{"(car)", "arity-error: car: expected 1 argument (got 0)"},
			{"(car '(1) '(2))", "arity-error: car: expected 1 argument (got 2)"},
			{"(cons 1)", "arity-error: cons: expected 2 arguments (got 1)"},
			{"(= 1)", "arity-error: =: expected at least 2 arguments (got 1)"},
			{"(-)", "arity-error: -: expected at least 1 argument (got 0)"},
			{"(quote)", "arity-error: quote: one argument expected"},
			{"(quote 1 2)", "arity-error: quote: one argument expected"},
			{"(if #t)", "arity-error: if: two or three arguments expected"},
		}},
		{"error propagation stops evaluation", TestSequence{
			{"(define hits 0)", ""},
			{"(define (count) (set! hits (+ hits 1)))", ""},
			{"(+ (count) 1)", "type-error: +: argument is not a number: void"},
			{"hits", "1"},
			{"(list unknown (count))", "unbound-variable-error: unbound symbol: unknown"},
			{"hits", "1"},
		}},
		{"recursion depth limit", TestSequence{
			{"(define (loop) (loop))", ""},
			{"(loop)", "stack-exhausted-error: evaluation depth exceeded maximum 10000"},
		}},
	}
	RunTestSuite(t, tests)
}
