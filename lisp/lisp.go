package lisp

import (
	"bytes"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/sebastian-j-ibanez/copper/parser/token"
)

// LType is the type of an LVal
type LType uint

// Possible LType values
const (
	LInvalid LType = iota
	LBool
	LInt
	LRat
	LFloat
	LComplex
	LSymbol
	LString
	LPair
	LNil
	LFun
	LVoid
	LError
)

var lvalTypeStrings = []string{
	LInvalid: "INVALID",
	LBool:    "boolean",
	LInt:     "integer",
	LRat:     "rational",
	LFloat:   "real",
	LComplex: "complex",
	LSymbol:  "symbol",
	LString:  "string",
	LPair:    "pair",
	LNil:     "empty-list",
	LFun:     "procedure",
	LVoid:    "void",
	LError:   "error",
}

func (t LType) String() string {
	if int(t) >= len(lvalTypeStrings) {
		return lvalTypeStrings[LInvalid]
	}
	return lvalTypeStrings[t]
}

// Arity describes how many arguments a procedure accepts.  Max is negative
// for variadic procedures.
type Arity struct {
	Min int
	Max int
}

// Exactly returns an Arity accepting exactly n arguments.
func Exactly(n int) Arity { return Arity{n, n} }

// AtLeast returns an Arity accepting n or more arguments.
func AtLeast(n int) Arity { return Arity{n, -1} }

// Between returns an Arity accepting between n and m arguments inclusive.
func Between(n, m int) Arity { return Arity{n, m} }

// Accepts returns true if n arguments satisfy the rule.
func (a Arity) Accepts(n int) bool {
	return n >= a.Min && (a.Max < 0 || n <= a.Max)
}

func (a Arity) String() string {
	switch {
	case a.Max < 0 && a.Min == 0:
		return "any number of arguments"
	case a.Max < 0 && a.Min == 1:
		return "at least 1 argument"
	case a.Max < 0:
		return fmt.Sprintf("at least %d arguments", a.Min)
	case a.Min == a.Max && a.Min == 1:
		return "1 argument"
	case a.Min == a.Max:
		return fmt.Sprintf("%d arguments", a.Min)
	default:
		return fmt.Sprintf("between %d and %d arguments", a.Min, a.Max)
	}
}

// LVal is a lisp value.  Expression trees produced by the reader are
// themselves LVals (pairs and atoms) so quote can hand program text back to
// the program as ordinary data.
type LVal struct {
	Type   LType
	Source *token.Location

	// Atomic data
	Bool    bool
	Int     *big.Int
	Rat     *big.Rat
	Float   float64
	Complex complex128
	Str     string // symbol text, string contents, or error condition
	Err     error  // error message for LError values

	// Pair cells
	CAR *LVal
	CDR *LVal

	// Procedure data.  Builtin is non-nil for native procedures.  Closures
	// carry Formals, Body, and the environment they captured.
	FID     string
	Arity   Arity
	Builtin LBuiltin
	Formals *LVal
	Body    *LVal
	Env     *LEnv
}

// Bool returns an LBool value.
func Bool(ok bool) *LVal {
	return &LVal{Type: LBool, Bool: ok}
}

// True returns the true boolean value.
func True() *LVal { return Bool(true) }

// False returns the false boolean value.
func False() *LVal { return Bool(false) }

// Int returns an LInt with value x.
func Int(x int64) *LVal {
	return &LVal{Type: LInt, Int: big.NewInt(x)}
}

// BigInt returns an LInt wrapping x.  The caller must not mutate x
// afterwards.
func BigInt(x *big.Int) *LVal {
	return &LVal{Type: LInt, Int: x}
}

// Rational returns the exact value num/den reduced to lowest terms.  A value
// with reduced denominator 1 comes back as an LInt.  A zero denominator is
// rejected at construction.
func Rational(num, den int64) *LVal {
	if den == 0 {
		return ErrorConditionf(DivisionByZeroError, "rational number with zero denominator")
	}
	return BigRat(big.NewRat(num, den))
}

// BigRat returns an exact value wrapping x, normalizing integral values to
// LInt.  The caller must not mutate x afterwards.
func BigRat(x *big.Rat) *LVal {
	if x.IsInt() {
		return BigInt(new(big.Int).Set(x.Num()))
	}
	return &LVal{Type: LRat, Rat: x}
}

// Float returns an LFloat with value x.
func Float(x float64) *LVal {
	return &LVal{Type: LFloat, Float: x}
}

// Complex returns an LComplex with value x.  A zero imaginary part does not
// collapse the value to an LFloat.
func Complex(x complex128) *LVal {
	return &LVal{Type: LComplex, Complex: x}
}

// Symbol returns a symbol with text s.
func Symbol(s string) *LVal {
	return &LVal{Type: LSymbol, Str: s}
}

// String returns an LString value.
func String(s string) *LVal {
	return &LVal{Type: LString, Str: s}
}

// Cons returns a new pair.  When tail is a list the result is a list; any
// other tail makes an improper list.
func Cons(head, tail *LVal) *LVal {
	return &LVal{Type: LPair, CAR: head, CDR: tail}
}

// Expr returns a proper list containing v.
func Expr(v ...*LVal) *LVal {
	lis := Nil()
	for i := len(v) - 1; i >= 0; i-- {
		lis = Cons(v[i], lis)
	}
	return lis
}

// Nil returns the empty list.
func Nil() *LVal {
	return &LVal{Type: LNil}
}

// Void returns the unspecified value produced by forms like define.
func Void() *LVal {
	return &LVal{Type: LVoid}
}

// Fun returns an LVal representing the native procedure fn.
func Fun(fid string, arity Arity, fn LBuiltin) *LVal {
	return &LVal{Type: LFun, FID: fid, Arity: arity, Builtin: fn}
}

// Lambda returns a closure with the given formal parameters and body.  The
// closure captures env by reference so bindings made in env after the
// closure is created remain visible to it.
func Lambda(formals *LVal, body *LVal, env *LEnv) *LVal {
	n, _ := listLen(formals)
	return &LVal{
		Type:    LFun,
		Arity:   Exactly(n),
		Formals: formals,
		Body:    body,
		Env:     env,
	}
}

// Quote wraps v in a (quote ...) expression.
func Quote(v *LVal) *LVal {
	return Expr(Symbol("quote"), v)
}

// IsNil returns true if v is the empty list.
func (v *LVal) IsNil() bool {
	return v.Type == LNil
}

// IsError returns true if v is an error value.
func (v *LVal) IsError() bool {
	return v.Type == LError
}

// IsNumber returns true if v belongs to the numeric tower.
func (v *LVal) IsNumber() bool {
	switch v.Type {
	case LInt, LRat, LFloat, LComplex:
		return true
	}
	return false
}

// IsList returns true if v is a chain of pairs terminated by the empty
// list, or the empty list itself.
func (v *LVal) IsList() bool {
	for v.Type == LPair {
		v = v.CDR
	}
	return v.Type == LNil
}

// IsTrue returns true unless v is the false boolean.  Everything else,
// including 0 and the empty list, counts as true.
func IsTrue(v *LVal) bool {
	return v.Type != LBool || v.Bool
}

// listLen returns the number of elements in the list v.  The second return
// is false if v is not a proper list.
func listLen(v *LVal) (int, bool) {
	n := 0
	for v.Type == LPair {
		n++
		v = v.CDR
	}
	return n, v.Type == LNil
}

// listSlice collects the elements of the list v into a slice.  The second
// return is false if v is not a proper list.
func listSlice(v *LVal) ([]*LVal, bool) {
	var s []*LVal
	for v.Type == LPair {
		s = append(s, v.CAR)
		v = v.CDR
	}
	return s, v.Type == LNil
}

// Equal returns true if a and b are structurally equal.  Numbers are equal
// only with the same representation and value; equality across the tower is
// NumEqual's job.  Procedures are equal only to themselves.
func Equal(a, b *LVal) bool {
	if a == b {
		return true
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case LBool:
		return a.Bool == b.Bool
	case LInt:
		return a.Int.Cmp(b.Int) == 0
	case LRat:
		return a.Rat.Cmp(b.Rat) == 0
	case LFloat:
		return a.Float == b.Float
	case LComplex:
		return a.Complex == b.Complex
	case LSymbol, LString:
		return a.Str == b.Str
	case LPair:
		return Equal(a.CAR, b.CAR) && Equal(a.CDR, b.CDR)
	case LNil, LVoid:
		return true
	default:
		return false
	}
}

// String renders v as source text.  Every literal type reads back as an
// equal value.
func (v *LVal) String() string {
	var buf bytes.Buffer
	v.str(&buf)
	return buf.String()
}

func (v *LVal) str(buf *bytes.Buffer) {
	switch v.Type {
	case LBool:
		if v.Bool {
			buf.WriteString("#t")
		} else {
			buf.WriteString("#f")
		}
	case LInt:
		buf.WriteString(v.Int.String())
	case LRat:
		buf.WriteString(v.Rat.RatString())
	case LFloat:
		buf.WriteString(formatFloat(v.Float))
	case LComplex:
		buf.WriteString(formatComplex(v.Complex))
	case LSymbol:
		buf.WriteString(v.Str)
	case LString:
		buf.WriteString(strconv.Quote(v.Str))
	case LPair:
		v.strPair(buf)
	case LNil:
		buf.WriteString("()")
	case LVoid:
		// the unspecified value has no written representation
	case LFun:
		if v.Builtin != nil {
			fmt.Fprintf(buf, "#<builtin %s>", v.FID)
		} else {
			fmt.Fprintf(buf, "(lambda %v %v)", v.Formals, v.Body)
		}
	case LError:
		if v.Str != "" {
			fmt.Fprintf(buf, "%s: %v", v.Str, v.Err)
		} else {
			fmt.Fprint(buf, v.Err)
		}
	default:
		fmt.Fprintf(buf, "#<invalid %d>", v.Type)
	}
}

func (v *LVal) strPair(buf *bytes.Buffer) {
	buf.WriteString("(")
	for {
		v.CAR.str(buf)
		switch v.CDR.Type {
		case LNil:
			buf.WriteString(")")
			return
		case LPair:
			buf.WriteString(" ")
			v = v.CDR
		default:
			buf.WriteString(" . ")
			v.CDR.str(buf)
			buf.WriteString(")")
			return
		}
	}
}

// formatFloat renders x so the reader classifies the text as a real again.
// A decimal point or exponent is always present in finite output.
func formatFloat(x float64) string {
	s := strconv.FormatFloat(x, 'g', -1, 64)
	switch s {
	case "+Inf":
		return "+inf.0"
	case "-Inf":
		return "-inf.0"
	case "NaN":
		return "+nan.0"
	}
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// formatComplex renders x in rectangular a+bi notation.
func formatComplex(x complex128) string {
	re := strconv.FormatFloat(real(x), 'g', -1, 64)
	im := strconv.FormatFloat(imag(x), 'g', -1, 64)
	if im[0] != '+' && im[0] != '-' {
		im = "+" + im
	}
	return re + im + "i"
}
