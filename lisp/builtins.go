package lisp

import (
	"fmt"
	"math"
	"math/big"
	"strings"
)

// LBuiltin is a native procedure.  Arguments arrive fully evaluated and
// counted against the procedure's registered arity.
type LBuiltin func(env *LEnv, args []*LVal) *LVal

type langBuiltin struct {
	name  string
	arity Arity
	fun   LBuiltin
}

var langBuiltins = []*langBuiltin{
	{"+", AtLeast(0), builtinAdd},
	{"-", AtLeast(1), builtinSub},
	{"*", AtLeast(0), builtinMul},
	{"/", AtLeast(1), builtinDiv},
	{"=", AtLeast(2), builtinNumEq},
	{"<", AtLeast(2), builtinCompare("<", func(c int) bool { return c < 0 })},
	{">", AtLeast(2), builtinCompare(">", func(c int) bool { return c > 0 })},
	{"<=", AtLeast(2), builtinCompare("<=", func(c int) bool { return c <= 0 })},
	{">=", AtLeast(2), builtinCompare(">=", func(c int) bool { return c >= 0 })},
	{"number?", Exactly(1), builtinTypep(func(v *LVal) bool { return v.IsNumber() })},
	{"complex?", Exactly(1), builtinTypep(typeIs(LComplex))},
	{"real?", Exactly(1), builtinTypep(typeIs(LFloat))},
	{"rational?", Exactly(1), builtinTypep(typeIs(LRat))},
	{"integer?", Exactly(1), builtinTypep(typeIs(LInt))},
	{"exact?", Exactly(1), builtinTypep(isExact)},
	{"inexact?", Exactly(1), builtinTypep(isInexact)},
	{"exact-integer?", Exactly(1), builtinTypep(typeIs(LInt))},
	{"string?", Exactly(1), builtinTypep(typeIs(LString))},
	{"boolean?", Exactly(1), builtinTypep(typeIs(LBool))},
	{"pair?", Exactly(1), builtinTypep(typeIs(LPair))},
	{"null?", Exactly(1), builtinTypep(typeIs(LNil))},
	{"procedure?", Exactly(1), builtinTypep(typeIs(LFun))},
	{"symbol?", Exactly(1), builtinTypep(typeIs(LSymbol))},
	{"list?", Exactly(1), builtinTypep(func(v *LVal) bool { return v.IsList() })},
	{"even?", Exactly(1), builtinEvenp},
	{"odd?", Exactly(1), builtinOddp},
	{"cons", Exactly(2), builtinCons},
	{"car", Exactly(1), builtinCAR},
	{"cdr", Exactly(1), builtinCDR},
	{"cadr", Exactly(1), builtinCADR},
	{"list", AtLeast(0), builtinList},
	{"length", Exactly(1), builtinLength},
	{"append", AtLeast(0), builtinAppend},
	{"reverse", Exactly(1), builtinReverse},
	{"modulo", Exactly(2), builtinModulo},
	{"expt", Exactly(2), builtinExpt},
	{"abs", Exactly(1), builtinAbs},
	{"floor", Exactly(1), builtinFloor},
	{"ceiling", Exactly(1), builtinCeiling},
	{"min", AtLeast(1), builtinExtremum("min", -1)},
	{"max", AtLeast(1), builtinExtremum("max", 1)},
	{"not", Exactly(1), builtinNot},
	{"and", AtLeast(0), builtinAnd},
	{"or", AtLeast(0), builtinOr},
	{"equal?", Exactly(2), builtinEqual},
	{"string-append", AtLeast(0), builtinStringAppend},
	{"string-length", Exactly(1), builtinStringLength},
	{"string->number", Exactly(1), builtinStringToNumber},
	{"number->string", Exactly(1), builtinNumberToString},
	{"string->symbol", Exactly(1), builtinStringToSymbol},
	{"symbol->string", Exactly(1), builtinSymbolToString},
	{"string-upcase", Exactly(1), builtinStringUpcase},
	{"string-downcase", Exactly(1), builtinStringDowncase},
	{"string->list", Exactly(1), builtinStringToList},
	{"string", Between(0, 1), builtinString},
	{"display", Exactly(1), builtinDisplay},
	{"newline", Exactly(0), builtinNewline},
}

// AddBuiltins installs the builtin procedure registry into env.
func AddBuiltins(env *LEnv) {
	for _, b := range langBuiltins {
		env.Put(Symbol(b.name), Fun(b.name, b.arity, b.fun))
	}
}

// berrf returns a type error attributed to the named builtin.
func berrf(name string, format string, v ...interface{}) *LVal {
	return ErrorConditionf(TypeError, name+": "+format, v...)
}

func builtinAdd(env *LEnv, args []*LVal) *LVal {
	acc := Int(0)
	for _, v := range args {
		acc = NumAdd(acc, v)
		if acc.Type == LError {
			return acc
		}
	}
	return acc
}

func builtinSub(env *LEnv, args []*LVal) *LVal {
	if len(args) == 1 {
		return NumNeg(args[0])
	}
	acc := args[0]
	if err := checkNumber("-", acc); err != nil {
		return err
	}
	for _, v := range args[1:] {
		acc = NumSub(acc, v)
		if acc.Type == LError {
			return acc
		}
	}
	return acc
}

func builtinMul(env *LEnv, args []*LVal) *LVal {
	acc := Int(1)
	for _, v := range args {
		acc = NumMul(acc, v)
		if acc.Type == LError {
			return acc
		}
	}
	return acc
}

func builtinDiv(env *LEnv, args []*LVal) *LVal {
	if len(args) == 1 {
		return NumDiv(Int(1), args[0])
	}
	acc := args[0]
	if err := checkNumber("/", acc); err != nil {
		return err
	}
	for _, v := range args[1:] {
		acc = NumDiv(acc, v)
		if acc.Type == LError {
			return acc
		}
	}
	return acc
}

func builtinNumEq(env *LEnv, args []*LVal) *LVal {
	for i := 0; i < len(args)-1; i++ {
		eq, lerr := NumEqual(args[i], args[i+1])
		if lerr != nil {
			return lerr
		}
		if !eq {
			return False()
		}
	}
	return True()
}

// builtinCompare builds a chained ordering predicate from the test applied
// to each adjacent comparison result.
func builtinCompare(name string, test func(int) bool) LBuiltin {
	return func(env *LEnv, args []*LVal) *LVal {
		for i := 0; i < len(args)-1; i++ {
			c, lerr := NumCompare(args[i], args[i+1])
			if lerr != nil {
				return lerr
			}
			if c == cmpUnordered || !test(c) {
				return False()
			}
		}
		return True()
	}
}

func builtinTypep(pred func(*LVal) bool) LBuiltin {
	return func(env *LEnv, args []*LVal) *LVal {
		return Bool(pred(args[0]))
	}
}

func typeIs(t LType) func(*LVal) bool {
	return func(v *LVal) bool { return v.Type == t }
}

func isExact(v *LVal) bool {
	return v.Type == LInt || v.Type == LRat
}

func isInexact(v *LVal) bool {
	return v.Type == LFloat || v.Type == LComplex
}

func builtinEvenp(env *LEnv, args []*LVal) *LVal {
	if args[0].Type != LInt {
		return berrf("even?", "argument is not an integer: %v", args[0].Type)
	}
	return Bool(args[0].Int.Bit(0) == 0)
}

func builtinOddp(env *LEnv, args []*LVal) *LVal {
	if args[0].Type != LInt {
		return berrf("odd?", "argument is not an integer: %v", args[0].Type)
	}
	return Bool(args[0].Int.Bit(0) == 1)
}

func builtinCons(env *LEnv, args []*LVal) *LVal {
	return Cons(args[0], args[1])
}

func builtinCAR(env *LEnv, args []*LVal) *LVal {
	if args[0].Type != LPair {
		return berrf("car", "argument is not a pair: %v", args[0])
	}
	return args[0].CAR
}

func builtinCDR(env *LEnv, args []*LVal) *LVal {
	if args[0].Type != LPair {
		return berrf("cdr", "argument is not a pair: %v", args[0])
	}
	return args[0].CDR
}

func builtinCADR(env *LEnv, args []*LVal) *LVal {
	v := args[0]
	if v.Type != LPair || v.CDR.Type != LPair {
		return berrf("cadr", "argument is not a pair of pairs: %v", v)
	}
	return v.CDR.CAR
}

func builtinList(env *LEnv, args []*LVal) *LVal {
	return Expr(args...)
}

func builtinLength(env *LEnv, args []*LVal) *LVal {
	n, ok := listLen(args[0])
	if !ok {
		return berrf("length", "argument is not a list: %v", args[0])
	}
	return Int(int64(n))
}

func builtinAppend(env *LEnv, args []*LVal) *LVal {
	var elems []*LVal
	for i, v := range args {
		if i == len(args)-1 {
			// The final argument becomes the tail and may be any value.
			break
		}
		s, ok := listSlice(v)
		if !ok {
			return berrf("append", "argument is not a list: %v", v)
		}
		elems = append(elems, s...)
	}
	tail := Nil()
	if len(args) > 0 {
		tail = args[len(args)-1]
	}
	lis := tail
	for i := len(elems) - 1; i >= 0; i-- {
		lis = Cons(elems[i], lis)
	}
	return lis
}

func builtinReverse(env *LEnv, args []*LVal) *LVal {
	s, ok := listSlice(args[0])
	if !ok {
		return berrf("reverse", "argument is not a list: %v", args[0])
	}
	lis := Nil()
	for _, v := range s {
		lis = Cons(v, lis)
	}
	return lis
}

// builtinModulo implements integer modulo with the result taking the sign
// of the divisor.
func builtinModulo(env *LEnv, args []*LVal) *LVal {
	a, b := args[0], args[1]
	if a.Type != LInt {
		return berrf("modulo", "argument is not an integer: %v", a.Type)
	}
	if b.Type != LInt {
		return berrf("modulo", "argument is not an integer: %v", b.Type)
	}
	if b.Int.Sign() == 0 {
		return ErrorConditionf(DivisionByZeroError, "modulo: division by zero")
	}
	m := new(big.Int).Mod(a.Int, b.Int)
	if m.Sign() != 0 && b.Int.Sign() < 0 {
		m.Add(m, b.Int)
	}
	return BigInt(m)
}

func builtinExpt(env *LEnv, args []*LVal) *LVal {
	base, exp := args[0], args[1]
	if err := checkNumber("expt", base); err != nil {
		return err
	}
	if err := checkNumber("expt", exp); err != nil {
		return err
	}
	if base.Type == LComplex || exp.Type == LComplex {
		return berrf("expt", "complex exponentiation is not supported")
	}
	if exp.Type == LInt {
		switch base.Type {
		case LInt:
			if exp.Int.Sign() >= 0 {
				return BigInt(new(big.Int).Exp(base.Int, exp.Int, nil))
			}
			if base.Int.Sign() == 0 {
				return ErrorConditionf(DivisionByZeroError, "expt: zero base with negative exponent")
			}
			abs := new(big.Int).Neg(exp.Int)
			p := new(big.Int).Exp(base.Int, abs, nil)
			return BigRat(new(big.Rat).SetFrac(big.NewInt(1), p))
		case LRat:
			e := exp.Int
			neg := e.Sign() < 0
			if neg {
				if base.Rat.Sign() == 0 {
					return ErrorConditionf(DivisionByZeroError, "expt: zero base with negative exponent")
				}
				e = new(big.Int).Neg(e)
			}
			num := new(big.Int).Exp(base.Rat.Num(), e, nil)
			den := new(big.Int).Exp(base.Rat.Denom(), e, nil)
			if neg {
				num, den = den, num
			}
			return BigRat(new(big.Rat).SetFrac(num, den))
		}
	}
	a := numPromote(base, rankFloat)
	b := numPromote(exp, rankFloat)
	return Float(math.Pow(a.Float, b.Float))
}

func builtinAbs(env *LEnv, args []*LVal) *LVal {
	v := args[0]
	switch v.Type {
	case LInt:
		return BigInt(new(big.Int).Abs(v.Int))
	case LRat:
		return BigRat(new(big.Rat).Abs(v.Rat))
	case LFloat:
		return Float(math.Abs(v.Float))
	default:
		return berrf("abs", "argument is not a real number: %v", v.Type)
	}
}

// builtinFloor rounds toward negative infinity.  Exact arguments produce
// exact integers; big.Rat denominators are positive so Euclidean Div is
// already the floor.
func builtinFloor(env *LEnv, args []*LVal) *LVal {
	v := args[0]
	switch v.Type {
	case LInt:
		return v
	case LRat:
		return BigInt(new(big.Int).Div(v.Rat.Num(), v.Rat.Denom()))
	case LFloat:
		return Float(math.Floor(v.Float))
	default:
		return berrf("floor", "argument is not a real number: %v", v.Type)
	}
}

// builtinCeiling rounds toward positive infinity.
func builtinCeiling(env *LEnv, args []*LVal) *LVal {
	v := args[0]
	switch v.Type {
	case LInt:
		return v
	case LRat:
		q, m := new(big.Int).DivMod(v.Rat.Num(), v.Rat.Denom(), new(big.Int))
		if m.Sign() != 0 {
			q.Add(q, big.NewInt(1))
		}
		return BigInt(q)
	case LFloat:
		return Float(math.Ceil(v.Float))
	default:
		return berrf("ceiling", "argument is not a real number: %v", v.Type)
	}
}

// builtinExtremum builds min and max.  The result is inexact when any
// argument is inexact, even if the winning operand is exact.
func builtinExtremum(name string, want int) LBuiltin {
	return func(env *LEnv, args []*LVal) *LVal {
		if lerr := checkNumber(name, args[0]); lerr != nil {
			return lerr
		}
		best := args[0]
		inexact := isInexact(best)
		for _, v := range args[1:] {
			c, lerr := NumCompare(v, best)
			if lerr != nil {
				return lerr
			}
			if c == cmpUnordered {
				return berrf(name, "arguments are unordered")
			}
			if isInexact(v) {
				inexact = true
			}
			if c == want {
				best = v
			}
		}
		if inexact && !isInexact(best) {
			return numPromote(best, rankFloat)
		}
		return best
	}
}

func builtinNot(env *LEnv, args []*LVal) *LVal {
	return Bool(!IsTrue(args[0]))
}

func builtinAnd(env *LEnv, args []*LVal) *LVal {
	for _, v := range args {
		if !IsTrue(v) {
			return False()
		}
	}
	return True()
}

func builtinOr(env *LEnv, args []*LVal) *LVal {
	for _, v := range args {
		if IsTrue(v) {
			return True()
		}
	}
	return False()
}

func builtinEqual(env *LEnv, args []*LVal) *LVal {
	return Bool(Equal(args[0], args[1]))
}

func builtinStringAppend(env *LEnv, args []*LVal) *LVal {
	var buf strings.Builder
	for _, v := range args {
		if v.Type != LString {
			return berrf("string-append", "argument is not a string: %v", v.Type)
		}
		buf.WriteString(v.Str)
	}
	return String(buf.String())
}

func builtinStringLength(env *LEnv, args []*LVal) *LVal {
	if args[0].Type != LString {
		return berrf("string-length", "argument is not a string: %v", args[0].Type)
	}
	return Int(int64(len([]rune(args[0].Str))))
}

func builtinStringToNumber(env *LEnv, args []*LVal) *LVal {
	if args[0].Type != LString {
		return berrf("string->number", "argument is not a string: %v", args[0].Type)
	}
	v, ok := ParseNumber(args[0].Str)
	if !ok {
		return False()
	}
	return v
}

func builtinNumberToString(env *LEnv, args []*LVal) *LVal {
	if !args[0].IsNumber() {
		return berrf("number->string", "argument is not a number: %v", args[0].Type)
	}
	return String(args[0].String())
}

func builtinStringToSymbol(env *LEnv, args []*LVal) *LVal {
	if args[0].Type != LString {
		return berrf("string->symbol", "argument is not a string: %v", args[0].Type)
	}
	return Symbol(args[0].Str)
}

func builtinSymbolToString(env *LEnv, args []*LVal) *LVal {
	if args[0].Type != LSymbol {
		return berrf("symbol->string", "argument is not a symbol: %v", args[0].Type)
	}
	return String(args[0].Str)
}

func builtinStringUpcase(env *LEnv, args []*LVal) *LVal {
	if args[0].Type != LString {
		return berrf("string-upcase", "argument is not a string: %v", args[0].Type)
	}
	return String(strings.ToUpper(args[0].Str))
}

func builtinStringDowncase(env *LEnv, args []*LVal) *LVal {
	if args[0].Type != LString {
		return berrf("string-downcase", "argument is not a string: %v", args[0].Type)
	}
	return String(strings.ToLower(args[0].Str))
}

// builtinStringToList splits a string into a list of its characters.  There
// is no character type, so each element is a one-character string.
func builtinStringToList(env *LEnv, args []*LVal) *LVal {
	if args[0].Type != LString {
		return berrf("string->list", "argument is not a string: %v", args[0].Type)
	}
	runes := []rune(args[0].Str)
	lis := Nil()
	for i := len(runes) - 1; i >= 0; i-- {
		lis = Cons(String(string(runes[i])), lis)
	}
	return lis
}

// builtinString constructs a string from its character argument, or the
// empty string when called with no arguments.
func builtinString(env *LEnv, args []*LVal) *LVal {
	if len(args) == 0 {
		return String("")
	}
	v := args[0]
	if v.Type != LString || len([]rune(v.Str)) != 1 {
		return berrf("string", "argument is not a character: %v", v)
	}
	return String(v.Str)
}

// builtinDisplay writes the value to the runtime's output.  Strings are
// written raw, without quoting.
func builtinDisplay(env *LEnv, args []*LVal) *LVal {
	v := args[0]
	if v.Type == LString {
		fmt.Fprint(env.Runtime.Stdout, v.Str)
	} else {
		fmt.Fprint(env.Runtime.Stdout, v.String())
	}
	return Void()
}

func builtinNewline(env *LEnv, args []*LVal) *LVal {
	fmt.Fprintln(env.Runtime.Stdout)
	return Void()
}
