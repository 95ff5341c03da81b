package lisp

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Numeric tower rank order.  Binary operations promote both operands to the
// higher rank before operating.
const (
	rankInt = iota
	rankRat
	rankFloat
	rankComplex
)

func numRank(v *LVal) int {
	switch v.Type {
	case LInt:
		return rankInt
	case LRat:
		return rankRat
	case LFloat:
		return rankFloat
	default:
		return rankComplex
	}
}

// numPromote converts v to the representation of the given rank.  v must be
// a number with rank at most r.
func numPromote(v *LVal, r int) *LVal {
	for numRank(v) < r {
		switch v.Type {
		case LInt:
			if r == rankRat {
				v = &LVal{Type: LRat, Rat: new(big.Rat).SetInt(v.Int)}
			} else {
				f, _ := new(big.Float).SetInt(v.Int).Float64()
				v = Float(f)
			}
		case LRat:
			f, _ := v.Rat.Float64()
			v = Float(f)
		case LFloat:
			v = Complex(complex(v.Float, 0))
		}
	}
	return v
}

func checkNumber(name string, v *LVal) *LVal {
	if !v.IsNumber() {
		return ErrorConditionf(TypeError, "%s: argument is not a number: %v", name, v.Type)
	}
	return nil
}

// NumAdd returns a+b with the usual promotion rules.
func NumAdd(a, b *LVal) *LVal {
	if err := checkNumber("+", a); err != nil {
		return err
	}
	if err := checkNumber("+", b); err != nil {
		return err
	}
	r := maxRank(a, b)
	a, b = numPromote(a, r), numPromote(b, r)
	switch r {
	case rankInt:
		return BigInt(new(big.Int).Add(a.Int, b.Int))
	case rankRat:
		return BigRat(new(big.Rat).Add(a.Rat, b.Rat))
	case rankFloat:
		return Float(a.Float + b.Float)
	default:
		return Complex(a.Complex + b.Complex)
	}
}

// NumSub returns a-b.
func NumSub(a, b *LVal) *LVal {
	if err := checkNumber("-", a); err != nil {
		return err
	}
	if err := checkNumber("-", b); err != nil {
		return err
	}
	r := maxRank(a, b)
	a, b = numPromote(a, r), numPromote(b, r)
	switch r {
	case rankInt:
		return BigInt(new(big.Int).Sub(a.Int, b.Int))
	case rankRat:
		return BigRat(new(big.Rat).Sub(a.Rat, b.Rat))
	case rankFloat:
		return Float(a.Float - b.Float)
	default:
		return Complex(a.Complex - b.Complex)
	}
}

// NumMul returns a*b.
func NumMul(a, b *LVal) *LVal {
	if err := checkNumber("*", a); err != nil {
		return err
	}
	if err := checkNumber("*", b); err != nil {
		return err
	}
	r := maxRank(a, b)
	a, b = numPromote(a, r), numPromote(b, r)
	switch r {
	case rankInt:
		return BigInt(new(big.Int).Mul(a.Int, b.Int))
	case rankRat:
		return BigRat(new(big.Rat).Mul(a.Rat, b.Rat))
	case rankFloat:
		return Float(a.Float * b.Float)
	default:
		return Complex(a.Complex * b.Complex)
	}
}

// NumDiv returns a/b.  Division by an exact zero is an error.  Division by
// an inexact zero follows IEEE-754 and produces infinities or NaN.  Integer
// division that is not exact produces a rational in lowest terms.
func NumDiv(a, b *LVal) *LVal {
	if err := checkNumber("/", a); err != nil {
		return err
	}
	if err := checkNumber("/", b); err != nil {
		return err
	}
	if isExactZero(b) {
		return ErrorConditionf(DivisionByZeroError, "division by zero")
	}
	r := maxRank(a, b)
	a, b = numPromote(a, r), numPromote(b, r)
	switch r {
	case rankInt:
		q, rem := new(big.Int).QuoRem(a.Int, b.Int, new(big.Int))
		if rem.Sign() == 0 {
			return BigInt(q)
		}
		return BigRat(new(big.Rat).SetFrac(a.Int, b.Int))
	case rankRat:
		return BigRat(new(big.Rat).Quo(a.Rat, b.Rat))
	case rankFloat:
		return Float(a.Float / b.Float)
	default:
		return Complex(a.Complex / b.Complex)
	}
}

// NumNeg returns -a.
func NumNeg(a *LVal) *LVal {
	if err := checkNumber("-", a); err != nil {
		return err
	}
	switch a.Type {
	case LInt:
		return BigInt(new(big.Int).Neg(a.Int))
	case LRat:
		return BigRat(new(big.Rat).Neg(a.Rat))
	case LFloat:
		return Float(-a.Float)
	default:
		return Complex(-a.Complex)
	}
}

// NumEqual reports whether a and b are numerically equal.  Equality is
// defined across the whole tower, complex values included.
func NumEqual(a, b *LVal) (bool, *LVal) {
	if err := checkNumber("=", a); err != nil {
		return false, err
	}
	if err := checkNumber("=", b); err != nil {
		return false, err
	}
	r := maxRank(a, b)
	a, b = numPromote(a, r), numPromote(b, r)
	switch r {
	case rankInt:
		return a.Int.Cmp(b.Int) == 0, nil
	case rankRat:
		return a.Rat.Cmp(b.Rat) == 0, nil
	case rankFloat:
		return a.Float == b.Float, nil
	default:
		return a.Complex == b.Complex, nil
	}
}

// NumCompare returns -1, 0, or 1 ordering a relative to b.  Complex operands
// have no ordering and produce a type-error.  Comparisons involving NaN
// return cmpUnordered.
func NumCompare(a, b *LVal) (int, *LVal) {
	if err := checkNumber("compare", a); err != nil {
		return 0, err
	}
	if err := checkNumber("compare", b); err != nil {
		return 0, err
	}
	if a.Type == LComplex || b.Type == LComplex {
		return 0, ErrorConditionf(TypeError, "complex numbers have no ordering")
	}
	r := maxRank(a, b)
	a, b = numPromote(a, r), numPromote(b, r)
	switch r {
	case rankInt:
		return a.Int.Cmp(b.Int), nil
	case rankRat:
		return a.Rat.Cmp(b.Rat), nil
	default:
		switch {
		case math.IsNaN(a.Float) || math.IsNaN(b.Float):
			return cmpUnordered, nil
		case a.Float < b.Float:
			return -1, nil
		case a.Float > b.Float:
			return 1, nil
		default:
			return 0, nil
		}
	}
}

// cmpUnordered is returned by NumCompare when either operand is NaN.  Every
// ordering test against it fails.
const cmpUnordered = 2

func maxRank(a, b *LVal) int {
	ra, rb := numRank(a), numRank(b)
	if ra > rb {
		return ra
	}
	return rb
}

func isExactZero(v *LVal) bool {
	switch v.Type {
	case LInt:
		return v.Int.Sign() == 0
	case LRat:
		return v.Rat.Sign() == 0
	}
	return false
}

// ParseNumber classifies the literal text as a number.  Classification is
// attempted in order: integer, rational, real, complex.  ok is false when
// text is not numeric syntax at all.  Numeric syntax with an illegal value
// (a zero denominator) returns an error value with ok true.
func ParseNumber(text string) (v *LVal, ok bool) {
	if text == "" {
		return nil, false
	}
	if v := parseInt(text); v != nil {
		return v, true
	}
	if v, ok := parseRat(text); ok {
		return v, true
	}
	if v := parseReal(text); v != nil {
		return v, true
	}
	if v := parseComplex(text); v != nil {
		return v, true
	}
	return nil, false
}

func parseInt(text string) *LVal {
	i, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return nil
	}
	return BigInt(i)
}

func parseRat(text string) (*LVal, bool) {
	slash := strings.IndexByte(text, '/')
	if slash < 0 {
		return nil, false
	}
	num, ok := new(big.Int).SetString(text[:slash], 10)
	if !ok {
		return nil, false
	}
	den, ok := new(big.Int).SetString(text[slash+1:], 10)
	if !ok || strings.HasPrefix(text[slash+1:], "-") || strings.HasPrefix(text[slash+1:], "+") {
		return nil, false
	}
	if den.Sign() == 0 {
		return ErrorConditionf(DivisionByZeroError, "rational number with zero denominator: %s", text), true
	}
	return BigRat(new(big.Rat).SetFrac(num, den)), true
}

func parseReal(text string) *LVal {
	switch text {
	case "+inf.0":
		return Float(math.Inf(1))
	case "-inf.0":
		return Float(math.Inf(-1))
	case "+nan.0", "-nan.0":
		return Float(math.NaN())
	}
	f, ok := parseFloatText(text)
	if !ok {
		return nil
	}
	return Float(f)
}

// parseComplex recognizes rectangular literals with a trailing i: 3+4i,
// -2.5i, +i, 1e2-0.5i.
func parseComplex(text string) *LVal {
	if !strings.HasSuffix(text, "i") {
		return nil
	}
	body := text[:len(text)-1]
	if body == "" {
		// a bare i is a symbol
		return nil
	}
	// Find the sign splitting the real and imaginary parts.  Signs that
	// follow an exponent marker belong to the exponent.
	split := -1
	for i := len(body) - 1; i > 0; i-- {
		c := body[i]
		if c != '+' && c != '-' {
			continue
		}
		prev := body[i-1]
		if prev == 'e' || prev == 'E' {
			continue
		}
		split = i
		break
	}
	if split < 0 {
		// Pure imaginary: 4i, -2.5i, +i, -i.
		im, ok := parseSignedPart(body)
		if !ok {
			return nil
		}
		return Complex(complex(0, im))
	}
	re, ok := parseFloatText(body[:split])
	if !ok {
		return nil
	}
	im, ok := parseSignedPart(body[split:])
	if !ok {
		return nil
	}
	return Complex(complex(re, im))
}

// parseSignedPart parses the imaginary coefficient, treating a bare sign as
// an implicit 1.
func parseSignedPart(text string) (float64, bool) {
	switch text {
	case "", "+":
		return 1, true
	case "-":
		return -1, true
	}
	return parseFloatText(text)
}

// parseFloatText accepts decimal float syntax: optional sign, digits with an
// optional decimal point, optional exponent.  Hex floats and the leading
// "0x" forms strconv tolerates are not numbers here.
func parseFloatText(text string) (float64, bool) {
	s := text
	if s == "" {
		return 0, false
	}
	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
	}
	digit := false
	dot := false
	i := 0
	for ; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			digit = true
		case c == '.' && !dot:
			dot = true
		case (c == 'e' || c == 'E') && digit:
			exp := s[i+1:]
			if exp == "" {
				return 0, false
			}
			if exp[0] == '+' || exp[0] == '-' {
				exp = exp[1:]
			}
			if exp == "" {
				return 0, false
			}
			for _, c := range exp {
				if c < '0' || c > '9' {
					return 0, false
				}
			}
			i = len(s)
		default:
			return 0, false
		}
	}
	if !digit {
		return 0, false
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
