package lisp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	for _, test := range []struct {
		text string
		want string
		typ  LType
	}{
		{"0", "0", LInt},
		{"42", "42", LInt},
		{"-42", "-42", LInt},
		{"+7", "7", LInt},
		{"99999999999999999999", "99999999999999999999", LInt},
		{"1/2", "1/2", LRat},
		{"-6/8", "-3/4", LRat},
		{"10/5", "2", LInt},
		{"1.5", "1.5", LFloat},
		{"-0.25", "-0.25", LFloat},
		{"1e3", "1000.0", LFloat},
		{"1.5e-2", "0.015", LFloat},
		{"+inf.0", "+inf.0", LFloat},
		{"-inf.0", "-inf.0", LFloat},
		{"3+4i", "3+4i", LComplex},
		{"-2.5i", "0-2.5i", LComplex},
		{"+i", "0+1i", LComplex},
		{"-i", "0-1i", LComplex},
		{"1e2+0.5i", "100+0.5i", LComplex},
		{"2-3i", "2-3i", LComplex},
	} {
		v, ok := ParseNumber(test.text)
		if assert.True(t, ok, "text %q", test.text) {
			assert.Equal(t, test.typ, v.Type, "text %q", test.text)
			assert.Equal(t, test.want, v.String(), "text %q", test.text)
		}
	}
}

func TestParseNumberRejects(t *testing.T) {
	for _, text := range []string{
		"", "abc", "-", "+", ".", "1.2.3", "1e", "1e+", "i!", "x2i",
		"1/2/3", "1/-2", "--1", "1a", "#t",
	} {
		_, ok := ParseNumber(text)
		assert.False(t, ok, "text %q", text)
	}
}

func TestParseNumberZeroDenominator(t *testing.T) {
	v, ok := ParseNumber("1/0")
	require.True(t, ok)
	require.Equal(t, LError, v.Type)
	assert.Equal(t, DivisionByZeroError, v.Str)
}

func TestNumericContagion(t *testing.T) {
	v := NumAdd(Int(1), Rational(1, 2))
	require.Equal(t, LRat, v.Type)
	assert.Equal(t, "3/2", v.String())

	v = NumAdd(Rational(1, 2), Float(0.5))
	require.Equal(t, LFloat, v.Type)
	assert.Equal(t, "1.0", v.String())

	v = NumMul(Int(2), Complex(complex(3, 4)))
	require.Equal(t, LComplex, v.Type)
	assert.Equal(t, "6+8i", v.String())
}

func TestExactDivision(t *testing.T) {
	v := NumDiv(Int(4), Int(2))
	require.Equal(t, LInt, v.Type)
	assert.Equal(t, "2", v.String())

	v = NumDiv(Int(1), Int(2))
	require.Equal(t, LRat, v.Type)
	assert.Equal(t, "1/2", v.String())

	v = NumDiv(Int(-6), Int(4))
	assert.Equal(t, "-3/2", v.String())
}

func TestDivisionByZero(t *testing.T) {
	v := NumDiv(Int(1), Int(0))
	require.Equal(t, LError, v.Type)
	assert.Equal(t, DivisionByZeroError, v.Str)

	v = NumDiv(Rational(1, 2), NumSub(Rational(1, 2), Rational(1, 2)))
	require.Equal(t, LError, v.Type)
	assert.Equal(t, DivisionByZeroError, v.Str)

	v = NumDiv(Float(1), Float(0))
	require.Equal(t, LFloat, v.Type)
	assert.True(t, math.IsInf(v.Float, 1))

	v = NumDiv(Int(1), Float(0))
	require.Equal(t, LFloat, v.Type)
	assert.True(t, math.IsInf(v.Float, 1))
}

func TestRationalNormalization(t *testing.T) {
	v := Rational(6, 8)
	require.Equal(t, LRat, v.Type)
	assert.Equal(t, "3/4", v.String())

	v = Rational(4, 2)
	assert.Equal(t, LInt, v.Type)

	v = Rational(1, -2)
	assert.Equal(t, "-1/2", v.String())

	v = Rational(1, 0)
	require.Equal(t, LError, v.Type)
	assert.Equal(t, DivisionByZeroError, v.Str)
}

func TestNumEqual(t *testing.T) {
	eq, lerr := NumEqual(Int(1), Float(1))
	require.Nil(t, lerr)
	assert.True(t, eq)

	eq, lerr = NumEqual(Rational(1, 2), Float(0.5))
	require.Nil(t, lerr)
	assert.True(t, eq)

	eq, lerr = NumEqual(Complex(complex(1, 2)), Complex(complex(1, 2)))
	require.Nil(t, lerr)
	assert.True(t, eq)

	_, lerr = NumEqual(Int(1), String("1"))
	require.NotNil(t, lerr)
	assert.Equal(t, TypeError, lerr.Str)
}

func TestNumCompare(t *testing.T) {
	c, lerr := NumCompare(Int(1), Rational(3, 2))
	require.Nil(t, lerr)
	assert.Equal(t, -1, c)

	c, lerr = NumCompare(Float(2), Int(2))
	require.Nil(t, lerr)
	assert.Equal(t, 0, c)

	_, lerr = NumCompare(Int(1), Complex(complex(1, 0)))
	require.NotNil(t, lerr)
	assert.Equal(t, TypeError, lerr.Str)

	c, lerr = NumCompare(Float(math.NaN()), Float(1))
	require.Nil(t, lerr)
	assert.Equal(t, cmpUnordered, c)
}
