package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLValString(t *testing.T) {
	for _, test := range []struct {
		v    *LVal
		want string
	}{
		{True(), "#t"},
		{False(), "#f"},
		{Int(42), "42"},
		{Rational(1, 2), "1/2"},
		{Float(1.5), "1.5"},
		{Float(1), "1.0"},
		{Float(1e21), "1e+21"},
		{Complex(complex(3, 4)), "3+4i"},
		{Complex(complex(2, 0)), "2+0i"},
		{Complex(complex(0, -2.5)), "0-2.5i"},
		{Symbol("abc"), "abc"},
		{String("a\nb"), `"a\nb"`},
		{Nil(), "()"},
		{Void(), ""},
		{Expr(Int(1), Int(2), Int(3)), "(1 2 3)"},
		{Cons(Int(1), Int(2)), "(1 . 2)"},
		{Cons(Int(1), Cons(Int(2), Int(3))), "(1 2 . 3)"},
		{Quote(Symbol("a")), "(quote a)"},
		{Expr(Expr(Int(1)), Expr()), "((1) ())"},
	} {
		assert.Equal(t, test.want, test.v.String())
	}
}

func TestIsTrue(t *testing.T) {
	assert.False(t, IsTrue(False()))
	assert.True(t, IsTrue(True()))
	assert.True(t, IsTrue(Int(0)))
	assert.True(t, IsTrue(Nil()))
	assert.True(t, IsTrue(String("")))
	assert.True(t, IsTrue(Void()))
}

func TestIsList(t *testing.T) {
	assert.True(t, Nil().IsList())
	assert.True(t, Expr(Int(1), Int(2)).IsList())
	assert.False(t, Cons(Int(1), Int(2)).IsList())
	assert.False(t, Int(1).IsList())
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(Int(1), Int(1)))
	assert.False(t, Equal(Int(1), Float(1)))
	assert.True(t, Equal(Expr(Int(1), Symbol("a")), Expr(Int(1), Symbol("a"))))
	assert.False(t, Equal(Expr(Int(1)), Expr(Int(2))))
	assert.True(t, Equal(Cons(Int(1), Int(2)), Cons(Int(1), Int(2))))
	assert.False(t, Equal(Symbol("a"), String("a")))

	f := Fun("f", Exactly(0), func(env *LEnv, args []*LVal) *LVal { return Nil() })
	assert.True(t, Equal(f, f))
	g := Fun("f", Exactly(0), func(env *LEnv, args []*LVal) *LVal { return Nil() })
	assert.False(t, Equal(f, g))
}

func TestArity(t *testing.T) {
	assert.True(t, Exactly(2).Accepts(2))
	assert.False(t, Exactly(2).Accepts(1))
	assert.True(t, AtLeast(1).Accepts(5))
	assert.False(t, AtLeast(1).Accepts(0))
	assert.True(t, Between(1, 3).Accepts(3))
	assert.False(t, Between(1, 3).Accepts(4))

	assert.Equal(t, "1 argument", Exactly(1).String())
	assert.Equal(t, "2 arguments", Exactly(2).String())
	assert.Equal(t, "at least 1 argument", AtLeast(1).String())
	assert.Equal(t, "any number of arguments", AtLeast(0).String())
}
