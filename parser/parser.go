/*
Package parser provides a quick lisp parser over in-memory text.

	expr   := '(' <expr>* ')' | "'" <expr> | <atom> | <string>
	atom   := /[^\s()';"]+/
	string := '"' <strcontent> '"'

Atoms are classified after the grammar match: #t and #f become booleans,
numeric literals become numbers, and everything else is a symbol.  The
recursive-descent reader in parser/rdparser handles streaming sources and
carries source locations; this package trades those away for a compact
grammar.
*/
package parser

import (
	"fmt"
	"io"

	parsec "github.com/prataprc/goparsec"
	"github.com/sebastian-j-ibanez/copper/lisp"
)

const (
	nodeInvalid nodeType = iota
	nodeTerm
	nodeSExpr
	nodeQExpr
)

var nodeTypeStrings = []string{
	nodeInvalid: "INVALID",
	nodeTerm:    "TERM",
	nodeSExpr:   "SEXPR",
	nodeQExpr:   "QEXPR",
}

// Parse parses and evaluates lisp expressions in env.  When print is true
// each result is written to standard output.
func Parse(env *lisp.LEnv, print bool, text []byte) (bool, error) {
	s := parsec.NewScanner(text)
	parser := newParsecParser()

	evaled := false
	root, s := parser(s)
	for root != nil {
		evaled = evalParsecRoot(env, print, root)
		root, s = parser(s)
	}
	return evaled, nil
}

// ParseLVal parses LVal values from text and returns them.  The number of
// bytes read is returned along with any error encountered in parsing.
func ParseLVal(text []byte) ([]*lisp.LVal, int, error) {
	var v []*lisp.LVal
	s := parsec.NewScanner(text)
	parser := newParsecParser()
	root, s := parser(s)
	for root != nil {
		lval := getLVal(root)
		if lval != nil {
			if lval.Type == lisp.LError {
				return v, s.GetCursor(), lisp.GoError(lval)
			}
			v = append(v, lval)
		}
		root, s = parser(s)
	}
	_, s = s.SkipWS()
	if !s.Endof() {
		return v, s.GetCursor(), io.ErrUnexpectedEOF
	}
	return v, s.GetCursor(), nil
}

func newParsecParser() parsec.Parser {
	openP := parsec.Atom("(", "OPENP")
	closeP := parsec.Atom(")", "CLOSEP")
	q := parsec.Atom("'", "QUOTE")
	comment := parsec.Token(`;([^\n]*[^\s])?`, "COMMENT")
	atom := parsec.Token(`[^\s()';"]+`, "ATOM")
	term := parsec.OrdChoice(astNode(nodeTerm),
		parsec.String(),
		atom,
	)
	var expr parsec.Parser // forward declaration allows for recursive parsing
	exprList := parsec.Kleene(nil, &expr)
	sexpr := parsec.And(astNode(nodeSExpr), openP, exprList, closeP)
	qexpr := parsec.And(astNode(nodeQExpr), q, &expr)
	expr = parsec.OrdChoice(nil, comment, sexpr, qexpr, term)
	return expr
}

type nodeType uint

func (t nodeType) String() string {
	if int(t) >= len(nodeTypeStrings) {
		return nodeTypeStrings[nodeInvalid]
	}
	return nodeTypeStrings[t]
}

func newAST(typ nodeType, nodes []parsec.ParsecNode) parsec.ParsecNode {
	nodes = cleanParsecNodeList(nodes)
	switch typ {
	case nodeTerm:
		switch term := nodes[0].(type) {
		case string:
			return lisp.String(unquoteString(term))
		case *parsec.Terminal:
			return classifyAtom(term.Value)
		}
		return nil
	case nodeSExpr:
		// We don't want terminal parsec nodes '(' and ')'
		var elems []*lisp.LVal
		for _, c := range nodes {
			if v, ok := c.(*lisp.LVal); ok {
				if v.Type == lisp.LError {
					return v
				}
				elems = append(elems, v)
			}
		}
		return buildList(elems)
	case nodeQExpr:
		c, ok := nodes[1].(*lisp.LVal)
		if !ok {
			return lisp.ErrorConditionf(lisp.ParseError, "quote must be followed by an expression")
		}
		if c.Type == lisp.LError {
			return c
		}
		return lisp.Quote(c)
	default:
		panic(fmt.Sprintf("unknown nodeType: %s (%d)", typ, typ))
	}
}

// buildList assembles parsed list elements into a pair chain.  A dot atom
// in the second-to-last position makes the final element the tail of an
// improper list, matching the recursive-descent reader; a dot anywhere else
// is a parse error.
func buildList(elems []*lisp.LVal) *lisp.LVal {
	tail := lisp.Nil()
	for i, v := range elems {
		if v.Type != lisp.LSymbol || v.Str != "." {
			continue
		}
		if i == 0 || i != len(elems)-2 {
			return lisp.ErrorConditionf(lisp.ParseError, "misplaced dot")
		}
		tail = elems[len(elems)-1]
		elems = elems[:i]
	}
	lis := tail
	for i := len(elems) - 1; i >= 0; i-- {
		lis = lisp.Cons(elems[i], lis)
	}
	return lis
}

// classifyAtom decides whether an atom is a boolean, a number, or a symbol.
func classifyAtom(text string) *lisp.LVal {
	switch text {
	case "#t":
		return lisp.True()
	case "#f":
		return lisp.False()
	}
	if v, ok := lisp.ParseNumber(text); ok {
		if v.Type == lisp.LError {
			return lisp.ErrorConditionf(lisp.ParseError, "invalid number literal %s: %v", text, v.Err)
		}
		return v
	}
	return lisp.Symbol(text)
}

func cleanParsecNodeList(lis []parsec.ParsecNode) []parsec.ParsecNode {
	var nodes []parsec.ParsecNode
	for _, n := range lis {
		switch node := n.(type) {
		case []parsec.ParsecNode:
			nodes = append(nodes, cleanParsecNodeList(node)...)
		default:
			nodes = append(nodes, node)
		}
	}
	return nodes
}

func astNode(t nodeType) parsec.Nodify {
	return func(nodes []parsec.ParsecNode) parsec.ParsecNode {
		return newAST(t, nodes)
	}
}

func getLVal(root parsec.ParsecNode) *lisp.LVal {
	nodes := cleanParsecNodeList([]parsec.ParsecNode{root})
	if len(nodes) == 0 {
		// we can be here if there is only whitespace on a line
		return nil
	}
	lval, ok := nodes[0].(*lisp.LVal)
	if !ok {
		// we can be here if there is only a comment on a line
		return nil
	}
	return lval
}

func evalParsecRoot(env *lisp.LEnv, print bool, root parsec.ParsecNode) bool {
	v := getLVal(root)
	if v == nil {
		return false
	}
	r := env.Eval(v)
	if print && r.Type != lisp.LVoid {
		fmt.Println(r)
	}
	return true
}

func unquoteString(s string) string {
	return s[1 : len(s)-1]
}
