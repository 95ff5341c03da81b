package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/sebastian-j-ibanez/copper/lisp"
	"github.com/sebastian-j-ibanez/copper/parser/lexer"
	"github.com/sebastian-j-ibanez/copper/parser/rdparser"
	"github.com/sebastian-j-ibanez/copper/parser/token"
)

// RunRepl runs an interactive session in env.  Input continues across lines
// until every opened expression is closed.
func RunRepl(env *lisp.LEnv, prompt string) {
	rl, err := readline.New(prompt)
	if err != nil {
		errln(err)
		return
	}
	defer rl.Close()
	contPrompt := strings.Repeat(" ", len(prompt))

	var buf []byte
	for {
		var line []byte
		line, err = rl.ReadSlice()
		if err != nil && err != readline.ErrInterrupt {
			break
		}
		if err == readline.ErrInterrupt {
			line = nil
			buf = nil
			rl.SetPrompt(prompt)
		}
		if len(buf) != 0 {
			buf = append(buf, '\n')
			line = append(buf, line...)
			buf = nil
			rl.SetPrompt(prompt)
		}
		if len(line) == 0 {
			continue
		}
		if !inputComplete(line) {
			buf = line
			rl.SetPrompt(contPrompt)
			continue
		}
		evalLine(env, line)
	}
	if err != io.EOF {
		errln(err)
	}
}

// evalLine parses and evaluates one complete unit of input, printing each
// non-void result.
func evalLine(env *lisp.LEnv, line []byte) {
	exprs, err := rdparser.NewReader().Read("repl", strings.NewReader(string(line)))
	if err != nil {
		errln(err)
		return
	}
	for _, expr := range exprs {
		v := env.Eval(expr)
		if v.Type == lisp.LError {
			errln(lisp.GoError(v))
			return
		}
		if v.Type != lisp.LVoid {
			fmt.Println(v)
		}
	}
}

// inputComplete returns true once the buffered input holds no unclosed
// parenthesis or unterminated string.  Lex errors count as complete so the
// parser can report them.
func inputComplete(src []byte) bool {
	lex := lexer.New(token.NewScanner("repl", src))
	depth := 0
	for {
		tok := lex.NextToken()
		switch tok.Type {
		case token.EOF:
			return depth <= 0
		case token.PAREN_L:
			depth++
		case token.PAREN_R:
			depth--
		case token.ERROR:
			if strings.Contains(tok.Text, "unterminated string") {
				return false
			}
			return true
		}
	}
}

func errln(v ...interface{}) {
	fmt.Fprintln(os.Stderr, v...)
}
