package lisp

import (
	"io"
	"os"
	"strings"
)

// Reader abstracts the parser so the lisp package does not import it
// directly.  Read parses a complete source stream into expression trees.
type Reader interface {
	Read(name string, r io.Reader) ([]*LVal, error)
}

// Runtime holds the per-interpreter state shared by an environment tree.
// Independent interpreters in one process each have their own Runtime.
type Runtime struct {
	Stack  *CallStack
	Stdout io.Writer
	Reader Reader
}

// StandardRuntime returns a Runtime with the default depth limit and output
// writer.  The Reader is nil until configured with WithReader.
func StandardRuntime() *Runtime {
	return &Runtime{
		Stack:  &CallStack{MaxHeight: DefaultMaxEvalDepth},
		Stdout: os.Stdout,
	}
}

// Config modifies an environment during NewGlobalEnv.  A non-nil return
// aborts initialization.
type Config func(env *LEnv) *LVal

// WithReader configures the runtime's source reader.
func WithReader(r Reader) Config {
	return func(env *LEnv) *LVal {
		env.Runtime.Reader = r
		return nil
	}
}

// WithStdout configures the writer used by display and newline.
func WithStdout(w io.Writer) Config {
	return func(env *LEnv) *LVal {
		env.Runtime.Stdout = w
		return nil
	}
}

// WithMaximumEvalDepth configures the evaluation depth limit.
func WithMaximumEvalDepth(n int) Config {
	return func(env *LEnv) *LVal {
		env.Runtime.Stack.MaxHeight = n
		return nil
	}
}

// NewGlobalEnv returns a root environment with the builtin procedures
// installed.  Each call returns an independent interpreter.
func NewGlobalEnv(config ...Config) (*LEnv, error) {
	env := NewEnv(nil)
	AddBuiltins(env)
	for _, fn := range config {
		if lerr := fn(env); lerr != nil {
			return nil, GoError(lerr)
		}
	}
	return env, nil
}

// Load reads and evaluates a source stream, returning the value of the last
// expression.  Evaluation stops at the first error.
func (env *LEnv) Load(name string, r io.Reader) *LVal {
	if env.Runtime.Reader == nil {
		return Errorf("no reader configured for the environment")
	}
	exprs, err := env.Runtime.Reader.Read(name, r)
	if err != nil {
		if lerr, ok := err.(*ErrorVal); ok {
			return (*LVal)(lerr)
		}
		return ErrorConditionf(ParseError, "%v", err)
	}
	ret := Void()
	for _, expr := range exprs {
		ret = env.Eval(expr)
		if ret.Type == LError {
			return ret
		}
	}
	return ret
}

// LoadString evaluates the source text as LoadFile would a file.
func (env *LEnv) LoadString(name, text string) *LVal {
	return env.Load(name, strings.NewReader(text))
}

// LoadFile reads and evaluates the named file.
func (env *LEnv) LoadFile(path string) *LVal {
	f, err := os.Open(path)
	if err != nil {
		return Errorf("%v", err)
	}
	defer f.Close()
	return env.Load(path, f)
}
