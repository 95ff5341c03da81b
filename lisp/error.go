package lisp

import "fmt"

// Error conditions used by the runtime.  Reader errors use LexError and
// ParseError; everything else originates during evaluation.
const (
	LexError             = "lex-error"
	ParseError           = "parse-error"
	UnboundVariableError = "unbound-variable-error"
	TypeError            = "type-error"
	ArityError           = "arity-error"
	DivisionByZeroError  = "division-by-zero-error"
	StackExhaustedError  = "stack-exhausted-error"
)

// ErrorConditionf returns an LError with the given condition and a formatted
// message.
func ErrorConditionf(condition string, format string, v ...interface{}) *LVal {
	return &LVal{
		Type: LError,
		Str:  condition,
		Err:  fmt.Errorf(format, v...),
	}
}

// Errorf returns an LError tagged with the generic type-error condition.
func Errorf(format string, v ...interface{}) *LVal {
	return ErrorConditionf(TypeError, format, v...)
}

// ErrorVal implements the error interface so that lisp errors can cross Go
// API boundaries.  The condition is stored in Str and the message in Err.
type ErrorVal LVal

// Error implements the error interface.
func (e *ErrorVal) Error() string {
	return (*LVal)(e).String()
}

// Condition returns the error's condition tag.
func (e *ErrorVal) Condition() string {
	return e.Str
}

// Unwrap returns the underlying message error.
func (e *ErrorVal) Unwrap() error {
	return e.Err
}

// GoError converts an LError value into a Go error.  GoError returns nil if
// v is not an error value.
func GoError(v *LVal) error {
	if v.Type != LError {
		return nil
	}
	return (*ErrorVal)(v)
}
