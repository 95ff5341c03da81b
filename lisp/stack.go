package lisp

// DefaultMaxEvalDepth is the evaluation depth limit used when a runtime is
// not configured with an explicit limit.
const DefaultMaxEvalDepth = 10000

// CallStack meters evaluation depth so that runaway recursion surfaces an
// error value instead of exhausting the goroutine stack.
type CallStack struct {
	Height    int
	MaxHeight int
}

// Push records entry into a nested evaluation.  Push returns an error value
// when the new height exceeds the configured limit.
func (s *CallStack) Push() *LVal {
	if s.MaxHeight > 0 && s.Height >= s.MaxHeight {
		return ErrorConditionf(StackExhaustedError, "evaluation depth exceeded maximum %d", s.MaxHeight)
	}
	s.Height++
	return nil
}

// Pop records exit from a nested evaluation.
func (s *CallStack) Pop() {
	if s.Height == 0 {
		panic("pop on empty stack")
	}
	s.Height--
}
