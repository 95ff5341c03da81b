package lisp

// LEnv is a lexical environment frame.  Values are stored and returned by
// reference so that closures observe bindings made in their captured frame
// after the closure was created.
type LEnv struct {
	Scope   map[string]*LVal
	Parent  *LEnv
	Runtime *Runtime
}

// NewEnv returns a new environment frame with the given parent.  A child
// frame shares its parent's Runtime; a root frame gets a fresh one.
func NewEnv(parent *LEnv) *LEnv {
	rt := StandardRuntime()
	if parent != nil {
		rt = parent.Runtime
	}
	return &LEnv{
		Scope:   make(map[string]*LVal),
		Parent:  parent,
		Runtime: rt,
	}
}

// Get returns the value bound to the symbol k, searching enclosing frames
// out to the root.  An unbound symbol is an error.
func (env *LEnv) Get(k *LVal) *LVal {
	if k.Type != LSymbol {
		return ErrorConditionf(TypeError, "cannot resolve non-symbol: %v", k.Type)
	}
	for e := env; e != nil; e = e.Parent {
		if v, ok := e.Scope[k.Str]; ok {
			return v
		}
	}
	return ErrorConditionf(UnboundVariableError, "unbound symbol: %v", k.Str)
}

// Put binds the symbol k to v in this frame, replacing any existing binding
// in this frame and shadowing bindings in enclosing frames.
func (env *LEnv) Put(k *LVal, v *LVal) *LVal {
	if k.Type != LSymbol {
		return ErrorConditionf(TypeError, "cannot bind non-symbol: %v", k.Type)
	}
	env.Scope[k.Str] = v
	return Void()
}

// Update rebinds the nearest existing binding of the symbol k, searching out
// to the root.  An unbound symbol is an error.
func (env *LEnv) Update(k *LVal, v *LVal) *LVal {
	if k.Type != LSymbol {
		return ErrorConditionf(TypeError, "cannot bind non-symbol: %v", k.Type)
	}
	for e := env; e != nil; e = e.Parent {
		if _, ok := e.Scope[k.Str]; ok {
			e.Scope[k.Str] = v
			return Void()
		}
	}
	return ErrorConditionf(UnboundVariableError, "unbound symbol: %v", k.Str)
}

// root returns the root frame of the environment chain.
func (env *LEnv) root() *LEnv {
	for env.Parent != nil {
		env = env.Parent
	}
	return env
}

// PutGlobal binds the symbol k in the root frame.
func (env *LEnv) PutGlobal(k *LVal, v *LVal) *LVal {
	return env.root().Put(k, v)
}

// Eval evaluates the expression v and returns its value.  Symbols resolve
// through the environment, pairs evaluate as forms, and everything else is
// self-evaluating.
func (env *LEnv) Eval(v *LVal) *LVal {
	switch v.Type {
	case LSymbol:
		return env.Get(v)
	case LPair:
		return env.evalSExpr(v)
	default:
		return v
	}
}

// evalSExpr evaluates a compound form: either a special form or a procedure
// application with left-to-right argument evaluation.
func (env *LEnv) evalSExpr(s *LVal) *LVal {
	stack := env.Runtime.Stack
	if lerr := stack.Push(); lerr != nil {
		return lerr
	}
	defer stack.Pop()

	if s.CAR.Type == LSymbol {
		if op, ok := specialOps[s.CAR.Str]; ok {
			return op(env, s.CDR)
		}
	}
	fun := env.Eval(s.CAR)
	if fun.Type == LError {
		return fun
	}
	if fun.Type != LFun {
		return ErrorConditionf(TypeError, "not a procedure: %v", fun)
	}
	args, ok := listSlice(s.CDR)
	if !ok {
		return ErrorConditionf(TypeError, "improper argument list: %v", s)
	}
	for i, arg := range args {
		v := env.Eval(arg)
		if v.Type == LError {
			return v
		}
		args[i] = v
	}
	return env.Call(fun, args)
}

// Call applies fun to already evaluated arguments.  The argument count is
// checked against the procedure's arity before the body runs.
func (env *LEnv) Call(fun *LVal, args []*LVal) *LVal {
	if !fun.Arity.Accepts(len(args)) {
		name := fun.FID
		if name == "" {
			name = "lambda"
		}
		return ErrorConditionf(ArityError, "%s: expected %v (got %d)", name, fun.Arity, len(args))
	}
	if fun.Builtin != nil {
		return fun.Builtin(env, args)
	}
	frame := NewEnv(fun.Env)
	formal := fun.Formals
	for _, arg := range args {
		frame.Put(formal.CAR, arg)
		formal = formal.CDR
	}
	return frame.Eval(fun.Body)
}
