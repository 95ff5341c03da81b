package lisp

// lispOp evaluates a special form.  Unlike a procedure the operator receives
// its operand list unevaluated.
type lispOp func(env *LEnv, args *LVal) *LVal

var specialOps = map[string]lispOp{}

// The operators reference (*LEnv).Eval, which dispatches back through
// specialOps, so the map must be populated in init to avoid an
// initialization cycle.
func init() {
	specialOps["quote"] = opQuote
	specialOps["if"] = opIf
	specialOps["define"] = opDefine
	specialOps["set!"] = opSet
	specialOps["lambda"] = opLambda
}

// opErrorf returns an arity-style error for the special form name.
func opErrorf(name string, condition string, format string, v ...interface{}) *LVal {
	return ErrorConditionf(condition, name+": "+format, v...)
}

// (quote datum)
func opQuote(env *LEnv, args *LVal) *LVal {
	operands, ok := listSlice(args)
	if !ok || len(operands) != 1 {
		return opErrorf("quote", ArityError, "one argument expected")
	}
	return operands[0]
}

// (if test consequent) or (if test consequent alternate)
func opIf(env *LEnv, args *LVal) *LVal {
	operands, ok := listSlice(args)
	if !ok || len(operands) < 2 || len(operands) > 3 {
		return opErrorf("if", ArityError, "two or three arguments expected")
	}
	test := env.Eval(operands[0])
	if test.Type == LError {
		return test
	}
	if IsTrue(test) {
		return env.Eval(operands[1])
	}
	if len(operands) == 3 {
		return env.Eval(operands[2])
	}
	return Void()
}

// (define sym expr) or the procedure shorthand (define (f args...) body)
func opDefine(env *LEnv, args *LVal) *LVal {
	operands, ok := listSlice(args)
	if !ok || len(operands) != 2 {
		return opErrorf("define", ArityError, "two arguments expected")
	}
	target := operands[0]
	if target.Type == LPair {
		// (define (f a b) body) is sugar for (define f (lambda (a b) body))
		name := target.CAR
		fun := opLambda(env, Expr(target.CDR, operands[1]))
		if fun.Type == LError {
			return fun
		}
		fun.FID = name.Str
		return env.Put(name, fun)
	}
	if target.Type != LSymbol {
		return opErrorf("define", TypeError, "first argument is not a symbol: %v", target.Type)
	}
	v := env.Eval(operands[1])
	if v.Type == LError {
		return v
	}
	if v.Type == LFun && v.Builtin == nil && v.FID == "" {
		v.FID = target.Str
	}
	return env.Put(target, v)
}

// (set! sym expr)
func opSet(env *LEnv, args *LVal) *LVal {
	operands, ok := listSlice(args)
	if !ok || len(operands) != 2 {
		return opErrorf("set!", ArityError, "two arguments expected")
	}
	if operands[0].Type != LSymbol {
		return opErrorf("set!", TypeError, "first argument is not a symbol: %v", operands[0].Type)
	}
	v := env.Eval(operands[1])
	if v.Type == LError {
		return v
	}
	return env.Update(operands[0], v)
}

// (lambda (params...) body)
func opLambda(env *LEnv, args *LVal) *LVal {
	operands, ok := listSlice(args)
	if !ok || len(operands) != 2 {
		return opErrorf("lambda", ArityError, "two arguments expected")
	}
	formals := operands[0]
	params, ok := listSlice(formals)
	if !ok {
		return opErrorf("lambda", TypeError, "parameter list expected: %v", formals)
	}
	for _, p := range params {
		if p.Type != LSymbol {
			return opErrorf("lambda", TypeError, "parameter is not a symbol: %v", p.Type)
		}
	}
	return Lambda(formals, operands[1], env)
}
