package mython

func (n *NumericConst) Execute(env *Closure, ctx *Context) (Holder, error) {
	return Own(newNumber(n.Value)), nil
}

func (n *StringConst) Execute(env *Closure, ctx *Context) (Holder, error) {
	return Own(newString(n.Value)), nil
}

func (n *BoolConst) Execute(env *Closure, ctx *Context) (Holder, error) {
	return Own(newBool(n.Value)), nil
}

func (n *NoneConst) Execute(env *Closure, ctx *Context) (Holder, error) {
	return None(), nil
}

func (n *VariableValue) Execute(env *Closure, ctx *Context) (Holder, error) {
	if len(n.Names) == 0 {
		return None(), newRuntimeError("UndefinedName", "empty variable reference")
	}
	h, ok := env.Get(n.Names[0])
	if !ok {
		return None(), newRuntimeError("UndefinedName", "name '"+n.Names[0]+"' is not defined")
	}
	for _, field := range n.Names[1:] {
		v, ok := h.Value()
		if !ok {
			return None(), newRuntimeError("NotAnObject", "cannot read field '"+field+"' of None")
		}
		inst, ok := v.AsInstance()
		if !ok {
			return None(), newRuntimeError("NotAnObject", "cannot read field '"+field+"' of a non-instance value")
		}
		h = inst.GetField(field)
	}
	return h, nil
}

func (n *Assignment) Execute(env *Closure, ctx *Context) (Holder, error) {
	h, err := n.RHS.Execute(env, ctx)
	if err != nil {
		return None(), err
	}
	env.Define(n.Name, h)
	return h, nil
}

func (n *FieldAssignment) Execute(env *Closure, ctx *Context) (Holder, error) {
	objH, err := n.Object.Execute(env, ctx)
	if err != nil {
		return None(), err
	}
	v, ok := objH.Value()
	if !ok {
		return None(), newRuntimeError("NoSuchField", "cannot assign field '"+n.Field+"' on None")
	}
	inst, ok := v.AsInstance()
	if !ok {
		return None(), newRuntimeError("NoSuchField", "cannot assign field '"+n.Field+"' on a non-instance value")
	}
	h, err := n.RHS.Execute(env, ctx)
	if err != nil {
		return None(), err
	}
	inst.SetField(n.Field, h)
	return h, nil
}

func (n *NewInstance) Execute(env *Closure, ctx *Context) (Holder, error) {
	classH, ok := env.Get(n.ClassName)
	if !ok {
		return None(), newRuntimeError("UndefinedName", "class '"+n.ClassName+"' is not defined")
	}
	cv, _ := classH.Value()
	cls, ok := cv.AsClass()
	if !ok {
		return None(), newRuntimeError("NotAnObject", "'"+n.ClassName+"' is not a class")
	}

	args, err := evalArgs(env, ctx, n.Args)
	if err != nil {
		return None(), err
	}

	inst := newInstance(cls)
	result := Own(newInstanceValue(inst))

	if m, _ := cls.FindMethod("__init__", len(args)); m != nil {
		if _, err := inst.Call(ctx, m, args); err != nil {
			return None(), err
		}
	}
	return result, nil
}

func (n *MethodCall) Execute(env *Closure, ctx *Context) (Holder, error) {
	objH, err := n.Object.Execute(env, ctx)
	if err != nil {
		return None(), err
	}
	args, err := evalArgs(env, ctx, n.Args)
	if err != nil {
		return None(), err
	}

	v, ok := objH.Value()
	if !ok {
		return None(), nil
	}
	inst, ok := v.AsInstance()
	if !ok {
		return None(), nil
	}
	m, _ := inst.Class.FindMethod(n.Method, len(args))
	if m == nil {
		return None(), nil
	}
	return inst.Call(ctx, m, args)
}

// evalArgs evaluates each argument expression left to right, always in
// full even if the callee will end up discarding some of them.
func evalArgs(env *Closure, ctx *Context, exprs []Node) ([]Holder, error) {
	args := make([]Holder, len(exprs))
	for i, e := range exprs {
		h, err := e.Execute(env, ctx)
		if err != nil {
			return nil, err
		}
		args[i] = h
	}
	return args, nil
}

func (n *UnaryMinus) Execute(env *Closure, ctx *Context) (Holder, error) {
	h, err := n.Arg.Execute(env, ctx)
	if err != nil {
		return None(), err
	}
	v, ok := h.Value()
	if !ok {
		return None(), newRuntimeError("TypeMismatch", "unary minus requires a Number")
	}
	n2, ok := v.AsNumber()
	if !ok {
		return None(), newRuntimeError("TypeMismatch", "unary minus requires a Number")
	}
	return Own(newNumber(-n2)), nil
}

func (n *Not) Execute(env *Closure, ctx *Context) (Holder, error) {
	h, err := n.Arg.Execute(env, ctx)
	if err != nil {
		return None(), err
	}
	return Own(newBool(!IsTrue(h))), nil
}

func (n *And) Execute(env *Closure, ctx *Context) (Holder, error) {
	l, err := n.LHS.Execute(env, ctx)
	if err != nil {
		return None(), err
	}
	if !IsTrue(l) {
		return Own(newBool(false)), nil
	}
	r, err := n.RHS.Execute(env, ctx)
	if err != nil {
		return None(), err
	}
	return Own(newBool(IsTrue(r))), nil
}

func (n *Or) Execute(env *Closure, ctx *Context) (Holder, error) {
	l, err := n.LHS.Execute(env, ctx)
	if err != nil {
		return None(), err
	}
	if IsTrue(l) {
		return Own(newBool(true)), nil
	}
	r, err := n.RHS.Execute(env, ctx)
	if err != nil {
		return None(), err
	}
	return Own(newBool(IsTrue(r))), nil
}

func (n *Comparison) Execute(env *Closure, ctx *Context) (Holder, error) {
	l, err := n.LHS.Execute(env, ctx)
	if err != nil {
		return None(), err
	}
	r, err := n.RHS.Execute(env, ctx)
	if err != nil {
		return None(), err
	}
	res, err := compareFor(ctx, n.Op, l, r)
	if err != nil {
		return None(), err
	}
	return Own(newBool(res)), nil
}

func (n *Stringify) Execute(env *Closure, ctx *Context) (Holder, error) {
	h, err := n.Arg.Execute(env, ctx)
	if err != nil {
		return None(), err
	}
	s, err := renderHolder(ctx.dummyContext(), h)
	if err != nil {
		return None(), err
	}
	return Own(newString(s)), nil
}

func (n *Binary) Execute(env *Closure, ctx *Context) (Holder, error) {
	l, err := n.LHS.Execute(env, ctx)
	if err != nil {
		return None(), err
	}
	r, err := n.RHS.Execute(env, ctx)
	if err != nil {
		return None(), err
	}

	if n.Op == OpAdd {
		if lv, ok := l.Value(); ok {
			if ls, ok := lv.AsString(); ok {
				if rv, ok := r.Value(); ok {
					if rs, ok := rv.AsString(); ok {
						return Own(newString(ls + rs)), nil
					}
				}
				return None(), newRuntimeError("TypeMismatch", "cannot add String and non-String")
			}
			if inst, ok := lv.AsInstance(); ok {
				m, _ := inst.Class.FindMethod("__add__", 1)
				if m == nil {
					return None(), newRuntimeError("TypeMismatch", "instance has no __add__ method")
				}
				return inst.Call(ctx, m, []Holder{r})
			}
		}
	}

	lv, lok := l.Value()
	rv, rok := r.Value()
	if !lok || !rok {
		return None(), newRuntimeError("TypeMismatch", "arithmetic requires two Numbers")
	}
	ln, ok1 := lv.AsNumber()
	rn, ok2 := rv.AsNumber()
	if !ok1 || !ok2 {
		return None(), newRuntimeError("TypeMismatch", "arithmetic requires two Numbers")
	}

	switch n.Op {
	case OpAdd:
		return Own(newNumber(ln + rn)), nil
	case OpSub:
		return Own(newNumber(ln - rn)), nil
	case OpMult:
		return Own(newNumber(ln * rn)), nil
	case OpDiv:
		if rn == 0 {
			return None(), newRuntimeError("DivisionByZero", "division by zero")
		}
		return Own(newNumber(ln / rn)), nil
	default:
		return None(), newRuntimeError("TypeMismatch", "unknown binary operator")
	}
}
