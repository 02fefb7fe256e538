package mython

import (
	"fmt"
	"strings"
)

func (n *Print) Execute(env *Closure, ctx *Context) (Holder, error) {
	parts := make([]string, len(n.Args))
	for i, arg := range n.Args {
		h, err := arg.Execute(env, ctx)
		if err != nil {
			return None(), err
		}
		s, err := renderHolder(ctx, h)
		if err != nil {
			return None(), err
		}
		parts[i] = s
	}
	fmt.Fprintln(ctx.Out, strings.Join(parts, " "))
	return None(), nil
}

func (n *Compound) Execute(env *Closure, ctx *Context) (Holder, error) {
	var last Holder
	for _, stmt := range n.Stmts {
		h, err := stmt.Execute(env, ctx)
		if err != nil {
			return None(), err
		}
		last = h
	}
	return last, nil
}

func (n *Return) Execute(env *Closure, ctx *Context) (Holder, error) {
	h, err := n.Arg.Execute(env, ctx)
	if err != nil {
		return None(), err
	}
	return None(), returnSignal{value: h}
}

func (n *MethodBody) Execute(env *Closure, ctx *Context) (Holder, error) {
	_, err := n.Body.Execute(env, ctx)
	if sig, ok := err.(returnSignal); ok {
		return sig.value, nil
	}
	if err != nil {
		return None(), err
	}
	return None(), nil
}

func (n *IfElse) Execute(env *Closure, ctx *Context) (Holder, error) {
	cond, err := n.Cond.Execute(env, ctx)
	if err != nil {
		return None(), err
	}
	if IsTrue(cond) {
		return n.Then.Execute(env, ctx)
	}
	if n.Else != nil {
		return n.Else.Execute(env, ctx)
	}
	return None(), nil
}

func (n *ClassDefinition) Execute(env *Closure, ctx *Context) (Holder, error) {
	var parent *ClassDef
	if n.Parent != "" {
		parentH, ok := env.Get(n.Parent)
		if !ok {
			return None(), newRuntimeError("UndefinedName", "parent class '"+n.Parent+"' is not defined")
		}
		pv, _ := parentH.Value()
		parent, ok = pv.AsClass()
		if !ok {
			return None(), newRuntimeError("NotAnObject", "'"+n.Parent+"' is not a class")
		}
	}

	cls := newClassDef(n.Name, parent)
	for _, m := range n.Methods {
		cls.addMethod(m)
	}

	h := Own(newClassValue(cls))
	env.Define(n.Name, h)
	return h, nil
}
