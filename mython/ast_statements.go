package mython

// Print evaluates each arg left to right and writes them space-separated to
// ctx's output, followed by a single newline. Absent holders render as
// "None". Zero args still emits the trailing newline.
type Print struct {
	Args []Node
}

// Compound runs a sequence of statements in order, returning the last
// holder produced (callers that only care about side effects ignore it).
type Compound struct {
	Stmts []Node
}

// Return is non-local control transfer: its Arg is evaluated and then
// propagated up to the nearest enclosing MethodBody via a returnSignal,
// not a plain error.
type Return struct {
	Arg Node
}

// MethodBody wraps a method's statement sequence and catches the
// returnSignal raised by a nested Return, yielding its value; if the body
// runs to completion without returning, the result is an empty holder.
type MethodBody struct {
	Body Node
}

// IfElse executes Then when Cond is truthy, else Else (which may be nil).
type IfElse struct {
	Cond       Node
	Then, Else Node
}

// MethodDef is one method in a class body: a name, formal parameter names,
// and a body (normally a MethodBody wrapping a Compound).
type MethodDef struct {
	Name   string
	Params []string
	Body   Node
}

// ClassDefinition declares a class named Name, with an optional parent
// class name (empty string = no parent) and a set of methods keyed by
// (name, arity). Executing it binds the class into env under Name.
type ClassDefinition struct {
	Name    string
	Parent  string
	Methods []*MethodDef
}
