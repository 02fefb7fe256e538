package mython

// Node is implemented by every AST expression and statement. Execute runs
// the node against env and returns the holder it produced (an empty holder
// for nodes that produce no value, such as Print).
//
// This is the one place the package departs from a central switch-based
// evaluator: every node owns its own execution logic, mirroring the
// reference interpreter's virtual-dispatch Statement hierarchy.
type Node interface {
	Execute(env *Closure, ctx *Context) (Holder, error)
}

// --- Expressions -----------------------------------------------------

// NumericConst is a literal integer.
type NumericConst struct {
	Value int
}

// StringConst is a literal string.
type StringConst struct {
	Value string
}

// BoolConst is a literal True/False.
type BoolConst struct {
	Value bool
}

// NoneConst is the literal None.
type NoneConst struct{}

// VariableValue looks up a dotted chain of names: the first segment is
// resolved in env, every subsequent segment is a field lookup on the
// resulting instance.
type VariableValue struct {
	Names []string
}

// Assignment binds a simple (non-dotted) name in env to the value of RHS.
type Assignment struct {
	Name string
	RHS  Node
}

// FieldAssignment assigns to obj.Field, where obj is an object-valued
// expression. Raises NoSuchField if obj does not evaluate to an instance.
type FieldAssignment struct {
	Object Node
	Field  string
	RHS    Node
}

// NewInstance constructs an instance of a named class and, if the class (or
// an ancestor) defines __init__ with matching arity, calls it with Args.
type NewInstance struct {
	ClassName string
	Args      []Node
}

// MethodCall evaluates Object, then invokes Method on it with Args. If
// Object is not an instance, or the instance has no method with that
// (name, arity), the call is a silent no-op producing an empty holder.
type MethodCall struct {
	Object Node
	Method string
	Args   []Node
}

// UnaryMinus negates a Number operand.
type UnaryMinus struct {
	Arg Node
}

// Not inverts the truthiness of Arg, always yielding a Bool.
type Not struct {
	Arg Node
}

// BinaryOp is the tag for the four arithmetic binary operators.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMult
	OpDiv
)

// Binary applies Op to LHS and RHS. Add additionally accepts two strings
// (concatenation) or a left operand with an __add__ method; Sub/Mult/Div
// require two Numbers; Div raises DivisionByZero when RHS is zero.
type Binary struct {
	Op       BinaryOp
	LHS, RHS Node
}

// CompareOp is the tag for the six relational operators.
type CompareOp int

const (
	CmpEq CompareOp = iota
	CmpNeq
	CmpLt
	CmpLe
	CmpGt
	CmpGe
)

// Comparison applies Op to LHS and RHS using the shared Equal/Less
// comparator, deriving Neq/Le/Gt/Ge from Eq and Lt.
type Comparison struct {
	Op       CompareOp
	LHS, RHS Node
}

// And/Or short-circuit and always yield a Bool.
type And struct{ LHS, RHS Node }
type Or struct{ LHS, RHS Node }

// Stringify renders Arg's value via Print's formatting rules without
// writing anything, producing a String holder.
type Stringify struct {
	Arg Node
}
