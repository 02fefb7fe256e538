package mython

// IsTrue reports a holder's truthiness: numbers are true unless zero,
// strings are true unless empty, bools are their own value, and an empty
// holder (None) is always false. Instances and classes are always true.
func IsTrue(h Holder) bool {
	v, ok := h.Value()
	if !ok {
		return false
	}
	switch v.Kind() {
	case KindNumber:
		n, _ := v.AsNumber()
		return n != 0
	case KindString:
		s, _ := v.AsString()
		return s != ""
	case KindBool:
		b, _ := v.AsBool()
		return b
	default:
		return true
	}
}

// Equal implements == . Numbers, strings and bools compare by value; two
// empty holders (None == None) are equal; an instance with an __eq__
// method of arity 1 delegates to it; anything else fails with
// TypeMismatch, including two instances that both lack __eq__.
func Equal(ctx *Context, a, b Holder) (bool, error) {
	av, aok := a.Value()
	bv, bok := b.Value()
	if !aok && !bok {
		return true, nil
	}
	if !aok {
		return false, newRuntimeError("TypeMismatch", "cannot compare None with a value")
	}
	if inst, ok := av.AsInstance(); ok {
		m, _ := inst.Class.FindMethod("__eq__", 1)
		if m == nil {
			return false, newRuntimeError("TypeMismatch", "instance has no __eq__ method")
		}
		res, err := inst.Call(ctx, m, []Holder{b})
		if err != nil {
			return false, err
		}
		return IsTrue(res), nil
	}
	if !bok {
		return false, newRuntimeError("TypeMismatch", "cannot compare a value with None")
	}
	if av.Kind() != bv.Kind() {
		return false, newRuntimeError("TypeMismatch", "cannot compare values of different types")
	}
	switch av.Kind() {
	case KindNumber:
		x, _ := av.AsNumber()
		y, _ := bv.AsNumber()
		return x == y, nil
	case KindString:
		x, _ := av.AsString()
		y, _ := bv.AsString()
		return x == y, nil
	case KindBool:
		x, _ := av.AsBool()
		y, _ := bv.AsBool()
		return x == y, nil
	default:
		return false, newRuntimeError("TypeMismatch", "values are not comparable")
	}
}

// Less implements < . Numbers and strings compare natively; an instance
// with an __lt__ method of arity 1 delegates to it; anything else is a
// TypeMismatch.
func Less(ctx *Context, a, b Holder) (bool, error) {
	av, aok := a.Value()
	bv, bok := b.Value()
	if !aok || !bok {
		return false, newRuntimeError("TypeMismatch", "cannot order None")
	}
	if inst, ok := av.AsInstance(); ok {
		m, _ := inst.Class.FindMethod("__lt__", 1)
		if m == nil {
			return false, newRuntimeError("TypeMismatch", "instance has no __lt__ method")
		}
		res, err := inst.Call(ctx, m, []Holder{b})
		if err != nil {
			return false, err
		}
		return IsTrue(res), nil
	}
	if av.Kind() != bv.Kind() {
		return false, newRuntimeError("TypeMismatch", "cannot order values of different types")
	}
	switch av.Kind() {
	case KindNumber:
		x, _ := av.AsNumber()
		y, _ := bv.AsNumber()
		return x < y, nil
	case KindString:
		x, _ := av.AsString()
		y, _ := bv.AsString()
		return x < y, nil
	default:
		return false, newRuntimeError("TypeMismatch", "values are not orderable")
	}
}

// compareFor evaluates any of the six relational operators in terms of the
// two primitives above, so !=, <=, >, >= need no separate dunder protocol.
func compareFor(ctx *Context, op CompareOp, a, b Holder) (bool, error) {
	switch op {
	case CmpEq:
		return Equal(ctx, a, b)
	case CmpNeq:
		eq, err := Equal(ctx, a, b)
		return !eq, err
	case CmpLt:
		return Less(ctx, a, b)
	case CmpLe:
		gt, err := Less(ctx, b, a)
		return !gt, err
	case CmpGt:
		return Less(ctx, b, a)
	case CmpGe:
		lt, err := Less(ctx, a, b)
		return !lt, err
	default:
		return false, newRuntimeError("TypeMismatch", "unknown comparison operator")
	}
}
