package mython

import "strconv"

// renderHolder turns a holder into its Print/Stringify textual form: an
// empty holder renders as "None"; Number/String/Bool render plainly; an
// instance with a __str__ method of arity 0 delegates to it (evaluated
// against a dummy, output-discarding Context so the call cannot itself
// print); otherwise an instance renders as "<ClassName at identity>".
func renderHolder(ctx *Context, h Holder) (string, error) {
	v, ok := h.Value()
	if !ok {
		return "None", nil
	}
	switch v.Kind() {
	case KindNumber:
		n, _ := v.AsNumber()
		return strconv.Itoa(n), nil
	case KindString:
		s, _ := v.AsString()
		return s, nil
	case KindBool:
		b, _ := v.AsBool()
		if b {
			return "True", nil
		}
		return "False", nil
	case KindClass:
		c, _ := v.AsClass()
		return "Class " + c.Name, nil
	case KindInstance:
		inst, _ := v.AsInstance()
		if m, _ := inst.Class.FindMethod("__str__", 0); m != nil {
			res, err := inst.Call(ctx.dummyContext(), m, nil)
			if err != nil {
				return "", err
			}
			return renderHolder(ctx, res)
		}
		return "<" + inst.Class.Name + " at " + inst.Identity() + ">", nil
	default:
		return "", newRuntimeError("TypeMismatch", "value has no textual representation")
	}
}
