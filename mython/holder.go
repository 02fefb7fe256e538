package mython

// Holder is a handle to a Value, or the absence of one (Mython's None).
// Two construction modes are kept — Own and Share — purely to document
// ownership at the point each holder is produced; Go's garbage collector
// does the actual memory management, so the distinction carries no runtime
// behavior here (see the "Reference counting vs. GC" decision in DESIGN.md).
// Own marks a holder created fresh by some expression; Share marks a
// holder borrowed from somewhere else (most notably the `self` binding
// passed into a method call, which must alias the caller's instance rather
// than copy it).
type Holder struct {
	present bool
	value   Value
}

// Own wraps a freshly produced value.
func Own(v Value) Holder {
	return Holder{present: true, value: v}
}

// Share returns a non-owning handle to the same value — used when binding
// self so methods observe mutations made through any other reference.
func Share(h Holder) Holder {
	return h
}

// None is the empty holder.
func None() Holder {
	return Holder{}
}

// IsNone reports whether h carries no value.
func (h Holder) IsNone() bool {
	return !h.present
}

// Value returns the held value and whether one was present.
func (h Holder) Value() (Value, bool) {
	return h.value, h.present
}

// MustValue panics if h is empty; used only where a caller has already
// checked IsNone.
func (h Holder) MustValue() Value {
	if !h.present {
		panic("mython: MustValue on an empty holder")
	}
	return h.value
}
