package mython

// Closure is the environment a statement executes against: a flat map of
// names to holders with no link to an enclosing scope — every method call
// builds a fresh one seeded only with its parameters and self, and
// top-level class/global definitions live in one Closure shared across the
// whole program run.
type Closure struct {
	values map[string]Holder
}

func newClosure() *Closure {
	return &Closure{values: make(map[string]Holder)}
}

// Get returns the holder bound to name and whether it was found at all
// (distinct from being bound to an empty holder).
func (c *Closure) Get(name string) (Holder, bool) {
	h, ok := c.values[name]
	return h, ok
}

// Define binds name to h, overwriting any existing binding.
func (c *Closure) Define(name string, h Holder) {
	c.values[name] = h
}
