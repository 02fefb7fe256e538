package mython

// ClassDef is a declared class: a name, an optional parent, and methods
// keyed by name then arity (so two methods may share a name as long as
// they take a different number of parameters).
type ClassDef struct {
	Name    string
	Parent  *ClassDef
	methods map[string]map[int]*MethodDef
}

func newClassDef(name string, parent *ClassDef) *ClassDef {
	return &ClassDef{Name: name, Parent: parent, methods: make(map[string]map[int]*MethodDef)}
}

func (c *ClassDef) addMethod(m *MethodDef) {
	byArity, ok := c.methods[m.Name]
	if !ok {
		byArity = make(map[int]*MethodDef)
		c.methods[m.Name] = byArity
	}
	byArity[len(m.Params)] = m
}

// FindMethod looks up a method by name and arity, checking this class
// first and then walking up the parent chain — child definitions shadow
// parent ones of the same (name, arity).
func (c *ClassDef) FindMethod(name string, arity int) (*MethodDef, *ClassDef) {
	for cur := c; cur != nil; cur = cur.Parent {
		if byArity, ok := cur.methods[name]; ok {
			if m, ok := byArity[arity]; ok {
				return m, cur
			}
		}
	}
	return nil, nil
}

// Instance is a live object: a reference to its class, an identity stamp
// used when no __str__ is defined, and a flat bag of field values.
type Instance struct {
	Class    *ClassDef
	identity string
	Fields   map[string]Holder
}

// newInstance allocates an instance of class c with no fields set.
func newInstance(c *ClassDef) *Instance {
	return &Instance{Class: c, identity: newIdentity(), Fields: make(map[string]Holder)}
}

// GetField returns the named field, or an empty holder if it was never
// assigned.
func (inst *Instance) GetField(name string) Holder {
	return inst.Fields[name]
}

// SetField assigns the named field, creating it if absent.
func (inst *Instance) SetField(name string, h Holder) {
	inst.Fields[name] = h
}

// Identity returns the instance's implementation-defined identity string.
func (inst *Instance) Identity() string {
	return inst.identity
}

// Call invokes method m of inst with the given already-evaluated argument
// holders, via ctx. The callee's environment is built fresh — params plus
// self only, with no capture of the caller's environment — matching the
// language's non-lexically-nested closures.
func (inst *Instance) Call(ctx *Context, m *MethodDef, args []Holder) (Holder, error) {
	if err := ctx.enterCall(); err != nil {
		return None(), err
	}
	defer ctx.exitCall()

	env := newClosure()
	env.Define("self", Share(Own(newInstanceValue(inst))))
	for i, p := range m.Params {
		env.Define(p, args[i])
	}

	if ctx.Config.TraceCalls {
		ctx.trace(inst.Class.Name, m.Name, len(args))
	}

	return m.Body.Execute(env, ctx)
}
