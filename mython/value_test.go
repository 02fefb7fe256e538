package mython

import "testing"

func TestIsTrue(t *testing.T) {
	cases := []struct {
		name string
		h    Holder
		want bool
	}{
		{"none", None(), false},
		{"zero", Own(newNumber(0)), false},
		{"nonzero", Own(newNumber(3)), true},
		{"empty string", Own(newString("")), false},
		{"nonempty string", Own(newString("x")), true},
		{"false", Own(newBool(false)), false},
		{"true", Own(newBool(true)), true},
	}
	for _, c := range cases {
		if got := IsTrue(c.h); got != c.want {
			t.Errorf("%s: IsTrue = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestClassFindMethodChildShadowsParent(t *testing.T) {
	parent := newClassDef("Base", nil)
	parent.addMethod(&MethodDef{Name: "greet", Params: []string{"self"}})
	child := newClassDef("Derived", parent)
	child.addMethod(&MethodDef{Name: "greet", Params: []string{"self"}})

	m, owner := child.FindMethod("greet", 1)
	if m == nil || owner != child {
		t.Fatalf("expected child's own greet method to shadow the parent's")
	}

	m2, owner2 := child.FindMethod("missing", 1)
	if m2 != nil || owner2 != nil {
		t.Fatalf("expected no method found for an undefined name")
	}

	m3, owner3 := child.FindMethod("greet", 5)
	if m3 != nil || owner3 != nil {
		t.Fatalf("expected no method found for a mismatched arity")
	}
}
