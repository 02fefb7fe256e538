package mython

import (
	"strings"
	"testing"
)

func run(t *testing.T, src string) string {
	t.Helper()
	var out strings.Builder
	if err := RunProgram(strings.NewReader(src), &out); err != nil {
		t.Fatalf("RunProgram(%q): %v", src, err)
	}
	return out.String()
}

func runErr(t *testing.T, src string) error {
	t.Helper()
	var out strings.Builder
	return RunProgram(strings.NewReader(src), &out)
}

func TestSimplePrints(t *testing.T) {
	got := run(t, `print "hello"
print 1, 2, 3
print
`)
	want := "hello\n1 2 3\n\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestAssignmentsAndArithmetic(t *testing.T) {
	got := run(t, `x = 2 + 2 * 2
print x
y = (2 + 2) * 2
print y
print 7 / 2
`)
	want := "6\n8\n3\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDivisionByZero(t *testing.T) {
	err := runErr(t, "print 1 / 0\n")
	re, ok := err.(*RuntimeError)
	if !ok || re.Kind != "DivisionByZero" {
		t.Fatalf("expected DivisionByZero RuntimeError, got %#v", err)
	}
}

func TestShortCircuitEvaluation(t *testing.T) {
	got := run(t, `print False and 1 / 0
print True or 1 / 0
print not False
`)
	want := "False\nTrue\nTrue\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestClassesAndInheritance(t *testing.T) {
	src := `class Animal:
  def __init__(name):
    self.name = name
  def speak():
    print self.name, "makes a sound"

class Dog(Animal):
  def speak():
    print self.name, "barks"

a = Animal("Rex")
a.speak()
d = Dog("Fido")
d.speak()
`
	got := run(t, src)
	want := "Rex makes a sound\nFido barks\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestVariablesArePointers(t *testing.T) {
	src := `class Counter:
  def __init__():
    self.value = 0
  def bump():
    self.value = self.value + 1

a = Counter()
b = a
b.bump()
print a.value
`
	got := run(t, src)
	if got != "1\n" {
		t.Fatalf("aliasing: got %q, want %q", got, "1\n")
	}
}

func TestFieldAssignmentOnNonInstanceRaises(t *testing.T) {
	err := runErr(t, "x = 5\nx.field = 1\n")
	re, ok := err.(*RuntimeError)
	if !ok || re.Kind != "NoSuchField" {
		t.Fatalf("expected NoSuchField RuntimeError, got %#v", err)
	}
}

func TestMethodCallOnNonInstanceIsSilentNoOp(t *testing.T) {
	got := run(t, `x = 5
x.whatever()
print "survived"
`)
	if got != "survived\n" {
		t.Fatalf("got %q, want %q", got, "survived\n")
	}
}

func TestMethodOverloadingByArity(t *testing.T) {
	src := `class Adder:
  def f(a):
    print "one", a
  def f(a, b):
    print "two", a, b

obj = Adder()
obj.f(1)
obj.f(1, 2)
obj.f(1, 2, 3)
print "done"
`
	got := run(t, src)
	want := "one 1\ntwo 1 2\ndone\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestArgumentsEvaluatedEvenWhenDiscarded(t *testing.T) {
	src := `class Loud:
  def shout():
    print "side effect"
    return 1

class Sink:
  def apply(x):
    print "sinking"

s = Sink()
noisy = Loud()
s.apply(noisy.shout())
`
	got := run(t, src)
	if !strings.Contains(got, "side effect") {
		t.Fatalf("argument side effect was not evaluated: %q", got)
	}
}

func TestEqAndAddDunders(t *testing.T) {
	src := `class Point:
  def __init__(x, y):
    self.x = x
    self.y = y
  def __eq__(other):
    return self.x == other.x and self.y == other.y
  def __add__(other):
    return Point(self.x + other.x, self.y + other.y)

p = Point(1, 2)
q = Point(1, 2)
print p == q
r = p + q
print r.x, r.y
`
	got := run(t, src)
	want := "True\n2 4\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEqWithoutDunderFails(t *testing.T) {
	src := `class Bare:
  def __init__():
    self.x = 1

a = Bare()
b = Bare()
print a == b
`
	err := runErr(t, src)
	re, ok := err.(*RuntimeError)
	if !ok || re.Kind != "TypeMismatch" {
		t.Fatalf("expected TypeMismatch RuntimeError, got %#v", err)
	}
}

func TestStrDunderDrivesPrinting(t *testing.T) {
	src := `class Named:
  def __init__(label):
    self.label = label
  def __str__():
    return self.label

n = Named("Bob")
print n
`
	got := run(t, src)
	if got != "Bob\n" {
		t.Fatalf("got %q, want %q", got, "Bob\n")
	}
}

func TestBareCallToNonClassIsSilentNoOp(t *testing.T) {
	got := run(t, `whatever(1, 2)
print "survived"
`)
	if got != "survived\n" {
		t.Fatalf("got %q, want %q", got, "survived\n")
	}
}

func TestStringifyMatchesPrintMinusNewline(t *testing.T) {
	var out strings.Builder
	env := newClosure()
	ctx := NewContext(&out, DefaultConfig())

	arg := &StringConst{Value: "hi there"}
	if _, err := (&Print{Args: []Node{arg}}).Execute(env, ctx); err != nil {
		t.Fatalf("Print.Execute: %v", err)
	}
	printed := out.String()

	h, err := (&Stringify{Arg: arg}).Execute(env, ctx)
	if err != nil {
		t.Fatalf("Stringify.Execute: %v", err)
	}
	v, _ := h.Value()
	s, _ := v.AsString()

	if s != strings.TrimSuffix(printed, "\n") {
		t.Fatalf("Stringify %q does not match Print minus newline %q", s, printed)
	}
}

func TestRecursionLimit(t *testing.T) {
	src := `class R:
  def loop(n):
    return self.loop(n + 1)

r = R()
r.loop(0)
`
	var out strings.Builder
	err := RunProgramWithConfig(strings.NewReader(src), &out, Config{RecursionLimit: 50})
	re, ok := err.(*RuntimeError)
	if !ok || re.Kind != "RecursionLimit" {
		t.Fatalf("expected RecursionLimit RuntimeError, got %#v", err)
	}
}
