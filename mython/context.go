package mython

import (
	"fmt"
	"io"
)

// Context threads the pieces of interpreter state that live for the
// duration of a single program run: where Print writes to, the active
// configuration, and the current call-frame depth used to enforce
// RecursionLimit. It is the equivalent of the reference interpreter's
// Context, which __str__ dispatch evaluates against a throwaway instance so
// that rendering an object never has visible output side effects of its own.
type Context struct {
	Out    io.Writer
	Config Config
	Trace  io.Writer

	depth int
}

// NewContext builds a Context that writes Print output to out under cfg.
func NewContext(out io.Writer, cfg Config) *Context {
	return &Context{Out: out, Config: cfg, Trace: nil}
}

// dummyContext returns a Context sharing cfg but discarding all output,
// for use by Stringify so that calling a user-defined __str__ cannot leak
// print side effects into the surrounding program's stdout.
func (ctx *Context) dummyContext() *Context {
	return &Context{Out: io.Discard, Config: ctx.Config, Trace: ctx.Trace, depth: ctx.depth}
}

func (ctx *Context) enterCall() error {
	ctx.depth++
	if ctx.Config.RecursionLimit > 0 && ctx.depth > ctx.Config.RecursionLimit {
		ctx.depth--
		return &RuntimeError{Kind: "RecursionLimit", Msg: fmt.Sprintf("recursion depth exceeded (limit %d)", ctx.Config.RecursionLimit)}
	}
	return nil
}

func (ctx *Context) exitCall() {
	ctx.depth--
}

func (ctx *Context) trace(class, method string, argc int) {
	if ctx.Trace == nil {
		return
	}
	fmt.Fprintf(ctx.Trace, "call %s.%s/%d\n", class, method, argc)
}
