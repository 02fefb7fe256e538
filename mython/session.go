package mython

import (
	"strings"
)

// Session is a persistent interpreter used by interactive front ends: each
// call to Eval parses and runs one line against the same root Closure and
// Context, so names and classes defined on one line stay visible to the
// next — unlike RunProgram, which builds a fresh environment every time.
type Session struct {
	env *Closure
	ctx *Context
	out *strings.Builder
}

// NewSession starts a fresh interpreter session under cfg.
func NewSession(cfg Config) *Session {
	out := &strings.Builder{}
	return &Session{
		env: newClosure(),
		ctx: NewContext(out, cfg),
		out: out,
	}
}

// Eval parses and executes one line of source against the session's
// persistent environment, returning anything the line printed (minus its
// trailing newline).
func (s *Session) Eval(line string) (string, error) {
	s.out.Reset()
	program, err := Parse(strings.NewReader(line + "\n"))
	if err != nil {
		return "", err
	}
	if _, err := program.Execute(s.env, s.ctx); err != nil {
		return "", err
	}
	return strings.TrimSuffix(s.out.String(), "\n"), nil
}
