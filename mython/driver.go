package mython

import "io"

// RunProgram lexes, parses and executes a complete Mython program read
// from input, writing Print output to output. It returns the first
// LexError, ParseError or RuntimeError encountered, if any.
func RunProgram(input io.Reader, output io.Writer) error {
	return RunProgramWithConfig(input, output, DefaultConfig())
}

// RunProgramWithConfig is RunProgram with an explicit Config, letting
// callers set a recursion limit or turn on call tracing.
func RunProgramWithConfig(input io.Reader, output io.Writer, cfg Config) error {
	program, err := Parse(input)
	if err != nil {
		return err
	}
	env := newClosure()
	ctx := NewContext(output, cfg)
	_, err = program.Execute(env, ctx)
	if _, ok := err.(returnSignal); ok {
		return newRuntimeError("ReturnOutsideMethod", err.Error())
	}
	return err
}
