// Command mython runs Mython programs from a file or stdin, or drops into
// an interactive REPL.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mgomes/mython/mython"
)

func main() {
	if err := runCLI(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	if len(args) == 0 {
		printUsage()
		return nil
	}

	switch args[0] {
	case "run":
		return runRun(args[1:])
	case "repl":
		return runRepl(args[1:])
	case "help", "-h", "-help", "--help":
		printUsage()
		return nil
	default:
		return usageError("unknown subcommand %q", args[0])
	}
}

func runRun(args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	configPath := fs.String("config", "mython.toml", "path to a Mython config file")
	trace := fs.Bool("trace", false, "trace method calls to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := mython.LoadConfig(*configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg.TraceCalls = cfg.TraceCalls || *trace

	var in io.Reader = os.Stdin
	if rest := fs.Args(); len(rest) > 0 {
		f, err := os.Open(rest[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	return mython.RunProgramWithConfig(in, os.Stdout, cfg)
}

func usageError(format string, a ...any) error {
	return fmt.Errorf("mython: "+format, a...)
}

func printUsage() {
	fmt.Fprint(os.Stderr, `usage:
  mython run   [-config path] [-trace] [file]
  mython repl  [-config path]
  mython help
`)
}
