package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/kulych/SSharp/compiler"
	"github.com/kulych/SSharp/lexer"
	"github.com/kulych/SSharp/parser"
)

// runCmd compiles a single SSharp source file and prints the
// generated C to stdout — the same pipeline the root binary runs
// over stdin, wired to a file argument for convenience.
type runCmd struct{}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "Compile an SSharp source file to C" }
func (*runCmd) Usage() string {
	return `run <file>:
  Compile the SSharp program in <file> and print the generated C.
`
}
func (*runCmd) SetFlags(*flag.FlagSet) {}

func (*runCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "ssharprepl run: missing source file")
		return subcommands.ExitUsageError
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "ssharprepl run: %v\n", err)
		return subcommands.ExitFailure
	}

	tokens, err := lexer.New(data).Scan()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	root, err := parser.New(tokens).Parse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	generated, err := compiler.Translate(root)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Print(generated)
	return subcommands.ExitSuccess
}
