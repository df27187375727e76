package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/kulych/SSharp/ast"
	"github.com/kulych/SSharp/lexer"
	"github.com/kulych/SSharp/parser"
)

// astCmd parses a source file (without running the compiler stage)
// and dumps its AST as JSON, for inspecting how the grammar resolved
// a given program without round-tripping through the full pipeline.
type astCmd struct {
	out string
}

func (*astCmd) Name() string     { return "ast" }
func (*astCmd) Synopsis() string { return "Dump the parsed AST for an SSharp source file as JSON" }
func (*astCmd) Usage() string {
	return `ast [-o file] <file>:
  Parse <file> and print its AST as JSON, or write it to -o.
`
}

func (cmd *astCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.out, "o", "", "write the AST JSON to this file instead of stdout")
}

func (cmd *astCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "ssharprepl ast: missing source file")
		return subcommands.ExitUsageError
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "ssharprepl ast: %v\n", err)
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

	if cmd.out != "" {
		if err := ast.WriteJSONToFile(root, cmd.out); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	if err := ast.PrintJSON(root); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
