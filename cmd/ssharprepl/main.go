// Command ssharprepl is developer tooling around the SSharp front
// end: an interactive REPL, a run-from-file subcommand, and an AST
// dump subcommand. Unlike the root ssharp binary, a stdin-to-stdout
// compiler with no flags or subcommands, this tool is free to carry
// the subcommand/readline interface a day-to-day contributor
// actually wants.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&replCmd{}, "")
	subcommands.Register(&runCmd{}, "")
	subcommands.Register(&astCmd{}, "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
