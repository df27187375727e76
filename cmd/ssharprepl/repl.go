package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/subcommands"

	"github.com/kulych/SSharp/compiler"
	"github.com/kulych/SSharp/lexer"
	"github.com/kulych/SSharp/parser"
	"github.com/kulych/SSharp/token"
)

// replCmd implements an interactive session: each turn accumulates
// lines until parentheses and braces balance, then runs the full
// lexer/parser/compiler pipeline over the accumulated text and prints
// the generated C. A turn is expected to be one complete, self
// contained program (it must define its own "main"); there is no
// state carried between turns.
type replCmd struct{}

func (*replCmd) Name() string     { return "repl" }
func (*replCmd) Synopsis() string { return "Interactively compile SSharp snippets to C" }
func (*replCmd) Usage() string {
	return `repl:
  Read SSharp source line by line and print the generated C once a
  balanced top-level program has been entered. Type a blank line's
  worth of nothing to exit (Ctrl-D).
`
}
func (*replCmd) SetFlags(*flag.FlagSet) {}

func (*replCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      ">>> ",
		HistoryFile: "",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "ssharprepl: %v\n", err)
		return subcommands.ExitFailure
	}
	defer rl.Close()

	var buf strings.Builder
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			return subcommands.ExitSuccess
		}

		if buf.Len() > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(line)

		tokens, lexErr := lexer.New([]byte(buf.String())).Scan()
		if lexErr != nil {
			fmt.Fprintln(os.Stderr, lexErr)
			resetTurn(&buf, rl)
			continue
		}
		if !isBalanced(tokens) {
			rl.SetPrompt("... ")
			continue
		}

		root, err := parser.New(tokens).Parse()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			resetTurn(&buf, rl)
			continue
		}
		generated, err := compiler.Translate(root)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			resetTurn(&buf, rl)
			continue
		}

		io.WriteString(os.Stdout, generated)
		resetTurn(&buf, rl)
	}
}

func resetTurn(buf *strings.Builder, rl *readline.Instance) {
	buf.Reset()
	rl.SetPrompt(">>> ")
}

// isBalanced reports whether every '(' and '{' seen in tokens has
// been closed. A REPL turn is sent through the pipeline only once
// this holds, so the pipeline never sees a deliberately incomplete
// program.
func isBalanced(tokens []token.Token) bool {
	depth := 0
	for _, t := range tokens {
		switch t.Kind {
		case token.LBrace, token.LPar:
			depth++
		case token.RBrace, token.RPar:
			depth--
		}
	}
	return depth <= 0
}
