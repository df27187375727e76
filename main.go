// Command ssharp reads a SourceLang program from standard input and
// writes the equivalent C translation unit to standard output. It
// takes no flags, subcommands, or environment variables: the entire
// contract is stdin in, stdout out, a zero exit status on success.
//
// On any lexer, parser, or semantic error the command writes nothing
// to stdout, prints the error to stderr, and exits non-zero.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/kulych/SSharp/compiler"
	"github.com/kulych/SSharp/lexer"
	"github.com/kulych/SSharp/parser"
)

func main() {
	os.Exit(run(os.Stdin, os.Stdout, os.Stderr))
}

func run(in io.Reader, out, errOut io.Writer) int {
	src, err := io.ReadAll(in)
	if err != nil {
		fmt.Fprintf(errOut, "ssharp: reading input: %v\n", err)
		return 1
	}

	tokens, err := lexer.New(src).Scan()
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}

	root, err := parser.New(tokens).Parse()
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}

	generated, err := compiler.Translate(root)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}

	if _, err := io.WriteString(out, generated); err != nil {
		fmt.Fprintf(errOut, "ssharp: writing output: %v\n", err)
		return 1
	}
	return 0
}
