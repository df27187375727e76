package parser

import "fmt"

// SyntaxError is raised for any grammar violation: a missing closing
// delimiter, a missing operand, a trailing comma in an argument list,
// a missing function body, or unexpected trailing tokens. It is
// always fatal — the parser never recovers past one.
type SyntaxError struct {
	Message string
}

func CreateSyntaxError(message string) SyntaxError {
	return SyntaxError{Message: message}
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("💥 ssharp syntax error: %s", e.Message)
}
