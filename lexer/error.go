package lexer

import "fmt"

// LexError reports a byte sequence the lexer could not turn into a
// token: an unrecognized character, a malformed number, or a
// two-character operator (`==`, `!=`, `||`, `&&`) missing its second
// character.
type LexError struct {
	Message string
}

func CreateLexError(message string) LexError {
	return LexError{Message: message}
}

func (e LexError) Error() string {
	return fmt.Sprintf("💥 ssharp lex error: %s", e.Message)
}
