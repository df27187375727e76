// Package lexer turns a raw SSharp byte stream into an ordered
// sequence of tokens.
package lexer

import (
	"strconv"

	"github.com/kulych/SSharp/token"
)

// isDelimiter reports whether c is whitespace or one of the
// operator/punctuation bytes that terminate a run of buffered
// characters.
func isDelimiter(c byte) bool {
	switch c {
	case '\r', '\n', '\t', ' ':
		return true
	case '+', '-', '*', '/', '%', '<', '>', '=', '!', '~', '&', '|', '(', ')', '{', '}', ';', ',':
		return true
	}
	return false
}

func isLowerAlpha(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func isAllLowerAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isLowerAlpha(s[i]) {
			return false
		}
	}
	return true
}

// Lexer accumulates non-delimiter bytes into a buffer and classifies
// the buffer whenever a delimiter is encountered.
type Lexer struct {
	input []byte
	pos   int
	buf   []byte
}

// New creates a Lexer over input. The tokens Scan returns do not share
// memory with input.
func New(input []byte) *Lexer {
	return &Lexer{input: input}
}

func (l *Lexer) isFinished() bool {
	return l.pos >= len(l.input)
}

func (l *Lexer) current() byte {
	return l.input[l.pos]
}

func (l *Lexer) advance() {
	l.pos++
}

// flushBuffer classifies the accumulated buffer, if any, into a
// single token and clears the buffer.
func (l *Lexer) flushBuffer() (token.Token, bool, error) {
	if len(l.buf) == 0 {
		return token.Token{}, false, nil
	}
	text := string(l.buf)
	l.buf = l.buf[:0]

	switch {
	case text == "if":
		return token.Make(token.If), true, nil
	case isAllLowerAlpha(text):
		return token.MakeIdentifier(text), true, nil
	default:
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return token.Token{}, false, CreateLexError("Unknown token type")
		}
		return token.MakeNumber(n), true, nil
	}
}

// Scan performs lexical analysis over the whole input and returns the
// ordered token sequence, or the first LexError encountered.
func (l *Lexer) Scan() ([]token.Token, error) {
	var tokens []token.Token

	for !l.isFinished() {
		c := l.current()
		if !isDelimiter(c) {
			l.buf = append(l.buf, c)
			l.advance()
			continue
		}

		tok, ok, err := l.flushBuffer()
		if err != nil {
			return nil, err
		}
		if ok {
			tokens = append(tokens, tok)
		}

		tok, emit, err := l.consumeDelimiter(c)
		if err != nil {
			return nil, err
		}
		if emit {
			tokens = append(tokens, tok)
		}
	}

	// Any residual buffer at end of stream is discarded without being
	// flushed: the grammar requires a trailing '}' to close the
	// outermost function, which itself serves as the final delimiter.
	// A program that ends in an unflushed buffer is ill-formed and
	// surfaces as a parse error downstream, not a lex error here.
	return tokens, nil
}

// consumeDelimiter processes the delimiter byte itself: whitespace
// produces no token, single-character operators map directly, and
// `=`, `!`, `|`, `&` each require a specific following byte to form a
// two-character operator.
func (l *Lexer) consumeDelimiter(c byte) (token.Token, bool, error) {
	switch c {
	case '\r', '\n', '\t', ' ':
		l.advance()
		return token.Token{}, false, nil
	case '(':
		l.advance()
		return token.Make(token.LPar), true, nil
	case ')':
		l.advance()
		return token.Make(token.RPar), true, nil
	case '{':
		l.advance()
		return token.Make(token.LBrace), true, nil
	case '}':
		l.advance()
		return token.Make(token.RBrace), true, nil
	case ';':
		l.advance()
		return token.Make(token.Semicolon), true, nil
	case ',':
		l.advance()
		return token.Make(token.Comma), true, nil
	case '+':
		l.advance()
		return token.Make(token.Plus), true, nil
	case '-':
		l.advance()
		return token.Make(token.Minus), true, nil
	case '*':
		l.advance()
		return token.Make(token.Mult), true, nil
	case '/':
		l.advance()
		return token.Make(token.Div), true, nil
	case '%':
		l.advance()
		return token.Make(token.Mod), true, nil
	case '<':
		l.advance()
		return token.Make(token.Less), true, nil
	case '>':
		l.advance()
		return token.Make(token.More), true, nil
	case '~':
		l.advance()
		return token.Make(token.Neg), true, nil
	case '=':
		l.advance()
		return l.requirePair('=', token.Equal, "invalid occurrence of '=', must be '=='")
	case '!':
		l.advance()
		return l.requirePair('=', token.Nequal, "invalid occurrence of '!', must be '!='")
	case '|':
		l.advance()
		return l.requirePair('|', token.Or, "invalid occurrence of '|', must be '||'")
	case '&':
		l.advance()
		return l.requirePair('&', token.And, "invalid occurrence of '&', must be '&&'")
	}
	panic("lexer: consumeDelimiter called on a non-delimiter byte")
}

// requirePair consumes the byte following a `=`, `!`, `|` or `&`
// (which has already been advanced past) and fails unless it matches
// expected.
func (l *Lexer) requirePair(expected byte, kind token.Kind, errMsg string) (token.Token, bool, error) {
	if l.isFinished() || l.current() != expected {
		return token.Token{}, false, CreateLexError(errMsg)
	}
	l.advance()
	return token.Make(kind), true, nil
}
