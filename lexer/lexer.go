// Package lexer splits an expression's source text into a stream of
// tokens using a simple cursor over a rune slice.
//
// Because the language has parentheses, function calls, and a
// distinction between a variable reference and a call, the lexer has
// to look one character past an identifier to decide whether it names
// a variable or a function, and run a small forward scan to count a
// function call's arguments without fully parsing them.
package lexer

import (
	"fmt"
	"io"
	"strconv"

	"github.com/skx/armjit/compilerrors"
	"github.com/skx/armjit/token"
)

// Lexer holds our scanning state over a fixed input.
type Lexer struct {
	position     int    //current character position
	readPosition int    //next character position
	ch           rune   //current character
	characters   []rune //rune slice of input string
}

// New creates a Lexer over the given source text.
func New(input string) *Lexer {
	l := &Lexer{characters: []rune(input)}
	l.readChar()
	return l
}

// read one forward character
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.characters) {
		l.ch = rune(0)
	} else {
		l.ch = l.characters[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
}

// Next returns the next token in the input, or io.EOF once the input
// is exhausted.
func (l *Lexer) Next() (token.Token, error) {
	l.skipWhitespace()

	switch {
	case l.ch == rune(0):
		return token.Token{}, io.EOF

	case isLetter(l.ch):
		name := l.readIdentifier()

		// A "(" immediately following the identifier - we do not skip
		// whitespace again here - means this is a function call.
		if l.ch == rune('(') {
			arity, err := l.scanArity()
			if err != nil {
				return token.Token{}, err
			}
			return token.NewFunction(name, arity), nil
		}
		return token.NewVariable(name), nil

	case isDigit(l.ch):
		digits := l.readNumber()

		// Overflow beyond 32-bit signed range is undefined behavior;
		// digits are parsed without a width check.
		n, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			return token.Token{}, fmt.Errorf("lexer: invalid number %q: %w", digits, err)
		}
		return token.NewNumber(int32(n)), nil

	default:
		op, ok := operationFor(l.ch)
		if !ok {
			bad := l.ch
			l.readChar()
			return token.Token{}, &compilerrors.UnknownSymbolError{Ch: bad}
		}
		l.readChar()
		return token.NewOperation(op), nil
	}
}

// operationFor maps a single-character operator to its token.Op.
func operationFor(ch rune) (token.Op, bool) {
	switch ch {
	case rune('+'):
		return token.PLUS, true
	case rune('-'):
		return token.MINUS, true
	case rune('*'):
		return token.MULTIPLY, true
	case rune('('):
		return token.OpenBracket, true
	case rune(')'):
		return token.CloseBracket, true
	case rune(','):
		return token.Comma, true
	default:
		return "", false
	}
}

// scanArity determines the argument count of a function call, assuming
// l.ch == '(' on entry. The scan does not consume the lexer's own
// cursor - it runs against a throwaway copy so that "(" is still the
// current character once scanArity returns, and subsequent calls to
// Next tokenize the argument list normally.
func (l *Lexer) scanArity() (int, error) {
	scan := *l // shallow copy: characters is read-only here.

	scan.readChar() // step past the opening "("

	depth := 1
	commas := 0
	sawContent := false

	for depth > 0 {
		if scan.ch == rune(0) {
			return 0, compilerrors.ErrMissingCloseBracket
		}

		switch scan.ch {
		case rune('('):
			depth++
			sawContent = true
		case rune(')'):
			depth--
			if depth > 0 {
				sawContent = true
			}
		case rune(','):
			if depth == 1 {
				commas++
			} else {
				sawContent = true
			}
		default:
			if !isWhitespace(scan.ch) {
				sawContent = true
			}
		}

		if depth == 0 {
			break
		}
		scan.readChar()
	}

	if !sawContent {
		return 0, nil
	}
	return commas + 1, nil
}

// skip white space
func (l *Lexer) skipWhitespace() {
	for isWhitespace(l.ch) {
		l.readChar()
	}
}

// readIdentifier reads a maximal [A-Za-z][A-Za-z0-9]* run. The caller
// must have already checked isLetter(l.ch).
func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return string(l.characters[start:l.position])
}

// readNumber handles reading a number, comprising of digits 0-9.
func (l *Lexer) readNumber() string {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return string(l.characters[start:l.position])
}

// is white space
func isWhitespace(ch rune) bool {
	return ch == rune(' ') || ch == rune('\t') || ch == rune('\n') || ch == rune('\r')
}

// is Digit
func isDigit(ch rune) bool {
	return rune('0') <= ch && ch <= rune('9')
}

// is a letter usable to start or continue an identifier
func isLetter(ch rune) bool {
	return (rune('a') <= ch && ch <= rune('z')) || (rune('A') <= ch && ch <= rune('Z'))
}

// Tokenize drains a Lexer into a token slice. It is the entry point the
// compiler package uses; the streaming Next method exists so callers
// who want to interleave scanning with something else still can.
func Tokenize(source string) ([]token.Token, error) {
	l := New(source)

	var tokens []token.Token
	for {
		tok, err := l.Next()
		if err == io.EOF { //nolint:errorlint // io.EOF is a documented sentinel, never wrapped here
			return tokens, nil
		}
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
}
