// Package compilerrors names the failure kinds that can surface out of
// the tokenizer, postfix converter, and code generator. Each kind gets
// its own sentinel or typed error so a caller can distinguish them with
// errors.Is / errors.As instead of matching on message text.
package compilerrors

import (
	"errors"
	"fmt"
)

// Converter failures that carry no extra data.
var (
	// ErrMissingOperator is raised when the postfix converter is
	// expecting an operator and receives an operand instead.
	ErrMissingOperator = errors.New("missing operator")

	// ErrMissingOperand is raised when the postfix converter is
	// expecting an operand and receives an operator that cannot start
	// one (anything other than "(", unary "-", or a matching empty-call
	// ")").
	ErrMissingOperand = errors.New("missing operand")

	// ErrMissingOpenBracket is raised when a ")" has no matching "("
	// on the operator stack.
	ErrMissingOpenBracket = errors.New("missing open bracket")

	// ErrMissingCloseBracket is raised when an "(" remains unmatched,
	// either because input ended before its close, or because the
	// tokenizer's arity scan ran off the end of input.
	ErrMissingCloseBracket = errors.New("missing close bracket")
)

// UnknownSymbolError is raised by the tokenizer when it encounters a
// character that cannot begin any valid token.
type UnknownSymbolError struct {
	Ch rune
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("unknown symbol %q", e.Ch)
}

// UnresolvedSymbolError is raised by the code generator when an
// expression refers to a variable or function name absent from the
// caller-supplied symbol table.
type UnresolvedSymbolError struct {
	Name string
}

func (e *UnresolvedSymbolError) Error() string {
	return fmt.Sprintf("unresolved symbol %q", e.Name)
}
