// Package parser converts a tokenized infix expression into postfix
// (reverse-Polish) order, ready for the code generator to walk.
//
// This is the shunting-yard family of operator-precedence parsing: an
// explicit operator stack plus a two-state mode machine
// (waitOperand/waitOperator) that disambiguates the lexical "-" between
// unary negation and binary subtraction. A recursive-descent parser
// could express the same grammar, but the state machine keeps the
// operator stack and the disambiguation logic in one small place.
package parser

import (
	"github.com/skx/armjit/compilerrors"
	"github.com/skx/armjit/token"
	"github.com/skx/armjit/vstack"
)

// mode tracks whether the converter is expecting an operand or an
// operator next.
type mode int

const (
	waitOperand mode = iota
	waitOperator
)

// Operator precedence table. Higher binds tighter for the "pop while
// >=" drop loop.
const (
	precOpenBracket       = 0
	precCloseBracketComma = 1
	precAdditive          = 2
	precMultiplicative    = 3
	precUnaryMinus        = 4
	precFunction          = 5
)

// opPrecedence returns the precedence of a bare operator, for the
// purpose of comparing it against the operator stack's top.
func opPrecedence(op token.Op) int {
	switch op {
	case token.OpenBracket:
		return precOpenBracket
	case token.CloseBracket, token.Comma:
		return precCloseBracketComma
	case token.PLUS, token.MINUS:
		return precAdditive
	case token.MULTIPLY:
		return precMultiplicative
	case token.UnaryMinus:
		return precUnaryMinus
	default:
		panic("parser: operator " + string(op) + " has no precedence")
	}
}

// stackPrecedence returns the precedence of an item sitting on the
// operator stack, which may be a Function marker (precedence 5) or an
// Operation.
func stackPrecedence(t token.Token) int {
	if t.Kind() == token.Function {
		return precFunction
	}
	return opPrecedence(t.Op())
}

// ToPostfix converts a token stream produced by the lexer into postfix
// order.
func ToPostfix(tokens []token.Token) ([]token.Token, error) {
	var output []token.Token
	opStack := vstack.New[token.Token]()
	state := waitOperand

	for _, tok := range tokens {
		var err error
		output, state, err = step(tok, state, output, opStack)
		if err != nil {
			return nil, err
		}
	}

	// End of input: flush everything down to precedence 1 (the same
	// sentinel a ")" or "," would use), leaving only an unmatched "("
	// behind.
	output = drain(output, opStack, precCloseBracketComma)

	if !opStack.Empty() {
		return nil, compilerrors.ErrMissingCloseBracket
	}

	// Input ending mid-operand (e.g. "1+") leaves the state machine
	// waiting for an operand that never arrived.
	if state == waitOperand {
		return nil, compilerrors.ErrMissingOperand
	}

	return output, nil
}

// step applies a single input token to the converter's state according
// to the current mode (waitOperand/waitOperator).
func step(tok token.Token, state mode, output []token.Token, opStack *vstack.Stack[token.Token]) ([]token.Token, mode, error) {
	switch state {
	case waitOperand:
		return stepWaitOperand(tok, output, opStack)
	default:
		return stepWaitOperator(tok, output, opStack)
	}
}

func stepWaitOperand(tok token.Token, output []token.Token, opStack *vstack.Stack[token.Token]) ([]token.Token, mode, error) {
	switch tok.Kind() {
	case token.Variable, token.Number:
		return append(output, tok), waitOperator, nil

	case token.Function:
		opStack.Push(tok)
		return output, waitOperand, nil

	case token.Operation:
		switch tok.Op() {
		case token.MINUS:
			// The lexical "-" in operand position is unary negation.
			opStack.Push(token.NewOperation(token.UnaryMinus))
			return output, waitOperand, nil

		case token.OpenBracket:
			opStack.Push(tok)
			return output, waitOperand, nil

		case token.CloseBracket:
			// Allowed only to close an empty argument list, e.g.
			// "f()": flush (nothing to flush), match the "(", and emit
			// the function marker - the same bookkeeping a ")" does in
			// WAIT_OPERATOR.
			out, newState, err := applyCloseBracket(output, opStack)
			if err == nil && len(out) == len(output) {
				// No function marker beneath the "(": "()" holds no operand.
				return nil, waitOperand, compilerrors.ErrMissingOperand
			}
			return out, newState, err

		default:
			return nil, waitOperand, compilerrors.ErrMissingOperand
		}

	default:
		return nil, waitOperand, compilerrors.ErrMissingOperand
	}
}

func stepWaitOperator(tok token.Token, output []token.Token, opStack *vstack.Stack[token.Token]) ([]token.Token, mode, error) {
	if tok.Kind() != token.Operation {
		return nil, waitOperator, compilerrors.ErrMissingOperator
	}

	op := tok.Op()
	output = drain(output, opStack, opPrecedence(op))

	switch op {
	case token.CloseBracket:
		return applyCloseBracket(output, opStack)

	case token.Comma:
		// The drop loop already flushed everything down to the
		// nearest "("; the comma itself is never pushed.
		return output, waitOperand, nil

	default:
		// "+", "-", "*" (and, defensively, a stray "(" reaching this
		// state): push and go back to expecting an operand.
		opStack.Push(tok)
		return output, waitOperand, nil
	}
}

// applyCloseBracket pops down to and discards the matching "(", then
// emits a Function marker sitting just beneath it, if any.
func applyCloseBracket(output []token.Token, opStack *vstack.Stack[token.Token]) ([]token.Token, mode, error) {
	top, ok := opStack.Pop()
	if !ok || top.Kind() != token.Operation || top.Op() != token.OpenBracket {
		return nil, waitOperator, compilerrors.ErrMissingOpenBracket
	}

	if fn, ok := opStack.Peek(); ok && fn.Kind() == token.Function {
		opStack.Pop()
		output = append(output, fn)
	}

	return output, waitOperator, nil
}

// drain pops operators from opStack to output while the top's
// precedence is at least minPrecedence.
func drain(output []token.Token, opStack *vstack.Stack[token.Token], minPrecedence int) []token.Token {
	for {
		top, ok := opStack.Peek()
		if !ok || stackPrecedence(top) < minPrecedence {
			return output
		}
		opStack.Pop()
		output = append(output, top)
	}
}
