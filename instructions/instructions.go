// Package instructions holds a lookup table describing the operators
// the code generator knows how to emit ARM for: a name and the number
// of operands each pops off the evaluation stack.
package instructions

import (
	"fmt"

	"github.com/skx/armjit/token"
)

// Definition describes one binary/unary arithmetic operator.
type Definition struct {
	// Name is the human-readable operator name.
	Name string

	// Operands is the number of values the operator pops from the
	// evaluation stack; it always pushes exactly one back.
	Operands int
}

var definitions = map[token.Op]Definition{
	token.PLUS:       {Name: "PLUS", Operands: 2},
	token.MINUS:      {Name: "MINUS", Operands: 2},
	token.MULTIPLY:   {Name: "MULTIPLY", Operands: 2},
	token.UnaryMinus: {Name: "UNARY_MINUS", Operands: 1},
}

// Lookup returns the Definition for an operator, or false if op is not
// one the code generator knows how to emit arithmetic for.
func Lookup(op token.Op) (Definition, bool) {
	def, ok := definitions[op]
	return def, ok
}

// MustLookup is Lookup but panics on an unknown operator: an
// unrecognized operator here is a programming invariant violation, not
// a user-facing error - the front end should never hand the generator
// anything but PLUS/MINUS/MULTIPLY/UnaryMinus as a binary/unary
// Operation token.
func MustLookup(op token.Op) Definition {
	def, ok := Lookup(op)
	if !ok {
		panic(fmt.Sprintf("instructions: no definition for operator %q", op))
	}
	return def
}
