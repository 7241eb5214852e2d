// generator.go contains the code for emitting ARM instruction words.
//
// Each operator gets its own small gen* method, called from a
// dispatching switch in Generate, rather than one large inlined
// function.

package compiler

import (
	"github.com/skx/armjit/armword"
	"github.com/skx/armjit/compilerrors"
	"github.com/skx/armjit/instructions"
	"github.com/skx/armjit/symtab"
	"github.com/skx/armjit/token"
)

// Generator walks a postfix token stream and emits the ARM words
// implementing it as a stack-machine routine.
type Generator struct {
	// symbols resolves Variable and Function tokens to addresses.
	symbols *symtab.Table

	// debug, when set, inserts a bkpt instruction immediately after
	// the prologue - not part of the fixed instruction table, purely
	// a development aid (see armword.Bkpt0).
	debug bool
}

// NewGenerator creates a Generator resolving names against symbols.
func NewGenerator(symbols *symtab.Table) *Generator {
	return &Generator{symbols: symbols}
}

// SetDebug changes the debug-flag for our output.
func (g *Generator) SetDebug(val bool) {
	g.debug = val
}

// Generate walks postfix, a token stream already in postfix order,
// and returns the ARM words implementing it as a zero-argument,
// int32_t-returning routine.
func (g *Generator) Generate(postfix []token.Token) ([]armword.Word, error) {
	words := []armword.Word{armword.PushR4LR}

	if g.debug {
		words = append(words, armword.Bkpt0)
	}

	for _, tok := range postfix {
		chunk, err := g.genToken(tok)
		if err != nil {
			return nil, err
		}
		words = append(words, chunk...)
	}

	// The trailing-push peephole: the last operator or operand
	// emitted a "push {r0}" as its final word, and the result is
	// already sitting in r0, so that last push is never emitted.
	if len(words) > 0 && words[len(words)-1] == armword.PushR0 {
		words = words[:len(words)-1]
	}

	words = append(words, armword.PopR4LR, armword.BxLR)
	return words, nil
}

// genToken dispatches a single postfix token to its emitter.
func (g *Generator) genToken(tok token.Token) ([]armword.Word, error) {
	switch tok.Kind() {
	case token.Number:
		return g.genNumber(tok), nil
	case token.Variable:
		return g.genVariable(tok)
	case token.Function:
		return g.genFunction(tok)
	default:
		return g.genOperation(tok)
	}
}

// genNumber loads a literal constant into r0 and pushes it.
func (g *Generator) genNumber(tok token.Token) []armword.Word {
	words := armword.SetConstant(armword.R0, uint32(tok.Value()))
	return append(words, armword.PushR0)
}

// genVariable resolves name against the symbol table, loads its
// current value into r0, and pushes it.
func (g *Generator) genVariable(tok token.Token) ([]armword.Word, error) {
	name := tok.Name()
	address, ok := g.symbols.Lookup(name)
	if !ok {
		return nil, &compilerrors.UnresolvedSymbolError{Name: name}
	}

	words := armword.LoadVariable(armword.R0, uint32(address))
	return append(words, armword.PushR0), nil
}

// genFunction resolves name against the symbol table and calls it
// with the arity encoded in the token.
func (g *Generator) genFunction(tok token.Token) ([]armword.Word, error) {
	name := tok.Name()
	address, ok := g.symbols.Lookup(name)
	if !ok {
		return nil, &compilerrors.UnresolvedSymbolError{Name: name}
	}

	return armword.CallFunction(uint32(address), tok.Arity()), nil
}

// genOperation dispatches PLUS/MINUS/MULTIPLY/UnaryMinus. An operator
// the parser could never have produced is a programming invariant
// violation, so instructions.MustLookup panics rather than returning
// an error here.
func (g *Generator) genOperation(tok token.Token) ([]armword.Word, error) {
	instructions.MustLookup(tok.Op())

	switch tok.Op() {
	case token.UnaryMinus:
		return g.genUnaryMinus(), nil
	case token.PLUS:
		return g.genPlus(), nil
	case token.MINUS:
		return g.genMinus(), nil
	default:
		return g.genMultiply(), nil
	}
}

// genUnaryMinus computes 0 - r1 and pushes the result.
func (g *Generator) genUnaryMinus() []armword.Word {
	words := armword.SetConstant(armword.R0, 0)
	words = append(words, armword.PopR(armword.R1))
	words = append(words, armword.SubR0R1)
	return append(words, armword.PushR0)
}

// genPlus pops the right then left operand and adds them.
func (g *Generator) genPlus() []armword.Word {
	return g.genBinary(armword.AddR0R1)
}

// genMinus pops the right then left operand and subtracts them.
// The right operand is the top of stack (r1); the left is
// underneath it (r0) - the order non-commutative subtraction needs.
func (g *Generator) genMinus() []armword.Word {
	return g.genBinary(armword.SubR0R1)
}

// genMultiply pops the right then left operand and multiplies them.
func (g *Generator) genMultiply() []armword.Word {
	return g.genBinary(armword.MulR0R1)
}

// genBinary pops r1 (right operand, top of stack) then r0 (left
// operand), emits op, and pushes the result.
func (g *Generator) genBinary(op armword.Word) []armword.Word {
	return []armword.Word{
		armword.PopR(armword.R1),
		armword.PopR(armword.R0),
		op,
		armword.PushR0,
	}
}
