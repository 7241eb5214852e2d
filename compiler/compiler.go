// The compiler-package contains the core of our compiler.
//
// In brief we go through a three-step process:
//
//  1.  The lexer tokenizes the expression.
//
//  2.  The parser converts the tokens from infix to postfix order.
//
//  3.  The generator walks the postfix stream, emitting ARM words for
//      each operator, variable-load, function-call, or constant-push.
//
// The three stages are exposed separately (lexer/parser/compiler) so
// that each is independently testable; Compile below is the glue that
// drives them in sequence.
package compiler

import (
	"github.com/skx/armjit/armword"
	"github.com/skx/armjit/lexer"
	"github.com/skx/armjit/parser"
	"github.com/skx/armjit/symtab"
)

// Compile tokenizes, parses and generates ARM instruction words for
// expression, resolving Variable and Function tokens against symbols.
func Compile(expression string, symbols *symtab.Table) ([]armword.Word, error) {
	tokens, err := lexer.Tokenize(expression)
	if err != nil {
		return nil, err
	}

	postfix, err := parser.ToPostfix(tokens)
	if err != nil {
		return nil, err
	}

	gen := NewGenerator(symbols)
	return gen.Generate(postfix)
}
