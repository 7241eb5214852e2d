// Package driver composes the tokenizer, postfix converter and code
// generator into the single entry point external callers use: compile
// an expression against a symbol table and write the resulting ARM
// words into a caller-supplied buffer.
//
// It is its own component, separate from the tokenizer/parser/compiler
// packages, so the CLI (and any other embedder) can drive it without
// going through flag parsing.
package driver

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/skx/armjit/armword"
	"github.com/skx/armjit/compiler"
	"github.com/skx/armjit/lexer"
	"github.com/skx/armjit/parser"
	"github.com/skx/armjit/symtab"
)

// Symbol is one entry of the caller-supplied name/address table; it
// mirrors the null-sentinel-terminated C array this ABI is built on,
// relaxed to a Go slice since Go has no null-terminated array idiom -
// New (see symtab) applies the same "empty name or zero pointer never
// registers" rule a sentinel record would trigger in C.
type Symbol = symtab.Entry

// Driver resolves symbol names and generates ARM instruction words
// for expressions, optionally inserting a debug breakpoint.
type Driver struct {
	symbols *symtab.Table
	debug   bool
}

// New creates a Driver resolving variable and function names against
// symbols.
func New(symbols []Symbol) *Driver {
	return &Driver{symbols: symtab.New(symbols)}
}

// SetDebug changes the debug-flag for our output.
func (d *Driver) SetDebug(val bool) {
	d.debug = val
}

// Generate compiles expression into a sequence of ARM instruction
// words, ready to be written into an executable buffer.
func (d *Driver) Generate(expression string) ([]armword.Word, error) {
	tokens, err := lexer.Tokenize(expression)
	if err != nil {
		return nil, err
	}

	postfix, err := parser.ToPostfix(tokens)
	if err != nil {
		return nil, err
	}

	gen := compiler.NewGenerator(d.symbols)
	gen.SetDebug(d.debug)
	return gen.Generate(postfix)
}

// Write generates expression's instruction words and writes them, as
// little-endian 32-bit words, into out. It returns the number of
// bytes written.
//
// out stands in for the caller's writable, executable output buffer;
// the caller is responsible for its size, alignment and
// executability.
func (d *Driver) Write(expression string, out io.Writer) (int, error) {
	words, err := d.Generate(expression)
	if err != nil {
		return 0, err
	}

	buf := make([]byte, 4*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint32(buf[4*i:], uint32(w))
	}

	return out.Write(buf)
}

// Compile is the boolean-success entry point: writes the compiled
// words to out and reports success, printing a diagnostic in place of
// raising on failure. diagnostics receives the human-readable failure
// message on a compile error; pass os.Stderr for the standard
// diagnostic stream.
func Compile(expression string, symbols []Symbol, out io.Writer, diagnostics io.Writer) bool {
	d := New(symbols)
	_, err := d.Write(expression, out)
	if err != nil {
		fmt.Fprintf(diagnostics, "armjit: %s\n", err)
		return false
	}
	return true
}
