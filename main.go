// This is the main-driver for our compiler.

package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/skx/armjit/armword"
	"github.com/skx/armjit/driver"
)

// symbolFlags collects repeated "-var name=addr" / "-func name=addr"
// flags into a slice of driver.Symbol, implementing flag.Value so
// each occurrence appends rather than overwrites.
type symbolFlags []driver.Symbol

func (s *symbolFlags) String() string {
	if s == nil {
		return ""
	}
	parts := make([]string, len(*s))
	for i, sym := range *s {
		parts[i] = fmt.Sprintf("%s=0x%x", sym.Name, sym.Pointer)
	}
	return strings.Join(parts, ",")
}

func (s *symbolFlags) Set(value string) error {
	name, addr, ok := strings.Cut(value, "=")
	if !ok || name == "" {
		return fmt.Errorf("expected name=0xADDR, got %q", value)
	}

	pointer, err := strconv.ParseUint(strings.TrimSpace(addr), 0, 64)
	if err != nil {
		return fmt.Errorf("invalid address %q for %q: %s", addr, name, err)
	}

	*s = append(*s, driver.Symbol{Name: name, Pointer: uintptr(pointer)})
	return nil
}

func main() {

	//
	// Look for flags.
	//
	debug := flag.Bool("debug", false, "Insert a debug breakpoint in our generated output.")
	disasm := flag.Bool("disasm", false, "Print a disassembly listing instead of raw words.")
	output := flag.String("o", "", "Write the raw little-endian instruction words to this file.")

	var vars symbolFlags
	var funcs symbolFlags
	flag.Var(&vars, "var", "A variable symbol, as name=0xADDR. May be repeated.")
	flag.Var(&funcs, "func", "A function symbol, as name=0xADDR. May be repeated.")
	flag.Parse()

	//
	// Ensure we have an expression as our single argument.
	//
	if len(flag.Args()) != 1 {
		fmt.Printf("Usage: armjit [flags] 'expression'\n")
		os.Exit(1)
	}
	expression := flag.Args()[0]

	//
	// Build the symbol table from the -var/-func flags.
	//
	symbols := append(append(symbolFlags{}, vars...), funcs...)

	d := driver.New(symbols)
	if *debug {
		d.SetDebug(true)
	}

	words, err := d.Generate(expression)
	if err != nil {
		fmt.Printf("Error compiling: %s\n", err.Error())
		os.Exit(1)
	}

	//
	// Disassembly listing, rather than raw words?
	//
	if *disasm {
		for _, line := range armword.Disassemble(words) {
			fmt.Println(line)
		}
		return
	}

	//
	// No output file: print the words, one per line, as we would for
	// a disassembly but without decoding them.
	//
	if *output == "" {
		for _, w := range words {
			fmt.Printf("0x%08x\n", w)
		}
		return
	}

	//
	// Write the raw instruction words to the requested file.
	//
	f, err := os.Create(*output)
	if err != nil {
		fmt.Printf("Error creating %s: %s\n", *output, err)
		os.Exit(1)
	}
	defer f.Close()

	if _, err = d.Write(expression, f); err != nil {
		fmt.Printf("Error writing output: %s\n", err)
		os.Exit(1)
	}
}
