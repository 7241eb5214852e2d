package driver

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/skx/armjit/armword"
)

func TestWriteEmitsLittleEndianWords(t *testing.T) {
	d := New(nil)

	var buf bytes.Buffer
	n, err := d.Write("1+2", &buf)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if n != buf.Len() {
		t.Errorf("Write returned %d, buffer holds %d bytes", n, buf.Len())
	}
	if buf.Len()%4 != 0 {
		t.Fatalf("expected a whole number of 32-bit words, got %d bytes", buf.Len())
	}

	words, err := d.Generate("1+2")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	got := buf.Bytes()
	for i, w := range words {
		readBack := binary.LittleEndian.Uint32(got[4*i:])
		if armword.Word(readBack) != w {
			t.Errorf("word %d = 0x%08x, want 0x%08x", i, readBack, w)
		}
	}
}

func TestCompileReportsSuccess(t *testing.T) {
	var out, diag bytes.Buffer
	if !Compile("1+2", nil, &out, &diag) {
		t.Fatalf("expected success, diagnostics: %s", diag.String())
	}
	if diag.Len() != 0 {
		t.Errorf("expected no diagnostics on success, got %q", diag.String())
	}
	if out.Len() == 0 {
		t.Errorf("expected output to be written on success")
	}
}

func TestCompileReportsFailureAndDiagnostic(t *testing.T) {
	var out, diag bytes.Buffer
	if Compile("1+", nil, &out, &diag) {
		t.Fatalf("expected failure compiling a trailing operator")
	}
	if diag.Len() == 0 {
		t.Errorf("expected a diagnostic message on failure")
	}
}

func TestCompileResolvesSymbols(t *testing.T) {
	var out, diag bytes.Buffer
	symbols := []Symbol{
		{Name: "a", Pointer: 0x1000},
		{Name: "sum", Pointer: 0x2000},
	}
	if !Compile("sum(a, 1)", symbols, &out, &diag) {
		t.Fatalf("expected success, diagnostics: %s", diag.String())
	}
}

func TestCompileUnresolvedSymbolFails(t *testing.T) {
	var out, diag bytes.Buffer
	if Compile("missing+1", nil, &out, &diag) {
		t.Fatalf("expected failure resolving an unknown variable")
	}
}
